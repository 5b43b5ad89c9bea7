package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/labelgo/label"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Draw returns n values drawn uniformly from domain.
// Locks only once per call (preferred over calling Intn in a loop).
func Draw[V any](r *RNG, n int, domain []V) []V {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]V, n)
	for i := range out {
		out[i] = domain[r.rand.Intn(len(domain))]
	}
	return out
}

// YesNoMap returns the canonical small survey map used across tests:
// Yes/Yes-ish/No/Maybe plus a not-in-universe code.
func YesNoMap() label.Map[int64] {
	return label.Map[int64]{
		{Value: 10, Label: "Yes"},
		{Value: 11, Label: "Yes-ish"},
		{Value: 20, Label: "No"},
		{Value: 30, Label: "Maybe"},
		{Value: 99, Label: "NIU"},
	}
}

// Column generates a synthetic categorical column of length n drawing from
// the values of m, interleaved with unlabelled codes from extra.
func Column(r *RNG, n int, m label.Map[int64], extra ...int64) []int64 {
	domain := append(m.Values(), extra...)
	return Draw(r, n, domain)
}
