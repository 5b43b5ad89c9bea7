package predicate

import (
	"cmp"
	"errors"
	"fmt"
	"sync"
)

// ErrNotRegistered is returned when a named predicate is looked up in a
// registry that does not hold it.
var ErrNotRegistered = errors.New("predicate not registered")

// Registry resolves predicates by name, for call sites that reference
// predicates from configuration rather than code. It is safe for concurrent
// use.
//
// Registries are per value type; there is deliberately no process-global
// registry.
type Registry[V cmp.Ordered] struct {
	mu     sync.RWMutex
	byName map[string]Predicate[V]
}

// NewRegistry creates an empty registry.
func NewRegistry[V cmp.Ordered]() *Registry[V] {
	return &Registry[V]{
		byName: make(map[string]Predicate[V]),
	}
}

// Register binds a name to a predicate. Empty names and re-registration are
// rejected.
func (r *Registry[V]) Register(name string, p Predicate[V]) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrBadForm)
	}
	if p == nil {
		return fmt.Errorf("%w: nil predicate %q", ErrBadForm, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: %q already registered", ErrBadForm, name)
	}
	r.byName[name] = p

	return nil
}

// Lookup returns the predicate registered under name.
func (r *Registry[V]) Lookup(name string) (Predicate[V], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byName[name]
	return p, ok
}

// Named returns a predicate that resolves name at match time, so it may be
// constructed before the name is registered. Matching against a name that is
// still unregistered yields ErrNotRegistered.
func (r *Registry[V]) Named(name string) Predicate[V] {
	return TryFunc[V](func(val V, lbl string) (bool, error) {
		p, ok := r.Lookup(name)
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrNotRegistered, name)
		}
		return p.Match(val, lbl)
	})
}
