package labelgo

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hupe1980/labelgo/label"
	"github.com/hupe1980/labelgo/rowset"
)

// Vector is a labelled categorical vector: a data column paired with the
// label map describing its codes, plus optional name/description metadata and
// a missing-value mask.
//
// Vectors are immutable from the caller's point of view: every transform
// returns a new Vector and leaves the receiver untouched. A Vector is safe
// for concurrent reads; concurrent transforms of independent vectors never
// interact.
type Vector[V cmp.Ordered] struct {
	values      []V
	labels      label.Map[V]
	missing     *rowset.Set
	name        string
	description string
	logger      *Logger
}

// New creates a vector from a copy of values and labels. The label map must
// be a bijection; otherwise a *ConflictError is returned. Entry order is kept
// as given.
func New[V cmp.Ordered](values []V, labels label.Map[V], optFns ...Option) (*Vector[V], error) {
	opts := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := labels.Validate(); err != nil {
		return nil, translateError(err)
	}

	return &Vector[V]{
		values:      slices.Clone(values),
		labels:      labels.Clone(),
		missing:     rowset.New(),
		name:        opts.name,
		description: opts.description,
		logger:      opts.logger,
	}, nil
}

// MustNew is like New but panics on error. Intended for static label maps
// known to be valid.
func MustNew[V cmp.Ordered](values []V, labels label.Map[V], optFns ...Option) *Vector[V] {
	v, err := New(values, labels, optFns...)
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the number of data rows.
func (v *Vector[V]) Len() int {
	return len(v.values)
}

// Name returns the variable name, if any.
func (v *Vector[V]) Name() string {
	return v.name
}

// Description returns the free-text variable description, if any.
func (v *Vector[V]) Description() string {
	return v.description
}

// Value returns the value at row i and whether it is present. Missing rows
// report ok=false.
func (v *Vector[V]) Value(i int) (V, bool) {
	if v.missing.Contains(uint32(i)) {
		var zero V
		return zero, false
	}
	return v.values[i], true
}

// Values returns a copy of the data column. Rows masked as missing still hold
// their last value; consult IsMissing to interpret them.
func (v *Vector[V]) Values() []V {
	return slices.Clone(v.values)
}

// Labels returns a copy of the label map in its current entry order.
func (v *Vector[V]) Labels() label.Map[V] {
	return v.labels.Clone()
}

// Label returns the label for a value, if the map has one.
func (v *Vector[V]) Label(value V) (string, bool) {
	e, ok := v.labels.Lookup(value)
	return e.Label, ok
}

// IsMissing reports whether row i is masked as missing.
func (v *Vector[V]) IsMissing(i int) bool {
	return v.missing.Contains(uint32(i))
}

// MissingCount returns the number of rows masked as missing.
func (v *Vector[V]) MissingCount() int {
	return int(v.missing.Cardinality())
}

// String returns a short debug representation.
func (v *Vector[V]) String() string {
	name := v.name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("Vector(%s: %d rows, %d labels, %d missing)", name, len(v.values), len(v.labels), v.missing.Cardinality())
}

// clone returns a deep copy sharing no state with the receiver.
func (v *Vector[V]) clone() *Vector[V] {
	return &Vector[V]{
		values:      slices.Clone(v.values),
		labels:      v.labels.Clone(),
		missing:     v.missing.Clone(),
		name:        v.name,
		description: v.description,
		logger:      v.logger,
	}
}

// occurrences indexes the non-missing row positions of each distinct value.
// Built per transform; rewrites and prune checks then touch only relevant rows.
func (v *Vector[V]) occurrences() map[V]*rowset.Set {
	occ := make(map[V]*rowset.Set)
	for i, val := range v.values {
		if v.missing.Contains(uint32(i)) {
			continue
		}
		s := occ[val]
		if s == nil {
			s = rowset.New()
			occ[val] = s
		}
		s.Add(uint32(i))
	}
	return occ
}
