package predicate

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/hupe1980/labelgo/label"
)

var (
	// ErrUndefined is returned when a predicate cannot produce a definite
	// boolean for an entry.
	ErrUndefined = errors.New("predicate produced an undefined result")

	// ErrBadForm is returned by From when the supplied value is none of the
	// accepted predicate forms.
	ErrBadForm = errors.New("unsupported predicate form")
)

// Predicate decides, per label entry, whether the (value, label) pair is
// selected. Predicates run over the label set of a vector, never over the
// data rows.
type Predicate[V cmp.Ordered] interface {
	Match(val V, lbl string) (bool, error)
}

// Func adapts a plain two-argument function into a Predicate. The function
// must always produce a definite result.
type Func[V cmp.Ordered] func(val V, lbl string) bool

// Match implements Predicate.
func (f Func[V]) Match(val V, lbl string) (bool, error) {
	return f(val, lbl), nil
}

// TryFunc adapts a fallible two-argument function into a Predicate. Returning
// an error marks the result undefined for that entry.
type TryFunc[V cmp.Ordered] func(val V, lbl string) (bool, error)

// Match implements Predicate.
func (f TryFunc[V]) Match(val V, lbl string) (bool, error) {
	return f(val, lbl)
}

// ValueFunc produces a replacement value per label entry. Used by collapse.
type ValueFunc[V cmp.Ordered] func(val V, lbl string) V

// Evaluate applies p to every entry of m, in entry order, and returns one
// boolean per entry.
//
// Evaluation is all-or-nothing: if any entry yields an undefined result, the
// error identifies that entry and no partial result is returned.
func Evaluate[V cmp.Ordered](p Predicate[V], m label.Map[V]) ([]bool, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil predicate", ErrBadForm)
	}

	out := make([]bool, len(m))
	for i, e := range m {
		ok, err := p.Match(e.Value, e.Label)
		if err != nil {
			if !errors.Is(err, ErrUndefined) {
				err = fmt.Errorf("%w: %w", ErrUndefined, err)
			}
			return nil, fmt.Errorf("entry %v (%q): %w", e.Value, e.Label, err)
		}
		out[i] = ok
	}
	return out, nil
}

// MapValues applies fn to every entry of m, in entry order, and returns one
// replacement value per entry.
func MapValues[V cmp.Ordered](fn ValueFunc[V], m label.Map[V]) []V {
	out := make([]V, len(m))
	for i, e := range m {
		out[i] = fn(e.Value, e.Label)
	}
	return out
}

// From normalizes the accepted predicate forms into the canonical Predicate.
//
// Accepted forms:
//
//   - a Predicate (returned as-is)
//   - func(V, string) bool
//   - func(V, string) (bool, error)
//   - a string naming a predicate in reg
//
// All call sites go through this adapter once; nothing downstream re-checks
// the shape. A string form with a nil registry is rejected.
func From[V cmp.Ordered](form any, reg *Registry[V]) (Predicate[V], error) {
	switch f := form.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrBadForm)
	case Predicate[V]:
		return f, nil
	case func(V, string) bool:
		return Func[V](f), nil
	case func(V, string) (bool, error):
		return TryFunc[V](f), nil
	case string:
		if reg == nil {
			return nil, fmt.Errorf("%w: named predicate %q requires a registry", ErrBadForm, f)
		}
		return reg.Named(f), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrBadForm, form)
	}
}
