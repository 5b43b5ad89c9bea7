package label

import (
	"cmp"
	"fmt"
)

// Placeholder is a partially specified value/label pair. It is constructed by
// the caller, resolved against an existing Map, and discarded.
//
// A placeholder may carry only a value (the label is looked up), only a label
// (the value is looked up), or both (passed through without a cross-check
// against the map; any resulting collision surfaces when the merged map is
// validated).
type Placeholder[V cmp.Ordered] struct {
	value    V
	label    string
	hasValue bool
	hasLabel bool
}

// Of returns a fully specified placeholder.
func Of[V cmp.Ordered](value V, lbl string) Placeholder[V] {
	return Placeholder[V]{value: value, label: lbl, hasValue: true, hasLabel: true}
}

// ForValue returns a value-only placeholder; the label is resolved from the map.
func ForValue[V cmp.Ordered](value V) Placeholder[V] {
	return Placeholder[V]{value: value, hasValue: true}
}

// ForLabel returns a label-only placeholder; the value is resolved from the map.
func ForLabel[V cmp.Ordered](lbl string) Placeholder[V] {
	return Placeholder[V]{label: lbl, hasLabel: true}
}

// Resolve completes the placeholder against the given map.
//
//   - both sides present: returned unchanged
//   - value only: the entry for that value, or ErrValueNotFound
//   - label only: the entry carrying that label, or ErrLabelNotFound
//   - neither: ErrEmptyPlaceholder
func (p Placeholder[V]) Resolve(m Map[V]) (Entry[V], error) {
	switch {
	case p.hasValue && p.hasLabel:
		return Entry[V]{Value: p.value, Label: p.label}, nil
	case p.hasValue:
		e, ok := m.Lookup(p.value)
		if !ok {
			return Entry[V]{}, fmt.Errorf("%w: %v", ErrValueNotFound, p.value)
		}
		return e, nil
	case p.hasLabel:
		e, ok := m.LookupLabel(p.label)
		if !ok {
			return Entry[V]{}, fmt.Errorf("%w: %q", ErrLabelNotFound, p.label)
		}
		return e, nil
	default:
		return Entry[V]{}, ErrEmptyPlaceholder
	}
}

// String returns a debug representation of the placeholder.
func (p Placeholder[V]) String() string {
	switch {
	case p.hasValue && p.hasLabel:
		return fmt.Sprintf("Placeholder(%v=%q)", p.value, p.label)
	case p.hasValue:
		return fmt.Sprintf("Placeholder(%v=?)", p.value)
	case p.hasLabel:
		return fmt.Sprintf("Placeholder(?=%q)", p.label)
	default:
		return "Placeholder(empty)"
	}
}
