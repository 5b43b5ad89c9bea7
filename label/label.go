package label

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrValueNotFound is returned when a placeholder references a value
	// that has no entry in the current map.
	ErrValueNotFound = errors.New("value not found in label map")

	// ErrLabelNotFound is returned when a placeholder references a label
	// that has no entry in the current map.
	ErrLabelNotFound = errors.New("label not found in label map")

	// ErrEmptyPlaceholder is returned when a placeholder carries neither a
	// value nor a label.
	ErrEmptyPlaceholder = errors.New("placeholder needs a value or a label")
)

// DuplicateError reports a bijection violation: one or more values mapped to
// several labels, or one or more labels mapped to several values.
type DuplicateError struct {
	// Values holds the stringified values that appear in more than one entry.
	Values []string
	// Labels holds the labels that appear in more than one entry.
	Labels []string
}

func (e *DuplicateError) Error() string {
	var parts []string
	if len(e.Values) > 0 {
		parts = append(parts, fmt.Sprintf("duplicate values [%s]", strings.Join(e.Values, ", ")))
	}
	if len(e.Labels) > 0 {
		parts = append(parts, fmt.Sprintf("duplicate labels [%s]", strings.Join(e.Labels, ", ")))
	}
	return "label map is not a bijection: " + strings.Join(parts, "; ")
}

// Entry pairs one code with its human-readable label.
type Entry[V cmp.Ordered] struct {
	Value V      `json:"value"`
	Label string `json:"label"`
}

// Map is the ordered value<->label table for one vector.
//
// A valid map is a bijection: no two entries share a value and no two entries
// share a label. Entry order is preserved as given; mutating operations in the
// root package emit maps in ascending-value order.
type Map[V cmp.Ordered] []Entry[V]

// Lookup returns the entry for the given value.
func (m Map[V]) Lookup(value V) (Entry[V], bool) {
	for _, e := range m {
		if e.Value == value {
			return e, true
		}
	}
	return Entry[V]{}, false
}

// LookupLabel returns the entry carrying the given label.
func (m Map[V]) LookupLabel(lbl string) (Entry[V], bool) {
	for _, e := range m {
		if e.Label == lbl {
			return e, true
		}
	}
	return Entry[V]{}, false
}

// Has reports whether the map contains an entry for the given value.
func (m Map[V]) Has(value V) bool {
	_, ok := m.Lookup(value)
	return ok
}

// Values returns the values in entry order.
func (m Map[V]) Values() []V {
	out := make([]V, len(m))
	for i, e := range m {
		out[i] = e.Value
	}
	return out
}

// Labels returns the labels in entry order.
func (m Map[V]) Labels() []string {
	out := make([]string, len(m))
	for i, e := range m {
		out[i] = e.Label
	}
	return out
}

// Clone returns a copy of the map.
func (m Map[V]) Clone() Map[V] {
	return slices.Clone(m)
}

// Sorted returns a copy of the map in ascending-value order.
func (m Map[V]) Sorted() Map[V] {
	out := slices.Clone(m)
	slices.SortStableFunc(out, func(a, b Entry[V]) int {
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}

// Validate checks that the map is a bijection. It returns a *DuplicateError
// naming every offending value and label, or nil if the map is valid.
func (m Map[V]) Validate() error {
	valueCount := make(map[V]int, len(m))
	labelCount := make(map[string]int, len(m))
	for _, e := range m {
		valueCount[e.Value]++
		labelCount[e.Label]++
	}

	var dup DuplicateError
	for _, e := range m {
		if valueCount[e.Value] > 1 {
			s := fmt.Sprint(e.Value)
			if !slices.Contains(dup.Values, s) {
				dup.Values = append(dup.Values, s)
			}
		}
		if labelCount[e.Label] > 1 {
			if !slices.Contains(dup.Labels, e.Label) {
				dup.Labels = append(dup.Labels, e.Label)
			}
		}
	}
	if len(dup.Values) > 0 || len(dup.Labels) > 0 {
		slices.Sort(dup.Values)
		slices.Sort(dup.Labels)
		return &dup
	}
	return nil
}
