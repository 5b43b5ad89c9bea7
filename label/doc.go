// Package label provides the value<->label table attached to a categorical
// vector, as found in survey and census microdata.
//
// Unlike an ordinary enumeration, values and labels are independently mutable:
// a value may occur in the data without a label, a label may describe a code
// that never occurs in a particular extract, and transforms may merge or split
// value/label pairs. The one hard invariant is that a Map is a bijection
// within itself: no duplicate values, no duplicate labels. Validate enforces
// it and names every offender.
//
// A Placeholder is a transient, partially specified pair used by callers to
// reference an entry by value or by label alone:
//
//	e, err := label.ForLabel[int64]("Yes").Resolve(m) // -> {10 "Yes"}
package label
