// Package predicate provides boolean and value-producing functions evaluated
// over the (value, label) pairs of a label map.
//
// Predicates are label-set sized, not data sized: a vector with a million rows
// and five labelled codes evaluates a predicate exactly five times.
//
// # Predicate Forms
//
// Three forms are accepted and normalized once, at the boundary, by From:
//
//   - a plain function: func(val V, lbl string) bool
//   - a combinator expression over the val/lbl fields:
//     predicate.Or(predicate.ValGte[int64](90), predicate.LblEq[int64]("NIU"))
//   - a name resolved in a Registry: reg.Named("niu-codes")
//
// # Combinators
//
//   - ValEq, ValIn, ValGt, ValGte, ValLt, ValLte, ValRange: value tests
//   - LblEq, LblIn, LblContains, LblPrefix: label tests
//   - And, Or, Not: boolean composition
//
// # Undefined Results
//
// A predicate used for boolean selection must produce a definite result for
// every entry. TryFunc predicates (and anything composed from them) may
// return an error instead; Evaluate then aborts, wrapping ErrUndefined and
// identifying the offending entry.
package predicate
