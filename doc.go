// Package labelgo manages labelled categorical vectors: numeric data columns
// whose codes carry human-readable labels, as found in survey and census
// microdata (code 10 -> "Yes").
//
// Labels and values are independently mutable. A value may occur in the data
// without a label, a label may describe a code absent from a particular
// extract, and transforms may merge codes onto one label or retarget them.
// Every transform preserves one invariant: within the label map, value<->label
// is a bijection. Transforms that would break it fail with a typed error
// naming the offenders.
//
// # Quick Start
//
//	v, _ := labelgo.New([]int64{10, 10, 11, 20, 30, 99, 30, 10}, label.Map[int64]{
//	    {Value: 10, Label: "Yes"},
//	    {Value: 11, Label: "Yes-ish"},
//	    {Value: 20, Label: "No"},
//	    {Value: 30, Label: "Maybe"},
//	    {Value: 99, Label: "NIU"},
//	})
//
//	// Mask not-in-universe codes.
//	v, _ = v.MarkMissing(predicate.ValGte[int64](90))
//
//	// Merge the two affirmative codes.
//	v, _ = v.Relabel(labelgo.Retarget(
//	    label.Of[int64](10, "Yes or Yes-ish"),
//	    predicate.ValIn[int64](10, 11),
//	))
//
// # Transforms
//
//   - MarkMissing: drop selected entries and mask their data rows
//   - Collapse: many-to-one value remapping that merges categories
//   - Relabel: predicate-selected retargeting to an explicit destination
//   - AddLabels / AddLabelsForValues: union in new entries, or backfill
//     labels for unlabelled values
//   - PruneUnused: drop entries whose value never occurs in the data
//   - Strip: discard all label/description metadata
//
// All transforms are copy-on-write: the receiver is never mutated, and
// independent vectors never share state.
//
// # Errors
//
//   - *ConfigurationError: malformed call (empty placeholder, bad predicate form)
//   - *LookupError: placeholder references a value/label absent from the map
//   - *ValidationError: predicate produced an undefined result
//   - *ConflictError: a transform would break the bijection; lists offenders
//
// # Subpackages
//
//   - label: the value<->label table and placeholders
//   - predicate: predicate forms, combinators, and the named registry
//   - table: ordered column collections with recursive strip/backfill
//   - codec: snapshot encoding (JSON, go-json, zstd/lz4 compressed)
//   - rowset: roaring-bitmap row position sets
//   - project: static project -> variable-URL configuration table
package labelgo
