// Package rowset provides compressed sets of row positions backed by
// Roaring Bitmaps.
//
// A Set tracks which rows of a vector share some property. Labelgo uses
// row sets in two places:
//
//   - the missing-value mask of a Vector (rows with no value), and
//   - transient per-value occurrence sets built during transforms, so that
//     value rewrites and prune checks touch only the rows that matter.
//
// Sets are position-based and say nothing about the values themselves.
package rowset
