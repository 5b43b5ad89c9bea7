// Package table provides ordered collections of labelled columns and the
// recursive metadata operations over them.
//
// A Table holds equally long, uniquely named columns. The Column interface is
// a closed variant set: labelled vectors and nested tables. Strip discards
// every column's label/description metadata; Backfill synthesizes labels for
// unlabelled values. Both fan out across columns, which are independent by
// construction.
package table
