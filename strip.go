package labelgo

import (
	"slices"

	"github.com/hupe1980/labelgo/rowset"
	"github.com/hupe1980/labelgo/table"
)

// Vectors participate in table-level strip/backfill.
var _ table.Column = (*Vector[int64])(nil)

// Strip returns the bare data column: no label map, no description, no other
// descriptive metadata. The variable name is an identifier rather than
// metadata and is kept, as is the missing mask; masked rows are data.
func (v *Vector[V]) Strip() *Vector[V] {
	return &Vector[V]{
		values:  slices.Clone(v.values),
		missing: v.missing.Clone(),
		name:    v.name,
		logger:  v.logger,
	}
}

// StripMetadata implements table.Column.
func (v *Vector[V]) StripMetadata() table.Column {
	return v.Strip()
}

// BackfillLabels implements table.Column. It is AddLabelsForValues with the
// default labeller over all unlabelled data values.
func (v *Vector[V]) BackfillLabels() (table.Column, error) {
	out, err := v.AddLabelsForValues(nil)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// restoreMissing rebuilds the missing mask from explicit row positions.
// Used when reopening snapshots.
func (v *Vector[V]) restoreMissing(rows []uint32) error {
	for _, row := range rows {
		if int(row) >= len(v.values) {
			return &ValidationError{Reason: "missing row position out of range"}
		}
	}
	v.missing = rowset.FromRows(rows...)
	return nil
}
