package table

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrColumnMismatch is returned when columns of differing length, or with
// duplicate names, are combined into one table.
var ErrColumnMismatch = errors.New("columns do not form a table")

// Column is one member of the closed variant set strip and backfill operate
// over: labelled vectors and nested tables both implement it. Dispatch
// happens through these methods, never through runtime type inspection.
type Column interface {
	// Name returns the column name.
	Name() string
	// Len returns the number of rows.
	Len() int
	// StripMetadata returns a copy with all label/description metadata
	// removed.
	StripMetadata() Column
	// BackfillLabels returns a copy where every distinct unlabelled value
	// carries a synthesized label.
	BackfillLabels() (Column, error)
}

// Table is an ordered collection of equally long, uniquely named columns.
// Like vectors, tables are copy-on-transform.
type Table struct {
	name string
	cols []Column
}

// New creates a table from the given columns. All columns must share one
// length and carry distinct, non-empty names.
func New(name string, cols ...Column) (*Table, error) {
	byName := make(map[string]struct{}, len(cols))
	for i, c := range cols {
		if c.Name() == "" {
			return nil, fmt.Errorf("%w: column %d has no name", ErrColumnMismatch, i)
		}
		if _, ok := byName[c.Name()]; ok {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrColumnMismatch, c.Name())
		}
		byName[c.Name()] = struct{}{}
		if c.Len() != cols[0].Len() {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", ErrColumnMismatch, c.Name(), c.Len(), cols[0].Len())
		}
	}

	return &Table{name: name, cols: cols}, nil
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.cols)
}

// Columns returns the columns in order.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.cols))
	copy(out, t.cols)
	return out
}

// Column returns the named column.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.cols {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Strip removes all label/description metadata from every column, recursing
// into nested tables. Columns are independent, so the work fans out across
// them; column order is preserved.
func (t *Table) Strip(ctx context.Context) (*Table, error) {
	out := make([]Column, len(t.cols))

	g, _ := errgroup.WithContext(ctx)
	for i, c := range t.cols {
		g.Go(func() error {
			out[i] = c.StripMetadata()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Table{name: t.name, cols: out}, nil
}

// Backfill synthesizes labels for every unlabelled value in every column,
// recursing into nested tables. Any column failure aborts the whole call.
func (t *Table) Backfill(ctx context.Context) (*Table, error) {
	out := make([]Column, len(t.cols))

	g, _ := errgroup.WithContext(ctx)
	for i, c := range t.cols {
		g.Go(func() error {
			nc, err := c.BackfillLabels()
			if err != nil {
				return fmt.Errorf("column %q: %w", c.Name(), err)
			}
			out[i] = nc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Table{name: t.name, cols: out}, nil
}

// StripMetadata implements Column, letting a table nest inside another table.
func (t *Table) StripMetadata() Column {
	out, _ := t.Strip(context.Background())
	return out
}

// BackfillLabels implements Column.
func (t *Table) BackfillLabels() (Column, error) {
	return t.Backfill(context.Background())
}
