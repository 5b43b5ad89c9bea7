package rowset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a compressed bitmap of row positions within a single vector.
// It wraps the official roaring implementation.
// Used for missing-value masks and per-value occurrence sets.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty row set.
func New() *Set {
	return &Set{
		rb: roaring.New(),
	}
}

// FromRows creates a row set containing the given positions.
func FromRows(rows ...uint32) *Set {
	s := New()
	s.rb.AddMany(rows)
	return s
}

// Add adds a row position to the set.
func (s *Set) Add(row uint32) {
	s.rb.Add(row)
}

// Remove removes a row position from the set.
func (s *Set) Remove(row uint32) {
	s.rb.Remove(row)
}

// Contains checks if a row position is in the set.
func (s *Set) Contains(row uint32) bool {
	return s.rb.Contains(row)
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of rows in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb: s.rb.Clone(),
	}
}

// Rows returns the row positions in ascending order.
func (s *Set) Rows() []uint32 {
	return s.rb.ToArray()
}

// Iterator returns an iterator over the row positions in ascending order.
func (s *Set) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// And computes the intersection with another set.
func (s *Set) And(other *Set) {
	s.rb.And(other.rb)
}

// Or computes the union with another set.
func (s *Set) Or(other *Set) {
	s.rb.Or(other.rb)
}

// Clear removes all rows from the set.
func (s *Set) Clear() {
	s.rb.Clear()
}
