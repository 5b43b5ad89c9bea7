package rowset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBasics(t *testing.T) {
	s := New()
	assert.True(t, s.IsEmpty())

	s.Add(3)
	s.Add(7)
	s.Add(3)

	assert.False(t, s.IsEmpty())
	assert.Equal(t, uint64(2), s.Cardinality())
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))

	s.Remove(3)
	assert.False(t, s.Contains(3))
}

func TestFromRows(t *testing.T) {
	s := FromRows(5, 1, 9)
	assert.Equal(t, []uint32{1, 5, 9}, s.Rows())
}

func TestCloneIsIndependent(t *testing.T) {
	s := FromRows(1, 2)
	c := s.Clone()

	c.Add(3)
	assert.False(t, s.Contains(3))
	assert.True(t, c.Contains(3))
}

func TestIterator(t *testing.T) {
	s := FromRows(2, 4, 6)

	var got []uint32
	for row := range s.Iterator() {
		got = append(got, row)
	}
	assert.Equal(t, []uint32{2, 4, 6}, got)
}

func TestIteratorEarlyStop(t *testing.T) {
	s := FromRows(1, 2, 3)

	var got []uint32
	for row := range s.Iterator() {
		got = append(got, row)
		if len(got) == 2 {
			break
		}
	}
	require.Len(t, got, 2)
}

func TestSetOps(t *testing.T) {
	a := FromRows(1, 2, 3)
	b := FromRows(2, 3, 4)

	and := a.Clone()
	and.And(b)
	assert.Equal(t, []uint32{2, 3}, and.Rows())

	or := a.Clone()
	or.Or(b)
	assert.Equal(t, []uint32{1, 2, 3, 4}, or.Rows())

	or.Clear()
	assert.True(t, or.IsEmpty())
}
