package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry[int64]()

	require.NoError(t, reg.Register("niu", ValEq[int64](99)))

	p, ok := reg.Lookup("niu")
	require.True(t, ok)
	got, err := p.Match(99, "NIU")
	require.NoError(t, err)
	assert.True(t, got)

	_, ok = reg.Lookup("other")
	assert.False(t, ok)
}

func TestRegistryRejects(t *testing.T) {
	reg := NewRegistry[int64]()

	assert.ErrorIs(t, reg.Register("", ValEq[int64](1)), ErrBadForm)
	assert.ErrorIs(t, reg.Register("nil", nil), ErrBadForm)

	require.NoError(t, reg.Register("once", ValEq[int64](1)))
	assert.ErrorIs(t, reg.Register("once", ValEq[int64](2)), ErrBadForm)
}

func TestNamedResolvesLate(t *testing.T) {
	reg := NewRegistry[int64]()

	p := reg.Named("late")

	_, err := p.Match(1, "x")
	require.ErrorIs(t, err, ErrNotRegistered)

	require.NoError(t, reg.Register("late", ValEq[int64](1)))

	got, err := p.Match(1, "x")
	require.NoError(t, err)
	assert.True(t, got)
}
