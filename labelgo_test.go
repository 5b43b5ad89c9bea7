package labelgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/labelgo/codec"
	"github.com/hupe1980/labelgo/label"
	"github.com/hupe1980/labelgo/predicate"
)

func yesNoMap() label.Map[int64] {
	return label.Map[int64]{
		{Value: 10, Label: "Yes"},
		{Value: 11, Label: "Yes-ish"},
		{Value: 20, Label: "No"},
		{Value: 30, Label: "Maybe"},
		{Value: 99, Label: "NIU"},
	}
}

func yesNoData() []int64 {
	return []int64{10, 10, 11, 20, 30, 99, 30, 10}
}

func TestNew(t *testing.T) {
	v, err := New(yesNoData(), yesNoMap(), WithName("HEALTH"), WithDescription("Self-reported health"))
	require.NoError(t, err)

	assert.Equal(t, 8, v.Len())
	assert.Equal(t, "HEALTH", v.Name())
	assert.Equal(t, "Self-reported health", v.Description())
	assert.Equal(t, 0, v.MissingCount())

	lbl, ok := v.Label(30)
	require.True(t, ok)
	assert.Equal(t, "Maybe", lbl)

	_, ok = v.Label(31)
	assert.False(t, ok)

	val, ok := v.Value(5)
	require.True(t, ok)
	assert.Equal(t, int64(99), val)
}

func TestNewCopiesInputs(t *testing.T) {
	values := yesNoData()
	labels := yesNoMap()

	v, err := New(values, labels)
	require.NoError(t, err)

	values[0] = 77
	labels[0].Label = "changed"

	got, _ := v.Value(0)
	assert.Equal(t, int64(10), got)

	lbl, _ := v.Label(10)
	assert.Equal(t, "Yes", lbl)
}

func TestNewRejectsBrokenBijection(t *testing.T) {
	_, err := New([]int64{1}, label.Map[int64]{
		{Value: 1, Label: "One"},
		{Value: 1, Label: "Uno"},
	})

	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"1"}, ce.Values)
}

func TestNewKeepsEntryOrder(t *testing.T) {
	m := label.Map[int64]{
		{Value: 99, Label: "NIU"},
		{Value: 10, Label: "Yes"},
	}

	v, err := New([]int64{10}, m)
	require.NoError(t, err)
	assert.Equal(t, []int64{99, 10}, v.Labels().Values())
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew([]int64{1}, label.Map[int64]{
			{Value: 1, Label: "One"},
			{Value: 2, Label: "One"},
		})
	})
}

func TestAccessorsReturnCopies(t *testing.T) {
	v := MustNew(yesNoData(), yesNoMap())

	vals := v.Values()
	vals[0] = 77
	got, _ := v.Value(0)
	assert.Equal(t, int64(10), got)

	labels := v.Labels()
	labels[0].Label = "changed"
	lbl, _ := v.Label(10)
	assert.Equal(t, "Yes", lbl)
}

func TestVectorString(t *testing.T) {
	v := MustNew(yesNoData(), yesNoMap(), WithName("HEALTH"))
	assert.Equal(t, "Vector(HEALTH: 8 rows, 5 labels, 0 missing)", v.String())

	u := MustNew[int64](nil, nil)
	assert.Equal(t, "Vector(<unnamed>: 0 rows, 0 labels, 0 missing)", u.String())
}

func TestStrip(t *testing.T) {
	v := MustNew(yesNoData(), yesNoMap(), WithName("HEALTH"), WithDescription("desc"))
	v, err := v.MarkMissing(predicate.ValGte[int64](90))
	require.NoError(t, err)

	s := v.Strip()

	assert.Empty(t, s.Labels())
	assert.Empty(t, s.Description())
	// The name is an identifier, not metadata.
	assert.Equal(t, "HEALTH", s.Name())
	assert.Equal(t, v.Len(), s.Len())
	// The missing mask is data, not metadata.
	assert.True(t, s.IsMissing(5))
}

func TestSnapshotRoundTrip(t *testing.T) {
	for _, name := range []string{"json", "go-json", "zstd+json", "lz4+go-json"} {
		t.Run(name, func(t *testing.T) {
			c, found := codec.ByName(name)
			require.True(t, found)

			v := MustNew(yesNoData(), yesNoMap(), WithName("HEALTH"), WithDescription("desc"))
			v, err := v.MarkMissing(predicate.ValGte[int64](90))
			require.NoError(t, err)

			b, err := v.Snapshot(c)
			require.NoError(t, err)

			got, err := FromSnapshot[int64](b, c)
			require.NoError(t, err)

			assert.Equal(t, "HEALTH", got.Name())
			assert.Equal(t, "desc", got.Description())
			assert.Equal(t, v.Values(), got.Values())
			assert.Equal(t, v.Labels(), got.Labels())
			assert.True(t, got.IsMissing(5))
			assert.Equal(t, 1, got.MissingCount())
		})
	}
}

func TestSnapshotNilCodecUsesDefault(t *testing.T) {
	v := MustNew(yesNoData(), yesNoMap())

	b, err := v.Snapshot(nil)
	require.NoError(t, err)

	got, err := FromSnapshot[int64](b, nil)
	require.NoError(t, err)
	assert.Equal(t, v.Values(), got.Values())
}

func TestFromSnapshotRejectsBadBytes(t *testing.T) {
	_, err := FromSnapshot[int64]([]byte("not json"), codec.JSON{})
	assert.Error(t, err)
}

func TestFromSnapshotRejectsOutOfRangeMissing(t *testing.T) {
	b := codec.MustMarshal(codec.JSON{}, Snapshot[int64]{
		Values:  []int64{1, 2},
		Missing: []uint32{5},
	})

	_, err := FromSnapshot[int64](b, codec.JSON{})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestFromSnapshotRejectsBrokenBijection(t *testing.T) {
	b := codec.MustMarshal(codec.JSON{}, Snapshot[int64]{
		Values: []int64{1},
		Labels: label.Map[int64]{
			{Value: 1, Label: "One"},
			{Value: 2, Label: "One"},
		},
	})

	_, err := FromSnapshot[int64](b, codec.JSON{})
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"One"}, ce.Labels)
}
