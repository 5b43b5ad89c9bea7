package labelgo

import (
	"cmp"
	"context"

	"github.com/hupe1980/labelgo/codec"
	"github.com/hupe1980/labelgo/label"
)

// Snapshot is the interchange shape for labelled vectors. Sources (file
// format/DDI readers) hand this shape in; sinks (factor renderers,
// re-serializers) take it out. Missing lists masked row positions.
type Snapshot[V cmp.Ordered] struct {
	Name        string       `json:"name,omitempty"`
	Description string       `json:"description,omitempty"`
	Values      []V          `json:"values"`
	Labels      label.Map[V] `json:"labels,omitempty"`
	Missing     []uint32     `json:"missing,omitempty"`
}

// Snapshot encodes the vector with the given codec. A nil codec uses
// codec.Default.
func (v *Vector[V]) Snapshot(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}

	snap := Snapshot[V]{
		Name:        v.name,
		Description: v.description,
		Values:      v.Values(),
		Labels:      v.Labels(),
		Missing:     v.missing.Rows(),
	}

	b, err := c.Marshal(snap)
	v.logger.LogSnapshot(context.Background(), c.Name(), len(b), err)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// FromSnapshot decodes a vector previously encoded with the same codec. The
// label map is re-validated on open; masked row positions must be in range.
func FromSnapshot[V cmp.Ordered](data []byte, c codec.Codec, optFns ...Option) (*Vector[V], error) {
	if c == nil {
		c = codec.Default
	}

	var snap Snapshot[V]
	if err := c.Unmarshal(data, &snap); err != nil {
		return nil, err
	}

	opts := []Option{WithName(snap.Name), WithDescription(snap.Description)}
	opts = append(opts, optFns...)

	v, err := New(snap.Values, snap.Labels, opts...)
	if err != nil {
		return nil, err
	}
	if err := v.restoreMissing(snap.Missing); err != nil {
		return nil, err
	}
	return v, nil
}
