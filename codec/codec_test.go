package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name   string   `json:"name"`
	Values []int64  `json:"values"`
	Labels []string `json:"labels"`
}

func samplePayload() payload {
	return payload{
		Name:   "HEALTH",
		Values: []int64{10, 10, 11, 20, 30, 99},
		Labels: []string{"Yes", "Yes-ish", "No", "Maybe", "NIU"},
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name  string
		found bool
	}{
		{"json", true},
		{"go-json", true},
		{"zstd+json", true},
		{"zstd+go-json", true},
		{"lz4+json", true},
		{"lz4+go-json", true},
		{"gzip+json", false},
		{"zstd+msgpack", false},
		{"msgpack", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, found := ByName(tt.name)
			require.Equal(t, tt.found, found)
			if found {
				assert.Equal(t, tt.name, c.Name())
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"json", "go-json", "zstd+json", "zstd+go-json", "lz4+json", "lz4+go-json"} {
		t.Run(name, func(t *testing.T) {
			c, found := ByName(name)
			require.True(t, found)

			in := samplePayload()
			b, err := c.Marshal(in)
			require.NoError(t, err)

			var out payload
			require.NoError(t, c.Unmarshal(b, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestJSONCompatibility(t *testing.T) {
	// Stdlib and go-json must stay wire-compatible.
	in := samplePayload()

	b, err := (JSON{}).Marshal(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, (GoJSON{}).Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestCompressedNilInnerUsesDefault(t *testing.T) {
	assert.Equal(t, "zstd+"+Default.Name(), Zstd(nil).Name())
	assert.Equal(t, "lz4+"+Default.Name(), LZ4(nil).Name())
}

func TestMustMarshal(t *testing.T) {
	b := MustMarshal(nil, samplePayload())
	assert.NotEmpty(t, b)

	assert.Panics(t, func() {
		MustMarshal(JSON{}, make(chan int))
	})
}
