// Package codec centralizes snapshot encoding for labelled vectors.
//
// Labelgo itself performs no I/O; sources and sinks exchange labelled vectors
// as bytes produced and consumed through a Codec. Snapshot headers written by
// callers should record the codec name so bytes stay self-describing.
package codec

import (
	"fmt"
	"strings"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Compressed variants compose a compressor with a base codec and are named
// "<compressor>+<base>", e.g. "zstd+json" or "lz4+go-json".
func ByName(name string) (Codec, bool) {
	if comp, base, ok := strings.Cut(name, "+"); ok {
		inner, found := ByName(base)
		if !found {
			return nil, false
		}
		switch comp {
		case "zstd":
			return Zstd(inner), true
		case "lz4":
			return LZ4(inner), true
		default:
			return nil, false
		}
	}

	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
