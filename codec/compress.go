package codec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Zstd wraps a base codec with zstd compression. If inner is nil, Default is
// used. Label maps for long categorical columns compress well; typical
// snapshots shrink by 3-5x.
func Zstd(inner Codec) Codec {
	if inner == nil {
		inner = Default
	}
	// EncodeAll/DecodeAll on shared coders are safe for concurrent use.
	enc, _ := zstd.NewWriter(nil)
	dec, _ := zstd.NewReader(nil)

	return &zstdCodec{inner: inner, enc: enc, dec: dec}
}

type zstdCodec struct {
	inner Codec
	enc   *zstd.Encoder
	dec   *zstd.Decoder
}

// Marshal encodes via the base codec, then compresses.
func (c *zstdCodec) Marshal(v any) ([]byte, error) {
	b, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	return c.enc.EncodeAll(b, nil), nil
}

// Unmarshal decompresses, then decodes via the base codec.
func (c *zstdCodec) Unmarshal(data []byte, v any) error {
	b, err := c.dec.DecodeAll(data, nil)
	if err != nil {
		return err
	}
	return c.inner.Unmarshal(b, v)
}

// Name returns "zstd+" followed by the base codec name.
func (c *zstdCodec) Name() string { return "zstd+" + c.inner.Name() }

// LZ4 wraps a base codec with LZ4 frame compression. If inner is nil, Default
// is used. Faster than zstd at a lower compression ratio.
func LZ4(inner Codec) Codec {
	if inner == nil {
		inner = Default
	}
	return &lz4Codec{inner: inner}
}

type lz4Codec struct {
	inner Codec
}

// Marshal encodes via the base codec, then compresses into an LZ4 frame.
func (c *lz4Codec) Marshal(v any) ([]byte, error) {
	b, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decompresses the LZ4 frame, then decodes via the base codec.
func (c *lz4Codec) Unmarshal(data []byte, v any) error {
	zr := lz4.NewReader(bytes.NewReader(data))
	b, err := io.ReadAll(zr)
	if err != nil {
		return err
	}
	return c.inner.Unmarshal(b, v)
}

// Name returns "lz4+" followed by the base codec name.
func (c *lz4Codec) Name() string { return "lz4+" + c.inner.Name() }
