package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ZlibCodec wraps the zlib container (magic 78 01/9C/DA), the common
// disk format for Bedrock-edition saves.
type ZlibCodec struct{}

var _ Codec = ZlibCodec{}

// NewZlibCodec returns a zlib Codec.
func NewZlibCodec() ZlibCodec {
	return ZlibCodec{}
}

// Compress zlib-compresses data at the library's default compression
// level.
func (ZlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("%w: zlib write: %v", errCompressionFailure, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: zlib close: %v", errCompressionFailure, err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress. It returns an error if data does not
// carry the zlib header or fails its Adler-32 checksum.
func (ZlibCodec) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: zlib header: %v", errCompressionFailure, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: zlib read: %v", errCompressionFailure, err)
	}

	return out, nil
}
