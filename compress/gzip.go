package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec wraps the gzip container (magic 1F 8B), the common disk
// format for Java-edition saves.
type GzipCodec struct{}

var _ Codec = GzipCodec{}

// NewGzipCodec returns a gzip Codec.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// Compress gzip-compresses data at the library's default compression
// level.
func (GzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("%w: gzip write: %v", errCompressionFailure, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: gzip close: %v", errCompressionFailure, err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress. It returns an error if data does not
// carry the gzip magic or is truncated.
func (GzipCodec) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: gzip header: %v", errCompressionFailure, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: gzip read: %v", errCompressionFailure, err)
	}

	return out, nil
}
