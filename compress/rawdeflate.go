package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// RawDeflateCodec wraps a bare DEFLATE stream with no gzip or zlib
// container, used by some Bedrock chunk payloads.
type RawDeflateCodec struct{}

var _ Codec = RawDeflateCodec{}

// NewRawDeflateCodec returns a raw-deflate Codec.
func NewRawDeflateCodec() RawDeflateCodec {
	return RawDeflateCodec{}
}

// Compress deflate-compresses data at the library's default
// compression level, with no surrounding container.
func (RawDeflateCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("%w: flate writer: %v", errCompressionFailure, err)
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("%w: flate write: %v", errCompressionFailure, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: flate close: %v", errCompressionFailure, err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func (RawDeflateCodec) Decompress(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: flate read: %v", errCompressionFailure, err)
	}

	return out, nil
}
