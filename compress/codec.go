package compress

import (
	"fmt"

	"github.com/oakenshield/nbt/format"
)

// Compressor compresses a complete buffer of framed NBT bytes.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's transform.
//
// Error conditions:
//   - Returns error if input data is corrupted or uses the wrong
//     container for this codec
type Decompressor interface {
	// Decompress decompresses data and returns the original bytes.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the given
// compression scheme.
//
// Parameters:
//   - scheme: one of format.None, format.Gzip, format.Zlib, format.RawDeflate
//   - target: description of the caller's usage, used in the error message
func CreateCodec(scheme format.Compression, target string) (Codec, error) {
	switch scheme {
	case format.None:
		return NewNoneCodec(), nil
	case format.Gzip:
		return NewGzipCodec(), nil
	case format.Zlib:
		return NewZlibCodec(), nil
	case format.RawDeflate:
		return NewRawDeflateCodec(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, scheme)
	}
}

// GetCodec retrieves a built-in Codec for the given compression scheme.
// Unlike CreateCodec it returns a shared instance; safe for concurrent
// use since none of the built-in codecs hold mutable state between
// calls.
func GetCodec(scheme format.Compression) (Codec, error) {
	switch scheme {
	case format.None:
		return noneCodec, nil
	case format.Gzip:
		return gzipCodec, nil
	case format.Zlib:
		return zlibCodec, nil
	case format.RawDeflate:
		return rawDeflateCodec, nil
	default:
		return nil, fmt.Errorf("unsupported compression scheme: %s", scheme)
	}
}

var (
	noneCodec       = NewNoneCodec()
	gzipCodec       = NewGzipCodec()
	zlibCodec       = NewZlibCodec()
	rawDeflateCodec = NewRawDeflateCodec()
)
