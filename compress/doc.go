// Package compress provides the compression codecs NBT streams may be
// wrapped in on disk (spec §1 "Out of scope: compression/decompression
// is an external, composable concern" and §6 "File signatures").
//
// # Overview
//
// NBT itself never compresses anything; a Reader or Writer calls into
// this package as a pre/post step once the dialect has been chosen.
// Three schemes appear in the wild:
//
//   - Gzip: the common container for Java-edition disk saves (magic
//     1F 8B).
//   - Zlib: the common container for Bedrock-edition disk saves (magic
//     78 01/9C/DA).
//   - RawDeflate: a bare DEFLATE stream with no container, used for
//     some Bedrock chunk payloads.
//
// # Architecture
//
// The package defines three core interfaces, matched to a single
// built-in codec per scheme:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// CreateCodec and GetCodec resolve a format.Compression value to its
// Codec:
//
//	codec, err := compress.GetCodec(format.Gzip)
//	compressed, err := codec.Compress(payload)
//	original, err := codec.Decompress(compressed)
//
// The gzip, zlib and raw-deflate codecs wrap github.com/klauspost/compress
// (NoneCodec passes data through untouched), which provides faster
// and more memory-efficient gzip/zlib/flate implementations than the
// standard library while keeping the standard container formats.
package compress
