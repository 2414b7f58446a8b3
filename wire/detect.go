package wire

import (
	"encoding/binary"

	"github.com/oakenshield/nbt/compress"
	"github.com/oakenshield/nbt/format"
)

// Detect decodes raw bytes without a caller-pinned dialect, performing
// the bounded retry search of spec §4.F: compression, then endianness,
// then root-name presence, with the Bedrock header checked
// deterministically whenever the little-endian dialect is tried. The
// search is at most 2 × 3 × 2 = 12 full read attempts; the returned
// error, on total failure, is the first error encountered.
func Detect(raw []byte) (any, format.Envelope, error) {
	if scheme, ok := magicCompression(raw); ok {
		data, err := decompress(scheme, raw)
		if err != nil {
			return nil, format.Envelope{}, err
		}

		root, env, err := probeEndianAndRootName(data)
		if err != nil {
			return nil, format.Envelope{}, err
		}
		env.Compression = scheme

		return root, env, nil
	}

	var firstErr error
	for _, scheme := range []format.Compression{format.None, format.RawDeflate} {
		data := raw
		if scheme != format.None {
			d, err := decompress(scheme, raw)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			data = d
		}

		root, env, err := probeEndianAndRootName(data)
		if err == nil {
			env.Compression = scheme
			return root, env, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	return nil, format.Envelope{}, firstErr
}

// magicCompression peeks the first bytes for an unambiguous container
// signature (spec §6 "File signatures").
func magicCompression(raw []byte) (format.Compression, bool) {
	if len(raw) >= 2 && raw[0] == 0x1f && raw[1] == 0x8b {
		return format.Gzip, true
	}
	if len(raw) >= 2 && raw[0] == 0x78 {
		return format.Zlib, true
	}

	return format.None, false
}

func decompress(scheme format.Compression, raw []byte) ([]byte, error) {
	codec, err := compress.GetCodec(scheme)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(raw)
}

func probeEndianAndRootName(data []byte) (any, format.Envelope, error) {
	var firstErr error

	for _, dialect := range []format.Endian{format.Big, format.Little, format.LittleVarint} {
		bedrock := dialect == format.Little && bedrockHeaderPresent(data)

		for _, named := range []bool{true, false} {
			root, env, err := ReadRoot(data,
				WithReadEndian(dialect),
				WithReadRootName(named),
				WithReadBedrock(bedrock),
				WithReadStrict(true),
			)
			if err == nil {
				return root, env, nil
			}
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return nil, format.Envelope{}, firstErr
}

// bedrockHeaderPresent reports whether data's first eight bytes look
// like a Bedrock level header: the payload-length field equals the
// remaining buffer size.
func bedrockHeaderPresent(data []byte) bool {
	if len(data) < 8 {
		return false
	}

	declared := binary.LittleEndian.Uint32(data[4:8])

	return uint64(declared) == uint64(len(data)-8)
}
