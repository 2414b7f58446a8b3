// Package varint implements the unsigned LEB128 varint and zig-zag
// encodings used by the little-varint NBT dialect (spec §4.C "Varint
// (unsigned)" and "Zig-zag decode"), grounded on the same
// least-significant-group-first shift-and-mask approach as
// creachadair-binpack's PackUint64/PackInt64 (big-endian there, base-128
// here) and mebo's encoding.VarStringEncoder.WriteVarint.
package varint

import "fmt"

// MaxIntShift and MaxLongShift bound the accumulated shift spec §4.C
// allows before a varint is considered malformed: 31 bits for a 32-bit
// value, 63 bits for a 64-bit value.
const (
	MaxIntShift  = 31
	MaxLongShift = 63
)

// ErrOverflow is returned when a varint's continuation bit stays set
// past the width limit for the value being decoded.
type ErrOverflow struct {
	MaxShift int
}

func (e *ErrOverflow) Error() string {
	return fmt.Sprintf("varint: accumulated shift exceeds %d-bit limit", e.MaxShift+1)
}

// AppendUint32 appends the unsigned varint encoding of v to dst.
func AppendUint32(dst []byte, v uint32) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// AppendUint64 appends the unsigned varint encoding of v to dst.
func AppendUint64(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// ReadUint32 decodes an unsigned varint from b, returning the value, the
// number of bytes consumed, and an error if the buffer is exhausted
// before a terminating byte or the shift exceeds MaxIntShift.
func ReadUint32(b []byte) (uint32, int, error) {
	var result uint32
	var shift uint
	for i := 0; i < len(b); i++ {
		c := b[i]
		result |= uint32(c&0x7F) << shift
		if c&0x80 == 0 {
			return result, i + 1, nil
		}
		shift += 7
		if shift > MaxIntShift {
			return 0, 0, &ErrOverflow{MaxShift: MaxIntShift}
		}
	}

	return 0, 0, fmt.Errorf("varint: buffer exhausted before terminating byte")
}

// ReadUint64 decodes an unsigned varint from b, mirroring ReadUint32 at
// 64-bit width.
func ReadUint64(b []byte) (uint64, int, error) {
	var result uint64
	var shift uint
	for i := 0; i < len(b); i++ {
		c := b[i]
		result |= uint64(c&0x7F) << shift
		if c&0x80 == 0 {
			return result, i + 1, nil
		}
		shift += 7
		if shift > MaxLongShift {
			return 0, 0, &ErrOverflow{MaxShift: MaxLongShift}
		}
	}

	return 0, 0, fmt.Errorf("varint: buffer exhausted before terminating byte")
}

// ZigZagEncode32 maps a signed 32-bit value onto the unsigned range so
// small-magnitude negative numbers stay small-magnitude after encoding.
func ZigZagEncode32(v int32) uint32 {
	return uint32(v<<1) ^ uint32(v>>31)
}

// ZigZagDecode32 inverts ZigZagEncode32.
func ZigZagDecode32(v uint32) int32 {
	return int32(v>>1) ^ -int32(v&1)
}

// ZigZagEncode64 maps a signed 64-bit value onto the unsigned range, as
// ZigZagEncode32 does at 32-bit width.
func ZigZagEncode64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// ZigZagDecode64 inverts ZigZagEncode64.
func ZigZagDecode64(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}
