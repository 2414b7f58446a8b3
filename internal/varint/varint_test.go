package varint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint32RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 127, 128, 300, 1 << 20, 1<<31 - 1, 1 << 31} {
		enc := AppendUint32(nil, v)
		got, n, err := ReadUint32(enc)
		require.NoError(t, err)
		require.Equal(t, len(enc), n)
		require.Equal(t, v, got)
	}
}

func TestUint64RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 1 << 40, 1<<63 - 1} {
		enc := AppendUint64(nil, v)
		got, n, err := ReadUint64(enc)
		require.NoError(t, err)
		require.Equal(t, len(enc), n)
		require.Equal(t, v, got)
	}
}

func TestReadUint32Overflow(t *testing.T) {
	// Five continuation bytes exceeds the 31-bit shift budget.
	b := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	_, _, err := ReadUint32(b)
	require.Error(t, err)
	var overflow *ErrOverflow
	require.ErrorAs(t, err, &overflow)
}

func TestReadUint32Truncated(t *testing.T) {
	_, _, err := ReadUint32([]byte{0x80, 0x80})
	require.Error(t, err)
}

func TestZigZag32RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 2, -2, 1<<31 - 1, -1 << 31} {
		require.Equal(t, v, ZigZagDecode32(ZigZagEncode32(v)))
	}
	// Small magnitude negatives should stay small after zig-zag.
	require.Equal(t, uint32(1), ZigZagEncode32(-1))
	require.Equal(t, uint32(2), ZigZagEncode32(1))
}

func TestZigZag64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 1<<62 - 1, -1 << 62} {
		require.Equal(t, v, ZigZagDecode64(ZigZagEncode64(v)))
	}
}
