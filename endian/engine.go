// Package endian provides the fixed-width byte-order primitives the NBT
// binary codec needs for the big and little dialects (spec §4.C "big /
// little").
//
// EndianEngine combines encoding/binary's ByteOrder and AppendByteOrder
// into one interface, already satisfied by binary.BigEndian and
// binary.LittleEndian, so the wire package never special-cases which
// concrete type it holds:
//
//	engine := endian.Little()
//	buf = engine.AppendUint32(buf, 42) // no intermediate allocation
//
// The little-varint dialect additionally needs the zig-zag/varint
// helpers in internal/varint; those are orthogonal to byte order and
// live in their own package.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine is the byte-order interface the wire codec depends on. It
// is satisfied by binary.BigEndian and binary.LittleEndian without any
// adapter, and additionally exposes the allocation-free Append* methods.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Big returns the big-endian engine, used by the legacy Java-style NBT
// dialect (spec §4.C "big").
func Big() EndianEngine {
	return binary.BigEndian
}

// Little returns the little-endian engine, used by the Bedrock disk and
// network dialects (spec §4.C "little" and "little-varint"; the varint
// dialect layers varints for some fields on top of this byte order).
func Little() EndianEngine {
	return binary.LittleEndian
}

// HostOrder reports the byte order of the running process, determined
// by inspecting the in-memory layout of a known value rather than
// relying on a build tag per architecture.
func HostOrder() binary.ByteOrder {
	var probe uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&probe))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsHostLittleEndian reports whether the running process is little-endian.
func IsHostLittleEndian() bool {
	return HostOrder() == binary.LittleEndian
}
