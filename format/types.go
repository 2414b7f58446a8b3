// Package format defines the out-of-tree metadata that distinguishes
// one wire dialect from another: byte order, compression scheme, root
// name policy, and the resulting Envelope a Reader returns alongside a
// decoded tree (spec §3 "Root container", §6 "Envelope").
package format

import "github.com/oakenshield/nbt/tag"

// Endian selects the byte-order and integer-framing dialect spec §4.C
// defines.
type Endian uint8

const (
	// Big is the legacy Java-edition dialect: fixed-width big-endian
	// integers throughout.
	Big Endian = iota
	// Little is the Bedrock-edition disk dialect: fixed-width
	// little-endian integers throughout.
	Little
	// LittleVarint is the Bedrock network dialect: little-endian fixed
	// width scalars, but LIST length, INT, and LONG payloads are
	// zig-zag varints, and STRING length is an unsigned varint.
	LittleVarint
)

// String renders the dialect name used in error messages and the CLI.
func (e Endian) String() string {
	switch e {
	case Big:
		return "big"
	case Little:
		return "little"
	case LittleVarint:
		return "little-varint"
	default:
		return "unknown"
	}
}

// Compression selects the external compression service a Reader or
// Writer pipes the framed bytes through (spec §1 "Out of scope" and
// §6 "File signatures").
type Compression uint8

const (
	// None applies no compression.
	None Compression = iota
	// Gzip is the gzip container (magic 1F 8B), the common disk format
	// for Java-edition saves.
	Gzip
	// Zlib is the zlib container (magic 78 01/9C/DA), the common disk
	// format for Bedrock-edition saves.
	Zlib
	// RawDeflate is a bare DEFLATE stream with no container, used by
	// some Bedrock chunk payloads.
	RawDeflate
)

// String renders the compression scheme name used in error messages and
// the CLI.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	case RawDeflate:
		return "raw-deflate"
	default:
		return "unknown"
	}
}

// RootKind is the tag id a root value is permitted to carry. Spec §3
// allows COMPOUND in every dialect and LIST only in the new (non-legacy)
// dialect; spec §9 "Open question" fixes that ambiguity in favor of the
// newer behavior.
type RootKind = tag.ID

// Envelope carries the out-of-tree metadata describing a decoded or
// about-to-be-encoded root: its name, dialect, compression, and optional
// Bedrock level header (spec §3 "Root container").
type Envelope struct {
	// Name is the root's name string. A nil Name means no name field is
	// on the wire; a non-nil pointer to "" is a name field holding the
	// empty string.
	Name *string

	// Endian is the fully-resolved byte-order dialect this envelope was
	// read under or should be written under.
	Endian Endian

	// Compression is the scheme the raw bytes are wrapped in, or None.
	Compression Compression

	// Bedrock, when non-nil, is the version field of the eight-byte
	// Bedrock level header that prefixes the stream (spec §4.C step 1).
	// A nil Bedrock means no such header is present, distinct from a
	// present header carrying version 0.
	Bedrock *int32

	// RootNamePresent records whether a name field was read from the
	// wire; after a read it is true exactly when Name is non-nil. Writing
	// decides by Name alone and does not consult this field.
	RootNamePresent bool
}

// Clone returns a deep copy of the envelope, so callers can derive a
// Write envelope from a Read envelope without aliasing pointer fields.
func (e Envelope) Clone() Envelope {
	out := e
	if e.Name != nil {
		name := *e.Name
		out.Name = &name
	}
	if e.Bedrock != nil {
		v := *e.Bedrock
		out.Bedrock = &v
	}

	return out
}
