// Package nbt provides a high-performance codec for Named Binary Tag
// data, the tree-shaped binary format used by Minecraft for world saves,
// entity data, and network payloads.
//
// # Core Features
//
//   - All three wire dialects: legacy Java big-endian, Bedrock disk
//     little-endian, and Bedrock network little-endian-with-varints
//   - Format auto-detection across endianness, compression, and root
//     name presence
//   - SNBT (stringified NBT) parsing and formatting
//   - Optional compression (gzip, zlib, raw deflate)
//
// # Basic Usage
//
// Decoding a compressed, big-endian level file:
//
//	import "github.com/oakenshield/nbt"
//
//	data, _ := os.ReadFile("level.dat")
//	tree, _ := nbt.Read(data)
//	root := tree.Root.(*tag.Compound)
//
// Encoding a tree back to bytes under an explicit dialect:
//
//	out, _ := nbt.Write(root,
//	    nbt.WithWriteEndian(format.Big),
//	    nbt.WithWriteRootName(nbt.StringPtr("")),
//	)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the wire
// and snbt packages, covering the most common read/write/parse/
// stringify paths. For fine-grained dialect control, use the wire
// package directly.
package nbt

import (
	"github.com/oakenshield/nbt/compress"
	"github.com/oakenshield/nbt/format"
	"github.com/oakenshield/nbt/internal/options"
	"github.com/oakenshield/nbt/snbt"
	"github.com/oakenshield/nbt/wire"
)

// EnvelopedTree pairs a decoded root (a *tag.Compound or *tag.List) with
// the dialect metadata it was read under, so a later Write call can
// reuse it without the caller re-specifying every option.
type EnvelopedTree struct {
	Root     any
	Envelope format.Envelope
}

// StringPtr is a convenience helper for building a *string option
// argument from a literal.
func StringPtr(s string) *string { return &s }

// Int32Ptr is a convenience helper for building a *int32 option argument
// from a literal.
func Int32Ptr(v int32) *int32 { return &v }

type readConfig struct {
	endian          format.Endian
	endianSet       bool
	compression     format.Compression
	compressionSet  bool
	rootNamePresent bool
	rootNameSet     bool
	bedrock         bool
	bedrockSet      bool
	strict          bool
}

// ReadOption configures Read.
type ReadOption = options.Option[*readConfig]

// WithReadEndian pins the dialect Read decodes under, disabling
// auto-detection of endianness.
func WithReadEndian(e format.Endian) ReadOption {
	return options.NoError(func(c *readConfig) { c.endian, c.endianSet = e, true })
}

// WithReadCompression pins the compression scheme the input is wrapped
// in, disabling auto-detection of compression.
func WithReadCompression(scheme format.Compression) ReadOption {
	return options.NoError(func(c *readConfig) { c.compression, c.compressionSet = scheme, true })
}

// WithReadRootName pins whether a root name field is present on the
// wire, disabling auto-detection of root name presence.
func WithReadRootName(present bool) ReadOption {
	return options.NoError(func(c *readConfig) { c.rootNamePresent, c.rootNameSet = present, true })
}

// WithReadBedrock pins whether an eight-byte Bedrock level header
// prefixes the stream.
func WithReadBedrock(present bool) ReadOption {
	return options.NoError(func(c *readConfig) { c.bedrock, c.bedrockSet = present, true })
}

// WithReadStrict toggles strict trailing-byte detection (default true).
// It takes effect only when at least one of endian, compression, root
// name presence or Bedrock header is pinned; Read's auto-detection path
// always decodes in strict mode.
func WithReadStrict(strict bool) ReadOption {
	return options.NoError(func(c *readConfig) { c.strict = strict })
}

// Read decodes data into an EnvelopedTree. With no options, every axis
// of the dialect is auto-detected via the bounded probe of spec §4.F.
// Pinning any one of endian, compression, root name presence, or
// Bedrock header switches Read to a direct, single-attempt decode under
// the resolved configuration (unpinned axes default to their most
// common value: no compression, a root name present, no Bedrock
// header).
func Read(data []byte, opts ...ReadOption) (EnvelopedTree, error) {
	cfg := &readConfig{strict: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return EnvelopedTree{}, err
	}

	if !cfg.endianSet && !cfg.compressionSet && !cfg.rootNameSet && !cfg.bedrockSet {
		root, env, err := wire.Detect(data)
		if err != nil {
			return EnvelopedTree{}, err
		}

		return EnvelopedTree{Root: root, Envelope: env}, nil
	}

	raw := data
	scheme := format.None
	if cfg.compressionSet {
		scheme = cfg.compression
		if scheme != format.None {
			codec, err := compress.GetCodec(scheme)
			if err != nil {
				return EnvelopedTree{}, err
			}

			raw, err = codec.Decompress(data)
			if err != nil {
				return EnvelopedTree{}, err
			}
		}
	}

	endian := format.Big
	if cfg.endianSet {
		endian = cfg.endian
	}

	rootNamePresent := true
	if cfg.rootNameSet {
		rootNamePresent = cfg.rootNamePresent
	}

	bedrock := false
	if cfg.bedrockSet {
		bedrock = cfg.bedrock
	}

	root, env, err := wire.ReadRoot(raw,
		wire.WithReadEndian(endian),
		wire.WithReadRootName(rootNamePresent),
		wire.WithReadBedrock(bedrock),
		wire.WithReadStrict(cfg.strict),
	)
	if err != nil {
		return EnvelopedTree{}, err
	}
	env.Compression = scheme

	return EnvelopedTree{Root: root, Envelope: env}, nil
}

type writeConfig struct {
	endian         format.Endian
	endianSet      bool
	compression    format.Compression
	compressionSet bool
	name           *string
	nameSet        bool
	bedrock        *int32
	bedrockSet     bool
}

// WriteOption configures Write.
type WriteOption = options.Option[*writeConfig]

// WithWriteEndian pins the dialect Write encodes under, overriding any
// dialect inherited from an input EnvelopedTree.
func WithWriteEndian(e format.Endian) WriteOption {
	return options.NoError(func(c *writeConfig) { c.endian, c.endianSet = e, true })
}

// WithWriteCompression pins the compression scheme Write wraps the
// result in, overriding any scheme inherited from an input
// EnvelopedTree.
func WithWriteCompression(scheme format.Compression) WriteOption {
	return options.NoError(func(c *writeConfig) { c.compression, c.compressionSet = scheme, true })
}

// WithWriteRootName sets the root name field; pass nil for an anonymous
// root. Overrides any name inherited from an input EnvelopedTree.
func WithWriteRootName(name *string) WriteOption {
	return options.NoError(func(c *writeConfig) { c.name, c.nameSet = name, true })
}

// WithWriteBedrock prefixes the stream with an eight-byte Bedrock level
// header carrying version; pass nil to omit the header. Overrides any
// header inherited from an input EnvelopedTree.
func WithWriteBedrock(version *int32) WriteOption {
	return options.NoError(func(c *writeConfig) { c.bedrock, c.bedrockSet = version, true })
}

// Write encodes tree into bytes. tree is either an EnvelopedTree (whose
// Envelope supplies defaults for any option not explicitly given) or a
// bare *tag.Compound/*tag.List (which defaults to the big-endian dialect
// with no root name field and no compression).
func Write(tree any, opts ...WriteOption) ([]byte, error) {
	cfg := &writeConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	root := tree
	env := format.Envelope{Endian: format.Big}
	if et, ok := tree.(EnvelopedTree); ok {
		root, env = et.Root, et.Envelope
	}

	endian := env.Endian
	if cfg.endianSet {
		endian = cfg.endian
	}

	name := env.Name
	if cfg.nameSet {
		name = cfg.name
	}

	bedrock := env.Bedrock
	if cfg.bedrockSet {
		bedrock = cfg.bedrock
	}

	scheme := env.Compression
	if cfg.compressionSet {
		scheme = cfg.compression
	}

	raw, err := wire.WriteRoot(root,
		wire.WithWriteEndian(endian),
		wire.WithWriteRootName(name),
		wire.WithWriteBedrock(bedrock),
	)
	if err != nil {
		return nil, err
	}

	if scheme == format.None {
		return raw, nil
	}

	codec, err := compress.GetCodec(scheme)
	if err != nil {
		return nil, err
	}

	return codec.Compress(raw)
}

// Parse parses SNBT text into a tag value (spec §4.E).
func Parse(text string) (any, error) {
	return snbt.Parse(text)
}

// StringifyOption configures Stringify indentation.
type StringifyOption = snbt.Option

// WithIndentSpaces sets the stringify indentation unit to n spaces.
func WithIndentSpaces(n int) StringifyOption { return snbt.WithIndentSpaces(n) }

// WithIndentString sets the stringify indentation unit verbatim.
func WithIndentString(s string) StringifyOption { return snbt.WithIndentString(s) }

// Stringify renders tree (an EnvelopedTree or bare tag value) as SNBT
// text.
func Stringify(tree any, opts ...StringifyOption) (string, error) {
	root := tree
	if et, ok := tree.(EnvelopedTree); ok {
		root = et.Root
	}

	return snbt.Stringify(root, opts...)
}
