package wire

import (
	"encoding/binary"

	"github.com/oakenshield/nbt/errs"
	"github.com/oakenshield/nbt/format"
	"github.com/oakenshield/nbt/internal/options"
	"github.com/oakenshield/nbt/tag"
)

// ReadConfig is the fully-resolved dialect a ReadRoot call decodes
// under (spec §4.C contract: "a byte buffer and a fully-resolved
// dialect"). Every zero value is a valid setting (big-endian, no root
// name field, no Bedrock header); Strict defaults to true.
type ReadConfig struct {
	Endian          format.Endian
	RootNamePresent bool
	Bedrock         bool
	Strict          bool
}

// ReadOption configures a ReadConfig.
type ReadOption = options.Option[*ReadConfig]

// WithReadEndian pins the byte-order/varint dialect.
func WithReadEndian(e format.Endian) ReadOption {
	return options.NoError(func(c *ReadConfig) { c.Endian = e })
}

// WithReadRootName selects whether a root name STRING field is present
// on the wire.
func WithReadRootName(present bool) ReadOption {
	return options.NoError(func(c *ReadConfig) { c.RootNamePresent = present })
}

// WithReadBedrock selects whether an eight-byte Bedrock level header
// prefixes the stream.
func WithReadBedrock(present bool) ReadOption {
	return options.NoError(func(c *ReadConfig) { c.Bedrock = present })
}

// WithReadStrict toggles strict trailing-byte detection (default true).
func WithReadStrict(strict bool) ReadOption {
	return options.NoError(func(c *ReadConfig) { c.Strict = strict })
}

func newReadConfig(opts []ReadOption) (*ReadConfig, error) {
	cfg := &ReadConfig{Strict: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ReadRoot decodes data under the configuration built from opts,
// following the root procedure of spec §4.C: optional Bedrock header,
// root tag id, optional root name, root payload, and a strict trailing-
// byte check.
//
// The returned root is a *tag.Compound, or a *tag.List when the dialect
// and data permit a LIST root.
func ReadRoot(data []byte, opts ...ReadOption) (any, format.Envelope, error) {
	cfg, err := newReadConfig(opts)
	if err != nil {
		return nil, format.Envelope{}, err
	}

	r := NewReader(data, cfg.Endian)

	var bedrock *int32
	if cfg.Bedrock {
		v, err := readBedrockHeader(r)
		if err != nil {
			return nil, format.Envelope{}, err
		}
		bedrock = &v
	}

	id, err := r.ReadTagID()
	if err != nil {
		return nil, format.Envelope{}, err
	}

	if !rootKindAllowed(id, cfg.Endian) {
		return nil, format.Envelope{}, errs.NewInvalidEnvelope(r.pos-1, id)
	}

	var name *string
	if cfg.RootNamePresent {
		s, err := r.readString()
		if err != nil {
			return nil, format.Envelope{}, err
		}
		name = &s
	}

	root, err := r.ReadPayload(id)
	if err != nil {
		return nil, format.Envelope{}, err
	}

	env := format.Envelope{
		Name:            name,
		Endian:          cfg.Endian,
		Bedrock:         bedrock,
		RootNamePresent: cfg.RootNamePresent,
	}

	if cfg.Strict && r.Remaining() > 0 {
		return root, env, errs.NewTrailingBytes(r.pos, r.Remaining(), root)
	}

	return root, env, nil
}

// rootKindAllowed reports whether id is a permitted root tag under
// dialect: COMPOUND in every dialect, LIST only outside the legacy
// big-endian dialect (spec §9 "Open question" fixes the newer
// behavior).
func rootKindAllowed(id tag.ID, dialect format.Endian) bool {
	if id == tag.CompoundID {
		return true
	}

	return id == tag.ListID && dialect != format.Big
}

// readBedrockHeader consumes the eight-byte Bedrock level header:
// unsigned 32-bit little-endian version, then unsigned 32-bit little-
// endian payload length, which must equal the remaining buffer size
// (spec §4.C step 1).
func readBedrockHeader(r *Reader) (int32, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	version := binary.LittleEndian.Uint32(b[0:4])
	payloadLen := binary.LittleEndian.Uint32(b[4:8])

	if want := uint32(len(r.data) - r.pos); payloadLen != want {
		return 0, errs.NewBedrockLengthMismatch(r.pos-4, int(payloadLen), int(want))
	}

	return int32(version), nil
}

// WriteConfig is the fully-resolved dialect and envelope a WriteRoot
// call encodes under, symmetric to ReadConfig (spec §4.D).
type WriteConfig struct {
	Endian  format.Endian
	Name    *string
	Bedrock *int32
}

// WriteOption configures a WriteConfig.
type WriteOption = options.Option[*WriteConfig]

// WithWriteEndian pins the byte-order/varint dialect.
func WithWriteEndian(e format.Endian) WriteOption {
	return options.NoError(func(c *WriteConfig) { c.Endian = e })
}

// WithWriteRootName sets the root name field; pass nil to omit the
// field entirely (anonymous root, no name on the wire).
func WithWriteRootName(name *string) WriteOption {
	return options.NoError(func(c *WriteConfig) { c.Name = name })
}

// WithWriteBedrock prefixes the stream with an eight-byte Bedrock level
// header carrying version; pass nil to omit the header.
func WithWriteBedrock(version *int32) WriteOption {
	return options.NoError(func(c *WriteConfig) { c.Bedrock = version })
}

// WriteRoot encodes root (a *tag.Compound or *tag.List) under the
// configuration built from opts, following spec §4.D "Root framing".
func WriteRoot(root any, opts ...WriteOption) ([]byte, error) {
	cfg := &WriteConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	id, ok := tag.TypeOf(root)
	if !ok || (id != tag.CompoundID && id != tag.ListID) {
		return nil, errs.NewInvalidEnvelope(0, id)
	}
	if id == tag.ListID && cfg.Endian == format.Big {
		return nil, errs.NewInvalidEnvelope(0, id)
	}

	w := NewWriter(cfg.Endian)
	defer w.Release()

	if cfg.Bedrock != nil {
		return writeWithBedrockHeader(w, id, root, cfg)
	}

	w.WriteTagID(id)
	if cfg.Name != nil {
		w.writeString(*cfg.Name)
	}
	if err := w.WritePayload(id, root); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

func writeWithBedrockHeader(w *Writer, id tag.ID, root any, cfg *WriteConfig) ([]byte, error) {
	w.WriteTagID(id)
	if cfg.Name != nil {
		w.writeString(*cfg.Name)
	}
	if err := w.WritePayload(id, root); err != nil {
		return nil, err
	}

	payload := w.Bytes()
	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], uint32(*cfg.Bedrock))
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(payload)))

	return append(header, payload...), nil
}
