// Package wire implements the binary NBT codec: a cursor-based Reader
// and a buffer-owning Writer for the three dialects (spec §4.C "Binary
// reader", §4.D "Binary writer"), plus the root envelope procedure and
// auto-detection probe (§4.F) that sit on top of them.
//
// A Reader and a Writer are each exclusively owned for the duration of
// one decode or encode call; neither type is safe for concurrent use
// (spec §5 "Shared state").
package wire

import (
	"github.com/oakenshield/nbt/endian"
	"github.com/oakenshield/nbt/errs"
	"github.com/oakenshield/nbt/format"
	"github.com/oakenshield/nbt/internal/mutf8"
	"github.com/oakenshield/nbt/internal/varint"
	"github.com/oakenshield/nbt/tag"
)

// Reader decodes a byte buffer into a tag tree under one fixed dialect.
// It is not reusable across independent decodes; construct a new Reader
// per call.
type Reader struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
	varint bool // true under the little-varint (Bedrock network) dialect
}

// NewReader constructs a Reader over data under the given endian
// dialect, starting at offset 0.
func NewReader(data []byte, dialect format.Endian) *Reader {
	eng := endian.Big()
	if dialect != format.Big {
		eng = endian.Little()
	}

	return &Reader{
		data:   data,
		engine: eng,
		varint: dialect == format.LittleVarint,
	}
}

// Pos returns the current byte offset.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

func (r *Reader) need(n int) error {
	if r.pos+n > len(r.data) || n < 0 {
		return errs.NewUnderflow(r.pos, n, len(r.data)-r.pos)
	}

	return nil
}

func (r *Reader) take(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// ReadTagID reads one byte as a tag id and validates it is one of the
// thirteen known ids, END included (spec §4.C "Bounds and errors"):
// END is a legitimate value in this position, since it terminates a
// compound's entry list and marks an empty typed list. Callers that
// cannot accept END as a payload type (ReadPayload) or as a root
// (rootKindAllowed) reject it themselves.
func (r *Reader) ReadTagID() (tag.ID, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}

	id := tag.ID(b[0])
	if !id.Valid() && id != tag.End {
		return 0, errs.NewUnknownTagID(r.pos-1, b[0])
	}

	return id, nil
}

func (r *Reader) readByteVal() (int8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}

	return int8(b[0]), nil
}

func (r *Reader) readShort() (int16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}

	return int16(r.engine.Uint16(b)), nil
}

// readFixedInt32 reads a dialect-byte-order, non-varint 32-bit integer;
// used for array lengths, which are never varint-encoded even in the
// little-varint dialect.
func (r *Reader) readFixedInt32() (int32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}

	return int32(r.engine.Uint32(b)), nil
}

// readScalarInt32 reads an INT payload or a LIST length: fixed-width in
// the big/little dialects, zig-zag varint in little-varint.
func (r *Reader) readScalarInt32() (int32, error) {
	if !r.varint {
		return r.readFixedInt32()
	}

	v, n, err := varint.ReadUint32(r.data[r.pos:])
	if err != nil {
		return 0, errs.NewVarintOverflow(r.pos, err)
	}
	r.pos += n

	return varint.ZigZagDecode32(v), nil
}

func (r *Reader) readFixedInt64() (int64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return int64(r.engine.Uint64(b)), nil
}

// readScalarInt64 reads a LONG payload: fixed-width in big/little,
// zig-zag varint in little-varint.
func (r *Reader) readScalarInt64() (int64, error) {
	if !r.varint {
		return r.readFixedInt64()
	}

	v, n, err := varint.ReadUint64(r.data[r.pos:])
	if err != nil {
		return 0, errs.NewVarintOverflow(r.pos, err)
	}
	r.pos += n

	return varint.ZigZagDecode64(v), nil
}

func (r *Reader) readFloat32() (float32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}

	return float32FromBits(r.engine.Uint32(b)), nil
}

func (r *Reader) readFloat64() (float64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return float64FromBits(r.engine.Uint64(b)), nil
}

// readStringLen reads a STRING length: unsigned 16-bit in big/little,
// unsigned varint in little-varint.
func (r *Reader) readStringLen() (int, error) {
	if !r.varint {
		b, err := r.take(2)
		if err != nil {
			return 0, err
		}

		return int(r.engine.Uint16(b)), nil
	}

	v, n, err := varint.ReadUint32(r.data[r.pos:])
	if err != nil {
		return 0, errs.NewVarintOverflow(r.pos, err)
	}
	r.pos += n

	return int(v), nil
}

func (r *Reader) readString() (string, error) {
	n, err := r.readStringLen()
	if err != nil {
		return "", err
	}

	b, err := r.take(n)
	if err != nil {
		return "", err
	}

	return mutf8.Decode(b), nil
}

// ReadPayload reads and returns the payload for a tag already known to
// carry id, dispatching per spec §4.C "Payload readers".
func (r *Reader) ReadPayload(id tag.ID) (any, error) {
	switch id {
	case tag.Byte:
		return r.readByteVal()
	case tag.Short:
		return r.readShort()
	case tag.Int:
		return r.readScalarInt32()
	case tag.Long:
		return r.readScalarInt64()
	case tag.Float:
		return r.readFloat32()
	case tag.Double:
		return r.readFloat64()
	case tag.ByteArray:
		return r.readByteArray()
	case tag.String:
		return r.readString()
	case tag.ListID:
		return r.readList()
	case tag.CompoundID:
		return r.readCompound()
	case tag.IntArray:
		return r.readIntArray()
	case tag.LongArray:
		return r.readLongArray()
	case tag.End:
		return nil, errs.NewUnexpectedEnd(r.pos)
	default:
		return nil, errs.NewUnknownTagID(r.pos, byte(id))
	}
}

func (r *Reader) readByteArray() ([]int8, error) {
	n, err := r.readFixedInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errs.NewUnderflow(r.pos, int(n), r.Remaining())
	}

	b, err := r.take(int(n))
	if err != nil {
		return nil, err
	}

	out := make([]int8, len(b))
	for i, v := range b {
		out[i] = int8(v)
	}

	return out, nil
}

func (r *Reader) readIntArray() ([]int32, error) {
	n, err := r.readFixedInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errs.NewUnderflow(r.pos, int(n), r.Remaining())
	}

	out := make([]int32, n)
	for i := range out {
		v, err := r.readScalarInt32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func (r *Reader) readLongArray() ([]int64, error) {
	n, err := r.readFixedInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errs.NewUnderflow(r.pos, int(n), r.Remaining())
	}

	out := make([]int64, n)
	for i := range out {
		v, err := r.readScalarInt64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func (r *Reader) readList() (*tag.List, error) {
	elem, err := r.ReadTagID()
	if err != nil {
		return nil, err
	}

	n, err := r.readScalarInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errs.NewUnderflow(r.pos, int(n), r.Remaining())
	}

	list := tag.NewListOf(elem)
	if elem == tag.End {
		return list, nil
	}

	for i := int32(0); i < n; i++ {
		v, err := r.ReadPayload(elem)
		if err != nil {
			return nil, err
		}
		if err := list.Append(v); err != nil {
			return nil, err
		}
	}

	return list, nil
}

func (r *Reader) readCompound() (*tag.Compound, error) {
	c := tag.NewCompound()

	for {
		id, err := r.ReadTagID()
		if err != nil {
			return nil, err
		}
		if id == tag.End {
			return c, nil
		}

		key, err := r.readString()
		if err != nil {
			return nil, err
		}

		v, err := r.ReadPayload(id)
		if err != nil {
			return nil, err
		}

		c.Set(key, v)
	}
}
