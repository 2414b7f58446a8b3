package wire

import (
	"github.com/oakenshield/nbt/endian"
	"github.com/oakenshield/nbt/errs"
	"github.com/oakenshield/nbt/format"
	"github.com/oakenshield/nbt/internal/mutf8"
	"github.com/oakenshield/nbt/internal/pool"
	"github.com/oakenshield/nbt/internal/varint"
	"github.com/oakenshield/nbt/tag"
)

// Writer encodes a tag tree back to bytes under one fixed dialect,
// symmetric to Reader (spec §4.D). It owns a pooled, growing byte
// buffer that starts at a modest capacity and doubles on demand; the
// final output is a tight copy of the used prefix.
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	varint bool
}

// NewWriter constructs a Writer for the given endian dialect, backed by
// a buffer drawn from the shared writer pool. Call Release once the
// encoded bytes have been copied out.
func NewWriter(dialect format.Endian) *Writer {
	eng := endian.Big()
	if dialect != format.Big {
		eng = endian.Little()
	}

	return &Writer{
		buf:    pool.GetWriterBuffer(),
		engine: eng,
		varint: dialect == format.LittleVarint,
	}
}

// Bytes returns a tight copy of the encoded prefix.
func (w *Writer) Bytes() []byte {
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())

	return out
}

// Release returns the Writer's buffer to the shared pool. The Writer
// must not be used afterward.
func (w *Writer) Release() {
	pool.PutWriterBuffer(w.buf)
	w.buf = nil
}

func (w *Writer) grow(n int) []byte {
	start := w.buf.Len()
	w.buf.ExtendOrGrow(n)

	return w.buf.B[start : start+n]
}

// WriteTagID appends a single tag id byte.
func (w *Writer) WriteTagID(id tag.ID) {
	w.grow(1)[0] = byte(id)
}

func (w *Writer) writeByteVal(v int8) {
	w.grow(1)[0] = byte(v)
}

func (w *Writer) writeShort(v int16) {
	w.engine.PutUint16(w.grow(2), uint16(v))
}

func (w *Writer) writeFixedInt32(v int32) {
	w.engine.PutUint32(w.grow(4), uint32(v))
}

func (w *Writer) writeScalarInt32(v int32) {
	if !w.varint {
		w.writeFixedInt32(v)
		return
	}

	w.buf.B = varint.AppendUint32(w.buf.B, varint.ZigZagEncode32(v))
}

func (w *Writer) writeFixedInt64(v int64) {
	w.engine.PutUint64(w.grow(8), uint64(v))
}

func (w *Writer) writeScalarInt64(v int64) {
	if !w.varint {
		w.writeFixedInt64(v)
		return
	}

	w.buf.B = varint.AppendUint64(w.buf.B, varint.ZigZagEncode64(v))
}

func (w *Writer) writeFloat32(v float32) {
	w.engine.PutUint32(w.grow(4), float32Bits(v))
}

func (w *Writer) writeFloat64(v float64) {
	w.engine.PutUint64(w.grow(8), float64Bits(v))
}

func (w *Writer) writeStringLen(n int) {
	if !w.varint {
		w.engine.PutUint16(w.grow(2), uint16(n))
		return
	}

	w.buf.B = varint.AppendUint32(w.buf.B, uint32(n))
}

func (w *Writer) writeString(s string) {
	w.writeStringLen(mutf8.EncodedLen(s))
	w.buf.B = mutf8.Encode(w.buf.B, s)
}

// WritePayload writes v's payload for the already-written tag id id.
// Callers are responsible for having determined id via tag.TypeOf.
func (w *Writer) WritePayload(id tag.ID, v any) error {
	switch id {
	case tag.Byte:
		if b, ok := v.(bool); ok {
			w.writeByteVal(tag.AsByte(b))
		} else {
			w.writeByteVal(v.(int8))
		}
	case tag.Short:
		w.writeShort(v.(int16))
	case tag.Int:
		w.writeScalarInt32(v.(int32))
	case tag.Long:
		w.writeScalarInt64(v.(int64))
	case tag.Float:
		w.writeFloat32(v.(float32))
	case tag.Double:
		w.writeFloat64(v.(float64))
	case tag.ByteArray:
		w.writeByteArray(v.([]int8))
	case tag.String:
		w.writeString(v.(string))
	case tag.ListID:
		return w.writeList(v.(*tag.List))
	case tag.CompoundID:
		return w.writeCompound(v.(*tag.Compound))
	case tag.IntArray:
		w.writeIntArray(v.([]int32))
	case tag.LongArray:
		w.writeLongArray(v.([]int64))
	default:
		return errs.NewUnknownTagID(w.buf.Len(), byte(id))
	}

	return nil
}

func (w *Writer) writeByteArray(v []int8) {
	w.writeFixedInt32(int32(len(v)))
	dst := w.grow(len(v))
	for i, b := range v {
		dst[i] = byte(b)
	}
}

func (w *Writer) writeIntArray(v []int32) {
	w.writeFixedInt32(int32(len(v)))
	for _, n := range v {
		w.writeScalarInt32(n)
	}
}

func (w *Writer) writeLongArray(v []int64) {
	w.writeFixedInt32(int32(len(v)))
	for _, n := range v {
		w.writeScalarInt64(n)
	}
}

// writeList writes the declared element id, length, and each element's
// payload. An empty list's declared type is END (spec §3 invariant 1).
func (w *Writer) writeList(l *tag.List) error {
	elem := l.Elem
	if l.Len() == 0 {
		elem = tag.End
	}

	w.WriteTagID(elem)
	w.writeScalarInt32(int32(l.Len()))

	for i := 0; i < l.Len(); i++ {
		v := l.At(i)
		id, ok := tag.TypeOf(v)
		if !ok || id != elem {
			return &errs.HeterogeneousListError{Declared: elem, Got: id}
		}
		if err := w.WritePayload(id, v); err != nil {
			return err
		}
	}

	return nil
}

// writeCompound writes (tag-id, key, payload) triples in insertion
// order, skipping entries whose type is not representable, then a
// terminating END tag id.
func (w *Writer) writeCompound(c *tag.Compound) error {
	for _, key := range c.Keys() {
		v, _ := c.Get(key)

		id, ok := tag.TypeOf(v)
		if !ok {
			continue
		}

		w.WriteTagID(id)
		w.writeString(key)
		if err := w.WritePayload(id, v); err != nil {
			return err
		}
	}

	w.WriteTagID(tag.End)

	return nil
}
