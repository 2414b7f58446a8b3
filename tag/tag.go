// Package tag defines the in-memory representation of NBT (Named Binary
// Tag) data: the twelve payload variants, their wire tag ids, and the
// ordered container types (List, Compound) that hold them.
//
// A Tag is not a dedicated Go type; it is any value whose dynamic type is
// one of the twelve supported representations. TypeOf performs the
// discrimination a wire codec needs without requiring a wrapper type for
// every scalar, since Go's sized integer and float types already carry
// the width information the format requires:
//
//	int8       BYTE
//	int16      SHORT
//	int32      INT
//	int64      LONG
//	float32    FLOAT
//	float64    DOUBLE
//	[]int8     BYTE_ARRAY
//	string     STRING
//	*List      LIST
//	*Compound  COMPOUND
//	[]int32    INT_ARRAY
//	[]int64    LONG_ARRAY
//	bool       BYTE (TypeOf reports it; the binary reader never produces one, but snbt.Parse returns true/false as bool)
//
// Values of any other dynamic type are not tags; TypeOf reports them as
// (0, false). The writer skips such a value as a compound entry and
// rejects it as a list element.
package tag

import "fmt"

// ID identifies the wire representation of a tag's payload.
type ID uint8

// The twelve NBT tag ids, plus the END terminator.
const (
	End        ID = 0
	Byte       ID = 1
	Short      ID = 2
	Int        ID = 3
	Long       ID = 4
	Float      ID = 5
	Double     ID = 6
	ByteArray  ID = 7
	String     ID = 8
	ListID     ID = 9
	CompoundID ID = 10
	IntArray   ID = 11
	LongArray  ID = 12
)

// String renders the canonical NBT name for id, or "UNKNOWN(n)" for an id
// outside the valid range.
func (id ID) String() string {
	switch id {
	case End:
		return "END"
	case Byte:
		return "BYTE"
	case Short:
		return "SHORT"
	case Int:
		return "INT"
	case Long:
		return "LONG"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case String:
		return "STRING"
	case ListID:
		return "LIST"
	case CompoundID:
		return "COMPOUND"
	case IntArray:
		return "INT_ARRAY"
	case LongArray:
		return "LONG_ARRAY"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(id))
	}
}

// Valid reports whether id is one of the twelve payload ids (excludes END).
func (id ID) Valid() bool {
	return id >= Byte && id <= LongArray
}

// TypeOf reports the wire tag id a Go value would be encoded as, and
// whether it is representable at all.
//
// TypeOf is the single point of truth writers use to decide whether a
// compound entry or list element can be encoded; a compound entry that
// is not a tag (second return false) is skipped by Writer rather than
// rejected, mirroring spec §4.A, while such a list element makes Writer
// return an error.
func TypeOf(v any) (ID, bool) {
	switch v.(type) {
	case bool:
		return Byte, true
	case int8:
		return Byte, true
	case int16:
		return Short, true
	case int32:
		return Int, true
	case int64:
		return Long, true
	case float32:
		return Float, true
	case float64:
		return Double, true
	case []int8:
		return ByteArray, true
	case string:
		return String, true
	case *List:
		return ListID, true
	case *Compound:
		return CompoundID, true
	case []int32:
		return IntArray, true
	case []int64:
		return LongArray, true
	default:
		return 0, false
	}
}

// AsByte normalizes a boolean input into its BYTE payload (1 for true, 0
// for false), per spec §3 "Boolean handling".
func AsByte(b bool) int8 {
	if b {
		return 1
	}

	return 0
}
