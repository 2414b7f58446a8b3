// Package errs defines the sentinel error values for every error kind
// spec §7 names, plus the typed wrappers that carry the extra context
// (byte offset, observed tag id, parsed cause tree) specific kinds
// require. Call sites wrap a sentinel with fmt.Errorf("%w: ...", ...)
// the way the teacher corpus wraps its own sentinels; callers recover
// the kind with errors.Is and the extra context with errors.As.
package errs

import (
	"errors"
	"fmt"

	"github.com/oakenshield/nbt/tag"
)

// Sentinel errors, one per spec §7 error kind that carries no mandatory
// structured payload beyond a wrapped message.
var (
	// ErrBufferUnderflow is returned when a read would exceed the end
	// of the buffer.
	ErrBufferUnderflow = errors.New("nbt: buffer underflow")
	// ErrUnknownTagID is returned when a byte at a tag-id position is
	// not a value in [0, 12].
	ErrUnknownTagID = errors.New("nbt: unknown tag id")
	// ErrUnexpectedEnd is returned when an END tag id is read where a
	// payload is required (only a COMPOUND body may legitimately
	// consume END).
	ErrUnexpectedEnd = errors.New("nbt: unexpected END tag")
	// ErrHeterogeneousList is returned by the writer when a list's
	// elements do not share one tag id.
	ErrHeterogeneousList = errors.New("nbt: heterogeneous list")
	// ErrInvalidEnvelope is returned when the root tag id is not
	// COMPOUND (legacy dialect) or not COMPOUND/LIST (new dialect).
	ErrInvalidEnvelope = errors.New("nbt: invalid root envelope")
	// ErrVarintOverflow is returned when a varint's accumulated shift
	// exceeds the width limit for the value being decoded.
	ErrVarintOverflow = errors.New("nbt: varint overflow")
	// ErrSnbtSyntax is returned for any SNBT textual parse failure.
	ErrSnbtSyntax = errors.New("nbt: snbt syntax error")
	// ErrInvalidOption is returned when a caller passes an option value
	// outside its recognized set.
	ErrInvalidOption = errors.New("nbt: invalid option")
	// ErrCompressionFailure wraps an error surfaced from the external
	// compression service.
	ErrCompressionFailure = errors.New("nbt: compression failure")
)

// OffsetError reports a parse failure at a specific byte offset,
// wrapping one of the sentinels above.
type OffsetError struct {
	Err    error
	Offset int
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Err, e.Offset)
}

func (e *OffsetError) Unwrap() error {
	return e.Err
}

// NewUnderflow reports a buffer underflow at offset: want bytes were
// needed but only have remain.
func NewUnderflow(offset, want, have int) error {
	return &OffsetError{
		Err:    fmt.Errorf("%w: need %d bytes, have %d", ErrBufferUnderflow, want, have),
		Offset: offset,
	}
}

// NewUnknownTagID reports an unrecognized tag id byte at offset.
func NewUnknownTagID(offset int, id byte) error {
	return &OffsetError{
		Err:    fmt.Errorf("%w: 0x%02x", ErrUnknownTagID, id),
		Offset: offset,
	}
}

// NewVarintOverflow reports a varint whose accumulated shift exceeded
// its width limit while decoding at offset.
func NewVarintOverflow(offset int, cause error) error {
	return &OffsetError{
		Err:    fmt.Errorf("%w: %v", ErrVarintOverflow, cause),
		Offset: offset,
	}
}

// NewUnexpectedEnd reports an END tag id read where a payload was
// required, at offset.
func NewUnexpectedEnd(offset int) error {
	return &OffsetError{Err: ErrUnexpectedEnd, Offset: offset}
}

// NewInvalidEnvelope reports a root tag id that the active dialect does
// not permit as a root (spec §3 "Root container").
func NewInvalidEnvelope(offset int, got tag.ID) error {
	return &OffsetError{
		Err:    fmt.Errorf("%w: root tag %s", ErrInvalidEnvelope, got),
		Offset: offset,
	}
}

// NewBedrockLengthMismatch reports a Bedrock level header whose payload
// length field does not match the buffer's actual remaining length.
func NewBedrockLengthMismatch(offset int, declared, actual int) error {
	return &OffsetError{
		Err:    fmt.Errorf("%w: bedrock header declares %d bytes, buffer has %d", ErrInvalidEnvelope, declared, actual),
		Offset: offset,
	}
}

// TrailingBytesError is returned in strict mode when bytes remain after
// a complete root has been parsed. It carries the count of remaining
// bytes and the tree that was nonetheless successfully parsed, so a
// caller willing to tolerate trailing data can still recover it (spec
// §7 "carries ... the parsed tree as cause").
type TrailingBytesError struct {
	Offset    int
	Remaining int
	Root      any // tag.Compound or tag.List
}

func (e *TrailingBytesError) Error() string {
	return fmt.Sprintf("nbt: %d trailing byte(s) after root at offset %d", e.Remaining, e.Offset)
}

func (e *TrailingBytesError) Unwrap() error {
	return errTrailingBytes
}

var errTrailingBytes = errors.New("nbt: trailing bytes")

// ErrTrailingBytes is the sentinel TrailingBytesError wraps; use
// errors.Is(err, errs.ErrTrailingBytes) to detect the kind without
// needing the *TrailingBytesError type.
var ErrTrailingBytes = errTrailingBytes

// NewTrailingBytes builds a TrailingBytesError for a root successfully
// parsed at offset, with remaining unconsumed bytes left over.
func NewTrailingBytes(offset, remaining int, root any) error {
	return &TrailingBytesError{Offset: offset, Remaining: remaining, Root: root}
}

// SnbtError reports an SNBT parse failure at a rune cursor position.
type SnbtError struct {
	Msg    string
	Cursor int
}

func (e *SnbtError) Error() string {
	return fmt.Sprintf("%s: %s (at %d)", ErrSnbtSyntax, e.Msg, e.Cursor)
}

func (e *SnbtError) Unwrap() error {
	return ErrSnbtSyntax
}

// NewSnbtSyntax builds an SnbtError for a failure at cursor with the
// given message.
func NewSnbtSyntax(cursor int, format string, args ...any) error {
	return &SnbtError{Msg: fmt.Sprintf(format, args...), Cursor: cursor}
}

// HeterogeneousListError names the declared element id and the
// offending value's id.
type HeterogeneousListError struct {
	Declared, Got tag.ID
}

func (e *HeterogeneousListError) Error() string {
	return fmt.Sprintf("%s: declared %s, got %s", ErrHeterogeneousList, e.Declared, e.Got)
}

func (e *HeterogeneousListError) Unwrap() error {
	return ErrHeterogeneousList
}
