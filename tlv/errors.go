package tlv

import (
	"errors"
	"strconv"

	"codello.dev/emv"
)

// Structural errors. Errors returned by the decoders in this package wrap one
// of these values. Use [errors.Is] to test for them.
var (
	// ErrTruncatedTag indicates that the input ended inside a tag identifier.
	ErrTruncatedTag = emv.ErrTruncatedTag
	// ErrTruncatedLength indicates that the input ended inside a length field.
	ErrTruncatedLength = errors.New("truncated length")
	// ErrLengthFieldTooLarge indicates a long-form length with more than 4
	// length bytes.
	ErrLengthFieldTooLarge = errors.New("length field too large")
	// ErrLengthExceedsBuffer indicates that a record's declared length exceeds
	// the remaining input.
	ErrLengthExceedsBuffer = errors.New("length exceeds buffer")
	// ErrInvalidHexEncoding indicates a hexadecimal input string of odd length
	// or with non-hex characters.
	ErrInvalidHexEncoding = errors.New("invalid hex encoding")
	// ErrMaxDepthExceeded indicates that constructed records are nested deeper
	// than [Options.MaxDepth].
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")
)

// SyntaxError represents an error in the TLV encoding. The error value contains
// the location of the error within the input as well as the tag of the
// surrounding constructed record.
type SyntaxError struct {
	Err error // underlying error

	// ByteOffset is the location of the error. It is the offset of the first
	// byte of the record containing the error, relative to the start of the
	// input.
	ByteOffset int

	// Tag is the tag of the constructed record whose value contained the
	// malformed data. Tag is nil at the top level.
	Tag emv.Tag
}

func (e *SyntaxError) Unwrap() error { return e.Err }
func (e *SyntaxError) Error() string {
	b := []byte("tlv: syntax error")
	if e.Tag != nil {
		b = append(b, " within "...)
		b = append(b, e.Tag.Hex()...)
	}
	b = strconv.AppendInt(append(b, " for record beginning at offset "...), int64(e.ByteOffset), 10)
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}

// hexError wraps an error from the hex decoder.
type hexError struct {
	err error
}

func (e *hexError) Unwrap() []error { return []error{ErrInvalidHexEncoding, e.err} }
func (e *hexError) Error() string   { return "tlv: " + ErrInvalidHexEncoding.Error() + ": " + e.err.Error() }
