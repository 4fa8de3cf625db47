package tlv

import (
	"math"

	"codello.dev/emv"
)

// maxLengthBytes is the maximum number of subsequent bytes of a long-form
// length field.
const maxLengthBytes = 4

// DecodeTag decodes the tag identifier at the start of b. The returned tag is
// a view into b. If b ends before the last byte of the tag identifier,
// [ErrTruncatedTag] is returned.
func DecodeTag(b []byte) (emv.Tag, error) {
	n, err := emv.TagLen(b)
	if err != nil {
		return nil, err
	}
	return emv.Tag(b[:n:n]), nil
}

// DecodeLength decodes the length field at the start of b. It returns the
// decoded length and the number of bytes occupied by the length field.
//
// If the high bit of the first byte is unset, the byte itself is the length
// (short form). Otherwise, the low 7 bits give the number of subsequent bytes
// holding the length as an unsigned big-endian integer (long form). At most 4
// subsequent bytes are supported.
func DecodeLength(b []byte) (length, n int, err error) {
	if len(b) == 0 {
		return 0, 0, ErrTruncatedLength
	}
	if b[0]&0x80 == 0 {
		// The length is encoded in the bottom 7 bits.
		return int(b[0]), 1, nil
	}

	// Bottom 7 bits give the number of length bytes to follow.
	numBytes := int(b[0] & 0x7f)
	if numBytes > maxLengthBytes {
		return 0, 0, ErrLengthFieldTooLarge
	}
	if len(b)-1 < numBytes {
		return 0, 0, ErrTruncatedLength
	}
	var l uint64
	for _, c := range b[1 : 1+numBytes] {
		l = l<<8 | uint64(c)
	}
	if l > math.MaxInt {
		// only reachable if int has 32 bits
		return 0, 0, ErrLengthFieldTooLarge
	}
	return int(l), 1 + numBytes, nil
}

// decodeHeader decodes the tag and length field at the start of b. n is the
// combined size of both fields.
func decodeHeader(b []byte) (tag emv.Tag, length, n int, err error) {
	if tag, err = DecodeTag(b); err != nil {
		return nil, 0, 0, err
	}
	length, l, err := DecodeLength(b[len(tag):])
	if err != nil {
		return nil, 0, 0, err
	}
	return tag, length, len(tag) + l, nil
}

// decodeNode decodes the record at the start of b without its children. The
// slices of the returned node are views into b.
func decodeNode(b []byte) (*Node, error) {
	tag, length, n, err := decodeHeader(b)
	if err != nil {
		return nil, err
	}
	if length > len(b)-n {
		return nil, ErrLengthExceedsBuffer
	}
	end := n + length
	return &Node{
		Raw:    b[:end:end],
		Tag:    tag,
		Value:  b[n:end:end],
		Length: length,
	}, nil
}
