// Package vlq implements [Variable-length quantity] framing as used by the
// subsequent bytes of a multi-byte BER tag. A VLQ is essentially a base-128
// representation of an unsigned integer with the eighth bit of each byte
// marking that another byte follows.
//
// The functions in this package operate on byte slices and never read past
// the terminating byte of a VLQ.
//
// [Variable-length quantity]: https://en.wikipedia.org/wiki/Variable-length_quantity
package vlq

import (
	"errors"
	"math/bits"
	"unsafe"
)

var (
	// ErrTruncated indicates that the input ended before a byte without the
	// continuation bit was found.
	ErrTruncated = errors.New("vlq is truncated")
	errOverflow  = errors.New("vlq too large for target type")
)

// Len returns the number of bytes of the VLQ at the start of b, including its
// terminating byte. If b ends before the terminating byte (including the case
// where b is empty), Len returns false.
func Len(b []byte) (int, bool) {
	for i, c := range b {
		if c&0x80 == 0 {
			return i + 1, true
		}
	}
	return 0, false
}

// Decode parses an unsigned VLQ from the start of b and returns its value and
// the number of bytes it occupies. The maximum allowed value is limited by
// the size of T. Leading zero groups (0x80 bytes) are accepted.
func Decode[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](b []byte) (ret T, n int, err error) {
	numBits := 0
	for i, c := range b {
		ret <<= 7
		ret |= T(c & 0x7f)

		if numBits == 0 {
			numBits = bits.Len8(c & 0x7f)
		} else {
			numBits += 7
		}
		if numBits > int(unsafe.Sizeof(ret)*8) {
			return 0, 0, errOverflow
		}
		if c&0x80 == 0 {
			return ret, i + 1, nil
		}
	}
	return 0, 0, ErrTruncated
}
