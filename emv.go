// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package emv implements types for BER-TLV encoded payment card (EMV) data as
// found in smart card responses. See [EMV Book 3], Annex B for the encoding.
//
// This package only defines the tag identifier and its components. Decoding
// of the tag-length-value structure is implemented by the [codello.dev/emv/tlv]
// package, semantic interpretation of values by [codello.dev/emv/field] and
// [codello.dev/emv/bcd].
//
// # Views
//
// All values produced by the decoders in this module are views into the
// buffer they were decoded from. A [Tag] is a sub-slice of the input, so is
// the value of a decoded record. Nothing is copied. Views are valid as long as
// the underlying buffer is alive and the decoders never write to it. A caller
// that owns a mutable buffer may modify values through the views; a caller
// that needs values to outlive the buffer has to copy them.
//
// [EMV Book 3]: https://www.emvco.com/specifications/
package emv

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"

	"codello.dev/emv/internal/vlq"
)

// Class holds the class part of a tag. The class is stored in the two high
// order bits of the first tag byte. Class values whose value exceeds 2 bits
// are invalid.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// IsValid reports whether c is a valid Class value.
func (c Class) IsValid() bool {
	return c <= 3
}

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// Kind indicates whether the value of a record is a direct value or a nested
// sequence of records. It is stored in bit 6 (0x20) of the first tag byte.
//
//go:generate stringer -type=Kind -trimprefix=Kind
type Kind uint8

const (
	KindPrimitive Kind = iota
	KindConstructed
)

const (
	classShift   = 6
	constructed  = 0x20
	numberMask   = 0x1f
	continuation = 0x80
)

// Tag is a tag identifier: one or more bytes at the start of a record. A Tag
// produced by a decoder is a view into the decoded buffer.
//
// The first byte encodes [Class], [Kind] and either the tag number (0-30) or
// the value 31 indicating that the number continues in the following bytes.
// Each following byte has bit 8 set, except the last one.
type Tag []byte

// ParseTag decodes a hexadecimal string (in either case) into a Tag. The
// string must contain exactly one complete tag identifier. ParseTag is mostly
// useful for search keys.
func ParseTag(s string) (Tag, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	n, err := TagLen(b)
	if err != nil {
		return nil, err
	}
	if n != len(b) {
		return nil, ErrTrailingData
	}
	return b, nil
}

// MustParseTag works like [ParseTag] but panics if s is invalid. It is
// intended for package level tag variables.
func MustParseTag(s string) Tag {
	t, err := ParseTag(s)
	if err != nil {
		panic("emv: invalid tag " + s + ": " + err.Error())
	}
	return t
}

// ErrTruncatedTag indicates that a tag identifier ends before its last byte.
var ErrTruncatedTag = errors.New("truncated tag")

// ErrTrailingData indicates input that continues after a complete tag
// identifier where a single tag was expected.
var ErrTrailingData = errors.New("trailing data after tag identifier")

// TagLen returns the number of bytes of the tag identifier at the start of b.
// If b does not start with a complete tag identifier (including the case
// where b is empty) [ErrTruncatedTag] is returned.
func TagLen(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, ErrTruncatedTag
	}
	if b[0]&numberMask != numberMask {
		return 1, nil
	}
	n, ok := vlq.Len(b[1:])
	if !ok {
		return 0, ErrTruncatedTag
	}
	return 1 + n, nil
}

// Class returns the class of t. The result is unspecified for an empty tag.
func (t Tag) Class() Class {
	if len(t) == 0 {
		return ClassUniversal
	}
	return Class(t[0] >> classShift)
}

// Kind returns [KindConstructed] if bit 6 of the first byte of t is set,
// [KindPrimitive] otherwise.
func (t Tag) Kind() Kind {
	if len(t) > 0 && t[0]&constructed != 0 {
		return KindConstructed
	}
	return KindPrimitive
}

// Constructed reports whether t identifies a constructed record.
func (t Tag) Constructed() bool {
	return t.Kind() == KindConstructed
}

// Number returns the tag number of t. For single byte tags this is the value
// of the low five bits. For multi-byte tags this is the base-128 number formed
// by the subsequent bytes. The second return value is false if t is not a
// complete tag identifier or its number does not fit into an uint64.
func (t Tag) Number() (uint64, bool) {
	if len(t) == 0 {
		return 0, false
	}
	if t[0]&numberMask != numberMask {
		return uint64(t[0] & numberMask), len(t) == 1
	}
	n, l, err := vlq.Decode[uint64](t[1:])
	if err != nil || 1+l != len(t) {
		return 0, false
	}
	return n, true
}

// Equal reports whether t and other consist of the same bytes.
func (t Tag) Equal(other Tag) bool {
	return bytes.Equal(t, other)
}

// Hex returns the upper-case hexadecimal representation of t. This is the
// form in which tags are usually written, e.g. "9F02".
func (t Tag) Hex() string {
	return strings.ToUpper(hex.EncodeToString(t))
}

// String returns the same value as [Tag.Hex].
func (t Tag) String() string {
	return t.Hex()
}
