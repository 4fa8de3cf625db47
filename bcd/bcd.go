// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bcd decodes values in packed binary-coded decimal format (EMV data
// format n). Each byte holds two decimal digits, the high nibble being the
// more significant one. The most significant byte comes first. For example,
// the bytes 0x01 0x23 encode the number 123.
package bcd

import (
	"errors"
	"math"
)

var (
	// ErrInvalidDigit indicates a nibble with a value greater than 9.
	ErrInvalidDigit = errors.New("bcd: invalid digit")
	// ErrOverflow indicates that a value does not fit into an uint64.
	ErrOverflow = errors.New("bcd: value out of range")
)

// DecodeByte converts a single packed BCD byte into its value. For valid input
// the output is 0 through 99. The output is unspecified for nibbles > 9.
func DecodeByte(b byte) uint8 {
	return (b>>4)*10 + (b & 0x0f)
}

// Decode converts packed BCD bytes into their numeric value. An empty input
// decodes to 0. Leading zero digits are accepted and ignored.
func Decode(data []byte) (uint64, error) {
	var n uint64
	for _, b := range data {
		if b>>4 > 9 || b&0x0f > 9 {
			return 0, ErrInvalidDigit
		}
		d := uint64(DecodeByte(b))
		if n > (math.MaxUint64-d)/100 {
			return 0, ErrOverflow
		}
		n = n*100 + d
	}
	return n, nil
}

// Digits returns the decimal digits of data as a string. Unlike [Decode] the
// result preserves leading zeros, which matters for dates and codes such as
// "0978".
func Digits(data []byte) (string, error) {
	buf := make([]byte, 0, 2*len(data))
	for _, b := range data {
		if b>>4 > 9 || b&0x0f > 9 {
			return "", ErrInvalidDigit
		}
		buf = append(buf, '0'+b>>4, '0'+b&0x0f)
	}
	return string(buf), nil
}
