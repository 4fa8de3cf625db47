// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcd

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func ExampleDecode() {
	// Amount, Authorised (9F02) of 12.34
	n, _ := Decode([]byte{0x00, 0x00, 0x00, 0x00, 0x12, 0x34})
	fmt.Println(n)
	// Output: 1234
}

func TestDecode(t *testing.T) {
	tests := map[string]struct {
		data    []byte
		want    uint64
		wantErr error
	}{
		"Empty":        {nil, 0, nil},
		"SingleByte":   {[]byte{0x09}, 9, nil},
		"TwoDigits":    {[]byte{0x42}, 42, nil},
		"CurrencyCode": {[]byte{0x09, 0x78}, 978, nil},
		"LeadingZeros": {[]byte{0x00, 0x00, 0x01, 0x00}, 100, nil},
		"MaxDigits":    {[]byte{0x18, 0x44, 0x67, 0x44, 0x07, 0x37, 0x09, 0x55, 0x16, 0x15}, math.MaxUint64, nil},
		"Large":        {[]byte{0x99, 0x99, 0x99, 0x99, 0x99, 0x99, 0x99, 0x99, 0x99}, 999999999999999999, nil},
		"Overflow":     {[]byte{0x18, 0x44, 0x67, 0x44, 0x07, 0x37, 0x09, 0x55, 0x16, 0x16}, 0, ErrOverflow},
		"TooLong":      {[]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, 0, ErrOverflow},
		"HighNibble":   {[]byte{0xA1}, 0, ErrInvalidDigit},
		"LowNibble":    {[]byte{0x1F}, 0, ErrInvalidDigit},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(tc.data)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Decode(%# x) error = %v, want %v", tc.data, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Decode(%# x) = %d, want %d", tc.data, got, tc.want)
			}
		})
	}
}

func TestDigits(t *testing.T) {
	got, err := Digits([]byte{0x09, 0x78})
	if err != nil {
		t.Fatalf("Digits() returned an unexpected error: %v", err)
	}
	if got != "0978" {
		t.Errorf("Digits() = %q, want %q", got, "0978")
	}
	if _, err = Digits([]byte{0x0F}); !errors.Is(err, ErrInvalidDigit) {
		t.Errorf("Digits() error = %v, want %v", err, ErrInvalidDigit)
	}
}

func BenchmarkDecode(b *testing.B) {
	data := []byte{0x00, 0x00, 0x00, 0x01, 0x23, 0x45}
	for b.Loop() {
		_, _ = Decode(data)
	}
}
