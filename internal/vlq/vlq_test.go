package vlq

import (
	"errors"
	"testing"
)

// decodeTestCase represents a single decoding test case for type T.
type decodeTestCase[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64] struct {
	data    []byte // input
	n       int    // expected number of consumed bytes
	want    T      // expected output
	wantErr error  // expected error
}

// testDecode asserts that decoding a VLQ from tc.data produces the expected results.
func testDecode[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](t *testing.T, tc decodeTestCase[T]) {
	t.Helper()

	got, n, err := Decode[T](tc.data)
	if !errors.Is(err, tc.wantErr) {
		t.Fatalf("Decode(%# x) error = %v, wantErr %v", tc.data, err, tc.wantErr)
	}
	if err != nil {
		return
	}
	if got != tc.want {
		t.Errorf("Decode(%# x) got = %v, want %v", tc.data, got, tc.want)
	}
	if n != tc.n {
		t.Errorf("Decode(%# x) n = %d, want %d", tc.data, n, tc.n)
	}
}

func TestDecode(t *testing.T) {
	tests := map[string]decodeTestCase[uint64]{
		"SingleByte":   {[]byte{0x05}, 1, 5, nil},
		"MultiByte":    {[]byte{0x85, 0x01, 0x00}, 2, 641, nil},
		"LeadingZeros": {[]byte{0x80, 0x85, 0x01}, 3, 641, nil},
		"Empty":        {nil, 0, 0, ErrTruncated},
		"Truncated":    {[]byte{0x81, 0x80}, 0, 0, ErrTruncated},
		"Overflow":     {[]byte{0x81, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, 0, 0, errOverflow},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			testDecode(t, tc)
		})
	}
}

func TestDecode8(t *testing.T) {
	tests := map[string]decodeTestCase[uint8]{
		"SingleByte": {[]byte{0x05}, 1, 5, nil},
		"Overflow":   {[]byte{0x85, 0x01}, 0, 0, errOverflow},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			testDecode(t, tc)
		})
	}
}

func TestLen(t *testing.T) {
	tests := map[string]struct {
		data []byte
		want int
		ok   bool
	}{
		"Empty":      {nil, 0, false},
		"SingleByte": {[]byte{0x2A}, 1, true},
		"TwoBytes":   {[]byte{0x81, 0x01, 0xFF}, 2, true},
		"Truncated":  {[]byte{0x8F}, 0, false},
		"AllHigh":    {[]byte{0x80, 0x80}, 0, false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := Len(tc.data)
			if got != tc.want || ok != tc.ok {
				t.Errorf("Len(%# x) = %d, %t, want %d, %t", tc.data, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	data := []byte{0x85, 0x01}
	for b.Loop() {
		_, _, _ = Decode[uint64](data)
	}
}
