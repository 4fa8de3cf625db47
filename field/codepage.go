// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"codello.dev/emv/internal/ascii"
)

// ErrUnsupportedCodePage indicates a code page index that has no entry in the
// code page table.
var ErrUnsupportedCodePage = errors.New("unsupported code page")

// CodePageASCII is the code page index selecting plain ASCII. It is used when
// a record does not indicate a code page.
const CodePageASCII = 0

// codePages maps the Issuer Code Table Index (tag 9F11) to the part of
// ISO/IEC 8859 it designates.
var codePages = map[uint64]*charmap.Charmap{
	1:  charmap.ISO8859_1,
	2:  charmap.ISO8859_2,
	3:  charmap.ISO8859_3,
	4:  charmap.ISO8859_4,
	5:  charmap.ISO8859_5,
	6:  charmap.ISO8859_6,
	7:  charmap.ISO8859_7,
	8:  charmap.ISO8859_8,
	9:  charmap.ISO8859_9,
	10: charmap.ISO8859_10,
	13: charmap.ISO8859_13,
	14: charmap.ISO8859_14,
	15: charmap.ISO8859_15,
	16: charmap.ISO8859_16,
}

// CodePage returns the encoding for the code page with the given index. Index
// n designates ISO/IEC 8859-n. Parts 11 and 12 are not supported.
// [CodePageASCII] has no [encoding.Encoding]; use [DecodeText] instead.
func CodePage(index uint64) (encoding.Encoding, error) {
	cp, ok := codePages[index]
	if !ok {
		return nil, fmt.Errorf("field: code page %d: %w", index, ErrUnsupportedCodePage)
	}
	return cp, nil
}

// DecodeText decodes data using the code page with the given index. If index
// is [CodePageASCII], bytes outside of the ASCII range are replaced by '?'.
// Bytes that are undefined in the selected code page are replaced by U+FFFD.
func DecodeText(data []byte, index uint64) (string, error) {
	if index == CodePageASCII {
		return ascii.Decode(data), nil
	}
	cp, err := CodePage(index)
	if err != nil {
		return "", err
	}
	b, err := cp.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("field: code page %d: %w", index, err)
	}
	return string(b), nil
}
