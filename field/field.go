// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements semantic decoding of EMV data elements on top of
// the trees produced by [codello.dev/emv/tlv].
//
// Text elements such as the Application Preferred Name (tag 9F12) are encoded
// in a code page that is indicated by another element, the Issuer Code Table
// Index (tag 9F11). The code page table of this package maps such an index to
// a part of ISO/IEC 8859.
package field

import (
	"codello.dev/emv"
	"codello.dev/emv/tags"
	"codello.dev/emv/tlv"
)

// Text decodes the value of the first node with the given tag as text. The
// code page is given by the packed decimal value of the first node with the
// tag codePageTag. If there is no such node, the value is decoded as ASCII.
//
// The second return value is false if nodes contain no node with the given
// tag.
func Text(nodes []*tlv.Node, tag, codePageTag emv.Tag) (string, bool, error) {
	n := tlv.Find(nodes, tag)
	if n == nil {
		return "", false, nil
	}
	index := uint64(CodePageASCII)
	if c := tlv.Find(nodes, codePageTag); c != nil {
		var err error
		if index, err = c.Numeric(); err != nil {
			return "", true, err
		}
	}
	s, err := DecodeText(n.Value, index)
	return s, true, err
}

// ApplicationPreferredName returns the Application Preferred Name (tag 9F12)
// decoded in the code page given by the Issuer Code Table Index (tag 9F11).
// See [Text] for details.
func ApplicationPreferredName(nodes []*tlv.Node) (string, bool, error) {
	return Text(nodes, tags.ApplicationPreferredName, tags.IssuerCodeTableIndex)
}
