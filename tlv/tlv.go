// Package tlv implements decoding of the BER-TLV format used by EMV payment
// cards as specified in [EMV Book 3], Annex B, a subset of the Basic Encoding
// Rules specified in [Rec. ITU-T X.690].
//
// This package deals with the syntactic layer of the encoding. Semantic
// interpretation of values is implemented by [codello.dev/emv/field] and
// [codello.dev/emv/bcd].
//
// # Encoding Variants
//
// Three wire forms are supported, each by its own builder:
//
//   - [Parse] decodes full tag-length-value records into a tree of [Node]
//     values. Records with a constructed tag contain a nested sequence of
//     records as their value.
//   - [ParseDOL] decodes a data object list (DOL). A DOL consists of tag and
//     length pairs without values. It describes data requested from the
//     terminal, not the data itself.
//   - [ParseTagList] decodes a concatenation of bare tag identifiers.
//
// Every builder has a variant accepting a hexadecimal string. All builders
// return an empty result for empty input.
//
// # Views
//
// The decoders never copy. All byte slices in the results are views into
// the input buffer, so the results are only valid as long as the buffer is
// kept alive. Use [Node.Clone] to detach a tree from its buffer.
//
// [EMV Book 3]: https://www.emvco.com/specifications/
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package tlv

import (
	"encoding/hex"
	"strconv"
	"strings"

	"codello.dev/emv"
	"codello.dev/emv/internal/ascii"
)

// Node is a single decoded record. The following relation holds for every
// node produced by [Parse]:
//
//	n.Raw == n.Tag ++ n.LengthBytes() ++ n.Value
//
// If n is constructed, the Raw slices of its Children cover n.Value exactly,
// in order.
type Node struct {
	Raw      []byte  // the entire record
	Tag      emv.Tag // the tag identifier
	Value    []byte  // the value field, len(Value) == Length
	Length   int     // the decoded length
	Children []*Node // records nested in Value, empty for primitive nodes
}

// Class returns the class of the tag of n.
func (n *Node) Class() emv.Class { return n.Tag.Class() }

// Kind returns the kind of the tag of n.
func (n *Node) Kind() emv.Kind { return n.Tag.Kind() }

// LengthBytes returns the encoded length field of n.
func (n *Node) LengthBytes() []byte {
	return n.Raw[len(n.Tag) : len(n.Raw)-len(n.Value)]
}

// TagHex returns the tag of n in upper-case hexadecimal.
func (n *Node) TagHex() string { return n.Tag.Hex() }

// ValueHex returns the value of n in upper-case hexadecimal.
func (n *Node) ValueHex() string { return upperHex(n.Value) }

// Hex returns the entire record in upper-case hexadecimal.
func (n *Node) Hex() string { return upperHex(n.Raw) }

// ASCII interprets the value of n as ASCII text. Bytes outside of the ASCII
// range are replaced by '?'.
func (n *Node) ASCII() string { return ascii.Decode(n.Value) }

// Clone returns a deep copy of n that does not share memory with the buffer
// n was decoded from.
func (n *Node) Clone() *Node {
	raw := make([]byte, len(n.Raw))
	copy(raw, n.Raw)
	return n.cloneInto(raw)
}

// cloneInto returns a copy of n backed by raw, which holds the bytes of n.Raw.
func (n *Node) cloneInto(raw []byte) *Node {
	c := &Node{
		Raw:    raw,
		Tag:    emv.Tag(raw[:len(n.Tag):len(n.Tag)]),
		Value:  raw[len(raw)-len(n.Value):],
		Length: n.Length,
	}
	at := 0
	for _, child := range n.Children {
		end := at + len(child.Raw)
		c.Children = append(c.Children, child.cloneInto(c.Value[at:end:end]))
		at = end
	}
	return c
}

// String returns a human-readable representation of n and its children.
func (n *Node) String() string {
	var sb strings.Builder
	n.format(&sb, 0)
	return sb.String()
}

func (n *Node) format(sb *strings.Builder, depth int) {
	if depth > 0 {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat("  ", depth))
	}
	sb.WriteString(n.TagHex())
	sb.WriteByte('/')
	if n.Tag.Constructed() {
		sb.WriteByte('c')
	} else {
		sb.WriteByte('p')
	}
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(n.Length))
	if !n.Tag.Constructed() && n.Length > 0 {
		sb.WriteByte(' ')
		sb.WriteString(n.ValueHex())
	}
	for _, child := range n.Children {
		child.format(sb, depth+1)
	}
}

// DOLEntry is a single entry of a data object list: a request for Length
// bytes of the data object identified by Tag. A DOLEntry has no value.
type DOLEntry struct {
	Raw    []byte  // tag and length field
	Tag    emv.Tag // the tag identifier
	Length int     // the requested length
}

// Class returns the class of the tag of e.
func (e DOLEntry) Class() emv.Class { return e.Tag.Class() }

// Kind returns the kind of the tag of e.
func (e DOLEntry) Kind() emv.Kind { return e.Tag.Kind() }

// Hex returns the tag and length of e in upper-case hexadecimal.
func (e DOLEntry) Hex() string { return upperHex(e.Raw) }

// String returns a string representation of e.
func (e DOLEntry) String() string {
	return e.Tag.Hex() + ":" + strconv.Itoa(e.Length)
}

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
