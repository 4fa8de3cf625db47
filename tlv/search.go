package tlv

import (
	"iter"

	"codello.dev/emv"
	"codello.dev/emv/bcd"
)

// All returns an iterator over nodes and all of their descendants in
// depth-first pre-order. Each node is yielded together with its depth, where
// the nodes in the argument have depth 0.
func All(nodes []*Node) iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		walk(nodes, 0, yield)
	}
}

func walk(nodes []*Node, depth int, yield func(int, *Node) bool) bool {
	for _, n := range nodes {
		if !yield(depth, n) || !walk(n.Children, depth+1, yield) {
			return false
		}
	}
	return true
}

// Find returns the first node with the given tag. Siblings are searched in
// order, the children of a node are searched before its next sibling. If no
// node matches, nil is returned.
func Find(nodes []*Node, tag emv.Tag) *Node {
	for _, n := range All(nodes) {
		if n.Tag.Equal(tag) {
			return n
		}
	}
	return nil
}

// FindHex works like [Find] but takes the tag as a hexadecimal string such as
// "9F02". If s is not valid hex, the error wraps [ErrInvalidHexEncoding]. If s
// is not exactly one tag identifier, [ErrTruncatedTag] or
// [emv.ErrTrailingData] is returned.
func FindHex(nodes []*Node, s string) (*Node, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	tag, err := DecodeTag(b)
	if err != nil {
		return nil, err
	}
	if len(tag) != len(b) {
		return nil, emv.ErrTrailingData
	}
	return Find(nodes, tag), nil
}

// ValueHex returns the value of the first node with the tag s in upper-case
// hexadecimal. If s is invalid or no such node exists, the empty string is
// returned.
func ValueHex(nodes []*Node, s string) string {
	if n, _ := FindHex(nodes, s); n != nil {
		return n.ValueHex()
	}
	return ""
}

// DataHex returns the entire record of the first node with the tag s in
// upper-case hexadecimal. If s is invalid or no such node exists, the empty
// string is returned.
func DataHex(nodes []*Node, s string) string {
	if n, _ := FindHex(nodes, s); n != nil {
		return n.Hex()
	}
	return ""
}

// Numeric interprets the value of n as packed decimal digits (EMV format n).
// See [bcd.Decode] for details.
func (n *Node) Numeric() (uint64, error) {
	return bcd.Decode(n.Value)
}
