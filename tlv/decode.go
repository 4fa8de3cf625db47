package tlv

import (
	"encoding/hex"

	"codello.dev/emv"
)

// Options configure the decoders. The zero value is ready to use and
// corresponds to the package level functions.
type Options struct {
	// MaxDepth is the maximum number of constructed records that may enclose a
	// record. Decoding input that is nested deeper fails with
	// [ErrMaxDepthExceeded]. A MaxDepth of 0 imposes no limit.
	//
	// The decoders do not recurse, so an unlimited depth does not risk stack
	// exhaustion.
	MaxDepth int
}

// Parse decodes a sequence of BER-TLV records from data into a tree. The
// records of the returned slice cover data exactly, in order. Constructed
// records with a non-zero length have their value decoded as children.
//
// Parse never returns a partial result. If the input is malformed, a
// [*SyntaxError] wrapping one of the structural errors of this package is
// returned. Parsing an empty buffer returns an empty result.
func Parse(data []byte) ([]*Node, error) {
	return Options{}.Parse(data)
}

// ParseHex works like [Parse] but decodes the hexadecimal string s first.
// Upper and lower case digits are accepted.
func ParseHex(s string) ([]*Node, error) {
	return Options{}.ParseHex(s)
}

// Parse works like the package level [Parse] function but respects the
// options in o.
func (o Options) Parse(data []byte) ([]*Node, error) {
	var s state
	s.reset(data)
	for {
		if s.curr.done() {
			if s.root() {
				return s.curr.nodes, nil
			}
			s.pop()
			continue
		}

		at := s.offset()
		n, err := decodeNode(s.curr.data[s.curr.offset:])
		if err != nil {
			return nil, s.syntaxError(err)
		}
		if n.Tag.Constructed() && n.Length > 0 && o.MaxDepth > 0 && s.depth() >= o.MaxDepth {
			return nil, s.syntaxError(ErrMaxDepthExceeded)
		}
		s.curr.nodes = append(s.curr.nodes, n)
		s.curr.offset += len(n.Raw)

		if n.Tag.Constructed() && n.Length > 0 {
			s.push(n, at+len(n.Raw)-len(n.Value))
		}
	}
}

// ParseHex works like the package level [ParseHex] function but respects the
// options in o.
func (o Options) ParseHex(s string) ([]*Node, error) {
	data, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	return o.Parse(data)
}

// Lookup searches the encoding in data for the first record with the given
// tag without building a tree. Records are visited in the same order as
// [Find] visits nodes. If a record is found, its value is returned as a view
// into data.
//
// Structural errors encountered before the record is found are returned.
// Input after the record is not validated.
func Lookup(data []byte, tag emv.Tag) ([]byte, bool, error) {
	return Options{}.Lookup(data, tag)
}

// Lookup works like the package level [Lookup] function but respects the
// options in o.
func (o Options) Lookup(data []byte, tag emv.Tag) ([]byte, bool, error) {
	type scope struct {
		tag emv.Tag
		end int
	}
	scopes := []scope{{end: len(data)}}
	pos := 0
	for {
		for len(scopes) > 0 && pos == scopes[len(scopes)-1].end {
			scopes = scopes[:len(scopes)-1]
		}
		if len(scopes) == 0 {
			return nil, false, nil
		}
		curr := scopes[len(scopes)-1]

		n, err := decodeNode(data[pos:curr.end])
		if err == nil && n.Tag.Constructed() && n.Length > 0 && o.MaxDepth > 0 && len(scopes)-1 >= o.MaxDepth {
			err = ErrMaxDepthExceeded
		}
		if err != nil {
			return nil, false, &SyntaxError{Err: err, ByteOffset: pos, Tag: curr.tag}
		}
		if n.Tag.Equal(tag) {
			return n.Value, true, nil
		}
		if n.Tag.Constructed() && n.Length > 0 {
			scopes = append(scopes, scope{n.Tag, pos + len(n.Raw)})
			pos += len(n.Raw) - len(n.Value)
		} else {
			pos += len(n.Raw)
		}
	}
}

// decodeHex decodes the hexadecimal string s.
func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &hexError{err}
	}
	return b, nil
}
