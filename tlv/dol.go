package tlv

import (
	"codello.dev/emv"
)

// ParseDOL decodes a data object list (DOL) from data. A DOL is a sequence of
// tag and length fields. Unlike [Parse], ParseDOL does not expect a value
// after a length field and never descends into constructed tags.
//
// If the input is malformed, a [*SyntaxError] is returned. Parsing an empty
// buffer returns an empty result.
func ParseDOL(data []byte) ([]DOLEntry, error) {
	var entries []DOLEntry
	for offset := 0; offset < len(data); {
		tag, length, n, err := decodeHeader(data[offset:])
		if err != nil {
			return nil, &SyntaxError{Err: err, ByteOffset: offset}
		}
		entries = append(entries, DOLEntry{
			Raw:    data[offset : offset+n : offset+n],
			Tag:    tag,
			Length: length,
		})
		offset += n
	}
	return entries, nil
}

// ParseDOLHex works like [ParseDOL] but decodes the hexadecimal string s first.
func ParseDOLHex(s string) ([]DOLEntry, error) {
	data, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	return ParseDOL(data)
}

// ParseTagList decodes a tag list from data. A tag list is a concatenation of
// tag identifiers without length or value fields.
//
// If the input ends inside a tag identifier, a [*SyntaxError] wrapping
// [ErrTruncatedTag] is returned. Parsing an empty buffer returns an empty
// result.
func ParseTagList(data []byte) ([]emv.Tag, error) {
	var tags []emv.Tag
	for offset := 0; offset < len(data); {
		tag, err := DecodeTag(data[offset:])
		if err != nil {
			return nil, &SyntaxError{Err: err, ByteOffset: offset}
		}
		tags = append(tags, tag)
		offset += len(tag)
	}
	return tags, nil
}

// ParseTagListHex works like [ParseTagList] but decodes the hexadecimal
// string s first.
func ParseTagListHex(s string) ([]emv.Tag, error) {
	data, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	return ParseTagList(data)
}
