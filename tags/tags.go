// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tags provides names and descriptions of well-known EMV data
// elements.
//
// A [Dictionary] is loaded from a semicolon-separated text file with one data
// element per line:
//
//	9F12;Application Preferred Name;Preferred mnemonic associated with the AID
//
// Blank lines and lines starting with '#' are ignored, as are lines that do
// not have exactly three fields. The package embeds a default dictionary
// covering the data elements of EMV Book 3 that is available via [Default].
package tags

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"codello.dev/emv"
)

//go:embed tags.txt
var defaultTags string

// Entry describes a single data element.
type Entry struct {
	Tag         string // upper case hex
	Name        string
	Description string
}

// Dictionary maps tags to their names and descriptions. The zero value is an
// empty dictionary. A Dictionary is safe for concurrent reads.
type Dictionary struct {
	entries map[string]Entry
}

// Load reads a dictionary from r. If a tag occurs multiple times, the last
// entry wins. Surrounding quotes and spaces are trimmed from every field.
func Load(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{entries: make(map[string]Entry)}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		rec := strings.Split(line, ";")
		if len(rec) != 3 {
			continue
		}
		for i, f := range rec {
			rec[i] = strings.Trim(f, "\" ")
		}
		tag := strings.ToUpper(rec[0])
		if tag == "" {
			continue
		}
		d.entries[tag] = Entry{Tag: tag, Name: rec[1], Description: rec[2]}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "tags: reading dictionary")
	}
	return d, nil
}

// LoadFile reads a dictionary from the file at path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "tags: opening dictionary %s", path)
	}
	defer f.Close()
	d, err := Load(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return d, nil
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the embedded dictionary.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		d, err := Load(strings.NewReader(defaultTags))
		if err != nil {
			panic(errors.Wrap(err, "tags: embedded dictionary"))
		}
		defaultDict = d
	})
	return defaultDict
}

// Len returns the number of entries in d.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Lookup returns the entry for the hex encoded tag. The lookup is case
// insensitive.
func (d *Dictionary) Lookup(tag string) (Entry, bool) {
	if d == nil {
		return Entry{}, false
	}
	e, ok := d.entries[strings.ToUpper(tag)]
	return e, ok
}

// Name returns the short name of the hex encoded tag.
func (d *Dictionary) Name(tag string) (string, bool) {
	e, ok := d.Lookup(tag)
	return e.Name, ok
}

// Description returns the description of the hex encoded tag.
func (d *Dictionary) Description(tag string) (string, bool) {
	e, ok := d.Lookup(tag)
	return e.Description, ok
}

// NameFor returns the name of tag in the [Default] dictionary.
func NameFor(tag emv.Tag) (string, bool) {
	return Default().Name(tag.Hex())
}
