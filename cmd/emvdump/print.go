package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"codello.dev/emv"
	"codello.dev/emv/tags"
	"codello.dev/emv/tlv"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"

	modeTLV  = "tlv"
	modeDOL  = "dol"
	modeTags = "tags"
)

// record is the printable form of a data object, a DOL entry or a tag.
type record struct {
	Tag      string   `json:"tag" yaml:"tag"`
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Length   int      `json:"length,omitempty" yaml:"length,omitempty"`
	Value    string   `json:"value,omitempty" yaml:"value,omitempty"`
	Children []record `json:"children,omitempty" yaml:"children,omitempty"`

	constructed bool
	hasLength   bool
}

type decoder struct {
	opts tlv.Options
	dict *tags.Dictionary
}

// decode decodes the hex string s according to mode.
func (d *decoder) decode(mode, s string) ([]record, error) {
	switch mode {
	case modeDOL:
		entries, err := tlv.ParseDOLHex(s)
		if err != nil {
			return nil, err
		}
		recs := make([]record, len(entries))
		for i, e := range entries {
			recs[i] = d.record(e.Tag)
			recs[i].Length = e.Length
			recs[i].hasLength = true
		}
		return recs, nil
	case modeTags:
		list, err := tlv.ParseTagListHex(s)
		if err != nil {
			return nil, err
		}
		recs := make([]record, len(list))
		for i, t := range list {
			recs[i] = d.record(t)
		}
		return recs, nil
	default:
		nodes, err := d.opts.ParseHex(s)
		if err != nil {
			return nil, err
		}
		return d.nodes(nodes), nil
	}
}

func (d *decoder) record(t emv.Tag) record {
	r := record{Tag: t.Hex()}
	r.Name, _ = d.dict.Name(r.Tag)
	return r
}

func (d *decoder) nodes(nodes []*tlv.Node) []record {
	recs := make([]record, len(nodes))
	for i, n := range nodes {
		r := d.record(n.Tag)
		r.Length = n.Length
		r.hasLength = true
		r.constructed = n.Tag.Constructed()
		if r.constructed {
			r.Children = d.nodes(n.Children)
		} else {
			r.Value = n.ValueHex()
		}
		recs[i] = r
	}
	return recs
}

// write prints recs to w in the given format.
func write(w io.Writer, format string, recs []record) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(recs), "encode json")
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	default:
		var sb strings.Builder
		writeText(&sb, recs, 0)
		_, err := io.WriteString(w, sb.String())
		return err
	}
}

// writeText prints one TAG line per record, prefixed by two dashes per
// level. Primitive data objects are followed by a VALUE line.
func writeText(sb *strings.Builder, recs []record, depth int) {
	prefix := strings.Repeat("-", 2*depth) + " "
	for _, r := range recs {
		sb.WriteString(prefix)
		sb.WriteString("TAG:")
		sb.WriteString(r.Tag)
		if r.Name != "" {
			fmt.Fprintf(sb, " (%s)", r.Name)
		}
		if r.hasLength && !r.constructed {
			fmt.Fprintf(sb, " LENGTH:%d", r.Length)
		}
		sb.WriteByte('\n')
		switch {
		case r.constructed:
			writeText(sb, r.Children, depth+1)
		case r.Value != "":
			sb.WriteString(prefix)
			sb.WriteString("VALUE:")
			sb.WriteString(r.Value)
			sb.WriteByte('\n')
		}
	}
}
