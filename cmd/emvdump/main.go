// Command emvdump decodes hex encoded EMV data and prints it.
//
// Usage:
//
//	emvdump [flags] [hex ...]
//
// If no hex strings are given as arguments, emvdump decodes each non-empty
// line of standard input. The mode selects how the input is interpreted:
//
//	tlv   BER-TLV encoded data objects (default)
//	dol   a Data Object List of tags and lengths
//	tags  a list of tags without lengths
//
// Settings may also be read from a TOML file given by -config. Flags take
// precedence over the file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"codello.dev/emv/internal/logging"
	"codello.dev/emv/tags"
	"codello.dev/emv/tlv"
)

func main() {
	logging.ConfigureRuntime()
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("emvdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "read settings from the TOML `file`")
	format := fs.String("format", cfg.Format, "output format: text, yaml or json")
	mode := fs.String("mode", cfg.Mode, "input mode: tlv, dol or tags")
	maxDepth := fs.Int("max-depth", cfg.MaxDepth, "maximum nesting depth of constructed data objects, 0 for unlimited")
	dictionary := fs.String("dictionary", "", "load tag names from `file` instead of the built-in dictionary")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			log.Error().Err(err).Msg("emvdump: config")
			return 2
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "mode":
			cfg.Mode = *mode
		case "max-depth":
			cfg.MaxDepth = *maxDepth
		case "dictionary":
			cfg.Dictionary = *dictionary
		}
	})
	if err := cfg.validate(); err != nil {
		log.Error().Err(err).Msg("emvdump: config")
		return 2
	}
	if cfg.LogLevel != "" {
		lvl, ok := logging.ParseLevel(cfg.LogLevel)
		if !ok {
			log.Error().Str("log_level", cfg.LogLevel).Msg("emvdump: unknown log level")
			return 2
		}
		logging.SetLevel(lvl)
	}

	d := &decoder{opts: tlv.Options{MaxDepth: cfg.MaxDepth}, dict: tags.Default()}
	if cfg.Dictionary != "" {
		dict, err := tags.LoadFile(cfg.Dictionary)
		if err != nil {
			log.Error().Err(err).Msg("emvdump: dictionary")
			return 2
		}
		d.dict = dict
	}
	log.Debug().
		Str("mode", cfg.Mode).
		Str("format", cfg.Format).
		Int("max_depth", cfg.MaxDepth).
		Int("dictionary_entries", d.dict.Len()).
		Msg("emvdump: starting")

	inputs := fs.Args()
	if len(inputs) == 0 {
		sc := bufio.NewScanner(stdin)
		sc.Buffer(nil, 1<<20)
		for sc.Scan() {
			inputs = append(inputs, sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Error().Err(err).Msg("emvdump: reading input")
			return 1
		}
	}

	status := 0
	for i, in := range inputs {
		in = strings.Join(strings.Fields(in), "")
		if in == "" {
			continue
		}
		recs, err := d.decode(cfg.Mode, in)
		if err != nil {
			log.Error().Err(err).Int("input", i+1).Msg("emvdump: decode failed")
			status = 1
			continue
		}
		if err := write(stdout, cfg.Format, recs); err != nil {
			log.Error().Err(err).Msg("emvdump: write")
			return 1
		}
	}
	if status != 0 {
		fmt.Fprintln(stderr, "emvdump: some inputs could not be decoded")
	}
	return status
}
