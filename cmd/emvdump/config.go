package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// config holds the effective settings of a run.
type config struct {
	Format     string
	Mode       string
	MaxDepth   int
	Dictionary string
	LogLevel   string
}

func defaultConfig() config {
	return config{Format: formatText, Mode: modeTLV}
}

// emvdump config.toml key mapping.
type fileConfig struct {
	Format     string `toml:"format"`
	Mode       string `toml:"mode"`
	MaxDepth   int    `toml:"max_depth"`
	Dictionary string `toml:"dictionary"`
	LogLevel   string `toml:"log_level"`
}

// loadConfig overlays the keys defined in the TOML file at path onto cfg.
func loadConfig(path string, cfg *config) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return errors.Wrapf(err, "load config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("mode") {
		cfg.Mode = strings.TrimSpace(raw.Mode)
	}
	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("dictionary") {
		cfg.Dictionary = strings.TrimSpace(raw.Dictionary)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return nil
}

func (c config) validate() error {
	switch c.Format {
	case formatText, formatYAML, formatJSON:
	default:
		return errors.Errorf("unsupported format %q (expected text, yaml or json)", c.Format)
	}
	switch c.Mode {
	case modeTLV, modeDOL, modeTags:
	default:
		return errors.Errorf("unsupported mode %q (expected tlv, dol or tags)", c.Mode)
	}
	if c.MaxDepth < 0 {
		return errors.Errorf("negative max depth %d", c.MaxDepth)
	}
	return nil
}
