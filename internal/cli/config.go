package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/milden6/wordgraph"
)

// Config holds the settings shared by all commands. It can be read from a
// TOML file; command line flags take precedence over file values.
//
//	input   = "lexicon_english.txt"
//	verbose = true
//	dump    = false
//	dot     = "graph.dot"
//	svg     = "graph.svg"
type Config struct {
	Input   string `toml:"input"`
	Verbose bool   `toml:"verbose"`
	Dump    bool   `toml:"dump"`
	DOT     string `toml:"dot"`
	SVG     string `toml:"svg"`
}

// loadConfig decodes the TOML file at path. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, wordgraph.WrapError(wordgraph.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, wordgraph.NewError(wordgraph.ErrCodeInvalidInput, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// merge fills every field of c whose flag was not set on the command line
// from file.
func (c *Config) merge(file Config, changed func(flag string) bool) {
	if !changed("input") {
		c.Input = file.Input
	}
	if !changed("verbose") {
		c.Verbose = file.Verbose
	}
	if !changed("dump") {
		c.Dump = file.Dump
	}
	if !changed("dot") {
		c.DOT = file.DOT
	}
	if !changed("svg") {
		c.SVG = file.SVG
	}
}

func (c *Config) validate() error {
	if c.Input == "" {
		return wordgraph.NewError(wordgraph.ErrCodeInvalidInput, "no word list given (use --input or the config file)")
	}
	return nil
}
