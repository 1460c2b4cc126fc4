package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/yard"
)

// config holds the settings of a run. A YAML config file sets the defaults,
// and flags override it.
type config struct {
	// Delimiter is the regular expression separating tokens.
	Delimiter string `yaml:"delimiter"`
	// Lex scans expressions rune by rune instead of splitting them.
	Lex bool `yaml:"lex"`
	// Prec is the precision of calculations in bits. Zero uses float64.
	Prec uint `yaml:"prec"`
	// Format is the fmt verb used to print results.
	Format string `yaml:"format"`
	// RPN prints each expression in postfix form before its result.
	RPN bool `yaml:"rpn"`
	// Lines treats each line of input as a separate expression.
	Lines bool `yaml:"lines"`
}

func defaultConfig() config {
	return config{
		Delimiter: yard.DefaultDelimiter,
		Format:    "%g",
	}
}

// loadConfig reads a YAML config file over the defaults. Unknown keys are an
// error.
func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("read config file: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (config, error) {
	cfg := defaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if cfg.Format == "" {
		cfg.Format = "%g"
	}
	return cfg, nil
}

// options gives the compile options for the config.
func (cfg config) options() []yard.Option {
	opts := []yard.Option{yard.Delimiter(cfg.Delimiter)}
	if cfg.Lex {
		opts = append(opts, yard.Lex())
	}
	return opts
}
