package calculator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes a calculator's symbols in a form suitable for a
// configuration file.
type Config struct {
	// Operators names operators to add to the built-ins. The only catalog
	// operator is "modulus", which may also be named by its symbol "%".
	Operators []string `yaml:"operators"`
	// Constants replaces the built-in constants if it is not empty.
	Constants []ConstantConfig `yaml:"constants"`
	// Functions names the functions to use in place of the built-ins, by
	// primary symbol, e.g. "sqrt" or "abs". If empty, the built-in functions
	// are used.
	Functions []string `yaml:"functions"`
}

// ConstantConfig describes one constant.
type ConstantConfig struct {
	Symbols []string `yaml:"symbols"`
	Value   float64  `yaml:"value"`
}

// LoadConfig decodes a YAML configuration. Unknown fields are errors. An empty
// document is an empty configuration.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFile decodes a YAML configuration file.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return cfg, nil
}

// catalog returns the functions that configuration files may name, keyed by
// primary symbol.
func catalog() map[string]Function {
	m := make(map[string]Function)
	for _, f := range append(DefaultFunctions(), Abs()) {
		m[f.name()] = f
	}
	return m
}

// Options converts the configuration to calculator options.
func (cfg *Config) Options() ([]Option, error) {
	var opts []Option
	for _, name := range cfg.Operators {
		switch strings.ToLower(name) {
		case "modulus", "mod", "%":
			opts = append(opts, WithOperators(Modulus()))
		default:
			return nil, fmt.Errorf("config: unknown operator %q", name)
		}
	}
	if len(cfg.Constants) != 0 {
		consts := make([]Constant, 0, len(cfg.Constants))
		for i, cc := range cfg.Constants {
			c, err := NewConstant(cc.Value, cc.Symbols...)
			if err != nil {
				return nil, fmt.Errorf("config: constant %d: %w", i+1, err)
			}
			consts = append(consts, c)
		}
		opts = append(opts, WithConstants(consts...))
	}
	if len(cfg.Functions) != 0 {
		cat := catalog()
		funcs := make([]Function, 0, len(cfg.Functions))
		for _, name := range cfg.Functions {
			f, ok := cat[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("config: unknown function %q", name)
			}
			funcs = append(funcs, f)
		}
		opts = append(opts, WithFunctions(funcs...))
	}
	return opts, nil
}
