package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the set of CLI defaults a user may pin in a YAML file,
// mirroring the flags SPEC_FULL.md §7 names for cmd/popcontrol.
type Config struct {
	StateOrdering string `yaml:"state-ordering"`
	SolverOutput  string `yaml:"solver-output"`
	Format        string `yaml:"format"`
	Verbosity     int    `yaml:"verbosity"`
}

// Default returns the zero-value-safe defaults applied before a config
// file or CLI flags are layered on top.
func Default() Config {
	return Config{
		StateOrdering: "input",
		SolverOutput:  "strategy",
		Format:        "plain",
	}
}

// LoadFile reads and validates a YAML config file, returning Default()
// with every present field overlaid.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that StateOrdering and SolverOutput carry one of their
// allowed values. Format is not checked.
func (c Config) Validate() error {
	switch c.StateOrdering {
	case "input", "alphabetical", "topological":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStateOrdering, c.StateOrdering)
	}
	switch c.SolverOutput {
	case "strategy", "yesno":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSolverOutput, c.SolverOutput)
	}
	return nil
}
