// Package config decodes an optional TOML file overriding the simulator's
// run-time defaults: the cycle budget, strict handling of unknown
// encodings, and the per-instruction trace (SPEC_FULL.md §2a).
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/AbdelrahmanBedoo/z16sim/sim"
)

// Config overrides sim.Options. Its zero value, layered onto Default(),
// changes nothing: a missing file is not an error.
type Config struct {
	// CycleBudget lowers the default cycle budget when positive; sim.Run
	// ignores a value above the default. Zero (the TOML zero value) means
	// "no override".
	CycleBudget int `toml:"cycle_budget"`

	// Strict promotes an unknown-encoding decode failure to a fatal
	// error instead of a logged, recovered-from diagnostic.
	Strict bool `toml:"strict"`

	// NoTrace disables the per-instruction trace line. Named so its
	// zero value (false) preserves the default of tracing, rather than
	// requiring every config file to spell out "trace = true".
	NoTrace bool `toml:"no_trace"`
}

// Default returns the configuration the simulator uses absent a file.
func Default() Config {
	return Config{CycleBudget: sim.DefaultCycleBudget}
}

// Load decodes path into base, so any field the file omits keeps base's
// value. Pass Default() as base for the normal startup path.
func Load(path string, base Config) (Config, error) {
	if _, err := toml.DecodeFile(path, &base); err != nil {
		return Config{}, &ErrConfig{Path: path, Err: err}
	}
	return base, nil
}

// Options returns the sim.Options this configuration selects.
func (c Config) Options(verbose bool) sim.Options {
	return sim.Options{
		Verbose:     verbose,
		CycleBudget: c.CycleBudget,
		Strict:      c.Strict,
		NoTrace:     c.NoTrace,
	}
}
