package domain

import (
	"runtime"

	"go.trai.ch/strref"
	"go.trai.ch/zerr"
)

// DefaultTop is the number of most frequent lines reported when the
// configuration does not say otherwise.
const DefaultTop = 10

// Config controls how input lines are collected.
type Config struct {
	// Top is the number of most frequent lines to report.
	Top int
	// Workers bounds the number of files read concurrently.
	Workers int
	// Trim removes surrounding whitespace from every line.
	Trim bool
	// SkipEmpty drops lines that are empty after trimming.
	SkipEmpty bool
	// Ignore lists lines that are never counted.
	Ignore []strref.Str
	// Exclude lists base name patterns skipped while walking directory inputs.
	Exclude []string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Top:     DefaultTop,
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that every field is in range.
func (c *Config) Validate() error {
	if c.Top < 0 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "top must not be negative"), "top", c.Top)
	}
	if c.Workers < 1 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "workers must be at least 1"), "workers", c.Workers)
	}
	return nil
}

// Release releases the ignored lines held by the configuration.
func (c *Config) Release() {
	for i := range c.Ignore {
		c.Ignore[i].Release()
	}
	c.Ignore = nil
}
