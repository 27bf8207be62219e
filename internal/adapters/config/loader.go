// Package config provides the configuration loader for strref.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/strref/internal/core/domain"
	"go.trai.ch/strref/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when none is given.
const DefaultFilename = "strref.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path. A missing file yields the defaults.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Info("no configuration at " + path + ", using defaults")
			return domain.DefaultConfig(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// Parse decodes a configuration document and applies the defaults for every
// field it leaves out.
func Parse(data []byte) (*domain.Config, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		file.release()
		return nil, zerr.Wrap(err, "failed to parse config file")
	}
	return file.config()
}

// config converts the file into a validated domain configuration. On error
// the decoded ignore lines are released.
func (f *File) config() (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	if f.Top != nil {
		cfg.Top = *f.Top
	}
	if f.Workers != nil {
		cfg.Workers = *f.Workers
	}
	cfg.Trim = f.Trim
	cfg.SkipEmpty = f.SkipEmpty
	cfg.Ignore = f.Ignore
	cfg.Exclude = f.Exclude
	f.Ignore = nil

	if err := cfg.Validate(); err != nil {
		cfg.Release()
		return nil, err
	}
	return cfg, nil
}
