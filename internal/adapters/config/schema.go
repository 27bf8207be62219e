package config

import "go.trai.ch/strref"

// File represents the structure of the strref.yaml configuration file.
type File struct {
	Version   string       `yaml:"version"`
	Top       *int         `yaml:"top"`
	Workers   *int         `yaml:"workers"`
	Trim      bool         `yaml:"trim"`
	SkipEmpty bool         `yaml:"skip_empty"`
	Ignore    []strref.Str `yaml:"ignore"`
	Exclude   []string     `yaml:"exclude"`
}

func (f *File) release() {
	for i := range f.Ignore {
		f.Ignore[i].Release()
	}
	f.Ignore = nil
}
