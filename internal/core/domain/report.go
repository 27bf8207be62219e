package domain

import "go.trai.ch/strref"

// FileSummary describes one input file after it was read.
type FileSummary struct {
	Path   string `yaml:"path"`
	Lines  int    `yaml:"lines"`
	Digest string `yaml:"digest"`
}

// Entry is a distinct line and the number of times it occurred.
type Entry struct {
	Line  strref.Str `yaml:"line"`
	Count int        `yaml:"count"`
}

// Report is the result of collecting lines from a set of files.
type Report struct {
	Files       []FileSummary  `yaml:"files"`
	Lines       int            `yaml:"lines"`
	Distinct    int            `yaml:"distinct"`
	Kinds       map[string]int `yaml:"kinds"`
	InlineBytes int            `yaml:"inline_bytes"`
	SharedBytes int            `yaml:"shared_bytes"`
	Top         []Entry        `yaml:"top"`
}

// Release releases the lines held by the report.
func (r *Report) Release() {
	for i := range r.Top {
		r.Top[i].Line.Release()
	}
	r.Top = nil
}
