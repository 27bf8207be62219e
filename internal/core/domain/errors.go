package domain

import "go.trai.ch/zerr"

var (
	// ErrNoInputs is returned when stats are requested without any input files.
	ErrNoInputs = zerr.New("no input files")

	// ErrInputNotFound is returned when an input path or pattern matches nothing.
	ErrInputNotFound = zerr.New("input not found")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrUnknownFormat is returned when a report is requested in an unsupported format.
	ErrUnknownFormat = zerr.New("unknown report format")
)
