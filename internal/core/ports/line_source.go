package ports

import (
	"context"

	"go.trai.ch/strref/internal/core/domain"
)

// LineSource defines the interface for reading input line by line.
//
//go:generate mockgen -source=line_source.go -destination=mocks/mock_line_source.go -package=mocks
type LineSource interface {
	// ReadLines calls fn for every line of the input at path, without the
	// line terminator. The slice passed to fn is only valid during the call.
	// Reading stops at the first error returned by fn.
	ReadLines(ctx context.Context, path string, fn func(line []byte) error) (domain.FileSummary, error)
}
