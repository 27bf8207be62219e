package fs

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/strref/internal/core/domain"
	"go.trai.ch/strref/internal/core/ports"
	"go.trai.ch/zerr"
)

// MaxLineSize is the longest line a Source accepts.
const MaxLineSize = 1 << 20

const checkEvery = 1024

var _ ports.LineSource = (*Source)(nil)

// Source implements the LineSource interface for files on disk.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// ReadLines streams the lines of the file at path to fn and returns a summary
// holding the line count and an xxhash digest of the file content.
// Both "\n" and "\r\n" terminators are stripped.
func (s *Source) ReadLines(
	ctx context.Context,
	path string,
	fn func(line []byte) error,
) (domain.FileSummary, error) {
	summary := domain.FileSummary{Path: path}

	f, err := os.Open(path) //nolint:gosec // Path is provided by the user
	if err != nil {
		return summary, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	digest := xxhash.New()
	scanner := bufio.NewScanner(io.TeeReader(f, digest))
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	for scanner.Scan() {
		summary.Lines++
		if summary.Lines%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
		}

		if err := fn(bytes.TrimSuffix(scanner.Bytes(), []byte{'\r'})); err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to process line"), "path", path)
			return summary, zerr.With(err, "line", summary.Lines)
		}
	}
	if err := scanner.Err(); err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
		return summary, zerr.With(err, "line", summary.Lines+1)
	}

	summary.Digest = fmt.Sprintf("%016x", digest.Sum64())
	return summary, nil
}
