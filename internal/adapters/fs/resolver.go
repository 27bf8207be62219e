package fs

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/strref/internal/core/domain"
	"go.trai.ch/strref/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface using filepath.Glob and a Walker.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveInputs resolves the given inputs to a sorted, duplicate free list of files.
// Directories are walked recursively. A pattern that matches nothing is an error.
func (r *Resolver) ResolveInputs(inputs, exclude []string) ([]string, error) {
	unique := make(map[string]struct{})

	for _, input := range inputs {
		matches, err := filepath.Glob(input)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", input)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInputNotFound, "no file matches input"), "path", input)
		}

		for _, match := range matches {
			if err := r.add(unique, match, exclude); err != nil {
				return nil, err
			}
		}
	}

	result := make([]string, 0, len(unique))
	for path := range unique {
		result = append(result, path)
	}
	slices.Sort(result)

	return result, nil
}

func (r *Resolver) add(unique map[string]struct{}, path string, exclude []string) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat input"), "path", path)
	}
	if !info.IsDir() {
		unique[filepath.Clean(path)] = struct{}{}
		return nil
	}

	for file, err := range r.walker.WalkFiles(path, exclude) {
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", path)
		}
		unique[filepath.Clean(file)] = struct{}{}
	}
	return nil
}
