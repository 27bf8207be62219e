package ports

// InputResolver defines the interface for resolving command line inputs to files.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InputResolver interface {
	// ResolveInputs expands the given files, directories and glob patterns
	// to a sorted list of concrete file paths. Base names matching any of
	// the exclude patterns are skipped while walking directories.
	ResolveInputs(inputs []string, exclude []string) ([]string, error)
}
