package ports

// InputResolver expands declared glob patterns into concrete file paths.
type InputResolver interface {
	// Resolve returns the sorted, de-duplicated set of files matching the
	// patterns, resolved against root. Patterns matching nothing contribute
	// nothing; an empty result is a valid outcome.
	Resolve(patterns []string, root string) ([]string, error)
}
