package ports

// OverridesStore reads and writes the local overrides file
// (local.properties): flat string keys and values.
type OverridesStore interface {
	// Load returns the overrides map. A missing file is not an error and
	// yields an empty map.
	Load() (map[string]string, error)

	// Save persists the given map, replacing the file contents.
	Save(values map[string]string) error

	// Path returns the overrides file location.
	Path() string
}
