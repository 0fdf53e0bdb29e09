// Package props reads and writes the local.properties overrides file.
package props

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.trai.ch/swan/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.OverridesStore on a flat key=value file.
type Store struct {
	path string
}

// NewStore creates a store for the overrides file at the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the overrides file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the overrides file. A missing file yields an empty map.
func (s *Store) Load() (map[string]string, error) {
	values, err := godotenv.Read(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOverridesReadFailed.Error()), "path", s.path)
	}
	return values, nil
}

// Save persists the map, replacing the file contents. Keys are written
// sorted, so repeated saves produce identical files.
func (s *Store) Save(values map[string]string) error {
	if err := godotenv.Write(values, s.path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOverridesWriteFailed.Error()), "path", s.path)
	}
	return nil
}
