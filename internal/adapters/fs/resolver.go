// Package fs provides the filesystem adapters: glob resolution, artifact
// installation, and the generated-sources link.
package fs

import (
	"errors"
	iofs "io/fs"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/swan/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements ports.InputResolver using filepath.Glob, extended
// with a `**` segment that matches any number of directories.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve expands the given patterns relative to root into a sorted,
// de-duplicated list of concrete file paths. A pattern may contain one
// `**` segment, which walks the directory tree below it. Patterns that
// match nothing contribute nothing; an empty result means there is
// nothing to build.
func (r *Resolver) Resolve(patterns []string, root string) ([]string, error) {
	uniquePaths := make(map[string]bool)

	for _, pattern := range patterns {
		path := pattern
		if !filepath.IsAbs(pattern) {
			path = filepath.Join(root, pattern)
		}

		var matches []string
		var err error
		if strings.Contains(pattern, "**") {
			matches, err = walkMatches(path)
		} else {
			matches, err = filepath.Glob(path)
			if err != nil {
				err = zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
			}
		}
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			uniquePaths[match] = true
		}
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	sort.Strings(result)

	return result, nil
}

// walkMatches expands a pattern containing a `**` segment by walking
// every directory below the pattern's fixed prefix and matching file
// names against the part after the segment. A missing prefix directory
// matches nothing.
func walkMatches(path string) ([]string, error) {
	// filepath.Join collapses "a/**/b" to keep the segment intact, so
	// cutting on "**" yields the fixed prefix and the name pattern.
	base, namePattern, _ := strings.Cut(path, "**")
	base = filepath.Clean(base)
	namePattern = strings.TrimPrefix(namePattern, string(filepath.Separator))

	var matches []string
	err := filepath.WalkDir(base, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				return nil
			}
			return zerr.With(zerr.Wrap(err, "failed to walk path"), "path", p)
		}
		if d.IsDir() {
			return nil
		}
		ok, matchErr := filepath.Match(namePattern, d.Name())
		if matchErr != nil {
			return zerr.With(zerr.Wrap(matchErr, "invalid pattern"), "pattern", namePattern)
		}
		if ok {
			matches = append(matches, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
