package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/swan/internal/core/domain"
	"go.trai.ch/swan/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Linker = (*Linker)(nil)

// Linker maintains the generated-sources symbolic link inside the Swift
// build directory.
type Linker struct{}

// NewLinker creates a new Linker.
func NewLinker() *Linker {
	return &Linker{}
}

// Relink recreates the link: the parent directory is created if needed,
// an existing link is removed (absence is not an error), and a fresh
// symlink is written whose target is relative to the link's parent.
func (l *Linker) Relink(link domain.GeneratedSourceLink) error {
	parent := filepath.Dir(link.Path)
	if err := os.MkdirAll(parent, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create build directory"), "path", parent)
	}

	if err := os.Remove(link.Path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove existing link"), "path", link.Path)
	}

	target, err := filepath.Rel(parent, link.TargetDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve relative link target"), "path", link.TargetDir)
	}

	if err := os.Symlink(target, link.Path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create link"), "path", link.Path)
	}

	return nil
}
