package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/swan/internal/core/domain"
	"go.trai.ch/swan/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Installer = (*Installer)(nil)

// Installer copies produced and bundled shared libraries into the Android
// native-library tree.
type Installer struct {
	logger ports.Logger
}

// NewInstaller creates a new Installer.
func NewInstaller(logger ports.Logger) *Installer {
	return &Installer{logger: logger}
}

// Install executes the copy spec. Sources are processed in order, so a
// later source overwrites a file of the same name placed by an earlier
// one. Every copied file gets spec.Mode. Files already in the destination
// that no source matches are left alone.
func (i *Installer) Install(spec domain.ArtifactCopySpec) error {
	if err := os.MkdirAll(spec.Dest, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination directory"), "path", spec.Dest)
	}

	for _, source := range spec.Sources {
		matches, err := filepath.Glob(filepath.Join(source.Dir, source.Pattern))
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to glob artifact source"), "path", source.Dir)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to stat artifact"), "path", match)
			}
			if info.IsDir() {
				continue
			}

			dest := filepath.Join(spec.Dest, filepath.Base(match))
			if err := copyFile(match, dest, spec.Mode); err != nil {
				return err
			}
			i.logger.Info("installed " + filepath.Base(match))
		}
	}

	return nil
}

func copyFile(src, dest string, mode os.FileMode) error {
	in, err := os.Open(src) //nolint:gosec // paths come from the copy spec
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open artifact"), "path", src)
	}
	defer in.Close() //nolint:errcheck // best effort close in defer

	// Truncate-and-rewrite so a collision takes the later source's content.
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode) //nolint:gosec // destination inside the android tree
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create artifact"), "path", dest)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy artifact"), "path", dest)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close artifact"), "path", dest)
	}

	// The file may pre-exist with different permissions; OpenFile only
	// applies mode on creation.
	if err := os.Chmod(dest, mode); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set artifact permissions"), "path", dest)
	}

	return nil
}
