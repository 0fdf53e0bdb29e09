package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swan/internal/adapters/fs"
	"go.trai.ch/swan/internal/core/domain"
)

func TestLinker_CreatesRelativeLink(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "build", "generated", "source", "apt", "debug")
	require.NoError(t, os.MkdirAll(target, 0o750))

	link := domain.GeneratedSourceLink{
		Path:      filepath.Join(tmpDir, "src", ".build", "generated-sources"),
		TargetDir: target,
	}

	require.NoError(t, fs.NewLinker().Relink(link))

	raw, err := os.Readlink(link.Path)
	require.NoError(t, err)
	assert.False(t, filepath.IsAbs(raw), "link target must be relative, got %q", raw)

	resolved, err := filepath.EvalSymlinks(link.Path)
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, expected, resolved)
}

func TestLinker_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "generated")
	require.NoError(t, os.MkdirAll(target, 0o750))

	link := domain.GeneratedSourceLink{
		Path:      filepath.Join(tmpDir, ".build", "generated-sources"),
		TargetDir: target,
	}

	linker := fs.NewLinker()
	require.NoError(t, linker.Relink(link))
	first, err := os.Readlink(link.Path)
	require.NoError(t, err)

	require.NoError(t, linker.Relink(link))
	second, err := os.Readlink(link.Path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLinker_ReplacesStaleLink(t *testing.T) {
	tmpDir := t.TempDir()
	oldTarget := filepath.Join(tmpDir, "old")
	newTarget := filepath.Join(tmpDir, "new")
	require.NoError(t, os.MkdirAll(oldTarget, 0o750))
	require.NoError(t, os.MkdirAll(newTarget, 0o750))

	path := filepath.Join(tmpDir, ".build", "generated-sources")
	linker := fs.NewLinker()

	require.NoError(t, linker.Relink(domain.GeneratedSourceLink{Path: path, TargetDir: oldTarget}))
	require.NoError(t, linker.Relink(domain.GeneratedSourceLink{Path: path, TargetDir: newTarget}))

	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(newTarget)
	require.NoError(t, err)
	assert.Equal(t, expected, resolved)
}
