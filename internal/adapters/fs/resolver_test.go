package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swan/internal/adapters/fs"
)

func TestResolver_Resolve(t *testing.T) {
	tmpDir := t.TempDir()
	sources := filepath.Join(tmpDir, "Sources", "App")
	require.NoError(t, os.MkdirAll(sources, 0o750))
	for _, name := range []string{"main.swift", "util.swift", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(sources, name), []byte("x"), 0o644))
	}

	resolver := fs.NewResolver()
	paths, err := resolver.Resolve([]string{"Sources/*/*.swift"}, tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(sources, "main.swift"),
		filepath.Join(sources, "util.swift"),
	}, paths)
}

func TestResolver_Resolve_EmptyMatchesAllowed(t *testing.T) {
	resolver := fs.NewResolver()
	paths, err := resolver.Resolve([]string{"Sources/*/*.swift"}, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestResolver_Resolve_Deduplicates(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "Package.swift"), []byte("x"), 0o644))

	resolver := fs.NewResolver()
	paths, err := resolver.Resolve([]string{"Package.swift", "*.swift"}, tmpDir)
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}

func TestResolver_Resolve_RecursivePattern(t *testing.T) {
	tmpDir := t.TempDir()
	deep := filepath.Join(tmpDir, "Sources", "App", "Core", "Net")
	require.NoError(t, os.MkdirAll(deep, 0o750))
	shallow := filepath.Join(tmpDir, "Sources", "App")
	require.NoError(t, os.WriteFile(filepath.Join(shallow, "main.swift"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(deep, "client.swift"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(deep, "notes.md"), []byte("x"), 0o644))

	resolver := fs.NewResolver()
	paths, err := resolver.Resolve([]string{"Sources/**/*.swift"}, tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(deep, "client.swift"),
		filepath.Join(shallow, "main.swift"),
	}, paths)
}

func TestResolver_Resolve_RecursivePatternMissingBase(t *testing.T) {
	resolver := fs.NewResolver()
	paths, err := resolver.Resolve([]string{"Sources/**/*.swift"}, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
}
