package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.bin"), make([]byte, 1024), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested", "deep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.bin"), make([]byte, 2048), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "deep", "c.bin"), make([]byte, 512), 0o644))

	assert.Equal(t, int64(1024+2048+512), DirSize(dir))
}

func TestDirSize_EmptyDir(t *testing.T) {
	assert.Equal(t, int64(0), DirSize(t.TempDir()))
}

func TestDirSize_MissingDir(t *testing.T) {
	// A vanished directory yields zero, not a panic or error.
	assert.Equal(t, int64(0), DirSize(filepath.Join(t.TempDir(), "gone")))
}

func TestDirSize_IgnoresSymlinks(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.bin"), make([]byte, 100), 0o644))
	if err := os.Symlink(filepath.Join(dir, "real.bin"), filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	assert.Equal(t, int64(100), DirSize(dir))
}
