package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, filename, appid, installdir, name string) {
	t.Helper()
	content := `"AppState"
{
	"appid"		"` + appid + `"
	"installdir"		"` + installdir + `"
	"name"		"` + name + `"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644))
}

func TestLoadIndex(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "appmanifest_620.acf", "620", "Portal 2", "Portal 2")
	writeManifest(t, dir, "appmanifest_400.acf", "400", "Portal", "Portal")

	index := LoadIndex(dir)

	require.Len(t, index, 2)
	assert.True(t, index.Installed("Portal 2"))
	assert.True(t, index.Installed("portal"))
	assert.Equal(t, "620", index["portal 2"].AppID)
}

func TestLoadIndex_CaseInsensitiveLookup(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "appmanifest_1.acf", "1", "mygame", "My Game")

	index := LoadIndex(dir)

	assert.True(t, index.Installed("MyGame"))
	assert.True(t, index.Installed("MYGAME"))
	assert.False(t, index.Installed("OtherGame"))
}

func TestLoadIndex_SkipsCorruptManifests(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "appmanifest_620.acf", "620", "Portal 2", "Portal 2")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "appmanifest_666.acf"), []byte("\x00\x01 not keyvalues"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "appmanifest_667.acf"), []byte(`"appid" "667"`), 0o644))

	index := LoadIndex(dir)

	// Corrupt and incomplete manifests are skipped, not fatal.
	require.Len(t, index, 1)
	assert.True(t, index.Installed("Portal 2"))
}

func TestLoadIndex_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "appmanifest_620.acf", "620", "Portal 2", "Portal 2")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "libraryfolders.vdf"), []byte(`"path" "/x"`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`"appid" "1" "installdir" "x"`), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "appmanifest_999.acf"), 0o755))

	index := LoadIndex(dir)
	assert.Len(t, index, 1)
}

func TestLoadIndex_DuplicateInstallDirLastWins(t *testing.T) {
	dir := t.TempDir()
	// Same installdir from two manifests: the last parsed overwrites.
	writeManifest(t, dir, "appmanifest_1.acf", "1", "Shared", "First")
	writeManifest(t, dir, "appmanifest_2.acf", "2", "shared", "Second")

	index := LoadIndex(dir)

	require.Len(t, index, 1)
	assert.True(t, index.Installed("Shared"))
}

func TestLoadIndex_MissingDirectory(t *testing.T) {
	index := LoadIndex(filepath.Join(t.TempDir(), "nope"))
	assert.Empty(t, index)
}
