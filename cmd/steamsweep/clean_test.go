package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRunFlags puts the global viper into a known non-interactive state.
func setupRunFlags(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("dry_run", true)
	viper.Set("no_pause", true)
	viper.Set("quiet", true)
	viper.Set("output", "plain")
	viper.Set("journal.enabled", false)
}

func mkFixtureLibrary(t *testing.T) (root, lib string) {
	t.Helper()
	root = t.TempDir()
	lib = filepath.Join(root, "SteamLibrary", "steamapps")
	require.NoError(t, os.MkdirAll(filepath.Join(lib, "common", "Foo"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(lib, "common", "Bar"), 0o755))

	manifest := `"AppState"
{
	"appid"		"1"
	"installdir"		"Foo"
	"name"		"Foo"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(lib, "appmanifest_1.acf"), []byte(manifest), 0o644))
	return root, lib
}

func TestRunClean_DryRun(t *testing.T) {
	setupRunFlags(t)
	root, lib := mkFixtureLibrary(t)

	err := runClean(nil, []string{root})
	require.NoError(t, err)

	// Dry run must leave the orphan in place.
	_, statErr := os.Stat(filepath.Join(lib, "common", "Bar"))
	assert.NoError(t, statErr)
}

func TestRunClean_NoLibrariesIsFatal(t *testing.T) {
	setupRunFlags(t)

	err := runClean(nil, []string{t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no Steam")
}

func TestRunClean_KeepList(t *testing.T) {
	setupRunFlags(t)
	viper.Set("keep", []string{"Bar"})
	root, _ := mkFixtureLibrary(t)

	err := runClean(nil, []string{root})
	require.NoError(t, err)
}

func TestRunClean_NoOrphansStillSucceeds(t *testing.T) {
	setupRunFlags(t)
	root := t.TempDir()
	lib := filepath.Join(root, "steamapps")
	require.NoError(t, os.MkdirAll(filepath.Join(lib, "common"), 0o755))

	// A library with no games at all is fine; only zero libraries is fatal.
	err := runClean(nil, []string{root})
	assert.NoError(t, err)
}

func TestRunClean_UnknownOutputFormat(t *testing.T) {
	setupRunFlags(t)
	viper.Set("output", "nonsense")
	root, _ := mkFixtureLibrary(t)

	err := runClean(nil, []string{root})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
