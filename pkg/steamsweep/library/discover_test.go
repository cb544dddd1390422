package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkLibrary(t *testing.T, parent, homeName string) string {
	t.Helper()
	lib := filepath.Join(parent, homeName, "steamapps")
	require.NoError(t, os.MkdirAll(lib, 0o755))
	return lib
}

func writeLibraryFolders(t *testing.T, library string, paths ...string) {
	t.Helper()
	content := `"libraryfolders"` + "\n{\n"
	for i, p := range paths {
		content += "\t\"" + string(rune('0'+i)) + "\"\n\t{\n\t\t\"path\"\t\t\"" + p + "\"\n\t}\n"
	}
	content += "}\n"
	require.NoError(t, os.WriteFile(filepath.Join(library, "libraryfolders.vdf"), []byte(content), 0o644))
}

// canon mirrors what Discover does to returned paths so tests compare
// canonicalized expectations (macOS resolves /tmp through a symlink).
func canon(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}

func TestDiscover_LocalScan(t *testing.T) {
	root := t.TempDir()
	steamLib := mkLibrary(t, root, "SteamLibrary")
	steamHome := mkLibrary(t, root, "Steam")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Unrelated"), 0o755))

	libs, err := Discover(root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{canon(t, steamLib), canon(t, steamHome)}, libs)
}

func TestDiscover_RootIsLibrary(t *testing.T) {
	root := t.TempDir()
	lib := filepath.Join(root, "steamapps")
	require.NoError(t, os.MkdirAll(lib, 0o755))

	libs, err := Discover(lib)
	require.NoError(t, err)
	assert.Equal(t, []string{canon(t, lib)}, libs)
}

func TestDiscover_CaseInsensitiveNames(t *testing.T) {
	root := t.TempDir()
	lib := mkLibrary(t, root, "STEAMLIBRARY")

	libs, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []string{canon(t, lib)}, libs)
}

func TestDiscover_ClientHomeWithoutSteamapps(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Steam"), 0o755))

	libs, err := Discover(root)
	require.NoError(t, err)
	assert.Empty(t, libs)
}

func TestDiscover_FollowsDeclarations(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()

	local := mkLibrary(t, root, "SteamLibrary")
	remote := filepath.Join(other, "steamapps")
	require.NoError(t, os.MkdirAll(remote, 0o755))
	writeLibraryFolders(t, local, other)

	libs, err := Discover(root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{canon(t, local), canon(t, remote)}, libs)
}

func TestDiscover_TransitiveDeclarations(t *testing.T) {
	root := t.TempDir()
	hopDir := t.TempDir()
	endDir := t.TempDir()

	local := mkLibrary(t, root, "Steam")
	hop := filepath.Join(hopDir, "steamapps")
	end := filepath.Join(endDir, "steamapps")
	require.NoError(t, os.MkdirAll(hop, 0o755))
	require.NoError(t, os.MkdirAll(end, 0o755))

	writeLibraryFolders(t, local, hopDir)
	writeLibraryFolders(t, hop, endDir)

	libs, err := Discover(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{canon(t, local), canon(t, hop), canon(t, end)}, libs)
}

func TestDiscover_CyclicDeclarationsTerminate(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()

	libA := mkLibrary(t, rootA, "SteamLibrary")
	libB := filepath.Join(rootB, "steamapps")
	require.NoError(t, os.MkdirAll(libB, 0o755))

	// A declares B, B declares A: must terminate with each library once.
	writeLibraryFolders(t, libA, rootB)
	writeLibraryFolders(t, libB, filepath.Join(rootA, "SteamLibrary"))

	libs, err := Discover(rootA)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{canon(t, libA), canon(t, libB)}, libs)
}

func TestDiscover_SelfDeclarationDedupes(t *testing.T) {
	root := t.TempDir()
	lib := mkLibrary(t, root, "SteamLibrary")
	writeLibraryFolders(t, lib, filepath.Join(root, "SteamLibrary"))

	libs, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []string{canon(t, lib)}, libs)
}

func TestDiscover_Idempotent(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	local := mkLibrary(t, root, "SteamLibrary")
	require.NoError(t, os.MkdirAll(filepath.Join(other, "steamapps"), 0o755))
	writeLibraryFolders(t, local, other)

	first, err := Discover(root)
	require.NoError(t, err)
	second, err := Discover(root)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.IsIncreasing(t, first)
}

func TestDiscover_DeclaredPathMissingOnDisk(t *testing.T) {
	root := t.TempDir()
	local := mkLibrary(t, root, "SteamLibrary")
	writeLibraryFolders(t, local, filepath.Join(root, "does-not-exist"))

	libs, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []string{canon(t, local)}, libs)
}

func TestDiscover_MalformedDeclarationFile(t *testing.T) {
	root := t.TempDir()
	local := mkLibrary(t, root, "SteamLibrary")
	require.NoError(t, os.WriteFile(filepath.Join(local, "libraryfolders.vdf"), []byte("garbage {{{"), 0o644))

	libs, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []string{canon(t, local)}, libs)
}

func TestDiscover_NoLibraries(t *testing.T) {
	libs, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, libs)
}

func TestDiscover_MissingSearchRoot(t *testing.T) {
	libs, err := Discover(filepath.Join(t.TempDir(), "gone"))
	require.NoError(t, err)
	assert.Empty(t, libs)
}
