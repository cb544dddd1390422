package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jamesainslie/steamsweep/pkg/steamsweep/acf"
	"github.com/jamesainslie/steamsweep/pkg/steamsweep/config"
)

// Directory names recognised during local discovery. A Steam client home
// ("Steam" or "SteamLibrary") contains a steamapps subdirectory; a bare
// "steamapps" directory is a library by itself.
const (
	appsDirName = "steamapps"

	libraryFoldersFile = "libraryfolders.vdf"
)

var clientHomeNames = map[string]struct{}{
	"steam":        {},
	"steamlibrary": {},
}

// Discover returns every Steam library reachable from searchRoot, sorted by
// path. Discovery runs in two phases: a local scan of searchRoot and its
// immediate children for Steam/SteamLibrary/steamapps directories, then a
// transitive expansion that follows libraryfolders.vdf declarations until
// no new libraries appear. Each library is canonicalized and reported once,
// so circular declarations terminate.
//
// A missing or unreadable libraryfolders.vdf ends that branch silently.
// An empty result is not an error; the caller decides whether finding no
// libraries is fatal.
func Discover(searchRoot string) ([]string, error) {
	root, err := filepath.Abs(searchRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving search root %q: %w", searchRoot, err)
	}

	queue := scanLocal(root)
	logger.Debug("local scan complete", "root", root, "candidates", len(queue))

	discovered := make(map[string]struct{})
	for len(queue) > 0 {
		candidate := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		canonical, err := canonicalize(candidate)
		if err != nil {
			logger.Debug("skipping candidate", "path", candidate, "error", err)
			continue
		}
		if !isDir(canonical) {
			continue
		}
		if _, seen := discovered[canonical]; seen {
			continue
		}
		discovered[canonical] = struct{}{}

		queue = append(queue, declaredLibraries(canonical)...)
	}

	libraries := make([]string, 0, len(discovered))
	for lib := range discovered {
		libraries = append(libraries, lib)
	}
	sort.Strings(libraries)
	return libraries, nil
}

// scanLocal finds library candidates in searchRoot itself and its immediate
// children.
func scanLocal(searchRoot string) []string {
	if !isDir(searchRoot) {
		return nil
	}

	seen := make(map[string]struct{})
	var candidates []string
	consider := func(path string) {
		if !isDir(path) {
			return
		}
		name := strings.ToLower(filepath.Base(path))
		if _, ok := clientHomeNames[name]; ok {
			path = filepath.Join(path, appsDirName)
			if !isDir(path) {
				return
			}
		} else if name != appsDirName {
			return
		}
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		candidates = append(candidates, path)
	}

	consider(searchRoot)
	entries, err := os.ReadDir(searchRoot)
	if err != nil {
		logger.Debug("cannot list search root", "root", searchRoot, "error", err)
		return candidates
	}
	for _, entry := range entries {
		consider(filepath.Join(searchRoot, entry.Name()))
	}
	return candidates
}

// declaredLibraries reads the libraryfolders.vdf inside a library and
// returns the steamapps directories of every declared library path that
// exists on disk.
func declaredLibraries(library string) []string {
	data, err := os.ReadFile(filepath.Join(library, libraryFoldersFile))
	if err != nil {
		// Absent or unreadable declarations just end this branch.
		return nil
	}

	var found []string
	for _, declared := range acf.LibraryPaths(string(data)) {
		expanded, err := config.ExpandPath(declared)
		if err != nil {
			logger.Debug("cannot expand declared path", "path", declared, "error", err)
			continue
		}
		candidate := filepath.Join(expanded, appsDirName)
		if isDir(candidate) {
			found = append(found, candidate)
		}
	}
	if len(found) > 0 {
		logger.Debug("declarations expanded", "library", library, "found", len(found))
	}
	return found
}

// canonicalize resolves symlinks and relative segments so that the same
// library reached through different paths dedupes to one entry.
func canonicalize(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
