package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// commonDirName is the subdirectory of a library that holds game content.
const commonDirName = "common"

// CommonDir returns the content directory of a library.
func CommonDir(library string) string {
	return filepath.Join(library, commonDirName)
}

// KeepSet builds a lowercased lookup set from user-supplied keep names.
func KeepSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = struct{}{}
	}
	return set
}

// FindOrphans returns the absolute paths of directories under the library's
// common/ folder whose lowercased name is neither an installed game in the
// index nor in the keep set, sorted by path. Non-directory entries are
// ignored. A library without a common/ directory contributes no orphans;
// that is normal for libraries holding only workshop or shader data.
//
// The result is a pure function of the directory listing, the index and
// the keep set at the moment of the call; nothing is cached or mutated.
func FindOrphans(library string, index Index, keep map[string]struct{}) ([]string, error) {
	common := CommonDir(library)

	entries, err := os.ReadDir(common)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing %s: %w", common, err)
	}

	var orphans []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		lower := strings.ToLower(entry.Name())
		if index.Installed(lower) {
			continue
		}
		if _, kept := keep[lower]; kept {
			continue
		}
		orphans = append(orphans, filepath.Join(common, entry.Name()))
	}

	sort.Strings(orphans)
	return orphans, nil
}
