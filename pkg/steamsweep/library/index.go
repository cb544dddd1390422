// Package library implements Steam library discovery and orphan detection.
//
// A "library" here is a steamapps directory: it holds one appmanifest_*.acf
// file per installed game plus a common/ subdirectory with the game content
// itself. Steam deletes the manifest on uninstall but frequently leaves the
// content directory behind; a common/ child without a matching manifest is
// therefore an orphan.
package library

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/steamsweep/pkg/steamsweep/acf"
	"github.com/jamesainslie/steamsweep/pkg/steamsweep/logging"
)

var logger = logging.Get("library")

// manifestPrefix and manifestSuffix bound the appmanifest file naming
// convention (appmanifest_<appid>.acf).
const (
	manifestPrefix = "appmanifest_"
	manifestSuffix = ".acf"
)

// Index maps lowercased install directory names to their manifest records
// for a single library. A name present in the index means the game is
// still installed as far as Steam is concerned.
type Index map[string]acf.InstallRecord

// Installed reports whether name belongs to an installed game.
// The comparison is case-insensitive.
func (ix Index) Installed(name string) bool {
	_, ok := ix[strings.ToLower(name)]
	return ok
}

// LoadIndex parses every appmanifest file directly inside dir and returns
// the resulting index. Files that cannot be read or do not yield a usable
// record are skipped: a corrupt or deleted manifest simply means Steam no
// longer considers that game installed, which is exactly the signal orphan
// detection relies on. If two manifests declare the same installdir the
// last one parsed wins.
func LoadIndex(dir string) Index {
	index := make(Index)

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Debug("cannot read library directory", "dir", dir, "error", err)
		return index
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isManifestName(name) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Debug("skipping unreadable manifest", "file", name, "error", err)
			continue
		}

		// string(data) decodes lossily; invalid bytes never fail the parse.
		rec, ok := acf.ParseManifest(string(data))
		if !ok {
			logger.Debug("skipping manifest without appid/installdir", "file", name)
			continue
		}

		index[strings.ToLower(rec.InstallDir)] = rec
	}

	return index
}

// isManifestName reports whether name follows the appmanifest_*.acf
// convention. Matching is case-insensitive to cope with filesystems and
// tools that change case.
func isManifestName(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, manifestPrefix) && strings.HasSuffix(lower, manifestSuffix)
}
