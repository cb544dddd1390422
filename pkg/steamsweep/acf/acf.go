// Package acf provides minimal parsing of Valve's text KeyValues format
// as found in appmanifest_*.acf and libraryfolders.vdf files.
//
// The parser deliberately ignores the nesting structure of the format and
// performs a flat scan for quoted "key" "value" pairs. The handful of
// fields steamsweep cares about are unique enough that structure awareness
// buys nothing, and a flat scan stays robust against the partially written
// or truncated manifests Steam leaves behind mid-update.
package acf

import (
	"regexp"
	"strings"
)

// pairPattern matches a quoted "key" "value" pair on a single line.
// Keys and values are runs of non-quote characters; values may be empty.
var pairPattern = regexp.MustCompile(`"([^"]+)"\s+"([^"]*)"`)

// InstallRecord holds the fields extracted from one app manifest.
// It is a plain value; callers index copies and never mutate them.
type InstallRecord struct {
	// AppID is Steam's numeric application identifier, kept as a string
	// since it is only ever compared and displayed.
	AppID string

	// InstallDir is the directory name under steamapps/common where the
	// game's content lives. Lookup key for orphan detection.
	InstallDir string

	// Name is the human-readable game title. May be empty.
	Name string
}

// ParseManifest scans manifest text for the appid, installdir and name
// fields. Keys match case-insensitively and a later occurrence of a key
// overwrites an earlier one. Unknown keys are ignored.
//
// It returns ok=false when either appid or installdir is missing or empty,
// meaning the text does not describe a usable install record.
func ParseManifest(text string) (InstallRecord, bool) {
	var rec InstallRecord
	for _, m := range pairPattern.FindAllStringSubmatch(text, -1) {
		value := strings.TrimSpace(m[2])
		switch strings.ToLower(m[1]) {
		case "appid":
			rec.AppID = value
		case "installdir":
			rec.InstallDir = value
		case "name":
			rec.Name = value
		}
	}
	if rec.AppID == "" || rec.InstallDir == "" {
		return InstallRecord{}, false
	}
	return rec, true
}

// LibraryPaths scans libraryfolders.vdf text and returns every value
// declared under a "path" key, trimmed, in order of appearance. The
// values are raw strings; the caller expands ~ and validates them.
func LibraryPaths(text string) []string {
	var paths []string
	for _, m := range pairPattern.FindAllStringSubmatch(text, -1) {
		if strings.EqualFold(m[1], "path") {
			if p := strings.TrimSpace(m[2]); p != "" {
				paths = append(paths, p)
			}
		}
	}
	return paths
}
