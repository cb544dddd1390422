// Package config provides configuration management for steamsweep.
package config

import (
	"os"
	"path/filepath"
	"sync"
)

// Default configuration values for steamsweep.
const (
	// DefaultOutputFormat is the formatter used for run reports.
	DefaultOutputFormat = "pretty"

	// DefaultRetentionDays is how long journal entries are kept.
	DefaultRetentionDays = 90
)

// DefaultSearchRoot returns the directory holding the running binary,
// falling back to the current directory when it cannot be determined.
// Users typically drop the binary next to their Steam folder and
// double-click it, so the binary's own location is the natural starting
// point. Resolved once; the binary does not move during a run.
var DefaultSearchRoot = sync.OnceValue(func() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
})

// DefaultKeep contains directory names that are never treated as orphans.
// Valve tooling drops these under steamapps/common without a manifest.
var DefaultKeep = []string{
	"Steamworks Shared",
	"SteamLinuxRuntime",
	"SteamLinuxRuntime_soldier",
	"SteamLinuxRuntime_sniper",
	"Proton Experimental",
}
