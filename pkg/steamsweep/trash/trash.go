// Package trash moves directories to the operating system's recoverable
// trash. It never deletes anything permanently: when no trash backend is
// available the caller is told so and nothing is removed. The user makes
// the final, irreversible decision from the trash itself.
package trash

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/jamesainslie/steamsweep/pkg/steamsweep/logging"
)

var logger = logging.Get("trash")

// commandTimeout is the maximum time to wait for trash commands.
const commandTimeout = 30 * time.Second

// ErrUnavailable is returned when no system trash backend could be found.
var ErrUnavailable = errors.New("no system trash backend available")

// Service is the capability steamsweep needs from the OS trash facility.
type Service interface {
	// MoveToTrash moves the file or directory at path to the trash.
	MoveToTrash(path string) error

	// Available reports whether a trash backend exists. When false,
	// MoveToTrash always fails with ErrUnavailable and callers should
	// skip the relocation phase entirely.
	Available() bool
}

// systemService shells out to the platform trash tool.
type systemService struct {
	run func(path string) error
}

func (s *systemService) Available() bool {
	return s.run != nil
}

func (s *systemService) MoveToTrash(path string) error {
	if s.run == nil {
		return ErrUnavailable
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot trash %q: %w", path, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("cannot resolve absolute path for %q: %w", path, err)
	}

	return s.run(absPath)
}

// System returns the process-wide trash service. The backend is resolved
// on first use and never re-probed: tool availability does not change
// within a run.
var System = sync.OnceValue(func() Service {
	svc := &systemService{run: resolveBackend()}
	if !svc.Available() {
		logger.Warn("no trash backend found", "os", runtime.GOOS)
	}
	return svc
})

// resolveBackend picks the platform trash command, or nil when none exists.
func resolveBackend() func(string) error {
	switch runtime.GOOS {
	case "darwin":
		if osascript, err := exec.LookPath("osascript"); err == nil {
			return func(path string) error {
				return trashMacOS(osascript, path)
			}
		}
	case "linux":
		// gio covers GNOME/GTK desktops; trash-put is the XDG-compliant
		// cross-desktop fallback.
		if gio, err := exec.LookPath("gio"); err == nil {
			return func(path string) error {
				return runTool(gio, "trash", path)
			}
		}
		if trashPut, err := exec.LookPath("trash-put"); err == nil {
			return func(path string) error {
				return runTool(trashPut, path)
			}
		}
	case "windows":
		if powershell, err := exec.LookPath("powershell"); err == nil {
			return func(path string) error {
				return trashWindows(powershell, path)
			}
		}
	}
	return nil
}

// trashMacOS moves a path to Trash through Finder, which keeps the
// "Put Back" metadata intact.
func trashMacOS(osascript, path string) error {
	script := fmt.Sprintf(`tell application "Finder" to delete POSIX file %q`, path)
	return runTool(osascript, "-e", script)
}

// trashWindows moves a path to the Recycle Bin via the shell COM API.
func trashWindows(powershell, path string) error {
	script := fmt.Sprintf(
		`$sh = New-Object -ComObject Shell.Application; $item = $sh.Namespace(0).ParseName(%q); if ($item -eq $null) { exit 1 }; $item.InvokeVerb('delete')`,
		path)
	return runTool(powershell, "-NoProfile", "-NonInteractive", "-Command", script)
}

// runTool executes a trash command with a timeout.
func runTool(name string, args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w (%s)", filepath.Base(name), err, string(out))
	}
	return nil
}
