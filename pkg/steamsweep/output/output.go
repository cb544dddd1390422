// Package output provides formatters for displaying steamsweep run
// reports in various output formats (pretty, plain, json, yaml).
//
// The package uses a registry pattern to allow registration of multiple
// formatter implementations that can be selected at runtime.
//
// Basic usage:
//
//	formatter, err := output.Get("pretty")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, report); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// Orphan describes one leftover game directory.
type Orphan struct {
	// Path is the absolute path of the directory.
	Path string `json:"path" yaml:"path"`

	// Name is the directory's base name, as it appears under common/.
	Name string `json:"name" yaml:"name"`

	// Size is the recursive on-disk size in bytes.
	Size int64 `json:"size" yaml:"size"`

	// SizeHuman is the human-readable size (e.g., "1.5 GiB").
	SizeHuman string `json:"size_human" yaml:"size_human"`
}

// LibraryGroup collects the orphans found in one Steam library.
type LibraryGroup struct {
	// Library is the steamapps directory the orphans belong to.
	Library string `json:"library" yaml:"library"`

	// Orphans are the leftover directories, sorted by path.
	Orphans []Orphan `json:"orphans" yaml:"orphans"`
}

// TrashFailure describes one directory that could not be trashed.
type TrashFailure struct {
	Path   string `json:"path" yaml:"path"`
	Reason string `json:"reason" yaml:"reason"`
}

// TrashOutcome summarizes the relocation phase of a run.
type TrashOutcome struct {
	// Trashed lists directories successfully moved to the trash.
	Trashed []string `json:"trashed" yaml:"trashed"`

	// Failed lists directories whose relocation was attempted and failed.
	Failed []TrashFailure `json:"failed,omitempty" yaml:"failed,omitempty"`

	// Skipped is true when no trash backend was available and nothing
	// was attempted.
	Skipped bool `json:"skipped" yaml:"skipped"`

	// Declined is true when the user answered no at the confirmation
	// prompt and nothing was attempted.
	Declined bool `json:"declined" yaml:"declined"`

	// DryRun is true when relocation was disabled by the user.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}

// Report contains the complete result of one steamsweep run.
type Report struct {
	// SearchRoot is the directory discovery started from.
	SearchRoot string `json:"search_root" yaml:"search_root"`

	// Libraries are all discovered steamapps directories, sorted.
	Libraries []string `json:"libraries" yaml:"libraries"`

	// Groups holds per-library orphan lists, in library order.
	// Libraries without orphans are omitted.
	Groups []LibraryGroup `json:"groups" yaml:"groups"`

	// Trash is the outcome of the relocation phase.
	Trash TrashOutcome `json:"trash" yaml:"trash"`

	// Elapsed is the total run duration.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// TotalOrphans returns the number of orphan directories across all groups.
func (r *Report) TotalOrphans() int {
	var n int
	for _, g := range r.Groups {
		n += len(g.Orphans)
	}
	return n
}

// TotalSize returns the summed size in bytes of all orphans.
func (r *Report) TotalSize() int64 {
	var total int64
	for _, g := range r.Groups {
		for _, o := range g.Orphans {
			total += o.Size
		}
	}
	return total
}

// FormatSize converts a size in bytes to a human-readable string using
// binary (IEC) units for consistency with common filesystem tools.
func FormatSize(bytes int64) string {
	return humanize.IBytes(uint64(bytes))
}

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes the formatted report to the buffer.
	// It returns an error if formatting fails.
	Format(w *bytes.Buffer, r *Report) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It will replace any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
// It returns an error if the formatter is not found.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}
