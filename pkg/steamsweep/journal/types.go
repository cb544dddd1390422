// Package journal records what each steamsweep run moved to the trash.
package journal

import "time"

// Entry represents one recorded run.
type Entry struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Root      string      `json:"root"`
	Libraries []string    `json:"libraries"`
	Trashed   []DirRecord `json:"trashed"`
	Failed    []DirRecord `json:"failed,omitempty"`
	Summary   Summary     `json:"summary"`
}

// DirRecord represents one orphan directory in a journal entry.
type DirRecord struct {
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	Reason string `json:"reason,omitempty"` // Set for failures
}

// Summary contains run totals.
type Summary struct {
	TotalDirs  int64 `json:"total_dirs"`
	TotalBytes int64 `json:"total_bytes"`
}
