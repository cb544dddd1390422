// Package scanner computes on-disk sizes of orphan directories for
// reporting. Sizing is a presentation aid only: a failed stat or a file
// racing with deletion is skipped, never an error.
package scanner

import (
	"io/fs"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"github.com/jamesainslie/steamsweep/pkg/steamsweep/logging"
)

var logger = logging.Get("scanner")

// DirSize returns the total size in bytes of all regular files under path,
// walking recursively. Unreadable entries are skipped; the sum covers
// whatever could be read. Game directories can hold hundreds of thousands
// of files, so the walk runs with fastwalk's parallel workers.
func DirSize(path string) int64 {
	var total atomic.Int64

	conf := fastwalk.Config{
		Follow: false,
	}
	err := fastwalk.Walk(&conf, path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debug("skipping unreadable entry", "path", p, "error", err)
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total.Add(info.Size())
		return nil
	})
	if err != nil {
		logger.Debug("size walk incomplete", "path", path, "error", err)
	}

	return total.Load()
}
