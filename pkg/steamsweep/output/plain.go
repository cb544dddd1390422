package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// PlainFormatter formats a report as simple tab-separated text.
// It produces plain output suitable for scripting and piping.
// No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted report to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	if _, err := tw.Write([]byte("SIZE\tPATH\n")); err != nil {
		return err
	}
	for _, group := range r.Groups {
		for _, o := range group.Orphans {
			if _, err := tw.Write([]byte(o.SizeHuman + "\t" + o.Path + "\n")); err != nil {
				return err
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "total\t%d orphans, %s\n", r.TotalOrphans(), FormatSize(r.TotalSize()))

	switch {
	case r.Trash.DryRun:
		fmt.Fprintln(w, "dry run: nothing moved to trash")
	case r.Trash.Declined:
		fmt.Fprintln(w, "cancelled: nothing moved to trash")
	case r.Trash.Skipped:
		fmt.Fprintln(w, "trash unavailable: nothing moved")
	default:
		fmt.Fprintf(w, "trashed %d, failed %d\n", len(r.Trash.Trashed), len(r.Trash.Failed))
	}
	return nil
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
