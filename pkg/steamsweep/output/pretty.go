package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// timeRounding keeps elapsed times readable in the header.
const timeRounding = time.Millisecond

// PrettyFormatter formats a report with colors and styling using lipgloss.
// It produces a visually appealing output suitable for terminal display.
type PrettyFormatter struct{}

// Format writes the formatted report to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Report) error {
	w.WriteString(f.formatHeader(r))
	w.WriteString("\n")

	if r.TotalOrphans() == 0 {
		w.WriteString(SuccessStyle.Render("No orphaned game directories found."))
		w.WriteString("\n")
		return nil
	}

	for _, group := range r.Groups {
		w.WriteString(f.formatGroup(group))
		w.WriteString("\n")
	}

	w.WriteString(f.formatFooter(r))
	return nil
}

// formatHeader builds the header box with run metadata.
func (f *PrettyFormatter) formatHeader(r *Report) string {
	var lines []string

	rootLabel := LabelStyle.Render("Root:")
	rootValue := ValueStyle.Render(r.SearchRoot)
	lines = append(lines, fmt.Sprintf("%s %s", rootLabel, rootValue))

	libLabel := LabelStyle.Render("Libraries:")
	libValue := ValueStyle.Render(fmt.Sprintf("%d found in %s", len(r.Libraries), r.Elapsed.Round(timeRounding)))
	lines = append(lines, fmt.Sprintf("%s %s", libLabel, libValue))

	return HeaderBox.Render(strings.Join(lines, "\n"))
}

// formatGroup renders one library and its orphans.
func (f *PrettyFormatter) formatGroup(g LibraryGroup) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(g.Library))
	b.WriteString("\n")
	for _, o := range g.Orphans {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			SizeStyle.Render(fmt.Sprintf("%9s", o.SizeHuman)),
			ValueStyle.Render(o.Name)))
	}
	return b.String()
}

// formatFooter renders the totals and the trash outcome.
func (f *PrettyFormatter) formatFooter(r *Report) string {
	var lines []string

	totalLabel := LabelStyle.Render("Total:")
	totalValue := ValueStyle.Render(fmt.Sprintf("%d orphans, %s", r.TotalOrphans(), FormatSize(r.TotalSize())))
	lines = append(lines, fmt.Sprintf("%s %s", totalLabel, totalValue))

	switch {
	case r.Trash.DryRun:
		lines = append(lines, MutedStyle.Render("Dry run: nothing was moved to the trash."))
	case r.Trash.Declined:
		lines = append(lines, MutedStyle.Render("Cancelled: nothing was moved to the trash."))
	case r.Trash.Skipped:
		lines = append(lines, ErrorStyle.Render("No trash backend available; nothing was moved. Install trash-put or gio."))
	default:
		lines = append(lines, SuccessStyle.Render(fmt.Sprintf("Moved %d directories to the trash.", len(r.Trash.Trashed))))
		for _, fail := range r.Trash.Failed {
			lines = append(lines, ErrorStyle.Render(fmt.Sprintf("Failed: %s (%s)", fail.Path, fail.Reason)))
		}
	}

	return FooterBox.Render(strings.Join(lines, "\n"))
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
