package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jamesainslie/steamsweep/pkg/steamsweep/config"
	"github.com/jamesainslie/steamsweep/pkg/steamsweep/journal"
	"github.com/jamesainslie/steamsweep/pkg/steamsweep/library"
	"github.com/jamesainslie/steamsweep/pkg/steamsweep/output"
	"github.com/jamesainslie/steamsweep/pkg/steamsweep/scanner"
	"github.com/jamesainslie/steamsweep/pkg/steamsweep/trash"
)

// runClean is the main command handler: discover libraries, detect
// orphans, move them to the trash, report.
func runClean(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	// Determine search root
	searchRoot := viper.GetString("search_root")
	if len(args) > 0 {
		searchRoot = args[0]
	}
	if searchRoot == "" {
		searchRoot = config.DefaultSearchRoot()
	}

	expandedRoot, err := config.ExpandPath(searchRoot)
	if err != nil {
		return fmt.Errorf("failed to expand path: %w", err)
	}
	absRoot, err := filepath.Abs(expandedRoot)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	printVerbose("Searching for Steam libraries under %s", absRoot)

	libraries, err := library.Discover(absRoot)
	if err != nil {
		return fmt.Errorf("library discovery failed: %w", err)
	}
	if len(libraries) == 0 {
		// The one fatal condition: nothing to work with.
		return fmt.Errorf("no Steam/SteamLibrary/steamapps directories found under %s", absRoot)
	}
	printVerbose("Found %d libraries", len(libraries))

	keep := library.KeepSet(viper.GetStringSlice("keep"))

	report := &output.Report{
		SearchRoot: absRoot,
		Libraries:  libraries,
	}

	// Per-library reconciliation. Orphan groups keep the libraries' sorted
	// order so output and relocation are deterministic.
	groups := make(map[string][]string)
	var groupedLibs []string
	for _, lib := range libraries {
		index := library.LoadIndex(lib)
		orphans, err := library.FindOrphans(lib, index, keep)
		if err != nil {
			printVerbose("Skipping %s: %v", lib, err)
			continue
		}
		printVerbose("%s: %d manifests, %d orphans", lib, len(index), len(orphans))
		if len(orphans) == 0 {
			continue
		}
		groups[lib] = orphans
		groupedLibs = append(groupedLibs, lib)

		group := output.LibraryGroup{Library: lib}
		for _, orphanPath := range orphans {
			size := scanner.DirSize(orphanPath)
			group.Orphans = append(group.Orphans, output.Orphan{
				Path:      orphanPath,
				Name:      filepath.Base(orphanPath),
				Size:      size,
				SizeHuman: output.FormatSize(size),
			})
		}
		report.Groups = append(report.Groups, group)
	}

	switch {
	case viper.GetBool("dry_run"):
		report.Trash = output.TrashOutcome{DryRun: true}
	case len(groupedLibs) > 0 && !confirmRelocation(report.TotalOrphans(), report.TotalSize()):
		report.Trash = output.TrashOutcome{Declined: true}
	default:
		report.Trash = relocateOrphans(groupedLibs, groups)
	}
	report.Elapsed = time.Since(startTime)

	if !report.Trash.DryRun && !report.Trash.Skipped && !report.Trash.Declined {
		logRunToJournal(report)
	}

	if err := renderReport(report); err != nil {
		return err
	}

	pauseBeforeExit()
	return nil
}

// confirmRelocation asks before anything is moved. Non-interactive runs
// proceed without asking: the trash is recoverable and --dry-run exists.
func confirmRelocation(count int, size int64) bool {
	if viper.GetBool("yes") {
		return true
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return true
	}

	fmt.Printf("Move %d directories (%s) to the trash? [y/N]: ", count, output.FormatSize(size))
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// relocateOrphans runs the trash phase.
func relocateOrphans(libraries []string, groups map[string][]string) output.TrashOutcome {
	res := trash.Relocate(libraries, groups, trash.System())

	outcome := output.TrashOutcome{
		Trashed: res.Trashed,
		Skipped: res.Skipped,
	}
	for _, f := range res.Failed {
		outcome.Failed = append(outcome.Failed, output.TrashFailure{
			Path:   f.Path,
			Reason: f.Err.Error(),
		})
	}
	return outcome
}

// logRunToJournal records the run outcome. Journal problems are reported
// but never fail the run; the cleanup already happened.
func logRunToJournal(report *output.Report) {
	if !viper.GetBool("journal.enabled") {
		return
	}
	if len(report.Trash.Trashed) == 0 && len(report.Trash.Failed) == 0 {
		return
	}

	dir := viper.GetString("journal.path")
	if dir == "" {
		dir = config.DefaultJournalDir()
	}
	j, err := journal.New(dir)
	if err != nil {
		printVerbose("Journal disabled: %v", err)
		return
	}

	sizes := make(map[string]int64)
	for _, g := range report.Groups {
		for _, o := range g.Orphans {
			sizes[o.Path] = o.Size
		}
	}

	var trashed, failed []journal.DirRecord
	for _, p := range report.Trash.Trashed {
		trashed = append(trashed, journal.DirRecord{Path: p, Size: sizes[p]})
	}
	for _, f := range report.Trash.Failed {
		failed = append(failed, journal.DirRecord{Path: f.Path, Size: sizes[f.Path], Reason: f.Reason})
	}

	if _, err := j.LogRun(report.SearchRoot, report.Libraries, trashed, failed); err != nil {
		printError("Failed to write journal entry: %v", err)
	}
}

// renderReport formats and prints the run report.
func renderReport(report *output.Report) error {
	outFormat := viper.GetString("output")
	if outFormat == "" {
		outFormat = config.DefaultOutputFormat
	}

	formatter, err := output.Get(outFormat)
	if err != nil {
		return fmt.Errorf("unknown output format %q: available formats are %v", outFormat, output.Available())
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, report); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(buf.String())
	return nil
}

// pauseBeforeExit waits for enter so users who double-clicked the binary
// can read the report. Skipped with --no-pause or when stdin is not a
// terminal.
func pauseBeforeExit() {
	if viper.GetBool("no_pause") {
		return
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return
	}

	fmt.Print("\nPress enter to exit...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
