package main

import (
	"fmt"

	"github.com/jamesainslie/steamsweep/pkg/steamsweep/config"
	"github.com/jamesainslie/steamsweep/pkg/steamsweep/journal"
	"github.com/jamesainslie/steamsweep/pkg/steamsweep/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View run history",
	Long: `View the history of steamsweep runs.

The journal stores a record of every run that moved directories to the
trash, including which directories were moved and how large they were.`,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show details of a specific run",
	Long:  `Display detailed information about a specific run by its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean up old history entries",
	Long:  `Remove history entries older than the retention period.`,
	RunE:  runHistoryClean,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum number of entries to show")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyCleanCmd)
	rootCmd.AddCommand(historyCmd)
}

// getJournal returns a journal instance with the configured directory.
func getJournal() (*journal.Journal, error) {
	dir := viper.GetString("journal.path")
	if dir == "" {
		dir = config.DefaultJournalDir()
	}
	return journal.New(dir)
}

// runHistory lists recent runs.
func runHistory(cmd *cobra.Command, args []string) error {
	j, err := getJournal()
	if err != nil {
		return fmt.Errorf("failed to initialize journal: %w", err)
	}

	entries, err := j.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(entries) == 0 {
		printInfo("No history entries found.")
		printInfo("Run 'steamsweep [path]' to sweep a Steam library.")
		return nil
	}

	for _, entry := range entries {
		fmt.Printf("%s  %s\n", entry.Timestamp.Local().Format("2006-01-02 15:04"), entry.ID)
		fmt.Printf("  root: %s\n", entry.Root)
		fmt.Printf("  trashed %d directories, %s\n",
			entry.Summary.TotalDirs, output.FormatSize(entry.Summary.TotalBytes))
		if len(entry.Failed) > 0 {
			fmt.Printf("  %d failures\n", len(entry.Failed))
		}
		fmt.Println()
	}
	return nil
}

// runHistoryShow displays one run in full.
func runHistoryShow(cmd *cobra.Command, args []string) error {
	j, err := getJournal()
	if err != nil {
		return fmt.Errorf("failed to initialize journal: %w", err)
	}

	entry, err := j.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to load entry: %w", err)
	}

	fmt.Printf("ID:        %s\n", entry.ID)
	fmt.Printf("Time:      %s\n", entry.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Root:      %s\n", entry.Root)
	fmt.Printf("Libraries: %d\n", len(entry.Libraries))
	for _, lib := range entry.Libraries {
		fmt.Printf("  - %s\n", lib)
	}
	fmt.Printf("Trashed:   %d directories, %s\n",
		entry.Summary.TotalDirs, output.FormatSize(entry.Summary.TotalBytes))
	for _, d := range entry.Trashed {
		fmt.Printf("  - %s (%s)\n", d.Path, output.FormatSize(d.Size))
	}
	if len(entry.Failed) > 0 {
		fmt.Printf("Failed:    %d\n", len(entry.Failed))
		for _, d := range entry.Failed {
			fmt.Printf("  - %s: %s\n", d.Path, d.Reason)
		}
	}
	return nil
}

// runHistoryClean removes entries past the retention window.
func runHistoryClean(cmd *cobra.Command, args []string) error {
	j, err := getJournal()
	if err != nil {
		return fmt.Errorf("failed to initialize journal: %w", err)
	}

	retention := viper.GetInt("journal.retention_days")
	if retention <= 0 {
		retention = config.DefaultRetentionDays
	}

	if err := j.Cleanup(retention); err != nil {
		return fmt.Errorf("failed to clean history: %w", err)
	}

	printInfo("Removed history entries older than %d days.", retention)
	return nil
}
