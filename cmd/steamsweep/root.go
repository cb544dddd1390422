package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/steamsweep/pkg/steamsweep/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "steamsweep [path]",
		Short: "Find and trash leftover Steam game directories",
		Long: `Steamsweep finds game directories that Steam left behind after an
uninstall and moves them to the system trash.

Starting from the given path (default: the directory containing the
steamsweep binary), it locates
Steam/SteamLibrary/steamapps folders, follows libraryfolders.vdf to every
other library on the machine, and compares each library's steamapps/common
contents against its appmanifest files. A directory without a manifest is
an orphan: Steam deletes the manifest on uninstall, so whatever is left is
unreferenced data. Orphans go to the trash, never to permanent deletion.

Examples:
  steamsweep                       # Sweep libraries found near the binary
  steamsweep /mnt/games            # Sweep libraries under /mnt/games
  steamsweep -d .                  # Dry run: report orphans, move nothing
  steamsweep --keep "My Mod" .     # Never treat "My Mod" as an orphan
  steamsweep -o json -n .          # Machine-readable report, no pause
  steamsweep history               # Show what earlier runs trashed`,
		Args: cobra.MaximumNArgs(1),
		RunE: runClean,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/steamsweep/config.yaml)")
	rootCmd.PersistentFlags().StringSliceP("keep", "k", nil, "directory names to always treat as installed (can be repeated)")
	rootCmd.PersistentFlags().BoolP("dry-run", "d", false, "report orphans without moving anything")
	rootCmd.PersistentFlags().BoolP("no-pause", "n", false, "don't wait for enter before exiting")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "skip the confirmation prompt")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (pretty, plain, json, yaml)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("keep", rootCmd.PersistentFlags().Lookup("keep"))
	_ = viper.BindPFlag("dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))
	_ = viper.BindPFlag("no_pause", rootCmd.PersistentFlags().Lookup("no-pause"))
	_ = viper.BindPFlag("yes", rootCmd.PersistentFlags().Lookup("yes"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		// Add config paths in order of precedence
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "steamsweep"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "steamsweep"))
		}
	}

	// Set environment variable prefix and enable auto env binding
	viper.SetEnvPrefix("STEAMSWEEP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Set defaults from config package
	viper.SetDefault("search_root", "")
	viper.SetDefault("keep", config.DefaultKeep)
	viper.SetDefault("output", config.DefaultOutputFormat)
	viper.SetDefault("journal.enabled", true)
	viper.SetDefault("journal.retention_days", config.DefaultRetentionDays)

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() && !getQuiet() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
