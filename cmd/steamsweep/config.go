package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/steamsweep/pkg/steamsweep/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage steamsweep configuration settings.

Configuration is loaded from:
  1. $XDG_CONFIG_HOME/steamsweep/config.yaml (if set)
  2. ~/.config/steamsweep/config.yaml

Environment variables can override config file settings using the
STEAMSWEEP_ prefix:
  STEAMSWEEP_OUTPUT=json
  STEAMSWEEP_KEEP="Steamworks Shared,Proton Experimental"`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings from all sources.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Long:  `Create a default configuration file if one doesn't exist.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path to the configuration file.`,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// runConfigShow displays the current configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		printError("Failed to load configuration: %v", err)
		// Show defaults anyway
		cfg = &config.Config{
			SearchRoot: config.DefaultSearchRoot(),
			Keep:       config.DefaultKeep,
			Output:     config.DefaultOutputFormat,
		}
		cfg.Journal.Enabled = true
		cfg.Journal.RetentionDays = config.DefaultRetentionDays
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Printf("Config file: %s\n\n", configFile)
	} else {
		fmt.Println("Config file: (using defaults, no file found)")
		fmt.Println()
	}

	fmt.Println("Current Configuration:")
	fmt.Println("----------------------")
	fmt.Printf("search_root:  %s\n", cfg.SearchRoot)
	fmt.Printf("keep:         %s\n", strings.Join(cfg.Keep, ", "))
	fmt.Printf("output:       %s\n", cfg.Output)
	fmt.Printf("no_pause:     %v\n", cfg.NoPause)
	fmt.Printf("logging:\n")
	fmt.Printf("  level:      %s\n", cfg.Logging.Level)
	fmt.Printf("  path:       %s\n", orDefault(cfg.Logging.Path, config.DefaultLogPath()))
	fmt.Printf("journal:\n")
	fmt.Printf("  enabled:    %v\n", cfg.Journal.Enabled)
	fmt.Printf("  path:       %s\n", cfg.Journal.Path)
	fmt.Printf("  retention:  %d days\n", cfg.Journal.RetentionDays)
	return nil
}

// runConfigInit creates a default config file.
func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.WriteDefault(); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	configDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	printInfo("Config file: %s", filepath.Join(configDir, "config.yaml"))
	return nil
}

// runConfigPath prints the config file path.
func runConfigPath(cmd *cobra.Command, args []string) error {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Println(configFile)
		return nil
	}

	configDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(filepath.Join(configDir, "config.yaml"))
	return nil
}

// orDefault returns fallback when value is empty.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
