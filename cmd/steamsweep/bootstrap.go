package main

import (
	"fmt"

	"github.com/jamesainslie/steamsweep/pkg/steamsweep/config"
	"github.com/jamesainslie/steamsweep/pkg/steamsweep/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.PersistentPreRunE = initializeLogging
}

// initializeLogging sets up the logging system before any command runs.
// Log output goes to the XDG state dir; --verbose additionally mirrors
// debug logs to stderr.
func initializeLogging(_ *cobra.Command, _ []string) error {
	if err := config.EnsureStateDir(); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	logCfg := logging.Config{
		Level: viper.GetString("logging.level"),
		Path:  viper.GetString("logging.path"),
	}
	if logCfg.Level == "" {
		logCfg.Level = "info"
	}
	if components := viper.GetStringMapString("logging.components"); len(components) > 0 {
		logCfg.Components = components
	}
	if getVerbose() {
		logCfg.Level = "debug"
		logCfg.ConsoleLevel = "debug"
	}

	if err := logging.Init(logCfg); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}
