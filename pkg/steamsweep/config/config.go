package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level      string            `mapstructure:"level"`
	Path       string            `mapstructure:"path"`
	Components map[string]string `mapstructure:"components"`
}

// JournalConfig configures the run journal.
type JournalConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Path          string `mapstructure:"path"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// Config represents the application configuration.
type Config struct {
	SearchRoot string        `mapstructure:"search_root"`
	Keep       []string      `mapstructure:"keep"`
	Output     string        `mapstructure:"output"`
	NoPause    bool          `mapstructure:"no_pause"`
	Logging    LoggingConfig `mapstructure:"logging"`
	Journal    JournalConfig `mapstructure:"journal"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/steamsweep/config.yaml
//   - $HOME/.config/steamsweep/config.yaml
//
// Environment variables are prefixed with STEAMSWEEP_ (e.g., STEAMSWEEP_KEEP).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "steamsweep"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(homeDir, ".config", "steamsweep"))

	v.SetEnvPrefix("STEAMSWEEP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("search_root", "") // Empty means the binary's own directory
	v.SetDefault("keep", DefaultKeep)
	v.SetDefault("output", DefaultOutputFormat)
	v.SetDefault("no_pause", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.path", "") // Empty means use DefaultLogPath
	v.SetDefault("logging.components", map[string]string{
		"library": "info",
		"trash":   "info",
		"journal": "warn",
	})

	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", "") // Empty means use DefaultJournalDir
	v.SetDefault("journal.retention_days", DefaultRetentionDays)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is acceptable; we use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.SearchRoot == "" {
		cfg.SearchRoot = DefaultSearchRoot()
	}

	if cfg.Journal.Path == "" {
		cfg.Journal.Path = DefaultJournalDir()
	} else if expanded, err := ExpandPath(cfg.Journal.Path); err == nil {
		cfg.Journal.Path = expanded
	}

	return &cfg, nil
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "steamsweep"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "steamsweep"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// WriteDefault writes a default config file if none exists.
// Returns nil if a config file already exists.
func WriteDefault() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configDir, err := ConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	defaultConfig := fmt.Sprintf(`# Steamsweep Configuration

# Directory searched for Steam/SteamLibrary/steamapps folders when no path
# is given on the command line. Empty means the directory containing the
# steamsweep binary.
search_root: ""

# Directory names under steamapps/common that are never treated as orphans.
keep:
  - Steamworks Shared
  - SteamLinuxRuntime
  - SteamLinuxRuntime_soldier
  - SteamLinuxRuntime_sniper
  - Proton Experimental

# Report format: pretty, plain, json, yaml
output: %s

# Skip the press-enter prompt at the end of a run.
no_pause: false

# Logging configuration
logging:
  # Log level: debug, info, warn, error
  level: info
  # Log file path (empty means use default: $XDG_STATE_HOME/steamsweep/steamsweep.log)
  path: ""
  # Per-component log levels
  components:
    library: info
    trash: info
    journal: warn

# Run journal (history of what was moved to trash)
journal:
  enabled: true
  # Journal directory (empty means use default: $XDG_STATE_HOME/steamsweep/journal)
  path: ""
  retention_days: %d
`, DefaultOutputFormat, DefaultRetentionDays)

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	return nil
}

// ExpandPath expands ~ in a path to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}

// StateDir returns $XDG_STATE_HOME/steamsweep/ for log and journal files.
func StateDir() string {
	return filepath.Join(xdg.StateHome, "steamsweep")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(StateDir(), "steamsweep.log")
}

// DefaultJournalDir returns the default journal directory.
func DefaultJournalDir() string {
	return filepath.Join(StateDir(), "journal")
}

// EnsureStateDir creates the state directory if it doesn't exist.
func EnsureStateDir() error {
	if err := os.MkdirAll(StateDir(), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	return nil
}
