package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete hubdeck configuration
type Config struct {
	Panel   PanelConfig   `mapstructure:"panel"`
	Store   StoreConfig   `mapstructure:"store"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Start-expanded policies
const (
	StartExpandedAuto   = "auto"
	StartExpandedAlways = "always"
	StartExpandedNever  = "never"
)

// PanelConfig controls the initial disclosure state of options panels
type PanelConfig struct {
	// StartExpanded is "auto" (decide from terminal height), "always" or "never"
	StartExpanded string `mapstructure:"start_expanded"`
	// ForceAllOpen pins every category open and hides the disclosure controls
	ForceAllOpen bool `mapstructure:"force_all_open"`
	// FullHeight makes the panel fill the terminal
	FullHeight bool `mapstructure:"full_height"`
	// ExpandHeightThreshold is the terminal height, in rows, from which "auto"
	// starts expanded (default: 30)
	ExpandHeightThreshold int `mapstructure:"expand_height_threshold"`
}

// StartExpandedOverride converts the policy into the panel's optional flag.
// It returns nil for "auto".
func (p PanelConfig) StartExpandedOverride() *bool {
	var v bool
	switch p.StartExpanded {
	case StartExpandedAlways:
		v = true
	case StartExpandedNever:
		v = false
	default:
		return nil
	}
	return &v
}

// StoreConfig controls where columns are persisted
type StoreConfig struct {
	// Path is the columns file (default: {ConfigDir}/columns.yaml)
	Path string `mapstructure:"path"`
	// Watch reloads open panels when the file changes on disk
	Watch bool `mapstructure:"watch"`
}

// ResolvePath returns Path, or the default location when it is empty.
// A leading "~/" is expanded to the home directory.
func (s StoreConfig) ResolvePath() string {
	path := s.Path
	if path == "" {
		return filepath.Join(ConfigDir(), "columns.yaml")
	}
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// LabelWidth is the width of option labels before truncation (default: 28, min: 8, max: 80)
	LabelWidth int `mapstructure:"label_width"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled writes a debug.log in the config directory
	Enabled bool `mapstructure:"enabled"`
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Panel: PanelConfig{
			StartExpanded:         StartExpandedAuto,
			ForceAllOpen:          false,
			FullHeight:            false,
			ExpandHeightThreshold: 30,
		},
		Store: StoreConfig{
			Path:  "",
			Watch: true,
		},
		TUI: TUIConfig{
			LabelWidth: 28,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("panel.start_expanded", defaults.Panel.StartExpanded)
	viper.SetDefault("panel.force_all_open", defaults.Panel.ForceAllOpen)
	viper.SetDefault("panel.full_height", defaults.Panel.FullHeight)
	viper.SetDefault("panel.expand_height_threshold", defaults.Panel.ExpandHeightThreshold)

	viper.SetDefault("store.path", defaults.Store.Path)
	viper.SetDefault("store.watch", defaults.Store.Watch)

	viper.SetDefault("tui.label_width", defaults.TUI.LabelWidth)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when it
// cannot be loaded
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hubdeck")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hubdeck"
	}
	return filepath.Join(home, ".config", "hubdeck")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
