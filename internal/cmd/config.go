package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Iron-Ham/hubdeck/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View hubdeck configuration",
	Long: `View hubdeck configuration.

Without arguments, displays the current configuration.
Use subcommands to locate or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/hubdeck/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "panel:")
	fmt.Fprintf(out, "  start_expanded: %s\n", cfg.Panel.StartExpanded)
	fmt.Fprintf(out, "  force_all_open: %v\n", cfg.Panel.ForceAllOpen)
	fmt.Fprintf(out, "  full_height: %v\n", cfg.Panel.FullHeight)
	fmt.Fprintf(out, "  expand_height_threshold: %d\n", cfg.Panel.ExpandHeightThreshold)

	fmt.Fprintln(out, "store:")
	fmt.Fprintf(out, "  path: %s\n", cfg.Store.ResolvePath())
	fmt.Fprintf(out, "  watch: %v\n", cfg.Store.Watch)

	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  label_width: %d\n", cfg.TUI.LabelWidth)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)

	return nil
}

const defaultConfigContent = `# Hubdeck Configuration

# Options panel behavior
panel:
  # Initial disclosure: auto (expand when the terminal is tall enough), always, never
  start_expanded: auto
  # Keep every category open and hide the expand/collapse controls
  force_all_open: false
  # Make the panel fill the terminal height
  full_height: false
  # Terminal height, in rows, from which "auto" starts expanded
  expand_height_threshold: 30

# Column storage
store:
  # Columns file (empty means columns.yaml next to this file)
  path: ""
  # Reload open panels when the columns file changes on disk
  watch: true

# TUI (terminal user interface) settings
tui:
  # Width of category titles before truncation (8-80)
  label_width: 28

# Debug logging to debug.log in the config directory
logging:
  enabled: true
  # Options: debug, info, warn, error
  level: info
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", config.ConfigFile())
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/hubdeck/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: HUBDECK_* (e.g., HUBDECK_PANEL_START_EXPANDED)")

	return nil
}
