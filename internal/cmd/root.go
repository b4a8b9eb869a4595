package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Iron-Ham/hubdeck/internal/config"
	"github.com/Iron-Ham/hubdeck/internal/errors"
	"github.com/Iron-Ham/hubdeck/internal/logging"
	"github.com/Iron-Ham/hubdeck/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "hubdeck",
	Short: "Column filter panels for a GitHub notification deck",
	Long: `Hubdeck keeps a deck of GitHub notification and activity columns and
lets you tune what each column shows through its options panel: inbox,
saved, read status, privacy, subject types, reasons and event actions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// reportError prints err. Errors about the deck itself are shown as is;
// anything else is most likely a command line mistake and gets a pointer
// to the help.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if !errors.IsUserFacing(err) {
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", rootCmd.CommandPath())
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/hubdeck/config.yaml)")
	rootCmd.PersistentFlags().String("store", "", "columns file (default is $HOME/.config/hubdeck/columns.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("store"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/hubdeck")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("HUBDECK")
	// e.g., HUBDECK_PANEL_START_EXPANDED for panel.start_expanded
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// loadConfig returns the validated configuration. Unlike config.Get it
// surfaces validation errors so commands can report them.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// newLogger opens the debug log in the config directory when logging is
// enabled. The caller closes it.
func newLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}
	logger, err := logging.NewLogger(config.ConfigDir(), cfg.Logging.Level)
	if err != nil {
		return logging.NopLogger()
	}
	return logger
}

// openStore opens the configured columns file.
func openStore(cfg *config.Config, logger *logging.Logger) (*store.Store, error) {
	st, err := store.Open(cfg.Store.ResolvePath(), logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open column store")
	}
	return st, nil
}
