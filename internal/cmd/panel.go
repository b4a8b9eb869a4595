package cmd

import (
	"fmt"

	"github.com/Iron-Ham/hubdeck/internal/panel"
	"github.com/Iron-Ham/hubdeck/internal/tui"
	"github.com/spf13/cobra"
)

var panelCmd = &cobra.Command{
	Use:   "panel [column-id]",
	Short: "Open the interactive options panel of a column",
	Long: `Open the interactive options panel of a column. Without an argument the
first column of the deck is used.

Edits are written to the columns file immediately. When store.watch is
enabled, changes made to the file by other processes show up live.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPanel,
}

var panelNoWatch bool

func init() {
	rootCmd.AddCommand(panelCmd)

	panelCmd.Flags().BoolVar(&panelNoWatch, "no-watch", false, "do not reload when the columns file changes")
}

func runPanel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	defer func() { _ = logger.Close() }()

	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	if st.Len() == 0 {
		return fmt.Errorf("no columns in %s; add one with 'hubdeck columns add <type>'", st.Path())
	}

	id := st.Columns()[0].ID
	if len(args) == 1 {
		id = args[0]
	}
	col, index, err := st.Column(id)
	if err != nil {
		return err
	}

	params := panelParams(cfg, terminalHeight(), index, st.Len())
	p := panel.New(col, params, st, logger)

	app := tui.New(p, st, tui.Options{
		LabelWidth: cfg.TUI.LabelWidth,
		Watch:      cfg.Store.Watch && !panelNoWatch,
		Logger:     logger,
	})
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
