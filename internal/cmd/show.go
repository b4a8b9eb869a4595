package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Iron-Ham/hubdeck/internal/config"
	"github.com/Iron-Ham/hubdeck/internal/filterstate"
	"github.com/Iron-Ham/hubdeck/internal/panel"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var showCmd = &cobra.Command{
	Use:   "show <column-id>",
	Short: "Print the options panel of a column",
	Long: `Print the computed options panel of a column without starting the
interactive UI.

Examples:
  # Print the panel as it would open in this terminal
  hubdeck show abc123

  # Print every category expanded
  hubdeck show abc123 --expanded

  # Only the multi-option categories, as JSON
  hubdeck show abc123 --only '*_{types,reason,action}' --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var (
	showJSON     bool
	showExpanded bool
	showOnly     string
)

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the view-model as JSON")
	showCmd.Flags().BoolVarP(&showExpanded, "expanded", "e", false, "expand every category")
	showCmd.Flags().StringVar(&showOnly, "only", "", "only show categories whose id matches this glob")
}

// panelParams builds panel parameters from the configuration and the
// terminal height.
func panelParams(cfg *config.Config, height, index, count int) panel.Params {
	return panel.Params{
		AvailableHeight:       height,
		ForceAllOpen:          cfg.Panel.ForceAllOpen,
		FullHeight:            cfg.Panel.FullHeight,
		StartExpanded:         cfg.Panel.StartExpandedOverride(),
		ExpandHeightThreshold: cfg.Panel.ExpandHeightThreshold,
		ColumnIndex:           index,
		ColumnCount:           count,
	}
}

// terminalHeight returns the height of stdout, or 0 when it is not a terminal.
func terminalHeight() int {
	if _, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return height
	}
	return 0
}

func runShow(cmd *cobra.Command, args []string) error {
	var only glob.Glob
	if showOnly != "" {
		g, err := glob.Compile(showOnly)
		if err != nil {
			return fmt.Errorf("invalid --only pattern %q: %w", showOnly, err)
		}
		only = g
	}

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
	col, index, err := st.Column(args[0])
	if err != nil {
		return err
	}

	params := panelParams(cfg, terminalHeight(), index, st.Len())
	if showExpanded {
		expanded := true
		params.StartExpanded = &expanded
	}

	view := panel.New(col, params, nil, logger).View()
	if only != nil {
		view = filterCategories(view, only)
	}

	out := cmd.OutOrStdout()
	if showJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}
	writeView(out, view)
	return nil
}

// filterCategories keeps the categories whose id matches g.
func filterCategories(v panel.View, g glob.Glob) panel.View {
	kept := make([]panel.CategoryView, 0, len(v.Categories))
	for _, c := range v.Categories {
		if g.Match(string(c.ID)) {
			kept = append(kept, c)
		}
	}
	v.Categories = kept
	return v
}

// writeView prints a plain-text rendering of the panel.
func writeView(w io.Writer, v panel.View) {
	fmt.Fprintf(w, "%s (%s)\n", v.ColumnTitle, v.ColumnType)
	for _, c := range v.Categories {
		arrow := "▸"
		switch {
		case !c.Toggleable:
			arrow = "•"
		case c.Open:
			arrow = "▾"
		}
		fmt.Fprintf(w, "%s %s: %s\n", arrow, c.Title, c.Subtitle)
		if !c.Open {
			continue
		}

		switch {
		case c.Pair != nil:
			for _, box := range []filterstate.Checkbox{c.Pair.First, c.Pair.Second} {
				fmt.Fprintf(w, "    %s %s%s\n", checkboxMark(box).Box(), box.Label, disabledSuffix(box.Disabled))
			}
		case c.Saved != nil:
			fmt.Fprintf(w, "    %s Saved for later\n", c.Saved.Mark.Box())
		case c.Multi != nil:
			for _, o := range c.Multi.Options {
				fmt.Fprintf(w, "    %s %s\n", o.Mark.Box(), o.Label)
			}
		}
	}

	var affordances []string
	if v.CanExpandAll {
		affordances = append(affordances, "expand all")
	}
	if v.CanCollapseAll {
		affordances = append(affordances, "collapse all")
	}
	if v.CanMoveLeft {
		affordances = append(affordances, "move left")
	}
	if v.CanMoveRight {
		affordances = append(affordances, "move right")
	}
	if len(affordances) > 0 {
		fmt.Fprintf(w, "\nActions: %s\n", strings.Join(affordances, ", "))
	}
}

func checkboxMark(c filterstate.Checkbox) filterstate.Mark {
	if c.Checked {
		return filterstate.MarkChecked
	}
	return filterstate.MarkUnchecked
}

func disabledSuffix(disabled bool) string {
	if disabled {
		return " (locked)"
	}
	return ""
}
