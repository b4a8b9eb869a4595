package cmd

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/hubdeck/internal/column"
	"github.com/spf13/cobra"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List the columns of the deck",
	Long: `List the columns stored in the columns file, in deck order.

Use the subcommands to add or remove columns. Filters are edited through
the options panel (hubdeck panel <column-id>).`,
	Args: cobra.NoArgs,
	RunE: runColumnsList,
}

var columnsAddCmd = &cobra.Command{
	Use:   "add <type>",
	Short: "Add a column to the end of the deck",
	Long: `Add a column to the end of the deck.

Types: notifications, activity, issue_or_pr`,
	Args: cobra.ExactArgs(1),
	RunE: runColumnsAdd,
}

var columnsRemoveCmd = &cobra.Command{
	Use:     "remove <column-id>",
	Aliases: []string{"rm"},
	Short:   "Remove a column from the deck",
	Args:    cobra.ExactArgs(1),
	RunE:    runColumnsRemove,
}

var columnsAddTitle string

func init() {
	rootCmd.AddCommand(columnsCmd)
	columnsCmd.AddCommand(columnsAddCmd)
	columnsCmd.AddCommand(columnsRemoveCmd)

	columnsAddCmd.Flags().StringVarP(&columnsAddTitle, "title", "t", "", "column title")
}

func runColumnsList(cmd *cobra.Command, args []string) error {
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

	columns := st.Columns()
	out := cmd.OutOrStdout()
	if len(columns) == 0 {
		fmt.Fprintln(out, "No columns. Add one with 'hubdeck columns add <type>'.")
		return nil
	}

	fmt.Fprintf(out, "Found %d column(s) in %s:\n\n", len(columns), st.Path())
	for i, col := range columns {
		fmt.Fprintf(out, "  %d. %s\n", i+1, col.DisplayTitle())
		fmt.Fprintf(out, "    ID:      %s\n", col.ID)
		fmt.Fprintf(out, "    Type:    %s\n", col.Type)
		fmt.Fprintf(out, "    Filters: %s\n", summarizeFilters(col.Filters))
	}
	return nil
}

func runColumnsAdd(cmd *cobra.Command, args []string) error {
	t := column.Type(args[0])
	if !t.IsKnown() {
		return fmt.Errorf("unknown column type %q (valid: %s)", args[0], joinTypes(column.KnownTypes()))
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

	col, err := st.Add(column.Column{Type: t, Title: columnsAddTitle})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s column %s\n", col.Type, col.ID)
	return nil
}

func runColumnsRemove(cmd *cobra.Command, args []string) error {
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
	if err := st.Remove(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed column %s\n", args[0])
	return nil
}

// summarizeFilters renders the defined filters of a column compactly.
func summarizeFilters(f column.Filters) string {
	var parts []string
	if f.Participating.Defined() {
		parts = append(parts, "participating="+f.Participating.String())
	}
	if f.Saved.Defined() {
		parts = append(parts, "saved="+f.Saved.String())
	}
	if f.Unread.Defined() {
		parts = append(parts, "unread="+f.Unread.String())
	}
	if f.Private.Defined() {
		parts = append(parts, "private="+f.Private.String())
	}
	for _, r := range []struct {
		name   string
		record column.Record
	}{
		{"subject_types", f.SubjectTypes},
		{"reasons", f.Reasons},
		{"actions", f.Actions},
	} {
		if n := len(r.record); n > 0 {
			parts = append(parts, fmt.Sprintf("%s(%d)", r.name, n))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func joinTypes(types []column.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
