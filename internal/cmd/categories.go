package cmd

import (
	"fmt"

	"github.com/Iron-Ham/hubdeck/internal/category"
	"github.com/Iron-Ham/hubdeck/internal/column"
	"github.com/Iron-Ham/hubdeck/internal/panel"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories <column-type>",
	Short: "List the filter categories offered for a column type",
	Long: `List the filter categories an options panel offers for a column type,
in display order. Unrecognized types get the common subset.

Categories whose option list is empty for the type are reported as hidden.`,
	Args: cobra.ExactArgs(1),
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	t := column.Type(args[0])
	view := panel.New(column.Column{Type: t}, panel.Params{}, nil, nil).View()

	out := cmd.OutOrStdout()
	if !t.IsKnown() {
		fmt.Fprintf(out, "Column type %q is not recognized; showing the common categories.\n\n", t)
	}
	for _, id := range category.Applicable(t) {
		cv, ok := view.Category(id)
		if !ok {
			fmt.Fprintf(out, "  %s (%s): hidden (no options)\n", id.Title(), id)
			continue
		}
		fmt.Fprintf(out, "  %s (%s): %s\n", cv.Title, id, describeKind(cv))
	}
	return nil
}

func describeKind(cv panel.CategoryView) string {
	switch {
	case cv.Pair != nil:
		return fmt.Sprintf("pair: %s / %s", cv.Pair.First.Label, cv.Pair.Second.Label)
	case cv.Saved != nil:
		return "tri-state"
	case cv.Multi != nil:
		return fmt.Sprintf("%d options", len(cv.Multi.Options))
	default:
		return "-"
	}
}
