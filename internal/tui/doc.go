// Package tui is the interactive options panel for a single column.
//
// The [Model] wraps a [panel.Panel] and flattens its view into navigable
// rows: one header per category and, when the category is open, one row per
// checkbox. Edits are forwarded to the panel, which forwards them to the
// store; the model then re-reads the column so the next render reflects the
// stored state.
//
// # Key Bindings
//
//	j/k, ↓/↑      move the cursor
//	space/enter   toggle the focused category or checkbox
//	e / c         expand or collapse every category
//	h/l, </>      move the column left or right
//	D             delete the column
//	q, esc        quit
//
// # Usage
//
//	app := tui.New(p, st, tui.Options{LabelWidth: 24, Watch: true})
//	if err := app.Run(); err != nil {
//	    return err
//	}
package tui
