// Package panel composes the category registry, option catalogs, filter
// state engine and disclosure state machine into the column options panel.
//
// A Panel owns only its disclosure state. The column itself belongs to an
// external store; edits are forwarded through [Mutations] and the refreshed
// column comes back through [Panel.SetColumn]:
//
//	p := panel.New(col, panel.Params{AvailableHeight: 40}, store, logger)
//	p.ToggleCategory(category.Unread)
//	p.TogglePair(category.Unread, panel.Second)
//	p.SetColumn(store.Column(col.ID))
//	view := p.View()
package panel
