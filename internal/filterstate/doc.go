// Package filterstate computes checkbox state for a column's filter categories.
//
// Everything in this package is a pure function of the stored filter values.
// Nothing here writes to a column: toggle helpers return the value the caller
// should hand to the external store.
//
// # Two-option pairs
//
// Inbox (All / Participating), read status (Read / Unread) and privacy
// (Public / Private) each store one tri-state scalar that is shown as two
// checkboxes:
//
//	stored    first  second
//	True      off    on
//	False     on     off
//	Unset     on     on
//
// [Combine] is the inverse of [Decompose]. Unchecking both boxes is never
// offered: a box is disabled while it is the only one checked.
//
// # Saved for later
//
// A single tri-state checkbox; see [NewSaved].
//
// # Multi-option catalogs
//
// Subject types, notification reasons and event actions store a record of
// key to tri-state. [NewMulti] derives per-option marks, the "checked/total"
// summary and whether the record is in allow-list ("strict") mode:
//
//	view, ok := filterstate.NewMulti(cat, col.Filters.SubjectTypes, true)
//	if !ok {
//	    // empty catalog: the category is not shown
//	}
//	next, _ := view.Next("Issue")
//	store.SetSubjectType(col.ID, "Issue", next)
package filterstate
