package filterstate

import "github.com/Iron-Ham/hubdeck/internal/tristate"

// SavedView is the saved-for-later checkbox.
type SavedView struct {
	Checked  tristate.Bool `json:"checked"`
	Mark     Mark          `json:"mark"`
	Subtitle string        `json:"subtitle"`
}

// NewSaved mirrors the stored value; unset renders indeterminate.
func NewSaved(v tristate.Bool) SavedView {
	view := SavedView{Checked: v}
	switch v {
	case tristate.True:
		view.Mark = MarkChecked
		view.Subtitle = "Only"
	case tristate.False:
		view.Mark = MarkUnchecked
		view.Subtitle = "Excluded"
	default:
		view.Mark = MarkIndeterminate
		view.Subtitle = "Included"
	}
	return view
}

// Next cycles Unset -> True -> False -> Unset.
func (s SavedView) Next() tristate.Bool {
	switch s.Checked {
	case tristate.Unset:
		return tristate.True
	case tristate.True:
		return tristate.False
	default:
		return tristate.Unset
	}
}
