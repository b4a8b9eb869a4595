package panel

import (
	"github.com/Iron-Ham/hubdeck/internal/category"
	"github.com/Iron-Ham/hubdeck/internal/filterstate"
)

// CategoryView is one rendered category row. Exactly one of Pair, Saved and
// Multi is set.
type CategoryView struct {
	ID       category.ID `json:"id"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Open     bool        `json:"open"`
	// Toggleable is false when the panel is forced fully open.
	Toggleable bool `json:"toggleable"`

	Pair  *filterstate.PairView  `json:"pair,omitempty"`
	Saved *filterstate.SavedView `json:"saved,omitempty"`
	Multi *filterstate.MultiView `json:"multi,omitempty"`
}

// View is the complete view-model of a panel for one render pass.
type View struct {
	ColumnID    string         `json:"column_id"`
	ColumnTitle string         `json:"column_title"`
	ColumnType  string         `json:"column_type"`
	Categories  []CategoryView `json:"categories"`

	CanExpandAll   bool `json:"can_expand_all"`
	CanCollapseAll bool `json:"can_collapse_all"`
	CanMoveLeft    bool `json:"can_move_left"`
	CanMoveRight   bool `json:"can_move_right"`
	FullHeight     bool `json:"full_height"`
}

// Category returns the row for id, if it is shown.
func (v View) Category(id category.ID) (CategoryView, bool) {
	for _, c := range v.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return CategoryView{}, false
}

// IDs returns the shown categories in order.
func (v View) IDs() []category.ID {
	ids := make([]category.ID, len(v.Categories))
	for i, c := range v.Categories {
		ids[i] = c.ID
	}
	return ids
}
