package panel

import (
	"github.com/Iron-Ham/hubdeck/internal/catalog"
	"github.com/Iron-Ham/hubdeck/internal/category"
	"github.com/Iron-Ham/hubdeck/internal/column"
	"github.com/Iron-Ham/hubdeck/internal/disclosure"
	"github.com/Iron-Ham/hubdeck/internal/filterstate"
	"github.com/Iron-Ham/hubdeck/internal/logging"
	"github.com/Iron-Ham/hubdeck/internal/tristate"
)

// Which selects one checkbox of a two-option pair.
type Which int

const (
	// First is the left option: All, Read or Public.
	First Which = iota
	// Second is the right option: Participating, Unread or Private.
	Second
)

// defaultOptionValue is the value an option takes when first forced.
const defaultOptionValue = true

// Panel is the options panel of one column. It is not safe for concurrent
// use; a panel belongs to a single UI loop.
type Panel struct {
	column     column.Column
	params     Params
	catalogs   *catalog.Set
	disclosure disclosure.State
	mutations  Mutations
	logger     *logging.Logger
}

// New creates a panel for col. A nil mutations discards edits and a nil
// logger discards logs.
func New(col column.Column, params Params, mutations Mutations, logger *logging.Logger) *Panel {
	if mutations == nil {
		mutations = MutationFuncs{}
	}
	if logger == nil {
		logger = logging.NopLogger()
	}

	p := &Panel{
		column:    col,
		params:    params,
		catalogs:  catalog.Default(),
		mutations: mutations,
		logger:    logger.WithColumn(col.ID),
	}
	p.disclosure = disclosure.New(category.Applicable(col.Type), disclosure.Options{
		ForceAllOpen:  params.ForceAllOpen,
		StartExpanded: params.ShouldStartExpanded(),
	})

	p.logger.Debug("panel created",
		"column_type", string(col.Type),
		"forced", p.disclosure.Forced(),
		"open", p.disclosure.OpenSet().String(),
	)
	return p
}

// Column returns the column currently displayed.
func (p *Panel) Column() column.Column {
	return p.column
}

// Params returns the instantiation parameters.
func (p *Panel) Params() Params {
	return p.params
}

// Disclosure returns the current disclosure state.
func (p *Panel) Disclosure() disclosure.State {
	return p.disclosure
}

// SetColumn swaps the read model. When the column type changes the open
// categories are re-intersected with the new applicable set.
func (p *Panel) SetColumn(col column.Column) {
	prev := p.column
	p.column = col
	if col.ID != prev.ID {
		p.logger = p.logger.WithColumn(col.ID)
	}
	if col.Type != prev.Type {
		p.disclosure = p.disclosure.Retain(category.Applicable(col.Type))
		p.logger.Debug("column type changed",
			"from", string(prev.Type),
			"to", string(col.Type),
			"open", p.disclosure.OpenSet().String(),
		)
	}
}

// SetPosition updates where the column sits in the deck.
func (p *Panel) SetPosition(index, count int) {
	p.params.ColumnIndex = index
	p.params.ColumnCount = count
}

// ToggleCategory expands or collapses one category.
func (p *Panel) ToggleCategory(id category.ID) {
	p.disclosure = p.disclosure.Toggle(id)
	p.logger.WithCategory(string(id)).Debug("category toggled",
		"open", p.disclosure.IsOpen(id),
		"exclusive", p.disclosure.Exclusive(),
	)
}

// ExpandAll expands every category.
func (p *Panel) ExpandAll() {
	p.disclosure = p.disclosure.ExpandAll()
	p.logger.Debug("expanded all categories", "open", p.disclosure.OpenSet().String())
}

// CollapseAll collapses every category.
func (p *Panel) CollapseAll() {
	p.disclosure = p.disclosure.CollapseAll()
	p.logger.Debug("collapsed all categories")
}

// View computes the view-model. Categories with an empty option catalog are
// omitted.
func (p *Panel) View() View {
	v := View{
		ColumnID:     p.column.ID,
		ColumnTitle:  p.column.DisplayTitle(),
		ColumnType:   string(p.column.Type),
		CanMoveLeft:  p.params.CanMoveLeft(),
		CanMoveRight: p.params.CanMoveRight(),
		FullHeight:   p.params.FullHeight,
	}

	toggleable := p.disclosure.CanToggle()
	var anyOpen, anyClosed bool
	for _, id := range p.disclosure.Applicable() {
		cv, ok := p.categoryView(id)
		if !ok {
			continue
		}
		cv.Open = p.disclosure.IsOpen(id)
		cv.Toggleable = toggleable
		if cv.Open {
			anyOpen = true
		} else {
			anyClosed = true
		}
		v.Categories = append(v.Categories, cv)
	}

	v.CanExpandAll = toggleable && anyClosed
	v.CanCollapseAll = toggleable && anyOpen
	return v
}

func (p *Panel) categoryView(id category.ID) (CategoryView, bool) {
	cv := CategoryView{ID: id, Title: id.Title()}
	f := p.column.Filters

	switch id {
	case category.Inbox, category.Unread, category.Privacy:
		pair := p.pair(id)
		cv.Pair = &pair
		cv.Subtitle = pair.Subtitle
	case category.SavedForLater:
		saved := filterstate.NewSaved(f.Saved)
		cv.Saved = &saved
		cv.Subtitle = saved.Subtitle
	case category.SubjectTypes, category.NotificationReason, category.EventAction:
		c, record := p.multiSource(id)
		multi, ok := filterstate.NewMulti(c, record, defaultOptionValue)
		if !ok {
			return CategoryView{}, false
		}
		cv.Multi = &multi
		cv.Subtitle = multi.Subtitle
	default:
		return CategoryView{}, false
	}
	return cv, true
}

func (p *Panel) pair(id category.ID) filterstate.PairView {
	f := p.column.Filters
	switch id {
	case category.Inbox:
		return filterstate.NewPair(filterstate.InboxPair, f.Participating)
	case category.Privacy:
		return filterstate.NewPair(filterstate.PrivacyPair, f.Private)
	default:
		return filterstate.NewPair(filterstate.UnreadPair, f.Unread)
	}
}

// multiSource selects the catalog and stored record of a multi-option
// category.
func (p *Panel) multiSource(id category.ID) (catalog.Catalog, column.Record) {
	f := p.column.Filters
	switch id {
	case category.SubjectTypes:
		return p.catalogs.SubjectTypesFor(p.column.Type), f.SubjectTypes
	case category.NotificationReason:
		return p.catalogs.NotificationReasons, f.Reasons
	case category.EventAction:
		return p.catalogs.EventActions, f.Actions
	default:
		return catalog.Catalog{}, nil
	}
}

// applicable reports whether id is offered for the current column type.
func (p *Panel) applicable(id category.ID) bool {
	return category.SetOf(p.disclosure.Applicable()...).Has(id)
}

// TogglePair flips one checkbox of the inbox, unread or privacy pair. A
// disabled checkbox is left alone.
func (p *Panel) TogglePair(id category.ID, which Which) {
	if !p.applicable(id) {
		return
	}
	switch id {
	case category.Inbox, category.Unread, category.Privacy:
	default:
		return
	}

	log := p.logger.WithCategory(string(id))
	pair := p.pair(id)
	var (
		next tristate.Bool
		ok   bool
	)
	if which == First {
		next, ok = pair.ToggleFirst()
	} else {
		next, ok = pair.ToggleSecond()
	}
	if !ok {
		log.Debug("pair toggle ignored on disabled checkbox", "which", int(which))
		return
	}

	log.Debug("pair toggled", "value", next.String())
	switch id {
	case category.Inbox:
		p.mutations.SetParticipating(p.column.ID, next)
	case category.Unread:
		p.mutations.SetUnread(p.column.ID, next)
	case category.Privacy:
		p.mutations.SetPrivacy(p.column.ID, next)
	}
}

// ToggleSaved cycles the saved-for-later checkbox.
func (p *Panel) ToggleSaved() {
	if !p.applicable(category.SavedForLater) {
		return
	}
	next := filterstate.NewSaved(p.column.Filters.Saved).Next()
	p.logger.WithCategory(string(category.SavedForLater)).Debug("saved toggled", "value", next.String())
	p.mutations.SetSaved(p.column.ID, next)
}

// ToggleOption cycles one option of a multi-option category. Keys outside
// the category's catalog are ignored.
func (p *Panel) ToggleOption(id category.ID, key string) {
	if !p.applicable(id) {
		return
	}
	c, record := p.multiSource(id)
	multi, ok := filterstate.NewMulti(c, record, defaultOptionValue)
	if !ok {
		return
	}
	next, ok := multi.Next(key)
	if !ok {
		return
	}

	p.logger.WithCategory(string(id)).Debug("option toggled", "key", key, "value", next.String())
	switch id {
	case category.SubjectTypes:
		p.mutations.SetSubjectType(p.column.ID, key, next)
	case category.NotificationReason:
		p.mutations.SetNotificationReason(p.column.ID, key, next)
	case category.EventAction:
		p.mutations.SetActivityAction(p.column.ID, key, next)
	}
}

// MoveLeft asks the store to move the column one position left.
func (p *Panel) MoveLeft() {
	if !p.params.CanMoveLeft() {
		return
	}
	p.logger.Debug("moving column", "to", p.params.ColumnIndex-1)
	p.mutations.MoveColumn(p.column.ID, p.params.ColumnIndex-1)
}

// MoveRight asks the store to move the column one position right.
func (p *Panel) MoveRight() {
	if !p.params.CanMoveRight() {
		return
	}
	p.logger.Debug("moving column", "to", p.params.ColumnIndex+1)
	p.mutations.MoveColumn(p.column.ID, p.params.ColumnIndex+1)
}

// Delete asks the store to remove the column.
func (p *Panel) Delete() {
	p.logger.Debug("deleting column")
	p.mutations.DeleteColumn(p.column.ID)
}
