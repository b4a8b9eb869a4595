package filterstate

import (
	"fmt"

	"github.com/Iron-Ham/hubdeck/internal/catalog"
	"github.com/Iron-Ham/hubdeck/internal/column"
	"github.com/Iron-Ham/hubdeck/internal/tristate"
)

// Mark is how a tri-state checkbox is drawn.
type Mark uint8

const (
	MarkIndeterminate Mark = iota
	MarkChecked
	MarkUnchecked
)

// String returns "checked", "unchecked" or "indeterminate".
func (m Mark) String() string {
	switch m {
	case MarkChecked:
		return "checked"
	case MarkUnchecked:
		return "unchecked"
	default:
		return "indeterminate"
	}
}

// Box returns the checkbox glyph: "[✓]", "[ ]" or "[-]".
func (m Mark) Box() string {
	switch m {
	case MarkChecked:
		return "[✓]"
	case MarkUnchecked:
		return "[ ]"
	default:
		return "[-]"
	}
}

// MarshalText encodes the mark by name.
func (m Mark) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Count summarizes how many options of a catalog are selected. Checked is
// the number of keys holding the default value when any do, otherwise Total
// minus the keys holding the opposite value.
type Count struct {
	Checked int `json:"checked"`
	Total   int `json:"total"`
}

// String renders the count as "checked/total".
func (c Count) String() string {
	return fmt.Sprintf("%d/%d", c.Checked, c.Total)
}

// Option is one rendered option of a multi-option category.
type Option struct {
	catalog.Item

	// Value is the stored preference; Unset renders as indeterminate.
	Value tristate.Bool `json:"value"`
	Mark  Mark          `json:"mark"`
	// IndeterminateEligible reports whether cycling this option may pass
	// through the unset state.
	IndeterminateEligible bool `json:"indeterminate_eligible"`
}

// MultiView is the computed state of a multi-option category.
type MultiView struct {
	DefaultValue bool     `json:"default_value"`
	Options      []Option `json:"options"`
	// Strict is set when at least one option is stored equal to DefaultValue,
	// which turns the record into an allow-list.
	Strict            bool   `json:"strict"`
	HasAnyForcedValue bool   `json:"has_any_forced_value"`
	Count             Count  `json:"count"`
	Subtitle          string `json:"subtitle"`
}

// NewMulti computes the view of a record over a catalog. Keys in record that
// are not part of the catalog are ignored. ok is false for an empty catalog,
// in which case the category should not be shown.
func NewMulti(c catalog.Catalog, record column.Record, defaultValue bool) (MultiView, bool) {
	if c.Empty() {
		return MultiView{}, false
	}

	items := c.Items()
	var withDefault, withOpposite int
	for _, it := range items {
		switch v := record.Get(it.Key); {
		case v.Is(defaultValue):
			withDefault++
		case v.Is(!defaultValue):
			withOpposite++
		}
	}

	view := MultiView{
		DefaultValue:      defaultValue,
		Strict:            withDefault > 0,
		HasAnyForcedValue: withDefault+withOpposite > 0,
		Options:           make([]Option, len(items)),
	}

	view.Count = Count{Total: len(items)}
	switch {
	case withDefault > 0:
		view.Count.Checked = withDefault
	default:
		view.Count.Checked = len(items) - withOpposite
	}

	view.Subtitle = "All"
	if view.HasAnyForcedValue {
		view.Subtitle = view.Count.String()
	}

	for i, it := range items {
		v := record.Get(it.Key)
		opt := Option{
			Item:                  it,
			Value:                 v,
			IndeterminateEligible: !view.Strict || v.Is(defaultValue),
		}
		switch {
		case v == tristate.True:
			opt.Mark = MarkChecked
		case v == tristate.False:
			opt.Mark = MarkUnchecked
		case view.Strict:
			opt.Mark = MarkUnchecked
		default:
			opt.Mark = MarkIndeterminate
		}
		view.Options[i] = opt
	}

	return view, true
}

// Option returns the option with the given key.
func (m MultiView) Option(key string) (Option, bool) {
	for _, o := range m.Options {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}

// Next returns the value to store when the option is toggled. The cycle is
// unset -> default -> !default -> unset; options that are not indeterminate
// eligible go from !default straight back to default. ok is false for keys
// outside the catalog.
func (m MultiView) Next(key string) (tristate.Bool, bool) {
	opt, ok := m.Option(key)
	if !ok {
		return tristate.Unset, false
	}

	def := tristate.Of(m.DefaultValue)
	switch opt.Value {
	case tristate.Unset:
		return def, true
	case def:
		return def.Not(), true
	default:
		if opt.IndeterminateEligible {
			return tristate.Unset, true
		}
		return def, true
	}
}
