package filterstate

import "github.com/Iron-Ham/hubdeck/internal/tristate"

// PairSpec names the two checkboxes of an exclusive pair. True in the stored
// value selects the second option.
type PairSpec struct {
	FirstLabel  string
	SecondLabel string
	// BothLabel is the subtitle when both options are checked.
	BothLabel string
}

var (
	InboxPair   = PairSpec{FirstLabel: "All", SecondLabel: "Participating", BothLabel: "All"}
	UnreadPair  = PairSpec{FirstLabel: "Read", SecondLabel: "Unread", BothLabel: "All"}
	PrivacyPair = PairSpec{FirstLabel: "Public", SecondLabel: "Private", BothLabel: "All"}
)

// Checkbox is one rendered two-state checkbox.
type Checkbox struct {
	Label    string `json:"label"`
	Checked  bool   `json:"checked"`
	Disabled bool   `json:"disabled"`
}

// PairView is the computed state of a two-option pair.
type PairView struct {
	Value    tristate.Bool `json:"value"`
	First    Checkbox      `json:"first"`
	Second   Checkbox      `json:"second"`
	Subtitle string        `json:"subtitle"`
}

// Decompose turns the stored scalar into the two checkbox states.
func Decompose(v tristate.Bool) (first, second bool) {
	switch v {
	case tristate.True:
		return false, true
	case tristate.False:
		return true, false
	default:
		return true, true
	}
}

// Combine turns two checkbox states back into the stored scalar. It returns
// ok=false when both are unchecked, which has no stored representation.
func Combine(first, second bool) (v tristate.Bool, ok bool) {
	switch {
	case first && second:
		return tristate.Unset, true
	case first:
		return tristate.False, true
	case second:
		return tristate.True, true
	default:
		return tristate.Unset, false
	}
}

// NewPair computes the view of a pair from its stored value.
func NewPair(spec PairSpec, v tristate.Bool) PairView {
	first, second := Decompose(v)

	subtitle := spec.BothLabel
	switch {
	case first && !second:
		subtitle = spec.FirstLabel
	case second && !first:
		subtitle = spec.SecondLabel
	}

	return PairView{
		Value: v,
		First: Checkbox{
			Label:    spec.FirstLabel,
			Checked:  first,
			Disabled: first && !second,
		},
		Second: Checkbox{
			Label:    spec.SecondLabel,
			Checked:  second,
			Disabled: second && !first,
		},
		Subtitle: subtitle,
	}
}

// ToggleFirst returns the stored value after flipping the first checkbox.
// ok is false when the checkbox is disabled.
func (p PairView) ToggleFirst() (tristate.Bool, bool) {
	if p.First.Disabled {
		return p.Value, false
	}
	return Combine(!p.First.Checked, p.Second.Checked)
}

// ToggleSecond returns the stored value after flipping the second checkbox.
// ok is false when the checkbox is disabled.
func (p PairView) ToggleSecond() (tristate.Bool, bool) {
	if p.Second.Disabled {
		return p.Value, false
	}
	return Combine(p.First.Checked, !p.Second.Checked)
}
