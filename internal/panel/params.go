package panel

// DefaultExpandHeightThreshold is the available height, in rows, from which
// a panel starts with every category expanded.
const DefaultExpandHeightThreshold = 30

// Params are the instantiation inputs of a panel. They configure the panel
// but are not state it owns.
type Params struct {
	// AvailableHeight is the height the panel may occupy, in rows.
	AvailableHeight int
	// ForceAllOpen pins every category open and hides disclosure controls.
	ForceAllOpen bool
	// FullHeight asks the renderer to fill AvailableHeight.
	FullHeight bool
	// StartExpanded overrides the height heuristic when non-nil.
	StartExpanded *bool
	// ExpandHeightThreshold replaces DefaultExpandHeightThreshold when > 0.
	ExpandHeightThreshold int

	// ColumnIndex and ColumnCount place the column within the deck and
	// drive the move affordances.
	ColumnIndex int
	ColumnCount int
}

// ShouldStartExpanded resolves StartExpanded, falling back to comparing the
// available height with the threshold.
func (p Params) ShouldStartExpanded() bool {
	if p.StartExpanded != nil {
		return *p.StartExpanded
	}
	threshold := p.ExpandHeightThreshold
	if threshold <= 0 {
		threshold = DefaultExpandHeightThreshold
	}
	return p.AvailableHeight >= threshold
}

// CanMoveLeft reports whether the column has a left neighbour.
func (p Params) CanMoveLeft() bool {
	return p.ColumnCount > 1 && p.ColumnIndex > 0
}

// CanMoveRight reports whether the column has a right neighbour.
func (p Params) CanMoveRight() bool {
	return p.ColumnIndex >= 0 && p.ColumnIndex < p.ColumnCount-1
}
