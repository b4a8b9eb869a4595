package disclosure

import (
	"slices"

	"github.com/Iron-Ham/hubdeck/internal/category"
)

// Options controls the initial state.
type Options struct {
	// ForceAllOpen pins every applicable category open and disables all
	// transitions.
	ForceAllOpen bool
	// StartExpanded opens every applicable category without pinning them.
	StartExpanded bool
}

// State is the set of expanded categories plus the exclusivity flag.
type State struct {
	applicable []category.ID
	allowed    category.Set
	open       category.Set
	exclusive  bool
	forced     bool
}

// New returns the initial state for the given applicable categories.
func New(applicable []category.ID, opts Options) State {
	s := State{
		applicable: slices.Clone(applicable),
		allowed:    category.SetOf(applicable...),
		forced:     opts.ForceAllOpen,
	}
	if opts.ForceAllOpen || opts.StartExpanded {
		s.open = s.allowed
		return s
	}
	s.exclusive = true
	return s
}

// Toggle flips the membership of id. In exclusive mode the open set is
// cleared first, so at most one category stays open.
func (s State) Toggle(id category.ID) State {
	if s.forced || !s.allowed.Has(id) {
		return s
	}

	wasOpen := s.open.Has(id)
	if s.exclusive {
		s.open = 0
	}
	if wasOpen {
		s.open = s.open.Remove(id)
	} else {
		s.open = s.open.Add(id)
	}
	if s.open.Empty() {
		s.exclusive = true
	}
	return s
}

// ExpandAll opens every applicable category and leaves exclusive mode.
func (s State) ExpandAll() State {
	if s.forced {
		return s
	}
	s.open = s.allowed
	s.exclusive = false
	return s
}

// CollapseAll closes everything and re-arms exclusive mode.
func (s State) CollapseAll() State {
	if s.forced {
		return s
	}
	s.open = 0
	s.exclusive = true
	return s
}

// Retain swaps the applicable categories, closing any open category that is
// no longer applicable. A forced state stays fully open over the new set.
func (s State) Retain(applicable []category.ID) State {
	s.applicable = slices.Clone(applicable)
	s.allowed = category.SetOf(applicable...)
	if s.forced {
		s.open = s.allowed
		return s
	}
	s.open = s.open.Intersect(s.allowed)
	if s.open.Empty() {
		s.exclusive = true
	}
	return s
}

// IsOpen reports whether id is expanded.
func (s State) IsOpen(id category.ID) bool {
	return s.open.Has(id)
}

// Open returns the expanded categories in applicable order.
func (s State) Open() []category.ID {
	var out []category.ID
	for _, id := range s.applicable {
		if s.open.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// OpenSet returns the expanded categories as a set.
func (s State) OpenSet() category.Set {
	return s.open
}

// Applicable returns the categories this state was built for.
func (s State) Applicable() []category.ID {
	return slices.Clone(s.applicable)
}

// Exclusive reports whether toggling closes the other open categories.
func (s State) Exclusive() bool {
	return s.exclusive
}

// Forced reports whether the state is pinned fully open.
func (s State) Forced() bool {
	return s.forced
}

// CanToggle reports whether any transition can change the state.
func (s State) CanToggle() bool {
	return !s.forced
}

// AllOpen reports whether every applicable category is expanded.
func (s State) AllOpen() bool {
	return s.open == s.allowed
}
