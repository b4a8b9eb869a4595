// Package column defines the read model of a dashboard column and its filters.
//
// Columns are owned by an external store. Code in this module reads a
// column's type and filters but never mutates a [Column] in place; edits are
// requested through the mutation callbacks of the panel package.
package column

import (
	"maps"

	"github.com/Iron-Ham/hubdeck/internal/tristate"
)

// Type identifies the kind of feed a column shows.
// Unknown types are valid values and resolve to the minimal category subset.
type Type string

const (
	TypeNotifications Type = "notifications"
	TypeActivity      Type = "activity"
	TypeIssueOrPR     Type = "issue_or_pr"
)

// String returns the string representation of the type.
func (t Type) String() string {
	return string(t)
}

// IsKnown reports whether t is one of the built-in column types.
func (t Type) IsKnown() bool {
	switch t {
	case TypeNotifications, TypeActivity, TypeIssueOrPR:
		return true
	}
	return false
}

// KnownTypes returns the built-in column types.
func KnownTypes() []Type {
	return []Type{TypeNotifications, TypeActivity, TypeIssueOrPR}
}

// Record maps option keys to a tri-state preference.
// A missing key and a key holding tristate.Unset mean the same thing.
type Record map[string]tristate.Bool

// Get returns the stored value for key. Nil records are empty.
func (r Record) Get(key string) tristate.Bool {
	if r == nil {
		return tristate.Unset
	}
	return r[key]
}

// With returns a copy of r with key set to v. Unset removes the key.
func (r Record) With(key string, v tristate.Bool) Record {
	out := make(Record, len(r)+1)
	maps.Copy(out, r)
	if v.Defined() {
		out[key] = v
	} else {
		delete(out, key)
	}
	return out
}

// Filters is the stored filter state of one column.
type Filters struct {
	// Participating narrows the notifications inbox to threads the user
	// participates in.
	Participating tristate.Bool `yaml:"participating,omitempty" json:"participating"`
	// Saved is the saved-for-later filter.
	Saved tristate.Bool `yaml:"saved,omitempty" json:"saved"`
	// Unread True shows only unread items, False only read ones.
	Unread tristate.Bool `yaml:"unread,omitempty" json:"unread"`
	// Private True shows only private repositories, False only public ones.
	Private tristate.Bool `yaml:"private,omitempty" json:"private"`

	SubjectTypes Record `yaml:"subject_types,omitempty" json:"subject_types,omitempty"`
	Reasons      Record `yaml:"reasons,omitempty" json:"reasons,omitempty"`
	Actions      Record `yaml:"actions,omitempty" json:"actions,omitempty"`
}

// Column is a single dashboard column.
type Column struct {
	ID      string  `yaml:"id" json:"id"`
	Type    Type    `yaml:"type" json:"type"`
	Title   string  `yaml:"title,omitempty" json:"title,omitempty"`
	Filters Filters `yaml:"filters,omitempty" json:"filters"`
}

// DisplayTitle returns the column title, falling back to a name derived from
// the column type.
func (c Column) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	switch c.Type {
	case TypeNotifications:
		return "Notifications"
	case TypeActivity:
		return "Activity"
	case TypeIssueOrPR:
		return "Issues & PRs"
	default:
		if c.Type == "" {
			return c.ID
		}
		return string(c.Type)
	}
}
