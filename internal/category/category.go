// Package category is the registry of filter categories shown in a column's
// options panel.
//
// [Applicable] is the single table that decides, per column type, which
// categories a panel offers and in which order. [Set] is a small value type
// used to track groups of categories without sharing mutable state.
package category

import (
	"strings"

	"github.com/Iron-Ham/hubdeck/internal/column"
)

// ID identifies a filter category.
type ID string

const (
	Inbox              ID = "inbox"
	SavedForLater      ID = "saved_for_later"
	Unread             ID = "unread"
	EventAction        ID = "event_action"
	SubjectTypes       ID = "subject_types"
	NotificationReason ID = "notification_reason"
	Privacy            ID = "privacy"
)

// All lists every category in registry order.
var All = []ID{
	Inbox,
	SavedForLater,
	Unread,
	EventAction,
	SubjectTypes,
	NotificationReason,
	Privacy,
}

// String returns the string representation of the category.
func (id ID) String() string {
	return string(id)
}

// IsValid reports whether id is one of the known categories.
func (id ID) IsValid() bool {
	return id.bit() != 0
}

// Title returns the panel header text for the category.
func (id ID) Title() string {
	switch id {
	case Inbox:
		return "Inbox"
	case SavedForLater:
		return "Saved for later"
	case Unread:
		return "Read status"
	case EventAction:
		return "Event types"
	case SubjectTypes:
		return "Subject types"
	case NotificationReason:
		return "Subscription reasons"
	case Privacy:
		return "Privacy"
	default:
		return strings.ReplaceAll(string(id), "_", " ")
	}
}

func (id ID) bit() Set {
	for i, c := range All {
		if c == id {
			return 1 << i
		}
	}
	return 0
}

var (
	notificationCategories = []ID{Inbox, SavedForLater, Unread, SubjectTypes, NotificationReason, Privacy}
	activityCategories     = []ID{SavedForLater, Unread, EventAction, SubjectTypes}
	commonCategories       = []ID{SavedForLater, Unread, SubjectTypes}
)

// Applicable returns the ordered categories offered for a column type.
// Unrecognized types resolve to the common subset. The returned slice is a
// fresh copy.
func Applicable(t column.Type) []ID {
	var ids []ID
	switch t {
	case column.TypeNotifications:
		ids = notificationCategories
	case column.TypeActivity:
		ids = activityCategories
	default:
		ids = commonCategories
	}
	out := make([]ID, len(ids))
	copy(out, ids)
	return out
}

// Set is an immutable set of categories.
type Set uint8

// SetOf builds a Set from ids, ignoring unknown ones.
func SetOf(ids ...ID) Set {
	var s Set
	for _, id := range ids {
		s |= id.bit()
	}
	return s
}

// Has reports whether id is in the set.
func (s Set) Has(id ID) bool {
	b := id.bit()
	return b != 0 && s&b != 0
}

// Add returns s with id added.
func (s Set) Add(id ID) Set {
	return s | id.bit()
}

// Remove returns s without id.
func (s Set) Remove(id ID) Set {
	return s &^ id.bit()
}

// Intersect returns the categories present in both sets.
func (s Set) Intersect(other Set) Set {
	return s & other
}

// IsSubsetOf reports whether every member of s is in other.
func (s Set) IsSubsetOf(other Set) bool {
	return s&^other == 0
}

// Empty reports whether the set has no members.
func (s Set) Empty() bool {
	return s == 0
}

// Len returns the number of members.
func (s Set) Len() int {
	n := 0
	for _, id := range All {
		if s.Has(id) {
			n++
		}
	}
	return n
}

// IDs returns the members in registry order.
func (s Set) IDs() []ID {
	var out []ID
	for _, id := range All {
		if s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// String renders the set as a comma separated list.
func (s Set) String() string {
	ids := s.IDs()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
