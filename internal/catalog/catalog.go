// Package catalog builds the sorted option lists shown under multi-option
// filter categories.
//
// A [Catalog] is built once from raw domain values and a metadata lookup,
// sorted by label, and never modified afterwards. [Default] returns the
// process-wide set of catalogs.
package catalog

import (
	"slices"
	"strings"
	"sync"

	"github.com/Iron-Ham/hubdeck/internal/column"
	"github.com/Iron-Ham/hubdeck/internal/github"
)

// Item is one selectable option.
type Item struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// Catalog is an immutable, label-sorted list of options.
type Catalog struct {
	items []Item
}

// Build maps each value through lookup and sorts the result by label.
// The sort is stable and compares labels byte-wise, so equal labels keep
// their input order.
func Build(values []string, lookup github.Lookup) Catalog {
	items := make([]Item, 0, len(values))
	for _, v := range values {
		m := lookup(v)
		items = append(items, Item{
			Key:         v,
			Label:       m.Label,
			Color:       m.Color,
			Description: m.Description,
		})
	}
	sortItems(items)
	return Catalog{items: items}
}

func sortItems(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		return strings.Compare(a.Label, b.Label)
	})
}

// Len returns the number of options.
func (c Catalog) Len() int {
	return len(c.items)
}

// Empty reports whether the catalog has no options.
func (c Catalog) Empty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the options in display order.
func (c Catalog) Items() []Item {
	return slices.Clone(c.items)
}

// Keys returns the option keys in display order.
func (c Catalog) Keys() []string {
	keys := make([]string, len(c.items))
	for i, it := range c.items {
		keys[i] = it.Key
	}
	return keys
}

// Contains reports whether key is one of the options.
func (c Catalog) Contains(key string) bool {
	_, ok := c.Find(key)
	return ok
}

// Find returns the option with the given key.
func (c Catalog) Find(key string) (Item, bool) {
	for _, it := range c.items {
		if it.Key == key {
			return it, true
		}
	}
	return Item{}, false
}

// Set groups the catalogs for every filter family.
type Set struct {
	EventActions             Catalog
	EventSubjectTypes        Catalog
	IssueOrPRSubjectTypes    Catalog
	NotificationSubjectTypes Catalog
	NotificationReasons      Catalog
}

// NewSet builds every catalog from the github package metadata.
func NewSet() *Set {
	return &Set{
		EventActions:             Build(github.EventActions, github.ActionMetadata),
		EventSubjectTypes:        Build(github.EventSubjectTypes, github.SubjectTypeMetadata),
		IssueOrPRSubjectTypes:    Build(github.IssueOrPRSubjectTypes, github.SubjectTypeMetadata),
		NotificationSubjectTypes: Build(github.NotificationSubjectTypes, github.SubjectTypeMetadata),
		NotificationReasons:      Build(github.NotificationReasons, github.ReasonMetadata),
	}
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the shared catalog set, building it on first use.
func Default() *Set {
	defaultOnce.Do(func() {
		defaultSet = NewSet()
	})
	return defaultSet
}

// SubjectTypesFor selects the subject-type catalog for a column type.
// Unrecognized types get an empty catalog.
func (s *Set) SubjectTypesFor(t column.Type) Catalog {
	switch t {
	case column.TypeNotifications:
		return s.NotificationSubjectTypes
	case column.TypeActivity:
		return s.EventSubjectTypes
	case column.TypeIssueOrPR:
		return s.IssueOrPRSubjectTypes
	default:
		return Catalog{}
	}
}
