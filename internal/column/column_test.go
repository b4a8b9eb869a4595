package column

import (
	"testing"

	"github.com/Iron-Ham/hubdeck/internal/tristate"
)

func TestRecord_GetNilSafe(t *testing.T) {
	var r Record
	if got := r.Get("issue"); got != tristate.Unset {
		t.Errorf("nil Record.Get() = %v, want unset", got)
	}
}

func TestRecord_With(t *testing.T) {
	orig := Record{"issue": tristate.True}

	added := orig.With("commit", tristate.False)
	if added.Get("commit") != tristate.False || added.Get("issue") != tristate.True {
		t.Errorf("With() = %v", added)
	}
	if _, ok := orig["commit"]; ok {
		t.Error("With() must not modify the receiver")
	}

	cleared := added.With("issue", tristate.Unset)
	if _, ok := cleared["issue"]; ok {
		t.Error("With(Unset) should remove the key")
	}
	if len(cleared) != 1 {
		t.Errorf("len(cleared) = %d, want 1", len(cleared))
	}
}

func TestType_IsKnown(t *testing.T) {
	tests := []struct {
		typ  Type
		want bool
	}{
		{TypeNotifications, true},
		{TypeActivity, true},
		{TypeIssueOrPR, true},
		{"user", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := tt.typ.IsKnown(); got != tt.want {
				t.Errorf("IsKnown() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColumn_DisplayTitle(t *testing.T) {
	tests := []struct {
		name string
		col  Column
		want string
	}{
		{"explicit title", Column{ID: "c1", Type: TypeActivity, Title: "Team"}, "Team"},
		{"notifications", Column{ID: "c1", Type: TypeNotifications}, "Notifications"},
		{"issues", Column{ID: "c1", Type: TypeIssueOrPR}, "Issues & PRs"},
		{"unknown type", Column{ID: "c1", Type: "user"}, "user"},
		{"no type", Column{ID: "c1"}, "c1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.col.DisplayTitle(); got != tt.want {
				t.Errorf("DisplayTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
