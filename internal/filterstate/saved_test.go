package filterstate

import (
	"testing"

	"github.com/Iron-Ham/hubdeck/internal/tristate"
)

func TestNewSaved(t *testing.T) {
	tests := []struct {
		in       tristate.Bool
		wantMark Mark
		wantSub  string
		wantNext tristate.Bool
	}{
		{tristate.Unset, MarkIndeterminate, "Included", tristate.True},
		{tristate.True, MarkChecked, "Only", tristate.False},
		{tristate.False, MarkUnchecked, "Excluded", tristate.Unset},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			s := NewSaved(tt.in)
			if s.Checked != tt.in {
				t.Errorf("Checked = %v, want %v", s.Checked, tt.in)
			}
			if s.Mark != tt.wantMark {
				t.Errorf("Mark = %v, want %v", s.Mark, tt.wantMark)
			}
			if s.Subtitle != tt.wantSub {
				t.Errorf("Subtitle = %q, want %q", s.Subtitle, tt.wantSub)
			}
			if got := s.Next(); got != tt.wantNext {
				t.Errorf("Next() = %v, want %v", got, tt.wantNext)
			}
		})
	}
}
