package filterstate

import (
	"testing"

	"github.com/Iron-Ham/hubdeck/internal/tristate"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		in                    tristate.Bool
		wantFirst, wantSecond bool
	}{
		{tristate.True, false, true},
		{tristate.False, true, false},
		{tristate.Unset, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			first, second := Decompose(tt.in)
			if first != tt.wantFirst || second != tt.wantSecond {
				t.Errorf("Decompose(%v) = (%v, %v), want (%v, %v)", tt.in, first, second, tt.wantFirst, tt.wantSecond)
			}
		})
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name          string
		first, second bool
		want          tristate.Bool
		wantOK        bool
	}{
		{"both", true, true, tristate.Unset, true},
		{"first only", true, false, tristate.False, true},
		{"second only", false, true, tristate.True, true},
		{"neither", false, false, tristate.Unset, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Combine(tt.first, tt.second)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Combine(%v, %v) = (%v, %v), want (%v, %v)", tt.first, tt.second, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCombineDecompose_RoundTrip(t *testing.T) {
	for _, v := range []tristate.Bool{tristate.True, tristate.False, tristate.Unset} {
		got, ok := Combine(Decompose(v))
		if !ok || got != v {
			t.Errorf("Combine(Decompose(%v)) = (%v, %v)", v, got, ok)
		}
	}
}

func TestNewPair_UnreadOnly(t *testing.T) {
	p := NewPair(UnreadPair, tristate.True)

	if p.First.Checked {
		t.Error("Read should not be checked")
	}
	if !p.Second.Checked {
		t.Error("Unread should be checked")
	}
	if p.Subtitle != "Unread" {
		t.Errorf("Subtitle = %q, want %q", p.Subtitle, "Unread")
	}
	if p.First.Disabled {
		t.Error("Read checkbox should be enabled")
	}
	if !p.Second.Disabled {
		t.Error("Unread checkbox should be disabled as the sole checked option")
	}
}

func TestNewPair_Subtitles(t *testing.T) {
	tests := []struct {
		spec PairSpec
		in   tristate.Bool
		want string
	}{
		{InboxPair, tristate.Unset, "All"},
		{InboxPair, tristate.False, "All"},
		{InboxPair, tristate.True, "Participating"},
		{UnreadPair, tristate.Unset, "All"},
		{UnreadPair, tristate.False, "Read"},
		{PrivacyPair, tristate.Unset, "All"},
		{PrivacyPair, tristate.True, "Private"},
		{PrivacyPair, tristate.False, "Public"},
	}
	for _, tt := range tests {
		t.Run(tt.spec.SecondLabel+"/"+tt.in.String(), func(t *testing.T) {
			if got := NewPair(tt.spec, tt.in).Subtitle; got != tt.want {
				t.Errorf("Subtitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPair_NeverBothUnchecked(t *testing.T) {
	for _, v := range []tristate.Bool{tristate.True, tristate.False, tristate.Unset} {
		p := NewPair(PrivacyPair, v)

		for _, toggle := range []func() (tristate.Bool, bool){p.ToggleFirst, p.ToggleSecond} {
			next, ok := toggle()
			if !ok {
				continue
			}
			first, second := Decompose(next)
			if !first && !second {
				t.Errorf("toggle from %v produced both unchecked", v)
			}
		}
	}
}

func TestPair_Toggle(t *testing.T) {
	tests := []struct {
		name   string
		in     tristate.Bool
		first  bool
		want   tristate.Bool
		wantOK bool
	}{
		{"uncheck read from all", tristate.Unset, true, tristate.True, true},
		{"uncheck unread from all", tristate.Unset, false, tristate.False, true},
		{"check read from unread only", tristate.True, true, tristate.Unset, true},
		{"uncheck sole unread is refused", tristate.True, false, tristate.True, false},
		{"uncheck sole read is refused", tristate.False, true, tristate.False, false},
		{"check unread from read only", tristate.False, false, tristate.Unset, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPair(UnreadPair, tt.in)
			var got tristate.Bool
			var ok bool
			if tt.first {
				got, ok = p.ToggleFirst()
			} else {
				got, ok = p.ToggleSecond()
			}
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("toggle = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
