package disclosure

import (
	"slices"
	"testing"

	"github.com/Iron-Ham/hubdeck/internal/category"
	"github.com/Iron-Ham/hubdeck/internal/column"
)

var (
	notifications = category.Applicable(column.TypeNotifications)
	activity      = category.Applicable(column.TypeActivity)
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		opts          Options
		wantOpen      int
		wantExclusive bool
		wantForced    bool
	}{
		{"default", Options{}, 0, true, false},
		{"start expanded", Options{StartExpanded: true}, len(notifications), false, false},
		{"force all open", Options{ForceAllOpen: true}, len(notifications), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(notifications, tt.opts)
			if got := len(s.Open()); got != tt.wantOpen {
				t.Errorf("len(Open()) = %d, want %d", got, tt.wantOpen)
			}
			if s.Exclusive() != tt.wantExclusive {
				t.Errorf("Exclusive() = %v, want %v", s.Exclusive(), tt.wantExclusive)
			}
			if s.Forced() != tt.wantForced {
				t.Errorf("Forced() = %v, want %v", s.Forced(), tt.wantForced)
			}
			if s.CanToggle() == tt.wantForced {
				t.Errorf("CanToggle() = %v with forced = %v", s.CanToggle(), tt.wantForced)
			}
		})
	}
}

func TestToggle_Exclusivity(t *testing.T) {
	s := New(notifications, Options{})
	s = s.Toggle(category.Inbox)
	s = s.Toggle(category.Unread)

	if got := s.Open(); !slices.Equal(got, []category.ID{category.Unread}) {
		t.Errorf("Open() = %v, want [unread]", got)
	}
	if !s.Exclusive() {
		t.Error("Exclusive() = false, want true")
	}
}

func TestToggle_ClosesOpenCategory(t *testing.T) {
	s := New(notifications, Options{}).Toggle(category.Privacy).Toggle(category.Privacy)

	if len(s.Open()) != 0 {
		t.Errorf("Open() = %v, want empty", s.Open())
	}
	if !s.Exclusive() {
		t.Error("Exclusive() = false, want true")
	}
}

func TestToggle_ReArmsExclusivity(t *testing.T) {
	s := New(activity, Options{}).ExpandAll()
	s = s.Retain([]category.ID{category.Unread, category.SubjectTypes})

	if got := s.Open(); !slices.Equal(got, []category.ID{category.Unread, category.SubjectTypes}) {
		t.Fatalf("Open() = %v, want [unread subject_types]", got)
	}
	if s.Exclusive() {
		t.Fatal("Exclusive() = true after expand all")
	}

	s = s.Toggle(category.Unread)
	if got := s.Open(); !slices.Equal(got, []category.ID{category.SubjectTypes}) {
		t.Errorf("after closing unread Open() = %v, want [subject_types]", got)
	}
	if s.Exclusive() {
		t.Error("Exclusive() = true while a category is still open")
	}

	s = s.Toggle(category.SubjectTypes)
	if len(s.Open()) != 0 {
		t.Errorf("Open() = %v, want empty", s.Open())
	}
	if !s.Exclusive() {
		t.Error("Exclusive() = false, want re-armed")
	}

	s = s.Toggle(category.Unread).Toggle(category.SubjectTypes)
	if got := s.Open(); !slices.Equal(got, []category.ID{category.SubjectTypes}) {
		t.Errorf("Open() = %v, want accordion behavior after re-arm", got)
	}
}

func TestToggle_OpeningAfterExpandAllKeepsOthers(t *testing.T) {
	s := New(activity, Options{}).ExpandAll().Toggle(category.Unread).Toggle(category.Unread)

	if !s.AllOpen() {
		t.Errorf("Open() = %v, want every category", s.Open())
	}
}

func TestToggle_IgnoresInapplicable(t *testing.T) {
	s := New(activity, Options{}).Toggle(category.Inbox)

	if s.IsOpen(category.Inbox) {
		t.Error("inbox opened on an activity column")
	}
	if !s.OpenSet().IsSubsetOf(category.SetOf(activity...)) {
		t.Errorf("OpenSet() = %v escapes applicable set", s.OpenSet())
	}
}

func TestExpandCollapseAll(t *testing.T) {
	s := New(notifications, Options{}).ExpandAll()
	if !s.AllOpen() || s.Exclusive() {
		t.Errorf("ExpandAll() = %v exclusive=%v", s.Open(), s.Exclusive())
	}
	if got := s.Open(); !slices.Equal(got, notifications) {
		t.Errorf("Open() = %v, want %v", got, notifications)
	}

	s = s.CollapseAll()
	if len(s.Open()) != 0 || !s.Exclusive() {
		t.Errorf("CollapseAll() = %v exclusive=%v", s.Open(), s.Exclusive())
	}
}

func TestForced_RejectsTransitions(t *testing.T) {
	s := New(notifications, Options{ForceAllOpen: true})

	for name, next := range map[string]State{
		"toggle":   s.Toggle(category.Inbox),
		"collapse": s.CollapseAll(),
		"expand":   s.ExpandAll(),
	} {
		if !next.AllOpen() {
			t.Errorf("%s changed a forced state: %v", name, next.Open())
		}
	}
}

func TestTransitions_DoNotMutateReceiver(t *testing.T) {
	s := New(notifications, Options{})
	_ = s.Toggle(category.Inbox)
	_ = s.ExpandAll()

	if len(s.Open()) != 0 {
		t.Errorf("receiver changed: Open() = %v", s.Open())
	}
}

func TestRetain(t *testing.T) {
	tests := []struct {
		name          string
		start         State
		next          []category.ID
		wantOpen      []category.ID
		wantExclusive bool
	}{
		{
			name:          "drops notification only categories",
			start:         New(notifications, Options{StartExpanded: true}),
			next:          activity,
			wantOpen:      []category.ID{category.SavedForLater, category.Unread, category.SubjectTypes},
			wantExclusive: false,
		},
		{
			name:          "sole open category removed re-arms",
			start:         New(notifications, Options{}).Toggle(category.Privacy),
			next:          activity,
			wantOpen:      nil,
			wantExclusive: true,
		},
		{
			name:          "forced stays fully open",
			start:         New(notifications, Options{ForceAllOpen: true}),
			next:          activity,
			wantOpen:      activity,
			wantExclusive: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start.Retain(tt.next)
			if got := s.Open(); !slices.Equal(got, tt.wantOpen) {
				t.Errorf("Open() = %v, want %v", got, tt.wantOpen)
			}
			if s.Exclusive() != tt.wantExclusive {
				t.Errorf("Exclusive() = %v, want %v", s.Exclusive(), tt.wantExclusive)
			}
			if !slices.Equal(s.Applicable(), tt.next) {
				t.Errorf("Applicable() = %v, want %v", s.Applicable(), tt.next)
			}
		})
	}
}
