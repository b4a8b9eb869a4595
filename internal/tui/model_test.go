package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Iron-Ham/hubdeck/internal/catalog"
	"github.com/Iron-Ham/hubdeck/internal/category"
	"github.com/Iron-Ham/hubdeck/internal/column"
	"github.com/Iron-Ham/hubdeck/internal/panel"
	"github.com/Iron-Ham/hubdeck/internal/store"
	"github.com/Iron-Ham/hubdeck/internal/tristate"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestStore(t *testing.T, columns ...column.Column) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "columns.yaml"), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	for _, col := range columns {
		if _, err := st.Add(col); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	return st
}

func newTestModel(t *testing.T, st *store.Store, id string, params panel.Params) Model {
	t.Helper()
	col, index, err := st.Column(id)
	if err != nil {
		t.Fatalf("Column(%q) failed: %v", id, err)
	}
	params.ColumnIndex = index
	params.ColumnCount = st.Len()
	return NewModel(panel.New(col, params, st, nil), st, 0)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func notificationsColumn() column.Column {
	return column.Column{ID: "col-1", Type: column.TypeNotifications, Title: "Work inbox"}
}

func storedFilters(t *testing.T, st *store.Store, id string) column.Filters {
	t.Helper()
	col, _, err := st.Column(id)
	if err != nil {
		t.Fatalf("Column(%q) failed: %v", id, err)
	}
	return col.Filters
}

func TestNewModel_CollapsedRows(t *testing.T) {
	st := newTestStore(t, notificationsColumn())
	m := newTestModel(t, st, "col-1", panel.Params{})

	if len(m.rows) != len(category.Applicable(column.TypeNotifications)) {
		t.Fatalf("len(rows) = %d, want one header per category", len(m.rows))
	}
	for i, r := range m.rows {
		if r.kind != rowCategory {
			t.Errorf("rows[%d].kind = %v, want category header", i, r.kind)
		}
	}
}

func TestModel_CursorBounds(t *testing.T) {
	st := newTestStore(t, notificationsColumn())
	m := newTestModel(t, st, "col-1", panel.Params{})

	m = press(m, "k", "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d after moving up at top, want 0", m.cursor)
	}
	m = press(m, "G")
	if m.cursor != len(m.rows)-1 {
		t.Errorf("cursor = %d after G, want %d", m.cursor, len(m.rows)-1)
	}
	m = press(m, "j", "down")
	if m.cursor != len(m.rows)-1 {
		t.Errorf("cursor = %d after moving down at bottom, want %d", m.cursor, len(m.rows)-1)
	}
	m = press(m, "g")
	if m.cursor != 0 {
		t.Errorf("cursor = %d after g, want 0", m.cursor)
	}
}

func TestModel_ToggleCategoryIsExclusive(t *testing.T) {
	st := newTestStore(t, notificationsColumn())
	m := newTestModel(t, st, "col-1", panel.Params{})

	m = press(m, "enter")
	if !m.panel.Disclosure().IsOpen(category.Inbox) {
		t.Fatal("Inbox should be open after enter on its header")
	}
	if len(m.rows) != len(category.Applicable(column.TypeNotifications))+2 {
		t.Errorf("len(rows) = %d, want headers plus the two inbox checkboxes", len(m.rows))
	}

	// Inbox, All, Participating, Saved for later
	m = press(m, "j", "j", "j", "enter")
	d := m.panel.Disclosure()
	if d.IsOpen(category.Inbox) {
		t.Error("Inbox should close when another category opens")
	}
	if !d.IsOpen(category.SavedForLater) {
		t.Error("Saved for later should be open")
	}
	if r, _ := m.current(); r.kind != rowCategory || r.category != category.SavedForLater {
		t.Errorf("cursor row = %+v, want the saved for later header", r)
	}
}

func TestModel_ExpandAndCollapseAll(t *testing.T) {
	st := newTestStore(t, notificationsColumn())
	m := newTestModel(t, st, "col-1", panel.Params{})

	m = press(m, "e")
	if !m.panel.Disclosure().AllOpen() {
		t.Error("every category should be open after e")
	}
	if m.view.CanExpandAll {
		t.Error("CanExpandAll = true with everything open")
	}

	m = press(m, "c")
	if got := m.panel.Disclosure().Open(); len(got) != 0 {
		t.Errorf("Open() = %v after c, want none", got)
	}
}

func TestModel_ToggleUnreadPair(t *testing.T) {
	st := newTestStore(t, notificationsColumn())
	m := newTestModel(t, st, "col-1", panel.Params{})

	// Open the read status category and focus its Read checkbox.
	m = press(m, "j", "j", "enter", "j")
	if r, _ := m.current(); r.kind != rowPair || r.which != panel.First {
		t.Fatalf("cursor row = %+v, want the Read checkbox", r)
	}

	m = press(m, " ")
	if got := storedFilters(t, st, "col-1").Unread; got != tristate.True {
		t.Errorf("Unread = %v after unchecking Read, want true", got)
	}
	cv, _ := m.view.Category(category.Unread)
	if cv.Subtitle != "Unread" {
		t.Errorf("Subtitle = %q, want Unread", cv.Subtitle)
	}
	if r, _ := m.current(); r.kind != rowPair || r.which != panel.First {
		t.Errorf("cursor moved to %+v after toggling", r)
	}

	// The sole checked option is disabled.
	m = press(m, "j", " ")
	if got := storedFilters(t, st, "col-1").Unread; got != tristate.True {
		t.Errorf("Unread = %v after toggling the disabled checkbox, want true", got)
	}

	m = press(m, "k", " ")
	if got := storedFilters(t, st, "col-1").Unread; got != tristate.Unset {
		t.Errorf("Unread = %v after re-checking Read, want unset", got)
	}
}

func TestModel_ToggleInboxParticipating(t *testing.T) {
	st := newTestStore(t, notificationsColumn())
	m := newTestModel(t, st, "col-1", panel.Params{})

	// Open the inbox and focus its Participating checkbox.
	m = press(m, "enter", "j", "j")
	if r, _ := m.current(); r.kind != rowPair || r.which != panel.Second {
		t.Fatalf("cursor row = %+v, want the Participating checkbox", r)
	}

	m = press(m, " ")
	if got := storedFilters(t, st, "col-1").Participating; got != tristate.False {
		t.Errorf("Participating = %v after unchecking Participating, want false", got)
	}
	cv, _ := m.view.Category(category.Inbox)
	if cv.Pair.Second.Checked || !cv.Pair.First.Disabled {
		t.Errorf("pair = %+v, want only All checked and locked", *cv.Pair)
	}
	if cv.Subtitle != "All" {
		t.Errorf("Subtitle = %q, want All", cv.Subtitle)
	}

	m = press(m, " ")
	if got := storedFilters(t, st, "col-1").Participating; got != tristate.Unset {
		t.Errorf("Participating = %v after re-checking Participating, want unset", got)
	}
}

func TestModel_ToggleSavedCycles(t *testing.T) {
	st := newTestStore(t, notificationsColumn())
	m := newTestModel(t, st, "col-1", panel.Params{})

	m = press(m, "j", "enter", "j")
	for _, want := range []tristate.Bool{tristate.True, tristate.False, tristate.Unset} {
		m = press(m, "enter")
		if got := storedFilters(t, st, "col-1").Saved; got != want {
			t.Errorf("Saved = %v, want %v", got, want)
		}
	}
}

func TestModel_ToggleOption(t *testing.T) {
	st := newTestStore(t, notificationsColumn())
	m := newTestModel(t, st, "col-1", panel.Params{})
	first := catalog.Default().SubjectTypesFor(column.TypeNotifications).Keys()[0]

	// Inbox, Saved for later, Read status, Subject types
	m = press(m, "j", "j", "j", "enter", "j")
	if r, _ := m.current(); r.kind != rowOption || r.key != first {
		t.Fatalf("cursor row = %+v, want option %s", r, first)
	}

	m = press(m, " ")
	if got := storedFilters(t, st, "col-1").SubjectTypes.Get(first); got != tristate.True {
		t.Errorf("SubjectTypes[%s] = %v, want true", first, got)
	}
	cv, _ := m.view.Category(category.SubjectTypes)
	if !cv.Multi.Strict {
		t.Error("a stored default value should make the category strict")
	}
}

func TestModel_MoveColumn(t *testing.T) {
	st := newTestStore(t,
		column.Column{ID: "left", Type: column.TypeActivity},
		notificationsColumn(),
	)
	m := newTestModel(t, st, "col-1", panel.Params{})
	if !m.view.CanMoveLeft || m.view.CanMoveRight {
		t.Fatalf("CanMoveLeft = %v, CanMoveRight = %v for the last column", m.view.CanMoveLeft, m.view.CanMoveRight)
	}

	m = press(m, "h")
	if _, index, _ := st.Column("col-1"); index != 0 {
		t.Errorf("index = %d after moving left, want 0", index)
	}
	if m.view.CanMoveLeft || !m.view.CanMoveRight {
		t.Errorf("CanMoveLeft = %v, CanMoveRight = %v for the first column", m.view.CanMoveLeft, m.view.CanMoveRight)
	}

	// Already leftmost.
	m = press(m, "h")
	if _, index, _ := st.Column("col-1"); index != 0 {
		t.Errorf("index = %d, want 0", index)
	}

	_ = press(m, "l")
	if _, index, _ := st.Column("col-1"); index != 1 {
		t.Errorf("index = %d after moving right, want 1", index)
	}
}

func TestModel_Delete(t *testing.T) {
	st := newTestStore(t, notificationsColumn())
	m := newTestModel(t, st, "col-1", panel.Params{})

	next, cmd := m.Update(keyMsg("D"))
	m = next.(Model)
	if st.Len() != 0 {
		t.Errorf("Len() = %d after delete, want 0", st.Len())
	}
	if !m.Removed() {
		t.Error("Removed() = false after delete")
	}
	if cmd == nil {
		t.Error("delete should quit the program")
	}
}

func TestModel_Reload(t *testing.T) {
	st := newTestStore(t, notificationsColumn())
	m := newTestModel(t, st, "col-1", panel.Params{})

	changed := notificationsColumn()
	changed.Filters.Unread = tristate.False
	other := column.Column{ID: "other", Type: column.TypeActivity}

	next, cmd := m.Update(ColumnsReloadedMsg{Columns: []column.Column{other, changed}})
	m = next.(Model)
	if cmd != nil {
		t.Error("reload of a present column should not quit")
	}
	cv, _ := m.view.Category(category.Unread)
	if cv.Subtitle != "Read" {
		t.Errorf("Subtitle = %q after reload, want Read", cv.Subtitle)
	}
	if got := m.panel.Params(); got.ColumnIndex != 1 || got.ColumnCount != 2 {
		t.Errorf("position = %d/%d, want 1/2", got.ColumnIndex, got.ColumnCount)
	}

	next, cmd = m.Update(ColumnsReloadedMsg{Columns: []column.Column{other}})
	m = next.(Model)
	if !m.Removed() || cmd == nil {
		t.Error("reload without the column should close the panel")
	}
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		t.Run(k, func(t *testing.T) {
			m := NewModel(panel.New(notificationsColumn(), panel.Params{}, nil, nil), nil, 0)
			next, cmd := m.Update(keyMsg(k))
			if cmd == nil {
				t.Errorf("Update(%q) cmd = nil, want quit", k)
			}
			if got := next.(Model).View(); got != "" {
				t.Errorf("View() after quit = %q, want empty", got)
			}
		})
	}
}

func TestModel_View(t *testing.T) {
	expanded := true
	col := notificationsColumn()
	col.Filters.Unread = tristate.True
	m := NewModel(panel.New(col, panel.Params{StartExpanded: &expanded}, nil, nil), nil, 0)

	out := m.View()
	for _, want := range []string{
		"Work inbox",
		"notifications",
		"Inbox",
		"Participating",
		"Read status",
		"[✓] Unread",
		"[ ] Read",
		"Saved for later",
		"Included",
		"[-]",
		"collapse all",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if strings.Contains(out, "expand all") {
		t.Error("View() offers expand all with everything open")
	}
}

func TestModel_ViewForcedOpen(t *testing.T) {
	m := NewModel(panel.New(notificationsColumn(), panel.Params{ForceAllOpen: true}, nil, nil), nil, 0)

	m = press(m, "enter", "c")
	if !m.panel.Disclosure().AllOpen() {
		t.Error("forced panel should stay fully open")
	}
	out := m.View()
	if strings.Contains(out, "▸") || strings.Contains(out, "▾") {
		t.Error("forced panel should not render disclosure arrows")
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := NewModel(panel.New(notificationsColumn(), panel.Params{}, nil, nil), nil, 0)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)
	if m.width != 60 || m.height != 20 {
		t.Errorf("size = %dx%d, want 60x20", m.width, m.height)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name               string
		n, cursor, limit   int
		wantStart, wantEnd int
	}{
		{"no limit", 10, 5, 0, 0, 10},
		{"fits", 4, 3, 10, 0, 4},
		{"cursor at top", 20, 0, 5, 0, 5},
		{"cursor in middle", 20, 10, 5, 8, 13},
		{"cursor at bottom", 20, 19, 5, 15, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleRange(tt.n, tt.cursor, tt.limit)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("visibleRange(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.n, tt.cursor, tt.limit, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
