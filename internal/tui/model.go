package tui

import (
	"github.com/Iron-Ham/hubdeck/internal/column"
	"github.com/Iron-Ham/hubdeck/internal/errors"
	"github.com/Iron-Ham/hubdeck/internal/panel"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultLabelWidth is the width of category titles when none is configured.
const DefaultLabelWidth = 24

// ColumnSource is the read side of the deck. The model re-reads its column
// after every edit.
type ColumnSource interface {
	Column(id string) (column.Column, int, error)
	Len() int
}

// ColumnsReloadedMsg carries the deck after the store file changed on disk.
type ColumnsReloadedMsg struct {
	Columns []column.Column
}

// Model is the Bubble Tea model of the options panel.
type Model struct {
	panel      *panel.Panel
	source     ColumnSource
	labelWidth int

	width  int
	height int

	view   panel.View
	rows   []row
	cursor int

	status   string
	err      error
	removed  bool
	quitting bool
}

// NewModel creates a model around p. A nil source leaves the column as
// given; edits still reach the panel's mutations.
func NewModel(p *panel.Panel, source ColumnSource, labelWidth int) Model {
	if labelWidth <= 0 {
		labelWidth = DefaultLabelWidth
	}
	m := Model{
		panel:      p,
		source:     source,
		labelWidth: labelWidth,
	}
	m.rebuild()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ColumnsReloadedMsg:
		return m.handleReload(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.err = nil

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(len(m.rows)-1, 0)

	case " ", "space", "enter":
		m.activate()
	case "e":
		m.panel.ExpandAll()
		m.rebuild()
	case "c":
		m.panel.CollapseAll()
		m.rebuild()

	case "h", "<", "left":
		if m.view.CanMoveLeft {
			m.panel.MoveLeft()
			m.refresh()
		}
	case "l", ">", "right":
		if m.view.CanMoveRight {
			m.panel.MoveRight()
			m.refresh()
		}
	case "D":
		m.panel.Delete()
		m.refresh()
	}

	if m.removed {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// activate applies the action of the focused row.
func (m *Model) activate() {
	r, ok := m.current()
	if !ok {
		return
	}

	switch r.kind {
	case rowCategory:
		m.panel.ToggleCategory(r.category)
		m.rebuild()
		return
	case rowPair:
		m.panel.TogglePair(r.category, r.which)
	case rowSaved:
		m.panel.ToggleSaved()
	case rowOption:
		m.panel.ToggleOption(r.category, r.key)
	}
	m.refresh()
}

// refresh re-reads the column after an edit.
func (m *Model) refresh() {
	if m.source == nil {
		m.rebuild()
		return
	}

	id := m.panel.Column().ID
	col, index, err := m.source.Column(id)
	switch {
	case errors.Is(err, errors.ErrColumnNotFound):
		m.removed = true
		m.status = "column deleted"
		return
	case err != nil:
		m.err = err
		return
	}

	m.panel.SetColumn(col)
	m.panel.SetPosition(index, m.source.Len())
	m.rebuild()
}

func (m Model) handleReload(msg ColumnsReloadedMsg) (tea.Model, tea.Cmd) {
	id := m.panel.Column().ID
	for i, col := range msg.Columns {
		if col.ID != id {
			continue
		}
		m.panel.SetColumn(col)
		m.panel.SetPosition(i, len(msg.Columns))
		m.rebuild()
		m.status = "reloaded"
		return m, nil
	}

	m.removed = true
	m.quitting = true
	m.status = "column deleted"
	return m, tea.Quit
}

// rebuild recomputes the view and rows, keeping the cursor on the same row
// when it still exists.
func (m *Model) rebuild() {
	prev, hadPrev := m.current()

	m.view = m.panel.View()
	m.rows = buildRows(m.view)

	if hadPrev {
		if i := indexOfRow(m.rows, prev); i >= 0 {
			m.cursor = i
			return
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

func (m Model) current() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// Removed reports whether the column disappeared from the deck.
func (m Model) Removed() bool {
	return m.removed
}

// Err returns the last error reported while re-reading the column.
func (m Model) Err() error {
	return m.err
}
