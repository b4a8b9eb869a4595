package tui

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/hubdeck/internal/filterstate"
	"github.com/Iron-Ham/hubdeck/internal/panel"
	"github.com/Iron-Ham/hubdeck/internal/tui/styles"
	"github.com/Iron-Ham/hubdeck/internal/util"
)

// chromeHeight is the number of lines around the rows: frame border,
// header with its rule, status line and help bar with its margin.
const chromeHeight = 7

const savedLabel = "Saved for later"

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	limit := 0
	if m.height > 0 {
		limit = max(m.height-chromeHeight, 1)
	}
	start, end := visibleRange(len(m.rows), m.cursor, limit)
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}
	if m.view.FullHeight && limit > 0 {
		for i := end - start; i < limit; i++ {
			b.WriteString("\n")
		}
	}

	switch {
	case m.err != nil:
		b.WriteString(styles.ErrorMsg.Render("Error: " + m.err.Error()))
	case m.status != "":
		b.WriteString(styles.StatusMsg.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	frame := styles.Panel
	if m.width > 2 {
		frame = frame.Width(m.width - 2)
	}
	return frame.Render(b.String())
}

func (m Model) renderHeader() string {
	meta := " " + m.view.ColumnType
	if params := m.panel.Params(); params.ColumnCount > 0 {
		meta += fmt.Sprintf(" · %d/%d", params.ColumnIndex+1, params.ColumnCount)
	}
	return styles.Header.Render(m.view.ColumnTitle + styles.Muted.Render(meta))
}

func (m Model) renderRow(i int) string {
	r := m.rows[i]
	cv, _ := m.view.Category(r.category)

	var line string
	switch r.kind {
	case rowCategory:
		line = m.renderCategory(cv)
	case rowPair:
		line = "    " + renderCheckbox(pairBox(cv.Pair, r.which))
	case rowSaved:
		line = "    " + renderMark(cv.Saved.Mark) + " " + styles.Text.Render(savedLabel)
	case rowOption:
		opt, _ := cv.Multi.Option(r.key)
		line = "    " + renderMark(opt.Mark) + " " + styles.OptionColor(opt.Color).Render("●") + " " + styles.Text.Render(opt.Label)
	}

	if i == m.cursor {
		return styles.Cursor.Render("›") + " " + line
	}
	return "  " + line
}

func (m Model) renderCategory(cv panel.CategoryView) string {
	arrow := "▸"
	switch {
	case !cv.Toggleable:
		arrow = "•"
	case cv.Open:
		arrow = "▾"
	}
	title := util.FitANSI(cv.Title, m.labelWidth)
	return styles.Muted.Render(arrow) + " " + styles.CategoryTitle.Render(title) + " " + styles.CategorySubtitle.Render(cv.Subtitle)
}

func pairBox(p *filterstate.PairView, which panel.Which) filterstate.Checkbox {
	if which == panel.First {
		return p.First
	}
	return p.Second
}

func renderCheckbox(c filterstate.Checkbox) string {
	mark := filterstate.MarkUnchecked
	if c.Checked {
		mark = filterstate.MarkChecked
	}
	if c.Disabled {
		return styles.Disabled.Render(mark.Box() + " " + c.Label)
	}
	return renderMark(mark) + " " + styles.Text.Render(c.Label)
}

func renderMark(mark filterstate.Mark) string {
	switch mark {
	case filterstate.MarkChecked:
		return styles.Checked.Render(mark.Box())
	case filterstate.MarkUnchecked:
		return styles.Unchecked.Render(mark.Box())
	default:
		return styles.Indeterminate.Render(mark.Box())
	}
}

func (m Model) renderHelp() string {
	keys := []string{
		styles.HelpKey.Render("[j/k]") + " move",
		styles.HelpKey.Render("[space]") + " toggle",
	}
	if m.view.CanExpandAll {
		keys = append(keys, styles.HelpKey.Render("[e]")+" expand all")
	}
	if m.view.CanCollapseAll {
		keys = append(keys, styles.HelpKey.Render("[c]")+" collapse all")
	}
	if m.view.CanMoveLeft {
		keys = append(keys, styles.HelpKey.Render("[h]")+" move left")
	}
	if m.view.CanMoveRight {
		keys = append(keys, styles.HelpKey.Render("[l]")+" move right")
	}
	keys = append(keys,
		styles.HelpKey.Render("[D]")+" delete",
		styles.HelpKey.Render("[q]")+" quit",
	)
	return styles.HelpBar.Render(strings.Join(keys, "  "))
}
