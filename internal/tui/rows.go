package tui

import (
	"github.com/Iron-Ham/hubdeck/internal/category"
	"github.com/Iron-Ham/hubdeck/internal/panel"
)

type rowKind int

const (
	rowCategory rowKind = iota
	rowPair
	rowSaved
	rowOption
)

// row is one navigable line of the panel.
type row struct {
	kind     rowKind
	category category.ID
	which    panel.Which
	key      string
}

// buildRows flattens a view into rows. Closed categories contribute only
// their header.
func buildRows(v panel.View) []row {
	var rows []row
	for _, c := range v.Categories {
		rows = append(rows, row{kind: rowCategory, category: c.ID})
		if !c.Open {
			continue
		}
		switch {
		case c.Pair != nil:
			rows = append(rows,
				row{kind: rowPair, category: c.ID, which: panel.First},
				row{kind: rowPair, category: c.ID, which: panel.Second},
			)
		case c.Saved != nil:
			rows = append(rows, row{kind: rowSaved, category: c.ID})
		case c.Multi != nil:
			for _, o := range c.Multi.Options {
				rows = append(rows, row{kind: rowOption, category: c.ID, key: o.Key})
			}
		}
	}
	return rows
}

// indexOfRow finds r in rows, falling back to the header of r's category.
func indexOfRow(rows []row, r row) int {
	header := -1
	for i, candidate := range rows {
		if candidate == r {
			return i
		}
		if candidate.kind == rowCategory && candidate.category == r.category {
			header = i
		}
	}
	return header
}

// visibleRange returns the window [start, end) of n rows that keeps cursor
// in view when at most limit rows fit. limit <= 0 shows everything.
func visibleRange(n, cursor, limit int) (start, end int) {
	if limit <= 0 || n <= limit {
		return 0, n
	}
	start = cursor - limit/2
	if start < 0 {
		start = 0
	}
	if start+limit > n {
		start = n - limit
	}
	return start, start + limit
}
