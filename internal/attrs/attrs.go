// Package attrs holds the attribute table of a dataset and the selection state
// that drives its cell highlighting.
package attrs

import (
	"fmt"
	"slices"
)

// HighlightColor is the background of cells in a selected column.
const HighlightColor = "#D2F3FF"

type Table struct {
	Columns []string
	Rows    [][]string
}

// New builds a table and pads or truncates every row to the column count.
func New(columns []string, rows [][]string) Table {
	t := Table{Columns: slices.Clone(columns), Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		cells := make([]string, len(columns))
		copy(cells, r)
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// WithIndex prepends a 1-based "#" column.
func (t Table) WithIndex() Table {
	out := Table{Columns: append([]string{"#"}, t.Columns...)}
	for i, r := range t.Rows {
		out.Rows = append(out.Rows, append([]string{fmt.Sprintf("%d", i+1)}, r...))
	}
	return out
}

func (t Table) Empty() bool { return len(t.Columns) == 0 || len(t.Rows) == 0 }

// Selection tracks the columns and rows a user has picked. Columns keep pick order.
type Selection struct {
	Columns []string
	Rows    []int
}

func (s Selection) HasColumn(id string) bool { return slices.Contains(s.Columns, id) }

func (s Selection) HasRow(i int) bool { return slices.Contains(s.Rows, i) }

// ToggleColumn returns a copy of s with id added or removed.
func (s Selection) ToggleColumn(id string) Selection {
	out := Selection{Rows: slices.Clone(s.Rows)}
	if i := slices.Index(s.Columns, id); i >= 0 {
		out.Columns = slices.Delete(slices.Clone(s.Columns), i, i+1)
		return out
	}
	out.Columns = append(slices.Clone(s.Columns), id)
	return out
}

// ToggleRow returns a copy of s with row i added or removed.
func (s Selection) ToggleRow(i int) Selection {
	out := Selection{Columns: slices.Clone(s.Columns)}
	if j := slices.Index(s.Rows, i); j >= 0 {
		out.Rows = slices.Delete(slices.Clone(s.Rows), j, j+1)
		return out
	}
	out.Rows = append(slices.Clone(s.Rows), i)
	return out
}

// Prune drops selected columns and rows that t no longer has.
func (s Selection) Prune(t Table) Selection {
	var out Selection
	for _, c := range s.Columns {
		if slices.Contains(t.Columns, c) {
			out.Columns = append(out.Columns, c)
		}
	}
	for _, r := range s.Rows {
		if r >= 0 && r < len(t.Rows) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// Rule is one conditional style: cells of Column get Background.
type Rule struct {
	Column     string
	Background string
}

// Highlights maps selected column ids to one rule each, in selection order.
func Highlights(selected []string) []Rule {
	rules := make([]Rule, 0, len(selected))
	for _, id := range selected {
		rules = append(rules, Rule{Column: id, Background: HighlightColor})
	}
	return rules
}

type CellKind int

const (
	Plain CellKind = iota
	Header
	SelectedColumn
	SelectedRow
)

// Cell classifies the cell at (row, col). row < 0 is the header row.
// A selected column wins over a selected row.
func (t Table) Cell(row, col int, rules []Rule, sel Selection) CellKind {
	if row < 0 {
		return Header
	}
	if col >= 0 && col < len(t.Columns) {
		id := t.Columns[col]
		for _, r := range rules {
			if r.Column == id {
				return SelectedColumn
			}
		}
	}
	if sel.HasRow(row) {
		return SelectedRow
	}
	return Plain
}
