package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"geodash/internal/attrs"
)

type columnItem struct {
	id       string
	selected bool
}

func (c columnItem) Title() string {
	if c.selected {
		return "[x] " + c.id
	}
	return "[ ] " + c.id
}
func (c columnItem) Description() string { return "" }
func (c columnItem) FilterValue() string { return c.id }

// refreshColumns rebuilds the column picker from the table and the selection.
func (m *Model) refreshColumns() {
	items := make([]list.Item, 0, len(m.table.Columns))
	for _, c := range m.table.Columns {
		items = append(items, columnItem{id: c, selected: m.sel.HasColumn(c)})
	}
	m.l.SetItems(items)
}

func (m *Model) toggleColumn(id string) {
	m.sel = m.sel.ToggleColumn(id)
	m.refreshColumns()
	m.log.Debug("column selection", "columns", m.sel.Columns)
}

func (m *Model) moveCursor(dRow, dCol int) {
	if m.table.Empty() {
		return
	}
	m.cursorRow = min(max(0, m.cursorRow+dRow), len(m.table.Rows)-1)
	m.cursorCol = min(max(0, m.cursorCol+dCol), len(m.table.Columns)-1)
}

// visibleRows is the window of rows that fits h lines of a bordered table with a header.
func (m Model) visibleRows(h int) (start, end int) {
	n := max(1, (h-4)/2) // header + borders, one line and one separator per row
	start = 0
	if m.cursorRow >= n {
		start = m.cursorRow - n + 1
	}
	end = min(len(m.table.Rows), start+n)
	return start, end
}

func (m Model) renderTable(w, h int) string {
	if m.table.Empty() {
		msg := "no attributes for current dataset"
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dimStyle.Render(msg))
	}
	rules := attrs.Highlights(m.sel.Columns)
	start, end := m.visibleRows(h)
	// the "#" column shifts data columns right by one
	shown := m.table.WithIndex()
	rows := shown.Rows[start:end]

	t := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderCol)).
		Headers(shown.Columns...).
		Rows(rows...).
		Width(w).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row != ltable.HeaderRow {
				row += start
			} else {
				row = -1
			}
			if col == 0 {
				if row < 0 {
					return headerCellStyle
				}
				return cellStyle.Foreground(baseDimFg)
			}
			col--
			var s lipgloss.Style
			switch m.table.Cell(row, col, rules, m.sel) {
			case attrs.Header:
				s = headerCellStyle
			case attrs.SelectedColumn:
				s = selectedColStyle
			case attrs.SelectedRow:
				s = selectedRowStyle
			default:
				s = cellStyle
			}
			if row == m.cursorRow && col == m.cursorCol {
				s = s.Underline(true).Bold(true)
			}
			return s
		})
	return lipgloss.NewStyle().MaxWidth(w).MaxHeight(h).Render(t.Render())
}
