package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geodash/internal/draw"
)

type legendEntry struct {
	glyph   string
	label   string
	visible bool
	count   int
}

func (m Model) legendEntries() []legendEntry {
	var out []legendEntry
	if n := len(m.layer.Polygons); n > 0 {
		out = append(out, legendEntry{"⣿", "polygons", m.showPolys, n})
	}
	if n := len(m.layer.Lines); n > 0 {
		out = append(out, legendEntry{"⠤", "lines", m.showLines, n})
	}
	if n := len(m.layer.Points); n > 0 {
		out = append(out, legendEntry{"⠂", "points", m.showPoints, n})
	}
	switch m.drawing.Kind() {
	case draw.Open:
		out = append(out, legendEntry{pathStyle.Render("⠶"), "path", m.showDrawing, m.drawing.Len()})
	case draw.Closed:
		out = append(out, legendEntry{shapeStyle.Render("⣿"), "shape", m.showDrawing, m.drawing.Len()})
	default:
		out = append(out, legendEntry{dimStyle.Render("·"), "no drawing", m.showDrawing, 0})
	}
	return out
}

func (m Model) renderLegend(w, h int) string {
	inner := max(8, w-4)
	rows := []string{titleStyle.Render(truncate(m.legendTitle, inner)), ""}
	for _, e := range m.legendEntries() {
		mark := "[x]"
		if !e.visible {
			mark = "[ ]"
		}
		label := fmt.Sprintf("%s %s %s", mark, e.glyph, e.label)
		count := fmt.Sprintf("%d", e.count)
		gap := inner - lipgloss.Width(label) - len(count)
		rows = append(rows, padRight(label, gap)+dimStyle.Render(count))
	}
	rows = append(rows, "", dimStyle.Render(fmt.Sprintf("zoom %.2fx", m.zoom)))
	if m.drawing.Kind() == draw.Open {
		rows = append(rows, dimStyle.Render(truncate("click first vertex to close", inner)))
	}
	return boxStyle.Width(w - 2).MaxHeight(h).Render(strings.Join(rows, "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
