package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header
	title := " geodash ─ map "
	if m.page == tablePage {
		title = " geodash ─ attributes "
	}
	header := lipgloss.NewStyle().Width(lo.contentW).Render(titleStyle.Render(title))

	// Main canvas
	var canvas string
	if m.page == tablePage {
		canvas = m.renderTable(lo.mapW, lo.mapH)
	} else {
		canvas = m.renderAsciiMap(lo.mapW, lo.mapH)
	}
	mapView := lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(canvas)

	// Body row
	cols := []string{}
	if lo.sidebarW > 0 {
		cols = append(cols, lipgloss.NewStyle().Width(lo.sidebarW).Render(m.l.View()), " ")
	}
	cols = append(cols, mapView)
	if lo.legendW > 0 {
		cols = append(cols, " ", m.renderLegend(lo.legendW, lo.mapH))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	// Inspect popup replaces the body while open
	if m.inspectPopup != "" && m.page == mapPage {
		maxPopupW := max(20, min(48, lo.contentW/2))
		box := boxStyle.MaxWidth(maxPopupW).Render(m.inspectPopup)
		body = lipgloss.Place(lo.contentW, lo.contentH, lipgloss.Left, lipgloss.Center, box)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.page == mapPage && m.hovering && m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  lat=%.6f lon=%.6f  ", m.hoverLat, m.hoverLon))
	}
	left := lipgloss.JoinVertical(lipgloss.Left, status, help)
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Top, coords)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).MaxHeight(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	var keys []string
	if m.page == tablePage {
		keys = []string{
			"↑↓←→ move",
			"Enter/c highlight column",
			"Space select row",
			"Tab columns",
			"a map",
			"h help",
			"q quit",
		}
	} else {
		keys = []string{
			"click draw",
			"Esc clear",
			"w save",
			"↑↓←→ pan",
			"+/- zoom",
			"1-4 layers",
			"g legend",
			"i inspect",
			"a attrs",
			"h help",
			"q quit",
		}
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
