package tui

import "geodash/internal/geom"

const (
	headerHeight = 1
	footerHeight = 2
	sidebarWidth = 28
	legendWidth  = 34
)

// layout is the screen geometry shared by Update (mouse hit-testing) and View.
type layout struct {
	contentW int
	contentH int
	sidebarW int
	legendW  int
	mapX     int
	mapY     int
	mapW     int
	mapH     int
}

func (m Model) layout() layout {
	var lo layout
	lo.contentH = m.height - headerHeight - footerHeight
	if lo.contentH < 4 {
		lo.contentH = 4
	}
	lo.contentW = max(10, m.width)
	gap := 0
	if m.showSidebar && m.page == tablePage {
		lo.sidebarW = sidebarWidth
		gap = 1
	}
	if m.showLegend && m.page == mapPage {
		lo.legendW = legendWidth
	}
	lo.mapW = lo.contentW - lo.sidebarW - lo.legendW - 1
	if lo.mapW < 10 {
		lo.mapW = 10
	}
	lo.mapH = lo.contentH
	lo.mapX = lo.sidebarW + gap
	lo.mapY = headerHeight
	return lo
}

// inMap reports whether the screen cell (x, y) is on the map canvas and returns canvas coords.
func (lo layout) inMap(x, y int) (cx, cy int, ok bool) {
	if x >= lo.mapX && x < lo.mapX+lo.mapW && y >= lo.mapY && y < lo.mapY+lo.mapH {
		return x - lo.mapX, y - lo.mapY, true
	}
	return 0, 0, false
}

// refit recomputes the geographic extent of the canvas. A loaded data layer
// fixes the extent; otherwise it is derived from the configured centre and zoom.
func (m *Model) refit() {
	lo := m.layout()
	m.mapW, m.mapH = max(8, lo.mapW), max(4, lo.mapH)
	if !m.layer.Empty() {
		m.bbox = m.layer.BBox.Pad(1e-4)
		return
	}
	// terminal cells are roughly twice as tall as they are wide
	aspect := float64(m.mapW) / float64(2*m.mapH)
	m.bbox = geom.Around(m.center[0], m.center[1], m.mapZoom, aspect)
}
