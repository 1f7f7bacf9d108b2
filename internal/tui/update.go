package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geodash/internal/draw"
	"geodash/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.refit()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		return m, nil
	case tea.KeyMsg:
		// If the column picker is filtering, send keys to it and ignore global commands
		if m.sidebarActive() && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "h":
			m.helpVisible = !m.helpVisible
			return m, nil
		case "a":
			if m.page == mapPage {
				m.page = tablePage
				m.inspectPopup = ""
				m.status = "attributes"
			} else {
				m.page = mapPage
				m.status = "map"
			}
			return m, nil
		}
		if m.page == tablePage {
			return m.updateTable(msg)
		}
		return m.updateMap(msg), nil
	case tea.MouseMsg:
		if m.page == mapPage {
			return m.updateMouse(msg), nil
		}
	}
	if m.sidebarActive() {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) sidebarActive() bool { return m.showSidebar && m.page == tablePage }

func (m Model) updateMap(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "1":
		m.showPoints = !m.showPoints
		m.status = fmt.Sprintf("points: %v", m.showPoints)
	case "2":
		m.showLines = !m.showLines
		m.status = fmt.Sprintf("lines: %v", m.showLines)
	case "3":
		m.showPolys = !m.showPolys
		m.status = fmt.Sprintf("polys: %v", m.showPolys)
	case "4":
		m.showDrawing = !m.showDrawing
		m.status = fmt.Sprintf("drawing: %v", m.showDrawing)
	case "l":
		// toggle all layers
		all := m.showPoints && m.showLines && m.showPolys && m.showDrawing
		m.showPoints = !all
		m.showLines = !all
		m.showPolys = !all
		m.showDrawing = !all
		m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v draw=%v", m.showPoints, m.showLines, m.showPolys, m.showDrawing)
	case "g":
		m.showLegend = !m.showLegend
	case "+", "=":
		if m.zoom < 64 {
			m.zoom *= 1.2
			m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
		}
	case "-", "_":
		if m.zoom > 0.05 {
			m.zoom /= 1.2
			m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
		}
	case "esc":
		if m.inspectPopup != "" {
			m.inspectPopup = ""
			break
		}
		m.drawing = draw.Restart()
		m.status = "drawing cleared"
		m.log.Info("drawing restarted")
	case "w":
		m = m.exportShape()
	case "i":
		if row, ok := m.featureUnderCursor(); ok {
			m.inspectPopup = m.featurePopup(row)
			m.status = fmt.Sprintf("feature %d", row+1)
			break
		}
		lon, lat, ok := m.inspectNearest()
		if !ok {
			m.inspectPopup = "no feature nearby"
			m.status = m.inspectPopup
			break
		}
		name := filepath.Base(m.dataPath)
		if m.dataPath == "" {
			name = "<none>"
		}
		meta := []string{
			fmt.Sprintf("name: %s", name),
			fmt.Sprintf("path: %s", m.dataPath),
			fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", m.bbox.MinX, m.bbox.MinY, m.bbox.MaxX, m.bbox.MaxY),
			fmt.Sprintf("counts: pts=%d ls=%d poly=%d", len(m.layer.Points), len(m.layer.Lines), len(m.layer.Polygons)),
			fmt.Sprintf("drawing: %s (%d vertices)", m.drawing.Kind(), m.drawing.Len()),
			fmt.Sprintf("nearest: lon=%.6f lat=%.6f", lon, lat),
		}
		m.inspectPopup = strings.Join(meta, "\n")
		m.status = "inspect popup"
	case "up":
		m.offsetY -= 1
	case "down":
		m.offsetY += 1
	case "left":
		m.offsetX -= 2
	case "right":
		m.offsetX += 2
	}
	return m
}

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	lo := m.layout()
	cx, cy, ok := lo.inMap(msg.X, msg.Y)
	if !ok {
		m.hovering = false
		return m
	}
	m.hovering = true
	m.hoverCellX, m.hoverCellY = cx, cy
	lon, lat, geo := m.cellToLonLat(cx, cy, lo.mapW, lo.mapH)
	m.hoverHasGeo = geo
	m.hoverLon, m.hoverLat = lon, lat
	m.hoverMicX, m.hoverMicY = m.nearestMicro(cx*2, cy*4, lo.mapW, lo.mapH)

	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return m
	}
	var click *draw.Coordinate
	if geo {
		click = &draw.Coordinate{Lat: lat, Lon: lon}
	}
	next, ok := m.tracker.Advance(click, &m.drawing)
	if !ok {
		return m
	}
	before := m.drawing.Kind()
	m.drawing = next
	m.showDrawing = true
	switch {
	case next.Kind() == draw.Closed:
		m.status = fmt.Sprintf("shape closed: %d vertices  w to save", next.Len())
		m.log.Info("shape closed", "vertices", next.Len())
	case before != draw.Open:
		m.status = fmt.Sprintf("path started at lon=%.6f lat=%.6f", lon, lat)
		m.log.Info("path started", "lon", lon, "lat", lat)
	default:
		m.status = fmt.Sprintf("path: %d vertices", next.Len())
		m.log.Debug("vertex added", "lon", lon, "lat", lat, "vertices", next.Len())
	}
	return m
}

// featureUnderCursor returns the attribute row of the building under the mouse.
func (m Model) featureUnderCursor() (int, bool) {
	if !m.hovering || !m.hoverHasGeo || !m.showPolys {
		return 0, false
	}
	i, ok := m.layer.FeatureAt(m.hoverLon, m.hoverLat)
	if !ok || i >= len(m.table.Rows) {
		return 0, false
	}
	return i, true
}

func (m Model) featurePopup(row int) string {
	lines := []string{fmt.Sprintf("feature %d", row+1)}
	for i, c := range m.table.Columns {
		if v := m.table.Rows[row][i]; v != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", c, v))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) exportShape() Model {
	shape := m.drawing.Shape()
	if shape == nil {
		m.status = "nothing to save: close a shape first"
		return m
	}
	props := map[string]any{"vertices": len(shape)}
	if m.dataPath != "" {
		props["source"] = filepath.Base(m.dataPath)
	}
	err := geom.WriteShape(m.exportPath, lonLat(shape), props)
	switch {
	case errors.Is(err, geom.ErrOpenRing):
		m.status = fmt.Sprintf("cannot save: shape has %d vertices, a polygon needs 3", len(shape))
	case err != nil:
		m.status = "save error: " + err.Error()
		m.log.Error("export shape", "path", m.exportPath, "err", err)
	default:
		m.status = "saved: " + m.exportPath
		m.log.Info("shape exported", "path", m.exportPath, "vertices", len(shape))
	}
	return m
}

func (m Model) updateTable(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshColumns()
		}
		return m, nil
	}
	if m.sidebarActive() {
		if msg.String() == "enter" {
			if it, ok := m.l.SelectedItem().(columnItem); ok {
				m.toggleColumn(it.id)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "up":
		m.moveCursor(-1, 0)
	case "down":
		m.moveCursor(1, 0)
	case "left":
		m.moveCursor(0, -1)
	case "right":
		m.moveCursor(0, 1)
	case "enter", "c":
		if !m.table.Empty() {
			m.toggleColumn(m.table.Columns[m.cursorCol])
			m.status = fmt.Sprintf("highlighted: %s", strings.Join(m.sel.Columns, ", "))
		}
	case " ", "space":
		if !m.table.Empty() {
			m.sel = m.sel.ToggleRow(m.cursorRow)
			m.status = fmt.Sprintf("selected rows: %d", len(m.sel.Rows))
		}
	}
	return m, nil
}
