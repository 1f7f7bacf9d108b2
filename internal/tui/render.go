package tui

import (
	"strings"

	"geodash/internal/draw"
)

// cellToLonLat converts a map cell coordinate back to lon/lat using bbox, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	lat := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return lon, lat, true
}

// screenXYMicro maps lon/lat into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	nx := (lon - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (lat - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// screenXY maps lon/lat to current screen integer coordinates considering zoom and pan.
func (m Model) screenXY(lon, lat float64, w, h int) (int, int, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	nx := (lon - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (lat - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	// Apply zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

func (m Model) projectMicro(pts [][2]float64, w, h int) [][2]int {
	out := make([][2]int, 0, len(pts))
	for _, p := range pts {
		if mx, my, ok := m.screenXYMicro(p[0], p[1], w, h); ok {
			out = append(out, [2]int{mx, my})
		}
	}
	return out
}

// vertices returns every visible vertex, data layer first, then the drawing.
func (m Model) vertices() [][2]float64 {
	var out [][2]float64
	if m.showPoints {
		out = append(out, m.layer.Points...)
	}
	if m.showLines {
		for _, ls := range m.layer.Lines {
			out = append(out, ls...)
		}
	}
	if m.showPolys {
		for _, poly := range m.layer.Polygons {
			for _, ring := range poly {
				out = append(out, ring...)
			}
		}
	}
	if m.showDrawing {
		out = append(out, lonLat(m.drawing.Points())...)
	}
	return out
}

func (m Model) renderAsciiMap(w, h int) string {
	data := newBrailleBuf(w, h)
	ink := newBrailleBuf(w, h)

	// polygons: fill outer ring, then edges of every ring
	if m.showPolys {
		for _, poly := range m.layer.Polygons {
			for i, ring := range poly {
				r := m.projectMicro(ring, w, h)
				if len(r) < 3 {
					continue
				}
				if i == 0 {
					data.fill(r)
				}
				data.stroke(r, true)
			}
		}
	}
	if m.showLines {
		for _, ls := range m.layer.Lines {
			data.stroke(m.projectMicro(ls, w, h), false)
		}
	}
	if m.showPoints {
		for _, p := range m.projectMicro(m.layer.Points, w, h) {
			data.setPixel(p[0], p[1])
		}
	}

	// drawing on top of the data layer
	inkStyle := pathStyle
	if m.showDrawing {
		pts := m.projectMicro(lonLat(m.drawing.Points()), w, h)
		switch m.drawing.Kind() {
		case draw.Open:
			ink.stroke(pts, false)
			for _, p := range pts {
				ink.setCell(p[0], p[1])
			}
		case draw.Closed:
			inkStyle = shapeStyle
			ink.fill(pts)
			ink.stroke(pts, true)
		}
	}

	hoverX, hoverY := -1, -1
	if m.hovering {
		hoverX, hoverY = m.hoverMicX/2, m.hoverMicY/4
	}
	var sb strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			if x == hoverX && y == hoverY {
				sb.WriteString(hoverStyle.Render("◯"))
				continue
			}
			dm, im := data.mask(x, y), ink.mask(x, y)
			switch {
			case dm|im == 0:
				sb.WriteByte(' ')
			case im != 0:
				sb.WriteString(inkStyle.Render(string(rune(0x2800 + int(dm|im)))))
			default:
				sb.WriteRune(rune(0x2800 + int(dm)))
			}
		}
	}
	return sb.String()
}

// inspectNearest finds the vertex closest to the viewport center and returns lon/lat.
func (m Model) inspectNearest() (lon, lat float64, ok bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	cx, cy := w/2, h/2
	bestD := 1<<31 - 1
	var best [2]float64
	for _, p := range m.vertices() {
		sx, sy, ok2 := m.screenXY(p[0], p[1], w, h)
		if !ok2 {
			continue
		}
		dx := sx - cx
		dy := sy - cy
		d := dx*dx + dy*dy
		if d < bestD {
			bestD = d
			best = p
		}
	}
	if bestD == 1<<31-1 {
		return 0, 0, false
	}
	return best[0], best[1], true
}

// nearestMicro returns the micro coords of the vertex closest to (hx, hy), or (hx, hy) itself.
func (m Model) nearestMicro(hx, hy, w, h int) (int, int) {
	best := 1<<31 - 1
	bx, by := hx, hy
	for _, p := range m.vertices() {
		mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
		if !ok {
			continue
		}
		dx := mx - hx
		dy := my - hy
		if d := dx*dx + dy*dy; d < best {
			best = d
			bx, by = mx, my
		}
	}
	return bx, by
}
