package tui

import (
	"strings"

	"geodash/internal/draw"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func padRight(s string, n int) string {
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

// lonLat converts drawn coordinates to [lon, lat] pairs used by the renderer and exporter.
func lonLat(pts []draw.Coordinate) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p.Lon, p.Lat}
	}
	return out
}
