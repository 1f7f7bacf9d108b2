package geom

import "math"

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Valid reports whether the box has a positive area.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

// Extend grows b to cover (x, y). first marks the first point of a new box.
func (b BBox) Extend(x, y float64, first bool) BBox {
	if first {
		return BBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
	}
	b.MinX = math.Min(b.MinX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxX = math.Max(b.MaxX, x)
	b.MaxY = math.Max(b.MaxY, y)
	return b
}

// Pad widens a degenerate box (single point, straight line) so it can be projected.
func (b BBox) Pad(span float64) BBox {
	if b.MaxX-b.MinX < span {
		c := (b.MinX + b.MaxX) / 2
		b.MinX, b.MaxX = c-span/2, c+span/2
	}
	if b.MaxY-b.MinY < span {
		c := (b.MinY + b.MaxY) / 2
		b.MinY, b.MaxY = c-span/2, c+span/2
	}
	return b
}

// Around returns the viewport of a web map centred on lon/lat at the given zoom level.
// aspect is width/height of the target canvas in degrees.
func Around(lon, lat, zoom, aspect float64) BBox {
	spanX := 360 / math.Pow(2, zoom)
	if aspect <= 0 {
		aspect = 1
	}
	spanY := spanX / aspect
	return BBox{
		MinX: lon - spanX/2,
		MinY: lat - spanY/2,
		MaxX: lon + spanX/2,
		MaxY: lat + spanY/2,
	}
}

// Layer is a minimal geometry container for rendering. Coordinates are [lon, lat].
type Layer struct {
	Points   [][2]float64
	Lines    [][][2]float64
	Polygons [][][][2]float64 // polygons with rings (first outer, following holes)
	BBox     BBox

	// PolygonFeatures holds the source feature index of each polygon, -1 when unknown.
	PolygonFeatures []int
}

// Empty reports whether the layer holds no geometry.
func (l Layer) Empty() bool {
	return len(l.Points) == 0 && len(l.Lines) == 0 && len(l.Polygons) == 0
}

// Records are the attribute rows of a dataset, one per feature.
type Records struct {
	Columns []string
	Rows    [][]string
}
