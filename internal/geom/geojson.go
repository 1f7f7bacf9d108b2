package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

var (
	ErrNoGeometry  = errors.New("no geometries found")
	ErrUnsupported = errors.New("unsupported file")
	ErrOpenRing    = errors.New("shape needs at least 3 vertices")
)

// Load reads a GeoJSON or WKT file and returns its geometry and attribute records.
func Load(path string) (Layer, Records, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layer{}, Records{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return ParseGeoJSON(data)
	case ".wkt":
		g, err := wkt.Unmarshal(strings.TrimSpace(string(data)))
		if err != nil {
			return Layer{}, Records{}, fmt.Errorf("wkt: %w", err)
		}
		b := builder{feature: -1}
		b.add(g)
		l, err := b.layer()
		return l, Records{}, err
	default:
		return Layer{}, Records{}, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
	}
}

// ParseGeoJSON accepts a FeatureCollection, a Feature or a bare geometry.
func ParseGeoJSON(data []byte) (Layer, Records, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Layer{}, Records{}, fmt.Errorf("geojson: %w", err)
	}
	var (
		b     builder
		props []geojson.Properties
	)
	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return Layer{}, Records{}, fmt.Errorf("geojson: %w", err)
		}
		for i, f := range fc.Features {
			b.feature = i
			b.add(f.Geometry)
			props = append(props, f.Properties)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return Layer{}, Records{}, fmt.Errorf("geojson: %w", err)
		}
		b.add(f.Geometry)
		props = append(props, f.Properties)
	case "":
		return Layer{}, Records{}, errors.New("invalid geojson: missing type")
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return Layer{}, Records{}, fmt.Errorf("geojson: %w", err)
		}
		b.feature = -1
		b.add(g.Geometry())
	}
	l, err := b.layer()
	if err != nil {
		return Layer{}, Records{}, err
	}
	return l, buildRecords(props), nil
}

type builder struct {
	l       Layer
	n       int
	feature int // index of the feature being added, -1 without attributes
}

func (b *builder) extend(p orb.Point) {
	b.l.BBox = b.l.BBox.Extend(p[0], p[1], b.n == 0)
	b.n++
}

func ring(pts []orb.Point) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64(p)
	}
	return out
}

func (b *builder) add(g orb.Geometry) {
	switch g := g.(type) {
	case nil:
	case orb.Point:
		b.l.Points = append(b.l.Points, [2]float64(g))
		b.extend(g)
	case orb.MultiPoint:
		for _, p := range g {
			b.add(p)
		}
	case orb.LineString:
		b.l.Lines = append(b.l.Lines, ring(g))
		for _, p := range g {
			b.extend(p)
		}
	case orb.MultiLineString:
		for _, ls := range g {
			b.add(ls)
		}
	case orb.Polygon:
		poly := make([][][2]float64, 0, len(g))
		for _, r := range g {
			poly = append(poly, ring(r))
			for _, p := range r {
				b.extend(p)
			}
		}
		b.l.Polygons = append(b.l.Polygons, poly)
		b.l.PolygonFeatures = append(b.l.PolygonFeatures, b.feature)
	case orb.MultiPolygon:
		for _, p := range g {
			b.add(p)
		}
	case orb.Collection:
		for _, sub := range g {
			b.add(sub)
		}
	}
}

func (b *builder) layer() (Layer, error) {
	if b.l.Empty() {
		return Layer{}, ErrNoGeometry
	}
	return b.l, nil
}

// buildRecords unions property keys across features; columns are sorted by name.
func buildRecords(props []geojson.Properties) Records {
	seen := map[string]bool{}
	var cols []string
	for _, pm := range props {
		for k := range pm {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	if len(cols) == 0 {
		return Records{}
	}
	sort.Strings(cols)
	rows := make([][]string, 0, len(props))
	for _, pm := range props {
		vals := make([]string, len(cols))
		for i, k := range cols {
			vals[i] = formatValue(pm[k])
		}
		rows = append(rows, vals)
	}
	return Records{Columns: cols, Rows: rows}
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		bs, _ := json.Marshal(t)
		return string(bs)
	}
}

// FeatureAt returns the feature index of the topmost polygon containing lon/lat.
func (l Layer) FeatureAt(lon, lat float64) (int, bool) {
	pt := orb.Point{lon, lat}
	for i := len(l.Polygons) - 1; i >= 0; i-- {
		if i >= len(l.PolygonFeatures) || l.PolygonFeatures[i] < 0 {
			continue
		}
		poly := make(orb.Polygon, 0, len(l.Polygons[i]))
		for _, r := range l.Polygons[i] {
			ring := make(orb.Ring, len(r))
			for j, p := range r {
				ring[j] = orb.Point(p)
			}
			poly = append(poly, ring)
		}
		if planar.PolygonContains(poly, pt) {
			return l.PolygonFeatures[i], true
		}
	}
	return 0, false
}

// ShapeFeature wraps a drawn ring ([lon, lat] vertices) as a GeoJSON polygon feature.
// The ring is closed if the last vertex differs from the first.
func ShapeFeature(vertices [][2]float64, props map[string]any) (*geojson.Feature, error) {
	if len(vertices) < 3 {
		return nil, ErrOpenRing
	}
	r := make(orb.Ring, 0, len(vertices)+1)
	for _, v := range vertices {
		r = append(r, orb.Point(v))
	}
	if !r.Closed() {
		r = append(r, r[0])
	}
	f := geojson.NewFeature(orb.Polygon{r})
	for k, v := range props {
		f.Properties[k] = v
	}
	return f, nil
}

// WriteShape writes the drawn ring to path as a GeoJSON FeatureCollection.
func WriteShape(path string, vertices [][2]float64, props map[string]any) error {
	f, err := ShapeFeature(vertices, props)
	if err != nil {
		return err
	}
	fc := geojson.NewFeatureCollection()
	fc.Append(f)
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode shape: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write shape: %w", err)
	}
	return nil
}
