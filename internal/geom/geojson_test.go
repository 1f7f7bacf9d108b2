package geom

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const buildings = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature",
     "properties": {"CamaPID": "3402-501-0011", "NumStory": 2, "bldg_cat": "Residential"},
     "geometry": {"type": "Polygon", "coordinates": [[[-80.285, 27.440], [-80.284, 27.440], [-80.284, 27.441], [-80.285, 27.440]]]}},
    {"type": "Feature",
     "properties": {"CamaPID": "3402-501-0012", "marketval": 125000, "seasonal": true},
     "geometry": {"type": "Point", "coordinates": [-80.283, 27.442]}}
  ]
}`

func TestParseGeoJSON_FeatureCollection(t *testing.T) {
	l, recs, err := ParseGeoJSON([]byte(buildings))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.Polygons) != 1 || len(l.Points) != 1 {
		t.Fatalf("got %d polygons, %d points", len(l.Polygons), len(l.Points))
	}
	want := BBox{MinX: -80.285, MinY: 27.440, MaxX: -80.283, MaxY: 27.442}
	if l.BBox != want {
		t.Errorf("bbox = %+v, want %+v", l.BBox, want)
	}

	wantCols := []string{"CamaPID", "NumStory", "bldg_cat", "marketval", "seasonal"}
	if len(recs.Columns) != len(wantCols) {
		t.Fatalf("columns = %v", recs.Columns)
	}
	for i, c := range wantCols {
		if recs.Columns[i] != c {
			t.Errorf("column %d = %q, want %q", i, recs.Columns[i], c)
		}
	}
	if got := recs.Rows[0]; got[1] != "2" || got[3] != "" {
		t.Errorf("row 0 = %v", got)
	}
	if got := recs.Rows[1]; got[3] != "125000" || got[4] != "true" {
		t.Errorf("row 1 = %v", got)
	}
}

func TestParseGeoJSON_BareGeometry(t *testing.T) {
	l, recs, err := ParseGeoJSON([]byte(`{"type":"LineString","coordinates":[[11.98,57.67],[11.99,57.68]]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.Lines) != 1 || len(l.Lines[0]) != 2 {
		t.Fatalf("lines = %v", l.Lines)
	}
	if len(recs.Columns) != 0 {
		t.Errorf("bare geometry has no attributes, got %v", recs.Columns)
	}
}

func TestParseGeoJSON_Errors(t *testing.T) {
	if _, _, err := ParseGeoJSON([]byte(`{"coordinates":[]}`)); err == nil {
		t.Error("missing type accepted")
	}
	_, _, err := ParseGeoJSON([]byte(`{"type":"FeatureCollection","features":[]}`))
	if !errors.Is(err, ErrNoGeometry) {
		t.Errorf("err = %v, want ErrNoGeometry", err)
	}
}

func TestLoad_WKT(t *testing.T) {
	p := filepath.Join(t.TempDir(), "area.wkt")
	if err := os.WriteFile(p, []byte("POLYGON((0 0, 2 0, 2 2, 0 0))\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l, _, err := Load(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.Polygons) != 1 || l.BBox != (BBox{MaxX: 2, MaxY: 2}) {
		t.Errorf("got %+v", l)
	}
}

func TestLoad_Unsupported(t *testing.T) {
	p := filepath.Join(t.TempDir(), "points.kml")
	if err := os.WriteFile(p, []byte("<kml/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(p); !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}

func TestWriteShape(t *testing.T) {
	ring := [][2]float64{{11.98, 57.67}, {11.99, 57.68}, {12.00, 57.67}}
	p := filepath.Join(t.TempDir(), "shape.geojson")
	if err := WriteShape(p, ring, map[string]any{"name": "drawn"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	var fc struct {
		Features []struct {
			Properties map[string]any `json:"properties"`
			Geometry   struct {
				Type        string         `json:"type"`
				Coordinates [][][2]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		t.Fatal(err)
	}
	g := fc.Features[0].Geometry
	if g.Type != "Polygon" || len(g.Coordinates[0]) != 4 {
		t.Fatalf("geometry = %+v", g)
	}
	if g.Coordinates[0][0] != g.Coordinates[0][3] {
		t.Error("ring not closed")
	}
	if fc.Features[0].Properties["name"] != "drawn" {
		t.Errorf("properties = %v", fc.Features[0].Properties)
	}
}

func TestShapeFeature_TooFewVertices(t *testing.T) {
	if _, err := ShapeFeature([][2]float64{{0, 0}, {1, 1}}, nil); !errors.Is(err, ErrOpenRing) {
		t.Errorf("err = %v, want ErrOpenRing", err)
	}
}

func TestAround(t *testing.T) {
	b := Around(11.980833, 57.671667, 16, 2)
	if !b.Valid() {
		t.Fatalf("invalid bbox %+v", b)
	}
	w, h := b.MaxX-b.MinX, b.MaxY-b.MinY
	if w < 0.0054 || w > 0.0056 {
		t.Errorf("width = %v", w)
	}
	if h*2-w > 1e-12 || w-h*2 > 1e-12 {
		t.Errorf("aspect not kept: %v x %v", w, h)
	}
}

func TestPad(t *testing.T) {
	b := BBox{MinX: 1, MinY: 1, MaxX: 1, MaxY: 1}.Pad(0.01)
	if !b.Valid() {
		t.Errorf("padded bbox still degenerate: %+v", b)
	}
}

func TestParseGeoJSON_LargeNumbersPrintInFull(t *testing.T) {
	data := `{"type":"Feature","properties":{"marketval":1250000,"FID":12345678,"ratio":0.25},
	  "geometry":{"type":"Point","coordinates":[-80.28,27.44]}}`
	_, recs, err := ParseGeoJSON([]byte(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]string{"FID": "12345678", "marketval": "1250000", "ratio": "0.25"}
	for i, c := range recs.Columns {
		if got := recs.Rows[0][i]; got != want[c] {
			t.Errorf("%s = %q, want %q", c, got, want[c])
		}
	}
}

func TestFeatureAt(t *testing.T) {
	l, _, err := ParseGeoJSON([]byte(buildings))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.PolygonFeatures) != 1 || l.PolygonFeatures[0] != 0 {
		t.Fatalf("polygon features = %v", l.PolygonFeatures)
	}
	if i, ok := l.FeatureAt(-80.2842, 27.4402); !ok || i != 0 {
		t.Errorf("inside building: got %d, %v", i, ok)
	}
	if _, ok := l.FeatureAt(-80.2848, 27.4408); ok {
		t.Error("point outside the triangle matched a building")
	}
}

func TestFeatureAt_NoAttributes(t *testing.T) {
	l, _, err := ParseGeoJSON([]byte(`{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,2],[0,0]]]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := l.FeatureAt(1.5, 0.5); ok {
		t.Error("bare geometry has no feature to report")
	}
}
