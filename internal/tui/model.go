package tui

import (
	"fmt"
	"log/slog"
	"path/filepath"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geodash/internal/attrs"
	"geodash/internal/draw"
	"geodash/internal/geom"
)

type page int

const (
	mapPage page = iota
	tablePage
)

// Options configure a new dashboard.
type Options struct {
	CenterLat   float64
	CenterLon   float64
	Zoom        float64 // web-map zoom level used when no data layer is loaded
	Tolerance   float64 // closure tolerance, squared degrees
	DataPath    string
	ExportPath  string
	LegendTitle string
	Logger      *slog.Logger
}

type Model struct {
	width  int
	height int

	page        page
	helpVisible bool
	showLegend  bool
	showSidebar bool

	log *slog.Logger

	// viewport
	center  [2]float64 // lon, lat
	mapZoom float64
	bbox    geom.BBox
	zoom    float64
	offsetX int
	offsetY int

	status string

	// data layer
	dataPath string
	layer    geom.Layer

	// drawing
	tracker    draw.Tracker
	drawing    draw.State
	exportPath string

	legendTitle string

	// layer visibility
	showPoints  bool
	showLines   bool
	showPolys   bool
	showDrawing bool

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// attributes page
	table     attrs.Table
	sel       attrs.Selection
	cursorRow int
	cursorCol int
	l         list.Model
}

func New(opts Options) Model {
	m := Model{
		helpVisible: true,
		showLegend:  true,
		log:         opts.Logger,
		center:      [2]float64{opts.CenterLon, opts.CenterLat},
		mapZoom:     opts.Zoom,
		zoom:        1.0,
		status:      "geodash ready  click the map to draw",
		exportPath:  opts.ExportPath,
		legendTitle: opts.LegendTitle,
		showPoints:  true,
		showLines:   true,
		showPolys:   true,
		showDrawing: true,
	}
	if m.log == nil {
		m.log = slog.Default()
	}
	tr, err := draw.NewTracker(opts.Tolerance)
	if err != nil {
		tr = draw.Tracker{Tolerance: draw.DefaultTolerance}
		m.status = fmt.Sprintf("tolerance %v rejected, using %v", opts.Tolerance, draw.DefaultTolerance)
		m.log.Warn("invalid closure tolerance", "tolerance", opts.Tolerance, "err", err)
	}
	m.tracker = tr
	if m.legendTitle == "" {
		m.legendTitle = "Legend"
	}
	// column picker
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Columns"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	if opts.DataPath != "" {
		m.loadPath(opts.DataPath)
	}
	m.refit()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Drawing returns the current drawing state.
func (m Model) Drawing() draw.State { return m.drawing }

// loadPath loads a data layer and its attribute table.
func (m *Model) loadPath(p string) {
	l, recs, err := geom.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.log.Error("load data layer", "path", p, "err", err)
		return
	}
	m.dataPath = p
	m.layer = l
	m.table = attrs.New(recs.Columns, recs.Rows)
	m.sel = m.sel.Prune(m.table)
	m.cursorRow, m.cursorCol = 0, 0
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	// prefer polys > lines > points for visibility
	m.showPolys = len(l.Polygons) > 0
	m.showLines = len(l.Lines) > 0 && !m.showPolys
	m.showPoints = len(l.Points) > 0 && !m.showPolys
	m.refreshColumns()
	m.status = "loaded: " + filepath.Base(p) +
		fmt.Sprintf("  counts: pts=%d ls=%d poly=%d", len(l.Points), len(l.Lines), len(l.Polygons))
	m.log.Info("data layer loaded", "path", p, "points", len(l.Points), "lines", len(l.Lines),
		"polygons", len(l.Polygons), "rows", len(m.table.Rows))
}
