package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"geodash/internal/config"
	"geodash/internal/logging"
	"geodash/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if len(os.Args) > 1 {
		cfg.Data.Path = os.Args[1]
	}

	// the terminal belongs to the UI, so logs go to a file
	f, err := tea.LogToFile(cfg.Log.File, "")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format, f)
	logger.Info("starting geodash", "data", cfg.Data.Path, "zoom", cfg.Map.Zoom, "tolerance", cfg.Draw.Tolerance)

	m := tui.New(tui.Options{
		CenterLat:   cfg.Map.CenterLat,
		CenterLon:   cfg.Map.CenterLon,
		Zoom:        cfg.Map.Zoom,
		Tolerance:   cfg.Draw.Tolerance,
		DataPath:    cfg.Data.Path,
		ExportPath:  cfg.Export.Path,
		LegendTitle: cfg.Legend.Title,
		Logger:      logger,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		logger.Error("program exited", "err", err)
		log.Fatal(err)
	}
}
