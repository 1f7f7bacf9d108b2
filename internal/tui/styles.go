package tui

import (
	"github.com/charmbracelet/lipgloss"

	"geodash/internal/attrs"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	shapeFg   = lipgloss.Color("#22C55E")
	hoverFg   = lipgloss.Color("#FFA500")
	borderCol = lipgloss.Color("#243141")
	inkFg     = lipgloss.Color("#0B0F14")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)

	pathStyle  = lipgloss.NewStyle().Foreground(accentFg)
	shapeStyle = lipgloss.NewStyle().Foreground(shapeFg)
	hoverStyle = lipgloss.NewStyle().Foreground(hoverFg)

	cellStyle        = lipgloss.NewStyle().Padding(0, 1)
	headerCellStyle  = cellStyle.Bold(true).Foreground(accentFg)
	selectedColStyle = cellStyle.Background(lipgloss.Color(attrs.HighlightColor)).Foreground(inkFg)
	selectedRowStyle = cellStyle.Foreground(shapeFg)
)
