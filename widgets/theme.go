package widgets

import "github.com/charmbracelet/lipgloss"

// Palette shared by the widgets, the tab header and the demo screen.
var (
	ColorText     lipgloss.Color = "#cdd6f4"
	ColorMuted    lipgloss.Color = "#a6adc8"
	ColorSubtle   lipgloss.Color = "#6c7086"
	ColorBorder   lipgloss.Color = "#45475a"
	ColorBg       lipgloss.Color = "#1e1e2e"
	ColorAccent   lipgloss.Color = "#89b4fa"
	ColorSuccess  lipgloss.Color = "#a6e3a1"
	ColorWarn     lipgloss.Color = "#f9e2af"
	ColorMauve    lipgloss.Color = "#cba6f7"
	ColorSurface1 lipgloss.Color = "#313244"
)
