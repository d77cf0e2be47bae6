package ui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases
const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorOverlay0
)

var (
	tabStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Padding(0, 2)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorAccent).
			Bold(true).
			Padding(0, 2)

	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1)

	formBoxActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorFocus)

	submissionTitleStyle = lipgloss.NewStyle().
				Foreground(colorTeal).
				Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorText)

	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	paletteBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMauve).
			Padding(0, 1)
)
