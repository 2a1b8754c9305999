package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary = lipgloss.Color("#F26B1D")
	colorAccent  = lipgloss.Color("#3858E9")
	colorSuccess = lipgloss.Color("#04B575")
	colorWarn    = lipgloss.Color("#E5A50A")
	colorError   = lipgloss.Color("#FF0000")
	colorSubtle  = lipgloss.Color("#888888")
)

var (
	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	// Header styling for setup sections
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorAccent).
			Padding(0, 1)

	// Error styling
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(colorWarn)

	// Success styling
	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	// Subtle text styling
	SubtleStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)
)
