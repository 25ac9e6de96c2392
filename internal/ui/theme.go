package ui

import "github.com/charmbracelet/lipgloss"

// wayfind's color palette: sea blues and trail greens.
var (
	Teal   = lipgloss.Color("#2DD4BF")
	Sky    = lipgloss.Color("#38BDF8")
	Moss   = lipgloss.Color("#84CC16")
	Sand   = lipgloss.Color("#FBBF24")
	Coral  = lipgloss.Color("#FB7185")
	Dim    = lipgloss.Color("#666666")
	Bright = lipgloss.Color("#FFFFFF")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	Success = lipgloss.NewStyle().
		Foreground(Moss)

	Error = lipgloss.NewStyle().
		Foreground(Coral)

	Warning = lipgloss.NewStyle().
		Foreground(Sand)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Sky).
		Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)
)

// Icon constants.
const (
	IconCompass = "🧭 "
	IconPin     = "📍 "
	IconOk      = "✓ "
	IconWarn    = "⚠ "
	IconError   = "✗ "
	IconArrow   = "→"
)
