package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kuku/internal/drill"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// danColors gives each multiplication row its own color.
var danColors = map[drill.ColorKey]color.Color{
	drill.ColorRed:         lipgloss.Color("#E53935"),
	drill.ColorOrange:      lipgloss.Color("#FB8C00"),
	drill.ColorYellow:      lipgloss.Color("#FDD835"),
	drill.ColorYellowGreen: lipgloss.Color("#C0CA33"),
	drill.ColorGreen:       lipgloss.Color("#43A047"),
	drill.ColorCyan:        lipgloss.Color("#26C6DA"),
	drill.ColorBlue:        lipgloss.Color("#1E88E5"),
	drill.ColorPurple:      lipgloss.Color("#8E24AA"),
	drill.ColorPink:        lipgloss.Color("#EC407A"),
}

// DanColor returns the row color for k, or Text for an unknown key.
func DanColor(k drill.ColorKey) color.Color {
	if c, ok := danColors[k]; ok {
		return c
	}
	return Text
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
