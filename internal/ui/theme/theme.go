package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — military field tones with a gold accent
var (
	Primary   = lipgloss.Color("#A3B18A") // Sage
	Secondary = lipgloss.Color("#588157") // Fern Green
	Accent    = lipgloss.Color("#D4A373") // Brass
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Warning   = lipgloss.Color("#FACC15") // Amber
	Text      = lipgloss.Color("#F5F5F4") // Off-White
	TextDim   = lipgloss.Color("#A8A29E") // Stone
	BgDark    = lipgloss.Color("#1C1917") // Near Black
	BgCard    = lipgloss.Color("#292524") // Dark Warm Gray
	Border    = lipgloss.Color("#44403C") // Warm Gray
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// Band colors the qualitative label for a match band or aptitude band.
func Band(label string) lipgloss.Style {
	switch label {
	case "excellent", "Outstanding", "Excellent":
		return lipgloss.NewStyle().Foreground(Success).Bold(true)
	case "good", "Above Average":
		return lipgloss.NewStyle().Foreground(Primary).Bold(true)
	case "fair", "Average":
		return lipgloss.NewStyle().Foreground(Warning)
	default:
		return lipgloss.NewStyle().Foreground(TextDim)
	}
}
