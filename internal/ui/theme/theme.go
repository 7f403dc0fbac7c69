package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — emerald and gold on deep green
var (
	Primary   = lipgloss.Color("#047857") // Emerald 700
	Secondary = lipgloss.Color("#34D399") // Emerald 400
	Accent    = lipgloss.Color("#D4AF37") // Gold
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#022C22") // Emerald 950
	BgCard    = lipgloss.Color("#064E3B") // Emerald 900
	Border    = lipgloss.Color("#065F46") // Emerald 800
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Gold = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(TextDim).
			Strikethrough(true)

	Valid = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Invalid = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Caution = lipgloss.NewStyle().
		Foreground(Warning).
		Italic(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	TabActive = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true)

	TabInactive = lipgloss.NewStyle().
			Foreground(TextDim)
)
