package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — deep teal table, aqua dice, coral for results and criticals
var (
	Background = lipgloss.Color("#24474D") // Deep Teal
	Button     = lipgloss.Color("#00CCBF") // Aqua
	Text       = lipgloss.Color("#EBFFFF") // Ice White
	Special    = lipgloss.Color("#FF5E5C") // Coral
	TextDim    = lipgloss.Color("#8FB3B5") // Sea Gray
	BgCard     = lipgloss.Color("#1A3538") // Dark Teal
	Border     = lipgloss.Color("#3D6B70") // Slate Teal
)

// Flash is the background color shown on the highlight steps of a critical.
var Flash = Special

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Align(lipgloss.Center)

	Result = lipgloss.NewStyle().
		Bold(true).
		Foreground(Special)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// Dice buttons
var (
	DieButton = lipgloss.NewStyle().
			Background(Button).
			Foreground(Text).
			Bold(true).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Button)

	DieButtonSelected = DieButton.
				BorderForeground(Text)

	DieButtonPressed = DieButton.
				Background(Special).
				BorderForeground(Special)
)

// History entries
var (
	HistoryEntry = lipgloss.NewStyle().
			Foreground(Text)

	HistoryCritical = lipgloss.NewStyle().
			Foreground(Special).
			Bold(true)
)

// Frequency bars
var (
	BarFilled = lipgloss.NewStyle().
			Background(Button)

	BarEmpty = lipgloss.NewStyle().
			Background(Border)
)
