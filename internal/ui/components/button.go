package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/diceroller/internal/ui/theme"
)

// DieButton renders one die key: its hotkey and name.
type DieButton struct {
	Label    string
	Hotkey   string
	Selected bool
	Pressed  bool
	Width    int
}

// View renders the button.
func (b DieButton) View() string {
	style := theme.DieButton
	switch {
	case b.Pressed:
		style = theme.DieButtonPressed
	case b.Selected:
		style = theme.DieButtonSelected
	}
	if b.Width > 2 {
		style = style.Width(b.Width)
	}

	hotkey := lipgloss.NewStyle().Foreground(theme.BgCard).Render(b.Hotkey)
	return style.Render(hotkey + " " + b.Label)
}

// ButtonGrid lays buttons out in rows of perRow, separated by gap columns.
func ButtonGrid(buttons []DieButton, perRow, gap int) string {
	if perRow <= 0 {
		perRow = len(buttons)
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	var rows []string
	for start := 0; start < len(buttons); start += perRow {
		end := min(start+perRow, len(buttons))
		cells := make([]string, 0, 2*(end-start))
		for i, b := range buttons[start:end] {
			if i > 0 {
				cells = append(cells, spacer)
			}
			cells = append(cells, b.View())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
