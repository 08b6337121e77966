package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/diceroller/internal/ui/theme"
)

// FrequencyBar displays how often a face (or bucket of faces) came up.
type FrequencyBar struct {
	Label string
	Count int
	Max   int // count that fills the bar
	Width int
}

// View renders the bar as "label ▕████····▏ count".
func (f FrequencyBar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Width(8).Render(f.Label)
	count := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" %d", f.Count))

	barWidth := max(f.Width-lipgloss.Width(label)-lipgloss.Width(count), 4)

	filled := 0
	if f.Max > 0 {
		filled = f.Count * barWidth / f.Max
	}
	filled = min(max(filled, 0), barWidth)

	return label +
		theme.BarFilled.Render(strings.Repeat(" ", filled)) +
		theme.BarEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		count
}
