package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestButtonGridRows(t *testing.T) {
	var buttons []DieButton
	for _, name := range []string{"d2", "d4", "d6", "d8", "d10", "d12", "d20", "d100"} {
		buttons = append(buttons, DieButton{Label: name, Hotkey: "1", Width: 10})
	}
	grid := ButtonGrid(buttons, 4, 1)

	// Two rows of bordered buttons, three lines each.
	if h := lipgloss.Height(grid); h != 6 {
		t.Errorf("grid height = %d, want 6", h)
	}
	for _, name := range []string{"d2", "d8", "d10", "d100"} {
		if !strings.Contains(grid, name) {
			t.Errorf("grid missing %s", name)
		}
	}
}

func TestFrequencyBarWidth(t *testing.T) {
	tests := []struct {
		count, max int
	}{
		{0, 10},
		{5, 10},
		{10, 10},
		{15, 10},
		{3, 0},
	}
	for _, tt := range tests {
		bar := FrequencyBar{Label: "1", Count: tt.count, Max: tt.max, Width: 40}
		if w := lipgloss.Width(bar.View()); w != 40 {
			t.Errorf("count %d/%d: width = %d, want 40", tt.count, tt.max, w)
		}
	}
}
