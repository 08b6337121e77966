package roller

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/diceroller/internal/dice"
	"github.com/abhisek/diceroller/internal/ui/components"
	"github.com/abhisek/diceroller/internal/ui/layout"
	"github.com/abhisek/diceroller/internal/ui/theme"
)

const (
	historyWidth     = 28
	historyMinHeight = 3
	buttonWidth      = 10
	chromeHeight     = 6 // app header + footer
)

func (s *RollerScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height + chromeHeight)

	var sections []string
	sections = append(sections, theme.Title.Render(s.label))
	sections = append(sections, s.renderResult(compact))
	sections = append(sections, s.renderButtons())
	if s.engine.HistoryEnabled() {
		sections = append(sections, s.renderHistory())
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Background(s.background()).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *RollerScreen) background() color.Color {
	if s.flash == dice.FlashHighlight {
		return theme.Flash
	}
	return theme.Background
}

func (s *RollerScreen) renderResult(compact bool) string {
	if s.last == nil {
		// Keep the layout stable before the first roll.
		if compact {
			return "\n"
		}
		return strings.Repeat("\n", glyphRows+1)
	}
	style := theme.Result
	if s.flash == dice.FlashHighlight {
		style = style.Foreground(theme.Text)
	}
	if compact {
		return "\n" + style.Render(strconv.Itoa(s.last.Value))
	}
	return "\n" + style.Render(bigNumber(s.last.Value)) + "\n"
}

func (s *RollerScreen) renderButtons() string {
	buttons := make([]components.DieButton, len(s.set))
	for i, d := range s.set {
		buttons[i] = components.DieButton{
			Label:    d.Name,
			Hotkey:   strconv.Itoa(i + 1),
			Selected: i == s.selected,
			Pressed:  s.pressed && i == s.selected,
			Width:    buttonWidth,
		}
	}
	return "\n" + components.ButtonGrid(buttons, perRow, 1)
}

func (s *RollerScreen) renderHistory() string {
	title := theme.Hint.Render(fmt.Sprintf("History (%d)", s.engine.Len()))
	body := s.history.View()
	if s.engine.Len() == 0 {
		body = theme.Hint.Render("No rolls yet")
	}
	return "\n" + theme.Card.Width(historyWidth+4).Render(title+"\n"+body)
}

// refreshHistory rebuilds the history viewport, newest entry on top.
func (s *RollerScreen) refreshHistory() {
	entries := s.engine.RecentFirst()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = historyLine(e)
	}
	s.history.SetContent(strings.Join(lines, "\n"))
	s.history.GotoTop()
}

func historyLine(e dice.RollLogEntry) string {
	text := fmt.Sprintf("%3d  %s", e.Seq, e.Text())
	if e.Critical {
		return theme.HistoryCritical.Render(text + "  ✦")
	}
	return theme.HistoryEntry.Render(text)
}

// resizeHistory gives the viewport whatever height the terminal leaves
// after the label, result and buttons.
func (s *RollerScreen) resizeHistory(termWidth, termHeight int) {
	contentHeight := termHeight - chromeHeight
	used := 1 + 1 + 6 + 1 + 3 // label, spacer, buttons, spacer, card chrome
	if !layout.IsCompactHeight(termHeight) {
		used += glyphRows + 1
	} else {
		used++
	}
	s.history.SetHeight(max(contentHeight-used, historyMinHeight))
	s.history.SetWidth(min(historyWidth, max(termWidth-8, 10)))
}
