package stats

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/diceroller/internal/router"
	"github.com/abhisek/diceroller/internal/screen"
	"github.com/abhisek/diceroller/internal/store"
	"github.com/abhisek/diceroller/internal/ui/components"
	"github.com/abhisek/diceroller/internal/ui/layout"
	"github.com/abhisek/diceroller/internal/ui/theme"
)

// maxBars caps the face histogram; larger dice are bucketed.
const maxBars = 10

type statsLoadedMsg struct {
	Stats []store.DieStat
	Err   error
}

// StatsScreen shows per-die totals for the session and a face histogram
// for the selected die.
type StatsScreen struct {
	repo     store.RollRepo
	stats    []store.DieStat
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen reading from repo.
func New(repo store.RollRepo) *StatsScreen {
	return &StatsScreen{repo: repo}
}

func (s *StatsScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		st, err := repo.DieStats(context.Background())
		return statsLoadedMsg{Stats: st, Err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Die"},
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.stats = msg.Stats
		s.selected = min(s.selected, max(len(s.stats)-1, 0))
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.stats)-1 {
				s.selected++
			}
		case "r":
			return s, s.Init()
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	center := func(text string, style lipgloss.Style) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}
	if s.errMsg != "" {
		return center("\n\nError: "+s.errMsg, lipgloss.NewStyle().Foreground(theme.Special))
	}
	if !s.loaded {
		return center("\n\nLoading stats...", lipgloss.NewStyle().Foreground(theme.TextDim))
	}
	if len(s.stats) == 0 {
		return center("\n\nNo rolls yet. Go roll something!", theme.Hint)
	}

	var b strings.Builder
	b.WriteString("\n")
	header := fmt.Sprintf("  %-6s %6s %6s %7s %7s", "die", "rolls", "crits", "mean", "fair")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(header)))
	b.WriteString("\n")

	for i, st := range s.stats {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Button).Bold(true)
		}
		line := fmt.Sprintf("%s%-6s %6d %6d %7.2f %7.2f",
			prefix, st.DieName, st.Rolls, st.Criticals, st.Mean(), st.ExpectedMean())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	barWidth := min(width-4, 48)
	for _, bar := range histogram(s.stats[s.selected], barWidth) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	return b.String()
}

// histogram buckets a die's faces into at most maxBars bars.
func histogram(st store.DieStat, width int) []components.FrequencyBar {
	bucket := (st.Sides + maxBars - 1) / maxBars
	bucket = max(bucket, 1)

	var bars []components.FrequencyBar
	for lo := 1; lo <= st.Sides; lo += bucket {
		hi := min(lo+bucket-1, st.Sides)
		count := 0
		for face := lo; face <= hi; face++ {
			count += st.Faces[face]
		}
		label := fmt.Sprint(lo)
		if hi > lo {
			label = fmt.Sprintf("%d-%d", lo, hi)
		}
		bars = append(bars, components.FrequencyBar{Label: label, Count: count, Width: width})
	}

	peak := slices.MaxFunc(bars, func(a, b components.FrequencyBar) int { return a.Count - b.Count }).Count
	for i := range bars {
		bars[i].Max = peak
	}
	return bars
}
