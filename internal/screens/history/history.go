package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/diceroller/internal/dice"
	"github.com/abhisek/diceroller/internal/router"
	"github.com/abhisek/diceroller/internal/screen"
	"github.com/abhisek/diceroller/internal/store"
	"github.com/abhisek/diceroller/internal/ui/layout"
	"github.com/abhisek/diceroller/internal/ui/theme"
)

// pageSize caps how many events one load pulls from the store.
const pageSize = 200

type historyLoadedMsg struct {
	Filter string
	Events []store.RollEventRecord
	Err    error
}

// HistoryScreen lists the session's stored roll events, newest first, with
// timestamps and an optional die filter.
type HistoryScreen struct {
	repo     store.RollRepo
	filters  []string // "" then every die name
	filter   int
	events   []store.RollEventRecord
	selected int
	offset   int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen reading from repo.
func New(repo store.RollRepo) *HistoryScreen {
	return &HistoryScreen{
		repo:    repo,
		filters: append([]string{""}, dice.Names()...),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo, filter := s.repo, s.filters[s.filter]
	return func() tea.Msg {
		events, err := repo.QueryRolls(context.Background(), store.QueryOpts{
			Limit:   pageSize,
			DieName: filter,
		})
		return historyLoadedMsg{Filter: filter, Events: events, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Roll Log"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		// A reply for a filter the user has already cycled past is stale.
		if msg.Filter != s.filters[s.filter] {
			return s, nil
		}
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.events = msg.Events
		s.selected, s.offset = 0, 0
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
			if s.selected < len(s.events)-1 {
				s.selected++
			}
		case "tab":
			s.filter = (s.filter + 1) % len(s.filters)
			s.loaded = false
			return s, s.Init()
		case "shift+tab":
			s.filter = (s.filter + len(s.filters) - 1) % len(s.filters)
			s.loaded = false
			return s, s.Init()
		}
	}
	return s, nil
}

// Filter returns the active die filter, or "" for all dice.
func (s *HistoryScreen) Filter() string {
	return s.filters[s.filter]
}

func (s *HistoryScreen) View(width, height int) string {
	filterName := "all dice"
	if f := s.Filter(); f != "" {
		filterName = f
	}
	header := lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(fmt.Sprintf("showing %s", filterName)))

	centered := func(text string, style lipgloss.Style) string {
		return header + "\n" + style.Width(width).Align(lipgloss.Center).Render(text)
	}
	if s.errMsg != "" {
		return centered("\nError: "+s.errMsg, lipgloss.NewStyle().Foreground(theme.Special))
	}
	if !s.loaded {
		return centered("\nLoading rolls...", lipgloss.NewStyle().Foreground(theme.TextDim))
	}
	if len(s.events) == 0 {
		return centered("\nNo rolls yet.", theme.Hint)
	}

	rows := max(height-2, 1)
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+rows {
		s.offset = s.selected - rows + 1
	}
	end := min(s.offset+rows, len(s.events))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for i := s.offset; i < end; i++ {
		ev := s.events[i]
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s#%-4d %s  %s: %d",
			prefix, ev.Sequence, ev.RolledAt.Local().Format("15:04:05.000"), ev.DieName, ev.Value)

		style := theme.HistoryEntry
		if ev.Critical {
			line += "  critical"
			style = theme.HistoryCritical
		}
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
