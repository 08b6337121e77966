package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/diceroller/internal/router"
	"github.com/abhisek/diceroller/internal/screen"
	"github.com/abhisek/diceroller/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 300 * time.Millisecond
	phase2End    = 900 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

// Tumbling die faces shown while the splash plays.
var dieFrames = []string{
	"╭───────╮\n│ ●     │\n│       │\n│     ● │\n╰───────╯",
	"╭───────╮\n│ ●     │\n│   ●   │\n│     ● │\n╰───────╯",
	"╭───────╮\n│ ●   ● │\n│       │\n│ ●   ● │\n╰───────╯",
	"╭───────╮\n│ ●   ● │\n│   ●   │\n│ ●   ● │\n╰───────╯",
	"╭───────╮\n│ ●   ● │\n│ ●   ● │\n│ ●   ● │\n╰───────╯",
	"╭───────╮\n│       │\n│   ●   │\n│       │\n╰───────╯",
}

type tickMsg time.Time

// WelcomeScreen plays a short splash, then replaces itself with the roller.
// Any key skips ahead.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that hands over to the screen built by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		w.tickCount++
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	// The die tumbles until phase 2, then settles on a six.
	frame := dieFrames[len(dieFrames)-2]
	if w.elapsed < phase2End {
		frame = dieFrames[w.tickCount%len(dieFrames)]
	}
	dieStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if w.elapsed >= phase1End && w.elapsed < phase2End {
		dieStyle = dieStyle.Foreground(theme.Special)
	}
	sections = append(sections, dieStyle.Render(frame))

	if w.elapsed >= phase2End {
		sections = append(sections, RenderBanner(width), "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Let's Roll")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key")
		sections = append(sections, tagline, "", hint)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.NewStyle().
		Background(theme.Background).
		Render(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n")))
}
