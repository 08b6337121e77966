package roller

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/diceroller/internal/dice"
	"github.com/abhisek/diceroller/internal/effects"
	"github.com/abhisek/diceroller/internal/router"
	"github.com/abhisek/diceroller/internal/screen"
	"github.com/abhisek/diceroller/internal/store"
	"github.com/abhisek/diceroller/internal/ui/layout"
)

const (
	pressDuration = 100 * time.Millisecond
	idleLabel     = "Let's Roll"
	perRow        = 4
)

// Options holds the roller's collaborators. Only Engine is required.
type Options struct {
	Engine        *dice.Engine
	Dispatcher    *effects.Dispatcher
	RollRepo      store.RollRepo
	SessionID     string
	Logger        zerolog.Logger
	FlashInterval time.Duration

	// StatsFactory and LogFactory build the stats and roll log screens;
	// nil disables the matching key.
	StatsFactory func() screen.Screen
	LogFactory   func() screen.Screen
}

// RollerScreen is the dice screen: eight die buttons, the last result, and
// the optional roll history.
type RollerScreen struct {
	engine        *dice.Engine
	dispatcher    *effects.Dispatcher
	repo          store.RollRepo
	sessionID     string
	log           zerolog.Logger
	flashInterval time.Duration
	statsFactory  func() screen.Screen
	logFactory    func() screen.Screen

	set      []dice.DieSpec
	keys     keyMap
	selected int
	label    string
	last     *dice.RollOutcome
	pressed  bool
	flash    dice.FlashColor
	status   layout.Status
	history  viewport.Model
}

var _ screen.Screen = (*RollerScreen)(nil)
var _ screen.KeyHintProvider = (*RollerScreen)(nil)
var _ screen.StatusProvider = (*RollerScreen)(nil)

// New creates a RollerScreen.
func New(opts Options) *RollerScreen {
	set := dice.All()
	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		dispatcher = effects.NewDispatcher(nil, nil, opts.Logger)
	}
	return &RollerScreen{
		engine:        opts.Engine,
		dispatcher:    dispatcher,
		repo:          opts.RollRepo,
		sessionID:     opts.SessionID,
		log:           opts.Logger,
		flashInterval: opts.FlashInterval,
		statsFactory:  opts.StatsFactory,
		logFactory:    opts.LogFactory,
		set:           set,
		keys:          newKeyMap(set),
		label:         idleLabel,
		history:       viewport.New(viewport.WithWidth(historyWidth), viewport.WithHeight(historyMinHeight)),
	}
}

func (s *RollerScreen) Init() tea.Cmd {
	return nil
}

func (s *RollerScreen) Title() string {
	return "Roll"
}

func (s *RollerScreen) Status() layout.Status {
	return s.status
}

func (s *RollerScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "1-8", Description: "Roll"},
		{Key: "←→", Description: "Select"},
		{Key: "Enter", Description: "Roll selected"},
	}
	if s.engine.HistoryEnabled() {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "History"})
	}
	if s.statsFactory != nil {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Stats"})
	}
	if s.logFactory != nil {
		hints = append(hints, layout.KeyHint{Key: "T", Description: "Roll log"})
	}
	return append(hints, layout.KeyHint{Key: "Q", Description: "Quit"})
}

func (s *RollerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resizeHistory(msg.Width, msg.Height)
		return s, nil

	case pressReleaseMsg:
		s.pressed = false
		return s, nil

	case flashMsg:
		s.flash = msg.Color
		return s, nil

	case rollSavedMsg:
		if msg.Err != nil {
			s.log.Warn().Err(msg.Err).Msg("persist roll event")
		}
		return s, nil

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)

	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		s.history, cmd = s.history.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *RollerScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	for i, b := range s.keys.Dice {
		if key.Matches(msg, b) {
			return s.roll(i)
		}
	}

	switch {
	case key.Matches(msg, s.keys.Roll):
		return s.roll(s.selected)
	case key.Matches(msg, s.keys.Left):
		s.selected = (s.selected + len(s.set) - 1) % len(s.set)
	case key.Matches(msg, s.keys.Right):
		s.selected = (s.selected + 1) % len(s.set)
	case key.Matches(msg, s.keys.ScrollUp):
		s.history.ScrollUp(1)
	case key.Matches(msg, s.keys.ScrollDown):
		s.history.ScrollDown(1)
	case key.Matches(msg, s.keys.PageUp):
		s.history.ScrollUp(s.history.Height())
	case key.Matches(msg, s.keys.PageDown):
		s.history.ScrollDown(s.history.Height())
	case key.Matches(msg, s.keys.Stats):
		return push(s.statsFactory)
	case key.Matches(msg, s.keys.Log):
		return push(s.logFactory)
	case key.Matches(msg, s.keys.Quit):
		return tea.Quit
	}
	return nil
}

func push(factory func() screen.Screen) tea.Cmd {
	if factory == nil {
		return nil
	}
	next := factory()
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

// roll rolls die i and schedules every presentation effect. Effects of
// earlier rolls are not cancelled; their flash steps interleave freely.
func (s *RollerScreen) roll(i int) tea.Cmd {
	die := s.set[i]
	s.selected = i
	s.label = die.Name

	outcome := s.engine.RollDie(die)
	s.last = &outcome
	s.status.Rolls++
	if outcome.Critical {
		s.status.Criticals++
	}

	s.log.Debug().
		Str("die", die.Name).
		Int("value", outcome.Value).
		Bool("critical", outcome.Critical).
		Msg("roll")

	entry := s.engine.RecordRoll(die.Name, outcome)
	if s.engine.HistoryEnabled() {
		s.refreshHistory()
	}

	s.pressed = true
	cmds := []tea.Cmd{
		tea.Tick(pressDuration, func(time.Time) tea.Msg { return pressReleaseMsg{} }),
		s.fireEffects(outcome),
		s.persist(entry, die),
	}
	if outcome.Critical {
		for _, step := range dice.FlashSequence(s.flashInterval) {
			color := step.Color
			cmds = append(cmds, tea.Tick(step.Delay, func(time.Time) tea.Msg {
				return flashMsg{Color: color}
			}))
		}
	}
	return tea.Batch(cmds...)
}

func (s *RollerScreen) fireEffects(o dice.RollOutcome) tea.Cmd {
	d := s.dispatcher
	return func() tea.Msg {
		d.Fire(context.Background(), o)
		return nil
	}
}

func (s *RollerScreen) persist(entry dice.RollLogEntry, die dice.DieSpec) tea.Cmd {
	if s.repo == nil {
		return nil
	}
	repo, sessionID := s.repo, s.sessionID
	data := store.RollEventData{
		SessionID: sessionID,
		DieName:   entry.DieName,
		Sides:     die.Sides,
		Value:     entry.Value,
		Critical:  entry.Critical,
		RolledAt:  time.Now(),
	}
	return func() tea.Msg {
		return rollSavedMsg{Err: repo.AppendRoll(context.Background(), data)}
	}
}
