package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/diceroller/internal/config"
	"github.com/abhisek/diceroller/internal/dice"
	"github.com/abhisek/diceroller/internal/effects"
	"github.com/abhisek/diceroller/internal/router"
	"github.com/abhisek/diceroller/internal/screen"
	"github.com/abhisek/diceroller/internal/screens/history"
	"github.com/abhisek/diceroller/internal/screens/roller"
	"github.com/abhisek/diceroller/internal/screens/stats"
	"github.com/abhisek/diceroller/internal/screens/welcome"
	"github.com/abhisek/diceroller/internal/store"
	"github.com/abhisek/diceroller/internal/ui/layout"
)

// Options holds the dependencies the TUI needs.
type Options struct {
	Config     config.Config
	Engine     *dice.Engine
	Dispatcher *effects.Dispatcher
	RollRepo   store.RollRepo
	SessionID  string
	Logger     zerolog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel builds the screen stack: the splash (when enabled) on top of
// nothing, replaced by the roller once it finishes.
func newAppModel(opts Options) AppModel {
	rollerFactory := func() screen.Screen {
		ro := roller.Options{
			Engine:        opts.Engine,
			Dispatcher:    opts.Dispatcher,
			RollRepo:      opts.RollRepo,
			SessionID:     opts.SessionID,
			Logger:        opts.Logger,
			FlashInterval: opts.Config.FlashInterval,
		}
		if opts.RollRepo != nil {
			ro.StatsFactory = func() screen.Screen { return stats.New(opts.RollRepo) }
			ro.LogFactory = func() screen.Screen { return history.New(opts.RollRepo) }
		}
		return roller.New(ro)
	}

	var first screen.Screen
	if opts.Config.Splash {
		first = welcome.New(rollerFactory)
	} else {
		first = rollerFactory()
	}
	return AppModel{router: router.New(first)}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(m.contentSize())

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PushScreenMsg, router.ReplaceScreenMsg:
		// Newly opened screens have not seen the terminal size yet.
		cmd := m.router.Update(msg)
		if m.width == 0 {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.router.Update(m.contentSize()))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// contentSize is the area between header and footer, which is what screens
// render into.
func (m AppModel) contentSize() tea.WindowSizeMsg {
	header, footer := m.chrome()
	return tea.WindowSizeMsg{
		Width:  m.width,
		Height: layout.ContentHeight(header, footer, m.height),
	}
}

func (m AppModel) chrome() (header, footer string) {
	active := m.router.Active()
	title := ""
	var status layout.Status
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}
	header = layout.RenderHeader(title, status, m.width)

	var hints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	}
	if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer = layout.RenderFooter(hints, m.width)
	return header, footer
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header, footer := m.chrome()
	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		opts.Logger.Error().Err(err).Msg("program exited with error")
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
