package roller

import (
	"strconv"

	"charm.land/bubbles/v2/key"

	"github.com/abhisek/diceroller/internal/dice"
)

type keyMap struct {
	Dice       []key.Binding
	Left       key.Binding
	Right      key.Binding
	Roll       key.Binding
	Stats      key.Binding
	Log        key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Quit       key.Binding
}

func newKeyMap(set []dice.DieSpec) keyMap {
	km := keyMap{
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "Select")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←→", "Select")),
		Roll:       key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Roll")),
		Stats:      key.NewBinding(key.WithKeys("s"), key.WithHelp("S", "Stats")),
		Log:        key.NewBinding(key.WithKeys("t"), key.WithHelp("T", "Roll log")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "History")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑↓", "History")),
		PageUp:     key.NewBinding(key.WithKeys("pgup")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("Q", "Quit")),
	}
	for i, d := range set {
		hk := strconv.Itoa(i + 1)
		km.Dice = append(km.Dice, key.NewBinding(key.WithKeys(hk), key.WithHelp(hk, d.Name)))
	}
	return km
}
