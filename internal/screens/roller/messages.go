package roller

import "github.com/abhisek/diceroller/internal/dice"

// pressReleaseMsg ends the button press animation.
type pressReleaseMsg struct{}

// flashMsg switches the background for one step of a critical flash.
type flashMsg struct {
	Color dice.FlashColor
}

// rollSavedMsg reports the outcome of persisting a roll event.
type rollSavedMsg struct {
	Err error
}
