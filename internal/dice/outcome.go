package dice

import "time"

// EffectToken names the audio effect selected for a roll.
type EffectToken string

const (
	EffectRoll     EffectToken = "dice-roll"
	EffectCritical EffectToken = "thunder-melody"
)

// RollOutcome is the result of a single roll.
type RollOutcome struct {
	Die      DieSpec
	Value    int
	Critical bool
}

// Effect returns the audio token for the outcome.
func (o RollOutcome) Effect() EffectToken {
	if o.Critical {
		return EffectCritical
	}
	return EffectRoll
}

// Flash returns the background flash plan for the outcome, using the default
// step interval. Non-critical outcomes have no flash.
func (o RollOutcome) Flash() []FlashStep {
	if !o.Critical {
		return nil
	}
	return FlashSequence(FlashInterval)
}

// FlashColor is the background color a flash step switches to.
type FlashColor int

const (
	FlashBase FlashColor = iota
	FlashHighlight
)

func (c FlashColor) String() string {
	switch c {
	case FlashHighlight:
		return "highlight"
	default:
		return "base"
	}
}

// FlashInterval is the default spacing between flash steps.
const FlashInterval = 100 * time.Millisecond

// FlashStep is one background color change, Delay after the roll.
type FlashStep struct {
	Delay time.Duration
	Color FlashColor
}

// FlashSequence returns the four-step highlight/base alternation, spaced by
// interval. A non-positive interval falls back to FlashInterval.
func FlashSequence(interval time.Duration) []FlashStep {
	if interval <= 0 {
		interval = FlashInterval
	}
	colors := []FlashColor{FlashHighlight, FlashBase, FlashHighlight, FlashBase}
	steps := make([]FlashStep, len(colors))
	for i, c := range colors {
		steps[i] = FlashStep{Delay: time.Duration(i) * interval, Color: c}
	}
	return steps
}
