package effects

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/abhisek/diceroller/internal/dice"
)

// Dispatcher fans a roll outcome out to the audio and haptic sinks.
// Sink failures are logged and swallowed; they never affect the roll.
type Dispatcher struct {
	audio  AudioSink
	haptic HapticSink
	log    zerolog.Logger
}

// NewDispatcher creates a Dispatcher. Nil sinks are replaced by no-ops.
func NewDispatcher(audio AudioSink, haptic HapticSink, log zerolog.Logger) *Dispatcher {
	if audio == nil {
		audio = Silent{}
	}
	if haptic == nil {
		haptic = HapticFunc(func() {})
	}
	return &Dispatcher{audio: audio, haptic: haptic, log: log}
}

// Fire plays the outcome's effect token and pulses the haptic sink.
func (d *Dispatcher) Fire(ctx context.Context, o dice.RollOutcome) {
	d.haptic.Pulse()

	token := o.Effect()
	if err := d.audio.Play(ctx, token); err != nil {
		d.log.Warn().
			Err(err).
			Str("token", string(token)).
			Str("die", o.Die.Name).
			Msg("audio effect failed")
	}
}
