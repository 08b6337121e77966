package effects

import "sync/atomic"

// HapticSink receives one pulse per roll.
type HapticSink interface {
	Pulse()
}

// HapticFunc adapts a function to HapticSink.
type HapticFunc func()

func (f HapticFunc) Pulse() { f() }

// PulseCounter is the terminal haptic sink: terminals have no vibration
// motor, so pulses are counted and the roller screen renders a visual nudge.
type PulseCounter struct {
	n atomic.Int64
}

func (c *PulseCounter) Pulse() { c.n.Add(1) }

// Count returns the number of pulses received.
func (c *PulseCounter) Count() int64 { return c.n.Load() }
