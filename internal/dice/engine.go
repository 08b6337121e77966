package dice

import (
	"fmt"
	"slices"
)

// RollLogEntry is one recorded roll in the session history.
type RollLogEntry struct {
	Seq      int
	DieName  string
	Value    int
	Critical bool
}

// Text returns the display form, e.g. "d6: 4".
func (e RollLogEntry) Text() string {
	return fmt.Sprintf("%s: %d", e.DieName, e.Value)
}

// Option configures an Engine.
type Option func(*Engine)

// WithHistory enables the roll history.
func WithHistory() Option {
	return func(e *Engine) {
		e.historyEnabled = true
	}
}

// Engine rolls dice against an injected Source and optionally keeps an
// append-only history of the session's rolls.
//
// An Engine is not safe for concurrent use; it is owned by the UI event loop.
type Engine struct {
	src            Source
	historyEnabled bool
	history        []RollLogEntry
	recorded       int
}

// NewEngine creates an Engine. A nil src falls back to NewRandomSource.
func NewEngine(src Source, opts ...Option) *Engine {
	if src == nil {
		src = NewRandomSource()
	}
	e := &Engine{src: src}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Roll draws a value uniformly from [1, sides]. sides must belong to the die
// set; anything else is a programming error and panics.
func (e *Engine) Roll(sides int) RollOutcome {
	d, ok := BySides(sides)
	if !ok {
		panic(fmt.Sprintf("dice: unsupported die with %d sides", sides))
	}
	return e.RollDie(d)
}

// RollDie rolls d. d must belong to the die set.
func (e *Engine) RollDie(d DieSpec) RollOutcome {
	if std, ok := BySides(d.Sides); !ok || std != d {
		panic(fmt.Sprintf("dice: unsupported die %v", d))
	}
	v := e.src.IntN(d.Sides) + 1
	return RollOutcome{
		Die:      d,
		Value:    v,
		Critical: v == d.Sides,
	}
}

// HistoryEnabled reports whether RecordRoll retains entries.
func (e *Engine) HistoryEnabled() bool {
	return e.historyEnabled
}

// RecordRoll builds the log entry for o and, when history is enabled,
// appends it. Entries are never deduplicated or capped.
func (e *Engine) RecordRoll(dieName string, o RollOutcome) RollLogEntry {
	e.recorded++
	entry := RollLogEntry{
		Seq:      e.recorded,
		DieName:  dieName,
		Value:    o.Value,
		Critical: o.Critical,
	}
	if e.historyEnabled {
		e.history = append(e.history, entry)
	}
	return entry
}

// History returns the recorded entries in insertion order.
func (e *Engine) History() []RollLogEntry {
	return slices.Clone(e.history)
}

// RecentFirst returns the recorded entries newest first.
func (e *Engine) RecentFirst() []RollLogEntry {
	out := slices.Clone(e.history)
	slices.Reverse(out)
	return out
}

// Len returns the number of retained entries.
func (e *Engine) Len() int {
	return len(e.history)
}
