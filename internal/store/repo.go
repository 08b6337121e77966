package store

import (
	"context"
	"time"
)

// QueryOpts configures roll queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	After   int64  // sequence > After
	DieName string // only this die ("" = all)
}

// RollEventData captures a single roll.
type RollEventData struct {
	SessionID string
	DieName   string
	Sides     int
	Value     int
	Critical  bool
	RolledAt  time.Time // zero means now
}

// RollEventRecord is a stored roll with its sequence number.
type RollEventRecord struct {
	Sequence int64
	RollEventData
}

// DieStat aggregates the rolls made with one die.
type DieStat struct {
	DieName   string
	Sides     int
	Rolls     int
	Criticals int
	Sum       int
	Faces     map[int]int // face value → count
}

// Mean returns the average rolled value, or 0 with no rolls.
func (s DieStat) Mean() float64 {
	if s.Rolls == 0 {
		return 0
	}
	return float64(s.Sum) / float64(s.Rolls)
}

// ExpectedMean returns the mean of a fair die with s.Sides sides.
func (s DieStat) ExpectedMean() float64 {
	return float64(s.Sides+1) / 2
}

// RollRepo provides append and query access to roll events.
type RollRepo interface {
	// AppendRoll records a roll event.
	AppendRoll(ctx context.Context, data RollEventData) error

	// QueryRolls returns roll events newest first.
	QueryRolls(ctx context.Context, opts QueryOpts) ([]RollEventRecord, error)

	// DieStats aggregates rolls per die, ordered by side count.
	DieStats(ctx context.Context) ([]DieStat, error)
}
