package stats

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/diceroller/internal/router"
	"github.com/abhisek/diceroller/internal/store"
)

type stubRepo struct {
	stats []store.DieStat
	err   error
}

func (r *stubRepo) AppendRoll(context.Context, store.RollEventData) error { return nil }
func (r *stubRepo) QueryRolls(context.Context, store.QueryOpts) ([]store.RollEventRecord, error) {
	return nil, nil
}
func (r *stubRepo) DieStats(context.Context) ([]store.DieStat, error) { return r.stats, r.err }

func load(t *testing.T, s *StatsScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
}

func TestStatsViewListsDice(t *testing.T) {
	s := New(&stubRepo{stats: []store.DieStat{
		{DieName: "d6", Sides: 6, Rolls: 3, Criticals: 1, Sum: 10, Faces: map[int]int{2: 2, 6: 1}},
		{DieName: "d20", Sides: 20, Rolls: 1, Sum: 5, Faces: map[int]int{5: 1}},
	}})

	assert.Contains(t, s.View(80, 30), "Loading")
	load(t, s)

	view := s.View(80, 30)
	assert.Contains(t, view, "d6")
	assert.Contains(t, view, "d20")
	assert.Contains(t, view, "3.33")
	assert.Contains(t, view, "3.50")
}

func TestStatsEmpty(t *testing.T) {
	s := New(&stubRepo{})
	load(t, s)
	assert.Contains(t, s.View(80, 30), "No rolls yet")
}

func TestStatsError(t *testing.T) {
	s := New(&stubRepo{err: errors.New("database is locked")})
	load(t, s)
	assert.Contains(t, s.View(80, 30), "database is locked")
}

func TestStatsNavigation(t *testing.T) {
	s := New(&stubRepo{stats: []store.DieStat{
		{DieName: "d2", Sides: 2, Faces: map[int]int{}},
		{DieName: "d4", Sides: 4, Faces: map[int]int{}},
	}})
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.selected)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestHistogramBuckets(t *testing.T) {
	faces := map[int]int{}
	for f := 1; f <= 100; f++ {
		faces[f] = 1
	}
	faces[100] = 5

	bars := histogram(store.DieStat{DieName: "d100", Sides: 100, Faces: faces}, 40)
	require.Len(t, bars, 10)
	assert.Equal(t, "1-10", bars[0].Label)
	assert.Equal(t, "91-100", bars[9].Label)
	assert.Equal(t, 10, bars[0].Count)
	assert.Equal(t, 14, bars[9].Count)
	assert.Equal(t, 14, bars[0].Max)

	small := histogram(store.DieStat{DieName: "d6", Sides: 6, Faces: map[int]int{3: 2}}, 40)
	require.Len(t, small, 6)
	assert.Equal(t, "3", small[2].Label)
	assert.Equal(t, 2, small[2].Count)
}
