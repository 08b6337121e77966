package dice

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource returns a scripted sequence of IntN results.
type fixedSource struct {
	vals []int
	i    int
}

func (f *fixedSource) IntN(n int) int {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v % n
}

func TestRollStaysInRange(t *testing.T) {
	e := NewEngine(NewSeededSource(1))
	for _, d := range All() {
		for i := 0; i < 5000; i++ {
			o := e.Roll(d.Sides)
			if o.Value < 1 || o.Value > d.Sides {
				t.Fatalf("%s rolled %d, outside [1, %d]", d.Name, o.Value, d.Sides)
			}
			if o.Critical != (o.Value == d.Sides) {
				t.Fatalf("%s rolled %d: critical = %v", d.Name, o.Value, o.Critical)
			}
			if o.Die != d {
				t.Fatalf("outcome die = %v, want %v", o.Die, d)
			}
		}
	}
}

func TestCryptoSourceInRange(t *testing.T) {
	e := NewEngine(NewCryptoSource())
	for i := 0; i < 500; i++ {
		o := e.Roll(20)
		require.GreaterOrEqual(t, o.Value, 1)
		require.LessOrEqual(t, o.Value, 20)
	}
}

func TestRollDistribution(t *testing.T) {
	const trials = 100_000
	e := NewEngine(NewSeededSource(20240601))

	for _, d := range All() {
		counts := make([]int, d.Sides+1)
		for i := 0; i < trials; i++ {
			counts[e.Roll(d.Sides).Value]++
		}
		require.Zero(t, counts[0], "%s produced a zero", d.Name)

		expected := float64(trials) / float64(d.Sides)
		var chi2 float64
		for face := 1; face <= d.Sides; face++ {
			diff := float64(counts[face]) - expected
			chi2 += diff * diff / expected
		}
		limit := chiSquareUpper(d.Sides - 1)
		assert.Lessf(t, chi2, limit, "%s: chi-square %.2f exceeds %.2f", d.Name, chi2, limit)
	}
}

// chiSquareUpper approximates the chi-square quantile at roughly p = 1e-6
// using the Wilson-Hilferty transform.
func chiSquareUpper(df int) float64 {
	const z = 4.75
	k := float64(df)
	h := 2 / (9 * k)
	return k * math.Pow(1-h+z*math.Sqrt(h), 3)
}

func TestCriticalSelectsThunder(t *testing.T) {
	tests := []struct {
		draw     int
		want     int
		critical bool
		token    EffectToken
	}{
		{draw: 19, want: 20, critical: true, token: EffectCritical},
		{draw: 18, want: 19, critical: false, token: EffectRoll},
		{draw: 0, want: 1, critical: false, token: EffectRoll},
		{draw: 9, want: 10, critical: false, token: EffectRoll},
	}

	for _, tt := range tests {
		e := NewEngine(&fixedSource{vals: []int{tt.draw}})
		o := e.Roll(20)
		if o.Value != tt.want {
			t.Errorf("draw %d: value = %d, want %d", tt.draw, o.Value, tt.want)
		}
		if o.Critical != tt.critical {
			t.Errorf("value %d: critical = %v, want %v", o.Value, o.Critical, tt.critical)
		}
		if o.Effect() != tt.token {
			t.Errorf("value %d: effect = %q, want %q", o.Value, o.Effect(), tt.token)
		}
	}
}

func TestRollUnsupportedSidesPanics(t *testing.T) {
	e := NewEngine(NewSeededSource(1))
	assert.Panics(t, func() { e.Roll(7) })
	assert.Panics(t, func() { e.Roll(0) })
	assert.Panics(t, func() { e.Roll(-6) })
	assert.Panics(t, func() { e.RollDie(DieSpec{Name: "d6", Sides: 7}) })
}

func TestSeededSourceDeterministic(t *testing.T) {
	a := NewEngine(NewSeededSource(99))
	b := NewEngine(NewSeededSource(99))
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Roll(100), b.Roll(100))
	}
}

func TestRecordRollFormatsEntry(t *testing.T) {
	e := NewEngine(nil, WithHistory())
	entry := e.RecordRoll("d6", RollOutcome{Die: MustLookup("d6"), Value: 4})

	assert.Equal(t, "d6: 4", entry.Text())
	assert.Equal(t, []RollLogEntry{entry}, e.History())
}

func TestHistoryOrder(t *testing.T) {
	e := NewEngine(&fixedSource{vals: []int{2, 0, 19}}, WithHistory())

	r1 := e.RecordRoll("d6", e.Roll(6))
	r2 := e.RecordRoll("d4", e.Roll(4))
	r3 := e.RecordRoll("d20", e.Roll(20))

	assert.Equal(t, []RollLogEntry{r1, r2, r3}, e.History())
	assert.Equal(t, []RollLogEntry{r3, r2, r1}, e.RecentFirst())
	assert.Equal(t, []string{"d6: 3", "d4: 1", "d20: 20"},
		[]string{r1.Text(), r2.Text(), r3.Text()})
	assert.True(t, r3.Critical)
	assert.Equal(t, 3, e.Len())
}

func TestHistoryIsolatedFromCallers(t *testing.T) {
	e := NewEngine(NewSeededSource(5), WithHistory())
	e.RecordRoll("d8", e.Roll(8))
	first := e.History()[0]

	view := e.History()
	view[0].Value = 1000
	rev := e.RecentFirst()
	rev[0].DieName = "mutated"

	e.RecordRoll("d12", e.Roll(12))
	assert.Equal(t, first, e.History()[0])
}

func TestRollDoesNotMutateDieSet(t *testing.T) {
	before := All()
	set := All()
	set[0].Sides = 3

	e := NewEngine(NewSeededSource(3), WithHistory())
	for _, d := range before {
		e.RecordRoll(d.Name, e.RollDie(d))
	}
	assert.Equal(t, before, All())
}

func TestHistoryDisabled(t *testing.T) {
	e := NewEngine(NewSeededSource(1))
	entry := e.RecordRoll("d2", e.Roll(2))

	assert.False(t, e.HistoryEnabled())
	assert.Equal(t, 1, entry.Seq)
	assert.Empty(t, e.History())
	assert.Zero(t, e.Len())
}

func TestFlashPlan(t *testing.T) {
	crit := RollOutcome{Die: MustLookup("d20"), Value: 20, Critical: true}
	want := []FlashStep{
		{Delay: 0, Color: FlashHighlight},
		{Delay: 100 * time.Millisecond, Color: FlashBase},
		{Delay: 200 * time.Millisecond, Color: FlashHighlight},
		{Delay: 300 * time.Millisecond, Color: FlashBase},
	}
	assert.Equal(t, want, crit.Flash())

	normal := RollOutcome{Die: MustLookup("d20"), Value: 7}
	assert.Empty(t, normal.Flash())

	assert.Equal(t, 150*time.Millisecond, FlashSequence(50 * time.Millisecond)[3].Delay)
	assert.Equal(t, want, FlashSequence(0))
}
