package phase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/daycycle/core"
)

var t0 = time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC)

func dawnAt(start time.Time) Phase {
	return Phase{
		ID:        Dawn,
		Start:     core.RGB{R: 0xff, G: 0x00, B: 0x00},
		End:       core.RGB{R: 0xff, G: 0xff, B: 0x00},
		Duration:  14 * time.Second,
		StartedAt: start,
		Next:      Day,
	}
}

func TestInterpolateAtStartIsStartColor(t *testing.T) {
	tbl := DefaultTable()
	for id := Dawn; id < NamedCount; id++ {
		p, _ := tbl.Get(id)
		p.StartedAt = t0
		assert.Equal(t, p.Start, Interpolate(p, t0), "phase %s", id)
	}
}

func TestInterpolateAtOrAfterEndIsEndColor(t *testing.T) {
	tbl := DefaultTable()
	for id := Dawn; id < NamedCount; id++ {
		p, _ := tbl.Get(id)
		p.StartedAt = t0

		for _, after := range []time.Duration{0, time.Nanosecond, time.Second, time.Hour} {
			got := Interpolate(p, p.EndsAt().Add(after))
			assert.Equal(t, p.End, got, "phase %s at end+%s", id, after)
		}
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	p := dawnAt(t0)

	got := Interpolate(p, t0.Add(7*time.Second))

	assert.Equal(t, uint8(0xff), got.R)
	assert.InDelta(t, 0x80, int(got.G), 1)
	assert.Equal(t, uint8(0x00), got.B)
}

func TestInterpolateIsMonotonicAndLinear(t *testing.T) {
	p := Phase{
		ID:        Night,
		Start:     core.RGB{R: 0x00, G: 0x00, B: 0xff},
		End:       core.RGB{R: 0xff, G: 0x00, B: 0x00},
		Duration:  14 * time.Second,
		StartedAt: t0,
		Next:      Dawn,
	}

	prev := Interpolate(p, t0)
	for ms := 100; ms <= 14000; ms += 100 {
		at := t0.Add(time.Duration(ms) * time.Millisecond)
		cur := Interpolate(p, at)

		assert.GreaterOrEqual(t, cur.R, prev.R, "red must rise at %dms", ms)
		assert.LessOrEqual(t, cur.B, prev.B, "blue must fall at %dms", ms)
		assert.Equal(t, uint8(0), cur.G)

		elapsed := float64(ms) / 14000.0
		assert.InDelta(t, 255*elapsed, float64(cur.R), 1, "linear red at %dms", ms)
		assert.InDelta(t, 255*(1-elapsed), float64(cur.B), 1, "linear blue at %dms", ms)
		prev = cur
	}
}

func TestRemainingEdgeCases(t *testing.T) {
	p := dawnAt(t0)

	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"exact start", t0, 1},
		{"clock behind start", t0.Add(-3 * time.Second), 1},
		{"quarter", t0.Add(3500 * time.Millisecond), 0.75},
		{"half", t0.Add(7 * time.Second), 0.5},
		{"exact end", t0.Add(14 * time.Second), 0},
		{"overdue", t0.Add(20 * time.Second), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Remaining(p, tt.at), 1e-9)
		})
	}
}

func TestInterpolateClockBehindStartHoldsStartColor(t *testing.T) {
	p := dawnAt(t0)
	assert.Equal(t, p.Start, Interpolate(p, t0.Add(-time.Minute)))
}

func TestInterpolateRepeatedSamplingIsStable(t *testing.T) {
	p := dawnAt(t0)
	at := t0.Add(4321 * time.Millisecond)

	first := Interpolate(p, at)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Interpolate(p, at))
	}
}
