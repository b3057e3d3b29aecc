package phase

import (
	"time"

	"github.com/lixenwraith/daycycle/core"
)

// Remaining returns the fraction of p's duration left at t, in [0,1]
// 1 yields the start color, 0 yields the end color
func Remaining(p Phase, t time.Time) float64 {
	// First sample of a phase is exactly its start color; a clock that moved
	// behind StartedAt is held there as well
	if !t.After(p.StartedAt) {
		return 1
	}

	end := p.EndsAt()
	if !t.Before(end) {
		return 0
	}

	remaining := float64(end.Sub(t)) / float64(p.Duration)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Interpolate returns the color of p at t: end - (end - start) * remaining, truncated per channel
func Interpolate(p Phase, t time.Time) core.RGB {
	r := Remaining(p, t)
	return core.RGB{
		R: lerpChannel(p.Start.R, p.End.R, r),
		G: lerpChannel(p.Start.G, p.End.G, r),
		B: lerpChannel(p.Start.B, p.End.B, r),
	}
}

func lerpChannel(start, end uint8, remaining float64) uint8 {
	s, e := float64(start), float64(end)
	v := e - (e-s)*remaining
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
