package constant

import "time"

// Render Loop Timing
const (
	// FrameUpdateInterval is the render tick (the loop sleeps this long between frames)
	FrameUpdateInterval = 10 * time.Millisecond
)

// Phase Schedule
const (
	// PhaseDuration is how long each named phase (dawn, day, dusk, night) lasts
	PhaseDuration = 14 * time.Second

	// TransitionDuration is the glide time injected when the operator forces a phase
	TransitionDuration = 5 * time.Second
)

// Solar start phase
const (
	// TwilightAltitudeDeg bounds dawn/dusk: sun within ±6° of the horizon (civil twilight)
	TwilightAltitudeDeg = 6.0

	// SolarTrendLookahead is the look-ahead used to tell a rising sun from a setting one
	SolarTrendLookahead = 10 * time.Minute
)
