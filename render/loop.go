package render

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/daycycle/constant"
	"github.com/lixenwraith/daycycle/engine"
)

// Loop samples the scheduler every tick and pushes the color to the sink
// The scheduler lock is the only synchronization point with the input goroutine
type Loop struct {
	sampler   Sampler
	sink      Sink
	interval  time.Duration
	shutdown  *atomic.Bool
	observers []Observer

	// Scheduler generation last handed to observers
	seen    bool
	lastGen uint64

	frames atomic.Uint64
}

// NewLoop creates a render loop that stops once shutdown is set
func NewLoop(sampler Sampler, sink Sink, interval time.Duration, shutdown *atomic.Bool, observers ...Observer) *Loop {
	if interval <= 0 {
		interval = constant.FrameUpdateInterval
	}
	return &Loop{
		sampler:   sampler,
		sink:      sink,
		interval:  interval,
		shutdown:  shutdown,
		observers: observers,
	}
}

// Run renders until the shutdown flag is observed
func (l *Loop) Run() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for !l.shutdown.Load() {
		l.Tick()
		<-ticker.C
	}
}

// Tick renders a single frame, false when the scheduler has nothing active yet
func (l *Loop) Tick() bool {
	snap, ok := l.sampler.SnapshotNow()
	if !ok {
		return false
	}

	if l.phaseChanged(snap) {
		for _, o := range l.observers {
			o.PhaseStarted(snap.Phase)
		}
	}

	l.sink.Present(snap.Color)
	l.frames.Add(1)
	return true
}

// Frames returns the number of frames presented
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// phaseChanged covers auto-advance and forced jumps alike
// Start stamps can repeat while the clock is paused, the generation cannot
func (l *Loop) phaseChanged(snap engine.Snapshot) bool {
	if l.seen && snap.Generation == l.lastGen {
		return false
	}
	l.seen = true
	l.lastGen = snap.Generation
	return true
}
