package render

import (
	"github.com/lixenwraith/daycycle/core"
	"github.com/lixenwraith/daycycle/engine"
	"github.com/lixenwraith/daycycle/phase"
)

// Sink paints one color across the whole visible surface and presents the frame
// Called every tick from the render goroutine, must be cheap
type Sink interface {
	Present(c core.RGB)
}

// Sampler yields the schedule state for the current instant
type Sampler interface {
	SnapshotNow() (engine.Snapshot, bool)
}

// Observer is notified from the render goroutine when a new phase shows up
type Observer interface {
	PhaseStarted(p phase.Phase)
}

// ObserverFunc adapts a plain function to Observer
type ObserverFunc func(p phase.Phase)

func (f ObserverFunc) PhaseStarted(p phase.Phase) { f(p) }
