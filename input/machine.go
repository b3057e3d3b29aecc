package input

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/daycycle/phase"
)

// PhaseForcer is the scheduler capability the input loop needs
type PhaseForcer interface {
	ForcePhase(target phase.ID) (phase.Phase, error)
}

// Pauser freezes and resumes schedule time
type Pauser interface {
	TogglePause() bool
}

// Loop polls the source and turns key presses into phase jumps
type Loop struct {
	source   Source
	forcer   PhaseForcer
	keys     *KeyTable
	shutdown *atomic.Bool
	pauser   Pauser
}

// NewLoop creates an input loop, nil keys selects DefaultKeyTable
func NewLoop(source Source, forcer PhaseForcer, keys *KeyTable, shutdown *atomic.Bool) *Loop {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Loop{
		source:   source,
		forcer:   forcer,
		keys:     keys,
		shutdown: shutdown,
	}
}

// WithPauser enables the pause binding
func (l *Loop) WithPauser(p Pauser) *Loop {
	l.pauser = p
	return l
}

// Run processes events until quit or the source closes, then sets the shutdown flag
func (l *Loop) Run() {
	defer l.shutdown.Store(true)

	for !l.shutdown.Load() {
		if !l.HandleEvent(l.source.PollEvent()) {
			return
		}
	}
}

// HandleEvent applies one event, false means stop
func (l *Loop) HandleEvent(ev Event) bool {
	entry := l.keys.Lookup(ev)

	switch entry.Intent {
	case IntentQuit:
		return false

	case IntentSelectPhase:
		p, err := l.forcer.ForcePhase(entry.Phase)
		if err != nil {
			// Only reachable with a miswired key table
			log.Printf("input: force %s: %v", entry.Phase, err)
			return true
		}
		log.Printf("input: forced %s, %s %s → %s over %s", entry.Phase, p.ID, p.Start.Hex(), p.End.Hex(), p.Duration)

	case IntentTogglePause:
		if l.pauser != nil {
			log.Printf("input: paused=%t", l.pauser.TogglePause())
		}
	}

	return true
}
