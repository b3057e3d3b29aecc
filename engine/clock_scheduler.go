package engine

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/daycycle/core"
	"github.com/lixenwraith/daycycle/phase"
)

var ErrAlreadyInitialized = errors.New("scheduler already initialized")

// Snapshot is a consistent view of the schedule at one instant
type Snapshot struct {
	Phase      phase.Phase
	Color      core.RGB
	Generation uint64 // Bumped on every install and forced jump
	Advanced   bool   // Phase was installed by this sample's auto-advance
}

// Scheduler owns the single active-phase slot
// Every operation holds mu for its whole read-modify-write; published phases are copies
type Scheduler struct {
	mu    sync.Mutex
	table *phase.Table
	clock TimeProvider

	active      phase.Phase
	hasActive   bool
	initialized bool
	generation  uint64

	advances atomic.Uint64
	forced   atomic.Uint64
}

// NewScheduler creates a scheduler over table with no active phase
// Initialize must be called before the render and input loops start
func NewScheduler(table *phase.Table, clock TimeProvider) *Scheduler {
	if table == nil {
		table = phase.DefaultTable()
	}
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &Scheduler{
		table: table,
		clock: clock,
	}
}

// Initialize installs start as the active phase, stamped now
func (s *Scheduler) Initialize(start phase.ID) error {
	if !start.Named() {
		return fmt.Errorf("%w: cannot start on %s", phase.ErrInvalidPhase, start)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized || s.hasActive {
		return ErrAlreadyInitialized
	}

	s.install(start, s.clock.Now())
	s.initialized = true
	return nil
}

// ForcePhase jumps to target
// With a phase already active, a transition glides from the color shown right now
// into target's start color; target itself starts once the transition elapses
func (s *Scheduler) ForcePhase(target phase.ID) (phase.Phase, error) {
	if !target.Named() {
		return phase.Phase{}, fmt.Errorf("%w: cannot force %s", phase.ErrInvalidPhase, target)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.forced.Add(1)

	// Startup race guard: nothing to glide from
	if !s.hasActive {
		s.install(target, now)
		return s.active, nil
	}

	shown := phase.Interpolate(s.active, now)
	transition := s.table.NewTransition(shown, target, now)
	s.table.Stamp(target, now.Add(transition.Duration))

	s.active = transition
	s.generation++
	return s.active, nil
}

// SnapshotNow samples the schedule, auto-advancing an elapsed phase first
// ok is false until a phase has been installed
func (s *Scheduler) SnapshotNow() (snap Snapshot, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasActive {
		return Snapshot{}, false
	}

	now := s.clock.Now()
	advanced := false
	if now.After(s.active.EndsAt()) && s.active.HasNext() {
		s.install(s.active.Next, now)
		s.advances.Add(1)
		advanced = true
	}

	return Snapshot{
		Phase:      s.active,
		Color:      phase.Interpolate(s.active, now),
		Generation: s.generation,
		Advanced:   advanced,
	}, true
}

// Active returns a copy of the active phase
func (s *Scheduler) Active() (phase.Phase, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, s.hasActive
}

// Phase returns a copy of the named phase's schedule entry
func (s *Scheduler) Phase(id phase.ID) (phase.Phase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Get(id)
}

// Advances returns the number of auto-advances performed
func (s *Scheduler) Advances() uint64 {
	return s.advances.Load()
}

// Forced returns the number of ForcePhase calls accepted
func (s *Scheduler) Forced() uint64 {
	return s.forced.Load()
}

// install stamps a named phase and makes it active, caller holds mu
func (s *Scheduler) install(id phase.ID, at time.Time) {
	s.table.Stamp(id, at)
	s.active, _ = s.table.Get(id)
	s.hasActive = true
	s.generation++
}
