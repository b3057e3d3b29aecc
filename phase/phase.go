// Package phase defines the day/night color phases and their linear interpolation.
//
// The four named phases form a fixed cycle: Dawn → Day → Dusk → Night → Dawn.
// Successors are looked up by ID through a Table rather than linked by pointers,
// so a Phase is a plain value that can be copied and published freely.
package phase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/daycycle/constant"
	"github.com/lixenwraith/daycycle/core"
)

// ID identifies a phase
type ID uint8

const (
	Dawn ID = iota
	Day
	Dusk
	Night
	Transition

	// None marks the absence of a successor
	None ID = 0xff
)

// NamedCount is the number of phases on the permanent cycle
const NamedCount = 4

var (
	ErrInvalidPhase    = errors.New("invalid phase")
	ErrInvalidDuration = errors.New("phase duration must be positive")
)

var idNames = [...]string{
	Dawn:       "dawn",
	Day:        "day",
	Dusk:       "dusk",
	Night:      "night",
	Transition: "transition",
}

func (id ID) String() string {
	if int(id) < len(idNames) {
		return idNames[id]
	}
	return "none"
}

// Named reports whether id is one of the four cycle phases
func (id ID) Named() bool {
	return id < NamedCount
}

// ParseID resolves a phase name, case-insensitive
func ParseID(s string) (ID, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range idNames {
		if n == name {
			return ID(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrInvalidPhase, s)
}

// Phase is one node of the schedule
type Phase struct {
	ID        ID
	Start     core.RGB
	End       core.RGB
	Duration  time.Duration
	StartedAt time.Time
	Next      ID
}

// EndsAt returns the instant the phase's duration elapses
func (p Phase) EndsAt() time.Time {
	return p.StartedAt.Add(p.Duration)
}

// HasNext reports whether the phase has a successor to advance into
func (p Phase) HasNext() bool {
	return p.Next != None
}

// Default palette, closed color cycle red → yellow → green → blue → red
var palette = [NamedCount]struct{ start, end core.RGB }{
	Dawn:  {core.RGB{R: 0xff, G: 0x00, B: 0x00}, core.RGB{R: 0xff, G: 0xff, B: 0x00}},
	Day:   {core.RGB{R: 0xff, G: 0xff, B: 0x00}, core.RGB{R: 0x00, G: 0xff, B: 0x00}},
	Dusk:  {core.RGB{R: 0x00, G: 0xff, B: 0x00}, core.RGB{R: 0x00, G: 0x00, B: 0xff}},
	Night: {core.RGB{R: 0x00, G: 0x00, B: 0xff}, core.RGB{R: 0xff, G: 0x00, B: 0x00}},
}

// Table holds the four named phases indexed by ID plus the transition length
type Table struct {
	phases     [NamedCount]Phase
	transition time.Duration
}

// NewTable builds the cycle with the given named-phase and transition durations
func NewTable(phaseDuration, transitionDuration time.Duration) (*Table, error) {
	if phaseDuration <= 0 {
		return nil, fmt.Errorf("%w: phase %s", ErrInvalidDuration, phaseDuration)
	}
	if transitionDuration <= 0 {
		return nil, fmt.Errorf("%w: transition %s", ErrInvalidDuration, transitionDuration)
	}

	t := &Table{transition: transitionDuration}
	for i := range t.phases {
		id := ID(i)
		t.phases[i] = Phase{
			ID:       id,
			Start:    palette[i].start,
			End:      palette[i].end,
			Duration: phaseDuration,
			Next:     ID((i + 1) % NamedCount),
		}
	}
	return t, nil
}

// DefaultTable returns the cycle with 14s phases and a 5s transition
func DefaultTable() *Table {
	t, _ := NewTable(constant.PhaseDuration, constant.TransitionDuration)
	return t
}

// Get returns a copy of the named phase
func (t *Table) Get(id ID) (Phase, error) {
	if !id.Named() {
		return Phase{}, fmt.Errorf("%w: %s", ErrInvalidPhase, id)
	}
	return t.phases[id], nil
}

// Stamp records the start instant of a named phase
func (t *Table) Stamp(id ID, at time.Time) {
	if id.Named() {
		t.phases[id].StartedAt = at
	}
}

// Successor returns the phase that follows id on the cycle
func (t *Table) Successor(id ID) ID {
	if !id.Named() {
		return None
	}
	return t.phases[id].Next
}

// TransitionDuration returns the glide time used for forced jumps
func (t *Table) TransitionDuration() time.Duration {
	return t.transition
}

// NewTransition builds the synthetic phase gliding from color from into target's start color
func (t *Table) NewTransition(from core.RGB, target ID, now time.Time) Phase {
	return Phase{
		ID:        Transition,
		Start:     from,
		End:       t.phases[target].Start,
		Duration:  t.transition,
		StartedAt: now,
		Next:      target,
	}
}
