package input

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/daycycle/phase"
)

// scriptedSource replays events, then reports closed
type scriptedSource struct {
	events []Event
}

func (s *scriptedSource) PollEvent() Event {
	if len(s.events) == 0 {
		return Event{Type: EventClosed}
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

type recordingForcer struct {
	mu     sync.Mutex
	forced []phase.ID
	err    error
}

func (r *recordingForcer) ForcePhase(target phase.ID) (phase.Phase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return phase.Phase{}, r.err
	}
	r.forced = append(r.forced, target)
	return phase.Phase{ID: phase.Transition, Next: target, Duration: 5 * time.Second}, nil
}

func key(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

func TestLoopMapsKeysToPhases(t *testing.T) {
	src := &scriptedSource{events: []Event{
		key('a'), key('s'), key('d'), key('f'), key('S'),
		{Type: EventResize},
		key('x'),
		{Type: EventKey, Key: KeyNone},
		key('q'),
		key('a'), // never reached
	}}
	forcer := &recordingForcer{}
	var shutdown atomic.Bool

	NewLoop(src, forcer, nil, &shutdown).Run()

	assert.Equal(t, []phase.ID{phase.Dawn, phase.Day, phase.Dusk, phase.Night, phase.Day}, forcer.forced)
	assert.True(t, shutdown.Load(), "quit sets the shutdown flag")
	assert.Len(t, src.events, 1)
}

func TestLoopQuitEvents(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
	}{
		{"quit event", Event{Type: EventQuit}},
		{"source closed", Event{Type: EventClosed}},
		{"escape", Event{Type: EventKey, Key: KeyEscape}},
		{"ctrl+c", Event{Type: EventKey, Key: KeyCtrlC}},
		{"ctrl+q", Event{Type: EventKey, Key: KeyCtrlQ}},
		{"q", key('q')},
		{"Q", key('Q')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scriptedSource{events: []Event{tt.ev, key('a')}}
			forcer := &recordingForcer{}
			var shutdown atomic.Bool

			NewLoop(src, forcer, nil, &shutdown).Run()

			assert.True(t, shutdown.Load())
			assert.Empty(t, forcer.forced)
		})
	}
}

func TestLoopStopsWhenShutdownSetElsewhere(t *testing.T) {
	src := &scriptedSource{events: []Event{key('a'), key('s')}}
	forcer := &recordingForcer{}
	var shutdown atomic.Bool
	shutdown.Store(true)

	NewLoop(src, forcer, nil, &shutdown).Run()

	assert.Empty(t, forcer.forced)
	assert.Len(t, src.events, 2)
}

func TestHandleEventForceErrorKeepsRunning(t *testing.T) {
	forcer := &recordingForcer{err: errors.New("boom")}
	var shutdown atomic.Bool
	loop := NewLoop(&scriptedSource{}, forcer, nil, &shutdown)

	assert.True(t, loop.HandleEvent(key('a')))
	assert.False(t, shutdown.Load())
}

func TestCustomKeyTable(t *testing.T) {
	keys := &KeyTable{
		SpecialKeys: map[Key]KeyEntry{KeyEscape: {IntentQuit, phase.None}},
		Runes:       map[rune]KeyEntry{'1': {IntentSelectPhase, phase.Night}},
	}
	src := &scriptedSource{events: []Event{key('1'), key('a'), key('q'), {Type: EventKey, Key: KeyEscape}}}
	forcer := &recordingForcer{}
	var shutdown atomic.Bool

	NewLoop(src, forcer, keys, &shutdown).Run()

	assert.Equal(t, []phase.ID{phase.Night}, forcer.forced)
	assert.Empty(t, src.events, "only escape quits with this table")
}

func TestDefaultKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	entry := kt.Lookup(key('F'))
	require.Equal(t, IntentSelectPhase, entry.Intent)
	assert.Equal(t, phase.Night, entry.Phase)

	assert.Equal(t, IntentNone, kt.Lookup(Event{Type: EventNone}).Intent)
	assert.Equal(t, IntentNone, kt.Lookup(key('z')).Intent)
}

type countingPauser struct {
	paused  bool
	toggles int
}

func (c *countingPauser) TogglePause() bool {
	c.toggles++
	c.paused = !c.paused
	return c.paused
}

func TestLoopTogglesPause(t *testing.T) {
	src := &scriptedSource{events: []Event{key('p'), key(' '), key('P'), key('q')}}
	pauser := &countingPauser{}
	var shutdown atomic.Bool

	NewLoop(src, &recordingForcer{}, nil, &shutdown).WithPauser(pauser).Run()

	assert.Equal(t, 3, pauser.toggles)
	assert.True(t, pauser.paused)
}

func TestLoopPauseWithoutPauserIsIgnored(t *testing.T) {
	var shutdown atomic.Bool
	loop := NewLoop(&scriptedSource{}, &recordingForcer{}, nil, &shutdown)
	assert.True(t, loop.HandleEvent(key('p')))
}
