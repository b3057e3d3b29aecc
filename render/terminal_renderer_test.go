package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/daycycle/core"
	"github.com/lixenwraith/daycycle/phase"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	return screen
}

func TestScreenSinkFillsEveryCell(t *testing.T) {
	screen := newSimScreen(t, 8, 4)
	sink := NewScreenSink(screen, false)
	defer sink.Close()

	c := core.RGB{R: 0x12, G: 0x80, B: 0xfe}
	sink.Present(c)

	want := tcell.NewRGBColor(0x12, 0x80, 0xfe)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			r, _, style, _ := screen.GetContent(x, y)
			_, bg, _ := style.Decompose()
			assert.Equal(t, ' ', r, "cell %d,%d", x, y)
			assert.Equal(t, want, bg, "cell %d,%d", x, y)
		}
	}
}

func TestScreenSinkHUDShowsPhaseAndHex(t *testing.T) {
	screen := newSimScreen(t, 30, 3)
	sink := NewScreenSink(screen, true)
	defer sink.Close()

	sink.PhaseStarted(phase.Phase{ID: phase.Dusk, StartedAt: time.Now()})
	sink.Present(core.RGB{R: 0x00, G: 0xff, B: 0x00})

	want := " dusk #00ff00 "
	for i, expected := range want {
		r, _, style, _ := screen.GetContent(i, 2)
		assert.Equal(t, expected, r, "column %d", i)
		fg, _, _ := style.Decompose()
		assert.Equal(t, tcell.NewRGBColor(0, 0, 0), fg, "bright green gets dark text")
	}

	// Top row stays plain
	r, _, _, _ := screen.GetContent(1, 0)
	assert.Equal(t, ' ', r)
}

func TestScreenSinkHUDTransitionLabel(t *testing.T) {
	screen := newSimScreen(t, 40, 2)
	sink := NewScreenSink(screen, true)
	defer sink.Close()

	sink.PhaseStarted(phase.Phase{ID: phase.Transition, Next: phase.Night})
	assert.Equal(t, "transition → night", sink.label)
}

func TestScreenSinkCloseIsIdempotent(t *testing.T) {
	screen := newSimScreen(t, 4, 4)
	sink := NewScreenSink(screen, false)

	sink.Close()
	sink.Close()

	// Present after close is a no-op rather than a write to a finalized screen
	assert.NotPanics(t, func() { sink.Present(core.RGBWhite) })
}
