package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/daycycle/core"
	"github.com/lixenwraith/daycycle/phase"
)

// ScreenSink fills a tcell screen with a solid true-color background
// With HUD enabled, the bottom-left corner shows the phase name and hex color
type ScreenSink struct {
	mu     sync.Mutex
	screen tcell.Screen
	hud    bool
	label  string
	closed bool
}

// OpenScreen creates and initializes the terminal screen
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// NewScreenSink wraps an initialized screen
func NewScreenSink(screen tcell.Screen, hud bool) *ScreenSink {
	return &ScreenSink{
		screen: screen,
		hud:    hud,
	}
}

// Present paints c over every cell and shows the frame
func (s *ScreenSink) Present(c core.RGB) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	style := tcell.StyleDefault.Background(toTcell(c)).Foreground(toTcell(c.Contrast()))
	s.screen.Fill(' ', style)

	if s.hud {
		_, height := s.screen.Size()
		s.drawText(0, height-1, fmt.Sprintf(" %s %s ", s.label, c.Hex()), style)
	}

	s.screen.Show()
}

// PhaseStarted updates the HUD label
func (s *ScreenSink) PhaseStarted(p phase.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == phase.Transition {
		s.label = fmt.Sprintf("%s → %s", p.ID, p.Next)
		return
	}
	s.label = p.ID.String()
}

// Close finalizes the screen, safe to call more than once
func (s *ScreenSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.screen.Fini()
}

// drawText writes text left to right, clipped at the screen edge
func (s *ScreenSink) drawText(x, y int, text string, style tcell.Style) {
	width, height := s.screen.Size()
	if y < 0 || y >= height {
		return
	}
	for _, r := range text {
		if x >= width {
			return
		}
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
