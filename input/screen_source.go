package input

import "github.com/gdamore/tcell/v2"

// ScreenSource reads events from a tcell screen
// PollEvent returns EventClosed once the screen has been finalized
type ScreenSource struct {
	screen tcell.Screen
}

// NewScreenSource wraps an initialized screen
func NewScreenSource(screen tcell.Screen) *ScreenSource {
	return &ScreenSource{screen: screen}
}

func (s *ScreenSource) PollEvent() Event {
	return translate(s.screen.PollEvent())
}

// translate maps tcell events to input events
func translate(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case nil:
		return Event{Type: EventClosed}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}
		case tcell.KeyEscape:
			return Event{Type: EventKey, Key: KeyEscape}
		case tcell.KeyCtrlC:
			return Event{Type: EventKey, Key: KeyCtrlC}
		case tcell.KeyCtrlQ:
			return Event{Type: EventKey, Key: KeyCtrlQ}
		default:
			return Event{Type: EventKey, Key: KeyNone}
		}
	case *tcell.EventResize:
		return Event{Type: EventResize}
	default:
		return Event{Type: EventNone}
	}
}
