package input

// EventType discriminates input source events
type EventType uint8

const (
	EventNone   EventType = iota
	EventKey              // Key press, see Key/Rune
	EventQuit             // Window/terminal asked to close
	EventResize           // Surface size changed, repaint happens next tick anyway
	EventClosed           // Source shut down, no further events
)

// Key identifies non-printable keys; printable ones arrive as KeyRune with Rune set
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyCtrlC
	KeyCtrlQ
)

// Event is one item produced by a Source
type Event struct {
	Type EventType
	Key  Key
	Rune rune
}

// Source produces input events, PollEvent blocks until one is available
type Source interface {
	PollEvent() Event
}
