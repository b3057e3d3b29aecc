package input

import (
	"unicode"

	"github.com/lixenwraith/daycycle/phase"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent IntentType
	Phase  phase.ID
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Escape)
	SpecialKeys map[Key]KeyEntry

	// Rune bindings, stored lower-case
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings: q quits, a/s/d/f select dawn/day/dusk/night, p or space pauses
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[Key]KeyEntry{
			KeyEscape: {IntentQuit, phase.None},
			KeyCtrlC:  {IntentQuit, phase.None},
			KeyCtrlQ:  {IntentQuit, phase.None},
		},
		Runes: map[rune]KeyEntry{
			'q': {IntentQuit, phase.None},
			'a': {IntentSelectPhase, phase.Dawn},
			's': {IntentSelectPhase, phase.Day},
			'd': {IntentSelectPhase, phase.Dusk},
			'f': {IntentSelectPhase, phase.Night},
			'p': {IntentTogglePause, phase.None},
			' ': {IntentTogglePause, phase.None},
		},
	}
}

// Lookup resolves an event to its binding
func (kt *KeyTable) Lookup(ev Event) KeyEntry {
	switch ev.Type {
	case EventQuit, EventClosed:
		return KeyEntry{IntentQuit, phase.None}
	case EventKey:
	default:
		return KeyEntry{IntentNone, phase.None}
	}

	if ev.Key == KeyRune {
		if entry, ok := kt.Runes[unicode.ToLower(ev.Rune)]; ok {
			return entry
		}
		return KeyEntry{IntentNone, phase.None}
	}

	if entry, ok := kt.SpecialKeys[ev.Key]; ok {
		return entry
	}
	return KeyEntry{IntentNone, phase.None}
}
