package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentQuit
	IntentSelectPhase
	IntentTogglePause
)
