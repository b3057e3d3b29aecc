package constant

import "time"

// Audio Defaults
const (
	DefaultSampleRate   = 44100
	DefaultMasterVolume = 0.5

	// AudioBufferDuration is the speaker buffer size passed to speaker.Init
	AudioBufferDuration = 100 * time.Millisecond
)

// Chime Sound Timing
const (
	ChimeSoundDuration           = 600 * time.Millisecond
	ChimeSoundAttack             = 5 * time.Millisecond
	ChimeSoundFundamentalRelease = 550 * time.Millisecond
	ChimeSoundOvertoneRelease    = 200 * time.Millisecond
)

// Transition Sound Timing
const (
	WhooshSoundDuration = 250 * time.Millisecond
	WhooshSoundAttack   = 40 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)
