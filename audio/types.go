package audio

import (
	"github.com/lixenwraith/daycycle/constant"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundChime  SoundType = iota // A named phase begins
	SoundWhoosh                  // A forced transition begins
	soundTypeCount
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the stock settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constant.DefaultMasterVolume,
		SampleRate:   constant.DefaultSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundChime:  1.0,
			SoundWhoosh: 0.6,
		},
	}
}
