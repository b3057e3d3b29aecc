package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("DAYCYCLE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("DAYCYCLE_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Effect volumes from JSON, e.g. {"chime":0.8,"whoosh":0.3}
	if effectVols := os.Getenv("DAYCYCLE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if v, ok := volumes["chime"]; ok {
				cfg.EffectVolumes[SoundChime] = clampUnit(v)
			}
			if v, ok := volumes["whoosh"]; ok {
				cfg.EffectVolumes[SoundWhoosh] = clampUnit(v)
			}
		}
	}

	if sampleRate := os.Getenv("DAYCYCLE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}
