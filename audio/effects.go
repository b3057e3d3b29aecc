package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/daycycle/constant"
	"github.com/lixenwraith/daycycle/phase"
)

// Chime fundamentals per phase, a rising then falling A-major arpeggio over the day
var chimeFrequencies = [phase.NamedCount]float64{
	phase.Dawn:  554.37, // C#5
	phase.Day:   659.25, // E5
	phase.Dusk:  440.00, // A4
	phase.Night: 329.63, // E4
}

// ChimeFrequency returns the fundamental for a named phase, 0 otherwise
func ChimeFrequency(id phase.ID) float64 {
	if !id.Named() {
		return 0
	}
	return chimeFrequencies[id]
}

// partial is one sine component of the chime
type partial struct {
	ratio   float64 // Multiple of the fundamental
	gain    float64
	release time.Duration
}

// Gains sum to 1 so the mix never clips
var chimePartials = []partial{
	{ratio: 1, gain: 0.7, release: constant.ChimeSoundFundamentalRelease},
	{ratio: 2, gain: 0.3, release: constant.ChimeSoundOvertoneRelease},
}

// shape is a linear attack, hold, release gain curve in samples
type shape struct {
	total, attack, release int
}

func newShape(rate beep.SampleRate, total, attack, release time.Duration) shape {
	return shape{total: rate.N(total), attack: rate.N(attack), release: rate.N(release)}
}

// gain returns the curve at sample pos, 0 outside the sound
func (s shape) gain(pos int) float64 {
	if pos < 0 || pos >= s.total {
		return 0
	}
	g := 1.0
	if s.attack > 0 && pos < s.attack {
		g = float64(pos) / float64(s.attack)
	}
	if left := s.total - pos; s.release > 0 && left < s.release {
		g = min(g, float64(left)/float64(s.release))
	}
	return g
}

// chimeTone sums decaying sine partials over one fundamental
type chimeTone struct {
	rate   beep.SampleRate
	freq   float64
	shapes []shape
	pos    int
	length int
}

func newChimeTone(freq float64, rate beep.SampleRate) *chimeTone {
	shapes := make([]shape, len(chimePartials))
	for i, p := range chimePartials {
		shapes[i] = newShape(rate, constant.ChimeSoundDuration, constant.ChimeSoundAttack, p.release)
	}
	return &chimeTone{
		rate:   rate,
		freq:   freq,
		shapes: shapes,
		length: rate.N(constant.ChimeSoundDuration),
	}
}

func (c *chimeTone) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.length {
		return 0, false
	}
	n = min(len(samples), c.length-c.pos)
	for i := range n {
		t := float64(c.pos) / float64(c.rate)
		var v float64
		for j, p := range chimePartials {
			v += p.gain * c.shapes[j].gain(c.pos) * math.Sin(2*math.Pi*c.freq*p.ratio*t)
		}
		samples[i] = [2]float64{v, v}
		c.pos++
	}
	return n, true
}

func (c *chimeTone) Err() error { return nil }

// noiseBurst is shaped white noise
type noiseBurst struct {
	shape shape
	pos   int
}

func (b *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= b.shape.total {
		return 0, false
	}
	n = min(len(samples), b.shape.total-b.pos)
	for i := range n {
		v := (rand.Float64()*2 - 1) * b.shape.gain(b.pos)
		samples[i] = [2]float64{v, v}
		b.pos++
	}
	return n, true
}

func (b *noiseBurst) Err() error { return nil }

// withGain scales s linearly; effects.Volume works in log2, so gain 0 means silent
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	v := &effects.Volume{Streamer: s, Base: 2}
	if gain <= 0 {
		v.Silent = true
	} else {
		v.Volume = math.Log2(gain)
	}
	return v
}

// CreateChimeSound returns the bell announcing a named phase, nil for anything else
func CreateChimeSound(id phase.ID, cfg *AudioConfig) beep.Streamer {
	freq := ChimeFrequency(id)
	if freq == 0 {
		return nil
	}
	tone := newChimeTone(freq, beep.SampleRate(cfg.SampleRate))
	return withGain(tone, cfg.EffectVolumes[SoundChime]*cfg.MasterVolume)
}

// CreateWhooshSound returns the noise sweep announcing a forced transition
func CreateWhooshSound(cfg *AudioConfig) beep.Streamer {
	burst := &noiseBurst{
		shape: newShape(beep.SampleRate(cfg.SampleRate),
			constant.WhooshSoundDuration, constant.WhooshSoundAttack, constant.WhooshSoundRelease),
	}
	return withGain(burst, cfg.EffectVolumes[SoundWhoosh]*cfg.MasterVolume)
}

// SoundForPhase picks the effect announcing p
func SoundForPhase(p phase.Phase, cfg *AudioConfig) beep.Streamer {
	if p.ID == phase.Transition {
		return CreateWhooshSound(cfg)
	}
	return CreateChimeSound(p.ID, cfg)
}
