package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Effect identifies a one-shot sound
type Effect uint8

const (
	EffectScratch Effect = iota
	EffectHigh
	EffectMedium
	EffectLow
	EffectBump
	effectCount
)

var effectNames = [effectCount]string{"scratch", "high", "medium", "low", "bump"}

func (e Effect) String() string {
	if e < effectCount {
		return effectNames[e]
	}
	return "unknown"
}

// EffectForDigit maps keys 1-4 to the four demo effects
func EffectForDigit(d int) (Effect, bool) {
	if d < 1 || d > 4 {
		return 0, false
	}
	return Effect(d - 1), true
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack/release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear fade-in and fade-out
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear volume, silencing at 0
// math.Log2(0) is -Inf, so zero maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

const (
	scratchDuration = 180 * time.Millisecond
	toneDuration    = 250 * time.Millisecond
	bumpDuration    = 40 * time.Millisecond
	fadeDuration    = 10 * time.Millisecond
)

var toneFrequencies = map[Effect]float64{
	EffectHigh:   880,
	EffectMedium: 440,
	EffectLow:    220,
}

// NewEffect builds a finite streamer for e at the given master volume
func NewEffect(e Effect, rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	switch e {
	case EffectScratch:
		noise := NewOscillator(0, scratchDuration, WaveNoise, rate)
		return newVolume(NewEnvelope(noise, scratchDuration, fadeDuration, scratchDuration/2, rate), vol*0.6), nil

	case EffectHigh, EffectMedium, EffectLow:
		sine, err := generators.SineTone(rate, toneFrequencies[e])
		if err != nil {
			return nil, err
		}
		tone := beep.Take(rate.N(toneDuration), sine)
		return newVolume(NewEnvelope(tone, toneDuration, fadeDuration, toneDuration/2, rate), vol), nil

	case EffectBump:
		square := NewOscillator(110, bumpDuration, WaveSquare, rate)
		return newVolume(NewEnvelope(square, bumpDuration, 0, bumpDuration/2, rate), vol*0.3), nil
	}
	return nil, ErrUnknownEffect
}

// beat is an endless kick pattern used as background music
type beat struct {
	rate     beep.SampleRate
	period   int // Samples per beat
	kick     int // Samples of audible kick at the start of each beat
	position int
}

// NewBeat creates an endless kick drum at bpm
func NewBeat(rate beep.SampleRate, bpm int) beep.Streamer {
	if bpm <= 0 {
		bpm = 120
	}
	return &beat{
		rate:   rate,
		period: rate.N(time.Minute / time.Duration(bpm)),
		kick:   rate.N(120 * time.Millisecond),
	}
}

func (b *beat) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		pos := b.position % b.period
		var val float64
		if pos < b.kick {
			t := float64(pos) / float64(b.rate)
			// Pitch drops from 150Hz to 50Hz over the kick
			progress := float64(pos) / float64(b.kick)
			freq := 150 - 100*progress
			val = math.Sin(2*math.Pi*freq*t) * (1 - progress)
		}
		samples[i][0] = val
		samples[i][1] = val
		b.position++
	}
	return len(samples), true
}

func (b *beat) Err() error { return nil }
