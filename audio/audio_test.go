package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(8000)

// newTestManager returns an initialized manager with no device attached
func newTestManager(t *testing.T) (*SoundManager, *bool) {
	t.Helper()
	sm := NewSoundManager(Config{Enabled: true, Volume: 1, SampleRate: int(testRate)})
	closed := false
	sm.startOutput = func(beep.SampleRate, *beep.Mixer) error { return nil }
	sm.closeOutput = func() { closed = true }
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return sm, &closed
}

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)
	if got, want := drain(osc), testRate.N(100*time.Millisecond); got != want {
		t.Errorf("Oscillator produced %d samples, want %d", got, want)
	}

	// Drained streamer reports (0, false)
	n, ok := osc.Stream(make([][2]float64, 8))
	if n != 0 || ok {
		t.Errorf("Expected (0, false) after drain, got (%d, %v)", n, ok)
	}
}

func TestOscillatorRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(300, 50*time.Millisecond, wave, testRate)
		buf := make([][2]float64, testRate.N(50*time.Millisecond))
		n, _ := osc.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("wave %d sample %d out of range or not mono: %v", wave, i, buf[i])
			}
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	dur := 100 * time.Millisecond
	osc := NewOscillator(0, dur, WaveSquare, testRate) // constant +1
	env := NewEnvelope(osc, dur, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(dur))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("Expected %d samples, got %d", len(buf), n)
	}
	if buf[0][0] != 0 {
		t.Errorf("First sample should be silent, got %f", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("Sustain sample should be full scale, got %f", mid)
	}
	if last := buf[n-1][0]; last <= 0 || last >= 0.05 {
		t.Errorf("Last sample should be nearly faded, got %f", last)
	}
}

func TestNewEffect(t *testing.T) {
	for e := EffectScratch; e < effectCount; e++ {
		s, err := NewEffect(e, testRate, 0.5)
		if err != nil {
			t.Fatalf("NewEffect(%s) failed: %v", e, err)
		}
		if n := drain(s); n == 0 {
			t.Errorf("Effect %s produced no samples", e)
		}
	}
	if _, err := NewEffect(effectCount, testRate, 1); !errors.Is(err, ErrUnknownEffect) {
		t.Errorf("Expected ErrUnknownEffect, got %v", err)
	}
}

func TestEffectForDigit(t *testing.T) {
	want := map[int]Effect{1: EffectScratch, 2: EffectHigh, 3: EffectMedium, 4: EffectLow}
	for d, e := range want {
		if got, ok := EffectForDigit(d); !ok || got != e {
			t.Errorf("EffectForDigit(%d) = %s, %v", d, got, ok)
		}
	}
	for _, d := range []int{0, 5, 9} {
		if _, ok := EffectForDigit(d); ok {
			t.Errorf("EffectForDigit(%d) should fail", d)
		}
	}
}

func TestSoundManager_PlayAddsToMixer(t *testing.T) {
	sm, _ := newTestManager(t)
	if err := sm.Play(EffectHigh); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	sm.PlayBump()
	if got := sm.mixer.Len(); got != 2 {
		t.Errorf("Expected 2 streamers in mixer, got %d", got)
	}
}

func TestSoundManager_UninitializedIsNoop(t *testing.T) {
	sm := NewSoundManager(DefaultConfig())
	if err := sm.Play(EffectLow); err != nil {
		t.Errorf("Play before init should be a silent no-op, got %v", err)
	}
	if sm.ToggleMusic() != MusicStopped {
		t.Error("Music must stay stopped before init")
	}
	if sm.mixer.Len() != 0 {
		t.Error("Nothing should reach the mixer before init")
	}
}

func TestSoundManager_Disabled(t *testing.T) {
	sm := NewSoundManager(Config{Enabled: false})
	if err := sm.Initialize(); !errors.Is(err, ErrDisabled) {
		t.Errorf("Expected ErrDisabled, got %v", err)
	}
}

func TestSoundManager_MusicToggle(t *testing.T) {
	sm, closed := newTestManager(t)

	steps := []MusicState{MusicPlaying, MusicPaused, MusicPlaying}
	for i, want := range steps {
		if got := sm.ToggleMusic(); got != want {
			t.Fatalf("toggle %d: got %s, want %s", i, got, want)
		}
	}
	if sm.music == nil || sm.music.Paused {
		t.Fatal("Expected unpaused music ctrl")
	}

	sm.StopMusic()
	if sm.MusicState() != MusicStopped || sm.music != nil {
		t.Error("StopMusic should clear music")
	}
	if sm.ToggleMusic() != MusicPlaying {
		t.Error("Toggle after stop should restart")
	}

	sm.Cleanup()
	if !*closed || sm.Initialized() {
		t.Error("Cleanup should close output")
	}
}

func TestConfigNormalized(t *testing.T) {
	c := Config{Volume: 3, SampleRate: 0}.Normalized()
	if c.Volume != 1 || c.SampleRate != 48000 {
		t.Errorf("Unexpected normalized config %+v", c)
	}
	if c := (Config{Volume: -1}).Normalized(); c.Volume != 0 {
		t.Errorf("Negative volume not clamped: %f", c.Volume)
	}
}
