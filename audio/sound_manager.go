// Package audio triggers synthesized sound effects and a looping beat
// through the beep speaker.
package audio

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

var (
	ErrUnknownEffect = errors.New("unknown sound effect")
	ErrDisabled      = errors.New("audio disabled")
)

// MusicState is the background beat's playback state
type MusicState uint8

const (
	MusicStopped MusicState = iota
	MusicPlaying
	MusicPaused
)

func (s MusicState) String() string {
	switch s {
	case MusicPlaying:
		return "playing"
	case MusicPaused:
		return "paused"
	default:
		return "stopped"
	}
}

const musicBPM = 120

// SoundManager owns the mixer feeding the speaker
// All methods are no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicState  MusicState
	initialized bool

	// Device hooks, replaced in tests
	startOutput func(rate beep.SampleRate, mixer *beep.Mixer) error
	closeOutput func()
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg Config) *SoundManager {
	cfg = cfg.Normalized()
	return &SoundManager{
		cfg:         cfg,
		rate:        beep.SampleRate(cfg.SampleRate),
		mixer:       &beep.Mixer{},
		startOutput: startSpeaker,
		closeOutput: speaker.Close,
	}
}

func startSpeaker(rate beep.SampleRate, mixer *beep.Mixer) error {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(mixer)
	return nil
}

// Initialize sets up the audio output
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.cfg.Enabled {
		return ErrDisabled
	}
	if sm.initialized {
		return nil
	}
	if err := sm.startOutput(sm.rate, sm.mixer); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Initialized reports whether output is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.stopMusicLocked()
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.closeOutput()
	sm.initialized = false
}

// Play mixes a one-shot effect in
func (sm *SoundManager) Play(e Effect) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}
	s, err := NewEffect(e, sm.rate, sm.cfg.Volume)
	if err != nil {
		return err
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// PlayBump plays the short thud used when a move is rejected
func (sm *SoundManager) PlayBump() {
	_ = sm.Play(EffectBump)
}

// ToggleMusic starts the beat if stopped, otherwise flips pause
func (sm *SoundManager) ToggleMusic() MusicState {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return sm.musicState
	}

	// The speaker goroutine reads the mixer and ctrl under its own lock
	speaker.Lock()
	defer speaker.Unlock()

	switch sm.musicState {
	case MusicStopped:
		sm.music = &beep.Ctrl{Streamer: newVolume(NewBeat(sm.rate, musicBPM), sm.cfg.Volume*0.8)}
		sm.mixer.Add(sm.music)
		sm.musicState = MusicPlaying
	case MusicPlaying:
		sm.music.Paused = true
		sm.musicState = MusicPaused
	case MusicPaused:
		sm.music.Paused = false
		sm.musicState = MusicPlaying
	}
	return sm.musicState
}

// StopMusic halts the beat; the next toggle restarts it from the top
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.stopMusicLocked()
}

func (sm *SoundManager) stopMusicLocked() {
	if sm.music != nil {
		speaker.Lock()
		// A nil streamer reports drained, so the mixer drops the ctrl
		sm.music.Streamer = nil
		speaker.Unlock()
		sm.music = nil
	}
	sm.musicState = MusicStopped
}

// MusicState returns the current background beat state
func (sm *SoundManager) MusicState() MusicState {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicState
}
