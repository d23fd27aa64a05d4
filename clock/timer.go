// Package clock provides the stopwatch timer and frame-rate cap used by the
// frame loop.
package clock

import "time"

// Timer is a stopwatch that can be paused without losing elapsed time
// Not safe for concurrent use; owned by the frame loop
type Timer struct {
	provider TimeProvider

	startTime time.Time
	pausedFor time.Duration // Elapsed time captured at pause

	started bool
	paused  bool
}

// NewTimer creates a stopped timer reading from provider
func NewTimer(provider TimeProvider) *Timer {
	if provider == nil {
		provider = NewSystemTimeProvider()
	}
	return &Timer{provider: provider}
}

// Start (re)starts from zero and clears any pause
func (t *Timer) Start() {
	t.started = true
	t.paused = false
	t.startTime = t.provider.Now()
}

// Stop halts the timer; Ticks reports zero until restarted
func (t *Timer) Stop() {
	t.started = false
	t.paused = false
}

// Pause freezes elapsed time; no-op unless running
func (t *Timer) Pause() {
	if t.started && !t.paused {
		t.paused = true
		t.pausedFor = t.provider.Now().Sub(t.startTime)
	}
}

// Unpause resumes from the frozen elapsed time
func (t *Timer) Unpause() {
	if t.paused {
		t.paused = false
		t.startTime = t.provider.Now().Add(-t.pausedFor)
		t.pausedFor = 0
	}
}

// Ticks returns elapsed time since Start, excluding paused spans
func (t *Timer) Ticks() time.Duration {
	if !t.started {
		return 0
	}
	if t.paused {
		return t.pausedFor
	}
	return t.provider.Now().Sub(t.startTime)
}

func (t *Timer) IsStarted() bool { return t.started }
func (t *Timer) IsPaused() bool  { return t.paused }
