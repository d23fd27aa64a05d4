package clock

import (
	"context"
	"time"
)

// Limiter caps the frame loop to a fixed rate
type Limiter struct {
	fps    int
	budget time.Duration
	sleep  func(ctx context.Context, d time.Duration)
}

// NewLimiter creates a limiter for fps frames per second; fps <= 0 disables the cap
func NewLimiter(fps int) *Limiter {
	l := &Limiter{fps: fps, sleep: sleepContext}
	if fps > 0 {
		l.budget = time.Second / time.Duration(fps)
	}
	return l
}

// FPS returns the configured cap, zero if uncapped
func (l *Limiter) FPS() int { return l.fps }

// Budget is the duration of one frame, zero if uncapped
func (l *Limiter) Budget() time.Duration { return l.budget }

// Remaining returns how much of the frame budget is left after frame ticks
func (l *Limiter) Remaining(frame *Timer) time.Duration {
	if l.budget == 0 {
		return 0
	}
	if left := l.budget - frame.Ticks(); left > 0 {
		return left
	}
	return 0
}

// Wait sleeps out the rest of the frame and returns the slept duration
// Returns early if ctx is cancelled
func (l *Limiter) Wait(ctx context.Context, frame *Timer) time.Duration {
	left := l.Remaining(frame)
	if left > 0 {
		l.sleep(ctx, left)
	}
	return left
}

func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
