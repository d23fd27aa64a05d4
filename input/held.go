package input

import (
	"sort"
	"time"
)

// Mode selects how key transitions become actor velocity
type Mode uint8

const (
	// ModeAccumulate adds a delta on press and subtracts it on release
	// A lost release permanently biases velocity
	ModeAccumulate Mode = iota
	// ModeHeld recomputes velocity each frame from the held-key set
	ModeHeld
)

func (m Mode) String() string {
	if m == ModeHeld {
		return "held"
	}
	return "accumulate"
}

// ParseMode maps a config string to a Mode, ok=false if unrecognized
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "accumulate", "":
		return ModeAccumulate, true
	case "held":
		return ModeHeld, true
	}
	return ModeAccumulate, false
}

// Held tracks which keys are currently down and when each was last seen
// Terminals report repeats but never releases, so Expire synthesizes them
type Held struct {
	keys map[Key]time.Time
}

// NewHeld creates an empty held-key set
func NewHeld() *Held {
	return &Held{keys: make(map[Key]time.Time)}
}

// Press marks k as held at now, returns true if it was not already held
func (h *Held) Press(k Key, now time.Time) bool {
	was := h.IsHeld(k)
	h.keys[k] = now
	return !was
}

// Release clears k, returns true if it was held
func (h *Held) Release(k Key) bool {
	if _, ok := h.keys[k]; !ok {
		return false
	}
	delete(h.keys, k)
	return true
}

// IsHeld reports whether k is down
func (h *Held) IsHeld(k Key) bool {
	_, ok := h.keys[k]
	return ok
}

// Len returns the number of held keys
func (h *Held) Len() int {
	return len(h.keys)
}

// Keys returns held keys in ascending order
func (h *Held) Keys() []Key {
	out := make([]Key, 0, len(h.keys))
	for k := range h.keys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Expire releases keys not refreshed within timeout and returns them sorted
func (h *Held) Expire(now time.Time, timeout time.Duration) []Key {
	var expired []Key
	for k, seen := range h.keys {
		if now.Sub(seen) > timeout {
			expired = append(expired, k)
		}
	}
	for _, k := range expired {
		h.Release(k)
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i] < expired[j] })
	return expired
}

// Velocity sums the deltas of all held keys owned by b
func (h *Held) Velocity(b Binding) (vx, vy int) {
	for k := range h.keys {
		if dx, dy, ok := b.Delta(k); ok {
			vx += dx
			vy += dy
		}
	}
	return vx, vy
}

// Clear releases everything, e.g. on focus loss
func (h *Held) Clear() {
	clear(h.keys)
}
