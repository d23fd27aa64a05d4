package input

import (
	"testing"
	"time"
)

func TestBindingDelta(t *testing.T) {
	b := ArrowBinding(4)

	tests := []struct {
		key    Key
		dx, dy int
		ok     bool
	}{
		{KeyUp, 0, -4, true},
		{KeyDown, 0, 4, true},
		{KeyLeft, -4, 0, true},
		{KeyRight, 4, 0, true},
		{KeyW, 0, 0, false},
		{KeyNone, 0, 0, false},
	}

	for _, tt := range tests {
		dx, dy, ok := b.Delta(tt.key)
		if dx != tt.dx || dy != tt.dy || ok != tt.ok {
			t.Errorf("Delta(%s) = (%d, %d, %v), want (%d, %d, %v)",
				tt.key, dx, dy, ok, tt.dx, tt.dy, tt.ok)
		}
	}

	w := WASDBinding(1)
	if !w.Owns(KeyA) || w.Owns(KeyLeft) {
		t.Error("WASD binding ownership mismatch")
	}
}

func TestBindingWithSteps(t *testing.T) {
	b := ArrowBinding(1).WithSteps(9, 10)
	if dx, _, _ := b.Delta(KeyLeft); dx != -9 {
		t.Errorf("Left dx = %d, want -9", dx)
	}
	if _, dy, _ := b.Delta(KeyDown); dy != 10 {
		t.Errorf("Down dy = %d, want 10", dy)
	}
}

func TestBindingZeroValue(t *testing.T) {
	var b Binding
	if b.Owns(KeyNone) {
		t.Error("Zero binding must not claim KeyNone")
	}
}

func TestKeyFromRune(t *testing.T) {
	cases := map[rune]Key{
		'w': KeyW, 'A': KeyA, 's': KeyS, 'D': KeyD,
		'0': Key0, '4': Key4, '9': Key9, ' ': KeySpace, 'x': KeyNone,
	}
	for r, want := range cases {
		if got := KeyFromRune(r); got != want {
			t.Errorf("KeyFromRune(%q) = %s, want %s", r, got, want)
		}
	}

	if d, ok := Key3.Digit(); !ok || d != 3 {
		t.Errorf("Key3.Digit() = %d, %v", d, ok)
	}
	if _, ok := KeyUp.Digit(); ok {
		t.Error("KeyUp is not a digit")
	}
}

func TestHeld_PressRelease(t *testing.T) {
	h := NewHeld()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	if !h.Press(KeyUp, now) {
		t.Error("First press should report new")
	}
	if h.Press(KeyUp, now.Add(time.Millisecond)) {
		t.Error("Repeat press should not report new")
	}
	if !h.IsHeld(KeyUp) || h.Len() != 1 {
		t.Fatal("Expected KeyUp held")
	}
	if !h.Release(KeyUp) {
		t.Error("Release of held key should report true")
	}
	if h.Release(KeyUp) {
		t.Error("Second release should report false")
	}
}

func TestHeld_Expire(t *testing.T) {
	h := NewHeld()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	timeout := 100 * time.Millisecond

	h.Press(KeyLeft, start)
	h.Press(KeyUp, start)
	h.Press(KeyRight, start.Add(80*time.Millisecond))

	expired := h.Expire(start.Add(150*time.Millisecond), timeout)
	if len(expired) != 2 || expired[0] != KeyUp || expired[1] != KeyLeft {
		t.Fatalf("Expected [up left] expired, got %v", expired)
	}
	if !h.IsHeld(KeyRight) {
		t.Error("KeyRight was refreshed within timeout and should remain held")
	}

	// Exactly at the timeout is still held
	if got := h.Expire(start.Add(180*time.Millisecond), timeout); len(got) != 0 {
		t.Errorf("Expected nothing expired at the boundary, got %v", got)
	}
}

func TestHeld_Velocity(t *testing.T) {
	h := NewHeld()
	now := time.Now()
	arrows := ArrowBinding(4)

	h.Press(KeyLeft, now)
	h.Press(KeyRight, now)
	h.Press(KeyDown, now)
	h.Press(KeyW, now)

	vx, vy := h.Velocity(arrows)
	if vx != 0 || vy != 4 {
		t.Errorf("Velocity = (%d, %d), want (0, 4)", vx, vy)
	}

	vx, vy = h.Velocity(WASDBinding(2))
	if vx != 0 || vy != -2 {
		t.Errorf("WASD velocity = (%d, %d), want (0, -2)", vx, vy)
	}

	h.Clear()
	if vx, vy := h.Velocity(arrows); vx != 0 || vy != 0 {
		t.Error("Expected zero velocity after Clear")
	}
}

func TestParseMode(t *testing.T) {
	if m, ok := ParseMode("held"); !ok || m != ModeHeld {
		t.Error("held not parsed")
	}
	if m, ok := ParseMode(""); !ok || m != ModeAccumulate {
		t.Error("empty should default to accumulate")
	}
	if _, ok := ParseMode("edge"); ok {
		t.Error("unknown mode accepted")
	}
}
