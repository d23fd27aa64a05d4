package input

// Key identifies a physical key independent of the terminal backend
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyEnter
	KeyEscape
	KeySpace
	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:   "none",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyW:      "w",
	KeyA:      "a",
	KeyS:      "s",
	KeyD:      "d",
	Key0:      "0",
	Key1:      "1",
	Key2:      "2",
	Key3:      "3",
	Key4:      "4",
	Key5:      "5",
	Key6:      "6",
	Key7:      "7",
	Key8:      "8",
	Key9:      "9",
	KeyEnter:  "enter",
	KeyEscape: "escape",
	KeySpace:  "space",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// KeyFromRune maps printable runes to keys, case-insensitive for letters
func KeyFromRune(r rune) Key {
	switch r {
	case 'w', 'W':
		return KeyW
	case 'a', 'A':
		return KeyA
	case 's', 'S':
		return KeyS
	case 'd', 'D':
		return KeyD
	case ' ':
		return KeySpace
	}
	if r >= '0' && r <= '9' {
		return Key0 + Key(r-'0')
	}
	return KeyNone
}

// Digit returns the numeric value of a digit key, ok=false otherwise
func (k Key) Digit() (int, bool) {
	if k >= Key0 && k <= Key9 {
		return int(k - Key0), true
	}
	return 0, false
}

// Event is a single key transition delivered to the frame
type Event struct {
	Key     Key
	Pressed bool // false = released
}

// Press and Release are shorthand constructors
func Press(k Key) Event   { return Event{Key: k, Pressed: true} }
func Release(k Key) Event { return Event{Key: k, Pressed: false} }
