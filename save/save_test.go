package save

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/dotlab/geom"
)

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, State{X: 120, Y: 45, Level: "Red Level"}); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if got, want := buf.String(), "120 45\nRed Level\n"; got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncode_RejectsLineBreak(t *testing.T) {
	err := Encode(&bytes.Buffer{}, State{Level: "Bad\nLevel"})
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  State
	}{
		{"canonical", "120 45\nRed Level\n", State{120, 45, "Red Level"}},
		{"no trailing newline", "1 2\nBlue Level", State{1, 2, "Blue Level"}},
		{"extra spacing", "  7\t 9  \nWhite Level\n", State{7, 9, "White Level"}},
		{"crlf", "3 4\r\nGreen Level\r\n", State{3, 4, "Green Level"}},
		{"empty level line", "3 4\n\n", State{3, 4, ""}},
		{"negative", "-5 -6\nRed Level\n", State{-5, -6, "Red Level"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	inputs := map[string]string{
		"empty":         "",
		"one number":    "12\nRed Level\n",
		"three numbers": "1 2 3\nRed Level\n",
		"not a number":  "x 2\nRed Level\n",
		"missing level": "1 2\n",
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(in)); !errors.Is(err, ErrMalformed) {
				t.Errorf("Expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	bounds := geom.Rect{W: 640, H: 480}

	s := State{X: 603, Y: 440}
	if s.Sanitize(bounds, 37, 40) {
		t.Errorf("Flush position should be kept, got %+v", s)
	}

	s = State{X: 604, Y: -1}
	if !s.Sanitize(bounds, 37, 40) {
		t.Error("Expected reset")
	}
	if s.X != 0 || s.Y != 0 {
		t.Errorf("Expected both axes reset, got %+v", s)
	}

	s = State{X: 10, Y: 441}
	s.Sanitize(bounds, 37, 40)
	if s.X != 10 || s.Y != 0 {
		t.Errorf("Expected only Y reset, got %+v", s)
	}
}

func TestStoreLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_save")
	want := State{X: 33, Y: 77, Level: "Green Level"}

	if err := Store(path, want); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}

	// Overwrite in place
	want.X = 1
	if err := Store(path, want); err != nil {
		t.Fatalf("Second store failed: %v", err)
	}
	if got, _ := Load(path); got != want {
		t.Errorf("Overwrite not visible: %+v", got)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("Temp files left behind: %d entries", len(entries))
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrNoSave) {
		t.Errorf("Expected ErrNoSave, got %v", err)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_save")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrMalformed) {
		t.Errorf("Expected ErrMalformed, got %v", err)
	}
}
