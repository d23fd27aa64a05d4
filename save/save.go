// Package save persists an actor position and the active level name as
//
//	<x> <y>
//	<level name>
//
// and loads it back without interpreting the level name.
package save

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lixenwraith/dotlab/geom"
)

var (
	// ErrMalformed wraps every parse failure
	ErrMalformed = errors.New("malformed save")
	// ErrNoSave is returned by Load when the file does not exist
	ErrNoSave = errors.New("no save file")
)

// State is everything a save file holds
type State struct {
	X, Y  int
	Level string
}

// Encode writes s in the save format
func Encode(w io.Writer, s State) error {
	if strings.ContainsAny(s.Level, "\r\n") {
		return fmt.Errorf("%w: level name contains a line break", ErrMalformed)
	}
	_, err := fmt.Fprintf(w, "%d %d\n%s\n", s.X, s.Y, s.Level)
	return err
}

// Decode parses a save from r
// The level line may be empty but must be present
func Decode(r io.Reader) (State, error) {
	br := bufio.NewReader(r)

	posLine, err := readLine(br)
	if err != nil {
		return State{}, fmt.Errorf("%w: position line: %v", ErrMalformed, err)
	}
	fields := strings.Fields(posLine)
	if len(fields) != 2 {
		return State{}, fmt.Errorf("%w: expected 2 coordinates, got %d", ErrMalformed, len(fields))
	}

	var s State
	if s.X, err = strconv.Atoi(fields[0]); err != nil {
		return State{}, fmt.Errorf("%w: x: %v", ErrMalformed, err)
	}
	if s.Y, err = strconv.Atoi(fields[1]); err != nil {
		return State{}, fmt.Errorf("%w: y: %v", ErrMalformed, err)
	}

	if s.Level, err = readLine(br); err != nil {
		return State{}, fmt.Errorf("%w: level line: %v", ErrMalformed, err)
	}
	return s, nil
}

// readLine returns the next line without its terminator
// A final line without a trailing newline is accepted
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Sanitize resets any axis whose actor extent (w, h) would leave bounds to 0
// Returns true if anything was reset
func (s *State) Sanitize(bounds geom.Rect, w, h int) bool {
	reset := false
	if s.X < bounds.Left() || s.X > bounds.Right()-w {
		s.X = 0
		reset = true
	}
	if s.Y < bounds.Top() || s.Y > bounds.Bottom()-h {
		s.Y = 0
		reset = true
	}
	return reset
}

// Load reads a save file
func Load(path string) (State, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return State{}, ErrNoSave
		}
		return State{}, fmt.Errorf("open save: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return State{}, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Store writes the save through a temp file so a crash never truncates it
func Store(path string, s State) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, s); err != nil {
		tmp.Close()
		return fmt.Errorf("encode save: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp save: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}
