// Package world describes the static space actors move in: level size,
// walls, background, and the camera that scrolls over it.
package world

import "github.com/lixenwraith/dotlab/geom"

// Screen dimensions in pixels shared by every scene
const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

// Level is a named playfield with static walls
type Level struct {
	Name       string
	Width      int
	Height     int
	Background RGB
	Walls      []geom.Rect
}

// Bounds returns the level area anchored at the origin
func (l Level) Bounds() geom.Rect {
	return geom.Rect{W: l.Width, H: l.Height}
}

// Color levels selectable with keys 1-4 and persisted by name in saves
var ColorLevels = []Level{
	{Name: "White Level", Width: ScreenWidth, Height: ScreenHeight, Background: RGBWhite},
	{Name: "Red Level", Width: ScreenWidth, Height: ScreenHeight, Background: RGBRed},
	{Name: "Green Level", Width: ScreenWidth, Height: ScreenHeight, Background: RGBGreen},
	{Name: "Blue Level", Width: ScreenWidth, Height: ScreenHeight, Background: RGBBlue},
}

// LevelByName looks up a color level, ok=false if the name is unknown
func LevelByName(name string) (Level, bool) {
	for _, l := range ColorLevels {
		if l.Name == name {
			return l, true
		}
	}
	return Level{}, false
}

// LevelByIndex returns the 1-based color level, ok=false if out of range
func LevelByIndex(n int) (Level, bool) {
	if n < 1 || n > len(ColorLevels) {
		return Level{}, false
	}
	return ColorLevels[n-1], true
}
