package actor

import "github.com/lixenwraith/dotlab/geom"

// Size is one collision box's dimensions within a profile
type Size struct {
	W, H int
}

// Profile is the static box table approximating a sprite silhouette
// Boxes stack downward from the top-left, each centered horizontally in Width
type Profile struct {
	Width, Height int
	Boxes         []Size
}

// DotProfile is the 20x20 round dot approximated by 11 horizontal slices
var DotProfile = Profile{
	Width:  20,
	Height: 20,
	Boxes: []Size{
		{6, 1}, {10, 1}, {14, 1}, {16, 2}, {18, 2},
		{20, 6},
		{18, 2}, {16, 2}, {14, 1}, {10, 1}, {6, 1},
	},
}

// Layout returns the boxes for an actor anchored at (x, y)
func (p Profile) Layout(x, y int) []geom.Rect {
	return p.LayoutInto(make([]geom.Rect, len(p.Boxes)), x, y)
}

// LayoutInto writes the layout into dst, which must have len(p.Boxes)
func (p Profile) LayoutInto(dst []geom.Rect, x, y int) []geom.Rect {
	row := 0
	for i, b := range p.Boxes {
		dst[i] = geom.Rect{
			X: x + (p.Width-b.W)/2,
			Y: y + row,
			W: b.W,
			H: b.H,
		}
		row += b.H
	}
	return dst
}

// StackedHeight sums the box heights
func (p Profile) StackedHeight() int {
	h := 0
	for _, b := range p.Boxes {
		h += b.H
	}
	return h
}
