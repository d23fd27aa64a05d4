package world

import "github.com/lixenwraith/dotlab/geom"

// Camera is the visible window into a level larger than the screen
type Camera struct {
	View geom.Rect
}

// NewCamera creates a camera at the origin with the given view size
func NewCamera(w, h int) *Camera {
	return &Camera{View: geom.Rect{W: w, H: h}}
}

// Follow centers the view on target and keeps it inside the level
// A level smaller than the view pins the camera to the origin
func (c *Camera) Follow(target geom.Rect, levelW, levelH int) {
	cx, cy := target.Center()
	c.View.X = geom.Clamp(cx-c.View.W/2, 0, max(levelW-c.View.W, 0))
	c.View.Y = geom.Clamp(cy-c.View.H/2, 0, max(levelH-c.View.H, 0))
}

// ToView converts level coordinates to view-relative coordinates
func (c *Camera) ToView(x, y int) (int, int) {
	return x - c.View.X, y - c.View.Y
}

// Visible reports whether r overlaps the view
func (c *Camera) Visible(r geom.Rect) bool {
	return geom.RectsOverlap(c.View, r)
}
