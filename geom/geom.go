// Package geom holds the integer pixel-space shapes and the stateless
// collision predicates shared by every actor kind.
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Circle is a center point and radius in pixels
type Circle struct {
	X, Y int
	R    int
}

// Rect is an axis-aligned box anchored at its top-left corner
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the integer midpoint of the rect
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether inner lies fully within r, edges inclusive
func (r Rect) Contains(inner Rect) bool {
	return inner.Left() >= r.Left() && inner.Right() <= r.Right() &&
		inner.Top() >= r.Top() && inner.Bottom() <= r.Bottom()
}

// Translate returns r moved by (dx, dy)
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Bounds returns the bounding box of the circle
func (c Circle) Bounds() Rect {
	return Rect{X: c.X - c.R, Y: c.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// Clamp limits v to [lo, hi]
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance returns the Euclidean distance between two integer points
func Distance(x1, y1, x2, y2 int) float64 {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	return math.Sqrt(dx*dx + dy*dy)
}
