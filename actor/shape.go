package actor

import (
	"slices"

	"github.com/lixenwraith/dotlab/geom"
)

// Obstacles is the static and dynamic geometry an actor must not enter
// A shape collides if it hits either set
type Obstacles struct {
	Circles []geom.Circle
	Rects   []geom.Rect
}

// Merge returns the union of o and others
func (o Obstacles) Merge(others ...Obstacles) Obstacles {
	out := Obstacles{
		Circles: slices.Clone(o.Circles),
		Rects:   slices.Clone(o.Rects),
	}
	for _, other := range others {
		out.Circles = append(out.Circles, other.Circles...)
		out.Rects = append(out.Rects, other.Rects...)
	}
	return out
}

// Shape is an actor's hit geometry, always derived from the anchor position
type Shape interface {
	// Place recomputes the geometry for the anchor (x, y)
	Place(x, y int)
	// Bounds is the extent checked against world limits
	Bounds() geom.Rect
	// Collides tests against both obstacle sets
	Collides(o Obstacles, mode geom.ClampMode) bool
	// Obstacle exposes this shape as geometry for other actors
	Obstacle() Obstacles
}

// CircleShape anchors at the circle center
type CircleShape struct {
	c geom.Circle
}

// NewCircleShape creates a circle of radius r centered at (x, y)
func NewCircleShape(x, y, r int) *CircleShape {
	return &CircleShape{c: geom.Circle{X: x, Y: y, R: r}}
}

func (s *CircleShape) Place(x, y int) {
	s.c.X, s.c.Y = x, y
}

func (s *CircleShape) Bounds() geom.Rect { return s.c.Bounds() }

func (s *CircleShape) Circle() geom.Circle { return s.c }

func (s *CircleShape) Collides(o Obstacles, mode geom.ClampMode) bool {
	if geom.CircleIntersectsAnyMode(s.c, o.Rects, mode) {
		return true
	}
	for _, other := range o.Circles {
		if geom.CirclesIntersect(s.c, other) {
			return true
		}
	}
	return false
}

func (s *CircleShape) Obstacle() Obstacles {
	return Obstacles{Circles: []geom.Circle{s.c}}
}

// BoxShape anchors at the top-left of the profile's bounding box
type BoxShape struct {
	profile Profile
	x, y    int
	boxes   []geom.Rect
}

// NewBoxShape lays out p at (x, y)
func NewBoxShape(x, y int, p Profile) *BoxShape {
	s := &BoxShape{profile: p, boxes: make([]geom.Rect, len(p.Boxes))}
	s.Place(x, y)
	return s
}

// Place rebuilds every box from the profile; boxes never move on their own
func (s *BoxShape) Place(x, y int) {
	s.x, s.y = x, y
	s.profile.LayoutInto(s.boxes, x, y)
}

func (s *BoxShape) Bounds() geom.Rect {
	return geom.Rect{X: s.x, Y: s.y, W: s.profile.Width, H: s.profile.Height}
}

// Boxes returns a copy of the current collision boxes
func (s *BoxShape) Boxes() []geom.Rect { return slices.Clone(s.boxes) }

func (s *BoxShape) Profile() Profile { return s.profile }

func (s *BoxShape) Collides(o Obstacles, mode geom.ClampMode) bool {
	if geom.RectSetsIntersect(s.boxes, o.Rects) {
		return true
	}
	for _, c := range o.Circles {
		if geom.CircleIntersectsAnyMode(c, s.boxes, mode) {
			return true
		}
	}
	return false
}

func (s *BoxShape) Obstacle() Obstacles {
	return Obstacles{Rects: s.Boxes()}
}
