package geom

// ClampMode selects how the closest point on a rect is found for circle tests
type ClampMode uint8

const (
	// ClampLegacy clamps both axes with the rect height, so X is wrong for
	// any non-square rect
	ClampLegacy ClampMode = iota
	// ClampExact clamps X with width and Y with height
	ClampExact
)

// DefaultClampMode is used by CircleIntersectsAny
const DefaultClampMode = ClampLegacy

func (m ClampMode) String() string {
	switch m {
	case ClampLegacy:
		return "legacy"
	case ClampExact:
		return "exact"
	default:
		return "unknown"
	}
}

// ParseClampMode maps a config string to a mode, ok=false if unrecognized
func ParseClampMode(s string) (ClampMode, bool) {
	switch s {
	case "legacy", "":
		return ClampLegacy, true
	case "exact":
		return ClampExact, true
	}
	return ClampLegacy, false
}

// CirclesIntersect reports whether the centers are closer than the radius sum
// Touching circles (distance == sum) do not intersect
func CirclesIntersect(a, b Circle) bool {
	return Distance(a.X, a.Y, b.X, b.Y) < float64(a.R+b.R)
}

// ClosestPoint returns the point of r nearest to the circle center under mode
func ClosestPoint(c Circle, r Rect, mode ClampMode) (x, y int) {
	xExtent := r.H
	if mode == ClampExact {
		xExtent = r.W
	}
	x = Clamp(c.X, r.X, r.X+xExtent)
	y = Clamp(c.Y, r.Y, r.Y+r.H)
	return x, y
}

// CircleIntersectsAny reports whether c hits any box, using DefaultClampMode
func CircleIntersectsAny(c Circle, boxes []Rect) bool {
	return CircleIntersectsAnyMode(c, boxes, DefaultClampMode)
}

// CircleIntersectsAnyMode stops at the first box whose closest point lies
// strictly inside the circle
func CircleIntersectsAnyMode(c Circle, boxes []Rect, mode ClampMode) bool {
	for _, b := range boxes {
		cx, cy := ClosestPoint(c, b, mode)
		if Distance(c.X, c.Y, cx, cy) < float64(c.R) {
			return true
		}
	}
	return false
}

// RectsOverlap is the strict AABB test; shared edges are not an overlap
func RectsOverlap(a, b Rect) bool {
	return !(a.Bottom() <= b.Top() || a.Top() >= b.Bottom() ||
		a.Right() <= b.Left() || a.Left() >= b.Right())
}

// RectSetsIntersect reports whether any rect of a overlaps any rect of b
func RectSetsIntersect(a, b []Rect) bool {
	for _, ra := range a {
		for _, rb := range b {
			if RectsOverlap(ra, rb) {
				return true
			}
		}
	}
	return false
}
