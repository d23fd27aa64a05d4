// Package actor moves integer-positioned bodies one axis at a time,
// rolling back any axis whose step leaves the world or hits an obstacle.
package actor

import (
	"github.com/lixenwraith/dotlab/geom"
	"github.com/lixenwraith/dotlab/input"
)

// Outcome reports which axes were reverted during a Move
type Outcome struct {
	RolledBackX bool
	RolledBackY bool
}

// Blocked reports whether either axis was reverted
func (o Outcome) Blocked() bool { return o.RolledBackX || o.RolledBackY }

// Actor is a moving entity with integer position and velocity
// Velocity is only changed by input; Move never clamps or zeroes it
type Actor struct {
	x, y       int
	xVel, yVel int
	shape      Shape
	clamp      geom.ClampMode
}

// New creates an actor at (x, y) with the given shape
func New(x, y int, shape Shape) *Actor {
	a := &Actor{x: x, y: y, shape: shape, clamp: geom.DefaultClampMode}
	shape.Place(x, y)
	return a
}

// NewCircle creates a circle actor whose position is its center
func NewCircle(x, y, r int) *Actor {
	return New(x, y, NewCircleShape(x, y, r))
}

// NewBoxes creates a multi-box actor whose position is its top-left
func NewBoxes(x, y int, p Profile) *Actor {
	return New(x, y, NewBoxShape(x, y, p))
}

func (a *Actor) X() int { return a.x }
func (a *Actor) Y() int { return a.y }

// SetX moves the actor without validation
func (a *Actor) SetX(x int) { a.SetPosition(x, a.y) }

// SetY moves the actor without validation
func (a *Actor) SetY(y int) { a.SetPosition(a.x, y) }

// SetPosition moves the actor and re-places its shape
func (a *Actor) SetPosition(x, y int) {
	a.x, a.y = x, y
	a.shape.Place(x, y)
}

func (a *Actor) Velocity() (xVel, yVel int) { return a.xVel, a.yVel }

func (a *Actor) SetVelocity(xVel, yVel int) {
	a.xVel, a.yVel = xVel, yVel
}

func (a *Actor) Shape() Shape { return a.shape }

// Bounds returns the shape extent at the current position
func (a *Actor) Bounds() geom.Rect { return a.shape.Bounds() }

// Obstacle exposes the actor's current geometry for other actors' moves
func (a *Actor) Obstacle() Obstacles { return a.shape.Obstacle() }

// ClampMode returns the circle-vs-rect clamp used by this actor
func (a *Actor) ClampMode() geom.ClampMode { return a.clamp }

// SetClampMode selects the circle-vs-rect clamp used by this actor
func (a *Actor) SetClampMode(m geom.ClampMode) { a.clamp = m }

// Move advances X then Y, reverting each axis independently
// Per-axis rollback lets a diagonal move slide along a wall
func (a *Actor) Move(bounds geom.Rect, obs Obstacles) Outcome {
	return Outcome{
		RolledBackX: a.advance(a.xVel, 0, bounds, obs),
		RolledBackY: a.advance(0, a.yVel, bounds, obs),
	}
}

// advance applies one axis step, returns true if it was rolled back
func (a *Actor) advance(dx, dy int, bounds geom.Rect, obs Obstacles) bool {
	if dx == 0 && dy == 0 {
		return false
	}

	a.SetPosition(a.x+dx, a.y+dy)
	if a.valid(bounds, obs) {
		return false
	}

	a.SetPosition(a.x-dx, a.y-dy)
	return true
}

func (a *Actor) valid(bounds geom.Rect, obs Obstacles) bool {
	if !bounds.Contains(a.shape.Bounds()) {
		return false
	}
	return !a.shape.Collides(obs, a.clamp)
}

// HandleEvent accumulates velocity from a key transition
// Returns false if the key is not part of the binding
func (a *Actor) HandleEvent(ev input.Event, b input.Binding) bool {
	dx, dy, ok := b.Delta(ev.Key)
	if !ok {
		return false
	}
	if !ev.Pressed {
		dx, dy = -dx, -dy
	}
	a.xVel += dx
	a.yVel += dy
	return true
}

// ApplyHeld replaces velocity with the sum of held keys in the binding
func (a *Actor) ApplyHeld(h *input.Held, b input.Binding) {
	a.xVel, a.yVel = h.Velocity(b)
}
