package input

// Binding maps four directional keys to per-axis velocity steps
type Binding struct {
	Up, Down, Left, Right Key
	StepX, StepY          int
}

// ArrowBinding returns the arrow-key set with the same step on both axes
func ArrowBinding(step int) Binding {
	return Binding{Up: KeyUp, Down: KeyDown, Left: KeyLeft, Right: KeyRight, StepX: step, StepY: step}
}

// WASDBinding returns the w/a/s/d set used by a second actor
func WASDBinding(step int) Binding {
	return Binding{Up: KeyW, Down: KeyS, Left: KeyA, Right: KeyD, StepX: step, StepY: step}
}

// WithSteps returns b with separate horizontal and vertical steps
func (b Binding) WithSteps(x, y int) Binding {
	b.StepX, b.StepY = x, y
	return b
}

// Delta returns the velocity contribution of a held key
// ok is false for keys not in the binding
func (b Binding) Delta(k Key) (dx, dy int, ok bool) {
	if k == KeyNone {
		return 0, 0, false
	}
	switch k {
	case b.Up:
		return 0, -b.StepY, true
	case b.Down:
		return 0, b.StepY, true
	case b.Left:
		return -b.StepX, 0, true
	case b.Right:
		return b.StepX, 0, true
	}
	return 0, 0, false
}

// Owns reports whether k drives this binding
func (b Binding) Owns(k Key) bool {
	_, _, ok := b.Delta(k)
	return ok
}
