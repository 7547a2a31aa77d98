package input

// ClickTracker turns press, motion and release into drag deltas and clicks.
// A click is a release at the press position with no motion in between.
type ClickTracker struct {
	lastX, lastY   int
	pressX, pressY int
	dragging       bool
	moved          bool
}

// Down starts a gesture at x, y.
func (c *ClickTracker) Down(x, y int) {
	c.lastX, c.lastY = x, y
	c.pressX, c.pressY = x, y
	c.dragging = true
	c.moved = false
}

// Move returns the delta from the last position while dragging.
// ok is false when no gesture is active.
func (c *ClickTracker) Move(x, y int) (dx, dy int, ok bool) {
	if !c.dragging {
		return 0, 0, false
	}
	dx, dy = x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y
	if dx != 0 || dy != 0 {
		c.moved = true
	}
	return dx, dy, true
}

// Up ends the gesture and reports whether it was a click.
func (c *ClickTracker) Up(x, y int) (click bool) {
	if !c.dragging {
		return false
	}
	c.dragging = false
	return !c.moved && x == c.pressX && y == c.pressY
}

// Dragging reports whether a gesture is active.
func (c *ClickTracker) Dragging() bool {
	return c.dragging
}
