package marquee

import "github.com/tanema/gween/ease"

// Cursor ring defaults.
const (
	cursorStiffness   = 300
	cursorDamping     = 30
	cursorSize        = 96
	cursorPressedSize = 82
	cursorResize      = 0.2 // seconds
	springStep        = 1.0 / 240
)

// Spring is a unit-mass damped spring following a target on one axis.
type Spring struct {
	Stiffness float64
	Damping   float64

	Value    float64
	Velocity float64
}

// Update integrates the spring toward target over dt seconds using
// semi-implicit Euler in fixed substeps.
func (s *Spring) Update(target float64, dt float64) {
	for dt > 0 {
		h := dt
		if h > springStep {
			h = springStep
		}
		a := s.Stiffness*(target-s.Value) - s.Damping*s.Velocity
		s.Velocity += a * h
		s.Value += s.Velocity * h
		dt -= h
	}
}

// CursorIndicator is the ring that trails the pointer with a "SCROLL" label.
// It shrinks while pressed and hides over buttons.
type CursorIndicator struct {
	X, Y Spring
	// Size is the ring diameter.
	Size float64
	// Label is drawn while the pointer is up.
	Label string

	pressed bool
	hidden  bool
	placed  bool
	tween   *TweenGroup
}

// NewCursorIndicator returns a ring with the site's spring and sizes.
func NewCursorIndicator() *CursorIndicator {
	return &CursorIndicator{
		X:     Spring{Stiffness: cursorStiffness, Damping: cursorDamping},
		Y:     Spring{Stiffness: cursorStiffness, Damping: cursorDamping},
		Size:  cursorSize,
		Label: "SCROLL",
	}
}

// Center returns the ring center.
func (c *CursorIndicator) Center() (x, y float64) {
	return c.X.Value, c.Y.Value
}

// Pressed reports whether the ring shows the pressed state.
func (c *CursorIndicator) Pressed() bool { return c.pressed }

// Hidden reports whether the ring is hidden over a button.
func (c *CursorIndicator) Hidden() bool { return c.hidden }

// Update follows the pointer at (x, y) for dt seconds. The first update
// places the ring under the pointer.
func (c *CursorIndicator) Update(dt float32, x, y float64, pressed, overButton bool) {
	c.hidden = overButton
	if !c.placed {
		c.X.Value, c.Y.Value = x, y
		c.placed = true
	}
	c.X.Update(x, float64(dt))
	c.Y.Update(y, float64(dt))

	if pressed != c.pressed {
		c.pressed = pressed
		to := float64(cursorSize)
		if pressed {
			to = cursorPressedSize
		}
		c.tween = NewTween(&c.Size, to, cursorResize, ease.OutQuad)
	}
	if c.tween != nil {
		c.tween.Update(dt)
		if c.tween.Done {
			c.tween = nil
		}
	}
}
