package marquee

import (
	"math"
	"testing"
)

func TestSpringConverges(t *testing.T) {
	s := Spring{Stiffness: cursorStiffness, Damping: cursorDamping}
	for i := 0; i < 60; i++ {
		s.Update(100, 1.0/60)
	}
	if math.Abs(s.Value-100) > 0.01 || math.Abs(s.Velocity) > 0.1 {
		t.Errorf("Value/Velocity = %v/%v after 1s, want 100/0", s.Value, s.Velocity)
	}
}

func TestSpringTrails(t *testing.T) {
	s := Spring{Stiffness: cursorStiffness, Damping: cursorDamping}
	s.Update(100, 1.0/60)
	if s.Value <= 0 || s.Value >= 50 {
		t.Errorf("Value = %v after one frame, want a small step toward 100", s.Value)
	}
}

func TestCursorIndicatorFollows(t *testing.T) {
	c := NewCursorIndicator()
	c.Update(1.0/60, 40, 50, false, false)
	if x, y := c.Center(); x != 40 || y != 50 {
		t.Fatalf("Center = (%v, %v) after the first update, want (40, 50)", x, y)
	}
	c.Update(1.0/60, 340, 250, false, false)
	if x, _ := c.Center(); x <= 40 || x >= 340 {
		t.Errorf("x = %v, want trailing between 40 and 340", x)
	}
	for i := 0; i < 60; i++ {
		c.Update(1.0/60, 340, 250, false, false)
	}
	if x, y := c.Center(); math.Abs(x-340) > 0.05 || math.Abs(y-250) > 0.05 {
		t.Errorf("Center = (%v, %v), want (340, 250)", x, y)
	}
}

func TestCursorIndicatorPressShrinks(t *testing.T) {
	c := NewCursorIndicator()
	if c.Size != 96 || c.Label != "SCROLL" {
		t.Fatalf("Size/Label = %v/%q, want 96/SCROLL", c.Size, c.Label)
	}
	for i := 0; i < 30; i++ {
		c.Update(1.0/60, 0, 0, true, false)
	}
	if !c.Pressed() || c.Size != 82 {
		t.Errorf("Pressed/Size = %t/%v, want true/82", c.Pressed(), c.Size)
	}
	for i := 0; i < 30; i++ {
		c.Update(1.0/60, 0, 0, false, false)
	}
	if c.Pressed() || c.Size != 96 {
		t.Errorf("Pressed/Size = %t/%v after release, want false/96", c.Pressed(), c.Size)
	}
}

func TestCursorIndicatorHidesOverButtons(t *testing.T) {
	c := NewCursorIndicator()
	c.Update(1.0/60, 0, 0, false, true)
	if !c.Hidden() {
		t.Error("ring shown over a button")
	}
	c.Update(1.0/60, 0, 0, false, false)
	if c.Hidden() {
		t.Error("ring still hidden off the button")
	}
}
