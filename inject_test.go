package marquee

import "testing"

func TestInjectTapConsumesTwoPolls(t *testing.T) {
	g, got := headlessSource()
	g.InjectTap(50, 60)
	if g.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", g.Pending())
	}
	g.Poll(tick)
	if !equalKinds(kinds(*got), []IntentKind{IntentStart}) || g.Pending() != 1 {
		t.Fatalf("after press: intents %v, pending %d", kinds(*got), g.Pending())
	}
	g.Poll(tick)
	if !equalKinds(kinds(*got), []IntentKind{IntentStart, IntentTap}) {
		t.Fatalf("intents = %v, want a start and a tap", kinds(*got))
	}
	if in := (*got)[1]; in.X != 50 || in.Y != 60 {
		t.Errorf("tap at (%v, %v), want (50, 60)", in.X, in.Y)
	}
}

func TestInjectDragFrames(t *testing.T) {
	tests := []struct {
		name    string
		frames  int
		pending int
		want    []IntentKind
	}{
		{"two frames is a tap", 2, 2, []IntentKind{IntentStart, IntentTap}},
		{"below minimum clamps", 0, 2, []IntentKind{IntentStart, IntentTap}},
		{"three frames", 3, 3, []IntentKind{IntentStart, IntentMove, IntentEnd}},
		{"six frames", 6, 6, []IntentKind{IntentStart, IntentMove, IntentMove, IntentMove, IntentMove, IntentEnd}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, got := headlessSource()
			g.InjectDrag(100, 400, 100, -300, tt.frames)
			if g.Pending() != tt.pending {
				t.Fatalf("Pending = %d, want %d", g.Pending(), tt.pending)
			}
			for g.Pending() > 0 {
				g.Poll(tick)
			}
			if !equalKinds(kinds(*got), tt.want) {
				t.Errorf("intents = %v, want %v", kinds(*got), tt.want)
			}
		})
	}
}

func TestInjectDragReachesTarget(t *testing.T) {
	g, got := headlessSource()
	g.InjectDrag(0, 400, 0, 0, 6)
	for g.Pending() > 0 {
		g.Poll(tick)
	}
	moves := (*got)[1 : len(*got)-1]
	if last := moves[len(moves)-1]; last.Y != 0 {
		t.Errorf("last move y = %v, want 0", last.Y)
	}
	if end := (*got)[len(*got)-1]; end.Y != 0 {
		t.Errorf("release y = %v, want 0", end.Y)
	}
	for i := 1; i < len(moves); i++ {
		if moves[i].Y >= moves[i-1].Y {
			t.Errorf("move %d y = %v, not below %v", i, moves[i].Y, moves[i-1].Y)
		}
	}
}

func TestInjectDrivesCarousel(t *testing.T) {
	c := newTestCarousel(t)
	g := NewGestureSource()
	g.DeviceInput = false
	g.OnIntent(c.Apply)

	g.InjectDrag(100, 400, 100, -300, 12)
	for g.Pending() > 0 {
		g.Poll(tick)
		c.Update(float32(tick.Seconds()))
	}
	if c.State() != StateSettling {
		t.Fatalf("State = %s, want settling after a fling", c.State())
	}
	settle(t, c)
	if c.Index() == 0 {
		t.Error("carousel did not leave item 0")
	}
}

func TestInjectPriorityOverDevice(t *testing.T) {
	g := NewGestureSource()
	g.InjectPress(1, 2)
	g.Poll(tick)
	if x, y := g.Cursor(); x != 1 || y != 2 {
		t.Errorf("Cursor = (%v, %v), want the injected (1, 2)", x, y)
	}
}

func TestInjectPressStopsCoast(t *testing.T) {
	c := newTestCarousel(t)
	g := NewGestureSource()
	g.DeviceInput = false
	g.OnIntent(c.Apply)

	g.InjectDrag(100, 400, 100, -300, 12)
	for g.Pending() > 0 {
		g.Poll(tick)
		c.Update(float32(tick.Seconds()))
	}
	for i := 0; i < 5; i++ {
		c.Update(float32(tick.Seconds()))
	}
	if c.State() != StateSettling {
		t.Fatalf("State = %s, want settling after a fling", c.State())
	}

	// Press and hold without moving.
	g.InjectPress(360, 450)
	for i := 0; i < 10; i++ {
		g.InjectMove(360, 450)
	}
	g.Poll(tick)
	caught := c.Logical()
	for g.Pending() > 0 {
		g.Poll(tick)
		c.Update(float32(tick.Seconds()))
	}
	if c.State() != StateDragging {
		t.Fatalf("State = %s while held, want dragging", c.State())
	}
	if c.Logical() != caught {
		t.Errorf("Logical moved from %v to %v under a still pointer", caught, c.Logical())
	}

	// Letting go inside the dead zone snaps to the nearest item.
	g.InjectRelease(360, 450)
	g.Poll(tick)
	if c.State() != StateSettling || c.Position().Coast {
		t.Fatalf("State/Coast = %s/%t after release, want a plain settle", c.State(), c.Position().Coast)
	}
	if want := Snap(caught, c.Config().ItemHeight); c.Target() != want {
		t.Errorf("Target = %v, want %v", c.Target(), want)
	}
	settle(t, c)
}
