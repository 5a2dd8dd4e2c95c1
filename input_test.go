package marquee

import (
	"testing"
	"time"
)

const tick = 16 * time.Millisecond

func headlessSource() (*GestureSource, *[]Intent) {
	g := NewGestureSource()
	g.DeviceInput = false
	var got []Intent
	g.OnIntent(func(in Intent) { got = append(got, in) })
	return g, &got
}

func kinds(in []Intent) []IntentKind {
	out := make([]IntentKind, len(in))
	for i := range in {
		out[i] = in[i].Kind
	}
	return out
}

func equalKinds(a, b []IntentKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGestureDragEmitsStartMoveEnd(t *testing.T) {
	g, got := headlessSource()
	g.processPointer(0, 100, 400, true, MouseButtonLeft)
	g.Poll(tick)
	g.processPointer(0, 100, 380, true, MouseButtonLeft)
	g.Poll(tick)
	g.processPointer(0, 100, 300, true, MouseButtonLeft)
	g.processPointer(0, 100, 300, false, MouseButtonLeft)

	want := []IntentKind{IntentStart, IntentMove, IntentMove, IntentEnd}
	if !equalKinds(kinds(*got), want) {
		t.Fatalf("intents = %v, want %v", kinds(*got), want)
	}
	start := (*got)[0]
	if start.Y != 400 || start.Time != 0 {
		t.Errorf("start = %+v, want anchored at the press (y 400, t 0)", start)
	}
	if end := (*got)[3]; end.Y != 300 || end.Time != 2*tick {
		t.Errorf("end = %+v, want y 300 at %v", end, 2*tick)
	}
}

func TestGestureDeadZoneTap(t *testing.T) {
	g, got := headlessSource()
	g.processPointer(0, 100, 400, true, MouseButtonLeft)
	g.processPointer(0, 102, 401, true, MouseButtonLeft)
	g.processPointer(0, 102, 401, false, MouseButtonLeft)

	want := []IntentKind{IntentStart, IntentTap}
	if !equalKinds(kinds(*got), want) {
		t.Fatalf("intents = %v, want %v", kinds(*got), want)
	}
}

func TestGesturePressStartsAtOnce(t *testing.T) {
	g, got := headlessSource()
	g.Poll(tick)
	g.processPointer(0, 100, 400, true, MouseButtonLeft)
	if !equalKinds(kinds(*got), []IntentKind{IntentStart}) {
		t.Fatalf("intents = %v, want a start on press", kinds(*got))
	}
	if in := (*got)[0]; in.Y != 400 || in.Time != tick {
		t.Errorf("start = %+v, want y 400 at %v", in, tick)
	}
	if !g.Pressed() || g.Dragging() {
		t.Errorf("Pressed/Dragging = %t/%t, want true/false", g.Pressed(), g.Dragging())
	}
}

func TestGestureCustomDeadZone(t *testing.T) {
	g, got := headlessSource()
	g.SetDragDeadZone(50)
	g.processPointer(0, 0, 0, true, MouseButtonLeft)
	g.processPointer(0, 0, 40, true, MouseButtonLeft)
	if !equalKinds(kinds(*got), []IntentKind{IntentStart}) {
		t.Fatalf("intents = %v inside a 50px dead zone, want only the start", kinds(*got))
	}
	g.processPointer(0, 0, 60, true, MouseButtonLeft)
	if !equalKinds(kinds(*got), []IntentKind{IntentStart, IntentMove}) {
		t.Errorf("intents = %v, want start and move", kinds(*got))
	}
}

func TestGestureBoundsLimitDrags(t *testing.T) {
	g, got := headlessSource()
	g.Bounds = Rect{X: 0, Y: 100, Width: 400, Height: 400}

	// Outside the bounds a drag degrades to a tap on release.
	g.processPointer(0, 10, 10, true, MouseButtonLeft)
	g.processPointer(0, 10, 90, true, MouseButtonLeft)
	g.processPointer(0, 10, 90, false, MouseButtonLeft)
	if !equalKinds(kinds(*got), []IntentKind{IntentTap}) {
		t.Fatalf("outside intents = %v, want a tap", kinds(*got))
	}

	*got = nil
	g.processPointer(0, 10, 300, true, MouseButtonLeft)
	g.processPointer(0, 10, 200, true, MouseButtonLeft)
	g.processPointer(0, 10, 200, false, MouseButtonLeft)
	if !equalKinds(kinds(*got), []IntentKind{IntentStart, IntentMove, IntentEnd}) {
		t.Errorf("inside intents = %v, want a drag", kinds(*got))
	}
}

func TestGestureIgnoresSecondaryButtons(t *testing.T) {
	for _, b := range []MouseButton{MouseButtonRight, MouseButtonMiddle} {
		g, got := headlessSource()
		g.processPointer(0, 0, 0, true, b)
		g.processPointer(0, 0, 100, true, b)
		g.processPointer(0, 0, 100, false, b)
		if len(*got) != 0 {
			t.Errorf("button %d: intents = %v, want none", b, kinds(*got))
		}
	}
}

func TestGestureSinglePointerDrives(t *testing.T) {
	g, got := headlessSource()
	g.processPointer(1, 0, 0, true, MouseButtonLeft)
	g.processPointer(2, 50, 50, true, MouseButtonLeft)
	g.processPointer(2, 50, 200, true, MouseButtonLeft)
	if !equalKinds(kinds(*got), []IntentKind{IntentStart}) {
		t.Fatalf("intents = %v, want only the first pointer's start", kinds(*got))
	}
	g.processPointer(1, 0, 100, true, MouseButtonLeft)
	if !g.Dragging() {
		t.Fatal("first pointer should be dragging")
	}
	for _, in := range *got {
		if in.PointerID != 1 {
			t.Errorf("intent from pointer %d, want 1", in.PointerID)
		}
	}
}

func TestGestureHandleRemove(t *testing.T) {
	g := NewGestureSource()
	g.DeviceInput = false
	var a, b int
	ha := g.OnIntent(func(Intent) { a++ })
	g.OnIntent(func(Intent) { b++ })

	g.InjectTap(10, 10)
	g.Poll(tick)
	g.Poll(tick)
	ha.Remove()
	ha.Remove()
	g.InjectTap(10, 10)
	g.Poll(tick)
	g.Poll(tick)

	// Each tap is a start on press and a tap on release.
	if a != 2 || b != 4 {
		t.Errorf("a/b = %d/%d, want 2/4", a, b)
	}
	CallbackHandle{}.Remove()
}

func TestGestureHandlerRemovesItselfDuringDispatch(t *testing.T) {
	g := NewGestureSource()
	g.DeviceInput = false
	var first, second int
	var h CallbackHandle
	h = g.OnIntent(func(Intent) {
		first++
		h.Remove()
	})
	g.OnIntent(func(Intent) { second++ })

	g.InjectTap(10, 10)
	g.Poll(tick)
	g.Poll(tick)
	if first != 1 || second != 2 {
		t.Errorf("first/second = %d/%d, want 1/2", first, second)
	}
}

func TestGestureHandlerRemovesLaterHandlerDuringDispatch(t *testing.T) {
	g := NewGestureSource()
	g.DeviceInput = false
	var later CallbackHandle
	calls := 0
	g.OnIntent(func(Intent) { later.Remove() })
	later = g.OnIntent(func(Intent) { calls++ })
	g.OnIntent(func(Intent) { calls++ })

	g.InjectTap(10, 10)
	g.Poll(tick)
	g.Poll(tick)
	// The press was dispatched to all three; the release to the survivors.
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestGestureClockAdvancesWithoutInput(t *testing.T) {
	g := NewGestureSource()
	g.DeviceInput = false
	for i := 0; i < 3; i++ {
		g.Poll(tick)
	}
	if g.Clock() != 3*tick {
		t.Errorf("Clock = %v, want %v", g.Clock(), 3*tick)
	}
}

func TestGestureCursorTracksPrimary(t *testing.T) {
	g, _ := headlessSource()
	g.processPointer(0, 12, 34, false, MouseButtonLeft)
	if x, y := g.Cursor(); x != 12 || y != 34 {
		t.Errorf("Cursor = (%v, %v), want (12, 34)", x, y)
	}
}
