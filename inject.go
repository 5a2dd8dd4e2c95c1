package marquee

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

// InjectPress queues a primary button press at the given screen coordinates.
// The event is consumed on the next Poll.
func (g *GestureSource) InjectPress(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectMove queues a pointer move with the button held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (g *GestureSource) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (g *GestureSource) InjectRelease(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: false,
		button:  MouseButtonLeft,
	})
}

// InjectTap queues a press followed by a release at the same coordinates.
// Consumes two polls.
func (g *GestureSource) InjectTap(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate polls, and release at
// (toX, toY). The sequence consumes `frames` polls; the minimum is 2.
//
// The release point equals the last move target when frames > 2, so the
// release carries the gesture's velocity.
func (g *GestureSource) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		g.InjectMove(x, y)
	}
	g.InjectRelease(toX, toY)
}

// Pending returns the number of queued injected events.
func (g *GestureSource) Pending() int {
	return len(g.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer on the mouse slot. Returns true if an event was
// consumed, in which case device input is skipped for the tick.
func (g *GestureSource) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	g.processPointer(0, evt.x, evt.y, evt.pressed, evt.button)
	return true
}
