package marquee

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
	noPointer           = -1
)

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool
	canDrag  bool        // press landed inside the gesture bounds
	button   MouseButton // button captured at press time
}

// --- Handler registry ---

type intentHandler struct {
	id uint32
	fn func(Intent)
}

type handlerRegistry struct {
	intents []intentHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered callback. Components register
// on mount and call Remove on unmount.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires. Removing twice is
// a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.intents
	for i := range s {
		if s[i].id == h.id {
			// Fresh backing array: a dispatch in progress keeps ranging over
			// the old one.
			h.reg.intents = append(s[:i:i], s[i+1:]...)
			return
		}
	}
}

// GestureSource turns raw mouse and touch input into carousel intents. It
// runs one state machine per pointer; only one pointer drives a gesture at a
// time. On mouse surfaces only the primary button drags or taps.
//
// A primary press inside Bounds emits IntentStart at once so a coasting
// carousel stops under the pointer. Moves are held back until the pointer
// leaves the drag dead zone; a release inside it is a tap. Presses outside
// Bounds only ever produce taps.
//
// Call Poll once per tick from the game's Update.
type GestureSource struct {
	// Bounds limits where a drag may begin. An empty rect accepts the
	// whole screen.
	Bounds Rect
	// DeviceInput enables reading Ebitengine mouse and touch state. Headless
	// runs turn it off and drive the source through injected events.
	DeviceInput bool

	handlers     handlerRegistry
	pointers     [maxPointers]pointerState
	active       int // pointer driving the current gesture
	dragDeadZone float64
	clock        time.Duration

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticPointerEvent

	cursorX, cursorY float64
}

// NewGestureSource creates a source reading device input with the default
// drag dead zone.
func NewGestureSource() *GestureSource {
	return &GestureSource{
		DeviceInput:  true,
		active:       noPointer,
		dragDeadZone: defaultDragDeadZone,
	}
}

// OnIntent registers a callback for every intent the source emits.
func (g *GestureSource) OnIntent(fn func(Intent)) CallbackHandle {
	g.handlers.nextID++
	id := g.handlers.nextID
	g.handlers.intents = append(g.handlers.intents, intentHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &g.handlers}
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (g *GestureSource) SetDragDeadZone(pixels float64) {
	g.dragDeadZone = pixels
}

// Clock returns the source's monotonic time, advanced by Poll.
func (g *GestureSource) Clock() time.Duration {
	return g.clock
}

// Cursor returns the last known primary pointer position.
func (g *GestureSource) Cursor() (x, y float64) {
	return g.cursorX, g.cursorY
}

// Dragging reports whether the active pointer has left the dead zone.
func (g *GestureSource) Dragging() bool {
	return g.active != noPointer && g.pointers[g.active].dragging
}

// Pressed reports whether a primary pointer is down.
func (g *GestureSource) Pressed() bool {
	return g.active != noPointer && g.pointers[g.active].down
}

// Poll advances the clock by dt and processes one tick of input. Injected
// events take priority over device input.
func (g *GestureSource) Poll(dt time.Duration) {
	g.clock += dt
	if g.processInjectedInput() {
		return
	}
	if !g.DeviceInput {
		return
	}
	g.processMousePointer()
	g.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (g *GestureSource) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	g.processPointer(0, x, y, pressed, button)
}

// processTouchPointers handles touch input (pointers 1-9).
func (g *GestureSource) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(g.prevTouchIDs[:0])
	g.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := g.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		g.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if g.touchUsed[i] && !activeSlots[i] {
			ps := &g.pointers[i]
			if ps.down {
				g.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft)
			}
			g.touchUsed[i] = false
			g.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (g *GestureSource) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if g.touchUsed[i] && g.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !g.touchUsed[i] {
			g.touchUsed[i] = true
			g.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
func (g *GestureSource) processPointer(pointerID int, x, y float64, pressed bool, button MouseButton) {
	ps := &g.pointers[pointerID]
	if pointerID == 0 || g.active == pointerID {
		g.cursorX, g.cursorY = x, y
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.dragging = false
		ps.canDrag = g.accepts(x, y)
		if g.active == noPointer && button == MouseButtonLeft {
			g.active = pointerID
			if ps.canDrag {
				g.fire(Intent{Kind: IntentStart, PointerID: pointerID, X: x, Y: y, Time: g.clock})
			}
		}

	case !pressed && ps.down:
		if g.active == pointerID {
			if ps.dragging {
				g.fire(Intent{Kind: IntentEnd, PointerID: pointerID, X: x, Y: y, Time: g.clock})
			} else {
				g.fire(Intent{Kind: IntentTap, PointerID: pointerID, X: x, Y: y, Time: g.clock})
			}
			g.active = noPointer
		}
		ps.down = false
		ps.dragging = false

	case pressed && ps.down:
		if g.active == pointerID && (x != ps.lastX || y != ps.lastY) {
			if !ps.dragging && ps.canDrag {
				dx := x - ps.startX
				dy := y - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > g.dragDeadZone {
					ps.dragging = true
				}
			}
			if ps.dragging {
				g.fire(Intent{Kind: IntentMove, PointerID: pointerID, X: x, Y: y, Time: g.clock})
			}
		}
		ps.lastX, ps.lastY = x, y
	}
}

// accepts reports whether a press at (x, y) may turn into a drag.
func (g *GestureSource) accepts(x, y float64) bool {
	return g.Bounds.Empty() || g.Bounds.Contains(x, y)
}

// fire dispatches to the handlers registered when the intent was raised.
// Handlers may register or remove handlers while it runs.
func (g *GestureSource) fire(in Intent) {
	for _, h := range g.handlers.intents {
		h.fn(in)
	}
}
