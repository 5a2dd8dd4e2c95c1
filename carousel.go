package marquee

import (
	"fmt"
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// EventSink is the interface for optional ECS integration.
// When set on a Carousel, lifecycle events are forwarded to it.
type EventSink interface {
	EmitEvent(event CarouselEvent)
}

// CarouselEventKind identifies a carousel lifecycle event.
type CarouselEventKind uint8

const (
	EventDragStart   CarouselEventKind = iota // a drag session began
	EventRelease                              // the pointer was released
	EventSettle                               // the carousel came to rest
	EventIndexChange                          // the item under the anchor changed
)

// CarouselEvent carries carousel state for the ECS bridge.
type CarouselEvent struct {
	Kind     CarouselEventKind
	Index    int
	Logical  float64
	Physical float64
	Velocity float64
	Target   float64
}

// Carousel is an infinite, wrap-around vertical list of a fixed number of
// items driven by drag gestures with momentum. It owns its position; all
// mutation happens through Apply, Update and the programmatic scroll
// methods, from a single goroutine.
type Carousel struct {
	cfg    Config
	window Window
	pos    Position

	physical float64
	index    int
	settle   *TweenGroup
	caught   bool // the current press interrupted a settle

	sink  EventSink
	debug bool

	onIndexChange []func(old, cur int)
	onSettle      []func(index int)
}

// NewCarousel validates cfg and returns a carousel resting on item 0.
func NewCarousel(cfg Config) (*Carousel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new carousel: %w", err)
	}
	c := &Carousel{
		cfg:    cfg,
		window: cfg.Window(),
	}
	c.sync()
	return c, nil
}

// Config returns the construction config.
func (c *Carousel) Config() Config { return c.cfg }

// Window returns the wrap window.
func (c *Carousel) Window() Window { return c.window }

// Position returns a snapshot of the virtual position.
func (c *Carousel) Position() Position { return c.pos }

// Logical returns the continuous (unwrapped) position.
func (c *Carousel) Logical() float64 { return c.pos.Logical }

// Physical returns the wrapped position applied to the rendered container.
func (c *Carousel) Physical() float64 { return c.physical }

// State returns the current state machine state.
func (c *Carousel) State() State { return c.pos.State }

// Index returns the item currently aligned with the viewport anchor.
func (c *Carousel) Index() int { return c.index }

// Target returns the settle destination. Valid while settling.
func (c *Carousel) Target() float64 { return c.pos.Target }

// Velocity returns the live drag velocity while dragging, and the release
// velocity otherwise.
func (c *Carousel) Velocity() float64 {
	if c.pos.Session != nil {
		return c.pos.Session.Velocity
	}
	return c.pos.Velocity
}

// SetEventSink sets the optional ECS bridge.
func (c *Carousel) SetEventSink(sink EventSink) {
	c.sink = sink
}

// SetDebugMode enables state transition logging on stderr.
func (c *Carousel) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// OnIndexChange registers a callback fired whenever the aligned item changes.
func (c *Carousel) OnIndexChange(fn func(old, cur int)) {
	c.onIndexChange = append(c.onIndexChange, fn)
}

// OnSettle registers a callback fired when the carousel comes to rest.
func (c *Carousel) OnSettle(fn func(index int)) {
	c.onSettle = append(c.onSettle, fn)
}

// Begin starts a drag at pointer y. Shorthand for Apply(IntentStart).
func (c *Carousel) Begin(y float64, t time.Duration) {
	c.Apply(Intent{Kind: IntentStart, Y: y, Time: t})
}

// Move follows the pointer to y. Shorthand for Apply(IntentMove).
func (c *Carousel) Move(y float64, t time.Duration) {
	c.Apply(Intent{Kind: IntentMove, Y: y, Time: t})
}

// End releases the pointer at y. Shorthand for Apply(IntentEnd).
func (c *Carousel) End(y float64, t time.Duration) {
	c.Apply(Intent{Kind: IntentEnd, Y: y, Time: t})
}

// Apply feeds one intent through the reducer. A start cancels any in-flight
// settle at its current value; an end kicks off the settle tween. A tap
// releases a held press in place, snapping only when the press caught the
// carousel between items.
func (c *Carousel) Apply(in Intent) {
	prev := c.pos.State
	if in.Kind == IntentStart {
		c.caught = c.settle != nil
		if c.settle != nil {
			c.settle.Cancel()
			c.settle = nil
		}
	}

	c.pos = Reduce(c.cfg, c.pos, in)
	c.sync()

	switch {
	case in.Kind == IntentStart && c.pos.State == StateDragging:
		c.debugf("drag start at %.1f (was %s)", c.pos.Logical, prev)
		c.emit(EventDragStart)
	case in.Kind == IntentEnd && prev == StateDragging:
		c.debugf("release v=%.3f px/ms target=%.1f coast=%t", c.pos.Velocity, c.pos.Target, c.pos.Coast)
		c.emit(EventRelease)
		c.startSettle()
	case in.Kind == IntentTap && prev == StateDragging:
		c.emit(EventRelease)
		if c.pos.State == StateSettling || c.caught {
			c.startSettle()
		}
	}
}

// Wheel nudges the carousel by one item per notch. Positive dy scrolls back
// toward earlier items.
func (c *Carousel) Wheel(dy float64) {
	if c.pos.State == StateDragging || dy == 0 {
		return
	}
	steps := -1
	if dy > 0 {
		steps = 1
	}
	c.Step(-steps)
}

// Step settles delta items forward (positive) or back (negative) from the
// current target.
func (c *Carousel) Step(delta int) {
	if c.pos.State == StateDragging || delta == 0 {
		return
	}
	from := c.restingPoint()
	c.settleTo(from-float64(delta)*c.cfg.ItemHeight, false)
}

// ScrollTo settles on the given item along the shortest wrap path.
func (c *Carousel) ScrollTo(index int) {
	if c.pos.State == StateDragging {
		return
	}
	n := c.cfg.ItemCount
	index = ((index % n) + n) % n
	physical := c.window.Wrap(-float64(index) * c.cfg.ItemHeight)
	target := Snap(c.window.Unwrap(physical, c.restingPoint()), c.cfg.ItemHeight)
	c.settleTo(target, false)
}

// Update advances the settle animation by dt seconds.
func (c *Carousel) Update(dt float32) {
	if c.pos.State != StateSettling || c.settle == nil {
		return
	}
	c.settle.Update(dt)
	if c.settle.Done {
		c.pos.Logical = c.pos.Target
		c.pos.State = StateIdle
		c.settle = nil
		c.sync()
		c.debugf("settled on %d at %.1f", c.index, c.pos.Logical)
		c.emit(EventSettle)
		for _, fn := range c.onSettle {
			fn(c.index)
		}
		return
	}
	c.sync()
}

// restingPoint is where the carousel will come to rest if left alone.
func (c *Carousel) restingPoint() float64 {
	if c.pos.State == StateSettling {
		return c.pos.Target
	}
	return Snap(c.pos.Logical, c.cfg.ItemHeight)
}

func (c *Carousel) settleTo(target float64, coast bool) {
	if c.settle != nil {
		c.settle.Cancel()
		c.settle = nil
	}
	c.pos.Target = target
	c.pos.Coast = coast
	c.pos.Velocity = 0
	if target == c.pos.Logical {
		c.pos.State = StateIdle
		return
	}
	c.pos.State = StateSettling
	c.startSettle()
}

func (c *Carousel) startSettle() {
	if c.pos.State != StateSettling {
		// Released exactly on an item.
		c.emit(EventSettle)
		for _, fn := range c.onSettle {
			fn(c.index)
		}
		return
	}
	duration, fn := c.cfg.SettleDuration, ease.OutCubic
	if c.pos.Coast {
		duration, fn = c.cfg.CoastDuration, ease.OutExpo
	}
	// A zero duration lands on the target now and finishes on the next Update.
	c.settle = NewTween(&c.pos.Logical, c.pos.Target, duration, fn)
}

// sync recomputes the derived physical position and index.
func (c *Carousel) sync() {
	c.physical = c.window.Wrap(c.pos.Logical)
	idx := IndexAt(c.pos.Logical, c.cfg.ItemHeight, c.cfg.ItemCount)
	if idx != c.index {
		old := c.index
		c.index = idx
		c.emit(EventIndexChange)
		for _, fn := range c.onIndexChange {
			fn(old, idx)
		}
	}
}

func (c *Carousel) emit(kind CarouselEventKind) {
	if c.sink == nil {
		return
	}
	c.sink.EmitEvent(CarouselEvent{
		Kind:     kind,
		Index:    c.index,
		Logical:  c.pos.Logical,
		Physical: c.physical,
		Velocity: c.pos.Velocity,
		Target:   c.pos.Target,
	})
}

// AnchorOffset returns how far the physical position sits from the nearest
// item boundary, in [-itemHeight/2, itemHeight/2].
func (c *Carousel) AnchorOffset() float64 {
	return c.pos.Logical - Snap(c.pos.Logical, c.cfg.ItemHeight)
}

// Progress returns the fractional item position in [0, ItemCount), useful
// for pagination indicators.
func (c *Carousel) Progress() float64 {
	n := float64(c.cfg.ItemCount)
	p := math.Mod(-c.pos.Logical/c.cfg.ItemHeight, n)
	if p < 0 {
		p += n
	}
	if p >= n {
		p = 0
	}
	return p
}
