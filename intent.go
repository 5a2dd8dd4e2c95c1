package marquee

import (
	"math"
	"time"
)

// IntentKind identifies a gesture intent.
type IntentKind uint8

const (
	IntentStart IntentKind = iota // pointer went down on the carousel
	IntentMove                    // pointer moved while dragging
	IntentEnd                     // pointer released after dragging
	IntentTap                     // pointer released inside the dead zone
)

func (k IntentKind) String() string {
	switch k {
	case IntentStart:
		return "start"
	case IntentMove:
		return "move"
	case IntentEnd:
		return "end"
	case IntentTap:
		return "tap"
	default:
		return "unknown"
	}
}

// Intent is a gesture event produced by a GestureSource (or by hand in
// tests). Time is measured from an arbitrary origin shared by one gesture.
type Intent struct {
	Kind      IntentKind
	PointerID int
	X, Y      float64
	Time      time.Duration
}

// State is the carousel state machine state.
type State uint8

const (
	StateIdle     State = iota // resting on an item
	StateDragging              // following a pointer
	StateSettling              // coasting and snapping to an item
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// DragSession is the ephemeral state of one drag gesture. It exists from
// pointer-down to pointer-up.
type DragSession struct {
	StartPointerY   float64
	StartPosition   float64
	LastSampleTime  time.Duration
	LastSampleValue float64
	Velocity        float64

	tracker VelocityTracker
}

// Position is the carousel's virtual position. Logical is the continuous
// accumulator; the rendered position is Window.Wrap(Logical).
type Position struct {
	Logical float64
	State   State
	Session *DragSession

	// Target is the snapped settle destination, valid while Settling.
	Target float64
	// Coast reports whether the settle carries release momentum.
	Coast bool
	// Velocity is the release velocity of the last gesture.
	Velocity float64
}

// Reduce applies one intent to a position and returns the new position. It
// never mutates p or its session. Intents that do not apply in the current
// state are ignored.
func Reduce(cfg Config, p Position, in Intent) Position {
	switch in.Kind {
	case IntentStart:
		s := &DragSession{
			StartPointerY:   in.Y,
			StartPosition:   p.Logical,
			LastSampleTime:  in.Time,
			LastSampleValue: p.Logical,
		}
		s.tracker.Interval = cfg.SampleInterval
		s.tracker.Window = cfg.VelocityWindow
		s.tracker.Reset(in.Time, p.Logical)
		p.State = StateDragging
		p.Session = s
		p.Target = 0
		p.Coast = false

	case IntentMove:
		if p.State != StateDragging || p.Session == nil {
			return p
		}
		s := *p.Session
		p.Logical = s.StartPosition + (in.Y - s.StartPointerY)
		if s.tracker.Add(in.Time, p.Logical) {
			s.LastSampleTime = in.Time
			s.LastSampleValue = p.Logical
		}
		s.Velocity = s.tracker.Velocity()
		p.Session = &s

	case IntentEnd:
		if p.State != StateDragging || p.Session == nil {
			return p
		}
		// The release point is the last sample of the gesture.
		s := *p.Session
		p.Logical = s.StartPosition + (in.Y - s.StartPointerY)
		s.tracker.Add(in.Time, p.Logical)
		v := s.tracker.VelocityAt(in.Time)
		p = release(cfg, p, v)

	case IntentTap:
		// A press that never left the dead zone lets go where it caught the
		// carousel, with no momentum.
		if p.State != StateDragging || p.Session == nil {
			return p
		}
		p = release(cfg, p, 0)
	}
	return p
}

// release ends the drag with velocity v and picks the settle target.
func release(cfg Config, p Position, v float64) Position {
	p.Session = nil
	p.Velocity = v
	if math.Abs(v) < cfg.VelocityThreshold {
		p.Target = Snap(p.Logical, cfg.ItemHeight)
		p.Coast = false
	} else {
		p.Target = Snap(Project(p.Logical, v, cfg.MomentumMultiplier), cfg.ItemHeight)
		p.Coast = true
	}
	if p.Target == p.Logical {
		p.State = StateIdle
		return p
	}
	p.State = StateSettling
	return p
}

// Project returns the coast destination for a release at logical with
// velocity v (px/ms) before snapping.
func Project(logical, v, momentum float64) float64 {
	return logical + v*momentum
}
