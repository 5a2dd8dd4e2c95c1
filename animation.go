package marquee

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const maxTweenFields = 4

// TweenGroup animates up to 4 float64 fields simultaneously. Create one with
// NewTween or Add fields to a zero group, then call Update(dt) each frame.
// The group writes values straight into the fields.
//
// There is no global animation manager; owners call Update themselves.
//
// Each gween tween runs an eased 0..1 progress; values are interpolated in
// float64 so large fields keep full precision in flight.
type TweenGroup struct {
	tweens [maxTweenFields]*gween.Tween
	starts [maxTweenFields]float64
	ends   [maxTweenFields]float64
	fields [maxTweenFields]*float64
	count  int
	Done   bool
}

// NewTween creates a group animating field from its current value to `to`
// over duration seconds. A non-positive duration jumps straight to `to`.
func NewTween(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.Add(field, to, duration, fn)
	return g
}

// Add appends a field to the group. Fields past the fourth are set to their
// end value immediately.
func (g *TweenGroup) Add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	if field == nil {
		return
	}
	if g.count >= maxTweenFields || duration <= 0 {
		*field = to
		if g.count == 0 {
			g.Done = true
		}
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	g.tweens[g.count] = gween.New(0, 1, duration, fn)
	g.starts[g.count] = *field
	g.ends[g.count] = to
	g.fields[g.count] = field
	g.count++
	g.Done = false
}

// Update advances all tweens by dt seconds and writes the values to their
// fields. Finished fields land exactly on their float64 end value.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		p, finished := g.tweens[i].Update(dt)
		if finished {
			*g.fields[i] = g.ends[i]
			continue
		}
		*g.fields[i] = lerp(g.starts[i], g.ends[i], float64(p))
		allDone = false
	}
	g.Done = allDone
}

// Cancel stops the group, leaving fields at their current values.
func (g *TweenGroup) Cancel() {
	g.Done = true
}
