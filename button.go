package marquee

import "github.com/tanema/gween/ease"

// RevealButton is a call-to-action whose fill and label slide in on hover.
type RevealButton struct {
	Label  string
	Bounds Rect
	Color  Color

	// Reveal runs 0 (resting) to 1 (fully revealed). LabelShift is the
	// vertical shift of the label during the reveal.
	Reveal     float64
	LabelShift float64

	Duration float32

	OnClick func()

	hovered bool
	tween   *TweenGroup
}

// NewRevealButton returns a button with the default reveal timing.
func NewRevealButton(label string, bounds Rect) *RevealButton {
	return &RevealButton{
		Label:    label,
		Bounds:   bounds,
		Color:    Color{R: 0.95, G: 0.85, B: 0.55, A: 1},
		Duration: 0.3,
	}
}

// Contains reports whether (x, y) hits the button.
func (b *RevealButton) Contains(x, y float64) bool {
	return b.Bounds.Contains(x, y)
}

// Hovered reports the current hover state.
func (b *RevealButton) Hovered() bool { return b.hovered }

// Hover updates the hover state and reports whether the pointer just
// entered.
func (b *RevealButton) Hover(on bool) bool {
	if on == b.hovered {
		return false
	}
	b.hovered = on
	to, shift := 0.0, 0.0
	fn := ease.InQuad
	if on {
		to, shift = 1, -b.Bounds.Height/4
		fn = ease.OutQuad
	}
	b.tween = &TweenGroup{}
	b.tween.Add(&b.Reveal, to, b.Duration, fn)
	b.tween.Add(&b.LabelShift, shift, b.Duration, fn)
	return on
}

// Tap fires OnClick when (x, y) hits the button. It reports whether the tap
// was consumed.
func (b *RevealButton) Tap(x, y float64) bool {
	if !b.Contains(x, y) {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// Update advances the reveal by dt seconds.
func (b *RevealButton) Update(dt float32) {
	if b.tween == nil {
		return
	}
	b.tween.Update(dt)
	if b.tween.Done {
		b.tween = nil
	}
}
