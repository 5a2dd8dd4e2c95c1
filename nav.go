package marquee

import "github.com/tanema/gween/ease"

// NavPanel is the collapsible navigation drawer. Progress runs from 0
// (collapsed) to 1 (open); toggling mid-animation reverses from wherever the
// panel is.
type NavPanel struct {
	Links    []string
	Width    float64
	Duration float32 // seconds for a full open or close

	progress float64
	open     bool
	tween    *TweenGroup
	cues     CuePlayer
}

// NewNavPanel returns a collapsed panel with the given links.
func NewNavPanel(links ...string) *NavPanel {
	return &NavPanel{
		Links:    links,
		Width:    280,
		Duration: 0.45,
	}
}

// Progress returns the open fraction in [0, 1].
func (p *NavPanel) Progress() float64 { return p.progress }

// IsOpen reports the direction the panel is heading.
func (p *NavPanel) IsOpen() bool { return p.open }

// Animating reports whether the panel is moving.
func (p *NavPanel) Animating() bool { return p.tween != nil }

// Open slides the panel in.
func (p *NavPanel) Open() { p.set(true) }

// Close slides the panel out.
func (p *NavPanel) Close() { p.set(false) }

// Toggle flips the panel direction.
func (p *NavPanel) Toggle() { p.set(!p.open) }

func (p *NavPanel) set(open bool) {
	if p.open == open && (p.tween != nil || p.progress == target(open)) {
		return
	}
	p.open = open
	to := target(open)
	remaining := to - p.progress
	if remaining < 0 {
		remaining = -remaining
	}
	fn := ease.OutCubic
	if !open {
		fn = ease.InCubic
	}
	p.tween = NewTween(&p.progress, to, p.Duration*float32(remaining), fn)
	if p.tween.Done {
		p.tween = nil
	}
	if p.cues != nil {
		if open {
			p.cues.Play(CueOpen)
		} else {
			p.cues.Play(CueClose)
		}
	}
}

func target(open bool) float64 {
	if open {
		return 1
	}
	return 0
}

// Update advances the slide by dt seconds.
func (p *NavPanel) Update(dt float32) {
	if p.tween == nil {
		return
	}
	p.tween.Update(dt)
	if p.tween.Done {
		p.tween = nil
	}
}

// Offset returns the panel's left edge for a panel sliding in from the left.
func (p *NavPanel) Offset() float64 {
	return -p.Width + p.progress*p.Width
}

// LinkAt returns the link index under (x, y) when the panel is fully open,
// or -1.
func (p *NavPanel) LinkAt(x, y float64) int {
	if p.progress < 1 {
		return -1
	}
	for i := range p.Links {
		if p.linkRect(i).Contains(x, y) {
			return i
		}
	}
	return -1
}

func (p *NavPanel) linkRect(i int) Rect {
	return Rect{X: p.Offset() + 24, Y: 96 + float64(i)*40, Width: p.Width - 48, Height: 32}
}
