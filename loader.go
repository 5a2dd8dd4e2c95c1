package marquee

import "github.com/tanema/gween/ease"

type loaderPhase uint8

const (
	loaderDelay loaderPhase = iota
	loaderWiping
	loaderRevealing
	loaderWaiting
	loaderExiting
	loaderDone
)

// LoaderLines is the number of wipe columns drawn across the curtain.
const LoaderLines = 20

// Loader plays the intro curtain. After a short delay a row of columns wipes
// across the screen, then the tagline and an Enter button fade in. The
// curtain stays until Enter is pressed; it then fades out while sliding up.
type Loader struct {
	// Wipe is the fill of every column, 0 (a hairline) to 1 (full width).
	Wipe float64
	// Reveal is the tagline and Enter button opacity.
	Reveal float64
	// Curtain is the curtain opacity, 1 while shown and 0 when done.
	Curtain float64
	// Lift is the curtain's vertical offset in pixels during the exit.
	Lift float64

	Tagline string
	Enter   *RevealButton

	Delay        float32
	WipeDuration float32
	FadeDuration float32 // tagline and button fade-in
	ExitDuration float32
	ExitLift     float64

	phase  loaderPhase
	waited float32
	tween  *TweenGroup
	onDone []func()
}

// NewLoader returns a loader with the site's default timing.
func NewLoader() *Loader {
	enter := NewRevealButton("ENTER", Rect{Width: 96, Height: 42})
	enter.Color = Color{R: 0.98, G: 0.97, B: 0.94, A: 1}
	return &Loader{
		Curtain:      1,
		Tagline:      "film foundation",
		Enter:        enter,
		Delay:        0.1,
		WipeDuration: 2,
		FadeDuration: 0.5,
		ExitDuration: 0.7,
		ExitLift:     -100,
	}
}

// Layout centers the Enter button 48px above the bottom of a w by h screen.
func (l *Loader) Layout(w, h float64) {
	b := &l.Enter.Bounds
	b.X = (w - b.Width) / 2
	b.Y = h - b.Height - 48
}

// OnDone registers a callback fired once when the curtain is gone.
func (l *Loader) OnDone(fn func()) {
	l.onDone = append(l.onDone, fn)
}

// Done reports whether the curtain has gone.
func (l *Loader) Done() bool {
	return l.phase == loaderDone
}

// Ready reports whether the Enter button is shown and accepts taps.
func (l *Loader) Ready() bool {
	return l.phase == loaderRevealing || l.phase == loaderWaiting
}

// Exiting reports whether the curtain is on its way out.
func (l *Loader) Exiting() bool {
	return l.phase == loaderExiting
}

// Tap presses Enter when (x, y) hits it while the button is shown. It reports
// whether the tap was consumed.
func (l *Loader) Tap(x, y float64) bool {
	if !l.Ready() || !l.Enter.Contains(x, y) {
		return false
	}
	l.Enter.Tap(x, y)
	l.Exit()
	return true
}

// Exit starts the curtain exit. It is ignored until the button is shown.
func (l *Loader) Exit() {
	if !l.Ready() {
		return
	}
	l.phase = loaderExiting
	l.tween = &TweenGroup{}
	l.tween.Add(&l.Curtain, 0, l.ExitDuration, ease.InOutCubic)
	l.tween.Add(&l.Lift, l.ExitLift, l.ExitDuration, ease.InOutCubic)
	if l.tween.Done {
		l.finish()
	}
}

// Skip jumps to the end of the sequence.
func (l *Loader) Skip() {
	if l.phase == loaderDone {
		return
	}
	l.Wipe, l.Reveal = 1, 1
	l.Curtain, l.Lift = 0, l.ExitLift
	l.finish()
}

// Update advances the sequence by dt seconds.
func (l *Loader) Update(dt float32) {
	switch l.phase {
	case loaderDelay:
		l.waited += dt
		if l.waited >= l.Delay {
			l.phase = loaderWiping
			l.tween = NewTween(&l.Wipe, 1, l.WipeDuration, ease.InOutCubic)
		}
	case loaderWiping:
		l.tween.Update(dt)
		if l.tween.Done {
			l.phase = loaderRevealing
			l.tween = NewTween(&l.Reveal, 1, l.FadeDuration, ease.OutQuad)
		}
	case loaderRevealing:
		l.tween.Update(dt)
		if l.tween.Done {
			l.tween = nil
			l.phase = loaderWaiting
		}
	case loaderExiting:
		l.tween.Update(dt)
		if l.tween.Done {
			l.finish()
		}
	}
	l.Enter.Update(dt)
}

func (l *Loader) finish() {
	l.phase = loaderDone
	l.tween = nil
	for _, fn := range l.onDone {
		fn()
	}
}
