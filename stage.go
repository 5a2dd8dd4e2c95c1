package marquee

import (
	"fmt"
	"image"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Card geometry relative to the item slot.
const (
	cardWidthRatio  = 0.62
	cardHeightRatio = 0.86
	cardInset       = 18.0
	cardImageTravel = 0.25 // share of the parallax offset applied to the image layer
)

// Stage is the presentation shell: it wires the catalogue, carousel, gesture
// source, intro loader, nav panel and call-to-action button into an
// ebiten.Game.
type Stage struct {
	ClearColor Color
	ShowFPS    bool

	// ScreenshotDir is the directory where screenshots are saved.
	// Defaults to "screenshots".
	ScreenshotDir string

	catalogue *Catalogue
	carousel  *Carousel
	gestures  *GestureSource
	loader    *Loader
	nav       *NavPanel
	menu      *RevealButton
	cta       *RevealButton
	cursor    *CursorIndicator
	title     *TitleRoll
	cues      CuePlayer
	runner    *ScriptRunner

	mounted []CallbackHandle

	width, height float64
	styles        []ItemStyle

	screenshotQueue []string
	debug           bool
	onSelect        []func(Item)
}

// NewStage builds a stage for items. cfg.ItemCount is taken from the item
// list.
func NewStage(items []Item, cfg Config) (*Stage, error) {
	cat, err := NewCatalogue(items)
	if err != nil {
		return nil, fmt.Errorf("new stage: %w", err)
	}
	cfg.ItemCount = cat.Len()
	car, err := NewCarousel(cfg)
	if err != nil {
		return nil, fmt.Errorf("new stage: %w", err)
	}

	s := &Stage{
		ClearColor:    Color{R: 0.06, G: 0.05, B: 0.08, A: 1},
		ScreenshotDir: "screenshots",
		catalogue:     cat,
		carousel:      car,
		gestures:      NewGestureSource(),
		loader:        NewLoader(),
		nav:           NewNavPanel("Programme", "Tickets", "Venues", "Jury", "Press"),
		menu:          NewRevealButton("MENU", Rect{X: 20, Y: 20, Width: 72, Height: 28}),
		cta:           NewRevealButton("BOOK TICKETS", Rect{Width: 150, Height: 36}),
		cursor:        NewCursorIndicator(),
		title:         NewTitleRoll(cat.At(0).Title),
		styles:        make([]ItemStyle, 0, minCopies*cat.Len()),
	}
	s.gestures.SetDragDeadZone(cfg.DragDeadZone)
	s.menu.OnClick = s.nav.Toggle
	s.cta.OnClick = func() {
		item := s.catalogue.At(s.carousel.Index())
		for _, fn := range s.onSelect {
			fn(item)
		}
	}
	car.OnIndexChange(func(_, cur int) {
		s.title.SetText(s.catalogue.At(cur).Title)
	})
	car.OnSettle(func(int) {
		if s.cues != nil {
			s.cues.Play(CueSnap)
		}
	})
	s.Mount()
	return s, nil
}

// Mount registers the stage's input handlers. NewStage mounts the stage;
// calling Mount again is a no-op.
func (s *Stage) Mount() {
	if len(s.mounted) > 0 {
		return
	}
	s.mounted = append(s.mounted, s.gestures.OnIntent(s.handleIntent))
}

// Unmount releases every handler registered by Mount.
func (s *Stage) Unmount() {
	for _, h := range s.mounted {
		h.Remove()
	}
	s.mounted = s.mounted[:0]
}

// Catalogue returns the stage's items.
func (s *Stage) Catalogue() *Catalogue { return s.catalogue }

// Carousel returns the stage's carousel.
func (s *Stage) Carousel() *Carousel { return s.carousel }

// Gestures returns the stage's gesture source.
func (s *Stage) Gestures() *GestureSource { return s.gestures }

// Loader returns the intro loader.
func (s *Stage) Loader() *Loader { return s.loader }

// Cursor returns the trailing cursor ring.
func (s *Stage) Cursor() *CursorIndicator { return s.cursor }

// Title returns the rolling title of the current item.
func (s *Stage) Title() *TitleRoll { return s.title }

// Nav returns the navigation panel.
func (s *Stage) Nav() *NavPanel { return s.nav }

// SetCuePlayer sets the audio cue player. Nil silences the stage.
func (s *Stage) SetCuePlayer(p CuePlayer) {
	s.cues = p
	s.nav.cues = p
}

// SetScript attaches a gesture script. The runner is stepped once per tick
// after the loader finishes.
func (s *Stage) SetScript(r *ScriptRunner) {
	s.runner = r
}

// SetDebugMode enables per-frame stats and carousel transition logging.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.carousel.SetDebugMode(enabled)
}

// OnSelect registers a callback fired when the call-to-action is tapped.
func (s *Stage) OnSelect(fn func(Item)) {
	s.onSelect = append(s.onSelect, fn)
}

// handleIntent feeds every intent to the carousel, which lets go of a held
// press on a tap, and routes taps on to the chrome. During the intro only
// the Enter button listens.
func (s *Stage) handleIntent(in Intent) {
	if !s.loader.Done() {
		if in.Kind == IntentTap {
			s.loader.Tap(in.X, in.Y)
		}
		return
	}
	if s.nav.IsOpen() && in.Kind == IntentStart {
		return
	}
	s.carousel.Apply(in)
	if in.Kind == IntentTap {
		s.tap(in.X, in.Y)
	}
}

func (s *Stage) tap(x, y float64) {
	if s.menu.Tap(x, y) {
		return
	}
	if s.nav.IsOpen() {
		if i := s.nav.LinkAt(x, y); i >= 0 {
			s.debugf("nav link %q", s.nav.Links[i])
		}
		s.nav.Close()
		return
	}
	s.cta.Tap(x, y)
}

// Update implements ebiten.Game.
func (s *Stage) Update() error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	dt := float32(1.0 / float64(tps))
	tick := time.Second / time.Duration(tps)

	s.loader.Update(dt)
	if s.loader.Done() && s.runner != nil {
		s.runner.Step(s.gestures, s.Screenshot)
	}
	s.gestures.Poll(tick)
	if s.gestures.DeviceInput {
		if s.loader.Done() {
			s.processKeys()
		} else {
			s.processIntroKeys()
		}
	}

	s.carousel.Update(dt)
	s.nav.Update(dt)
	s.title.Update(dt)

	cx, cy := s.gestures.Cursor()
	overButton := false
	if s.loader.Done() {
		s.menu.Hover(s.menu.Contains(cx, cy))
		if s.cta.Hover(!s.nav.IsOpen() && s.cta.Contains(cx, cy)) && s.cues != nil {
			s.cues.Play(CueHover)
		}
		overButton = s.menu.Hovered() || s.cta.Hovered()
	} else if s.loader.Ready() {
		overButton = s.loader.Enter.Contains(cx, cy)
		s.loader.Enter.Hover(overButton)
	}
	s.cursor.Update(dt, cx, cy, s.gestures.Pressed(), overButton)
	s.menu.Update(dt)
	s.cta.Update(dt)

	if s.debug {
		s.debugLog(debugStats{updateTime: time.Since(t0), cards: len(s.styles)})
	}
	return nil
}

// processIntroKeys lets Enter dismiss the curtain once it is shown, and
// Escape skip it outright.
func (s *Stage) processIntroKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.loader.Exit()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.loader.Skip()
	}
}

// processKeys handles keyboard and wheel navigation.
func (s *Stage) processKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyJ):
		s.carousel.Step(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyK):
		s.carousel.Step(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.nav.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		s.carousel.ScrollTo(0)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		s.carousel.Wheel(wy)
	}
}

// Layout implements ebiten.Game. The carousel accepts drags anywhere on
// screen; until the first layout every projection is neutral.
func (s *Stage) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.width, s.height = float64(outsideWidth), float64(outsideHeight)
	s.gestures.Bounds = Rect{Width: s.width, Height: s.height}
	s.cta.Bounds.X = 20
	s.cta.Bounds.Y = s.height - s.cta.Bounds.Height - 20
	s.loader.Layout(s.width, s.height)
	return outsideWidth, outsideHeight
}

// Styles projects every rendered card for the current position. The result
// is reused across calls.
func (s *Stage) Styles() []ItemStyle {
	cfg := s.carousel.Config()
	copies := CopiesFor(s.height, s.carousel.Window().Span())
	s.styles = ProjectAll(s.styles[:0], copies, s.catalogue.Len(),
		s.carousel.Physical(), s.height, cfg.ItemHeight, cfg.ParallaxDamping)
	return s.styles
}

// Draw implements ebiten.Game.
func (s *Stage) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	screen.Fill(s.ClearColor.RGBA())
	if s.height <= 0 || s.width <= 0 {
		return
	}

	s.drawCards(screen)
	s.drawTitle(screen)
	s.drawButton(screen, s.cta)
	s.drawNav(screen)
	s.drawButton(screen, s.menu)
	s.drawLoader(screen)
	s.drawCursor(screen)
	if s.ShowFPS {
		drawFPS(screen, s.width)
	}

	if s.debug {
		s.debugLog(debugStats{drawTime: time.Since(t0), cards: len(s.styles)})
	}
	s.flushScreenshots(screen)
}

func (s *Stage) drawCards(screen *ebiten.Image) {
	cfg := s.carousel.Config()
	itemH := cfg.ItemHeight
	cardW := s.width * cardWidthRatio
	cardH := itemH * cardHeightRatio

	n := s.catalogue.Len()
	for i, st := range s.Styles() {
		if !st.Visible(s.height, itemH) {
			continue
		}
		item := s.catalogue.At(i % n)
		w, h := cardW*st.Scale, cardH*st.Scale
		x := (s.width - w) / 2
		y := st.Y + (itemH-h)/2

		drawRect(screen, x, y, w, h, Color{R: 0.12, G: 0.11, B: 0.14, A: 1}, st.Opacity)

		// Image layer travels against the scroll and stays inside the frame.
		travel := clamp(st.ImageOffset*cardImageTravel, -cardInset, cardInset)
		drawRect(screen, x+cardInset, y+cardInset+travel, w-2*cardInset, h-2*cardInset-math.Abs(travel),
			posterColor(item.ID), st.Opacity)

		// Content layer travels with it.
		ty := int(y + h - 3*cardInset - st.ContentOffset*cardImageTravel/2)
		ebitenutil.DebugPrintAt(screen, item.Title, int(x+2*cardInset), ty)
		ebitenutil.DebugPrintAt(screen, item.Subtitle, int(x+2*cardInset), ty+16)
	}
}

func (s *Stage) drawButton(screen *ebiten.Image, b *RevealButton) {
	r := b.Bounds
	drawRect(screen, r.X, r.Y, r.Width, r.Height, Color{R: 1, G: 1, B: 1, A: 0.15}, 1)
	drawRect(screen, r.X, r.Y, r.Width*b.Reveal, r.Height, b.Color, 1)
	ebitenutil.DebugPrintAt(screen, b.Label, int(r.X+10), int(r.Y+r.Height/2-8+b.LabelShift))
}

func (s *Stage) drawNav(screen *ebiten.Image) {
	p := s.nav.Progress()
	if p <= 0 {
		return
	}
	drawRect(screen, 0, 0, s.width, s.height, Color{A: 1}, 0.5*p)
	x := s.nav.Offset()
	drawRect(screen, x, 0, s.nav.Width, s.height, Color{R: 0.1, G: 0.09, B: 0.12, A: 1}, 1)
	for i, link := range s.nav.Links {
		r := s.nav.linkRect(i)
		ebitenutil.DebugPrintAt(screen, link, int(r.X), int(r.Y+8))
	}
}

// titleLineHeight is the debug font's glyph cell height.
const titleLineHeight = 16

// drawTitle rolls the current item's title glyph by glyph, each clipped to
// its own cell.
func (s *Stage) drawTitle(screen *ebiten.Image) {
	x0, y0 := int(s.width)-24, 24
	runes := []rune(s.title.Text)
	x0 -= len(runes) * 6
	for i, r := range runes {
		x := x0 + i*6
		cell := screen.SubImage(image.Rect(x, y0, x+6, y0+titleLineHeight)).(*ebiten.Image)
		off := s.title.Offset(i)
		frac := off - math.Floor(off)
		dy := int(frac * titleLineHeight)
		ebitenutil.DebugPrintAt(cell, string(r), x, y0+dy)
		if dy > 0 {
			ebitenutil.DebugPrintAt(cell, string(r), x, y0+dy-titleLineHeight)
		}
	}
}

func (s *Stage) drawLoader(screen *ebiten.Image) {
	l := s.loader
	if l.Done() {
		return
	}
	top := l.Lift
	paper := Color{R: 0.98, G: 0.97, B: 0.94, A: 1}
	ink := Color{R: 0.02, G: 0.02, B: 0.03, A: 1}
	drawRect(screen, 0, top, s.width, s.height, paper, l.Curtain)
	col := s.width / LoaderLines
	fill := math.Max(1, col*l.Wipe)
	for i := 0; i < LoaderLines; i++ {
		drawRect(screen, float64(i)*col, top, fill, s.height, ink, l.Curtain)
	}
	if l.Curtain < 0.5 {
		return
	}
	ebitenutil.DebugPrintAt(screen, "MARQUEE", int(s.width/2-21), int(s.height/2-24+top))
	if l.Reveal > 0.5 {
		ebitenutil.DebugPrintAt(screen, strings.ToUpper(l.Tagline), int(s.width/2-float64(len(l.Tagline))*3), int(s.height/2+top))
		s.drawButton(screen, l.Enter)
	}
}

func (s *Stage) drawCursor(screen *ebiten.Image) {
	c := s.cursor
	if c.Hidden() {
		return
	}
	x, y := c.Center()
	r := c.Size / 2
	edge := Color{R: 1, G: 1, B: 1, A: 1}
	// Ring outline at 30% white.
	drawRect(screen, x-r, y-r, c.Size, 1, edge, 0.3)
	drawRect(screen, x-r, y+r-1, c.Size, 1, edge, 0.3)
	drawRect(screen, x-r, y-r, 1, c.Size, edge, 0.3)
	drawRect(screen, x+r-1, y-r, 1, c.Size, edge, 0.3)
	if c.Pressed() {
		ebitenutil.DebugPrintAt(screen, "^", int(x-3), int(y-r/2-8))
		ebitenutil.DebugPrintAt(screen, "v", int(x-3), int(y+r/2-8))
		return
	}
	ebitenutil.DebugPrintAt(screen, c.Label, int(x)-len(c.Label)*3, int(y-8))
}

// drawRect fills an axis-aligned rectangle with a tinted white pixel.
func drawRect(dst *ebiten.Image, x, y, w, h float64, c Color, alpha float64) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale = c.scale(alpha)
	dst.DrawImage(WhitePixel, &op)
}
