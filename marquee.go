package marquee

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is turned into an ebiten.ColorScale.
type Color struct {
	R, G, B, A float64
}

// RGBA converts c to an 8-bit premultiplied color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*c.A*255 + 0.5),
		G: uint8(clamp01(c.G)*c.A*255 + 0.5),
		B: uint8(clamp01(c.B)*c.A*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// scale returns c as a premultiplied ebiten.ColorScale with the extra alpha
// multiplier applied.
func (c Color) scale(alpha float64) ebiten.ColorScale {
	var cs ebiten.ColorScale
	a := clamp01(c.A * alpha)
	cs.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
	return cs
}

// WhitePixel is a 1x1 white image used for solid color cards and panels.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(color.White)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Cue names a short audio cue the presentation layer asks for.
type Cue uint8

const (
	CueSnap  Cue = iota // carousel settled on an item
	CueHover            // pointer entered a reveal button
	CueOpen             // navigation panel opened
	CueClose            // navigation panel closed
)

// CuePlayer plays audio cues. A nil CuePlayer is never called.
type CuePlayer interface {
	Play(c Cue)
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
