package marquee

import "math"

// Parallax defaults.
const (
	parallaxReach   = 1.5 // item heights from the viewport center to full falloff
	parallaxMinSize = 0.8
	parallaxMinFade = 0.5
)

// ItemStyle is the per-item projection consumed by the renderer.
//
// Offset is the raw parallax displacement. ImageOffset and ContentOffset are
// the opposing shifts for the image layer and the text layer.
type ItemStyle struct {
	Y             float64 // top of the card in viewport coordinates
	Offset        float64
	ImageOffset   float64
	ContentOffset float64
	Scale         float64
	Opacity       float64
	Distance      float64 // normalized distance from the viewport center, [0, 1]
}

// neutralStyle is returned while the layout is not measured yet.
var neutralStyle = ItemStyle{Scale: 1, Opacity: 1}

// Parallax projects the item in render slot index for the given physical
// position. It reports a neutral style when the viewport or item height is
// not known yet.
func Parallax(index int, physical, viewportHeight, itemHeight, damping float64) ItemStyle {
	if !(viewportHeight > 0) || !(itemHeight > 0) {
		return neutralStyle
	}
	top := physical + float64(index)*itemHeight
	center := top + itemHeight/2
	d := center - viewportHeight/2
	nd := clamp(math.Abs(d)/(itemHeight*parallaxReach), 0, 1)
	offset := d * damping
	return ItemStyle{
		Y:             top,
		Offset:        offset,
		ImageOffset:   -offset,
		ContentOffset: offset,
		Scale:         lerp(1, parallaxMinSize, nd),
		Opacity:       lerp(1, parallaxMinFade, nd),
		Distance:      nd,
	}
}

// minCopies is the smallest number of item sets the shell lays out.
const minCopies = 3

// CopiesFor returns how many back-to-back item sets cover a viewport of
// viewportHeight when the container sits anywhere in [-span, 0). It is never
// below three.
func CopiesFor(viewportHeight, span float64) int {
	if !(span > 0) || !(viewportHeight > 0) {
		return minCopies
	}
	n := int(math.Ceil(viewportHeight/span)) + 1
	if n < minCopies {
		return minCopies
	}
	return n
}

// ProjectAll appends styles for copies repetitions of count items to dst.
// Use CopiesFor to pick enough copies that the wrap seam never enters the
// viewport.
func ProjectAll(dst []ItemStyle, copies, count int, physical, viewportHeight, itemHeight, damping float64) []ItemStyle {
	for i := 0; i < copies*count; i++ {
		dst = append(dst, Parallax(i, physical, viewportHeight, itemHeight, damping))
	}
	return dst
}

// Visible reports whether a card with this style intersects the viewport.
func (st ItemStyle) Visible(viewportHeight, itemHeight float64) bool {
	return st.Y+itemHeight > 0 && st.Y < viewportHeight
}
