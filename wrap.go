package marquee

import "math"

// Window is the wrap window a logical position is folded into. The carousel
// uses [-itemHeight*itemCount, 0).
type Window struct {
	Min, Max float64
}

// NewWindow returns the wrap window for count items of the given height.
func NewWindow(itemHeight float64, count int) Window {
	return Window{Min: -itemHeight * float64(count), Max: 0}
}

// Span returns the window size.
func (w Window) Span() float64 {
	return w.Max - w.Min
}

// Contains reports whether v lies in [Min, Max).
func (w Window) Contains(v float64) bool {
	return v >= w.Min && v < w.Max
}

// Wrap folds v into the window.
func (w Window) Wrap(v float64) float64 {
	return Wrap(v, w.Min, w.Max)
}

// Unwrap returns the logical value congruent to physical that lies nearest
// to ref. Wrap(Unwrap(p, ref)) == Wrap(p) for any ref.
func (w Window) Unwrap(physical, ref float64) float64 {
	span := w.Span()
	if span <= 0 {
		return physical
	}
	k := math.Round((ref - physical) / span)
	return physical + k*span
}

// Wrap folds v into [lo, hi) using a floored modulo. A degenerate range
// returns lo.
func Wrap(v, lo, hi float64) float64 {
	span := hi - lo
	if !(span > 0) || math.IsNaN(v) || math.IsInf(v, 0) {
		return lo
	}
	r := math.Mod(v-lo, span)
	if r < 0 {
		r += span
	}
	// r+span can round up to span for tiny negative r.
	if r >= span {
		r = 0
	}
	return r + lo
}

// Snap rounds v to the nearest multiple of itemHeight, halfway cases away
// from zero.
func Snap(v, itemHeight float64) float64 {
	if !(itemHeight > 0) {
		return v
	}
	return math.Round(v/itemHeight) * itemHeight
}

// IndexAt returns the item index aligned with the viewport anchor for a
// logical position. Moving the list up (negative positions) advances the
// index.
func IndexAt(logical, itemHeight float64, count int) int {
	if count < 1 || !(itemHeight > 0) {
		return 0
	}
	slot := int64(math.Round(-logical / itemHeight))
	n := int64(count)
	return int(((slot % n) + n) % n)
}
