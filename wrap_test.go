package marquee

import (
	"math"
	"testing"
)

func TestWrapContainment(t *testing.T) {
	w := NewWindow(630, 5)
	values := []float64{
		0, -0.0001, 0.0001, -630, -3150, -3149.999, 3150, 6300.5,
		-1e9, 1e9, -123456.789, 987654.321, math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
	}
	for _, v := range values {
		got := w.Wrap(v)
		if !(got >= w.Min && got < w.Max) {
			t.Errorf("Wrap(%v) = %v, want in [%v, %v)", v, got, w.Min, w.Max)
		}
	}
}

func TestWrapValues(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"max folds to min", 0, -3150},
		{"inside", -630, -630},
		{"min stays", -3150, -3150},
		{"one span below", -3780, -630},
		{"above max", 630, -2520},
		{"many spans above", 630 + 4*3150, -2520},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.v, -3150, 0); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Wrap(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestWrapDegenerateRange(t *testing.T) {
	if got := Wrap(42, 10, 10); got != 10 {
		t.Errorf("Wrap on empty range = %v, want 10", got)
	}
	if got := Wrap(math.NaN(), -5, 0); got != -5 {
		t.Errorf("Wrap(NaN) = %v, want -5", got)
	}
	if got := Wrap(math.Inf(1), -5, 0); got != -5 {
		t.Errorf("Wrap(+Inf) = %v, want -5", got)
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{0, 0},
		{-700, -630},
		{-4200, -4410},
		{314.9, 0},
		{315, 630},   // halfway rounds away from zero
		{-315, -630}, // halfway rounds away from zero
		{944, 630},
		{946, 1260},
	}
	for _, tt := range tests {
		if got := Snap(tt.v, 630); got != tt.want {
			t.Errorf("Snap(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestSnapIdempotent(t *testing.T) {
	for _, v := range []float64{-700, 12.5, 315, -99999.25, 4001} {
		once := Snap(v, 630)
		if twice := Snap(once, 630); twice != once {
			t.Errorf("Snap(Snap(%v)) = %v, want %v", v, twice, once)
		}
	}
}

func TestSnapZeroHeight(t *testing.T) {
	if got := Snap(12.5, 0); got != 12.5 {
		t.Errorf("Snap with zero height = %v, want input unchanged", got)
	}
}

func TestUnwrapRoundTrip(t *testing.T) {
	w := NewWindow(630, 5)
	xs := []float64{0, 12.5, -700, 4001.25, -9876.5, 3150}
	refs := []float64{0, -3150, 10000, -25000.5}
	for _, x := range xs {
		for _, ref := range refs {
			phys := w.Wrap(x)
			got := w.Wrap(w.Unwrap(phys, ref))
			if math.Abs(got-phys) > 1e-9 {
				t.Errorf("Wrap(Unwrap(Wrap(%v), %v)) = %v, want %v", x, ref, got, phys)
			}
		}
	}
}

func TestUnwrapNearestToRef(t *testing.T) {
	w := NewWindow(630, 5)
	got := w.Unwrap(-630, 10000)
	if math.Abs(got-10000) > w.Span()/2 {
		t.Errorf("Unwrap(-630, 10000) = %v, want within half a span of 10000", got)
	}
}

func TestIndexAt(t *testing.T) {
	tests := []struct {
		logical float64
		want    int
	}{
		{0, 0},
		{-630, 1},
		{-700, 1},
		{-3150, 0},
		{630, 4},
		{-4410, 2},
		{-3465, 1}, // -5.5 items rounds to 6
		{1e7 * 630, 0},
	}
	for _, tt := range tests {
		if got := IndexAt(tt.logical, 630, 5); got != tt.want {
			t.Errorf("IndexAt(%v) = %d, want %d", tt.logical, got, tt.want)
		}
	}
}

func TestIndexAtGuards(t *testing.T) {
	if got := IndexAt(-630, 630, 0); got != 0 {
		t.Errorf("IndexAt with no items = %d, want 0", got)
	}
	if got := IndexAt(-630, 0, 5); got != 0 {
		t.Errorf("IndexAt with zero height = %d, want 0", got)
	}
}

func TestWindowSpanAndContains(t *testing.T) {
	w := NewWindow(630, 5)
	if w.Min != -3150 || w.Max != 0 {
		t.Fatalf("window = %+v, want [-3150, 0)", w)
	}
	if w.Span() != 3150 {
		t.Errorf("Span() = %v, want 3150", w.Span())
	}
	if !w.Contains(-3150) || w.Contains(0) {
		t.Error("window should be half-open [-3150, 0)")
	}
}
