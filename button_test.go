package marquee

import "testing"

func runButton(b *RevealButton) {
	for i := 0; i < 60; i++ {
		b.Update(1.0 / 60)
	}
}

func TestRevealButtonHover(t *testing.T) {
	b := NewRevealButton("BOOK", Rect{X: 10, Y: 10, Width: 100, Height: 40})
	if !b.Hover(true) {
		t.Fatal("Hover(true) should report the enter")
	}
	if b.Hover(true) {
		t.Error("repeated Hover(true) reported another enter")
	}
	runButton(b)
	if b.Reveal != 1 || b.LabelShift != -10 {
		t.Errorf("Reveal/LabelShift = %v/%v, want 1/-10", b.Reveal, b.LabelShift)
	}
	if b.Hover(false) {
		t.Error("Hover(false) reported an enter")
	}
	runButton(b)
	if b.Reveal != 0 || b.LabelShift != 0 || b.Hovered() {
		t.Errorf("Reveal/LabelShift/Hovered = %v/%v/%t, want rest", b.Reveal, b.LabelShift, b.Hovered())
	}
}

func TestRevealButtonTap(t *testing.T) {
	b := NewRevealButton("BOOK", Rect{X: 10, Y: 10, Width: 100, Height: 40})
	clicks := 0
	b.OnClick = func() { clicks++ }
	tests := []struct {
		x, y float64
		want bool
	}{
		{50, 30, true},
		{5, 30, false},
		{50, 60, false},
	}
	for _, tt := range tests {
		if got := b.Tap(tt.x, tt.y); got != tt.want {
			t.Errorf("Tap(%v, %v) = %t, want %t", tt.x, tt.y, got, tt.want)
		}
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	b.OnClick = nil
	if !b.Tap(50, 30) {
		t.Error("tap without a handler should still be consumed")
	}
}
