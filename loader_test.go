package marquee

import "testing"

// runLoader updates l in 60 Hz frames for up to seconds.
func runLoader(l *Loader, seconds float64) {
	for i := 0; i < int(seconds*60); i++ {
		l.Update(1.0 / 60)
	}
}

func TestLoaderWaitsForEnter(t *testing.T) {
	l := NewLoader()
	calls := 0
	l.OnDone(func() { calls++ })

	prev := l.Wipe
	for i := 0; i < 60; i++ {
		l.Update(1.0 / 60)
		if l.Wipe < prev {
			t.Fatalf("wipe went back from %v to %v", prev, l.Wipe)
		}
		prev = l.Wipe
	}
	if l.Wipe <= 0 || l.Wipe >= 1 {
		t.Errorf("Wipe = %v after 1s, want mid-wipe", l.Wipe)
	}
	if l.Ready() {
		t.Error("Enter shown before the wipe finished")
	}

	runLoader(l, 30)
	if l.Wipe != 1 || l.Reveal != 1 {
		t.Errorf("Wipe/Reveal = %v/%v, want 1/1", l.Wipe, l.Reveal)
	}
	if l.Done() || l.Curtain != 1 {
		t.Fatalf("Done/Curtain = %t/%v without Enter, want false/1", l.Done(), l.Curtain)
	}
	if !l.Ready() {
		t.Fatal("Enter not shown after the wipe")
	}
	if calls != 0 {
		t.Errorf("OnDone fired %d times before Enter", calls)
	}
}

func TestLoaderEnterExits(t *testing.T) {
	l := NewLoader()
	l.Layout(720, 900)
	if b := l.Enter.Bounds; b.X != 312 || b.Y != 810 {
		t.Errorf("Enter at (%v, %v), want (312, 810)", b.X, b.Y)
	}
	calls := 0
	l.OnDone(func() { calls++ })
	l.OnDone(func() { calls++ })

	if l.Tap(360, 830) {
		t.Error("Enter consumed a tap before it was shown")
	}
	runLoader(l, 2.8)
	if l.Tap(10, 10) {
		t.Error("a tap outside Enter was consumed")
	}
	if !l.Tap(360, 830) {
		t.Fatal("Enter tap not consumed")
	}
	if !l.Exiting() {
		t.Fatal("Enter did not start the exit")
	}
	l.Update(0.35)
	if l.Curtain <= 0 || l.Curtain >= 1 || l.Lift >= 0 || l.Lift <= -100 {
		t.Errorf("Curtain/Lift = %v/%v mid-exit", l.Curtain, l.Lift)
	}
	runLoader(l, 1)
	if !l.Done() {
		t.Fatal("loader did not finish after the exit")
	}
	if l.Curtain != 0 || l.Lift != -100 {
		t.Errorf("Curtain/Lift = %v/%v, want 0/-100", l.Curtain, l.Lift)
	}
	if calls != 2 {
		t.Errorf("OnDone calls = %d, want 2", calls)
	}
	runLoader(l, 1)
	if calls != 2 {
		t.Error("OnDone fired again after the loader finished")
	}
}

func TestLoaderExitIgnoredEarly(t *testing.T) {
	l := NewLoader()
	l.Update(0.5)
	l.Exit()
	if l.Exiting() || l.Done() {
		t.Error("Exit took effect during the wipe")
	}
}

func TestLoaderSkip(t *testing.T) {
	l := NewLoader()
	calls := 0
	l.OnDone(func() { calls++ })
	l.Update(0.5)
	l.Skip()
	l.Skip()
	if !l.Done() || calls != 1 {
		t.Errorf("Done/calls = %t/%d, want true/1", l.Done(), calls)
	}
	if l.Wipe != 1 || l.Curtain != 0 {
		t.Errorf("Wipe/Curtain = %v/%v, want 1/0", l.Wipe, l.Curtain)
	}
}
