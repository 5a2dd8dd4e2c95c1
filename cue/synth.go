package cue

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/phanxgames/marquee"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

type oscillator struct {
	freq     float64
	phase    float64
	total    int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator returns a mono tone duplicated on both channels that ends
// after duration.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:  freq,
		total: rate.N(duration),
		wave:  wave,
		rate:  rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}
		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release inside duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.total-e.release {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one shaped tone.
func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	attack := d / 10
	release := d / 2
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// Stream synthesizes c at the given rate and volume. Unknown cues return
// nil.
func Stream(c marquee.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case marquee.CueSnap:
		// Soft wooden click: a short low triangle with a quiet octave on top.
		s = beep.Mix(
			withVolume(note(330, 70*time.Millisecond, WaveTriangle, rate), 0.8),
			withVolume(note(660, 40*time.Millisecond, WaveSine, rate), 0.3),
		)
	case marquee.CueHover:
		s = withVolume(note(1320, 45*time.Millisecond, WaveSine, rate), 0.4)
	case marquee.CueOpen:
		s = beep.Seq(
			note(523.25, 60*time.Millisecond, WaveSine, rate),
			note(783.99, 90*time.Millisecond, WaveSine, rate),
		)
	case marquee.CueClose:
		s = beep.Seq(
			note(783.99, 60*time.Millisecond, WaveSine, rate),
			note(523.25, 90*time.Millisecond, WaveSine, rate),
		)
	default:
		return nil
	}
	return withVolume(s, volume)
}

// Duration returns how long Stream(c) plays.
func Duration(c marquee.Cue) time.Duration {
	switch c {
	case marquee.CueSnap:
		return 70 * time.Millisecond
	case marquee.CueHover:
		return 45 * time.Millisecond
	case marquee.CueOpen, marquee.CueClose:
		return 150 * time.Millisecond
	}
	return 0
}
