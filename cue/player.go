// Package cue plays the stage's audio cues through the system speaker. The
// cues are synthesized on the fly so the module ships no audio assets.
package cue

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/marquee"
)

// DefaultSampleRate is the speaker rate used when Options leaves it unset.
const DefaultSampleRate = beep.SampleRate(48000)

// ErrNotInitialized is returned by operations that need the speaker before
// Init has succeeded.
var ErrNotInitialized = errors.New("cue: player not initialized")

// Options configures a Player.
type Options struct {
	SampleRate beep.SampleRate
	Volume     float64 // linear, 0 mutes
	Buffer     time.Duration
}

// Player mixes cues into a single speaker stream. It implements
// marquee.CuePlayer. Play before Init, or after Close, is silently dropped
// so a machine without audio still runs the stage.
type Player struct {
	mu          sync.Mutex
	opts        Options
	mixer       *beep.Mixer
	initialized bool
	played      int
}

var _ marquee.CuePlayer = (*Player)(nil)

// NewPlayer returns an uninitialized player.
func NewPlayer(opts Options) *Player {
	if opts.SampleRate <= 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.Buffer <= 0 {
		opts.Buffer = 100 * time.Millisecond
	}
	return &Player{
		opts:  opts,
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer. Calling it twice is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	rate := p.opts.SampleRate
	if err := speaker.Init(rate, rate.N(p.opts.Buffer)); err != nil {
		return fmt.Errorf("cue: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues c on the mixer.
func (p *Player) Play(c marquee.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.opts.Volume <= 0 {
		return
	}
	s := Stream(c, p.opts.SampleRate, p.opts.Volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played++
}

// SetVolume changes the volume for cues played from now on.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.opts.Volume = v
	p.mu.Unlock()
}

// Played returns how many cues reached the mixer.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Close drops every queued cue. The speaker itself stays open; beep allows
// a single Init per process.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrNotInitialized
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
	return nil
}
