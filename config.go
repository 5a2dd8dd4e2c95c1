package marquee

import (
	"errors"
	"fmt"
	"time"
)

// Construction errors. They mark programming-contract violations and are
// returned wrapped; test with errors.Is.
var (
	ErrNoItems    = errors.New("marquee: item count must be at least 1")
	ErrItemHeight = errors.New("marquee: item height must be positive")
	ErrConfig     = errors.New("marquee: invalid config")
)

// Config holds the carousel tuning fixed at construction.
//
// Velocities are measured in pixels per millisecond; MomentumMultiplier is
// the number of milliseconds of release velocity projected onto the settle
// target.
type Config struct {
	ItemHeight         float64
	ItemCount          int
	VelocityThreshold  float64
	ParallaxDamping    float64
	MomentumMultiplier float64

	// SampleInterval is the minimum spacing between recorded velocity
	// samples. VelocityWindow bounds how far back the release velocity looks.
	SampleInterval time.Duration
	VelocityWindow time.Duration

	// SettleDuration is used for plain snaps, CoastDuration for momentum
	// coasts. Both are in seconds.
	SettleDuration float32
	CoastDuration  float32

	// DragDeadZone is the pointer travel in pixels before a press becomes
	// a drag.
	DragDeadZone float64
}

// DefaultConfig returns the tuning used by the festival site: 630px cards,
// five films.
func DefaultConfig() Config {
	return Config{
		ItemHeight:         630,
		ItemCount:          5,
		VelocityThreshold:  0.1,
		ParallaxDamping:    0.35,
		MomentumMultiplier: 2000,
		SampleInterval:     10 * time.Millisecond,
		VelocityWindow:     100 * time.Millisecond,
		SettleDuration:     0.35,
		CoastDuration:      1.2,
		DragDeadZone:       defaultDragDeadZone,
	}
}

// Validate checks the construction preconditions.
func (c Config) Validate() error {
	if c.ItemCount < 1 {
		return fmt.Errorf("%w (got %d)", ErrNoItems, c.ItemCount)
	}
	if !(c.ItemHeight > 0) {
		return fmt.Errorf("%w (got %v)", ErrItemHeight, c.ItemHeight)
	}
	if c.VelocityThreshold < 0 {
		return fmt.Errorf("%w: negative velocity threshold %v", ErrConfig, c.VelocityThreshold)
	}
	if c.MomentumMultiplier < 0 {
		return fmt.Errorf("%w: negative momentum multiplier %v", ErrConfig, c.MomentumMultiplier)
	}
	if c.SampleInterval < 0 || c.VelocityWindow < 0 {
		return fmt.Errorf("%w: negative sampling durations", ErrConfig)
	}
	if c.SettleDuration < 0 || c.CoastDuration < 0 {
		return fmt.Errorf("%w: negative settle durations", ErrConfig)
	}
	return nil
}

// Window returns the wrap window for this config.
func (c Config) Window() Window {
	return NewWindow(c.ItemHeight, c.ItemCount)
}
