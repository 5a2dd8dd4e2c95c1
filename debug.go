package marquee

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing for the stage. Only populated when the
// stage is in debug mode.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	cards      int
}

// debugf prints a carousel diagnostic to stderr when debug mode is on.
func (c *Carousel) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[marquee] carousel: "+format+"\n", args...)
}

// debugf prints a stage diagnostic to stderr when debug mode is on.
func (s *Stage) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[marquee] stage: "+format+"\n", args...)
}

// debugLog prints per-frame stats to stderr.
func (s *Stage) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[marquee] update: %v | draw: %v | cards: %d | state: %s | index: %d\n",
		stats.updateTime, stats.drawTime, stats.cards, s.carousel.State(), s.carousel.Index())
}

// warnf reports a recoverable failure on stderr regardless of debug mode.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[marquee] warning: "+format+"\n", args...)
}
