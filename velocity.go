package marquee

import "time"

const velocitySamples = 16

type velocitySample struct {
	t time.Duration
	v float64
}

// VelocityTracker estimates pointer velocity from a ring of recent position
// samples. Samples closer together than the sample interval are folded into
// the newest one, and only samples inside the window contribute, so a
// reversed gesture reports its latest direction.
//
// The zero value records every sample and looks back over all of them.
// VelocityTracker is a plain value and is safe to copy.
type VelocityTracker struct {
	Interval time.Duration
	Window   time.Duration

	ring  [velocitySamples]velocitySample
	head  int // index of the newest sample
	count int
}

// Reset discards all samples and records (t, v) as the first one.
func (vt *VelocityTracker) Reset(t time.Duration, v float64) {
	vt.count = 0
	vt.head = 0
	vt.push(t, v)
}

// Add records a sample. It reports whether the sample opened a new slot;
// samples inside the interval replace the newest value without advancing.
func (vt *VelocityTracker) Add(t time.Duration, v float64) bool {
	if vt.count == 0 {
		vt.push(t, v)
		return true
	}
	newest := vt.ring[vt.head]
	if t < newest.t {
		return false
	}
	if t == newest.t {
		vt.ring[vt.head].v = v
		return false
	}
	if vt.count > 1 {
		// The newest slot stays open until it is one interval past the
		// sample before it.
		prev := vt.ring[(vt.head-1+velocitySamples)%velocitySamples]
		if t-prev.t < vt.Interval {
			vt.ring[vt.head] = velocitySample{t: t, v: v}
			return false
		}
	}
	vt.push(t, v)
	return true
}

func (vt *VelocityTracker) push(t time.Duration, v float64) {
	if vt.count > 0 {
		vt.head = (vt.head + 1) % velocitySamples
	}
	vt.ring[vt.head] = velocitySample{t: t, v: v}
	if vt.count < velocitySamples {
		vt.count++
	}
}

// Velocity returns the windowed velocity in pixels per millisecond measured
// at the newest sample.
func (vt *VelocityTracker) Velocity() float64 {
	if vt.count == 0 {
		return 0
	}
	return vt.VelocityAt(vt.ring[vt.head].t)
}

// VelocityAt returns the velocity as seen at time now. A pointer that has
// been still for longer than the window reports zero.
func (vt *VelocityTracker) VelocityAt(now time.Duration) float64 {
	if vt.count < 2 {
		return 0
	}
	newest := vt.ring[vt.head]
	if vt.Window > 0 && now-newest.t > vt.Window {
		return 0
	}

	oldest := newest
	for i := 1; i < vt.count; i++ {
		s := vt.ring[(vt.head-i+velocitySamples)%velocitySamples]
		if vt.Window > 0 && newest.t-s.t > vt.Window {
			break
		}
		oldest = s
	}
	dt := newest.t - oldest.t
	if dt <= 0 {
		return 0
	}
	return (newest.v - oldest.v) / (float64(dt) / float64(time.Millisecond))
}

// Newest returns the most recent sample.
func (vt *VelocityTracker) Newest() (time.Duration, float64, bool) {
	if vt.count == 0 {
		return 0, 0, false
	}
	s := vt.ring[vt.head]
	return s.t, s.v, true
}
