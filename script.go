package marquee

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected gestures, waits and screenshots across
// ticks. The stage steps an attached runner before polling input; headless
// tools call Step themselves.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON gesture script:
//
//	{"steps": [
//		{"action": "drag", "fromX": 320, "fromY": 400, "toX": 320, "toY": -300, "frames": 12},
//		{"action": "wait", "frames": 90},
//		{"action": "screenshot", "label": "after-fling"}
//	]}
//
// Supported actions are tap, drag, wait and screenshot.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "tap", "drag", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed and their injected
// input drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one tick. shoot receives screenshot labels and
// may be nil, in which case screenshot steps are skipped.
func (r *ScriptRunner) Step(src *GestureSource, shoot func(label string)) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if src.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		if shoot != nil {
			shoot(st.Label)
		}
	case "tap":
		src.InjectTap(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 3 {
			frames = 3
		}
		src.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && src.Pending() == 0 {
		r.done = true
	}
}
