package eyekit

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Key    string  `json:"key,omitempty"`
	Shift  bool    `json:"shift,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// LoadInputScript parses a JSON input script into a queue of synthetic
// frames. Supported actions are press, move, release, click, drag, key,
// secondary and wait; any step may set "shift" to hold shift for its frames.
//
//	{"steps": [
//	  {"action": "click", "x": 120, "y": 80},
//	  {"action": "key", "key": "g"},
//	  {"action": "move", "x": 160, "y": 80},
//	  {"action": "press", "x": 160, "y": 80}
//	]}
func LoadInputScript(jsonData []byte) (*InputQueue, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	q := NewInputQueue()
	for i, st := range script.Steps {
		if st.Shift {
			q.Modifiers = ModShift
		} else {
			q.Modifiers = 0
		}
		switch st.Action {
		case "press":
			q.InjectPress(st.X, st.Y)
		case "move":
			q.InjectMove(st.X, st.Y)
		case "release":
			q.InjectRelease(st.X, st.Y)
		case "click":
			q.InjectClick(st.X, st.Y)
		case "drag":
			q.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
		case "key":
			k, ok := parseKey(st.Key)
			if !ok {
				return nil, fmt.Errorf("parse input script: step %d: unknown key %q", i, st.Key)
			}
			q.InjectKey(k)
		case "secondary":
			q.InjectSecondary()
		case "wait":
			q.InjectWait(max(st.Frames, 1))
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	q.Modifiers = 0
	return q, nil
}
