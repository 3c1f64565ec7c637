package sill

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an automation script.
type scriptStep struct {
	Action string `json:"action"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Clicks int    `json:"clicks,omitempty"`
	Class  uint8  `json:"class,omitempty"`
	Number uint16 `json:"number,omitempty"`
	Ticks  int    `json:"ticks,omitempty"`
}

// script is the top-level JSON structure of an automation script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON automation script against a desktop, one
// step per tick: cursor moves, wheel spins, window raises and closes. It
// drives the desktop through the same inject queue an interactive console
// would use, so scripted runs exercise the real input path.
type ScriptRunner struct {
	steps  []scriptStep
	cursor int
	wait   int
	done   bool
}

// LoadScript parses a JSON automation script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step executes the next script step. Call once per tick, before
// Desktop.Tick.
func (r *ScriptRunner) Step(d *Desktop) {
	if r.done {
		return
	}
	if r.wait > 0 {
		r.wait--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		d.InjectCursorMove(st.X, st.Y)
	case "wheel":
		d.InjectWheel(st.Clicks)
	case "raise":
		class, number := WindowClass(st.Class), WindowNumber(st.Number)
		d.Inject(func() { d.BringToFrontByNumber(class, number) })
	case "close":
		class, number := WindowClass(st.Class), WindowNumber(st.Number)
		d.Inject(func() { d.CloseByNumber(class, number) })
	case "closeTop":
		d.Inject(d.CloseTop)
	case "wait":
		if st.Ticks > 0 {
			r.wait = st.Ticks - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.wait == 0 {
		r.done = true
	}
}
