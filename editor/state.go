package editor

import (
	"slices"

	"vecsketch/core"
	"vecsketch/geometry"
)

// NoActive marks a draft with no control point being dragged.
const NoActive = -1

// PickRadius is how close a press must land to a draft point to grab it.
const PickRadius = 10.0

// bezierSeed places the control points of a new curve relative to the press.
var bezierSeed = [3]geometry.Point{
	{X: 50, Y: -50},
	{X: 100, Y: -50},
	{X: 150, Y: 0},
}

// State is the draft being authored. An empty Points slice means the editor
// is idle. States are values: transitions return a new State and never
// write through the Points of the one they were given.
type State struct {
	Kind   core.ShapeKind
	Points []geometry.Point
	Active int
}

// NewState returns an idle state for the given tool.
func NewState(kind core.ShapeKind) State {
	return State{Kind: kind, Active: NoActive}
}

// Idle reports whether there is no draft.
func (s State) Idle() bool {
	return len(s.Points) == 0
}

// Dragging reports whether a control point is following the pointer.
func (s State) Dragging() bool {
	return s.Active != NoActive
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	s.Points = slices.Clone(s.Points)
	return s
}

// Env is the live configuration a transition reads.
type Env struct {
	Style core.Style
	Grid  geometry.Grid // Enabled means snapping is on
}

// pick returns the index of the first point within PickRadius of p, or
// NoActive. Lower indices win when points overlap.
func pick(points []geometry.Point, p geometry.Point) int {
	for i, pt := range points {
		if geometry.Distance(pt, p) < PickRadius {
			return i
		}
	}
	return NoActive
}
