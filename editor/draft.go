package editor

import (
	"slices"

	"vecsketch/core"
	"vecsketch/geometry"
	"vecsketch/render"
)

// Result is the outcome of one transition: the next state, the renderer
// commands to apply in order, and the shape completed by the transition.
type Result struct {
	State     State
	Commands  []render.Command
	Completed *core.Shape
}

type transition func(s State, ev Event, env Env) Result

var transitions = [...]transition{
	EventPointerDown: onPointerDown,
	EventPointerMove: onPointerMove,
	EventPointerUp:   onPointerUp,
	EventFinalize:    onFinalize,
	EventCancel:      onCancel,
	EventSelectKind:  onSelectKind,
	EventRestyle:     onRestyle,
}

// Step applies ev to s and returns the result. It has no side effects;
// unknown events leave the state unchanged.
func Step(s State, ev Event, env Env) Result {
	if ev.Kind < 0 || int(ev.Kind) >= len(transitions) {
		return unchanged(s)
	}
	return transitions[ev.Kind](s, ev, env)
}

func unchanged(s State) Result {
	return Result{State: s}
}

func onPointerDown(s State, ev Event, env Env) Result {
	pos := geometry.Snap(ev.Pos, env.Grid)

	if !s.Idle() {
		i := pick(s.Points, pos)
		if i == NoActive {
			return unchanged(s)
		}
		next := s.Clone()
		next.Active = i
		return Result{State: next}
	}

	next := State{Kind: s.Kind, Points: []geometry.Point{pos}}
	if s.Kind == core.Bezier {
		for _, off := range bezierSeed {
			next.Points = append(next.Points, geometry.Snap(pos.Add(off), env.Grid))
		}
		next.Active = 3
	} else {
		next.Points = append(next.Points, pos)
		next.Active = 1
	}
	return Result{State: next, Commands: []render.Command{drawDraft(next, env)}}
}

func onPointerMove(s State, ev Event, env Env) Result {
	if s.Idle() || !s.Dragging() {
		return unchanged(s)
	}
	next := s.Clone()
	next.Points[next.Active] = geometry.Snap(ev.Pos, env.Grid)
	return Result{State: next, Commands: []render.Command{drawDraft(next, env)}}
}

func onPointerUp(s State, _ Event, env Env) Result {
	if s.Idle() {
		return unchanged(s)
	}
	next := s.Clone()
	next.Active = NoActive
	if next.Kind != core.Bezier {
		return complete(next, env)
	}
	return Result{State: next}
}

func onFinalize(s State, _ Event, env Env) Result {
	if s.Kind != core.Bezier || len(s.Points) != 4 {
		return unchanged(s)
	}
	return complete(s, env)
}

func onCancel(s State, _ Event, _ Env) Result {
	return reset(s, s.Kind)
}

func onSelectKind(s State, ev Event, _ Env) Result {
	return reset(s, ev.Shape)
}

func onRestyle(s State, _ Event, env Env) Result {
	if s.Idle() {
		return unchanged(s)
	}
	next := s.Clone()
	return Result{State: next, Commands: []render.Command{drawDraft(next, env)}}
}

// complete captures the draft with the live style and resets to idle.
func complete(s State, env Env) Result {
	shape := core.NewShape(s.Kind, s.Points, env.Style)
	return Result{
		State:     NewState(s.Kind),
		Commands:  []render.Command{render.ClearDraft()},
		Completed: &shape,
	}
}

// reset discards any draft without completing it.
func reset(s State, kind core.ShapeKind) Result {
	res := Result{State: NewState(kind)}
	if !s.Idle() {
		res.Commands = []render.Command{render.ClearDraft()}
	}
	return res
}

func drawDraft(s State, env Env) render.Command {
	return render.DrawDraft(s.Kind, slices.Clone(s.Points), env.Style)
}
