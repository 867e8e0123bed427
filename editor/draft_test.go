package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecsketch/core"
	"vecsketch/geometry"
	"vecsketch/render"
)

var (
	black   = core.Style{StrokeColor: "#000000", StrokeWidth: 2}
	noSnap  = Env{Style: black, Grid: geometry.Grid{CellSize: 20}}
	snapped = Env{Style: black, Grid: geometry.Grid{Enabled: true, CellSize: 20}}
)

// run feeds events through Step and collects every completed shape.
func run(s State, env Env, events ...Event) (State, []core.Shape) {
	var done []core.Shape
	for _, ev := range events {
		res := Step(s, ev, env)
		s = res.State
		if res.Completed != nil {
			done = append(done, *res.Completed)
		}
	}
	return s, done
}

func TestPointerDownSeedsBezier(t *testing.T) {
	res := Step(NewState(core.Bezier), PointerDown(0, 0), noSnap)

	want := []geometry.Point{{X: 0, Y: 0}, {X: 50, Y: -50}, {X: 100, Y: -50}, {X: 150, Y: 0}}
	assert.Equal(t, want, res.State.Points)
	assert.Equal(t, 3, res.State.Active)
	require.Len(t, res.Commands, 1)
	assert.Equal(t, render.OpDrawDraft, res.Commands[0].Op)
	assert.Equal(t, want, res.Commands[0].Points)
	assert.Nil(t, res.Completed)
}

func TestPointerDownSeedsBezierOnGrid(t *testing.T) {
	res := Step(NewState(core.Bezier), PointerDown(7, 12), snapped)

	// (7,12) snaps to (0,20); offsets are snapped too
	want := []geometry.Point{{X: 0, Y: 20}, {X: 60, Y: -20}, {X: 100, Y: -20}, {X: 160, Y: 20}}
	assert.Equal(t, want, res.State.Points)
}

func TestPointerDownSeedsTwoPointKinds(t *testing.T) {
	for _, kind := range []core.ShapeKind{core.Line, core.Rectangle, core.Circle} {
		t.Run(kind.String(), func(t *testing.T) {
			res := Step(NewState(kind), PointerDown(5, 6), noSnap)
			assert.Equal(t, []geometry.Point{{X: 5, Y: 6}, {X: 5, Y: 6}}, res.State.Points)
			assert.Equal(t, 1, res.State.Active)
			require.Len(t, res.Commands, 1)
			assert.Equal(t, kind, res.Commands[0].Kind)
		})
	}
}

func TestBezierEditAndFinalize(t *testing.T) {
	s, done := run(NewState(core.Bezier), noSnap,
		PointerDown(0, 0),
		PointerUp(),
		PointerDown(100, -50), // grabs control point 2
		PointerMove(200, -80),
		PointerUp(),
	)
	require.Empty(t, done, "a curve stays open until finalized")
	assert.False(t, s.Dragging())

	res := Step(s, Finalize(), noSnap)
	require.NotNil(t, res.Completed)
	got := res.Completed
	assert.Equal(t, core.Bezier, got.Kind)
	assert.Equal(t, []geometry.Point{{X: 0, Y: 0}, {X: 50, Y: -50}, {X: 200, Y: -80}, {X: 150, Y: 0}}, got.Points)
	assert.Equal(t, black, got.Style)

	assert.True(t, res.State.Idle())
	assert.Equal(t, core.Bezier, res.State.Kind)
	require.Len(t, res.Commands, 1)
	assert.Equal(t, render.OpClearDraft, res.Commands[0].Op)
}

func TestLineSnapsToGrid(t *testing.T) {
	_, done := run(NewState(core.Line), snapped,
		PointerDown(10, 10),
		PointerMove(110, 60),
		PointerUp(),
	)
	require.Len(t, done, 1)
	assert.Equal(t, []geometry.Point{{X: 20, Y: 20}, {X: 120, Y: 60}}, done[0].Points)
}

func TestTwoPointKindsCompleteOnRelease(t *testing.T) {
	for _, kind := range []core.ShapeKind{core.Line, core.Rectangle, core.Circle} {
		t.Run(kind.String(), func(t *testing.T) {
			s, done := run(NewState(kind), noSnap, PointerDown(1, 2), PointerMove(30, 40), PointerUp())
			require.Len(t, done, 1)
			assert.Equal(t, kind, done[0].Kind)
			assert.Equal(t, []geometry.Point{{X: 1, Y: 2}, {X: 30, Y: 40}}, done[0].Points)
			assert.True(t, s.Idle())
		})
	}
}

func TestPickPrefersLowestIndex(t *testing.T) {
	s := State{
		Kind:   core.Bezier,
		Points: []geometry.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 0}, {X: 100, Y: 100}},
		Active: NoActive,
	}
	res := Step(s, PointerDown(3, 0), noSnap)
	assert.Equal(t, 0, res.State.Active)
	assert.Empty(t, res.Commands)
}

func TestPickRadiusIsExclusive(t *testing.T) {
	s := State{
		Kind:   core.Bezier,
		Points: []geometry.Point{{X: 0, Y: 0}, {X: 50, Y: -50}, {X: 100, Y: -50}, {X: 150, Y: 0}},
		Active: NoActive,
	}
	assert.Equal(t, NoActive, Step(s, PointerDown(10, 0), noSnap).State.Active)
	assert.Equal(t, 0, Step(s, PointerDown(9.9, 0), noSnap).State.Active)
}

func TestPointerDownAwayFromDraftIsNoOp(t *testing.T) {
	s, _ := run(NewState(core.Bezier), noSnap, PointerDown(0, 0), PointerUp())
	res := Step(s, PointerDown(500, 500), noSnap)
	assert.Equal(t, s, res.State)
	assert.Empty(t, res.Commands)
	assert.Nil(t, res.Completed)
}

func TestPointerMoveWithoutActivePointIsNoOp(t *testing.T) {
	idle := NewState(core.Line)
	res := Step(idle, PointerMove(3, 3), noSnap)
	assert.Equal(t, idle, res.State)
	assert.Empty(t, res.Commands)

	open, _ := run(NewState(core.Bezier), noSnap, PointerDown(0, 0), PointerUp())
	res = Step(open, PointerMove(3, 3), noSnap)
	assert.Equal(t, open, res.State)
	assert.Empty(t, res.Commands)
}

func TestFinalizeIgnoredUnlessCompleteBezier(t *testing.T) {
	idle := NewState(core.Bezier)
	assert.Nil(t, Step(idle, Finalize(), noSnap).Completed)

	line, _ := run(NewState(core.Line), noSnap, PointerDown(0, 0))
	res := Step(line, Finalize(), noSnap)
	assert.Nil(t, res.Completed)
	assert.Equal(t, line, res.State)
}

func TestPointerUpWhenIdleIsNoOp(t *testing.T) {
	res := Step(NewState(core.Circle), PointerUp(), noSnap)
	assert.True(t, res.State.Idle())
	assert.Empty(t, res.Commands)
	assert.Nil(t, res.Completed)
}

func TestStepDoesNotMutateInput(t *testing.T) {
	s, _ := run(NewState(core.Bezier), noSnap, PointerDown(0, 0))
	before := s.Clone()

	Step(s, PointerMove(77, 77), noSnap)
	Step(s, Finalize(), noSnap)

	assert.Equal(t, before, s)
}

func TestSelectKindDiscardsDraft(t *testing.T) {
	s, _ := run(NewState(core.Bezier), noSnap, PointerDown(0, 0))

	res := Step(s, SelectKind(core.Circle), noSnap)
	assert.True(t, res.State.Idle())
	assert.Equal(t, core.Circle, res.State.Kind)
	assert.Nil(t, res.Completed)
	require.Len(t, res.Commands, 1)
	assert.Equal(t, render.OpClearDraft, res.Commands[0].Op)

	res = Step(NewState(core.Line), SelectKind(core.Rectangle), noSnap)
	assert.Equal(t, core.Rectangle, res.State.Kind)
	assert.Empty(t, res.Commands, "no draft to clear")
}

func TestCancelResetsWithoutCompletion(t *testing.T) {
	s, _ := run(NewState(core.Rectangle), noSnap, PointerDown(0, 0), PointerMove(10, 10))
	res := Step(s, Cancel(), noSnap)
	assert.True(t, res.State.Idle())
	assert.Equal(t, core.Rectangle, res.State.Kind)
	assert.Nil(t, res.Completed)
}

func TestRestyleRedrawsDraft(t *testing.T) {
	s, _ := run(NewState(core.Bezier), noSnap, PointerDown(0, 0), PointerUp())

	red := Env{Style: core.Style{StrokeColor: "#ff0000", StrokeWidth: 5}}
	res := Step(s, Restyle(), red)
	require.Len(t, res.Commands, 1)
	assert.Equal(t, render.OpDrawDraft, res.Commands[0].Op)
	assert.Equal(t, red.Style, res.Commands[0].Style)
	assert.Equal(t, s, res.State)

	assert.Empty(t, Step(NewState(core.Line), Restyle(), red).Commands)
}

func TestCompletedShapeUsesStyleAtCommit(t *testing.T) {
	s, _ := run(NewState(core.Line), noSnap, PointerDown(0, 0))

	blue := Env{Style: core.Style{StrokeColor: "#0000ff", StrokeWidth: 1}}
	res := Step(s, PointerUp(), blue)
	require.NotNil(t, res.Completed)
	assert.Equal(t, blue.Style, res.Completed.Style)
}

func TestUnknownEventLeavesStateAlone(t *testing.T) {
	s, _ := run(NewState(core.Line), noSnap, PointerDown(0, 0))
	res := Step(s, Event{Kind: EventKind(99)}, noSnap)
	assert.Equal(t, s, res.State)
	assert.Empty(t, res.Commands)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "pointer-down", EventPointerDown.String())
	assert.Equal(t, "restyle", EventRestyle.String())
	assert.Equal(t, "unknown", EventKind(99).String())
}
