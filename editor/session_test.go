package editor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecsketch/core"
	"vecsketch/geometry"
	"vecsketch/input"
	"vecsketch/render"
)

type fixedSettings struct {
	style core.Style
	grid  geometry.Grid
}

func (f *fixedSettings) Style() core.Style       { return f.style }
func (f *fixedSettings) SnapGrid() geometry.Grid { return f.grid }

func newTestSession(kind core.ShapeKind) (*Session, *render.Scene, *fixedSettings) {
	scene := render.NewScene()
	settings := &fixedSettings{style: black, grid: geometry.Grid{CellSize: 20}}
	return NewSession(scene, settings, kind), scene, settings
}

func drawTwoPoint(s *Session, x0, y0, x1, y1 float64) {
	s.Dispatch(PointerDown(x0, y0))
	s.Dispatch(PointerMove(x1, y1))
	s.Dispatch(PointerUp())
}

func TestSessionHistoryGrowsPerCompletion(t *testing.T) {
	s, scene, _ := newTestSession(core.Line)

	drawTwoPoint(s, 0, 0, 10, 10)
	assert.Equal(t, 1, s.History().Len())
	_, ok := scene.Draft()
	assert.False(t, ok, "draft is cleared after commit")
	assert.Len(t, scene.Shapes(), 1)

	s.SelectKind(core.Bezier)
	s.Dispatch(PointerDown(0, 0))
	s.Dispatch(PointerUp())
	assert.Equal(t, 1, s.History().Len(), "open curve is not committed")

	s.Dispatch(Finalize())
	assert.Equal(t, 2, s.History().Len())
}

func TestSessionUndoOrder(t *testing.T) {
	s, scene, _ := newTestSession(core.Line)

	drawTwoPoint(s, 0, 0, 10, 10)
	s.SelectKind(core.Rectangle)
	drawTwoPoint(s, 0, 0, 20, 20)
	s.SelectKind(core.Circle)
	drawTwoPoint(s, 50, 50, 60, 50)
	require.Equal(t, 3, s.History().Len())

	for _, want := range []core.ShapeKind{core.Circle, core.Rectangle, core.Line} {
		got, ok := s.Undo()
		require.True(t, ok)
		assert.Equal(t, want, got.Kind)
	}
	_, ok := s.Undo()
	assert.False(t, ok)
	assert.Equal(t, 0, s.History().Len())
	assert.Empty(t, scene.Shapes())
}

func TestSessionUndoCancelsDraft(t *testing.T) {
	s, scene, _ := newTestSession(core.Line)
	drawTwoPoint(s, 0, 0, 10, 10)
	s.SelectKind(core.Bezier)
	s.Dispatch(PointerDown(100, 100))

	s.Undo()
	assert.True(t, s.State().Idle())
	assert.Equal(t, 0, s.History().Len())
	_, ok := scene.Draft()
	assert.False(t, ok)
}

func TestSessionClearEmptiesEverything(t *testing.T) {
	s, scene, _ := newTestSession(core.Rectangle)
	drawTwoPoint(s, 0, 0, 10, 10)
	drawTwoPoint(s, 5, 5, 30, 30)
	s.SelectKind(core.Bezier)
	s.Dispatch(PointerDown(0, 0))

	s.Clear()
	assert.Equal(t, 0, s.History().Len())
	assert.True(t, s.State().Idle())
	assert.Empty(t, scene.Shapes())
	_, ok := scene.Draft()
	assert.False(t, ok)

	s.Clear()
	assert.True(t, s.State().Idle())
}

func TestSessionKindSwitchKeepsHistory(t *testing.T) {
	s, scene, _ := newTestSession(core.Line)
	drawTwoPoint(s, 0, 0, 10, 10)

	s.SelectKind(core.Bezier)
	s.Dispatch(PointerDown(40, 40))
	_, ok := scene.Draft()
	require.True(t, ok)

	s.SelectKind(core.Circle)
	assert.Equal(t, 1, s.History().Len())
	assert.Equal(t, core.Circle, s.Kind())
	assert.True(t, s.State().Idle())
	_, ok = scene.Draft()
	assert.False(t, ok)
}

func TestSessionLiveStyle(t *testing.T) {
	s, scene, settings := newTestSession(core.Bezier)
	s.Dispatch(PointerDown(0, 0))
	s.Dispatch(PointerUp())

	red := core.Style{StrokeColor: "#ff0000", StrokeWidth: 4, FillColor: "#00ff00", FillEnabled: true}
	settings.style = red
	s.Restyle()

	d, ok := scene.Draft()
	require.True(t, ok)
	assert.Equal(t, red, d.Style)

	s.Dispatch(Finalize())
	settings.style = black
	s.Restyle()

	snap := s.History().Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, red, snap[0].Style, "committed shapes keep their style")
}

func TestSessionSnapFromSettings(t *testing.T) {
	s, _, settings := newTestSession(core.Line)
	settings.grid.Enabled = true

	drawTwoPoint(s, 10, 10, 110, 60)
	snap := s.History().Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, []geometry.Point{{X: 20, Y: 20}, {X: 120, Y: 60}}, snap[0].Points)
}

func TestSessionHandleRawMouse(t *testing.T) {
	s, _, _ := newTestSession(core.Line)
	s.SetViewport(input.Viewport{Left: 10, Top: 10, Width: 100, Height: 100, LogicalWidth: 200, LogicalHeight: 200})

	now := time.Now()
	s.HandleRaw(input.RawEvent{Source: input.Mouse, Phase: input.PhaseDown, ClientX: 20, ClientY: 20, Time: now})
	assert.True(t, s.Pressed())
	s.HandleRaw(input.RawEvent{Source: input.Mouse, Phase: input.PhaseMove, ClientX: 60, ClientY: 35, Time: now})
	s.HandleRaw(input.RawEvent{Source: input.Mouse, Phase: input.PhaseLeave, Time: now})
	assert.False(t, s.Pressed())

	snap := s.History().Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, []geometry.Point{{X: 20, Y: 20}, {X: 100, Y: 50}}, snap[0].Points)
}

func TestSessionTouchWithoutContactsIsIgnored(t *testing.T) {
	s, scene, _ := newTestSession(core.Line)
	s.HandleRaw(input.RawEvent{Source: input.Touch, Phase: input.PhaseDown})
	assert.True(t, s.State().Idle())
	_, ok := scene.Draft()
	assert.False(t, ok)
}

func TestSessionDoubleTapFinalizesCurve(t *testing.T) {
	s, scene, _ := newTestSession(core.Bezier)
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	touch := func(phase input.Phase, at time.Duration) {
		ev := input.RawEvent{Source: input.Touch, Phase: phase, Time: start.Add(at)}
		if phase == input.PhaseDown || phase == input.PhaseMove {
			ev.Touches = []input.TouchPoint{{ClientX: 30, ClientY: 30}}
		}
		s.HandleRaw(ev)
	}

	touch(input.PhaseDown, 0)
	touch(input.PhaseUp, 50*time.Millisecond)
	assert.Equal(t, 0, s.History().Len())
	assert.Len(t, scene.Markers(), 4)
	assert.Equal(t, float64(render.TouchMarkerRadius), scene.Markers()[0].Radius)

	touch(input.PhaseDown, 200*time.Millisecond)
	touch(input.PhaseUp, 250*time.Millisecond)
	assert.Equal(t, 1, s.History().Len())
	assert.True(t, s.State().Idle())
}

func TestSessionSlowTapsDoNotFinalize(t *testing.T) {
	s, _, _ := newTestSession(core.Bezier)
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	s.HandleRaw(input.RawEvent{Source: input.Mouse, Phase: input.PhaseDown, ClientX: 5, ClientY: 5, Time: start})
	s.HandleRaw(input.RawEvent{Source: input.Mouse, Phase: input.PhaseUp, Time: start})
	s.HandleRaw(input.RawEvent{Source: input.Mouse, Phase: input.PhaseDown, ClientX: 5, ClientY: 5, Time: start.Add(time.Second)})
	s.HandleRaw(input.RawEvent{Source: input.Mouse, Phase: input.PhaseUp, Time: start.Add(time.Second)})

	assert.Equal(t, 0, s.History().Len())
	assert.False(t, s.State().Idle())
}

func TestSessionHandleKey(t *testing.T) {
	s, _, _ := newTestSession(core.Line)
	drawTwoPoint(s, 0, 0, 10, 10)
	drawTwoPoint(s, 0, 0, 20, 20)

	assert.Equal(t, ActionUndo, s.HandleKey(Key{Code: KeyRune, Rune: 'z', Ctrl: true}, false))
	assert.Equal(t, 1, s.History().Len())

	assert.Equal(t, ActionNone, s.HandleKey(Key{Code: KeyBackspace}, true))
	assert.Equal(t, 1, s.History().Len())

	assert.Equal(t, ActionClear, s.HandleKey(Key{Code: KeyDelete}, false))
	assert.Equal(t, 0, s.History().Len())

	s.Dispatch(PointerDown(1, 1))
	assert.Equal(t, ActionCancel, s.HandleKey(Key{Code: KeyEscape}, false))
	assert.True(t, s.State().Idle())
}

func TestSessionEnterFinalizesCurve(t *testing.T) {
	s, _, _ := newTestSession(core.Bezier)
	s.Dispatch(PointerDown(0, 0))
	s.Dispatch(PointerUp())

	assert.Equal(t, ActionNone, s.HandleKey(Key{Code: KeyEnter}, true))
	assert.Equal(t, 0, s.History().Len())

	assert.Equal(t, ActionFinalize, s.HandleKey(Key{Code: KeyEnter}, false))
	assert.Equal(t, 1, s.History().Len())
	assert.True(t, s.State().Idle())
}

func TestSessionDocumentExcludesDraft(t *testing.T) {
	s, _, _ := newTestSession(core.Circle)
	drawTwoPoint(s, 50, 50, 53, 54)
	s.Dispatch(PointerDown(200, 200))

	doc := s.Document(800, 600)
	assert.Equal(t, 800.0, doc.Width)
	assert.Equal(t, 600.0, doc.Height)
	require.Len(t, doc.Shapes, 1)
	assert.Equal(t, 5.0, doc.Shapes[0].Radius())
}

func TestSessionShowGrid(t *testing.T) {
	s, scene, _ := newTestSession(core.Line)
	s.ShowGrid(40, false, geometry.Rect{Width: 200, Height: 100})

	g := scene.Grid()
	assert.False(t, g.Visible)
	assert.Equal(t, 40, g.CellSize)
	assert.Len(t, g.Lines, 6)
}
