package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecsketch/core"
	"vecsketch/geometry"
)

var testStyle = core.Style{StrokeColor: "#000000", StrokeWidth: 2}

func bezierPoints() []geometry.Point {
	return []geometry.Point{geometry.Pt(0, 0), geometry.Pt(50, -50), geometry.Pt(100, -50), geometry.Pt(150, 0)}
}

func TestSceneDraftLifecycle(t *testing.T) {
	s := NewScene()
	_, ok := s.Draft()
	assert.False(t, ok)

	pts := bezierPoints()
	s.DrawDraft(core.Bezier, pts, testStyle)
	pts[0] = geometry.Pt(7, 7)

	d, ok := s.Draft()
	require.True(t, ok)
	assert.Equal(t, geometry.Pt(0, 0), d.Points[0], "scene must keep its own copy")
	assert.Len(t, s.Markers(), 4)
	assert.Len(t, s.ControlLines(), 2)

	s.ClearDraft()
	_, ok = s.Draft()
	assert.False(t, ok)
	assert.Empty(t, s.Markers())
	assert.Empty(t, s.ControlLines())
}

func TestSceneCommitAndRemove(t *testing.T) {
	s := NewScene()
	line := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(10, 10)}

	h1 := s.CommitShape(core.Line, line, testStyle)
	h2 := s.CommitShape(core.Circle, line, testStyle)
	h3 := s.CommitShape(core.Rectangle, line, testStyle)
	require.NotEqual(t, h1, h2)

	s.RemoveShape(h2)
	shapes := s.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, h1, shapes[0].Handle)
	assert.Equal(t, h3, shapes[1].Handle)

	before := s.Revision()
	s.RemoveShape(Handle("missing"))
	assert.Equal(t, before, s.Revision())
}

func TestControlMarkerColors(t *testing.T) {
	markers := ControlMarkers(core.Bezier, bezierPoints(), false)
	require.Len(t, markers, 4)
	assert.Equal(t, EndpointColor, markers[0].Color)
	assert.Equal(t, ControlPointColor, markers[1].Color)
	assert.Equal(t, ControlPointColor, markers[2].Color)
	assert.Equal(t, EndpointColor, markers[3].Color)
	assert.Equal(t, float64(MarkerRadius), markers[0].Radius)

	touch := ControlMarkers(core.Bezier, bezierPoints(), true)
	assert.Equal(t, float64(TouchMarkerRadius), touch[2].Radius)

	assert.Nil(t, ControlMarkers(core.Line, []geometry.Point{{}, {}}, false))
	assert.Nil(t, ControlLines(core.Rectangle, []geometry.Point{{}, {}}))
}

func TestRebuildGrid(t *testing.T) {
	s := NewScene()
	s.RebuildGrid(20, geometry.Rect{Width: 100, Height: 60})

	g := s.Grid()
	assert.True(t, g.Visible)
	assert.Equal(t, 20, g.CellSize)
	// 4 vertical (20..80) and 2 horizontal (20, 40)
	assert.Len(t, g.Lines, 6)
	assert.Equal(t, Segment{A: geometry.Pt(20, 0), B: geometry.Pt(20, 60)}, g.Lines[0])

	s.SetGridVisible(false)
	assert.False(t, s.Grid().Visible)
}

func TestApplyCommands(t *testing.T) {
	s := NewScene()
	Apply(s,
		DrawDraft(core.Line, []geometry.Point{geometry.Pt(1, 1), geometry.Pt(2, 2)}, testStyle),
	)
	_, ok := s.Draft()
	assert.True(t, ok)

	Apply(s, ClearDraft())
	_, ok = s.Draft()
	assert.False(t, ok)
}
