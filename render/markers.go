package render

import (
	"vecsketch/core"
	"vecsketch/geometry"
)

// Marker colors and sizes for draft control points. Curve endpoints and the
// interior control points are told apart by color.
const (
	EndpointColor     = "#ff7f0e"
	ControlPointColor = "#1f77b4"
	ControlLineColor  = "#999999"
	MarkerRadius      = 8
	TouchMarkerRadius = 12
)

// Marker is a draggable control point shown on a draft.
type Marker struct {
	Index  int
	Center geometry.Point
	Radius float64
	Color  string
}

// Segment is a straight auxiliary line such as a control line or grid line.
type Segment struct {
	A, B geometry.Point
}

// ControlMarkers returns the control point markers for a draft. Only a
// complete Bezier draft carries markers.
func ControlMarkers(kind core.ShapeKind, points []geometry.Point, touch bool) []Marker {
	if kind != core.Bezier || len(points) != 4 {
		return nil
	}
	radius := float64(MarkerRadius)
	if touch {
		radius = TouchMarkerRadius
	}
	markers := make([]Marker, len(points))
	for i, p := range points {
		color := ControlPointColor
		if i == 0 || i == 3 {
			color = EndpointColor
		}
		markers[i] = Marker{Index: i, Center: p, Radius: radius, Color: color}
	}
	return markers
}

// ControlLines returns the handles joining each curve endpoint to its control point.
func ControlLines(kind core.ShapeKind, points []geometry.Point) []Segment {
	if kind != core.Bezier || len(points) != 4 {
		return nil
	}
	return []Segment{
		{A: points[0], B: points[1]},
		{A: points[2], B: points[3]},
	}
}
