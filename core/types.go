// Package core contains the fundamental types used throughout vecsketch.
package core

import (
	"fmt"
	"slices"
	"strings"

	"vecsketch/geometry"
)

// ShapeKind identifies one of the primitive shapes the editor can author.
type ShapeKind int

const (
	Bezier ShapeKind = iota
	Line
	Rectangle
	Circle
)

// Kinds lists every shape kind in tool order.
var Kinds = []ShapeKind{Bezier, Line, Rectangle, Circle}

// String returns the string representation of a ShapeKind.
func (k ShapeKind) String() string {
	switch k {
	case Bezier:
		return "bezier"
	case Line:
		return "line"
	case Rectangle:
		return "rectangle"
	case Circle:
		return "circle"
	default:
		return "unknown"
	}
}

// PointCount returns how many points a complete shape of this kind holds.
func (k ShapeKind) PointCount() int {
	if k == Bezier {
		return 4
	}
	return 2
}

// ParseShapeKind converts a tool name to a ShapeKind.
func ParseShapeKind(s string) (ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bezier", "curve", "b":
		return Bezier, nil
	case "line", "l":
		return Line, nil
	case "rectangle", "rect", "r":
		return Rectangle, nil
	case "circle", "c":
		return Circle, nil
	default:
		return 0, fmt.Errorf("unknown shape: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ShapeKind) MarshalText() ([]byte, error) {
	if k < Bezier || k > Circle {
		return nil, fmt.Errorf("invalid shape kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ShapeKind) UnmarshalText(text []byte) error {
	parsed, err := ParseShapeKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Style holds the presentation attributes applied to a shape.
type Style struct {
	StrokeColor string  `json:"stroke_color"`
	StrokeWidth float64 `json:"stroke_width"`
	FillColor   string  `json:"fill_color"`
	FillEnabled bool    `json:"fill_enabled"`
}

// Fill returns the paint used for the shape interior, or "none".
// Lines never carry a fill.
func (s Style) Fill(kind ShapeKind) string {
	if !s.FillEnabled || kind == Line || s.FillColor == "" {
		return "none"
	}
	return s.FillColor
}

// Shape is a committed shape: its geometry plus the style that was live
// when it was committed. Shapes are never modified after creation.
type Shape struct {
	Kind   ShapeKind        `json:"kind"`
	Points []geometry.Point `json:"points"`
	Style  Style            `json:"style"`
}

// NewShape captures a shape, copying points so later edits to the caller's
// slice cannot reach it.
func NewShape(kind ShapeKind, points []geometry.Point, style Style) Shape {
	return Shape{Kind: kind, Points: slices.Clone(points), Style: style}
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	return NewShape(s.Kind, s.Points, s.Style)
}

// Valid reports whether the shape holds the number of points its kind needs.
func (s Shape) Valid() bool {
	return len(s.Points) == s.Kind.PointCount()
}

// Rect returns the normalized box of a rectangle shape.
func (s Shape) Rect() geometry.Rect {
	return geometry.NormalizeRect(s.Points[0], s.Points[1])
}

// Radius returns the radius of a circle shape.
func (s Shape) Radius() float64 {
	return geometry.Distance(s.Points[0], s.Points[1])
}

// Document is the exported scene: the canvas size and the committed shapes
// in drawing order.
type Document struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Shapes []Shape `json:"shapes"`
}
