package render

import (
	"vecsketch/core"
	"vecsketch/geometry"
)

// Op is the kind of renderer side effect an editor transition asks for.
type Op int

const (
	OpDrawDraft  Op = iota // Redraw the draft from scratch
	OpClearDraft           // Remove the draft and its markers
)

// String returns the op name for logs.
func (o Op) String() string {
	switch o {
	case OpDrawDraft:
		return "draw-draft"
	case OpClearDraft:
		return "clear-draft"
	default:
		return "unknown"
	}
}

// Command is a renderer side effect produced by a pure editor transition.
type Command struct {
	Op     Op
	Kind   core.ShapeKind
	Points []geometry.Point
	Style  core.Style
}

// DrawDraft builds a draft redraw command.
func DrawDraft(kind core.ShapeKind, points []geometry.Point, style core.Style) Command {
	return Command{Op: OpDrawDraft, Kind: kind, Points: points, Style: style}
}

// ClearDraft builds a draft removal command.
func ClearDraft() Command {
	return Command{Op: OpClearDraft}
}

// Apply runs commands against a renderer in order.
func Apply(r Renderer, cmds ...Command) {
	for _, cmd := range cmds {
		switch cmd.Op {
		case OpDrawDraft:
			r.DrawDraft(cmd.Kind, cmd.Points, cmd.Style)
		case OpClearDraft:
			r.ClearDraft()
		}
	}
}
