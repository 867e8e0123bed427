package editor

import (
	"vecsketch/core"
	"vecsketch/geometry"
)

// EventKind identifies an editor input event
type EventKind int

const (
	EventPointerDown EventKind = iota // Pointer pressed at Pos
	EventPointerMove                  // Pointer moved to Pos
	EventPointerUp                    // Pointer released, cancelled or left the canvas
	EventFinalize                     // Double-click or double-tap
	EventCancel                       // Discard the draft
	EventSelectKind                   // Switch the current tool to Kind
	EventRestyle                      // Style panel changed
)

// String returns the event name for logs
func (k EventKind) String() string {
	switch k {
	case EventPointerDown:
		return "pointer-down"
	case EventPointerMove:
		return "pointer-move"
	case EventPointerUp:
		return "pointer-up"
	case EventFinalize:
		return "finalize"
	case EventCancel:
		return "cancel"
	case EventSelectKind:
		return "select-kind"
	case EventRestyle:
		return "restyle"
	default:
		return "unknown"
	}
}

// Event is one input to the draft state machine. Pos is in canvas space and
// only meaningful for pointer events; Shape only for EventSelectKind.
type Event struct {
	Kind  EventKind
	Pos   geometry.Point
	Shape core.ShapeKind
}

// PointerDown builds a pointer-down event.
func PointerDown(x, y float64) Event {
	return Event{Kind: EventPointerDown, Pos: geometry.Pt(x, y)}
}

// PointerMove builds a pointer-move event.
func PointerMove(x, y float64) Event {
	return Event{Kind: EventPointerMove, Pos: geometry.Pt(x, y)}
}

// PointerUp builds a pointer-up event.
func PointerUp() Event {
	return Event{Kind: EventPointerUp}
}

// Finalize builds a finalize event.
func Finalize() Event {
	return Event{Kind: EventFinalize}
}

// Cancel builds a cancel event.
func Cancel() Event {
	return Event{Kind: EventCancel}
}

// SelectKind builds a tool switch event.
func SelectKind(kind core.ShapeKind) Event {
	return Event{Kind: EventSelectKind, Shape: kind}
}

// Restyle builds a style change event.
func Restyle() Event {
	return Event{Kind: EventRestyle}
}
