// Package input turns host pointer events into canvas-space coordinates.
//
// Mouse and touch events are unified into RawEvent values. A Viewport maps
// their client coordinates onto the logical canvas, a TapDetector recognises
// double taps, and a MouseTracker turns terminal button states into edges.
package input

import (
	"time"

	"vecsketch/geometry"
)

// Source identifies the device that produced an event
type Source int

const (
	Mouse Source = iota
	Touch
)

// String returns the source name for logs
func (s Source) String() string {
	switch s {
	case Mouse:
		return "mouse"
	case Touch:
		return "touch"
	default:
		return "unknown"
	}
}

// Phase is the pointer lifecycle stage of an event
type Phase int

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
	PhaseCancel // touch cancelled by the host
	PhaseLeave  // pointer left the canvas
)

// String returns the phase name for logs
func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	case PhaseLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// Ends reports whether the phase releases the pointer.
func (p Phase) Ends() bool {
	return p == PhaseUp || p == PhaseCancel || p == PhaseLeave
}

// TouchPoint is one active contact of a touch event.
type TouchPoint struct {
	ClientX float64
	ClientY float64
}

// RawEvent is a pointer event as delivered by the host, before mapping to
// canvas space. Touch events carry their contacts in Touches; ClientX and
// ClientY are only read for mouse events.
type RawEvent struct {
	Source  Source
	Phase   Phase
	ClientX float64
	ClientY float64
	Touches []TouchPoint
	Time    time.Time
}

// Viewport is the on-screen rectangle of the canvas and its logical size.
type Viewport struct {
	Left, Top     float64
	Width, Height float64

	LogicalWidth, LogicalHeight float64
}

// Normalize maps the event position into canvas space. Touch events use
// their first contact; a touch event without contacts has no position and
// ok is false. A viewport with no on-screen size maps with scale 1.
func (v Viewport) Normalize(ev RawEvent) (p geometry.Point, ok bool) {
	x, y := ev.ClientX, ev.ClientY
	if ev.Source == Touch {
		if len(ev.Touches) == 0 {
			return geometry.Point{}, false
		}
		x, y = ev.Touches[0].ClientX, ev.Touches[0].ClientY
	}
	sx := scale(v.LogicalWidth, v.Width)
	sy := scale(v.LogicalHeight, v.Height)
	return geometry.Pt((x-v.Left)*sx, (y-v.Top)*sy), true
}

func scale(logical, onScreen float64) float64 {
	if onScreen <= 0 || logical <= 0 {
		return 1
	}
	return logical / onScreen
}

// SuppressDefault reports whether the host's default handling (scrolling,
// zooming, text selection) must be stopped for ev. Every touch event is
// suppressed, and mouse events while a gesture is in progress.
func SuppressDefault(ev RawEvent, pressed bool) bool {
	if ev.Source == Touch {
		return true
	}
	return pressed || ev.Phase == PhaseDown
}
