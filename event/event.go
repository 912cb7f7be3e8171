// Package event provides the input-event plumbing shared by the popup
// and selection controllers: an event type, per-target listener
// registries, and a bridge that hosts pump window-level input through.
package event

import (
	"github.com/AYColumbia/overlaykit/geometry"
)

// Well-known event types routed through the bridge.
const (
	Click   = "click"
	KeyDown = "keydown"
	Resize  = "resize"
	Scroll  = "scroll"
)

// Key values for keydown events, following the KeyboardEvent.key naming.
const (
	KeyEscape    = "Escape"
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
	KeyEnter     = "Enter"
	KeyHome      = "Home"
	KeyEnd       = "End"
	KeyTab       = "Tab"
)

// Event represents a single dispatched input event.
type Event struct {
	Type string

	// Key is set for keydown events.
	Key string

	// X, Y are viewport coordinates, set for pointer events.
	X float64
	Y float64

	// Target is the element the event originated on, when the host
	// knows it. May be nil for window-level events.
	Target geometry.Measurable

	stopped          bool
	defaultPrevented bool
}

// StopPropagation marks the event consumed; dispatch stops after the
// current listener and later subscribers see Stopped() as true.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether a listener has consumed the event.
func (e *Event) Stopped() bool {
	return e.stopped
}

// PreventDefault marks the event's default action suppressed.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether the default action was suppressed.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}
