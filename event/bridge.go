package event

import (
	"github.com/AYColumbia/overlaykit/geometry"
)

// Bridge is the global-input hub for one host composition. The host
// pumps window-level events (click, keydown, resize, scroll) into it and
// controllers subscribe for the slices they care about.
//
// Each composition owns its own Bridge instance; there is no shared
// package-level state, so independent controller sets never observe one
// another's events.
type Bridge struct {
	target *Target
}

// NewBridge creates a new, empty input bridge.
func NewBridge() *Bridge {
	return &Bridge{target: NewTarget()}
}

// Subscription is a handle to one bridge registration.
type Subscription struct {
	bridge    *Bridge
	eventType string
	id        int
	removed   bool
}

// Remove unregisters the subscription. Safe to call repeatedly.
func (s *Subscription) Remove() {
	if s == nil || s.removed {
		return
	}
	s.removed = true
	s.bridge.target.RemoveListener(s.eventType, s.id)
}

// Subscribe registers a listener for the given event type.
func (b *Bridge) Subscribe(eventType string, fn Listener) *Subscription {
	id := b.target.AddListener(eventType, fn, ListenerOptions{})
	return &Subscription{bridge: b, eventType: eventType, id: id}
}

// Dispatch delivers an already constructed event.
func (b *Bridge) Dispatch(e *Event) bool {
	return b.target.Dispatch(e)
}

// Click pumps a pointer event at viewport coordinates (x, y). The target
// is the element the host resolved under the pointer, if any. The
// dispatched event is returned so callers can inspect its flags.
func (b *Bridge) Click(x, y float64, target geometry.Measurable) *Event {
	e := &Event{Type: Click, X: x, Y: y, Target: target}
	b.target.Dispatch(e)
	return e
}

// KeyDown pumps a keyboard event.
func (b *Bridge) KeyDown(key string) *Event {
	e := &Event{Type: KeyDown, Key: key}
	b.target.Dispatch(e)
	return e
}

// Resize pumps a window resize notification.
func (b *Bridge) Resize() {
	b.target.Dispatch(&Event{Type: Resize})
}

// Scroll pumps a scroll notification.
func (b *Bridge) Scroll() {
	b.target.Dispatch(&Event{Type: Scroll})
}
