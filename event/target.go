package event

import (
	"sync"
)

// Listener is a callback registered for an event type.
type Listener func(*Event)

// ListenerOptions configures a listener registration.
type ListenerOptions struct {
	// Once removes the listener after its first invocation.
	Once bool
}

// registration pairs a listener with its id and options.
type registration struct {
	id       int
	listener Listener
	options  ListenerOptions
}

// Target manages event listeners keyed by event type. Dispatch iterates
// a snapshot of the listener list, so listeners may add or remove
// registrations while an event is in flight.
type Target struct {
	mu        sync.RWMutex
	listeners map[string][]registration
	nextID    int
}

// NewTarget creates a new listener registry.
func NewTarget() *Target {
	return &Target{
		listeners: make(map[string][]registration),
	}
}

// AddListener registers a listener and returns its id.
func (t *Target) AddListener(eventType string, fn Listener, opts ListenerOptions) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	t.listeners[eventType] = append(t.listeners[eventType], registration{
		id:       t.nextID,
		listener: fn,
		options:  opts,
	})
	return t.nextID
}

// RemoveListener unregisters a listener by id. Removing an unknown id is
// a no-op, so removal is safe to repeat.
func (t *Target) RemoveListener(eventType string, id int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	regs := t.listeners[eventType]
	for i, r := range regs {
		if r.id == id {
			t.listeners[eventType] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

// Dispatch delivers the event to listeners registered for its type, in
// registration order, stopping early if a listener consumes the event.
// It returns true unless a listener prevented the default action.
func (t *Target) Dispatch(e *Event) bool {
	t.mu.RLock()
	regs := make([]registration, len(t.listeners[e.Type]))
	copy(regs, t.listeners[e.Type])
	t.mu.RUnlock()

	var toRemove []int
	for _, r := range regs {
		r.listener(e)
		if r.options.Once {
			toRemove = append(toRemove, r.id)
		}
		if e.Stopped() {
			break
		}
	}

	for _, id := range toRemove {
		t.RemoveListener(e.Type, id)
	}

	return !e.DefaultPrevented()
}

// HasListeners reports whether any listeners exist for the event type.
func (t *Target) HasListeners(eventType string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.listeners[eventType]) > 0
}
