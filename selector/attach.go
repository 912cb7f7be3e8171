package selector

import (
	"github.com/AYColumbia/overlaykit/event"
	"github.com/AYColumbia/overlaykit/geometry"
)

// HandleKey processes one keyboard event. Keys are only handled while
// the list is open and keyboard handling is enabled. The return value
// reports whether the key's default action should be suppressed; Tab
// closes the list but returns false so focus still moves.
func (c *Controller) HandleKey(key string) bool {
	c.mu.Lock()
	if !c.isOpen || c.cfg.DisableKeyboard {
		c.mu.Unlock()
		return false
	}
	c.mu.Unlock()

	switch key {
	case event.KeyEscape:
		c.Close()
		if c.cfg.FocusTrigger != nil {
			c.cfg.FocusTrigger()
		}
		return true
	case event.KeyArrowDown:
		c.NavigateNext()
		return true
	case event.KeyArrowUp:
		c.NavigatePrev()
		return true
	case event.KeyEnter:
		c.ConfirmActive()
		return true
	case event.KeyHome:
		c.First()
		return true
	case event.KeyEnd:
		c.Last()
		return true
	case event.KeyTab:
		c.Close()
		return false
	}
	return false
}

// Attach wires the controller to a bridge: clicks on the trigger
// toggle, clicks outside both trigger and panel close, and keydown
// events drive the keyboard bindings. The outside-click handler skips
// clicks inside this controller's own trigger, so an opening click is
// never also interpreted as an outside click, and controllers sharing
// one bridge observe each other's trigger clicks as ordinary outside
// clicks. Attach replaces any previous attachment.
func (c *Controller) Attach(bridge *event.Bridge, trigger, panel geometry.Measurable) {
	c.Detach()

	c.mu.Lock()
	c.trigger = trigger
	c.panel = panel

	c.subs = append(c.subs,
		bridge.Subscribe(event.Click, c.handleTriggerClick),
		bridge.Subscribe(event.Click, c.handleOutsideClick),
		bridge.Subscribe(event.KeyDown, c.handleKeyDown),
	)
	c.mu.Unlock()
}

// Detach removes all bridge subscriptions and drops the element
// references. Safe to call repeatedly.
func (c *Controller) Detach() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.trigger = nil
	c.panel = nil
	c.mu.Unlock()

	for _, s := range subs {
		s.Remove()
	}
}

func (c *Controller) handleTriggerClick(e *event.Event) {
	c.mu.Lock()
	trigger := c.trigger
	c.mu.Unlock()

	if trigger == nil || !trigger.BoundingRect().Contains(e.X, e.Y) {
		return
	}
	c.Toggle()
}

func (c *Controller) handleOutsideClick(e *event.Event) {
	c.mu.Lock()
	trigger, panel := c.trigger, c.panel
	open := c.isOpen
	c.mu.Unlock()

	if !open {
		return
	}
	if trigger != nil && trigger.BoundingRect().Contains(e.X, e.Y) {
		return
	}
	if panel != nil && panel.BoundingRect().Contains(e.X, e.Y) {
		return
	}
	c.Close()
}

func (c *Controller) handleKeyDown(e *event.Event) {
	if c.HandleKey(e.Key) {
		e.PreventDefault()
	}
}
