package popup

import (
	"sync"
	"time"

	"github.com/AYColumbia/overlaykit/event"
	"github.com/AYColumbia/overlaykit/geometry"
	"github.com/AYColumbia/overlaykit/schedule"
)

// Rate limits for geometry-invalidating input. Resize bursts settle
// before one recomputation; scroll recomputes at most once per frame
// interval.
const (
	resizeDebounce = 150 * time.Millisecond
	scrollThrottle = 16 * time.Millisecond
)

// defaultSettleDelay is how long after first open the panel is
// re-measured, catching panels whose content finishes loading late.
const defaultSettleDelay = 100 * time.Millisecond

// Config configures a popup controller.
type Config struct {
	// Mode is required: dropdown, dialog, or auto.
	Mode Mode

	// Breakpoint is the viewport width below which auto mode resolves
	// to dialog. Zero means the default of 768.
	Breakpoint float64

	// Placement is the preferred panel side/alignment. Empty means
	// bottom.
	Placement geometry.Placement

	// Offset is the gap between trigger and panel in pixels. Nil means
	// the default of 8; a pointer to zero means no gap.
	Offset *float64

	// Transition is the CSS transition applied once the panel has been
	// positioned. Empty means the default fade/move transition.
	Transition string

	// SettleDelay overrides the late re-measure delay. Zero means the
	// default of 100ms.
	SettleDelay time.Duration
}

func (c Config) breakpoint() float64 {
	if c.Breakpoint > 0 {
		return c.Breakpoint
	}
	return DefaultBreakpoint
}

func (c Config) placement() geometry.Placement {
	if c.Placement == "" {
		return geometry.PlacementBottom
	}
	return c.Placement
}

func (c Config) offset() float64 {
	if c.Offset != nil {
		return *c.Offset
	}
	return geometry.Margin
}

func (c Config) transition() string {
	if c.Transition != "" {
		return c.Transition
	}
	return "opacity 150ms ease, top 150ms ease, left 150ms ease"
}

func (c Config) settleDelay() time.Duration {
	if c.SettleDelay > 0 {
		return c.SettleDelay
	}
	return defaultSettleDelay
}

// State is the positioning lifecycle of the panel.
type State string

const (
	// StateClosed means the panel is not shown.
	StateClosed State = "closed"
	// StateOpening means the panel is shown but its position is not
	// known yet; the style contract keeps it invisible.
	StateOpening State = "opening"
	// StatePositioned means the panel is visible at a computed (or,
	// for dialogs, CSS-centered) position.
	StatePositioned State = "positioned"
)

// Controller coordinates where a panel renders. It owns no rendering:
// the host applies the Style map to its panel element and re-reads it
// when notified (every loop frame while open is sufficient).
//
// Position computation is deferred past the frame that makes the panel
// visible so measurements reflect applied styles, then re-run once more
// after a short settle delay.
type Controller struct {
	mu   sync.Mutex
	cfg  Config
	loop *schedule.Loop

	viewport func() geometry.Viewport
	trigger  geometry.Measurable
	panel    geometry.Measurable

	open            bool
	hasPositioned   bool
	transitionReady bool
	position        geometry.Position

	settleTimer   int
	settlePending bool

	resize *schedule.Debounced
	scroll *schedule.Throttled
	subs   []*event.Subscription
}

// NewController creates a popup controller. The viewport function is
// consulted on every derivation, never cached.
func NewController(cfg Config, loop *schedule.Loop, viewport func() geometry.Viewport) *Controller {
	c := &Controller{
		cfg:      cfg,
		loop:     loop,
		viewport: viewport,
	}
	c.resize = schedule.Debounce(loop, resizeDebounce, c.reposition)
	c.scroll = schedule.Throttle(loop, scrollThrottle, c.reposition)
	return c
}

// SetElements supplies the trigger and panel references. Until both are
// set, position computation is a silent no-op; callers re-invoke
// UpdatePosition (or reopen) once the elements exist.
func (c *Controller) SetElements(trigger, panel geometry.Measurable) {
	c.mu.Lock()
	c.trigger = trigger
	c.panel = panel
	c.mu.Unlock()
}

// IsOpen reports whether the panel is open.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// CurrentMode derives the effective display mode from the current
// viewport width.
func (c *Controller) CurrentMode() Mode {
	return ModeFor(c.viewport().Width, c.cfg)
}

// IsMobile reports whether the viewport is below the dialog breakpoint.
func (c *Controller) IsMobile() bool {
	return c.viewport().Width < c.cfg.breakpoint()
}

// State returns the positioning lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case !c.open:
		return StateClosed
	case c.hasPositioned:
		return StatePositioned
	default:
		return StateOpening
	}
}

// Position returns the last computed position. Only meaningful once the
// state is positioned in dropdown mode.
func (c *Controller) Position() geometry.Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

// SetOpen opens or closes the panel.
//
// Opening a dialog positions immediately: dialogs center via CSS and
// need no measurement. Opening a dropdown defers measurement one frame
// (so the panel has been laid out), applies the computed position, and
// enables transitions on the frame after that; a one-shot settle pass
// re-measures shortly after open. Closing clears position state and
// cancels the settle pass.
func (c *Controller) SetOpen(open bool) {
	c.mu.Lock()

	if open == c.open {
		c.mu.Unlock()
		return
	}
	c.open = open

	if !open {
		c.hasPositioned = false
		c.transitionReady = false
		c.cancelSettleLocked()
		c.mu.Unlock()
		c.resize.Stop()
		c.scroll.Stop()
		return
	}

	if ModeFor(c.viewport().Width, c.cfg) == ModeDialog {
		c.hasPositioned = true
		c.mu.Unlock()
		return
	}

	c.hasPositioned = false
	c.transitionReady = false

	c.loop.QueueMicrotask(func() {
		c.loop.RequestFrame(func() {
			c.recompute()
			c.loop.RequestFrame(c.enableTransition)
		})
	})

	c.settlePending = true
	c.settleTimer = c.loop.SetTimeout(func() {
		c.mu.Lock()
		c.settlePending = false
		c.mu.Unlock()
		c.recompute()
	}, c.cfg.settleDelay())

	c.mu.Unlock()
}

// UpdatePosition recomputes the panel position synchronously from fresh
// measurements. No-op while closed, in dialog mode, or before both
// elements exist.
func (c *Controller) UpdatePosition() {
	c.recompute()
}

// OnResize notifies the controller of a viewport resize. Bursts are
// debounced; one recomputation runs after resizing settles. Resizes
// arriving before the panel has been positioned are ignored: the
// scheduled open pass owns the first measurement.
func (c *Controller) OnResize() {
	c.resize.Call()
}

// OnScroll notifies the controller of a scroll. Recomputation is
// throttled to roughly one run per frame interval, and only runs once
// the panel has been positioned.
func (c *Controller) OnScroll() {
	c.scroll.Call()
}

// Attach subscribes the controller to the bridge's resize and scroll
// events. Attach replaces any previous attachment.
func (c *Controller) Attach(bridge *event.Bridge) {
	c.Detach()

	c.mu.Lock()
	c.subs = append(c.subs,
		bridge.Subscribe(event.Resize, func(*event.Event) { c.OnResize() }),
		bridge.Subscribe(event.Scroll, func(*event.Event) { c.OnScroll() }),
	)
	c.mu.Unlock()
}

// Detach removes bridge subscriptions, stops the rate limiters, and
// cancels any pending settle pass. Safe to call repeatedly.
func (c *Controller) Detach() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.cancelSettleLocked()
	c.mu.Unlock()

	for _, s := range subs {
		s.Remove()
	}
	c.resize.Stop()
	c.scroll.Stop()
}

// reposition re-derives an already-applied position. Events that merely
// invalidate geometry (resize, scroll) must not perform the first
// measurement: before the open pass has positioned the panel it has not
// been laid out, and measuring it would reveal it at a bogus spot.
func (c *Controller) reposition() {
	c.mu.Lock()
	positioned := c.hasPositioned
	c.mu.Unlock()

	if positioned {
		c.recompute()
	}
}

// recompute measures and applies a fresh position. A panel measuring
// empty has not been laid out and is skipped. Last writer wins: racing
// open/resize/scroll computations are all idempotent given current
// geometry, so no generation tracking is needed.
func (c *Controller) recompute() {
	c.mu.Lock()
	trigger, panel := c.trigger, c.panel
	ok := c.open && trigger != nil && panel != nil
	c.mu.Unlock()

	if !ok || ModeFor(c.viewport().Width, c.cfg) != ModeDropdown {
		return
	}

	panelRect := panel.BoundingRect()
	if panelRect.Empty() {
		return
	}

	pos := geometry.ComputePosition(
		trigger.BoundingRect(),
		panelRect,
		c.cfg.placement(),
		c.cfg.offset(),
		c.viewport(),
	)

	c.mu.Lock()
	if c.open {
		c.position = pos
		c.hasPositioned = true
	}
	c.mu.Unlock()
}

func (c *Controller) enableTransition() {
	c.mu.Lock()
	if c.open && c.hasPositioned {
		c.transitionReady = true
	}
	c.mu.Unlock()
}

func (c *Controller) cancelSettleLocked() {
	if c.settlePending {
		c.loop.ClearTimer(c.settleTimer)
		c.settlePending = false
	}
}
