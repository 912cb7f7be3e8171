package popup

import (
	"testing"
	"time"

	"github.com/AYColumbia/overlaykit/event"
	"github.com/AYColumbia/overlaykit/geometry"
	"github.com/AYColumbia/overlaykit/schedule"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeElement is a Measurable whose rect can change between reads.
type fakeElement struct {
	rect geometry.Rect
}

func (f *fakeElement) BoundingRect() geometry.Rect { return f.rect }

type fixture struct {
	clock    *fakeClock
	loop     *schedule.Loop
	viewport geometry.Viewport
	trigger  *fakeElement
	panel    *fakeElement
	ctrl     *Controller
}

func newFixture(cfg Config) *fixture {
	f := &fixture{
		clock:    newFakeClock(),
		viewport: geometry.Viewport{Width: 1024, Height: 768},
		trigger:  &fakeElement{rect: geometry.NewRect(200, 300, 100, 40)},
		panel:    &fakeElement{rect: geometry.NewRect(0, 0, 160, 120)},
	}
	f.loop = schedule.NewLoopWithClock(f.clock)
	f.ctrl = NewController(cfg, f.loop, func() geometry.Viewport { return f.viewport })
	f.ctrl.SetElements(f.trigger, f.panel)
	return f
}

func TestController_DialogOpensPositioned(t *testing.T) {
	f := newFixture(Config{Mode: ModeDialog})

	f.ctrl.SetOpen(true)
	if f.ctrl.State() != StatePositioned {
		t.Errorf("Expected dialog to be positioned immediately, got %q", f.ctrl.State())
	}

	style := f.ctrl.Style()
	if style["top"] != "50%" || style["left"] != "50%" {
		t.Errorf("Expected CSS-centered dialog style, got %v", style)
	}
	if style["transform"] != "translate(-50%, -50%)" {
		t.Errorf("Expected centering transform, got %q", style["transform"])
	}
}

func TestController_DropdownPositioningLifecycle(t *testing.T) {
	f := newFixture(Config{Mode: ModeDropdown})

	f.ctrl.SetOpen(true)
	if f.ctrl.State() != StateOpening {
		t.Fatalf("Expected opening state before measurement, got %q", f.ctrl.State())
	}

	style := f.ctrl.Style()
	if style["opacity"] != "0" || style["pointer-events"] != "none" {
		t.Errorf("Expected invisible non-interactive panel before positioning, got %v", style)
	}
	if style["transition"] != "none" {
		t.Errorf("Expected no transition before positioning, got %q", style["transition"])
	}

	// First frame: measure and apply the computed position.
	f.loop.Frame()
	if f.ctrl.State() != StatePositioned {
		t.Fatalf("Expected positioned after one frame, got %q", f.ctrl.State())
	}

	pos := f.ctrl.Position()
	if pos.Top != 348 || pos.Left != 170 {
		t.Errorf("Expected position (348, 170), got %+v", pos)
	}

	style = f.ctrl.Style()
	if style["top"] != "348px" || style["left"] != "170px" {
		t.Errorf("Expected pixel coordinates in style, got %v", style)
	}
	if style["transition"] != "none" {
		t.Errorf("Expected transition still disabled on positioning frame, got %q", style["transition"])
	}
	if style["opacity"] != "1" || style["pointer-events"] != "auto" {
		t.Errorf("Expected visible interactive panel, got %v", style)
	}

	// Second frame: transitions become active.
	f.loop.Frame()
	if f.ctrl.Style()["transition"] == "none" {
		t.Error("Expected transition enabled one frame after positioning")
	}
}

func TestController_SettlePassRemeasures(t *testing.T) {
	f := newFixture(Config{Mode: ModeDropdown})

	f.ctrl.SetOpen(true)
	f.loop.Frame()
	f.loop.Frame()

	// The panel grows after first positioning (late-loading content).
	f.panel.rect = geometry.NewRect(0, 0, 160, 240)

	f.clock.Advance(100 * time.Millisecond)
	f.loop.Frame()

	// Centered horizontal position is unchanged, but the taller panel
	// re-measures against the same trigger.
	if pos := f.ctrl.Position(); pos.Top != 348 || pos.Left != 170 {
		t.Errorf("Expected re-measured position (348, 170), got %+v", pos)
	}
	if f.loop.HasPendingTimers() {
		t.Error("Expected settle timer to be gone after firing")
	}
}

func TestController_CloseCancelsSettlePass(t *testing.T) {
	f := newFixture(Config{Mode: ModeDropdown})

	f.ctrl.SetOpen(true)
	f.ctrl.SetOpen(false)

	if f.loop.HasPendingTimers() {
		t.Error("Expected pending settle timer cleared on close")
	}
	if f.ctrl.State() != StateClosed {
		t.Errorf("Expected closed state, got %q", f.ctrl.State())
	}

	// The scheduled measurement must not resurrect position state.
	f.loop.RunUntilIdle()
	if f.ctrl.State() != StateClosed {
		t.Errorf("Expected state to stay closed, got %q", f.ctrl.State())
	}
}

func TestController_MissingElementsSkipsComputation(t *testing.T) {
	f := newFixture(Config{Mode: ModeDropdown})
	f.ctrl.SetElements(nil, nil)

	f.ctrl.SetOpen(true)
	f.loop.Frame()
	if f.ctrl.State() != StateOpening {
		t.Fatalf("Expected still opening without elements, got %q", f.ctrl.State())
	}

	// Once the elements exist the caller re-invokes the computation.
	f.ctrl.SetElements(f.trigger, f.panel)
	f.ctrl.UpdatePosition()
	if f.ctrl.State() != StatePositioned {
		t.Errorf("Expected positioned after elements exist, got %q", f.ctrl.State())
	}
}

func TestController_UpdatePositionWhileClosedIsNoop(t *testing.T) {
	f := newFixture(Config{Mode: ModeDropdown})

	f.ctrl.UpdatePosition()
	if f.ctrl.State() != StateClosed {
		t.Errorf("Expected closed state, got %q", f.ctrl.State())
	}
	if pos := f.ctrl.Position(); pos.Top != 0 || pos.Left != 0 {
		t.Errorf("Expected zero position, got %+v", pos)
	}
}

func TestController_ResizeDebounced(t *testing.T) {
	f := newFixture(Config{Mode: ModeDropdown})
	bridge := event.NewBridge()
	f.ctrl.Attach(bridge)

	f.ctrl.SetOpen(true)
	f.loop.Frame()
	f.loop.Frame()

	// Shrink the viewport so the trigger region now overflows.
	f.viewport = geometry.Viewport{Width: 300, Height: 768}
	bridge.Resize()
	bridge.Resize()
	bridge.Resize()

	f.loop.Frame()
	if pos := f.ctrl.Position(); pos.Left != 170 {
		t.Fatalf("Expected position unchanged mid-burst, got %+v", pos)
	}

	f.clock.Advance(150 * time.Millisecond)
	f.loop.Frame()
	want := f.viewport.Width - f.panel.rect.Width - geometry.Margin // 132
	if pos := f.ctrl.Position(); pos.Left != want {
		t.Errorf("Expected clamped Left=%v after debounce, got %+v", want, pos)
	}
}

func TestController_ScrollBeforePositioningIsIgnored(t *testing.T) {
	f := newFixture(Config{Mode: ModeDropdown})
	f.panel.rect = geometry.Rect{} // not laid out yet
	bridge := event.NewBridge()
	f.ctrl.Attach(bridge)

	f.ctrl.SetOpen(true)
	bridge.Scroll() // arrives before the open pass has measured

	if f.ctrl.State() != StateOpening {
		t.Fatalf("Expected still opening after premature scroll, got %q", f.ctrl.State())
	}
	if style := f.ctrl.Style(); style["visibility"] != "hidden" {
		t.Errorf("Expected panel still hidden, got %v", style)
	}

	// Once layout gives the panel a size, the open pass positions it.
	f.panel.rect = geometry.NewRect(0, 0, 160, 120)
	f.loop.Frame()
	if f.ctrl.State() != StatePositioned {
		t.Errorf("Expected positioned by the open pass, got %q", f.ctrl.State())
	}
	if pos := f.ctrl.Position(); pos.Top != 348 || pos.Left != 170 {
		t.Errorf("Expected position (348, 170), got %+v", pos)
	}
}

func TestController_EmptyPanelMeasurementSkipped(t *testing.T) {
	f := newFixture(Config{Mode: ModeDropdown})
	f.panel.rect = geometry.Rect{}

	f.ctrl.SetOpen(true)
	f.loop.Frame()
	if f.ctrl.State() != StateOpening {
		t.Fatalf("Expected opening while the panel measures empty, got %q", f.ctrl.State())
	}

	// The settle pass picks the position up once the panel has a size.
	f.panel.rect = geometry.NewRect(0, 0, 160, 120)
	f.clock.Advance(100 * time.Millisecond)
	f.loop.Frame()
	if f.ctrl.State() != StatePositioned {
		t.Errorf("Expected settle pass to position the panel, got %q", f.ctrl.State())
	}
}

func TestController_ZeroOffsetConfigurable(t *testing.T) {
	zero := 0.0
	f := newFixture(Config{Mode: ModeDropdown, Offset: &zero})

	f.ctrl.SetOpen(true)
	f.loop.Frame()

	// No gap: the panel's top edge sits on the trigger's bottom edge.
	if pos := f.ctrl.Position(); pos.Top != f.trigger.rect.Bottom() {
		t.Errorf("Expected panel flush against the trigger at %v, got %+v",
			f.trigger.rect.Bottom(), pos)
	}
}

func TestController_ScrollThrottledLeadingEdge(t *testing.T) {
	f := newFixture(Config{Mode: ModeDropdown})
	bridge := event.NewBridge()
	f.ctrl.Attach(bridge)

	f.ctrl.SetOpen(true)
	f.loop.Frame()
	f.loop.Frame()

	// The trigger moves with the scrolled content.
	f.trigger.rect = geometry.NewRect(200, 100, 100, 40)
	bridge.Scroll()

	if pos := f.ctrl.Position(); pos.Top != 148 {
		t.Errorf("Expected immediate recompute on first scroll, got %+v", pos)
	}
}

func TestController_DetachIdempotent(t *testing.T) {
	f := newFixture(Config{Mode: ModeDropdown})
	bridge := event.NewBridge()
	f.ctrl.Attach(bridge)

	f.ctrl.SetOpen(true)
	f.loop.Frame()

	f.ctrl.Detach()
	f.ctrl.Detach()

	pos := f.ctrl.Position()
	f.trigger.rect = geometry.NewRect(500, 500, 100, 40)
	bridge.Resize()
	f.clock.Advance(time.Second)
	f.loop.Frame()

	if f.ctrl.Position() != pos {
		t.Error("Expected detached controller to ignore resize events")
	}
	if f.loop.HasPendingTimers() {
		t.Error("Expected all timers cleared after detach")
	}
}

func TestController_AutoModeSwitches(t *testing.T) {
	f := newFixture(Config{Mode: ModeAuto})

	if f.ctrl.CurrentMode() != ModeDropdown {
		t.Errorf("Expected dropdown at width 1024, got %q", f.ctrl.CurrentMode())
	}
	if f.ctrl.IsMobile() {
		t.Error("Expected IsMobile false at width 1024")
	}

	f.viewport = geometry.Viewport{Width: 500, Height: 800}
	if f.ctrl.CurrentMode() != ModeDialog {
		t.Errorf("Expected dialog at width 500, got %q", f.ctrl.CurrentMode())
	}
	if !f.ctrl.IsMobile() {
		t.Error("Expected IsMobile true at width 500")
	}
}

func TestController_DialogModeSkipsRecompute(t *testing.T) {
	f := newFixture(Config{Mode: ModeAuto})
	f.viewport = geometry.Viewport{Width: 500, Height: 800}

	f.ctrl.SetOpen(true)
	if f.ctrl.State() != StatePositioned {
		t.Fatalf("Expected dialog positioned immediately, got %q", f.ctrl.State())
	}

	f.ctrl.UpdatePosition()
	if pos := f.ctrl.Position(); pos.Top != 0 || pos.Left != 0 {
		t.Errorf("Expected no computed position in dialog mode, got %+v", pos)
	}
}

func TestController_SetOpenIdempotent(t *testing.T) {
	f := newFixture(Config{Mode: ModeDropdown})

	f.ctrl.SetOpen(true)
	f.loop.RunUntilIdle()
	pos := f.ctrl.Position()

	f.ctrl.SetOpen(true) // already open: no new scheduling
	if f.ctrl.Position() != pos {
		t.Error("Expected repeated SetOpen(true) to be a no-op")
	}
}
