package selector

import (
	"testing"

	"github.com/AYColumbia/overlaykit/event"
	"github.com/AYColumbia/overlaykit/geometry"
)

// staticElement is a Measurable with a fixed rectangle.
type staticElement struct {
	rect geometry.Rect
}

func (s *staticElement) BoundingRect() geometry.Rect { return s.rect }

func attachedController(t *testing.T, cfg Config) (*Controller, *event.Bridge) {
	t.Helper()
	cfg.Options = fiveOptions()
	c := NewController(cfg)
	bridge := event.NewBridge()
	trigger := &staticElement{rect: geometry.NewRect(100, 100, 80, 30)}
	panel := &staticElement{rect: geometry.NewRect(100, 138, 200, 300)}
	c.Attach(bridge, trigger, panel)
	return c, bridge
}

func TestAttach_TriggerClickToggles(t *testing.T) {
	c, bridge := attachedController(t, Config{})

	bridge.Click(120, 110, nil) // inside trigger
	if !c.IsOpen() {
		t.Fatal("Expected trigger click to open the list")
	}

	bridge.Click(120, 110, nil)
	if c.IsOpen() {
		t.Error("Expected second trigger click to close the list")
	}
}

func TestAttach_OpeningClickNotTreatedAsOutside(t *testing.T) {
	// The outside-click handler on the same bridge sees the opening
	// click too; it must skip clicks inside its own trigger rather
	// than immediately close the list the toggle handler just opened.
	c, bridge := attachedController(t, Config{})

	bridge.Click(120, 110, nil)
	if !c.IsOpen() {
		t.Error("Expected list to remain open after the opening click")
	}
}

func TestAttach_SiblingControllersStayIndependent(t *testing.T) {
	// Two controllers on one bridge: a click on one trigger is an
	// outside click for the other, so opening A closes an open B.
	bridge := event.NewBridge()

	a := NewController(Config{Options: fiveOptions()})
	a.Attach(bridge,
		&staticElement{rect: geometry.NewRect(100, 100, 80, 30)},
		&staticElement{rect: geometry.NewRect(100, 138, 200, 300)})

	b := NewController(Config{Options: fiveOptions()})
	b.Attach(bridge,
		&staticElement{rect: geometry.NewRect(500, 100, 80, 30)},
		&staticElement{rect: geometry.NewRect(500, 138, 200, 300)})

	bridge.Click(520, 110, nil) // B's trigger
	if !b.IsOpen() {
		t.Fatal("Expected B to open on its trigger click")
	}
	if a.IsOpen() {
		t.Fatal("Expected A to stay closed")
	}

	bridge.Click(120, 110, nil) // A's trigger
	if !a.IsOpen() {
		t.Error("Expected A to open on its trigger click")
	}
	if b.IsOpen() {
		t.Error("Expected A's trigger click to close B as an outside click")
	}
}

func TestAttach_OutsideClickCloses(t *testing.T) {
	c, bridge := attachedController(t, Config{})
	c.Open()

	bridge.Click(600, 600, nil) // outside trigger and panel
	if c.IsOpen() {
		t.Error("Expected outside click to close the list")
	}
}

func TestAttach_PanelClickDoesNotClose(t *testing.T) {
	c, bridge := attachedController(t, Config{})
	c.Open()

	bridge.Click(150, 200, nil) // inside panel
	if !c.IsOpen() {
		t.Error("Expected click inside the panel to leave the list open")
	}
}

func TestAttach_OutsideClickIgnoredWhileClosed(t *testing.T) {
	closes := 0
	c, bridge := attachedController(t, Config{OnClose: func() { closes++ }})

	bridge.Click(600, 600, nil)
	if c.IsOpen() || closes != 0 {
		t.Error("Expected outside click on a closed list to be a no-op")
	}
}

func TestAttach_KeyboardBindings(t *testing.T) {
	c, bridge := attachedController(t, Config{Value: "a"})
	c.Open()

	bridge.KeyDown(event.KeyArrowDown)
	if c.ActiveIndex() != 2 {
		t.Errorf("Expected ArrowDown to skip to 2, got %d", c.ActiveIndex())
	}

	bridge.KeyDown(event.KeyEnd)
	if c.ActiveIndex() != 4 {
		t.Errorf("Expected End to land on 4, got %d", c.ActiveIndex())
	}

	bridge.KeyDown(event.KeyHome)
	if c.ActiveIndex() != 0 {
		t.Errorf("Expected Home to land on 0, got %d", c.ActiveIndex())
	}

	bridge.KeyDown(event.KeyEnter)
	if c.SelectedValue() != "a" {
		t.Errorf("Expected Enter to confirm highlighted option, got %v", c.SelectedValue())
	}
	if c.IsOpen() {
		t.Error("Expected Enter selection to close the list")
	}
}

func TestAttach_EscapeClosesAndRefocuses(t *testing.T) {
	focused := false
	c, bridge := attachedController(t, Config{FocusTrigger: func() { focused = true }})
	c.Open()

	e := bridge.KeyDown(event.KeyEscape)
	if c.IsOpen() {
		t.Error("Expected Escape to close the list")
	}
	if !focused {
		t.Error("Expected Escape to return focus to the trigger")
	}
	if !e.DefaultPrevented() {
		t.Error("Expected Escape to be consumed")
	}
}

func TestAttach_TabClosesWithoutPreventingDefault(t *testing.T) {
	c, bridge := attachedController(t, Config{})
	c.Open()

	e := bridge.KeyDown(event.KeyTab)
	if c.IsOpen() {
		t.Error("Expected Tab to close the list")
	}
	if e.DefaultPrevented() {
		t.Error("Expected Tab default action to proceed so focus moves")
	}
}

func TestAttach_KeysIgnoredWhileClosed(t *testing.T) {
	c, bridge := attachedController(t, Config{})

	e := bridge.KeyDown(event.KeyArrowDown)
	if c.ActiveIndex() != -1 {
		t.Errorf("Expected closed list to ignore keys, got index %d", c.ActiveIndex())
	}
	if e.DefaultPrevented() {
		t.Error("Expected key to pass through a closed list")
	}
}

func TestAttach_DisableKeyboard(t *testing.T) {
	c, bridge := attachedController(t, Config{DisableKeyboard: true})
	c.Open()

	bridge.KeyDown(event.KeyArrowDown)
	if c.ActiveIndex() != 0 {
		t.Errorf("Expected keyboard handling disabled, got index %d", c.ActiveIndex())
	}
}

func TestDetach_RemovesSubscriptionsIdempotently(t *testing.T) {
	c, bridge := attachedController(t, Config{})

	c.Detach()
	c.Detach() // safe to repeat

	bridge.Click(120, 110, nil)
	if c.IsOpen() {
		t.Error("Expected detached controller to ignore trigger clicks")
	}

	c.Open()
	bridge.KeyDown(event.KeyArrowDown)
	if c.ActiveIndex() != 0 {
		t.Errorf("Expected detached controller to ignore keys, got %d", c.ActiveIndex())
	}
}
