package ui

import (
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/AYColumbia/overlaykit/event"
	"github.com/AYColumbia/overlaykit/geometry"
	"github.com/AYColumbia/overlaykit/popup"
	"github.com/AYColumbia/overlaykit/schedule"
	"github.com/AYColumbia/overlaykit/selector"
)

// framePeriod is how often the host pumps the scheduling loop.
const framePeriod = 16 * time.Millisecond

// Host owns one window with a trigger button and a floating options
// panel, wired to a selection controller and a popup controller through
// a private event bridge. It is the reference composition for the
// toolkit; real applications assemble the same pieces around their own
// widgets.
type Host struct {
	app    fyne.App
	window fyne.Window

	loop   *schedule.Loop
	bridge *event.Bridge
	list   *selector.Controller
	panel  *popup.Controller

	trigger    *widget.Button
	search     *widget.Entry
	panelBox   *fyne.Container
	optionsBox *fyne.Container
	root       *fyne.Container

	stop chan struct{}
}

// NewHost creates a demo window around the given options.
func NewHost(options []selector.Option) *Host {
	a := app.New()
	w := a.NewWindow("overlaykit demo")
	w.Resize(fyne.NewSize(900, 600))

	h := &Host{
		app:    a,
		window: w,
		loop:   schedule.NewLoop(),
		bridge: event.NewBridge(),
		stop:   make(chan struct{}),
	}

	h.list = selector.NewController(selector.Config{
		Options:    options,
		Searchable: true,
		OnOpen:     h.onOpen,
		OnClose:    h.onClose,
		OnSelect:   h.onSelect,
		OnSearch:   func(string) { h.rebuildOptions() },
	})
	h.panel = popup.NewController(popup.Config{Mode: popup.ModeAuto}, h.loop, h.viewport)

	h.setupUI()
	h.setupInput()

	return h
}

// Loop returns the host's scheduling loop, letting callers (such as a
// script runtime) share it.
func (h *Host) Loop() *schedule.Loop {
	return h.loop
}

// Selector returns the selection controller.
func (h *Host) Selector() *selector.Controller {
	return h.list
}

// Popup returns the popup controller.
func (h *Host) Popup() *popup.Controller {
	return h.panel
}

// viewport reports the window content size.
func (h *Host) viewport() geometry.Viewport {
	size := h.window.Canvas().Size()
	return geometry.Viewport{Width: float64(size.Width), Height: float64(size.Height)}
}

// setupUI builds the widget tree: a trigger button positioned in the
// window and a hidden panel holding the search entry and option rows.
func (h *Host) setupUI() {
	h.trigger = widget.NewButton("Choose...", func() {
		// Route through the bridge so toggle and outside-click
		// handling share one code path.
		r := (&element{obj: h.trigger}).BoundingRect()
		h.bridge.Click(r.Left()+r.Width/2, r.Top()+r.Height/2, nil)
	})
	h.trigger.Resize(fyne.NewSize(180, 36))
	h.trigger.Move(fyne.NewPos(40, 40))

	h.search = widget.NewEntry()
	h.search.SetPlaceHolder("Search...")
	h.search.OnChanged = func(q string) {
		h.list.Search(q)
	}

	h.optionsBox = container.NewVBox()
	h.panelBox = container.NewVBox(h.search, h.optionsBox)
	h.panelBox.Resize(fyne.NewSize(220, 260))
	h.panelBox.Hide()

	h.root = container.NewWithoutLayout(h.trigger, h.panelBox)
	h.window.SetContent(h.root)

	h.panel.SetElements(&element{obj: h.trigger}, &element{obj: h.panelBox})
	h.list.Attach(h.bridge, &element{obj: h.trigger}, &element{obj: h.panelBox})
	h.panel.Attach(h.bridge)
}

// setupInput routes window-level input into the bridge: typed keys and
// a polled resize check (Fyne has no resize callback).
func (h *Host) setupInput() {
	h.window.Canvas().SetOnTypedKey(func(k *fyne.KeyEvent) {
		if name, ok := keyNames[k.Name]; ok {
			h.bridge.KeyDown(name)
		}
	})

	last := h.window.Canvas().Size()
	h.loop.SetInterval(func() {
		if size := h.window.Canvas().Size(); size != last {
			last = size
			h.bridge.Resize()
		}
	}, 250*time.Millisecond)
}

func (h *Host) onOpen() {
	h.search.SetText("")
	h.rebuildOptions()
	h.panel.SetOpen(true)
}

func (h *Host) onClose() {
	h.panel.SetOpen(false)
	h.panelBox.Hide()
}

func (h *Host) onSelect(_ any, opt selector.Option) {
	h.trigger.SetText(opt.Label)
}

// rebuildOptions re-renders the option rows from the filtered list.
func (h *Host) rebuildOptions() {
	h.optionsBox.Objects = nil
	for _, opt := range h.list.FilteredOptions() {
		opt := opt
		row := widget.NewButton(opt.Label, func() {
			h.list.Select(opt.Value)
		})
		if opt.Disabled {
			row.Disable()
		}
		h.optionsBox.Add(row)
	}
	h.optionsBox.Refresh()
	h.panel.UpdatePosition()
}

// applyStyle applies the popup style contract to the panel object.
func (h *Host) applyStyle() {
	if !h.panel.IsOpen() {
		return
	}
	style := h.panel.Style()

	if style["visibility"] == "hidden" || style["opacity"] == "0" {
		h.panelBox.Hide()
		return
	}

	if style["transform"] != "" {
		// Dialog mode: centered in the viewport.
		vp := h.viewport()
		size := h.panelBox.Size()
		h.panelBox.Move(fyne.NewPos(
			float32(vp.Width/2)-size.Width/2,
			float32(vp.Height/2)-size.Height/2,
		))
	} else {
		h.panelBox.Move(fyne.NewPos(
			float32(parsePx(style["left"])),
			float32(parsePx(style["top"])),
		))
	}
	h.panelBox.Show()
}

// parsePx reads a CSS pixel length back into a number.
func parsePx(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return 0
	}
	return v
}

// Run pumps the scheduling loop on the UI thread and shows the window.
// It blocks until the window closes.
func (h *Host) Run() {
	go func() {
		ticker := time.NewTicker(framePeriod)
		defer ticker.Stop()
		for {
			select {
			case <-h.stop:
				return
			case <-ticker.C:
				fyne.Do(func() {
					h.loop.Frame()
					h.applyStyle()
				})
			}
		}
	}()

	h.window.SetOnClosed(func() {
		close(h.stop)
		h.list.Detach()
		h.panel.Detach()
	})

	h.window.ShowAndRun()
}
