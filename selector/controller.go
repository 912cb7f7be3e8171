package selector

import (
	"sync"

	"github.com/AYColumbia/overlaykit/event"
	"github.com/AYColumbia/overlaykit/geometry"
)

// Config configures a selection controller. Zero values pick the
// documented defaults: selecting closes the list and keyboard handling
// is enabled.
type Config struct {
	// Options is the selectable list.
	Options []Option

	// Value is the initially selected value, if any.
	Value any

	// Searchable marks the list as text-filterable. The flag is
	// advisory for hosts (whether to render a search input); Search
	// itself always filters.
	Searchable bool

	// SearchFields are the option fields scanned by the filter.
	// Defaults to label and description.
	SearchFields []string

	// KeepOpenOnSelect leaves the list open after a selection.
	KeepOpenOnSelect bool

	// DisableKeyboard turns off key handling in HandleKey and the
	// bridge subscription.
	DisableKeyboard bool

	// FocusTrigger is called when closing should return focus to the
	// trigger element (Escape).
	FocusTrigger func()

	// OnSelect fires whenever an enabled option is selected, even if
	// the value did not change.
	OnSelect func(value any, opt Option)

	// OnChange fires only when the selected value actually changed.
	OnChange func(value any, opt Option)

	OnOpen   func()
	OnClose  func()
	OnSearch func(query string)
}

// Controller manages what is open and what is highlighted for one
// options list. All operations are silent no-ops when their
// preconditions fail, keeping interaction resilient.
//
// The active index is always -1 or a valid index into the currently
// filtered list.
type Controller struct {
	mu  sync.Mutex
	cfg Config

	options  []Option
	filtered []Option
	selected any
	isOpen   bool
	query    string
	active   int

	trigger geometry.Measurable
	panel   geometry.Measurable
	subs    []*event.Subscription
}

// NewController creates a controller in the closed state.
func NewController(cfg Config) *Controller {
	c := &Controller{
		cfg:      cfg,
		options:  cfg.Options,
		selected: cfg.Value,
		active:   -1,
	}
	c.filtered = c.options
	return c
}

// IsOpen reports whether the list is open.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isOpen
}

// Query returns the current search query.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// ActiveIndex returns the highlighted index into the filtered list, or
// -1 when nothing is highlighted.
func (c *Controller) ActiveIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// SelectedValue returns the currently selected value.
func (c *Controller) SelectedValue() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Selected returns the currently selected option, if the selected value
// names one.
func (c *Controller) Selected() (Option, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, o := range c.options {
		if o.Value == c.selected {
			return o, true
		}
	}
	return Option{}, false
}

// FilteredOptions returns a copy of the options matching the current
// query.
func (c *Controller) FilteredOptions() []Option {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Option, len(c.filtered))
	copy(out, c.filtered)
	return out
}

// SetOptions replaces the options list, re-filters, and re-anchors the
// highlight so the active-index invariant holds.
func (c *Controller) SetOptions(options []Option) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var activeValue any
	hadActive := c.active >= 0 && c.active < len(c.filtered)
	if hadActive {
		activeValue = c.filtered[c.active].Value
	}

	c.options = options
	c.filtered = filterOptions(c.options, c.query, c.cfg.SearchFields)

	if hadActive {
		c.active = indexOfValue(c.filtered, activeValue)
	}
	if c.active >= len(c.filtered) {
		c.active = len(c.filtered) - 1
	}
}

// Open opens the list. The search query is cleared and the highlight is
// placed on the selected option, or the first enabled option when there
// is no selection in the list.
func (c *Controller) Open() {
	c.mu.Lock()
	fires := c.openLocked()
	c.mu.Unlock()
	fire(fires)
}

func (c *Controller) openLocked() []func() {
	if c.isOpen {
		return nil
	}
	c.query = ""
	c.filtered = c.options
	c.active = c.initialActiveLocked()
	c.isOpen = true

	if c.cfg.OnOpen != nil {
		return []func(){c.cfg.OnOpen}
	}
	return nil
}

// initialActiveLocked picks the highlight for a freshly opened list.
func (c *Controller) initialActiveLocked() int {
	if idx := indexOfValue(c.filtered, c.selected); idx >= 0 {
		return idx
	}
	return firstEnabled(c.filtered)
}

// Close closes the list, clearing the query and highlight.
func (c *Controller) Close() {
	c.mu.Lock()
	fires := c.closeLocked()
	c.mu.Unlock()
	fire(fires)
}

func (c *Controller) closeLocked() []func() {
	if !c.isOpen {
		return nil
	}
	c.query = ""
	c.filtered = c.options
	c.active = -1
	c.isOpen = false

	if c.cfg.OnClose != nil {
		return []func(){c.cfg.OnClose}
	}
	return nil
}

// Toggle opens a closed list and closes an open one.
func (c *Controller) Toggle() {
	c.mu.Lock()
	var fires []func()
	if c.isOpen {
		fires = c.closeLocked()
	} else {
		fires = c.openLocked()
	}
	c.mu.Unlock()
	fire(fires)
}

// Select selects the option with the given value. Unknown or disabled
// values are ignored. OnSelect fires for every accepted selection;
// OnChange fires only when the value actually changed. The list closes
// unless configured to stay open.
func (c *Controller) Select(value any) {
	c.mu.Lock()
	fires := c.selectLocked(value)
	c.mu.Unlock()
	fire(fires)
}

func (c *Controller) selectLocked(value any) []func() {
	idx := indexOfValue(c.options, value)
	if idx < 0 || c.options[idx].Disabled {
		return nil
	}
	opt := c.options[idx]
	changed := c.selected != value
	c.selected = value

	var fires []func()
	if c.cfg.OnSelect != nil {
		fires = append(fires, func() { c.cfg.OnSelect(value, opt) })
	}
	if changed && c.cfg.OnChange != nil {
		fires = append(fires, func() { c.cfg.OnChange(value, opt) })
	}
	if !c.cfg.KeepOpenOnSelect {
		fires = append(fires, c.closeLocked()...)
	}
	return fires
}

// Search sets the query, re-filters, and resets the highlight to the
// first match (or nothing when the filter comes up empty).
func (c *Controller) Search(query string) {
	c.mu.Lock()
	c.query = query
	c.filtered = filterOptions(c.options, query, c.cfg.SearchFields)
	if len(c.filtered) > 0 {
		c.active = 0
	} else {
		c.active = -1
	}
	onSearch := c.cfg.OnSearch
	c.mu.Unlock()

	if onSearch != nil {
		onSearch(query)
	}
}

// NavigateNext advances the highlight to the next enabled option,
// wrapping at the end of the list.
func (c *Controller) NavigateNext() {
	c.mu.Lock()
	c.navigateLocked(1)
	c.mu.Unlock()
}

// NavigatePrev retreats the highlight to the previous enabled option,
// wrapping at the start of the list.
func (c *Controller) NavigatePrev() {
	c.mu.Lock()
	c.navigateLocked(-1)
	c.mu.Unlock()
}

// navigateLocked steps the highlight circularly, skipping disabled
// options. The attempt count is bounded by the list length, so a list
// with no enabled options leaves the highlight unchanged.
func (c *Controller) navigateLocked(step int) {
	n := len(c.filtered)
	if n == 0 {
		return
	}

	idx := c.active
	if idx == -1 && step < 0 {
		idx = 0
	}
	for i := 0; i < n; i++ {
		idx = ((idx+step)%n + n) % n
		if !c.filtered[idx].Disabled {
			c.active = idx
			return
		}
	}
}

// First moves the highlight to the first enabled option.
func (c *Controller) First() {
	c.mu.Lock()
	if idx := firstEnabled(c.filtered); idx >= 0 {
		c.active = idx
	}
	c.mu.Unlock()
}

// Last moves the highlight to the last enabled option.
func (c *Controller) Last() {
	c.mu.Lock()
	for i := len(c.filtered) - 1; i >= 0; i-- {
		if !c.filtered[i].Disabled {
			c.active = i
			break
		}
	}
	c.mu.Unlock()
}

// ConfirmActive selects the highlighted option. No-op when nothing is
// highlighted or the highlighted option is disabled.
func (c *Controller) ConfirmActive() {
	c.mu.Lock()
	var fires []func()
	if c.active >= 0 && c.active < len(c.filtered) && !c.filtered[c.active].Disabled {
		fires = c.selectLocked(c.filtered[c.active].Value)
	}
	c.mu.Unlock()
	fire(fires)
}

// indexOfValue returns the index of the option with the given value, or
// -1 if absent.
func indexOfValue(options []Option, value any) int {
	for i, o := range options {
		if o.Value == value {
			return i
		}
	}
	return -1
}

// firstEnabled returns the index of the first enabled option, or -1.
func firstEnabled(options []Option) int {
	for i, o := range options {
		if !o.Disabled {
			return i
		}
	}
	return -1
}

// fire runs callbacks collected under the lock. Callbacks always run
// unlocked so hosts may call back into the controller.
func fire(fires []func()) {
	for _, f := range fires {
		f()
	}
}
