package schedule

import (
	"sync"
	"time"
)

// Debounced wraps a callback so that a burst of calls collapses into a
// single trailing invocation once the burst settles.
type Debounced struct {
	loop  *Loop
	delay time.Duration
	fn    func()

	mu      sync.Mutex
	pending bool
	timerID int
}

// Debounce returns a debounced wrapper around fn using the loop's timers.
func Debounce(loop *Loop, delay time.Duration, fn func()) *Debounced {
	return &Debounced{loop: loop, delay: delay, fn: fn}
}

// Call schedules fn to run after the delay, resetting the countdown if a
// call is already pending.
func (d *Debounced) Call() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending {
		d.loop.ClearTimer(d.timerID)
	}
	d.pending = true
	d.timerID = d.loop.SetTimeout(func() {
		d.mu.Lock()
		d.pending = false
		d.mu.Unlock()
		d.fn()
	}, d.delay)
}

// Stop cancels any pending invocation. Safe to call repeatedly.
func (d *Debounced) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending {
		d.loop.ClearTimer(d.timerID)
		d.pending = false
	}
}

// Throttled wraps a callback so it runs at most once per interval: the
// first call in a window fires immediately, and at most one trailing
// call fires at the end of the window.
type Throttled struct {
	loop     *Loop
	interval time.Duration
	fn       func()

	mu      sync.Mutex
	last    time.Time
	hasLast bool
	pending bool
	timerID int
}

// Throttle returns a throttled wrapper around fn using the loop's timers.
func Throttle(loop *Loop, interval time.Duration, fn func()) *Throttled {
	return &Throttled{loop: loop, interval: interval, fn: fn}
}

// Call invokes fn immediately if the window has elapsed, otherwise
// schedules a single trailing invocation for the end of the window.
func (t *Throttled) Call() {
	t.mu.Lock()

	now := t.loop.clock.Now()
	if !t.hasLast || now.Sub(t.last) >= t.interval {
		t.last = now
		t.hasLast = true
		t.mu.Unlock()
		t.fn()
		return
	}

	if t.pending {
		t.mu.Unlock()
		return
	}

	t.pending = true
	remaining := t.interval - now.Sub(t.last)
	t.timerID = t.loop.SetTimeout(func() {
		t.mu.Lock()
		t.pending = false
		t.last = t.loop.clock.Now()
		t.hasLast = true
		t.mu.Unlock()
		t.fn()
	}, remaining)
	t.mu.Unlock()
}

// Stop cancels any pending trailing invocation. Safe to call repeatedly.
func (t *Throttled) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending {
		t.loop.ClearTimer(t.timerID)
		t.pending = false
	}
}
