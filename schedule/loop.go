// Package schedule provides the cooperative event loop that sequences
// controller work: microtasks, per-frame callbacks, and timers. All work
// runs on whichever goroutine pumps the loop; there is no internal
// parallelism, mirroring a UI thread's event loop.
package schedule

import (
	"sync"
	"time"
)

// Loop manages queued microtasks, frame callbacks, and timers.
//
// Microtasks run before any other work in a frame. Frame callbacks run
// once per Frame call; callbacks queued while a frame is running are
// deferred to the next frame, which is what lets callers sequence
// "measure after the next repaint" style work.
type Loop struct {
	mu         sync.Mutex
	clock      Clock
	microtasks []func()
	frames     []func()
	timers     *timerSet
}

// NewLoop creates a new event loop backed by the real clock.
func NewLoop() *Loop {
	return NewLoopWithClock(realClock{})
}

// NewLoopWithClock creates a new event loop with an explicit time source.
func NewLoopWithClock(clock Clock) *Loop {
	return &Loop{
		clock:  clock,
		timers: newTimerSet(),
	}
}

// QueueMicrotask adds a callback to the microtask queue.
// Microtasks run before frame callbacks and timers.
func (l *Loop) QueueMicrotask(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.microtasks = append(l.microtasks, fn)
}

// RequestFrame schedules a callback to run on the next frame.
func (l *Loop) RequestFrame(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.frames = append(l.frames, fn)
}

// Flush drains the microtask queue, including microtasks queued by
// microtasks already running.
func (l *Loop) Flush() {
	for {
		l.mu.Lock()
		if len(l.microtasks) == 0 {
			l.mu.Unlock()
			return
		}
		fn := l.microtasks[0]
		l.microtasks = l.microtasks[1:]
		l.mu.Unlock()

		fn()
	}
}

// Frame runs one frame: it drains microtasks, fires any due timers, then
// runs the frame callbacks that were queued before the frame started.
func (l *Loop) Frame() {
	l.Flush()
	l.timers.process(l.clock.Now())
	l.Flush()

	l.mu.Lock()
	batch := l.frames
	l.frames = nil
	l.mu.Unlock()

	for _, fn := range batch {
		fn()
		l.Flush()
	}
}

// RunUntilIdle pumps frames until no microtasks or frame callbacks
// remain. Timers fire if due while pumping but are not waited for;
// callers driving timer behavior advance the clock and call Frame.
func (l *Loop) RunUntilIdle() {
	for {
		l.mu.Lock()
		idle := len(l.microtasks) == 0 && len(l.frames) == 0
		l.mu.Unlock()
		if idle {
			return
		}
		l.Frame()
	}
}

// SetTimeout schedules a one-shot callback after the given delay and
// returns its timer id.
func (l *Loop) SetTimeout(fn func(), delay time.Duration) int {
	return l.timers.add(fn, l.clock.Now().Add(delay), 0)
}

// SetInterval schedules a recurring callback and returns its timer id.
func (l *Loop) SetInterval(fn func(), interval time.Duration) int {
	return l.timers.add(fn, l.clock.Now().Add(interval), interval)
}

// ClearTimer cancels a pending timer. Clearing an unknown or already
// fired id is a no-op.
func (l *Loop) ClearTimer(id int) {
	l.timers.clear(id)
}

// HasPendingTimers reports whether any timers are still scheduled.
func (l *Loop) HasPendingTimers() bool {
	return l.timers.hasPending()
}
