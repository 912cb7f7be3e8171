package schedule

import (
	"sort"
	"sync"
	"time"
)

// timer represents a scheduled callback (one-shot or recurring).
type timer struct {
	id       int
	fn       func()
	dueTime  time.Time
	interval time.Duration // 0 for one-shot timers
	cleared  bool
}

// timerSet manages pending timers for a loop.
type timerSet struct {
	mu     sync.Mutex
	timers map[int]*timer
	nextID int
}

func newTimerSet() *timerSet {
	return &timerSet{
		timers: make(map[int]*timer),
		nextID: 1,
	}
}

func (ts *timerSet) add(fn func(), due time.Time, interval time.Duration) int {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	id := ts.nextID
	ts.nextID++

	ts.timers[id] = &timer{
		id:       id,
		fn:       fn,
		dueTime:  due,
		interval: interval,
	}

	return id
}

func (ts *timerSet) clear(id int) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if t, ok := ts.timers[id]; ok {
		t.cleared = true
		delete(ts.timers, id)
	}
}

// process fires every timer due at or before now, earliest deadline
// first (creation order breaks ties). Callbacks run outside the lock so
// they can schedule or clear timers themselves.
func (ts *timerSet) process(now time.Time) {
	ts.mu.Lock()
	var due []*timer
	for _, t := range ts.timers {
		if !t.cleared && !t.dueTime.After(now) {
			due = append(due, t)
		}
	}
	ts.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].dueTime.Equal(due[j].dueTime) {
			return due[i].id < due[j].id
		}
		return due[i].dueTime.Before(due[j].dueTime)
	})

	for _, t := range due {
		if t.cleared {
			continue
		}

		t.fn()

		ts.mu.Lock()
		if t.interval > 0 && !t.cleared {
			t.dueTime = now.Add(t.interval)
		} else {
			delete(ts.timers, t.id)
		}
		ts.mu.Unlock()
	}
}

func (ts *timerSet) hasPending() bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.timers) > 0
}
