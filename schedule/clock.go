package schedule

import "time"

// Clock abstracts the time source used for timer scheduling so that
// timer-driven behavior can be tested deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
