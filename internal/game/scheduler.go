package game

import "time"

// Scheduler defers work for handlers whose narration lands after a
// delay. The default implementation rides time.AfterFunc; tests swap in
// a manual one.
type Scheduler interface {
	After(d time.Duration, fn func())
}

type timerScheduler struct{}

func (timerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
