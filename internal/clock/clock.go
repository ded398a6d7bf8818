// Package clock provides the single execution context the quiz engine runs
// on, plus a manually advanced implementation for tests.
//
// All delays in the engine are expressed as callbacks scheduled through
// Timers. Implementations must run callbacks on the same logical context
// that processes input events, never concurrently with it.
package clock

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or the timer was already stopped.
	Stop() bool
}

// Timers schedules callbacks on the caller's execution context.
type Timers interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Every runs fn every d until the returned Timer is stopped. It is built on
// AfterFunc, so fn runs on whatever context t delivers callbacks to.
func Every(t Timers, d time.Duration, fn func()) Timer {
	r := &repeater{timers: t, every: d, fn: fn}
	r.schedule()
	return r
}

type repeater struct {
	timers  Timers
	every   time.Duration
	fn      func()
	current Timer
	stopped bool
}

func (r *repeater) schedule() {
	r.current = r.timers.AfterFunc(r.every, func() {
		if r.stopped {
			return
		}
		r.fn()
		if !r.stopped {
			r.schedule()
		}
	})
}

func (r *repeater) Stop() bool {
	if r.stopped {
		return false
	}
	r.stopped = true
	if r.current != nil {
		r.current.Stop()
	}
	return true
}
