package clock

import "time"

// Manual is a Timers implementation whose time only moves when Advance is
// called. Callbacks run synchronously inside Advance, in deadline order
// (ties broken by scheduling order). It is not safe for concurrent use.
type Manual struct {
	now     time.Time
	seq     int
	pending []*manualTimer
}

var _ Timers = (*Manual)(nil)

// NewManual creates a Manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time {
	return m.now
}

// AfterFunc schedules fn to run once the clock has advanced by d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	t := &manualTimer{at: m.now.Add(d), seq: m.seq, fn: fn}
	m.seq++
	m.pending = append(m.pending, t)
	return t
}

// Advance moves the clock forward by d and runs every callback that falls
// due, including callbacks scheduled by other callbacks during the advance.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		if next.at.After(m.now) {
			m.now = next.at
		}
		next.done = true
		next.fn()
	}
	m.now = target
	m.compact()
}

// Pending returns the number of callbacks that have not run or been stopped.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.pending {
		if !t.done {
			n++
		}
	}
	return n
}

func (m *Manual) nextDue(target time.Time) *manualTimer {
	var best *manualTimer
	for _, t := range m.pending {
		if t.done || t.at.After(target) {
			continue
		}
		if best == nil || t.at.Before(best.at) || (t.at.Equal(best.at) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) compact() {
	live := m.pending[:0]
	for _, t := range m.pending {
		if !t.done {
			live = append(live, t)
		}
	}
	m.pending = live
}

type manualTimer struct {
	at   time.Time
	seq  int
	fn   func()
	done bool
}

func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}
