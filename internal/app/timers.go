package app

import (
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mltply/internal/clock"
)

// timerFiredMsg carries a due callback onto the program's update loop.
type timerFiredMsg struct {
	timer *teaTimer
}

// teaTimers implements clock.Timers by posting due callbacks into a Bubble
// Tea program, so controller callbacks run inside Update like key presses.
type teaTimers struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

var _ clock.Timers = (*teaTimers)(nil)

// bind sets the function used to deliver messages, normally Program.Send.
func (ts *teaTimers) bind(send func(tea.Msg)) {
	ts.mu.Lock()
	ts.send = send
	ts.mu.Unlock()
}

func (ts *teaTimers) post(msg tea.Msg) {
	ts.mu.Lock()
	send := ts.send
	ts.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

func (ts *teaTimers) AfterFunc(d time.Duration, fn func()) clock.Timer {
	t := &teaTimer{fn: fn}
	t.wall = time.AfterFunc(d, func() { ts.post(timerFiredMsg{timer: t}) })
	return t
}

// teaTimer state is only touched on the update loop; the wall timer only
// posts a message.
type teaTimer struct {
	fn      func()
	wall    *time.Timer
	stopped bool
	fired   bool
}

func (t *teaTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.wall.Stop()
	return true
}

func (t *teaTimer) run() {
	if t.stopped || t.fired {
		return
	}
	t.fired = true
	t.fn()
}
