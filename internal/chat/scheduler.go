package chat

import "github.com/abhisek/mltply/internal/clock"

// Hooks receive scheduler output. Both run on the timers' execution context.
type Hooks struct {
	// Typing is called when the typing indicator turns on or off.
	Typing func(on bool)

	// Deliver is called when a message is revealed.
	Deliver func(text string)
}

// Scheduler delivers bot messages one at a time in enqueue order. Each
// message is shown as typing for Config.Delay, revealed, then followed by
// Config.Pause before the next one starts.
//
// A Scheduler is not safe for concurrent use; all calls and all timer
// callbacks must share one execution context.
type Scheduler struct {
	timers clock.Timers
	cfg    Config
	hooks  Hooks

	queue     []string
	delivered []string
	busy      bool
	typing    bool
	timer     clock.Timer

	// gen invalidates callbacks scheduled before the last Flush.
	gen uint64
}

// NewScheduler creates an idle Scheduler.
func NewScheduler(timers clock.Timers, cfg Config, hooks Hooks) *Scheduler {
	return &Scheduler{timers: timers, cfg: cfg, hooks: hooks}
}

// Enqueue appends text to the queue and starts draining if idle. A message
// already in flight is never interrupted.
func (s *Scheduler) Enqueue(text string) {
	s.queue = append(s.queue, text)
	if !s.busy {
		s.next()
	}
}

// Typing reports whether a message is currently being typed.
func (s *Scheduler) Typing() bool {
	return s.typing
}

// Pending returns the number of messages not yet revealed, including the one
// in flight.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Idle reports whether nothing is queued or in flight.
func (s *Scheduler) Idle() bool {
	return !s.busy
}

// Delivered returns every revealed text in delivery order.
func (s *Scheduler) Delivered() []string {
	return append([]string(nil), s.delivered...)
}

// Flush drops the queue and any in-flight message. Callbacks scheduled
// before the flush become no-ops even if they already fired.
func (s *Scheduler) Flush() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.queue = nil
	s.busy = false
	s.setTyping(false)
}

func (s *Scheduler) next() {
	if len(s.queue) == 0 {
		s.busy = false
		s.timer = nil
		return
	}
	s.busy = true
	s.setTyping(true)

	gen := s.gen
	s.timer = s.timers.AfterFunc(s.cfg.Delay(s.queue[0]), func() {
		if gen != s.gen {
			return
		}
		text := s.queue[0]
		s.queue = s.queue[1:]
		s.setTyping(false)
		s.delivered = append(s.delivered, text)
		if s.hooks.Deliver != nil {
			s.hooks.Deliver(text)
		}
		if gen != s.gen {
			// Deliver may have flushed the scheduler.
			return
		}
		s.timer = s.timers.AfterFunc(s.cfg.Pause, func() {
			if gen != s.gen {
				return
			}
			s.next()
		})
	})
}

func (s *Scheduler) setTyping(on bool) {
	if s.typing == on {
		return
	}
	s.typing = on
	if s.hooks.Typing != nil {
		s.hooks.Typing(on)
	}
}
