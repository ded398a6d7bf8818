package clock

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultLoopBuffer is the number of posted functions a Loop buffers before
// Post blocks.
const DefaultLoopBuffer = 64

// Loop is a serial executor. Functions posted from any goroutine run one at a
// time on the goroutine that called Run, in the order they were posted.
type Loop struct {
	events   chan func()
	done     chan struct{}
	stopOnce sync.Once
}

var _ Timers = (*Loop)(nil)

// NewLoop creates a Loop. Nothing runs until Run is called.
func NewLoop() *Loop {
	return &Loop{
		events: make(chan func(), DefaultLoopBuffer),
		done:   make(chan struct{}),
	}
}

// Post queues fn for execution on the loop. It returns false if the loop has
// already stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case <-l.done:
		return false
	case l.events <- fn:
		return true
	}
}

// AfterFunc schedules fn to be posted to the loop after d. A stopped timer
// never runs fn, even if its deadline passed and the post is still queued.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{}
	lt.t = time.AfterFunc(d, func() {
		l.Post(func() {
			if lt.stopped.Load() {
				return
			}
			lt.fired.Store(true)
			fn()
		})
	})
	return lt
}

// Run executes posted functions until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.events:
			fn()
		}
	}
}

func (l *Loop) stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

type loopTimer struct {
	t       *time.Timer
	stopped atomic.Bool
	fired   atomic.Bool
}

func (t *loopTimer) Stop() bool {
	if t.fired.Load() || t.stopped.Swap(true) {
		return false
	}
	t.t.Stop()
	return true
}
