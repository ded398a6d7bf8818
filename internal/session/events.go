package session

import (
	"github.com/abhisek/mltply/internal/achievements"
	"github.com/abhisek/mltply/internal/chat"
)

// EventKind identifies what changed.
type EventKind string

const (
	// EventMessage carries a message appended to the transcript.
	EventMessage EventKind = "message"

	// EventTyping reports the typing indicator turning on or off.
	EventTyping EventKind = "typing"

	// EventAchievement carries a newly unlocked achievement.
	EventAchievement EventKind = "achievement"

	// EventChanged reports any other state change (phase, counters,
	// timer, settings, cleared transcript).
	EventChanged EventKind = "changed"
)

// Event is delivered to subscribers on the controller's execution context.
type Event struct {
	Kind        EventKind
	Message     chat.Message
	Typing      bool
	Achievement achievements.Definition
}

// Subscribe registers fn for every future event and returns a function that
// removes it.
func (c *Controller) Subscribe(fn func(Event)) (unsubscribe func()) {
	c.nextSubID++
	id := c.nextSubID
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

type subscriber struct {
	id int
	fn func(Event)
}

func (c *Controller) emit(e Event) {
	for _, s := range append([]subscriber(nil), c.subs...) {
		s.fn(e)
	}
}

func (c *Controller) changed() {
	c.emit(Event{Kind: EventChanged})
}
