// Package chat holds the conversation transcript and the scheduler that
// paces bot messages with a typing indicator.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who wrote a message.
type Sender string

const (
	SenderBot  Sender = "bot"
	SenderUser Sender = "user"
)

// Tapback is the reaction attached to a user's answer bubble.
type Tapback string

const (
	TapbackNone      Tapback = ""
	TapbackCorrect   Tapback = "correct"
	TapbackIncorrect Tapback = "incorrect"
)

// Message is one transcript entry.
type Message struct {
	ID      string
	Text    string
	Sender  Sender
	Tapback Tapback
	At      time.Time
}

// NewMessage creates a message with a fresh ID.
func NewMessage(sender Sender, text string, at time.Time) Message {
	return Message{ID: uuid.New().String(), Text: text, Sender: sender, At: at}
}

// Transcript is the ordered list of messages shown to the player.
type Transcript struct {
	messages []Message
}

// Append adds m to the end.
func (t *Transcript) Append(m Message) {
	t.messages = append(t.messages, m)
}

// SetTapback attaches a reaction to the message with id. It reports whether
// the message was found.
func (t *Transcript) SetTapback(id string, tb Tapback) bool {
	for i := range t.messages {
		if t.messages[i].ID == id {
			t.messages[i].Tapback = tb
			return true
		}
	}
	return false
}

// Messages returns a copy of the transcript, oldest first.
func (t *Transcript) Messages() []Message {
	return append([]Message(nil), t.messages...)
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Clear removes every message.
func (t *Transcript) Clear() {
	t.messages = nil
}
