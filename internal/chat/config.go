package chat

import (
	"time"
	"unicode/utf8"
)

// Config controls the simulated typing pace.
type Config struct {
	// BaseDelay is the minimum typing time for any message.
	BaseDelay time.Duration

	// PerChar is added for every character of the message.
	PerChar time.Duration

	// MaxDelay caps the typing time so long messages never stall.
	MaxDelay time.Duration

	// Pause is the gap after a reveal before the next message starts typing.
	Pause time.Duration
}

// DefaultConfig returns the conversational pace used by the app.
func DefaultConfig() Config {
	return Config{
		BaseDelay: time.Second,
		PerChar:   50 * time.Millisecond,
		MaxDelay:  3500 * time.Millisecond,
		Pause:     300 * time.Millisecond,
	}
}

// Instant returns a Config with no delays, for line-mode front ends and
// tests that do not care about pacing.
func Instant() Config {
	return Config{}
}

// Delay returns how long text is shown as typing before it is revealed.
func (c Config) Delay(text string) time.Duration {
	d := c.BaseDelay + time.Duration(utf8.RuneCountInString(text))*c.PerChar
	if c.MaxDelay > 0 && d > c.MaxDelay {
		return c.MaxDelay
	}
	return d
}
