package session

import "github.com/abhisek/mltply/internal/chat"

// DefaultTimerMinutes is the timed round length for new players.
const DefaultTimerMinutes = 2

// Config controls the behavior of the Controller.
type Config struct {
	// Chat is the bot typing pace.
	Chat chat.Config

	// LeaderboardSize is how many scores the scoreboard shows.
	LeaderboardSize int

	// MinTimerMinutes and MaxTimerMinutes bound SetTimerDuration.
	MinTimerMinutes int
	MaxTimerMinutes int
}

// DefaultConfig returns a Config with the standard pacing and limits.
func DefaultConfig() Config {
	return Config{
		Chat:            chat.DefaultConfig(),
		LeaderboardSize: 10,
		MinTimerMinutes: 1,
		MaxTimerMinutes: 60,
	}
}
