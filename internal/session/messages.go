package session

import (
	"fmt"

	"github.com/abhisek/mltply/internal/achievements"
)

// Bot lines.
const (
	MsgWelcome            = "Hi! I'm Buddy your friendly robot. I love maths and I'm keen to learn about the numbers you have on planet Earth, so let's get ready to play! 🌍"
	MsgOnboardingSettings = "Before you start, check out the settings to adjust them to your liking. Open them to choose some numbers, operations and a timer to make the game more fun!"
	MsgOnboardingReply    = "Once ready, reply with any message to begin!"
	MsgPlayAgain          = "Would you like to play again?"
	MsgLetsGo             = "OK, great, Let's go!"
	MsgNewRound           = "Starting a new round!"
)

// MsgPlayAgainReply is the user bubble added when the player chooses to
// play again.
const MsgPlayAgainReply = "Yes, lets play again"

// onboarding is the fixed welcome sequence.
var onboarding = []string{MsgWelcome, MsgOnboardingSettings, MsgOnboardingReply}

func correctAnswerMessage(answer int) string {
	return fmt.Sprintf("The correct answer is %d", answer)
}

func achievementMessage(d achievements.Definition) string {
	return fmt.Sprintf("🏆 Achievement Unlocked: %s! - %s", d.Title, d.Description)
}

// summaryMessage reports a finished round. The trophy is only added for a
// perfect round with at least one question.
func summaryMessage(timedOut bool, correct, total, incorrect int) string {
	opening := "Time's up!"
	if !timedOut {
		opening = "Round over!"
	}
	trophy := ""
	if total > 0 && correct == total {
		trophy = " 🏆"
	}
	return fmt.Sprintf("%s You answered %d out of %d questions correctly.\nIncorrect answers: %d%s",
		opening, correct, total, incorrect, trophy)
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
