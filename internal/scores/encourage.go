package scores

import (
	"fmt"
	"math/rand/v2"
)

var encouragements = []string{
	"Keep practicing, you're doing great!",
	"Every question makes you stronger!",
	"Practice makes perfect!",
	"You're on your way to becoming a math star!",
	"Great effort! Try again to beat your best!",
}

// Encouragement returns a line for the scoreboard. A player with no scores
// gets an invitation to play; otherwise a random cheer is picked with pick,
// which returns an index in [0, n). A nil pick uses math/rand.
func Encouragement(t *Track, pick func(n int) int) string {
	if len(t.all) == 0 {
		return "Play a timed round to get on the board!"
	}
	if pick == nil {
		pick = rand.IntN
	}
	if best := t.PersonalBest(); t.all[len(t.all)-1].Value == best && len(t.all) > 1 {
		return fmt.Sprintf("Every round scored %d. Can you beat it?", best)
	}
	return encouragements[pick(len(encouragements))]
}
