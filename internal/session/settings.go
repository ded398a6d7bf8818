package session

import (
	"github.com/abhisek/mltply/internal/chat"
	"github.com/abhisek/mltply/internal/problemgen"
)

// SetOperations replaces the enabled operations.
func (c *Controller) SetOperations(ops problemgen.Operations) {
	c.ops = ops
	c.saveOperations()
	c.settingsChanged()
}

// SetPractice replaces the practice settings. The sequential cursor always
// restarts.
func (c *Controller) SetPractice(p problemgen.Practice) {
	p.Numbers = append([]int(nil), p.Numbers...)
	p.Normalize()
	p.ResetCursor()
	c.practice = p
	c.savePractice()
	c.settingsChanged()
}

// ToggleNumber flips one practice number.
func (c *Controller) ToggleNumber(n int) {
	c.practice.Toggle(n)
	c.savePractice()
	c.settingsChanged()
}

// SelectAllNumbers selects 1 through 12.
func (c *Controller) SelectAllNumbers() {
	c.practice.SelectAll()
	c.savePractice()
	c.settingsChanged()
}

// ClearNumbers deselects every practice number.
func (c *Controller) ClearNumbers() {
	c.practice.ClearAll()
	c.savePractice()
	c.settingsChanged()
}

// SetDifficulty changes the operand tier.
func (c *Controller) SetDifficulty(d problemgen.Difficulty) {
	if !d.Valid() {
		return
	}
	c.practice.Difficulty = d
	c.practice.ResetCursor()
	c.savePractice()
	c.settingsChanged()
}

// SetOrdering switches between random and sequential questions. Only the
// cursor is reset; the round carries on.
func (c *Controller) SetOrdering(o problemgen.Ordering) {
	if !o.Valid() {
		return
	}
	c.prefs.Ordering = o
	c.practice.ResetCursor()
	c.savePrefs()
	c.savePractice()
	c.changed()
}

// SetTimerDuration sets the timed round length, clamped to the configured
// bounds.
func (c *Controller) SetTimerDuration(minutes int) {
	c.prefs.TimerMinutes = c.clampMinutes(minutes)
	c.savePrefs()
	c.settingsChanged()
}

// SetContinuousMode turns the round timer off (true) or on (false).
func (c *Controller) SetContinuousMode(on bool) {
	c.prefs.Continuous = on
	c.savePrefs()
	c.settingsChanged()
}

// SetSoundEnabled stores the sound preference. Playback is up to the host.
func (c *Controller) SetSoundEnabled(on bool) {
	c.prefs.Sound = on
	c.savePrefs()
	c.changed()
}

func (c *Controller) clampMinutes(m int) int {
	lo, hi := c.cfg.MinTimerMinutes, c.cfg.MaxTimerMinutes
	if lo <= 0 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	return max(lo, min(m, hi))
}

// settingsChanged re-primes the session after a settings change. A running
// round keeps going and picks the new settings up on its next question.
func (c *Controller) settingsChanged() {
	if c.phase == PhaseRunning {
		c.changed()
		return
	}

	c.bot.Flush()
	c.resetCounters()
	c.practice.ResetCursor()
	switch c.phase {
	case PhaseConfiguringOperations, PhaseConfiguringStart:
		c.phase = PhaseConfiguringOperations
	default:
		c.phase = PhaseOnboarding
	}
	c.primeOnboarding()
	c.changed()
}

// primeOnboarding makes sure the player is told how to start: the full
// welcome on an empty transcript, otherwise the reply prompt unless it is
// already the last bot line.
func (c *Controller) primeOnboarding() {
	if c.phase != PhaseOnboarding {
		return
	}
	msgs := c.messages.Messages()
	if len(msgs) == 0 {
		c.enqueueOnboarding()
		return
	}
	last := msgs[len(msgs)-1]
	if last.Sender == chat.SenderBot && last.Text == MsgOnboardingReply {
		return
	}
	c.bot.Enqueue(MsgOnboardingReply)
}

// RequestReset abandons the current round and returns to onboarding. A
// running score is committed; the transcript, ledger and achievements are
// kept.
func (c *Controller) RequestReset() {
	c.bot.Flush()
	c.resetCounters()
	c.practice.ResetCursor()
	c.phase = PhaseOnboarding
	c.enqueueOnboarding()
	c.changed()
}

// RequestClearMessages wipes the transcript and replays onboarding.
func (c *Controller) RequestClearMessages() {
	c.bot.Flush()
	c.messages.Clear()
	c.resetCounters()
	c.practice.ResetCursor()
	c.phase = PhaseOnboarding
	c.enqueueOnboarding()
	c.changed()
}

// RequestClearHistory empties the answer ledger.
func (c *Controller) RequestClearHistory() {
	c.ledger.Clear()
	c.saveLedger()
	c.changed()
}

// RequestClearScores empties the leaderboard and the running score.
func (c *Controller) RequestClearScores() {
	c.scores.Clear()
	c.saveScores()
	c.changed()
}

// RequestClearAchievements locks every achievement again. The ledger is
// cleared too, otherwise the next answer would unlock them all again.
func (c *Controller) RequestClearAchievements() {
	c.book.Reset()
	c.ledger.Clear()
	c.saveAchievements()
	c.saveLedger()
	c.changed()
}
