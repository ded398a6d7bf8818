// Package session runs the quiz: it owns the lifecycle phase, asks
// questions, scores answers and paces the bot's replies.
package session

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/abhisek/mltply/internal/achievements"
	"github.com/abhisek/mltply/internal/chat"
	"github.com/abhisek/mltply/internal/clock"
	"github.com/abhisek/mltply/internal/ledger"
	"github.com/abhisek/mltply/internal/problemgen"
	"github.com/abhisek/mltply/internal/scores"
	"github.com/abhisek/mltply/internal/store"
)

// Deps are the collaborators a Controller runs with.
type Deps struct {
	// Timers delivers delayed callbacks on the controller's execution
	// context. Required.
	Timers clock.Timers

	// Store persists settings and progress. Nil uses an in-memory store.
	Store store.KV

	// Logger receives persistence warnings. Nil discards them.
	Logger *slog.Logger

	// Rand drives question generation. Nil uses math/rand.
	Rand problemgen.Rand

	// Now stamps records and unlocks. Nil uses time.Now.
	Now func() time.Time
}

// Controller is the quiz state machine. It is not safe for concurrent use:
// every method and every Timers callback must run on one execution context.
type Controller struct {
	cfg Config
	kv  store.KV
	log *slog.Logger
	now func() time.Time
	gen *problemgen.Generator

	ops      problemgen.Operations
	practice problemgen.Practice
	prefs    Prefs

	ledger   *ledger.Ledger
	catalog  []achievements.Definition
	book     *achievements.Book
	scores   *scores.Track
	messages chat.Transcript
	bot      *chat.Scheduler

	phase     Phase
	question  *problemgen.Question
	correct   int
	incorrect int
	total     int
	remaining int

	subs      []subscriber
	nextSubID int
}

// New creates a Controller in the onboarding phase, loading persisted state
// from deps.Store. Records that fail to load fall back to their defaults.
// Call Welcome to start the onboarding conversation.
func New(ctx context.Context, cfg Config, deps Deps) *Controller {
	c := &Controller{
		cfg:     cfg,
		kv:      deps.Store,
		log:     deps.Logger,
		now:     deps.Now,
		catalog: achievements.Catalog(),
		phase:   PhaseOnboarding,
	}
	if c.kv == nil {
		c.kv = store.NewMemory()
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.now == nil {
		c.now = time.Now
	}
	gcfg := problemgen.DefaultConfig()
	gcfg.OnReject = func(q problemgen.Question, err *problemgen.ValidationError) {
		c.log.Warn("question rejected", "question", q.Text, "validator", err.Validator, "err", err.Message)
	}
	c.gen = problemgen.New(deps.Rand, gcfg)
	if c.cfg.LeaderboardSize <= 0 {
		c.cfg.LeaderboardSize = DefaultConfig().LeaderboardSize
	}

	l := c.load(ctx)
	c.ops = l.ops
	c.practice = l.practice
	c.prefs = l.prefs
	c.ledger = ledger.New(l.records)
	c.book = achievements.NewBook(c.catalog, l.achievements)
	c.scores = scores.New(l.scores, c.now)
	c.remaining = c.prefs.TimerMinutes * 60

	c.bot = chat.NewScheduler(deps.Timers, cfg.Chat, chat.Hooks{
		Typing: func(on bool) {
			c.emit(Event{Kind: EventTyping, Typing: on})
		},
		Deliver: func(text string) {
			c.appendMessage(chat.NewMessage(chat.SenderBot, text, c.now()))
		},
	})
	return c
}

// Welcome plays the onboarding sequence if the transcript is empty.
func (c *Controller) Welcome() {
	if c.messages.Len() == 0 && c.bot.Idle() {
		c.enqueueOnboarding()
	}
}

// Idle reports whether the bot has nothing queued or being typed.
func (c *Controller) Idle() bool {
	return c.bot.Idle()
}

// Close cancels pending bot messages.
func (c *Controller) Close() {
	c.bot.Flush()
}

// SubmitText handles a line typed by the player. Outside a running round it
// starts the quiz; while a question is pending an integer is scored as an
// answer; anything else is echoed as chat.
func (c *Controller) SubmitText(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	switch c.phase {
	case PhaseOnboarding, PhaseConfiguringStart:
		c.appendMessage(chat.NewMessage(chat.SenderUser, text, c.now()))
		c.startRound()
		return
	case PhaseConfiguringOperations:
		c.appendMessage(chat.NewMessage(chat.SenderUser, text, c.now()))
		if c.ops.Any() {
			c.startRound()
		}
		return
	case PhaseRunning:
		if c.question != nil {
			if n, ok := problemgen.ParseAnswer(text); ok {
				c.answer(text, n)
				return
			}
		}
	}
	c.appendMessage(chat.NewMessage(chat.SenderUser, text, c.now()))
}

// BeginConfiguration opens the operations step. It does nothing while a
// round is running.
func (c *Controller) BeginConfiguration() {
	if c.phase == PhaseRunning {
		return
	}
	c.phase = PhaseConfiguringOperations
	c.changed()
}

// ConfirmOperations moves from the operations step to the start step. It is
// refused while no operation is enabled.
func (c *Controller) ConfirmOperations() bool {
	if c.phase != PhaseConfiguringOperations || !c.ops.Any() {
		return false
	}
	c.phase = PhaseConfiguringStart
	c.changed()
	return true
}

// Start begins a round from onboarding or the start step.
func (c *Controller) Start() bool {
	if c.phase != PhaseConfiguringStart && c.phase != PhaseOnboarding {
		return false
	}
	c.startRound()
	return true
}

// PlayAgain starts a fresh round after a summary. History and the
// transcript are kept.
func (c *Controller) PlayAgain() bool {
	if c.phase != PhaseSummary && c.phase != PhaseTimedOut {
		return false
	}
	c.bot.Flush()
	c.appendMessage(chat.NewMessage(chat.SenderUser, MsgPlayAgainReply, c.now()))
	c.practice.ResetCursor()
	c.savePractice()
	c.bot.Enqueue(MsgNewRound)
	c.startRound()
	return true
}

// Finish ends a running round early and shows the summary.
func (c *Controller) Finish() bool {
	if c.phase != PhaseRunning {
		return false
	}
	c.endRound(false)
	return true
}

// Tick advances a timed round by one second.
func (c *Controller) Tick() {
	if c.phase != PhaseRunning || c.prefs.Continuous || c.remaining <= 0 {
		return
	}
	c.remaining--
	if c.remaining == 0 {
		c.phase = PhaseTimedOut
		c.changed()
		c.endRound(true)
		return
	}
	c.changed()
}

func (c *Controller) startRound() {
	c.resetCounters()
	c.phase = PhaseRunning
	c.bot.Enqueue(MsgLetsGo)
	c.askNext()
	c.changed()
}

func (c *Controller) askNext() {
	q := c.gen.Generate(problemgen.Input{
		Operations: c.ops,
		Ordering:   c.prefs.Ordering,
		Practice:   &c.practice,
	})
	c.question = &q
	if c.prefs.Ordering == problemgen.OrderingSequential {
		c.savePractice()
	}
	c.bot.Enqueue(q.Text)
}

func (c *Controller) answer(text string, given int) {
	q := *c.question
	rec := ledger.NewRecord(q, given, c.now())
	c.ledger.Append(rec)
	c.saveLedger()

	msg := chat.NewMessage(chat.SenderUser, text, c.now())
	c.total++
	if rec.Correct() {
		msg.Tapback = chat.TapbackCorrect
		c.correct++
		c.scores.AddCorrect()
	} else {
		msg.Tapback = chat.TapbackIncorrect
		c.incorrect++
		c.bankScore()
	}
	c.appendMessage(msg)
	if !rec.Correct() {
		c.bot.Enqueue(correctAnswerMessage(q.Answer))
	}

	c.evaluateAchievements()

	if c.phase == PhaseRunning {
		c.askNext()
	} else {
		c.question = nil
	}
	c.changed()
}

func (c *Controller) evaluateAchievements() {
	unlocked := achievements.Evaluate(c.catalog, c.ledger, c.book, c.now())
	if len(unlocked) == 0 {
		return
	}
	c.saveAchievements()
	for _, d := range unlocked {
		c.emit(Event{Kind: EventAchievement, Achievement: d})
		c.bot.Enqueue(achievementMessage(d))
	}
}

// endRound banks the score and posts the summary. timedOut selects the
// wording.
func (c *Controller) endRound(timedOut bool) {
	c.question = nil
	c.bankScore()
	c.bot.Enqueue(summaryMessage(timedOut, c.correct, c.total, c.incorrect))
	c.bot.Enqueue(MsgPlayAgain)
	c.phase = PhaseSummary
	c.changed()
}

func (c *Controller) resetCounters() {
	c.correct, c.incorrect, c.total = 0, 0, 0
	c.remaining = c.prefs.TimerMinutes * 60
	c.question = nil
	c.bankScore()
}

// bankScore commits a non-zero running score to the leaderboard.
func (c *Controller) bankScore() {
	if _, ok := c.scores.Commit(); ok {
		c.saveScores()
	}
}

func (c *Controller) enqueueOnboarding() {
	for _, text := range onboarding {
		c.bot.Enqueue(text)
	}
}

func (c *Controller) appendMessage(m chat.Message) {
	c.messages.Append(m)
	c.emit(Event{Kind: EventMessage, Message: m})
}

// State returns a snapshot for rendering.
func (c *Controller) State() State {
	s := State{
		Phase:            c.phase,
		Correct:          c.correct,
		Incorrect:        c.incorrect,
		Total:            c.total,
		Timed:            !c.prefs.Continuous,
		RemainingSeconds: c.remaining,
		Score:            c.scores.Current(),
		PersonalBest:     c.scores.PersonalBest(),
		Messages:         c.messages.Messages(),
		Typing:           c.bot.Typing(),
		Operations:       c.ops,
		Practice:         c.practice,
		Prefs:            c.prefs,
	}
	s.Practice.Numbers = append([]int(nil), c.practice.Numbers...)
	if c.question != nil {
		q := *c.question
		s.Question = &q
	}
	return s
}

// Leaderboard returns up to n scores, highest first. n <= 0 uses the
// configured leaderboard size.
func (c *Controller) Leaderboard(n int) []scores.Score {
	if n <= 0 {
		n = c.cfg.LeaderboardSize
	}
	return c.scores.Top(n)
}

// Encouragement returns a scoreboard cheer.
func (c *Controller) Encouragement() string {
	return scores.Encouragement(c.scores, nil)
}

// AchievementEntry pairs a catalog definition with its unlock state.
type AchievementEntry struct {
	achievements.Definition
	State achievements.State
}

// Achievements returns every catalog entry with its state, in catalog order.
func (c *Controller) Achievements() []AchievementEntry {
	out := make([]AchievementEntry, 0, len(c.catalog))
	for _, d := range c.catalog {
		st, _ := c.book.State(d.ID)
		out = append(out, AchievementEntry{Definition: d, State: st})
	}
	return out
}

// Stats summarizes lifetime progress.
func (c *Controller) Stats() Stats {
	return Stats{
		Answered:      c.ledger.Len(),
		Correct:       c.ledger.TotalCorrect(),
		Accuracy:      c.ledger.Accuracy(),
		CurrentStreak: c.ledger.CurrentStreak(),
		LongestStreak: c.ledger.LongestStreak(),
		PersonalBest:  c.scores.PersonalBest(),
		Unlocked:      c.book.UnlockedCount(),
		Achievements:  len(c.catalog),
	}
}

// History returns every answer record, newest first.
func (c *Controller) History() []ledger.Record {
	recs := c.ledger.Records()
	slices.Reverse(recs)
	return recs
}
