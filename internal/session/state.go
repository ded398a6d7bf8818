package session

import (
	"github.com/abhisek/mltply/internal/chat"
	"github.com/abhisek/mltply/internal/problemgen"
)

// Phase is the lifecycle phase of the controller.
type Phase string

const (
	PhaseOnboarding            Phase = "onboarding"
	PhaseConfiguringOperations Phase = "configuring_operations"
	PhaseConfiguringStart      Phase = "configuring_start"
	PhaseRunning               Phase = "running"
	PhaseTimedOut              Phase = "timed_out"
	PhaseSummary               Phase = "summary"
)

// Prefs are the general preferences persisted together.
type Prefs struct {
	Ordering     problemgen.Ordering `json:"ordering"`
	TimerMinutes int                 `json:"timer_minutes"`
	Continuous   bool                `json:"continuous"`
	Sound        bool                `json:"sound"`
}

// DefaultPrefs returns random ordering, a two minute timer, continuous play
// and sound off.
func DefaultPrefs() Prefs {
	return Prefs{
		Ordering:     problemgen.OrderingRandom,
		TimerMinutes: DefaultTimerMinutes,
		Continuous:   true,
	}
}

// State is a read-only snapshot for rendering.
type State struct {
	Phase Phase

	// Question is the active question, nil when none is pending.
	Question *problemgen.Question

	Correct   int
	Incorrect int
	Total     int

	// Timed is true when the round counts down. RemainingSeconds is only
	// meaningful then.
	Timed            bool
	RemainingSeconds int

	Score        int
	PersonalBest int

	Messages []chat.Message
	Typing   bool

	Operations problemgen.Operations
	Practice   problemgen.Practice
	Prefs      Prefs
}

// CanConfirmOperations reports whether the operations confirmation is
// enabled.
func (s State) CanConfirmOperations() bool {
	return s.Phase == PhaseConfiguringOperations && s.Operations.Any()
}

// Stats summarizes lifetime progress.
type Stats struct {
	Answered      int
	Correct       int
	Accuracy      float64
	CurrentStreak int
	LongestStreak int
	PersonalBest  int
	Unlocked      int
	Achievements  int
}
