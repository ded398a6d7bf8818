// Package scores tracks the running session score and the leaderboard of
// committed sessions.
package scores

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Score is one committed session result.
type Score struct {
	ID          string    `json:"id"`
	Value       int       `json:"score"`
	CompletedAt time.Time `json:"date"`
}

// Track holds the in-progress counter and every committed score, highest
// first.
type Track struct {
	current int
	all     []Score
	now     func() time.Time
}

// New creates a Track seeded with persisted scores. A nil now uses
// time.Now.
func New(persisted []Score, now func() time.Time) *Track {
	if now == nil {
		now = time.Now
	}
	t := &Track{all: append([]Score(nil), persisted...), now: now}
	t.sort()
	return t
}

// AddCorrect bumps the in-progress counter.
func (t *Track) AddCorrect() {
	t.current++
}

// Current returns the in-progress counter.
func (t *Track) Current() int {
	return t.current
}

// Commit records the in-progress counter as a Score and resets it. A zero
// counter is not recorded and ok is false.
func (t *Track) Commit() (s Score, ok bool) {
	if t.current <= 0 {
		t.current = 0
		return Score{}, false
	}
	s = Score{ID: uuid.New().String(), Value: t.current, CompletedAt: t.now()}
	t.current = 0
	t.all = append(t.all, s)
	t.sort()
	return s, true
}

// Clear drops every committed score and the in-progress counter.
func (t *Track) Clear() {
	t.current = 0
	t.all = nil
}

// Top returns up to n scores, highest first.
func (t *Track) Top(n int) []Score {
	if n < 0 {
		n = 0
	}
	return slices.Clone(t.all[:min(n, len(t.all))])
}

// All returns every committed score, highest first.
func (t *Track) All() []Score {
	return slices.Clone(t.all)
}

// PersonalBest returns the highest committed value, or 0.
func (t *Track) PersonalBest() int {
	if len(t.all) == 0 {
		return 0
	}
	return t.all[0].Value
}

// Rank returns the 1-based leaderboard position of the score with id, or 0.
func (t *Track) Rank(id string) int {
	for i, s := range t.all {
		if s.ID == id {
			return i + 1
		}
	}
	return 0
}

// Ties keep the earlier score first.
func (t *Track) sort() {
	slices.SortStableFunc(t.all, func(a, b Score) int {
		if a.Value != b.Value {
			return b.Value - a.Value
		}
		return a.CompletedAt.Compare(b.CompletedAt)
	})
}
