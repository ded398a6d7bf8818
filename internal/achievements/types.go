// Package achievements defines the achievement catalog and the rules that
// unlock entries from answer history.
package achievements

import (
	"time"

	"github.com/abhisek/mltply/internal/problemgen"
)

// Category identifies the rule family of an achievement.
type Category string

const (
	CategoryStreak        Category = "streak"
	CategoryTotalCorrect  Category = "total_correct"
	CategoryNumberMastery Category = "number_mastery"
	CategoryLargeNumbers  Category = "large_numbers"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{CategoryStreak, CategoryTotalCorrect, CategoryNumberMastery, CategoryLargeNumbers}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryStreak:
		return "Streaks"
	case CategoryTotalCorrect:
		return "Total Correct"
	case CategoryNumberMastery:
		return "Number Mastery"
	case CategoryLargeNumbers:
		return "Big Numbers"
	default:
		return string(c)
	}
}

// Icon returns the display icon for the category.
func (c Category) Icon() string {
	switch c {
	case CategoryStreak:
		return "🔥"
	case CategoryTotalCorrect:
		return "⭐"
	case CategoryNumberMastery:
		return "🎯"
	case CategoryLargeNumbers:
		return "👑"
	default:
		return "✦"
	}
}

// Target narrows a rule to a number, a range or a threshold.
type Target struct {
	// Number is the mastered number for per-number mastery and the
	// operand threshold for large-number milestones.
	Number int

	// Low and High bound a square or square root mastery range.
	Low, High int

	Operation problemgen.Operation
}

// IsRange reports whether the target is a square or square root range.
func (t Target) IsRange() bool {
	return t.High > 0
}

// Definition is an immutable catalog entry. IDs are stable across releases
// since persisted unlock state is keyed by them.
type Definition struct {
	ID          string
	Category    Category
	Title       string
	Description string
	Requirement int
	Target      Target
}

// State is the mutable unlock state of one achievement.
type State struct {
	ID         string     `json:"id"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// Progress is the answer history view the rules read from.
type Progress interface {
	LongestStreak() int
	TotalCorrect() int
	HasCompletedNumber(n int, op problemgen.Operation) bool
	HasCompletedRange(low, high int, op problemgen.Operation) bool
	CorrectOver(threshold int) int
}
