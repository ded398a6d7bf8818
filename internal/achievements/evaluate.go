package achievements

import "time"

// Evaluate unlocks every locked definition in catalog whose rule p now
// satisfies, stamping it with now. It returns the newly unlocked
// definitions in catalog order. Unlocked entries are never re-locked, so
// a second call with the same progress returns nothing.
func Evaluate(catalog []Definition, p Progress, book *Book, now time.Time) []Definition {
	var unlocked []Definition
	for _, d := range catalog {
		if book.Unlocked(d.ID) || !Satisfied(d, p) {
			continue
		}
		if book.unlock(d.ID, now) {
			unlocked = append(unlocked, d)
		}
	}
	return unlocked
}

// Satisfied reports whether p meets the rule of d.
func Satisfied(d Definition, p Progress) bool {
	switch d.Category {
	case CategoryStreak:
		return p.LongestStreak() >= d.Requirement
	case CategoryTotalCorrect:
		return p.TotalCorrect() >= d.Requirement
	case CategoryNumberMastery:
		if d.Target.IsRange() {
			return p.HasCompletedRange(d.Target.Low, d.Target.High, d.Target.Operation)
		}
		return p.HasCompletedNumber(d.Target.Number, d.Target.Operation)
	case CategoryLargeNumbers:
		return p.CorrectOver(d.Target.Number) >= d.Requirement
	}
	return false
}
