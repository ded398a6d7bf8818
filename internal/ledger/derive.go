package ledger

import "github.com/abhisek/mltply/internal/problemgen"

// CurrentStreak counts consecutive correct answers ending at the most
// recent record.
func (l *Ledger) CurrentStreak() int {
	streak := 0
	for i := len(l.records) - 1; i >= 0; i-- {
		if !l.records[i].Correct() {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak is the longest run of consecutive correct answers ever.
func (l *Ledger) LongestStreak() int {
	longest, run := 0, 0
	for _, r := range l.records {
		if r.Correct() {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return longest
}

// TotalCorrect counts correct records.
func (l *Ledger) TotalCorrect() int {
	n := 0
	for _, r := range l.records {
		if r.Correct() {
			n++
		}
	}
	return n
}

// HasCompletedNumber reports whether, across correct answers for op in which
// n is one of the operands, the other operand has covered every value in
// 1..12.
func (l *Ledger) HasCompletedNumber(n int, op problemgen.Operation) bool {
	seen := make(map[int]bool)
	for _, r := range l.records {
		if !r.Correct() || r.Operation != op {
			continue
		}
		switch {
		case r.A == n:
			seen[r.B] = true
		case r.B == n:
			seen[r.A] = true
		}
	}
	for m := 1; m <= problemgen.MaxNumber; m++ {
		if !seen[m] {
			return false
		}
	}
	return true
}

// HasCompletedRange reports whether every value in low..high has been
// answered correctly for a square or square root question. The base is
// the relevant operand for squares and the root for square roots. Other
// operations never complete a range.
func (l *Ledger) HasCompletedRange(low, high int, op problemgen.Operation) bool {
	if low > high {
		return false
	}
	seen := make(map[int]bool)
	for _, r := range l.records {
		if !r.Correct() || r.Operation != op {
			continue
		}
		switch op {
		case problemgen.OpSquare:
			seen[r.A] = true
		case problemgen.OpSquareRoot:
			seen[r.B] = true
		default:
			return false
		}
	}
	for v := low; v <= high; v++ {
		if !seen[v] {
			return false
		}
	}
	return true
}

// CorrectOver counts correct records in which either operand exceeds
// threshold.
func (l *Ledger) CorrectOver(threshold int) int {
	n := 0
	for _, r := range l.records {
		if r.Correct() && (r.A > threshold || r.B > threshold) {
			n++
		}
	}
	return n
}

// Accuracy returns the fraction of correct records, or 0 for an empty ledger.
func (l *Ledger) Accuracy() float64 {
	if len(l.records) == 0 {
		return 0
	}
	return float64(l.TotalCorrect()) / float64(len(l.records))
}
