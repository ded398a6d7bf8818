package problemgen

import "slices"

// MaxNumber is the largest selectable practice number and the largest
// multiplier in sequential ordering.
const MaxNumber = 12

// passCycle bounds Practice.Pass. It is a multiple of every possible count
// of enabled operations (1 through 6).
const passCycle = 60

// Practice is the player's number selection, tier and sequential cursor.
type Practice struct {
	// Numbers is the sorted, de-duplicated selection, each within 1..MaxNumber.
	Numbers    []int      `json:"selected_numbers"`
	Difficulty Difficulty `json:"difficulty"`

	// NumberIndex and Multiplier form the sequential cursor. Pass counts
	// completed sweeps over every selected number and multiplier; it shifts
	// which operation each step gets so every pairing comes up in turn.
	NumberIndex int `json:"current_number_index"`
	Multiplier  int `json:"current_multiplier"`
	Pass        int `json:"current_pass"`
}

// DefaultPractice selects every number on the starter tier.
func DefaultPractice() Practice {
	p := Practice{Difficulty: DifficultyStarter}
	p.SelectAll()
	return p
}

// HasNumbers reports whether at least one number is selected.
func (p Practice) HasNumbers() bool {
	return len(p.Numbers) > 0
}

// Selected reports whether n is in the selection.
func (p Practice) Selected(n int) bool {
	return slices.Contains(p.Numbers, n)
}

// Toggle adds or removes n and resets the cursor. Out of range numbers are
// ignored.
func (p *Practice) Toggle(n int) {
	if n < 1 || n > MaxNumber {
		return
	}
	if i := slices.Index(p.Numbers, n); i >= 0 {
		p.Numbers = slices.Delete(p.Numbers, i, i+1)
	} else {
		p.Numbers = append(p.Numbers, n)
		slices.Sort(p.Numbers)
	}
	p.ResetCursor()
}

// SelectAll selects 1..MaxNumber and resets the cursor.
func (p *Practice) SelectAll() {
	p.Numbers = make([]int, 0, MaxNumber)
	for n := 1; n <= MaxNumber; n++ {
		p.Numbers = append(p.Numbers, n)
	}
	p.ResetCursor()
}

// ClearAll empties the selection and resets the cursor.
func (p *Practice) ClearAll() {
	p.Numbers = nil
	p.ResetCursor()
}

// CurrentNumber is the number under the sequential cursor, or 1 when the
// selection is empty.
func (p Practice) CurrentNumber() int {
	if len(p.Numbers) == 0 {
		return 1
	}
	return p.Numbers[p.NumberIndex%len(p.Numbers)]
}

// Step is the zero-based position of the cursor within the full
// number × multiplier cycle.
func (p Practice) Step() int {
	m := p.Multiplier
	if m < 1 {
		m = 1
	}
	return p.NumberIndex*MaxNumber + m - 1
}

// OperationIndex picks among n enabled operations for the current step.
// Within a pass operations rotate question by question; each new pass
// starts one operation later, so after n passes every operation has met
// every number and multiplier exactly once.
func (p Practice) OperationIndex(n int) int {
	if n <= 0 {
		return 0
	}
	return (p.Step() + p.Pass) % n
}

// Advance moves the cursor to the next multiplier, rolling over to the next
// selected number (wrapping to the first) after MaxNumber.
func (p *Practice) Advance() {
	if p.Multiplier < MaxNumber {
		p.Multiplier++
		return
	}
	p.Multiplier = 1
	if len(p.Numbers) > 0 {
		p.NumberIndex = (p.NumberIndex + 1) % len(p.Numbers)
	}
	if p.NumberIndex == 0 {
		p.Pass = (p.Pass + 1) % passCycle
	}
}

// ResetCursor rewinds the sequential cursor to the first number,
// multiplier 1, first pass.
func (p *Practice) ResetCursor() {
	p.NumberIndex = 0
	p.Multiplier = 1
	p.Pass = 0
}

// Normalize repairs a decoded value: drops out of range and duplicate
// numbers, sorts the selection, defaults an unknown tier and clamps the
// cursor.
func (p *Practice) Normalize() {
	kept := p.Numbers[:0]
	for _, n := range p.Numbers {
		if n >= 1 && n <= MaxNumber {
			kept = append(kept, n)
		}
	}
	slices.Sort(kept)
	p.Numbers = slices.Compact(kept)
	if !p.Difficulty.Valid() {
		p.Difficulty = DifficultyStarter
	}
	if p.Multiplier < 1 || p.Multiplier > MaxNumber {
		p.Multiplier = 1
	}
	if p.NumberIndex < 0 || (len(p.Numbers) > 0 && p.NumberIndex >= len(p.Numbers)) {
		p.NumberIndex = 0
	}
	if p.Pass < 0 || p.Pass >= passCycle {
		p.Pass = 0
	}
}
