package problemgen

import "fmt"

// Difficulty is the operand range tier.
type Difficulty string

const (
	DifficultyStarter  Difficulty = "starter"
	DifficultyExplorer Difficulty = "explorer"
	DifficultyChampion Difficulty = "champion"
	DifficultyGoat     Difficulty = "goat"
)

// Difficulties lists every tier from easiest to hardest.
var Difficulties = []Difficulty{
	DifficultyStarter,
	DifficultyExplorer,
	DifficultyChampion,
	DifficultyGoat,
}

// Operand caps. Squares and roots stay at or below 99² = 9801; division
// divisors and quotients stay at or below 99 outside the starter tier.
const (
	MaxSquareOperand   = 99
	MaxDivisionOperand = 99
)

// Range returns the inclusive operand range for the tier. Unknown tiers use
// the starter range.
func (d Difficulty) Range() (lo, hi int) {
	switch d {
	case DifficultyExplorer:
		return 1, 100
	case DifficultyChampion:
		return 1, 1000
	case DifficultyGoat:
		return 1, 9999
	default:
		return 1, MaxNumber
	}
}

// Granular reports whether the player picks the first operand manually.
// Only the starter tier allows it.
func (d Difficulty) Granular() bool {
	return d == DifficultyStarter || !d.Valid()
}

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	for _, x := range Difficulties {
		if x == d {
			return true
		}
	}
	return false
}

// Label returns the display name of the tier.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyStarter:
		return "Starter"
	case DifficultyExplorer:
		return "Explorer"
	case DifficultyChampion:
		return "Champion"
	case DifficultyGoat:
		return "GOAT"
	default:
		return string(d)
	}
}

// Blurb describes the tier's range in a few words.
func (d Difficulty) Blurb() string {
	if d.Granular() {
		return "Pick your numbers 1-12"
	}
	lo, hi := d.Range()
	return fmt.Sprintf("Numbers %d-%d", lo, hi)
}

// ParseDifficulty parses a tier name.
func ParseDifficulty(s string) (Difficulty, error) {
	if d := Difficulty(s); d.Valid() {
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}
