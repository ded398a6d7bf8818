package problemgen

import (
	"fmt"
	"math/rand/v2"
)

// Rand is the randomness source used by the Generator.
type Rand interface {
	// IntN returns a uniform integer in [0, n). n is always > 0.
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Input bundles everything a question depends on.
type Input struct {
	Operations Operations
	Ordering   Ordering

	// Practice supplies the number selection and tier. In sequential
	// ordering its cursor is advanced in place. Nil means DefaultPractice.
	Practice *Practice
}

// Generator turns settings into questions. It never fails: configuration
// gaps produce the fallback question.
type Generator struct {
	rand Rand
	cfg  Config
}

// New creates a Generator. A nil r uses the process-wide random source.
func New(r Rand, cfg Config) *Generator {
	if r == nil {
		r = globalRand{}
	}
	if cfg.Fallback.Text == "" {
		cfg.Fallback = Fallback()
	}
	return &Generator{rand: r, cfg: cfg}
}

// Fallback returns the question used when settings leave nothing to ask.
func Fallback() Question {
	return Question{
		Text:      "What is 6 × 7?",
		Answer:    42,
		A:         6,
		B:         7,
		Operation: OpMultiplication,
	}
}

// Generate produces the next question for in.
func (g *Generator) Generate(in Input) Question {
	practice := in.Practice
	if practice == nil {
		p := DefaultPractice()
		practice = &p
	}

	ops := in.Operations.List()
	if len(ops) == 0 {
		ops = []Operation{OpMultiplication}
	}

	var q Question
	if in.Ordering == OrderingSequential {
		if !practice.HasNumbers() {
			return g.cfg.Fallback
		}
		op := ops[practice.OperationIndex(len(ops))]
		q = g.build(op, practice.CurrentNumber(), max(practice.Multiplier, 1), practice.Difficulty)
		practice.Advance()
	} else {
		var a, b int
		if practice.Difficulty.Granular() {
			if !practice.HasNumbers() {
				return g.cfg.Fallback
			}
			a = practice.Numbers[g.rand.IntN(len(practice.Numbers))]
			b = g.between(1, MaxNumber)
		} else {
			lo, hi := practice.Difficulty.Range()
			a = g.between(lo, hi)
			b = g.between(lo, hi)
		}
		q = g.build(ops[g.rand.IntN(len(ops))], a, b, practice.Difficulty)
	}

	for _, v := range g.cfg.Validators {
		if err := v.Validate(&q); err != nil {
			if g.cfg.OnReject != nil {
				g.cfg.OnReject(q, err)
			}
			return g.cfg.Fallback
		}
	}
	return q
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rand.IntN(hi-lo+1)
}

func (g *Generator) build(op Operation, a, b int, d Difficulty) Question {
	switch op {
	case OpAddition:
		return Question{
			Text:      fmt.Sprintf("What is %d + %d?", a, b),
			Answer:    a + b,
			A:         a,
			B:         b,
			Operation: op,
		}

	case OpSubtraction:
		hi, lo := max(a, b), min(a, b)
		return Question{
			Text:      fmt.Sprintf("What is %d - %d?", hi, lo),
			Answer:    hi - lo,
			A:         hi,
			B:         lo,
			Operation: op,
		}

	case OpDivision:
		// Built backwards so the answer is always whole.
		divisor, quotient := b, a
		if !d.Granular() {
			_, hi := d.Range()
			top := min(MaxDivisionOperand, hi)
			divisor = g.between(1, top)
			quotient = g.between(1, top)
		}
		dividend := divisor * quotient
		return Question{
			Text:      fmt.Sprintf("What is %d ÷ %d?", dividend, divisor),
			Answer:    quotient,
			A:         dividend,
			B:         divisor,
			Operation: op,
		}

	case OpSquare:
		base := min(a, MaxSquareOperand)
		return Question{
			Text:      fmt.Sprintf("What is %d²?", base),
			Answer:    base * base,
			A:         base,
			B:         base,
			Operation: op,
		}

	case OpSquareRoot:
		root := min(a, MaxSquareOperand)
		radicand := root * root
		return Question{
			Text:      fmt.Sprintf("What is √%d?", radicand),
			Answer:    root,
			A:         radicand,
			B:         root,
			Operation: op,
		}

	default:
		return Question{
			Text:      fmt.Sprintf("What is %d × %d?", a, b),
			Answer:    a * b,
			A:         a,
			B:         b,
			Operation: OpMultiplication,
		}
	}
}
