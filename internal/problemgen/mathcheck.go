package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
)

// MathCheckValidator independently recomputes the answer from the question
// text and compares it with the stored answer and operands.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question) *ValidationError {
	computed, a, b, err := computeAnswer(q.Text)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	if computed != q.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but question claims %d", computed, q.Answer),
		}
	}
	if a != q.A || b != q.B {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("text operands (%d, %d) differ from recorded (%d, %d)", a, b, q.A, q.B),
		}
	}
	return nil
}

// Regex patterns for extracting arithmetic expressions from question text.
var (
	binaryRe = regexp.MustCompile(`^What is (\d+) ([+\-×÷]) (\d+)\?$`)
	squareRe = regexp.MustCompile(`^What is (\d+)²\?$`)
	rootRe   = regexp.MustCompile(`^What is √(\d+)\?$`)
)

// computeAnswer parses question text and returns the answer together with
// the operands in ledger order.
func computeAnswer(text string) (answer, a, b int, err error) {
	if m := binaryRe.FindStringSubmatch(text); m != nil {
		a, _ = strconv.Atoi(m[1])
		b, _ = strconv.Atoi(m[3])
		switch m[2] {
		case "+":
			return a + b, a, b, nil
		case "-":
			return a - b, a, b, nil
		case "×":
			return a * b, a, b, nil
		case "÷":
			if b == 0 {
				return 0, a, b, fmt.Errorf("division by zero")
			}
			if a%b != 0 {
				return 0, a, b, fmt.Errorf("%d ÷ %d leaves a remainder", a, b)
			}
			return a / b, a, b, nil
		}
	}
	if m := squareRe.FindStringSubmatch(text); m != nil {
		base, _ := strconv.Atoi(m[1])
		return base * base, base, base, nil
	}
	if m := rootRe.FindStringSubmatch(text); m != nil {
		radicand, _ := strconv.Atoi(m[1])
		root := isqrt(radicand)
		if root*root != radicand {
			return 0, radicand, root, fmt.Errorf("%d is not a perfect square", radicand)
		}
		return root, radicand, root, nil
	}
	return 0, 0, 0, fmt.Errorf("not computable: %q", text)
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	lo, hi := 1, n
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if mid <= n/mid {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
