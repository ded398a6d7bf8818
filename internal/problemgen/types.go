package problemgen

import "fmt"

// Operation identifies the arithmetic a question asks for.
type Operation string

const (
	OpAddition       Operation = "addition"
	OpSubtraction    Operation = "subtraction"
	OpMultiplication Operation = "multiplication"
	OpDivision       Operation = "division"
	OpSquare         Operation = "square"
	OpSquareRoot     Operation = "square_root"
)

// AllOperations lists every operation in display order. Sequential ordering
// cycles through the enabled subset in this order.
var AllOperations = []Operation{
	OpAddition,
	OpSubtraction,
	OpMultiplication,
	OpDivision,
	OpSquare,
	OpSquareRoot,
}

// Valid reports whether o is a known operation.
func (o Operation) Valid() bool {
	for _, op := range AllOperations {
		if op == o {
			return true
		}
	}
	return false
}

// Label returns a human-readable name, e.g. "Multiplication".
func (o Operation) Label() string {
	switch o {
	case OpAddition:
		return "Addition"
	case OpSubtraction:
		return "Subtraction"
	case OpMultiplication:
		return "Multiplication"
	case OpDivision:
		return "Division"
	case OpSquare:
		return "Square"
	case OpSquareRoot:
		return "Square Root"
	default:
		return string(o)
	}
}

// Symbol returns the operator glyph used in question text.
func (o Operation) Symbol() string {
	switch o {
	case OpAddition:
		return "+"
	case OpSubtraction:
		return "-"
	case OpMultiplication:
		return "×"
	case OpDivision:
		return "÷"
	case OpSquare:
		return "²"
	case OpSquareRoot:
		return "√"
	default:
		return "?"
	}
}

// ParseOperation accepts an operation name ("division") or its short form
// ("div", "sqrt").
func ParseOperation(s string) (Operation, error) {
	switch s {
	case "add", "+":
		return OpAddition, nil
	case "sub", "-":
		return OpSubtraction, nil
	case "mul", "x", "×":
		return OpMultiplication, nil
	case "div", "÷":
		return OpDivision, nil
	case "sq":
		return OpSquare, nil
	case "sqrt", "root":
		return OpSquareRoot, nil
	}
	if op := Operation(s); op.Valid() {
		return op, nil
	}
	return "", fmt.Errorf("unknown operation %q", s)
}

// Question represents a generated math question ready for display.
type Question struct {
	// Text is the prompt shown to the player, e.g. "What is 7 × 8?".
	Text string

	// Answer is the single correct integer answer.
	Answer int

	// A and B are the operands as recorded in the answer ledger.
	// Division stores (dividend, divisor), square stores (base, base) and
	// square root stores (radicand, root).
	A, B int

	Operation Operation
}

// Ordering controls how operations and operands are picked.
type Ordering string

const (
	OrderingRandom     Ordering = "random"
	OrderingSequential Ordering = "sequential"
)

// Valid reports whether o is a known ordering.
func (o Ordering) Valid() bool {
	return o == OrderingRandom || o == OrderingSequential
}

// Label returns the name shown in settings.
func (o Ordering) Label() string {
	if o == OrderingSequential {
		return "Ascending"
	}
	return "Random"
}

// ParseOrdering parses "random", "sequential" or "ascending".
func ParseOrdering(s string) (Ordering, error) {
	switch s {
	case "random":
		return OrderingRandom, nil
	case "sequential", "ascending":
		return OrderingSequential, nil
	}
	return "", fmt.Errorf("unknown ordering %q", s)
}

// Operations holds one enable flag per operation.
type Operations struct {
	Addition       bool `json:"addition"`
	Subtraction    bool `json:"subtraction"`
	Multiplication bool `json:"multiplication"`
	Division       bool `json:"division"`
	Square         bool `json:"square"`
	SquareRoot     bool `json:"square_root"`
}

// DefaultOperations enables the four basic operations.
func DefaultOperations() Operations {
	return Operations{
		Addition:       true,
		Subtraction:    true,
		Multiplication: true,
		Division:       true,
	}
}

// Enabled reports whether op is switched on.
func (o Operations) Enabled(op Operation) bool {
	switch op {
	case OpAddition:
		return o.Addition
	case OpSubtraction:
		return o.Subtraction
	case OpMultiplication:
		return o.Multiplication
	case OpDivision:
		return o.Division
	case OpSquare:
		return o.Square
	case OpSquareRoot:
		return o.SquareRoot
	}
	return false
}

// Set switches op on or off. Unknown operations are ignored.
func (o *Operations) Set(op Operation, on bool) {
	switch op {
	case OpAddition:
		o.Addition = on
	case OpSubtraction:
		o.Subtraction = on
	case OpMultiplication:
		o.Multiplication = on
	case OpDivision:
		o.Division = on
	case OpSquare:
		o.Square = on
	case OpSquareRoot:
		o.SquareRoot = on
	}
}

// List returns the enabled operations in AllOperations order.
func (o Operations) List() []Operation {
	var out []Operation
	for _, op := range AllOperations {
		if o.Enabled(op) {
			out = append(out, op)
		}
	}
	return out
}

// Any reports whether at least one operation is enabled.
func (o Operations) Any() bool {
	return len(o.List()) > 0
}
