package problemgen

// StructuralValidator checks that the question has text, a known operation
// and operands that match the operation's shape.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}
	if q.Text == "" {
		return fail("text is empty")
	}
	if !q.Operation.Valid() {
		return fail("unknown operation " + string(q.Operation))
	}
	if q.A < 0 || q.B < 0 || q.Answer < 0 {
		return fail("operands and answer must be non-negative")
	}
	switch q.Operation {
	case OpSubtraction:
		if q.A < q.B {
			return fail("subtraction must take the smaller operand from the larger")
		}
	case OpDivision:
		if q.B == 0 {
			return fail("division by zero")
		}
		if q.A%q.B != 0 {
			return fail("division leaves a remainder")
		}
	case OpSquare:
		if q.A != q.B || q.A > MaxSquareOperand {
			return fail("square base out of shape")
		}
	case OpSquareRoot:
		if q.B > MaxSquareOperand || q.B*q.B != q.A {
			return fail("radicand is not the square of the root")
		}
	}
	return nil
}
