package problemgen

// Config controls how the Generator checks its own output.
type Config struct {
	// Validators run in order on every question. The first rejection
	// replaces the question with the fallback.
	Validators []Validator

	// Fallback is asked when settings leave nothing to ask or a question is
	// rejected. A zero Fallback uses the package Fallback question.
	Fallback Question

	// OnReject, if set, is called with every rejected question.
	OnReject func(q Question, err *ValidationError)
}

// DefaultConfig runs the structural check, then the independent math check.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&MathCheckValidator{},
		},
	}
}
