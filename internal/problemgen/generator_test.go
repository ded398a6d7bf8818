package problemgen

import (
	"math/rand/v2"
	"strings"
	"testing"
)

// scriptedRand returns values from a fixed script, modulo n.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func seeded(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestGenerate_SequentialCursor(t *testing.T) {
	gen := New(nil, DefaultConfig())
	practice := Practice{Numbers: []int{3, 5}, Difficulty: DifficultyStarter, Multiplier: 1}
	in := Input{
		Operations: Operations{Multiplication: true},
		Ordering:   OrderingSequential,
		Practice:   &practice,
	}

	for m := 1; m <= 12; m++ {
		q := gen.Generate(in)
		if q.A != 3 || q.B != m || q.Answer != 3*m {
			t.Fatalf("step %d: got %+v, want 3 × %d", m, q, m)
		}
	}
	q := gen.Generate(in)
	if q.Text != "What is 5 × 1?" {
		t.Errorf("after rollover got %q, want %q", q.Text, "What is 5 × 1?")
	}
	for i := 0; i < 11; i++ {
		gen.Generate(in)
	}
	q = gen.Generate(in)
	if q.Text != "What is 3 × 1?" {
		t.Errorf("after wrap got %q, want %q", q.Text, "What is 3 × 1?")
	}
}

func TestGenerate_SequentialCyclesOperations(t *testing.T) {
	gen := New(nil, DefaultConfig())
	practice := DefaultPractice()
	in := Input{
		Operations: Operations{Addition: true, Multiplication: true},
		Ordering:   OrderingSequential,
		Practice:   &practice,
	}
	want := []Operation{OpAddition, OpMultiplication, OpAddition, OpMultiplication}
	for i, op := range want {
		if q := gen.Generate(in); q.Operation != op {
			t.Errorf("question %d: operation %s, want %s", i, q.Operation, op)
		}
	}
}

func TestGenerate_SequentialCoversEveryPairing(t *testing.T) {
	type pairing struct {
		op        Operation
		number, m int
	}
	tests := []struct {
		name    string
		ops     Operations
		numbers []int
	}{
		{"default four", DefaultOperations(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{"two ops", Operations{Addition: true, Multiplication: true}, []int{6}},
		{"three ops", Operations{Subtraction: true, Division: true, Square: true}, []int{2, 9}},
		{"all six", Operations{Addition: true, Subtraction: true, Multiplication: true, Division: true, Square: true, SquareRoot: true}, []int{4, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := New(nil, DefaultConfig())
			practice := Practice{Numbers: tt.numbers, Difficulty: DifficultyStarter, Multiplier: 1}
			in := Input{Operations: tt.ops, Ordering: OrderingSequential, Practice: &practice}
			ops := tt.ops.List()

			seen := make(map[pairing]int)
			rounds := len(ops) * MaxNumber * len(tt.numbers)
			for i := 0; i < rounds; i++ {
				n, m := practice.CurrentNumber(), practice.Multiplier
				q := gen.Generate(in)
				seen[pairing{q.Operation, n, m}]++
			}
			for _, op := range ops {
				for _, n := range tt.numbers {
					for m := 1; m <= MaxNumber; m++ {
						if got := seen[pairing{op, n, m}]; got != 1 {
							t.Errorf("%s with %d and multiplier %d asked %d times, want 1", op, n, m, got)
						}
					}
				}
			}
		})
	}
}

func TestGenerate_SequentialSixTimesOne(t *testing.T) {
	gen := New(nil, DefaultConfig())
	practice := DefaultPractice()
	in := Input{Operations: DefaultOperations(), Ordering: OrderingSequential, Practice: &practice}
	want := map[string]bool{"What is 6 × 1?": false, "What is 6 + 3?": false}
	for i := 0; i < 4*MaxNumber*MaxNumber; i++ {
		q := gen.Generate(in)
		if _, ok := want[q.Text]; ok {
			want[q.Text] = true
		}
	}
	for text, ok := range want {
		if !ok {
			t.Errorf("%q never asked", text)
		}
	}
}

func TestGenerate_FallbackOnEmptySelection(t *testing.T) {
	gen := New(nil, DefaultConfig())
	for _, ordering := range []Ordering{OrderingSequential, OrderingRandom} {
		practice := Practice{Difficulty: DifficultyStarter}
		q := gen.Generate(Input{
			Operations: DefaultOperations(),
			Ordering:   ordering,
			Practice:   &practice,
		})
		if q.Text != "What is 6 × 7?" || q.Answer != 42 {
			t.Errorf("%s: got %+v, want fallback", ordering, q)
		}
	}
}

func TestGenerate_NoOperationsFallsBackToMultiplication(t *testing.T) {
	gen := New(seeded(1), DefaultConfig())
	practice := DefaultPractice()
	for i := 0; i < 50; i++ {
		q := gen.Generate(Input{Ordering: OrderingRandom, Practice: &practice})
		if q.Operation != OpMultiplication {
			t.Fatalf("got operation %s, want multiplication", q.Operation)
		}
	}
}

func TestGenerate_StarterUsesSelectedNumbers(t *testing.T) {
	gen := New(seeded(7), DefaultConfig())
	practice := Practice{Numbers: []int{4, 9}, Difficulty: DifficultyStarter, Multiplier: 1}
	for i := 0; i < 200; i++ {
		q := gen.Generate(Input{
			Operations: Operations{Multiplication: true},
			Ordering:   OrderingRandom,
			Practice:   &practice,
		})
		if q.A != 4 && q.A != 9 {
			t.Fatalf("first operand %d not in selection", q.A)
		}
		if q.B < 1 || q.B > 12 {
			t.Fatalf("second operand %d outside 1..12", q.B)
		}
	}
}

func TestGenerate_TierRanges(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		hi         int
	}{
		{DifficultyExplorer, 100},
		{DifficultyChampion, 1000},
		{DifficultyGoat, 9999},
	}
	for _, tc := range tests {
		gen := New(seeded(42), DefaultConfig())
		practice := Practice{Difficulty: tc.difficulty, Multiplier: 1}
		for i := 0; i < 300; i++ {
			q := gen.Generate(Input{
				Operations: Operations{Addition: true, Multiplication: true},
				Ordering:   OrderingRandom,
				Practice:   &practice,
			})
			if q.A < 1 || q.A > tc.hi || q.B < 1 || q.B > tc.hi {
				t.Fatalf("%s: operands (%d, %d) outside 1..%d", tc.difficulty, q.A, q.B, tc.hi)
			}
		}
	}
}

func TestGenerate_EveryQuestionVerifies(t *testing.T) {
	all := Operations{true, true, true, true, true, true}
	for _, d := range Difficulties {
		for _, ordering := range []Ordering{OrderingRandom, OrderingSequential} {
			gen := New(seeded(99), DefaultConfig())
			practice := DefaultPractice()
			practice.Difficulty = d
			for i := 0; i < 500; i++ {
				q := gen.Generate(Input{Operations: all, Ordering: ordering, Practice: &practice})
				if err := Verify(q); err != nil {
					t.Fatalf("%s/%s: %q failed verification: %v", d, ordering, q.Text, err)
				}
			}
		}
	}
}

func TestGenerate_DivisionIsExact(t *testing.T) {
	gen := New(seeded(3), DefaultConfig())
	for _, d := range Difficulties {
		practice := DefaultPractice()
		practice.Difficulty = d
		for i := 0; i < 200; i++ {
			q := gen.Generate(Input{
				Operations: Operations{Division: true},
				Ordering:   OrderingRandom,
				Practice:   &practice,
			})
			if q.A%q.B != 0 || q.A/q.B != q.Answer {
				t.Fatalf("%s: %q has answer %d", d, q.Text, q.Answer)
			}
			if !d.Granular() && (q.B > MaxDivisionOperand || q.Answer > MaxDivisionOperand) {
				t.Fatalf("%s: %q exceeds division cap", d, q.Text)
			}
		}
	}
}

func TestGenerate_SquareAndRootCapped(t *testing.T) {
	gen := New(seeded(5), DefaultConfig())
	practice := DefaultPractice()
	practice.Difficulty = DifficultyGoat
	for i := 0; i < 300; i++ {
		q := gen.Generate(Input{
			Operations: Operations{Square: true, SquareRoot: true},
			Ordering:   OrderingRandom,
			Practice:   &practice,
		})
		switch q.Operation {
		case OpSquare:
			if q.A > 99 || q.Answer > 9801 {
				t.Fatalf("square %q exceeds cap", q.Text)
			}
		case OpSquareRoot:
			if q.Answer > 99 || q.A != q.Answer*q.Answer {
				t.Fatalf("root %q malformed", q.Text)
			}
		default:
			t.Fatalf("unexpected operation %s", q.Operation)
		}
	}
}

func TestBuild_Texts(t *testing.T) {
	gen := New(&scriptedRand{}, DefaultConfig())
	tests := []struct {
		op     Operation
		a, b   int
		text   string
		answer int
		ledger [2]int
	}{
		{OpAddition, 3, 4, "What is 3 + 4?", 7, [2]int{3, 4}},
		{OpSubtraction, 3, 9, "What is 9 - 3?", 6, [2]int{9, 3}},
		{OpMultiplication, 6, 7, "What is 6 × 7?", 42, [2]int{6, 7}},
		{OpDivision, 8, 3, "What is 24 ÷ 3?", 8, [2]int{24, 3}},
		{OpSquare, 12, 5, "What is 12²?", 144, [2]int{12, 12}},
		{OpSquareRoot, 11, 2, "What is √121?", 11, [2]int{121, 11}},
	}
	for _, tc := range tests {
		q := gen.build(tc.op, tc.a, tc.b, DifficultyStarter)
		if q.Text != tc.text || q.Answer != tc.answer || q.A != tc.ledger[0] || q.B != tc.ledger[1] {
			t.Errorf("build(%s, %d, %d) = %+v", tc.op, tc.a, tc.b, q)
		}
		if !strings.HasPrefix(q.Text, "What is ") {
			t.Errorf("unexpected prefix in %q", q.Text)
		}
	}
}

func TestGenerate_RandomPicksWithRand(t *testing.T) {
	// IntN calls: number index, second operand, operation index.
	r := &scriptedRand{vals: []int{1, 4, 2}}
	gen := New(r, DefaultConfig())
	practice := Practice{Numbers: []int{2, 7}, Difficulty: DifficultyStarter, Multiplier: 1}
	q := gen.Generate(Input{
		Operations: Operations{Addition: true, Subtraction: true, Multiplication: true},
		Ordering:   OrderingRandom,
		Practice:   &practice,
	})
	if q.Text != "What is 7 × 5?" {
		t.Errorf("got %q, want %q", q.Text, "What is 7 × 5?")
	}
}

type rejectAll struct{}

func (rejectAll) Name() string { return "reject-all" }
func (rejectAll) Validate(*Question) *ValidationError {
	return &ValidationError{Validator: "reject-all", Message: "no"}
}

func TestGenerate_RejectedQuestionUsesConfiguredFallback(t *testing.T) {
	custom := Question{Text: "What is 2 + 2?", Answer: 4, A: 2, B: 2, Operation: OpAddition}
	var rejected []string
	gen := New(nil, Config{
		Validators: []Validator{rejectAll{}},
		Fallback:   custom,
		OnReject: func(q Question, err *ValidationError) {
			rejected = append(rejected, err.Validator)
		},
	})
	q := gen.Generate(Input{Operations: DefaultOperations(), Ordering: OrderingRandom})
	if q != custom {
		t.Errorf("got %+v, want configured fallback", q)
	}
	if len(rejected) != 1 || rejected[0] != "reject-all" {
		t.Errorf("OnReject calls = %v, want [reject-all]", rejected)
	}
}

func TestGenerate_NoNumbersSkipsValidation(t *testing.T) {
	calls := 0
	gen := New(nil, Config{OnReject: func(Question, *ValidationError) { calls++ }})
	q := gen.Generate(Input{
		Operations: DefaultOperations(),
		Ordering:   OrderingSequential,
		Practice:   &Practice{Difficulty: DifficultyStarter},
	})
	if q != Fallback() {
		t.Errorf("got %+v, want Fallback()", q)
	}
	if calls != 0 {
		t.Errorf("OnReject called %d times", calls)
	}
}
