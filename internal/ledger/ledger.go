// Package ledger keeps the append-only history of answered questions and
// derives streaks, totals and mastery from it.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mltply/internal/problemgen"
)

// Record is one answered question.
type Record struct {
	ID           string               `json:"id"`
	QuestionText string               `json:"question"`
	A            int                  `json:"first_number"`
	B            int                  `json:"second_number"`
	Operation    problemgen.Operation `json:"operation"`
	Expected     int                  `json:"correct_answer"`
	Given        int                  `json:"user_answer"`
	Timestamp    time.Time            `json:"timestamp"`
}

// NewRecord builds a record for an answer to q given at now.
func NewRecord(q problemgen.Question, given int, now time.Time) Record {
	return Record{
		ID:           uuid.New().String(),
		QuestionText: q.Text,
		A:            q.A,
		B:            q.B,
		Operation:    q.Operation,
		Expected:     q.Answer,
		Given:        given,
		Timestamp:    now,
	}
}

// Correct reports whether the given answer matched the expected one.
func (r Record) Correct() bool {
	return r.Expected == r.Given
}

// Ledger is the ordered answer history. Records are only ever appended;
// Clear is the one way to remove them. The zero value is ready to use.
type Ledger struct {
	records []Record
}

// New creates a ledger seeded with previously persisted records.
func New(records []Record) *Ledger {
	return &Ledger{records: append([]Record(nil), records...)}
}

// Append adds r to the end of the history.
func (l *Ledger) Append(r Record) {
	l.records = append(l.records, r)
}

// Clear drops every record.
func (l *Ledger) Clear() {
	l.records = nil
}

// Records returns a copy of the history, oldest first.
func (l *Ledger) Records() []Record {
	return append([]Record(nil), l.records...)
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}
