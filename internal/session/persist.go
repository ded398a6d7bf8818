package session

import (
	"context"

	"github.com/abhisek/mltply/internal/achievements"
	"github.com/abhisek/mltply/internal/ledger"
	"github.com/abhisek/mltply/internal/problemgen"
	"github.com/abhisek/mltply/internal/scores"
	"github.com/abhisek/mltply/internal/store"
)

// Persistence keys. Each holds one whole entity.
const (
	KeyOperations   = "operationSettings"
	KeyPractice     = "practiceSettings"
	KeyPrefs        = "generalPrefs"
	KeyAchievements = "achievementState"
	KeyLedger       = "answerLedger"
	KeyScores       = "sessionScores"
)

// AllKeys lists every persistence key.
var AllKeys = []string{KeyOperations, KeyPractice, KeyPrefs, KeyAchievements, KeyLedger, KeyScores}

func operationEnum() []any {
	out := make([]any, 0, len(problemgen.AllOperations))
	for _, op := range problemgen.AllOperations {
		out = append(out, string(op))
	}
	return out
}

func boolProp() map[string]any { return map[string]any{"type": "boolean"} }

func intProp(min int) map[string]any { return map[string]any{"type": "integer", "minimum": min} }

var (
	operationsSchema = &store.Schema{
		Name: "operation_settings",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"addition":       boolProp(),
				"subtraction":    boolProp(),
				"multiplication": boolProp(),
				"division":       boolProp(),
				"square":         boolProp(),
				"square_root":    boolProp(),
			},
		},
	}

	practiceSchema = &store.Schema{
		Name: "practice_settings",
		Definition: map[string]any{
			"type":     "object",
			"required": []string{"selected_numbers"},
			"properties": map[string]any{
				"selected_numbers": map[string]any{
					"type":  []string{"array", "null"},
					"items": map[string]any{"type": "integer", "minimum": 1, "maximum": problemgen.MaxNumber},
				},
				"difficulty":           map[string]any{"type": "string"},
				"current_number_index": intProp(0),
				"current_multiplier":   intProp(0),
				"current_pass":         intProp(0),
			},
		},
	}

	prefsSchema = &store.Schema{
		Name: "general_prefs",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"ordering":      map[string]any{"type": "string", "enum": []string{"random", "sequential"}},
				"timer_minutes": intProp(1),
				"continuous":    boolProp(),
				"sound":         boolProp(),
			},
		},
	}

	achievementsSchema = &store.Schema{
		Name: "achievement_state",
		Definition: map[string]any{
			"type": []string{"array", "null"},
			"items": map[string]any{
				"type":     "object",
				"required": []string{"id", "unlocked"},
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"unlocked":    boolProp(),
					"unlocked_at": map[string]any{"type": []string{"string", "null"}},
				},
			},
		},
	}

	ledgerSchema = &store.Schema{
		Name: "answer_ledger",
		Definition: map[string]any{
			"type": []string{"array", "null"},
			"items": map[string]any{
				"type":     "object",
				"required": []string{"first_number", "second_number", "operation", "correct_answer", "user_answer"},
				"properties": map[string]any{
					"id":             map[string]any{"type": "string"},
					"question":       map[string]any{"type": "string"},
					"first_number":   map[string]any{"type": "integer"},
					"second_number":  map[string]any{"type": "integer"},
					"operation":      map[string]any{"type": "string", "enum": operationEnum()},
					"correct_answer": map[string]any{"type": "integer"},
					"user_answer":    map[string]any{"type": "integer"},
					"timestamp":      map[string]any{"type": "string"},
				},
			},
		},
	}

	scoresSchema = &store.Schema{
		Name: "session_scores",
		Definition: map[string]any{
			"type": []string{"array", "null"},
			"items": map[string]any{
				"type":     "object",
				"required": []string{"score"},
				"properties": map[string]any{
					"id":    map[string]any{"type": "string"},
					"score": intProp(1),
					"date":  map[string]any{"type": "string"},
				},
			},
		},
	}
)

// loaded holds everything read at startup. Any record that is missing or
// fails to decode keeps its default.
type loaded struct {
	ops          problemgen.Operations
	practice     problemgen.Practice
	prefs        Prefs
	achievements []achievements.State
	records      []ledger.Record
	scores       []scores.Score
}

func (c *Controller) load(ctx context.Context) loaded {
	l := loaded{
		ops:      problemgen.DefaultOperations(),
		practice: problemgen.DefaultPractice(),
		prefs:    DefaultPrefs(),
	}

	var ops problemgen.Operations
	if c.read(ctx, KeyOperations, operationsSchema, &ops) {
		l.ops = ops
	}
	var practice problemgen.Practice
	if c.read(ctx, KeyPractice, practiceSchema, &practice) {
		practice.Normalize()
		l.practice = practice
	}
	prefs := DefaultPrefs()
	if c.read(ctx, KeyPrefs, prefsSchema, &prefs) {
		prefs.TimerMinutes = c.clampMinutes(prefs.TimerMinutes)
		l.prefs = prefs
	}
	var states []achievements.State
	if c.read(ctx, KeyAchievements, achievementsSchema, &states) {
		l.achievements = states
	}
	var records []ledger.Record
	if c.read(ctx, KeyLedger, ledgerSchema, &records) {
		l.records = records
	}
	var sc []scores.Score
	if c.read(ctx, KeyScores, scoresSchema, &sc) {
		l.scores = sc
	}
	return l
}

// read loads one record. Missing keys are silent; anything else is logged
// and the default is kept.
func (c *Controller) read(ctx context.Context, key string, schema *store.Schema, v any) bool {
	err := store.Load(ctx, c.kv, key, schema, v)
	switch {
	case err == nil:
		return true
	case store.IsNotFound(err):
		return false
	default:
		c.log.Warn("discarding stored record", "key", key, "err", err)
		return false
	}
}

// write replaces one record. Failures are logged and never interrupt play.
func (c *Controller) write(key string, v any) {
	if err := store.Save(context.Background(), c.kv, key, v); err != nil {
		c.log.Warn("persist record", "key", key, "err", err)
	}
}

func (c *Controller) saveOperations()   { c.write(KeyOperations, c.ops) }
func (c *Controller) savePractice()     { c.write(KeyPractice, c.practice) }
func (c *Controller) savePrefs()        { c.write(KeyPrefs, c.prefs) }
func (c *Controller) saveAchievements() { c.write(KeyAchievements, c.book.States()) }
func (c *Controller) saveLedger()       { c.write(KeyLedger, c.ledger.Records()) }
func (c *Controller) saveScores()       { c.write(KeyScores, c.scores.All()) }
