package achievements

import (
	"fmt"
	"strings"

	"github.com/abhisek/mltply/internal/problemgen"
)

var streakMilestones = []struct {
	count int
	title string
}{
	{5, "On Fire"},
	{10, "Hot Streak"},
	{20, "Unstoppable"},
	{50, "Legendary"},
	{100, "Math Master"},
}

var totalMilestones = []struct {
	count int
	title string
}{
	{10, "Getting Started"},
	{25, "Quick Learner"},
	{50, "Dedicated"},
	{100, "Committed"},
	{250, "Expert"},
	{500, "Genius"},
	{1000, "Legend"},
}

var rangeMastery = []struct {
	id, title, description string
	op                     problemgen.Operation
	low, high              int
}{
	{"square_starter", "Square Starter", "Master all squares from 1² to 12²", problemgen.OpSquare, 1, 12},
	{"square_explorer", "Square Explorer", "Master squares from 13² to 99²", problemgen.OpSquare, 13, 99},
	{"sqrt_starter", "Root Starter", "Master all square roots √1 to √144", problemgen.OpSquareRoot, 1, 12},
	{"sqrt_explorer", "Root Explorer", "Master square roots √169 to √9801", problemgen.OpSquareRoot, 13, 99},
}

var largeMilestones = []struct {
	threshold, count int
	title            string
}{
	{12, 10, "Explorer Initiate"},
	{12, 25, "Explorer Adept"},
	{12, 50, "Explorer Expert"},
	{100, 10, "Champion Initiate"},
	{100, 25, "Champion Adept"},
	{100, 50, "Champion Expert"},
	{1000, 10, "GOAT Initiate"},
	{1000, 25, "GOAT Adept"},
	{1000, 50, "GOAT Legend"},
}

var masteryOperations = []problemgen.Operation{
	problemgen.OpAddition,
	problemgen.OpSubtraction,
	problemgen.OpMultiplication,
	problemgen.OpDivision,
}

// Catalog returns every achievement definition in display order.
func Catalog() []Definition {
	var defs []Definition

	for _, m := range streakMilestones {
		defs = append(defs, Definition{
			ID:          fmt.Sprintf("streak_%d", m.count),
			Category:    CategoryStreak,
			Title:       m.title,
			Description: fmt.Sprintf("Get %d correct answers in a row", m.count),
			Requirement: m.count,
		})
	}

	for _, m := range totalMilestones {
		defs = append(defs, Definition{
			ID:          fmt.Sprintf("total_%d", m.count),
			Category:    CategoryTotalCorrect,
			Title:       m.title,
			Description: fmt.Sprintf("Answer %d questions correctly", m.count),
			Requirement: m.count,
		})
	}

	for n := 1; n <= problemgen.MaxNumber; n++ {
		for _, op := range masteryOperations {
			defs = append(defs, Definition{
				ID:          fmt.Sprintf("number_%d_%s", n, op),
				Category:    CategoryNumberMastery,
				Title:       fmt.Sprintf("%d %s Master", n, op.Label()),
				Description: fmt.Sprintf("Complete all %d %s problems", n, strings.ToLower(op.Label())),
				Requirement: problemgen.MaxNumber,
				Target:      Target{Number: n, Operation: op},
			})
		}
	}

	for _, r := range rangeMastery {
		defs = append(defs, Definition{
			ID:          r.id,
			Category:    CategoryNumberMastery,
			Title:       r.title,
			Description: r.description,
			Requirement: r.high - r.low + 1,
			Target:      Target{Low: r.low, High: r.high, Operation: r.op},
		})
	}

	for _, m := range largeMilestones {
		defs = append(defs, Definition{
			ID:          fmt.Sprintf("large_%d_%d", m.threshold, m.count),
			Category:    CategoryLargeNumbers,
			Title:       m.title,
			Description: fmt.Sprintf("Answer %d questions with numbers over %d", m.count, m.threshold),
			Requirement: m.count,
			Target:      Target{Number: m.threshold},
		})
	}

	return defs
}
