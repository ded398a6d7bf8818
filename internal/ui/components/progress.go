package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mltply/internal/ui/theme"
)

// ProgressBar shows how many of a fixed set of items are done, e.g.
// unlocked achievements in a category.
type ProgressBar struct {
	Done  int
	Total int
	Width int
}

// NewProgressBar creates a bar for done out of total.
func NewProgressBar(done, total, width int) ProgressBar {
	return ProgressBar{Done: done, Total: total, Width: width}
}

// Fraction returns Done/Total clamped to [0, 1]. An empty set is 0.
func (p ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Done)/float64(p.Total), 0), 1)
}

// View renders the bar followed by a "done/total" counter.
func (p ProgressBar) View() string {
	counter := fmt.Sprintf("  %d/%d", p.Done, p.Total)
	barWidth := max(p.Width-lipgloss.Width(counter), 4)
	filled := int(float64(barWidth) * p.Fraction())

	fill := theme.Secondary
	if p.Total > 0 && p.Done >= p.Total {
		fill = theme.ArcadeYellow
	}

	return lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)
}
