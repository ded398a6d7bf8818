package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mltply/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for card sections so
// they visually align.
func ContentWidth(frameWidth int) int {
	return max(min(frameWidth-6, 60), 20)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}

// TrophyCard highlights content with the trophy color.
func TrophyCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeYellow).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(content)
}
