package components

import (
	"github.com/abhisek/mltply/internal/ui/theme"
)

// ButtonLabel renders a button caption. Inactive buttons are dimmed and
// cannot be pressed.
func ButtonLabel(label string, active bool) string {
	if active {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render(label)
}
