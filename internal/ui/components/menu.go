package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mltply/internal/ui/theme"
)

// MenuItem is one row of a Menu. Heading rows are never selectable.
type MenuItem struct {
	Label    string
	Value    string
	Action   func() tea.Cmd
	Disabled bool
	Heading  bool
}

func (i MenuItem) selectable() bool {
	return !i.Disabled && !i.Heading
}

// Menu is a vertical list with a cursor.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on the first selectable item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if item.selectable() {
			m.Selected = i
			break
		}
	}
	return m
}

// SetItems replaces the rows and keeps the cursor in place when it is
// still on a selectable row.
func (m *Menu) SetItems(items []MenuItem) {
	m.Items = items
	if m.Selected < len(items) && items[m.Selected].selectable() {
		return
	}
	if i := m.nearest(m.Selected); i >= 0 {
		m.Selected = i
	}
}

func (m Menu) nearest(from int) int {
	for i := min(from, len(m.Items)-1); i >= 0; i-- {
		if m.Items[i].selectable() {
			return i
		}
	}
	for i := max(from, 0); i < len(m.Items); i++ {
		if m.Items[i].selectable() {
			return i
		}
	}
	return -1
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if m.Items[i].selectable() {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if m.Items[i].selectable() {
				m.Selected = i
				break
			}
		}
	case "enter", "space", " ":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && item.selectable() {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the rows between offset and offset+limit. limit <= 0 shows
// everything.
func (m Menu) View(offset, limit int) string {
	end := len(m.Items)
	if limit > 0 {
		end = min(offset+limit, end)
	}
	var s string
	for i := max(offset, 0); i < end; i++ {
		item := m.Items[i]
		line := item.Label
		if item.Value != "" {
			line += "  " + lipgloss.NewStyle().Foreground(theme.Secondary).Render(item.Value)
		}
		switch {
		case item.Heading:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(item.Label) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render("  ▸ "+line) + "\n"
		case item.Disabled:
			s += theme.Disabled.Render("    "+item.Label) + "\n"
		default:
			s += theme.Unselected.Render("    "+line) + "\n"
		}
	}
	return s
}
