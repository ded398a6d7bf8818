package achievements

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mltply/internal/achievements"
	"github.com/abhisek/mltply/internal/screen"
	sess "github.com/abhisek/mltply/internal/session"
	"github.com/abhisek/mltply/internal/ui/components"
	"github.com/abhisek/mltply/internal/ui/layout"
	"github.com/abhisek/mltply/internal/ui/theme"
)

// AchievementsScreen lists every achievement grouped by category.
type AchievementsScreen struct {
	ctrl         *sess.Controller
	selectedCat  int // index into AllCategories
	scrollOffset int
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates a new AchievementsScreen.
func New(ctrl *sess.Controller) *AchievementsScreen {
	return &AchievementsScreen{ctrl: ctrl}
}

func (s *AchievementsScreen) Init() tea.Cmd {
	return nil
}

func (s *AchievementsScreen) Title() string {
	return "Achievements"
}

func (s *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch category"},
		{Key: "↑↓", Description: "Scroll"},
	}
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	cats := achievements.AllCategories()
	switch kmsg.String() {
	case "tab", "right":
		s.selectedCat = (s.selectedCat + 1) % len(cats)
		s.scrollOffset = 0
	case "shift+tab", "left":
		s.selectedCat = (s.selectedCat - 1 + len(cats)) % len(cats)
		s.scrollOffset = 0
	case "up", "k":
		if s.scrollOffset > 0 {
			s.scrollOffset--
		}
	case "down", "j":
		if s.scrollOffset < len(s.filtered())-1 {
			s.scrollOffset++
		}
	}
	return s, nil
}

func (s *AchievementsScreen) filtered() []sess.AchievementEntry {
	cat := achievements.AllCategories()[s.selectedCat]
	var out []sess.AchievementEntry
	for _, e := range s.ctrl.Achievements() {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

func (s *AchievementsScreen) View(width, height int) string {
	all := s.ctrl.Achievements()
	unlocked := 0
	for _, e := range all {
		if e.State.Unlocked {
			unlocked++
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nUnlocked: %d / %d\n", unlocked, len(all))))
	b.WriteString("\n")

	var tabs []string
	for i, c := range achievements.AllCategories() {
		label := fmt.Sprintf("%s %s", c.Icon(), c.DisplayName())
		if i == s.selectedCat {
			tabs = append(tabs, theme.Selected.Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "   ")))
	b.WriteString("\n\n")
	b.WriteString(layout.Divider(width))
	b.WriteString("\n\n")

	entries := s.filtered()
	done := 0
	for _, e := range entries {
		if e.State.Unlocked {
			done++
		}
	}
	cw := components.ContentWidth(width)
	bar := components.NewProgressBar(done, len(entries), cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	maxVisible := max(height-12, 3)
	start := min(s.scrollOffset, max(len(entries)-1, 0))
	end := min(start+maxVisible, len(entries))

	var rows []string
	for _, e := range entries[start:end] {
		rows = append(rows, renderEntry(e))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n")))

	if end < len(entries) {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(entries)-end)))
	}

	return b.String()
}

func renderEntry(e sess.AchievementEntry) string {
	if !e.State.Unlocked {
		line := fmt.Sprintf("🔒 %-22s %s", e.Title, e.Description)
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
	}
	date := ""
	if e.State.UnlockedAt != nil {
		date = e.State.UnlockedAt.Local().Format("Jan 02, 2006")
	}
	line := fmt.Sprintf("✔ %-22s %-10s %s", e.Title, e.Rarity().DisplayName(), date)
	return lipgloss.NewStyle().Foreground(rarityColor(e.Rarity())).Render(line)
}

func rarityColor(r achievements.Rarity) color.Color {
	switch r {
	case achievements.RarityRare:
		return theme.Secondary
	case achievements.RarityEpic:
		return theme.Primary
	case achievements.RarityLegendary:
		return theme.ArcadeYellow
	default:
		return theme.Text
	}
}
