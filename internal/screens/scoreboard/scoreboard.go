package scoreboard

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mltply/internal/router"
	"github.com/abhisek/mltply/internal/screen"
	sess "github.com/abhisek/mltply/internal/session"
	"github.com/abhisek/mltply/internal/ui/components"
	"github.com/abhisek/mltply/internal/ui/layout"
	"github.com/abhisek/mltply/internal/ui/theme"
)

// ScoreboardScreen shows the leaderboard and lifetime stats.
type ScoreboardScreen struct {
	ctrl  *sess.Controller
	cheer string
}

var _ screen.Screen = (*ScoreboardScreen)(nil)
var _ screen.KeyHintProvider = (*ScoreboardScreen)(nil)

// New creates a ScoreboardScreen.
func New(ctrl *sess.Controller) *ScoreboardScreen {
	return &ScoreboardScreen{ctrl: ctrl}
}

func (s *ScoreboardScreen) Init() tea.Cmd {
	s.cheer = s.ctrl.Encouragement()
	return nil
}

func (s *ScoreboardScreen) Title() string {
	return "Scoreboard"
}

func (s *ScoreboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to chat"},
	}
}

func (s *ScoreboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ScoreboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	stats := s.ctrl.Stats()

	var b strings.Builder
	b.WriteString("\n")

	best := fmt.Sprintf("🏆 Personal best: %d", stats.PersonalBest)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.TrophyCard(best, cw)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render(s.cheer))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Top scores")))
	b.WriteString("\n")
	b.WriteString(layout.Divider(width))
	b.WriteString("\n")

	board := s.ctrl.Leaderboard(0)
	if len(board) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No scores yet"))
		b.WriteString("\n")
	}
	var rows []string
	for i, sc := range board {
		line := fmt.Sprintf("%2d.  %5d   %s", i+1, sc.Value, sc.CompletedAt.Local().Format("Jan 02, 2006 15:04"))
		rows = append(rows, lipgloss.NewStyle().Foreground(rankColor(i)).Render(line))
	}
	if len(rows) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	accuracy := fmt.Sprintf("%.0f%%", stats.Accuracy*100)
	lines := []string{
		fmt.Sprintf("Answered: %d    Correct: %d    Accuracy: %s", stats.Answered, stats.Correct, accuracy),
		fmt.Sprintf("Current streak: %d    Longest streak: %d", stats.CurrentStreak, stats.LongestStreak),
		fmt.Sprintf("Achievements: %d / %d", stats.Unlocked, stats.Achievements),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.Card(lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(lines, "\n")), cw)))

	return b.String()
}

func rankColor(i int) color.Color {
	switch i {
	case 0:
		return theme.ArcadeYellow
	case 1:
		return theme.Text
	case 2:
		return theme.Accent
	default:
		return theme.TextDim
	}
}
