package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mltply/internal/ledger"
	"github.com/abhisek/mltply/internal/screen"
	sess "github.com/abhisek/mltply/internal/session"
	"github.com/abhisek/mltply/internal/ui/layout"
	"github.com/abhisek/mltply/internal/ui/theme"
)

// HistoryScreen lists answered questions, newest first.
type HistoryScreen struct {
	ctrl     *sess.Controller
	records  []ledger.Record
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(ctrl *sess.Controller) *HistoryScreen {
	return &HistoryScreen{
		ctrl:     ctrl,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	s.records = s.ctrl.History()
	return nil
}

func (s *HistoryScreen) Title() string {
	return "Answer History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No answers yet. Start a round!")
	}

	st := s.ctrl.Stats()
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\n%d answered   %.0f%% correct   longest streak %d\n",
			st.Answered, st.Accuracy*100, st.LongestStreak)))
	b.WriteString(layout.Divider(width))
	b.WriteString("\n")

	maxVisible := max(height-6, 3)
	start := max(s.selected-maxVisible+1, 0)
	end := min(start+maxVisible, len(s.records))

	for i := start; i < end; i++ {
		r := s.records[i]
		mark := theme.Correct.Render("✓")
		if !r.Correct() {
			mark = theme.Incorrect.Render("✗")
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %-22s %s", prefix, r.Timestamp.Local().Format("Jan 02 15:04"), r.QuestionText, mark)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %s   answered %d   expected %d", r.Operation.Label(), r.Given, r.Expected)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
