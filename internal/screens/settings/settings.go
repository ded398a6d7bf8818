package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mltply/internal/problemgen"
	"github.com/abhisek/mltply/internal/router"
	"github.com/abhisek/mltply/internal/screen"
	sess "github.com/abhisek/mltply/internal/session"
	"github.com/abhisek/mltply/internal/ui/components"
	"github.com/abhisek/mltply/internal/ui/layout"
	"github.com/abhisek/mltply/internal/ui/theme"
)

// Row IDs that react to left/right as well as enter.
const (
	rowDifficulty = "difficulty"
	rowTimer      = "timer"
	rowOrdering   = "ordering"
)

// SettingsScreen edits operations, practice numbers and preferences, and
// walks the player through confirming operations and starting a round.
type SettingsScreen struct {
	ctrl    *sess.Controller
	menu    components.Menu
	ids     []string
	confirm string
	notice  string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen.
func New(ctrl *sess.Controller) *SettingsScreen {
	s := &SettingsScreen{ctrl: ctrl}
	s.rebuild()
	return s
}

func (s *SettingsScreen) Init() tea.Cmd {
	switch s.ctrl.State().Phase {
	case sess.PhaseOnboarding, sess.PhaseSummary, sess.PhaseTimedOut:
		s.ctrl.BeginConfiguration()
	}
	s.rebuild()
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Toggle"},
		{Key: "←→", Description: "Adjust"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	key := kmsg.String()
	if key != "enter" && key != "space" && key != " " {
		s.confirm = ""
	}
	s.notice = ""

	switch key {
	case "left", "h":
		s.adjust(-1)
		return s, nil
	case "right", "l":
		s.adjust(1)
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(kmsg)
	s.rebuild()
	return s, cmd
}

func (s *SettingsScreen) selectedID() string {
	if s.menu.Selected < 0 || s.menu.Selected >= len(s.ids) {
		return ""
	}
	return s.ids[s.menu.Selected]
}

func (s *SettingsScreen) adjust(delta int) {
	st := s.ctrl.State()
	switch s.selectedID() {
	case rowTimer:
		s.ctrl.SetTimerDuration(st.Prefs.TimerMinutes + delta)
	case rowDifficulty:
		s.ctrl.SetDifficulty(cycleDifficulty(st.Practice.Difficulty, delta))
	case rowOrdering:
		s.ctrl.SetOrdering(toggleOrdering(st.Prefs.Ordering))
	}
	s.rebuild()
}

func cycleDifficulty(d problemgen.Difficulty, delta int) problemgen.Difficulty {
	all := problemgen.Difficulties
	for i, x := range all {
		if x == d {
			return all[(i+delta+len(all))%len(all)]
		}
	}
	return problemgen.DifficultyStarter
}

func toggleOrdering(o problemgen.Ordering) problemgen.Ordering {
	if o == problemgen.OrderingSequential {
		return problemgen.OrderingRandom
	}
	return problemgen.OrderingSequential
}

func onOff(b bool) string {
	if b {
		return "[x]"
	}
	return "[ ]"
}

// guarded asks for a second enter before running a destructive action.
func (s *SettingsScreen) guarded(id, done string, fn func()) func() tea.Cmd {
	return func() tea.Cmd {
		if s.confirm != id {
			s.confirm = id
			return nil
		}
		s.confirm = ""
		fn()
		s.notice = done
		return nil
	}
}

// rebuild regenerates the rows from the controller state.
func (s *SettingsScreen) rebuild() {
	st := s.ctrl.State()
	var items []components.MenuItem
	var ids []string
	add := func(id string, item components.MenuItem) {
		items = append(items, item)
		ids = append(ids, id)
	}
	heading := func(label string) {
		add("", components.MenuItem{Label: label, Heading: true})
	}

	heading("Operations")
	for _, op := range problemgen.AllOperations {
		add("op:"+string(op), components.MenuItem{
			Label: fmt.Sprintf("%s %s %s", onOff(st.Operations.Enabled(op)), op.Symbol(), op.Label()),
			Action: func() tea.Cmd {
				ops := s.ctrl.State().Operations
				ops.Set(op, !ops.Enabled(op))
				s.ctrl.SetOperations(ops)
				return nil
			},
		})
	}
	switch st.Phase {
	case sess.PhaseConfiguringOperations:
		add("confirm", components.MenuItem{
			Label:    components.ButtonLabel("Confirm operations", st.CanConfirmOperations()),
			Disabled: !st.CanConfirmOperations(),
			Action: func() tea.Cmd {
				s.ctrl.ConfirmOperations()
				return nil
			},
		})
	case sess.PhaseConfiguringStart:
		add("start", components.MenuItem{
			Label: components.ButtonLabel("Start", true),
			Action: func() tea.Cmd {
				s.ctrl.Start()
				return func() tea.Msg { return router.PopScreenMsg{} }
			},
		})
	}

	heading("Numbers")
	add(rowDifficulty, components.MenuItem{
		Label: "Difficulty",
		Value: fmt.Sprintf("‹ %s ›  %s", st.Practice.Difficulty.Label(), st.Practice.Difficulty.Blurb()),
		Action: func() tea.Cmd {
			s.adjust(1)
			return nil
		},
	})
	granular := st.Practice.Difficulty.Granular()
	for n := 1; n <= problemgen.MaxNumber; n++ {
		add(fmt.Sprintf("num:%d", n), components.MenuItem{
			Label:    fmt.Sprintf("%s %d", onOff(st.Practice.Selected(n)), n),
			Disabled: !granular,
			Action: func() tea.Cmd {
				s.ctrl.ToggleNumber(n)
				return nil
			},
		})
	}
	add("all", components.MenuItem{Label: "Select all numbers", Disabled: !granular, Action: func() tea.Cmd {
		s.ctrl.SelectAllNumbers()
		return nil
	}})
	add("none", components.MenuItem{Label: "Clear numbers", Disabled: !granular, Action: func() tea.Cmd {
		s.ctrl.ClearNumbers()
		return nil
	}})

	heading("Game")
	add(rowOrdering, components.MenuItem{
		Label: "Question order",
		Value: "‹ " + st.Prefs.Ordering.Label() + " ›",
		Action: func() tea.Cmd {
			s.adjust(1)
			return nil
		},
	})
	add("continuous", components.MenuItem{
		Label: onOff(st.Prefs.Continuous) + " Continuous mode (no timer)",
		Action: func() tea.Cmd {
			s.ctrl.SetContinuousMode(!s.ctrl.State().Prefs.Continuous)
			return nil
		},
	})
	add(rowTimer, components.MenuItem{
		Label:    "Timer",
		Value:    fmt.Sprintf("‹ %d min ›", st.Prefs.TimerMinutes),
		Disabled: st.Prefs.Continuous,
	})
	add("sound", components.MenuItem{
		Label: onOff(st.Prefs.Sound) + " Sound",
		Action: func() tea.Cmd {
			s.ctrl.SetSoundEnabled(!s.ctrl.State().Prefs.Sound)
			return nil
		},
	})

	heading("Data")
	danger := []struct {
		id, label, done string
		fn              func()
	}{
		{"clear-messages", "Clear message history", "Messages cleared", s.ctrl.RequestClearMessages},
		{"clear-history", "Clear answer history", "Answer history cleared", s.ctrl.RequestClearHistory},
		{"clear-scores", "Clear scoreboard", "Scoreboard cleared", s.ctrl.RequestClearScores},
		{"clear-achievements", "Reset achievements", "Achievements reset", s.ctrl.RequestClearAchievements},
	}
	for _, d := range danger {
		label := d.label
		if s.confirm == d.id {
			label += "  (press enter again to confirm)"
		}
		add(d.id, components.MenuItem{Label: label, Action: s.guarded(d.id, d.done, d.fn)})
	}

	s.ids = ids
	s.menu.SetItems(items)
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	body := s.menu.View(s.window(height - 4))
	cw := components.ContentWidth(width)
	block := lipgloss.NewStyle().Width(cw).Render(body)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Success).
			Render(s.notice))
	}
	return b.String()
}

// window returns the offset and length of the visible slice of rows so the
// cursor stays on screen.
func (s *SettingsScreen) window(visible int) (int, int) {
	visible = max(visible, 5)
	n := len(s.menu.Items)
	if n <= visible {
		return 0, n
	}
	offset := max(s.menu.Selected-visible/2, 0)
	offset = min(offset, n-visible)
	return offset, visible
}
