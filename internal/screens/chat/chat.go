package chat

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mltply/internal/router"
	"github.com/abhisek/mltply/internal/screen"
	"github.com/abhisek/mltply/internal/screens/achievements"
	"github.com/abhisek/mltply/internal/screens/history"
	"github.com/abhisek/mltply/internal/screens/scoreboard"
	"github.com/abhisek/mltply/internal/screens/settings"
	sess "github.com/abhisek/mltply/internal/session"
	"github.com/abhisek/mltply/internal/ui/components"
	"github.com/abhisek/mltply/internal/ui/layout"
)

// toastSeconds is how long an unlock banner stays up.
const toastSeconds = 4

// ChatScreen is the conversation with the bot and the main play surface.
type ChatScreen struct {
	ctrl      *sess.Controller
	input     components.TextInput
	toast     string
	toastLeft int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.Resumer = (*ChatScreen)(nil)

// New creates the chat screen and subscribes it to unlock events.
func New(ctrl *sess.Controller) *ChatScreen {
	s := &ChatScreen{
		ctrl:  ctrl,
		input: components.NewTextInput("Type a message or your answer...", 32),
	}
	ctrl.Subscribe(func(e sess.Event) {
		if e.Kind == sess.EventAchievement {
			s.toast = e.Achievement.Category.Icon() + " " + e.Achievement.Title
			s.toastLeft = toastSeconds
		}
	})
	return s
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

// Resume refocuses the composer when an overlay screen closes.
func (s *ChatScreen) Resume() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return "Chat with Buddy"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Send"}}
	switch s.ctrl.State().Phase {
	case sess.PhaseRunning:
		hints = append(hints, layout.KeyHint{Key: "Ctrl+X", Description: "End round"})
	case sess.PhaseSummary, sess.PhaseTimedOut:
		hints = append(hints, layout.KeyHint{Key: "Ctrl+P", Description: "Play again"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Ctrl+S", Description: "Settings"},
		layout.KeyHint{Key: "Ctrl+O", Description: "Scores"},
		layout.KeyHint{Key: "Ctrl+G", Description: "Trophies"},
		layout.KeyHint{Key: "Ctrl+T", Description: "History"},
	)
	return hints
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.TickMsg:
		if s.toastLeft > 0 {
			s.toastLeft--
			if s.toastLeft == 0 {
				s.toast = ""
			}
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return s.submit()
	case "ctrl+s":
		return s, push(settings.New(s.ctrl))
	case "ctrl+o":
		return s, push(scoreboard.New(s.ctrl))
	case "ctrl+g":
		return s, push(achievements.New(s.ctrl))
	case "ctrl+t":
		return s, push(history.New(s.ctrl))
	case "ctrl+x":
		s.ctrl.Finish()
		return s, nil
	case "ctrl+p":
		s.ctrl.PlayAgain()
		return s, nil
	case "ctrl+r":
		s.ctrl.RequestReset()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit sends the composed line. An empty line after a round offers the
// replay.
func (s *ChatScreen) submit() (screen.Screen, tea.Cmd) {
	text := s.input.Take()
	phase := s.ctrl.State().Phase
	if text == "" && (phase == sess.PhaseSummary || phase == sess.PhaseTimedOut) {
		s.ctrl.PlayAgain()
		return s, nil
	}
	s.ctrl.SubmitText(text)
	return s, nil
}

func push(sc screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: sc} }
}
