package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mltply/internal/router"
	"github.com/abhisek/mltply/internal/screen"
	"github.com/abhisek/mltply/internal/screens/chat"
	"github.com/abhisek/mltply/internal/session"
	"github.com/abhisek/mltply/internal/store"
	"github.com/abhisek/mltply/internal/ui/layout"
)

// Options configures the interactive app.
type Options struct {
	Store  store.KV
	Logger *slog.Logger
	Config session.Config
}

// tickMsg drives the one second round clock.
type tickMsg time.Time

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl   *session.Controller
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model with the chat screen at the bottom of
// the stack.
func newAppModel(ctrl *session.Controller) AppModel {
	return AppModel{
		ctrl:   ctrl,
		router: router.New(chat.New(ctrl)),
	}
}

func (m AppModel) Init() tea.Cmd {
	m.ctrl.Welcome()
	return tea.Batch(m.router.Active().Init(), tickCmd())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case timerFiredMsg:
		msg.timer.run()
		return m, nil

	case tickMsg:
		m.ctrl.Tick()
		return m, tea.Batch(m.router.Update(screen.TickMsg{}), tickCmd())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, status(m.ctrl.State()), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	if m.router.Depth() > 1 {
		footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func status(s session.State) layout.Status {
	st := layout.Status{Score: s.Score, PersonalBest: s.PersonalBest}
	if s.Timed && s.Phase == session.PhaseRunning {
		st.Clock = session.FormatClock(s.RemainingSeconds)
	}
	return st
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(ctx context.Context, opts Options) error {
	timers := &teaTimers{}
	ctrl := session.New(ctx, opts.Config, session.Deps{
		Timers: timers,
		Store:  opts.Store,
		Logger: opts.Logger,
	})
	defer ctrl.Close()

	p := tea.NewProgram(newAppModel(ctrl), tea.WithContext(ctx))
	timers.bind(p.Send)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
