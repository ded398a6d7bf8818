package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	convo "github.com/abhisek/mltply/internal/chat"
	sess "github.com/abhisek/mltply/internal/session"
	"github.com/abhisek/mltply/internal/ui/components"
	"github.com/abhisek/mltply/internal/ui/theme"
)

func (s *ChatScreen) View(width, height int) string {
	st := s.ctrl.State()

	var footer strings.Builder
	if hint := phaseHint(st.Phase); hint != "" {
		footer.WriteString(theme.Hint.Render("  "+hint) + "\n")
	}
	if st.Typing {
		footer.WriteString(theme.Typing.Render("  Buddy is typing…"))
	}
	footer.WriteString("\n")
	s.input.SetWidth(max(width-8, 10))
	footer.WriteString("  " + s.input.View())

	var top string
	if s.toast != "" {
		top = lipgloss.PlaceHorizontal(width, lipgloss.Center,
			components.TrophyCard("Achievement unlocked: "+s.toast, components.ContentWidth(width)))
	}

	avail := max(height-lipgloss.Height(footer.String())-lipgloss.Height(top)-1, 1)
	body := renderTranscript(st.Messages, width, avail)

	parts := []string{}
	if top != "" {
		parts = append(parts, top)
	}
	parts = append(parts, body, footer.String())
	return strings.Join(parts, "\n")
}

// renderTranscript renders the newest messages that fit in height lines,
// bottom aligned.
func renderTranscript(msgs []convo.Message, width, height int) string {
	bubbleWidth := max(width*2/3, 20)

	var lines []string
	for i := len(msgs) - 1; i >= 0 && len(lines) < height; i-- {
		block := renderBubble(msgs[i], width, bubbleWidth)
		blockLines := append(strings.Split(block, "\n"), "")
		lines = append(blockLines, lines...)
	}
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for len(lines) < height {
		lines = append([]string{""}, lines...)
	}
	return strings.Join(lines, "\n")
}

func renderBubble(m convo.Message, width, bubbleWidth int) string {
	w := min(lipgloss.Width(m.Text), bubbleWidth-2) + 2
	if m.Sender == convo.SenderBot {
		return "  " + theme.BotMessage.Width(w).Render(m.Text)
	}

	bubble := theme.UserMessage.Width(w).Render(m.Text)
	switch m.Tapback {
	case convo.TapbackCorrect:
		bubble += " " + theme.Correct.Render("✓")
	case convo.TapbackIncorrect:
		bubble += " " + theme.Incorrect.Render("✗")
	default:
		bubble += "  "
	}
	return lipgloss.PlaceHorizontal(width-2, lipgloss.Right, bubble)
}

// phaseHint nudges the player through the configuration steps.
func phaseHint(p sess.Phase) string {
	switch p {
	case sess.PhaseConfiguringOperations:
		return "Pick at least one operation in settings, then confirm."
	case sess.PhaseConfiguringStart:
		return "All set. Send any message or press Start in settings."
	default:
		return ""
	}
}
