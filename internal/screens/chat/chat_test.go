package chat

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mltply/internal/clock"
	"github.com/abhisek/mltply/internal/problemgen"
	"github.com/abhisek/mltply/internal/router"
	"github.com/abhisek/mltply/internal/screen"
	"github.com/abhisek/mltply/internal/screens/settings"
	sess "github.com/abhisek/mltply/internal/session"
	"github.com/abhisek/mltply/internal/store"
)

func newTestScreen(t *testing.T) (*ChatScreen, *sess.Controller, *clock.Manual) {
	t.Helper()
	kv := store.NewMemory()
	ctx := context.Background()
	if err := store.Save(ctx, kv, sess.KeyOperations, problemgen.Operations{Multiplication: true}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, kv, sess.KeyPractice, problemgen.Practice{Numbers: []int{2}, Difficulty: problemgen.DifficultyStarter, Multiplier: 1}); err != nil {
		t.Fatal(err)
	}
	prefs := sess.DefaultPrefs()
	prefs.Ordering = problemgen.OrderingSequential
	if err := store.Save(ctx, kv, sess.KeyPrefs, prefs); err != nil {
		t.Fatal(err)
	}

	m := clock.NewManual(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ctrl := sess.New(ctx, sess.DefaultConfig(), sess.Deps{Timers: m, Store: kv, Now: m.Now})
	return New(ctrl), ctrl, m
}

func drain(m *clock.Manual) {
	for i := 0; i < 600 && m.Pending() > 0; i++ {
		m.Advance(time.Second)
	}
}

func typeText(s *ChatScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func keyPress(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func TestChatScreen_Title(t *testing.T) {
	s, _, _ := newTestScreen(t)
	if s.Title() != "Chat with Buddy" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestChatScreen_TypeToStartAndAnswer(t *testing.T) {
	s, ctrl, m := newTestScreen(t)
	s.Init()
	ctrl.Welcome()
	drain(m)

	typeText(s, "ready")
	s.Update(keyPress(tea.KeyEnter))
	drain(m)
	if ctrl.State().Phase != sess.PhaseRunning {
		t.Fatalf("phase = %q, want running", ctrl.State().Phase)
	}
	if s.input.Value() != "" {
		t.Error("input should be cleared after send")
	}

	view := s.View(100, 40)
	if !strings.Contains(view, "What is 2 × 1?") {
		t.Errorf("question missing from view:\n%s", view)
	}

	typeText(s, "2")
	s.Update(keyPress(tea.KeyEnter))
	drain(m)
	if got := ctrl.State().Correct; got != 1 {
		t.Errorf("correct = %d, want 1", got)
	}
	if !strings.Contains(s.View(100, 40), "✓") {
		t.Error("expected correct tapback")
	}
}

func TestChatScreen_TypingIndicator(t *testing.T) {
	s, ctrl, _ := newTestScreen(t)
	ctrl.Welcome()
	if !strings.Contains(s.View(100, 40), "Buddy is typing") {
		t.Error("expected typing indicator")
	}
}

func TestChatScreen_EmptyEnterAfterRoundPlaysAgain(t *testing.T) {
	s, ctrl, m := newTestScreen(t)
	ctrl.Start()
	s.Update(ctrlKey('x'))
	drain(m)
	if ctrl.State().Phase != sess.PhaseSummary {
		t.Fatalf("phase = %q, want summary", ctrl.State().Phase)
	}

	s.Update(keyPress(tea.KeyEnter))
	if ctrl.State().Phase != sess.PhaseRunning {
		t.Errorf("phase = %q, want running", ctrl.State().Phase)
	}
}

func TestChatScreen_OpensSettings(t *testing.T) {
	s, _, _ := newTestScreen(t)
	_, cmd := s.Update(ctrlKey('s'))
	if cmd == nil {
		t.Fatal("expected command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*settings.SettingsScreen); !ok {
		t.Errorf("pushed %T, want settings", msg.Screen)
	}
}

func TestChatScreen_AchievementToastExpires(t *testing.T) {
	s, ctrl, m := newTestScreen(t)
	ctrl.Start()
	for i := 1; i <= 5; i++ {
		typeText(s, strconv.Itoa(2*i))
		s.Update(keyPress(tea.KeyEnter))
	}
	drain(m)
	if !strings.Contains(s.View(100, 40), "Achievement unlocked") {
		t.Fatal("expected toast")
	}
	for i := 0; i < toastSeconds; i++ {
		s.Update(screen.TickMsg{})
	}
	if strings.Contains(s.View(100, 40), "Achievement unlocked") {
		t.Error("toast should expire")
	}
}
