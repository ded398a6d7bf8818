package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mltply/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "chat"}
	r := New(s1)

	s2 := &stubScreen{title: "settings"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "settings" {
		t.Errorf("expected active 'settings', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "chat"}
	r := New(s1)

	s2 := &stubScreen{title: "settings"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "chat" {
		t.Errorf("expected active 'chat', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "chat"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "chat"}
	r := New(s1)

	s2 := &stubScreen{title: "settings"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "settings" {
		t.Errorf("expected active 'settings', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "chat"}
	r := New(s1)

	s2 := &stubScreen{title: "settings"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "settings" {
		t.Errorf("expected active 'settings', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "chat"}
	r := New(s1)

	s2 := &stubScreen{title: "settings"}
	r.Push(s2)

	s3 := &stubScreen{title: "scoreboard"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "scoreboard" {
		t.Errorf("expected active 'scoreboard', got %q", r.Active().Title())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &countingScreen{}
	r := New(s1)
	r.Update(struct{}{})
	r.Update(struct{}{})
	if s1.updates != 2 {
		t.Errorf("expected 2 updates, got %d", s1.updates)
	}
}

type countingScreen struct {
	stubScreen
	updates int
}

func (c *countingScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	c.updates++
	return c, nil
}

type resumingScreen struct {
	stubScreen
	resumed int
}

func (s *resumingScreen) Resume() tea.Cmd {
	s.resumed++
	return nil
}

func TestPopResumesRevealedScreen(t *testing.T) {
	root := &resumingScreen{stubScreen: stubScreen{title: "chat"}}
	r := New(root)

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "history"}})
	r.Update(PopScreenMsg{})
	if root.resumed != 1 {
		t.Errorf("expected 1 resume, got %d", root.resumed)
	}

	r.Update(PopScreenMsg{})
	if root.resumed != 1 {
		t.Errorf("pop at root should not resume, got %d", root.resumed)
	}
}
