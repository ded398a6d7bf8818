package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func TestMenu_SkipsHeadingsAndDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Operations", Heading: true},
		{Label: "Addition"},
		{Label: "Locked", Disabled: true},
		{Label: "Division"},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}

	m, _ = m.Update(key("down"))
	if m.Selected != 3 {
		t.Errorf("after down Selected = %d, want 3", m.Selected)
	}
	m, _ = m.Update(key("up"))
	m, _ = m.Update(key("up"))
	if m.Selected != 1 {
		t.Errorf("after up Selected = %d, want 1", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	var ran bool
	m := NewMenu([]MenuItem{{Label: "Go", Action: func() tea.Cmd { ran = true; return nil }}})
	m.Update(key("enter"))
	if !ran {
		t.Error("expected action to run")
	}
}

func TestMenu_SetItemsKeepsCursor(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}, {Label: "b"}, {Label: "c"}})
	m.Selected = 2
	m.SetItems([]MenuItem{{Label: "a"}, {Label: "b"}, {Label: "c", Value: "on"}})
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
	m.SetItems([]MenuItem{{Label: "a"}, {Label: "b"}, {Label: "c", Disabled: true}})
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
}

func TestMenu_ViewWindow(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "one"}, {Label: "two"}, {Label: "three"}})
	out := m.View(1, 1)
	if strings.Contains(out, "one") || !strings.Contains(out, "two") || strings.Contains(out, "three") {
		t.Errorf("unexpected window:\n%s", out)
	}
}

func TestTextInput_Take(t *testing.T) {
	in := NewTextInput("Say something", 10)
	in.Model.SetValue("42")
	if got := in.Take(); got != "42" {
		t.Errorf("Take() = %q, want 42", got)
	}
	if in.Value() != "" {
		t.Errorf("Value after Take = %q, want empty", in.Value())
	}
}

func TestProgressBar_Fraction(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 0, 0},
		{0, 4, 0},
		{1, 4, 0.25},
		{4, 4, 1},
		{6, 4, 1},
	}
	for _, tt := range tests {
		if got := NewProgressBar(tt.done, tt.total, 40).Fraction(); got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestProgressBar_ViewShowsCounter(t *testing.T) {
	if v := NewProgressBar(3, 7, 40).View(); !strings.Contains(v, "3/7") {
		t.Errorf("View() = %q, want counter 3/7", v)
	}
}
