package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader_ShowsStatus(t *testing.T) {
	out := RenderHeader("Chat", Status{Score: 7, PersonalBest: 12, Clock: "01:05"}, 100)
	for _, want := range []string{"Mltply", "Chat", "★ 7", "🏆 12", "01:05"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHeader_NoClockInContinuousMode(t *testing.T) {
	out := RenderHeader("Chat", Status{Score: 1}, 100)
	if strings.Contains(out, "⏱") {
		t.Errorf("unexpected clock in header:\n%s", out)
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Chat", Status{}, 80)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Send"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
}
