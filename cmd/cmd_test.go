package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mltply/internal/chat"
	"github.com/abhisek/mltply/internal/clock"
	"github.com/abhisek/mltply/internal/problemgen"
	"github.com/abhisek/mltply/internal/session"
	"github.com/abhisek/mltply/internal/store"
)

func newTestController(t *testing.T) *session.Controller {
	t.Helper()
	cfg := session.DefaultConfig()
	cfg.Chat = chat.Instant()
	ctrl := session.New(context.Background(), cfg, session.Deps{
		Timers: clock.NewManual(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		Store:  store.NewMemory(),
	})
	t.Cleanup(ctrl.Close)
	return ctrl
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelWarn, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatLine(t *testing.T) {
	at := time.Now()
	bot := chat.NewMessage(chat.SenderBot, "What is 2 × 3?", at)
	assert.Equal(t, "Buddy: What is 2 × 3?", formatLine(bot))

	right := chat.NewMessage(chat.SenderUser, "6", at)
	right.Tapback = chat.TapbackCorrect
	assert.Equal(t, "You:   6  ✓", formatLine(right))

	wrong := chat.NewMessage(chat.SenderUser, "7", at)
	wrong.Tapback = chat.TapbackIncorrect
	assert.Equal(t, "You:   7  ✗", formatLine(wrong))

	plain := chat.NewMessage(chat.SenderUser, "hi", at)
	assert.Equal(t, "You:   hi", formatLine(plain))
}

func TestApplySetting(t *testing.T) {
	ctrl := newTestController(t)

	require.NoError(t, applySetting(ctrl, "operations", "mul, sqrt"))
	assert.Equal(t, []problemgen.Operation{problemgen.OpMultiplication, problemgen.OpSquareRoot},
		ctrl.State().Operations.List())

	require.NoError(t, applySetting(ctrl, "numbers", "7,3,3"))
	assert.Equal(t, []int{3, 7}, ctrl.State().Practice.Numbers)
	require.NoError(t, applySetting(ctrl, "numbers", "none"))
	assert.Empty(t, ctrl.State().Practice.Numbers)
	require.NoError(t, applySetting(ctrl, "numbers", "all"))
	assert.Len(t, ctrl.State().Practice.Numbers, problemgen.MaxNumber)

	require.NoError(t, applySetting(ctrl, "difficulty", "champion"))
	assert.Equal(t, problemgen.DifficultyChampion, ctrl.State().Practice.Difficulty)

	require.NoError(t, applySetting(ctrl, "ordering", "ascending"))
	assert.Equal(t, problemgen.OrderingSequential, ctrl.State().Prefs.Ordering)

	require.NoError(t, applySetting(ctrl, "timer", "500"))
	assert.Equal(t, 60, ctrl.State().Prefs.TimerMinutes)

	require.NoError(t, applySetting(ctrl, "continuous", "false"))
	assert.False(t, ctrl.State().Prefs.Continuous)

	require.NoError(t, applySetting(ctrl, "sound", "true"))
	assert.True(t, ctrl.State().Prefs.Sound)
}

func TestApplySettingRejects(t *testing.T) {
	ctrl := newTestController(t)
	for _, kv := range [][2]string{
		{"operations", "mul,modulo"},
		{"numbers", "13"},
		{"numbers", "x"},
		{"difficulty", "legend"},
		{"ordering", "backwards"},
		{"timer", "soon"},
		{"continuous", "maybe"},
		{"volume", "11"},
	} {
		assert.Error(t, applySetting(ctrl, kv[0], kv[1]), "%s=%s", kv[0], kv[1])
	}
}

func TestPrintConfig(t *testing.T) {
	ctrl := newTestController(t)
	var buf bytes.Buffer
	printConfig(&buf, ctrl.State())
	out := buf.String()
	assert.Contains(t, out, "operations:  addition,subtraction,multiplication,division\n")
	assert.Contains(t, out, "timer:       2 min\n")
	assert.Contains(t, out, "continuous:  true\n")
}

func TestHandleLine(t *testing.T) {
	ctrl := newTestController(t)
	quit := false
	handleLine(ctrl, "/settings", func() { quit = true })
	assert.Equal(t, session.PhaseConfiguringOperations, ctrl.State().Phase)

	handleLine(ctrl, "/confirm", nil)
	assert.Equal(t, session.PhaseConfiguringStart, ctrl.State().Phase)

	handleLine(ctrl, "/start", nil)
	assert.Equal(t, session.PhaseRunning, ctrl.State().Phase)

	handleLine(ctrl, "/finish", nil)
	assert.Equal(t, session.PhaseSummary, ctrl.State().Phase)

	handleLine(ctrl, " /quit ", func() { quit = true })
	assert.True(t, quit)
}

func TestDescribeTarget(t *testing.T) {
	t.Setenv("MLTPLY_DB", "/tmp/mltply-test.db")
	assert.Equal(t, "sqlite /tmp/mltply-test.db", describeTarget(""))
	assert.Equal(t, "memory", describeTarget("memory:"))
	assert.Equal(t, "redis", describeTarget("redis://localhost:6379/0"))
}

func TestRunPlainDrainsBeforeExit(t *testing.T) {
	t.Setenv("MLTPLY_STORE", "memory:")
	require.NoError(t, playCmd.Flags().Set("instant", "true"))
	t.Cleanup(func() { _ = playCmd.Flags().Set("instant", "false") })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	playCmd.SetContext(ctx)
	t.Cleanup(func() { playCmd.SetContext(context.Background()) })

	var out bytes.Buffer
	require.NoError(t, runPlain(playCmd, strings.NewReader("hi\n42\n"), &out))
	require.NoError(t, ctx.Err(), "input end should stop the loop, not the timeout")

	got := out.String()
	assert.Contains(t, got, "You:   hi")
	assert.Contains(t, got, "You:   42")
	assert.Contains(t, got, "Buddy: "+session.MsgLetsGo)
	assert.Contains(t, got, "Buddy: What is")
}
