package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mltply/internal/app"
	"github.com/abhisek/mltply/internal/chat"
	"github.com/abhisek/mltply/internal/clock"
	"github.com/abhisek/mltply/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start chatting with Buddy",
	RunE: func(cmd *cobra.Command, args []string) error {
		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			return runPlain(cmd, os.Stdin, os.Stdout)
		}
		return runTUI(cmd)
	},
}

func init() {
	playCmd.Flags().Bool("plain", false, "Line-mode chat on stdin/stdout instead of the full-screen UI")
	playCmd.Flags().Bool("instant", false, "Skip the typing delay in --plain mode")
}

// runTUI opens the store and launches the full-screen app.
func runTUI(cmd *cobra.Command) error {
	kv, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer kv.Close()

	logFile, err := openLogFile()
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger, err := newLogger(cmd, logFile)
	if err != nil {
		return err
	}

	return app.Run(commandContext(cmd), app.Options{
		Store:  kv,
		Logger: logger,
		Config: session.DefaultConfig(),
	})
}

const plainHelp = "Commands: /finish ends the round, /again plays again, /settings starts configuring, " +
	"/confirm confirms operations, /start starts, /reset restarts, /quit exits."

// runPlain drives the controller from a line-oriented reader. Everything,
// including input lines and the round clock, runs on one clock.Loop.
func runPlain(cmd *cobra.Command, in io.Reader, out io.Writer) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	kv, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer kv.Close()
	logger, err := newLogger(cmd, os.Stderr)
	if err != nil {
		return err
	}

	cfg := session.DefaultConfig()
	if instant, _ := cmd.Flags().GetBool("instant"); instant {
		cfg.Chat = chat.Instant()
	}

	loop := clock.NewLoop()
	ctrl := session.New(ctx, cfg, session.Deps{Timers: loop, Store: kv, Logger: logger})
	defer ctrl.Close()

	ctrl.Subscribe(func(e session.Event) {
		switch e.Kind {
		case session.EventMessage:
			fmt.Fprintln(out, formatLine(e.Message))
		case session.EventAchievement:
			fmt.Fprintf(out, "*** %s %s unlocked ***\n", e.Achievement.Category.Icon(), e.Achievement.Title)
		}
	})

	loop.Post(func() {
		fmt.Fprintln(out, plainHelp)
		ctrl.Welcome()
	})
	ticker := clock.Every(loop, time.Second, ctrl.Tick)
	defer ticker.Stop()

	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			line := sc.Text()
			if !loop.Post(func() { handleLine(ctrl, line, cancel) }) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			logger.Warn("read input", "err", err)
		}
		// Lines already posted run first; then wait for Buddy to finish.
		loop.Post(func() { whenIdle(loop, ctrl, cancel) })
	}()

	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// drainPoll is how often whenIdle rechecks a busy controller.
const drainPoll = 10 * time.Millisecond

// whenIdle runs fn on the loop once the controller has no bot lines left
// to deliver.
func whenIdle(loop *clock.Loop, ctrl *session.Controller, fn func()) {
	if ctrl.Idle() {
		fn()
		return
	}
	loop.AfterFunc(drainPoll, func() { whenIdle(loop, ctrl, fn) })
}

func handleLine(ctrl *session.Controller, line string, quit func()) {
	switch strings.TrimSpace(line) {
	case "/quit":
		quit()
	case "/finish":
		ctrl.Finish()
	case "/again":
		ctrl.PlayAgain()
	case "/settings":
		ctrl.BeginConfiguration()
	case "/confirm":
		ctrl.ConfirmOperations()
	case "/start":
		ctrl.Start()
	case "/reset":
		ctrl.RequestReset()
	default:
		ctrl.SubmitText(line)
	}
}

func formatLine(m chat.Message) string {
	if m.Sender == chat.SenderBot {
		return "Buddy: " + m.Text
	}
	switch m.Tapback {
	case chat.TapbackCorrect:
		return "You:   " + m.Text + "  ✓"
	case chat.TapbackIncorrect:
		return "You:   " + m.Text + "  ✗"
	}
	return "You:   " + m.Text
}
