package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/mltply/internal/clock"
	"github.com/abhisek/mltply/internal/session"
	"github.com/abhisek/mltply/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mltply",
	Short: "Arithmetic quiz in your terminal",
	Long:  "Mltply: chat with Buddy the robot and practice addition, subtraction, multiplication, division, squares and square roots.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadDotEnv(".env")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MLTPLY_DB env var)")
	rootCmd.PersistentFlags().String("store", "", "Storage backend: a SQLite path, memory:, or redis://host:port/db (overrides MLTPLY_STORE)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides MLTPLY_LOG_LEVEL)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// resolveTarget returns the storage target using --store, then --db, then
// MLTPLY_STORE. An empty result selects the default SQLite path, which
// itself honors MLTPLY_DB.
func resolveTarget(cmd *cobra.Command) string {
	if s, _ := cmd.Flags().GetString("store"); s != "" {
		return s
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p
	}
	return os.Getenv("MLTPLY_STORE")
}

func openStore(cmd *cobra.Command) (store.KV, error) {
	target := resolveTarget(cmd)
	kv, err := store.OpenURL(cmd.Context(), target)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", store.Describe(target), err)
	}
	return kv, nil
}

// describeTarget names the backend, spelling out the default SQLite path.
func describeTarget(target string) string {
	if target == "" {
		if p, err := store.DefaultDBPath(); err == nil {
			return "sqlite " + p
		}
	}
	return store.Describe(target)
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelWarn, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}

// newLogger builds the process logger writing to w.
func newLogger(cmd *cobra.Command, w io.Writer) (*slog.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = os.Getenv("MLTPLY_LOG_LEVEL")
	}
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// openLogFile opens mltply.log in the data directory. The TUI owns the
// terminal, so its logs go there instead of stderr.
func openLogFile() (*os.File, error) {
	dir, err := store.DataDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, "mltply.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// openController opens the store and builds a controller for one-shot
// commands. Nothing is scheduled on the returned loop unless the caller
// runs it.
func openController(cmd *cobra.Command) (*session.Controller, func(), error) {
	kv, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(cmd, os.Stderr)
	if err != nil {
		kv.Close()
		return nil, nil, err
	}
	ctrl := session.New(commandContext(cmd), session.DefaultConfig(), session.Deps{
		Timers: clock.NewLoop(),
		Store:  kv,
		Logger: logger,
	})
	return ctrl, func() {
		ctrl.Close()
		kv.Close()
	}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
