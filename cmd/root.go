package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/skillbridge-ai/skillbridge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skillbridge",
	Short: "AI-powered personal tutor",
	Long:  "Skill Bridge — conversational terminal tutor with guided learning tracks for Python, JavaScript, Java, SQL, and Data Analytics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// Missing .env is fine, the environment may already be set.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLBRIDGE_DB env var)")

	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SKILLBRIDGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds the application logger. CLI subcommands write to
// stderr; the TUI writes to a log file beside the database so log lines
// don't tear the alternate screen.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.TimeOnly,
	}))
}

// openLogFile opens the TUI log file next to the database. A discard
// logger is returned when the file cannot be opened.
func openLogFile(dbPath string) (*slog.Logger, io.Closer) {
	logPath := filepath.Join(filepath.Dir(dbPath), "skillbridge.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler), nil
	}
	return newLogger(f), f
}
