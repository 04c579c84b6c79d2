package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/obralog/obralog/internal/api"
	"github.com/obralog/obralog/internal/config"
	"github.com/obralog/obralog/internal/normalize"
	"github.com/obralog/obralog/internal/photo"
	"github.com/obralog/obralog/internal/screen"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "obralog",
	Short: "obralog – construction-site daily-log client",
	Long: `obralog is a command-line client for a construction-site diary backend.
It manages expenses, suppliers, daily logs, occurrences and tasks for a
project, and assembles a consolidated per-project report.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if rootVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(expensesCmd)
	rootCmd.AddCommand(suppliersCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(occurrencesCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(diaryCmd)
	rootCmd.AddCommand(reportCmd)
}

// newBackend loads the config and builds the authenticated API client.
func newBackend(cmd *cobra.Command) (*api.Client, config.Config) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	client := api.NewClient(cmd.Context(), cfg.Backend.BaseURL, cfg.Backend.Token, slog.Default())
	return client, cfg
}

// submitError turns a failed submission into the message shown to the
// user: validation and busy errors pass through verbatim, backend
// failures are relayed with their message field or a generic fallback.
func submitError(err error) error {
	if normalize.IsValidation(err) || errors.Is(err, screen.ErrBusy) ||
		errors.Is(err, photo.ErrBusy) || errors.Is(err, photo.ErrGalleryFull) ||
		errors.Is(err, photo.ErrInvalidType) || errors.Is(err, photo.ErrTooLarge) {
		return err
	}
	return fmt.Errorf("%s", api.UserMessage(err))
}

// projectOrDefault resolves the project reference from a flag value and
// the configured default.
func projectOrDefault(flag int64, cfg config.Config) int64 {
	if flag > 0 {
		return flag
	}
	return cfg.Defaults.ProjectID
}
