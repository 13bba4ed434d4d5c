package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"wikimap/internal/adapters/filesystem"
	"wikimap/internal/application"
	"wikimap/internal/config"
	"wikimap/internal/logging"
)

var (
	wikiPath string
	logLevel string
	logJSON  bool

	cfg    config.Config
	reader *filesystem.Reader
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wikimap-cli",
	Short: "Site maps, tags and task counts for vimwiki",
	Long: `wikimap-cli works on a vimwiki directory.

It walks the links from the root document to print a site map, extracts
heading tags for tagbar, and counts unfinished tasks in notes and diary
entries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		if cmd.Flags().Changed("wiki") {
			cfg.WikiPath = wikiPath
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-json") {
			cfg.LogJSON = logJSON
		}

		if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
			return &application.UsageError{Message: err.Error()}
		}
		logger = logging.New(logging.Config{
			Level:  cfg.LogLevel,
			JSON:   cfg.LogJSON,
			Output: cmd.ErrOrStderr(),
		})
		reader = filesystem.NewReader(cfg.WikiPath, cfg.Extension)
		return nil
	},
}

// exitError carries a specific process exit status
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	cmd, err := rootCmd.ExecuteContextC(ctx)
	stop()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	var usage *application.UsageError
	if errors.As(err, &usage) {
		fmt.Fprintln(os.Stderr)
		_ = cmd.Usage()
	}
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	var coded *exitError
	if errors.As(err, &coded) {
		return coded.code
	}
	return 1
}

// usageArgs wraps a cobra positional argument check so its failure prints
// the usage text
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &application.UsageError{Message: err.Error()}
		}
		return nil
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&wikiPath, "wiki", "w", config.WikiPath(), "path to the wiki")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "diagnostics level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write diagnostics as JSON")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &application.UsageError{Message: err.Error()}
	})
}

// GetReader returns the initialized wiki reader
func GetReader() *filesystem.Reader {
	return reader
}

// GetLogger returns the diagnostics logger
func GetLogger() *slog.Logger {
	if logger == nil {
		return logging.Discard()
	}
	return logger
}
