// cmdntfy - run a command and push its output to an ntfy endpoint

// Package cli provides the Cobra-based command line for cmdntfy. It parses
// flags, resolves the configuration and hands a single run to the workflow
// orchestrator.
package cli

import (
	stderrors "errors"
	"io"
	"log/slog"
	"os"

	"github.com/ariel-frischer/cmdntfy/internal/build"
	"github.com/ariel-frischer/cmdntfy/internal/config"
	"github.com/ariel-frischer/cmdntfy/internal/errors"
	"github.com/ariel-frischer/cmdntfy/internal/notify"
	"github.com/ariel-frischer/cmdntfy/internal/progress"
	"github.com/ariel-frischer/cmdntfy/internal/runner"
	"github.com/ariel-frischer/cmdntfy/internal/workflow"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the cmdntfy root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmdntfy [flags] <executable> [args...]",
		Short: "Capture output of commands and send it using ntfy",
		Long: `Capture output of commands and send it using ntfy

Runs the given command to completion with an empty stdin, captures its
stdout, stderr and exit code, and posts a markdown summary to an ntfy topic.
Successful commands are sent with low priority; failures with high priority.`,
		Example: `  # Notify about a backup job
  cmdntfy --url https://ntfy.sh/mytopic -- restic backup /home

  # URL and token from the environment
  export NTFY_URL=https://ntfy.example.com/builds
  export NTFY_TOKEN=tk_xxx
  cmdntfy make release`,
		Version:       build.Version,
		Args:          requireCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	cmd.SetVersionTemplate(build.Info())

	cmd.Flags().StringP("url", "u", "", "ntfy URL, including topic (or NTFY_URL environment variable)")
	cmd.Flags().StringP("token", "t", "", "ntfy token if necessary (or NTFY_TOKEN environment variable)")
	cmd.Flags().String("config", "", "Optional JSON config file with url/token (lowest priority)")
	cmd.Flags().Bool("progress", false, "Show a spinner on stderr while the command runs (terminals only)")
	cmd.Flags().BoolP("debug", "d", false, "Enable debug logging on stderr")

	// Everything after the executable belongs to it, including flags.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// Execute runs the root command with os.Args
func Execute() error {
	return run(NewRootCmd(), os.Args[1:])
}

// run executes cmd with args and prints any error to the command's stderr.
func run(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		errors.PrintError(cmd.ErrOrStderr(), err)
	}
	return err
}

func requireCommand(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return NewExitError(ExitInvalidArguments, errors.MissingCommand(cmd.UseLine()))
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	stderr := cmd.ErrOrStderr()

	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return NewExitError(ExitInvalidArguments, err)
	}

	debug, _ := cmd.Flags().GetBool("debug")
	logger := newLogger(stderr, debug)
	logger.Debug("configuration resolved", "url", cfg.URL, "authenticated", cfg.HasToken(), "command", cfg.Command)

	showProgress, _ := cmd.Flags().GetBool("progress")
	var reporter workflow.ProgressReporter
	if showProgress {
		reporter = newProgressDisplay(stderr)
	}

	handler := notify.NewHandler(notify.NewHTTPSender(cfg.URL, cfg.Token, logger), logger)
	orchestrator := workflow.NewOrchestrator(cfg, runner.New(logger), handler, reporter, logger)

	if err := orchestrator.Execute(cmd.Context()); err != nil {
		return NewExitError(ExitFailure, classify(err))
	}
	return nil
}

// resolveConfig collects explicitly set flags and resolves the configuration.
// Configuration errors carry the usage line so it is printed with them.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Configuration, error) {
	flags := make(map[string]string)
	for _, name := range []string{"url", "token"} {
		if cmd.Flags().Changed(name) {
			value, _ := cmd.Flags().GetString(name)
			flags[name] = value
		}
	}
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Resolve(config.Options{
		Flags:      flags,
		ConfigPath: configPath,
		Command:    args,
	})
	if err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil && cliErr.Usage == "" {
			cliErr.Usage = cmd.UseLine()
		}
		return nil, err
	}
	return cfg, nil
}

// classify maps workflow failures onto CLI error categories for display.
func classify(err error) error {
	var spawnErr *runner.SpawnError
	var waitErr *runner.WaitError
	var transportErr *notify.TransportError

	switch {
	case stderrors.As(err, &spawnErr):
		return errors.Wrap(err, errors.Runtime, "Check that the executable exists and is on PATH")
	case stderrors.As(err, &waitErr):
		return errors.Wrap(err, errors.Runtime)
	case stderrors.As(err, &transportErr):
		return errors.Wrap(err, errors.Notification, "Check the ntfy URL and that the server is reachable")
	default:
		return err
	}
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newProgressDisplay returns a spinner display on w, or nil when w is not a terminal.
func newProgressDisplay(w io.Writer) workflow.ProgressReporter {
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	caps := progress.DetectTerminalCapabilities(f)
	if !caps.IsTTY {
		return nil
	}
	return progress.NewDisplay(caps, f)
}
