// cmdntfy - run a command and push its output to an ntfy endpoint

// Package workflow runs one command and notifies about its outcome.
// This file contains the Orchestrator which drives the per-invocation state
// machine between the CommandRunner and the Notifier.
// Related: internal/workflow/state.go, internal/workflow/interfaces.go
// Tags: workflow, orchestrator, state-machine
package workflow

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/ariel-frischer/cmdntfy/internal/config"
	"github.com/ariel-frischer/cmdntfy/internal/runner"
)

// Orchestrator performs exactly one run: spawn, wait, notify.
//
// The orchestrator contains only coordination logic. Process handling lives
// in the CommandRunner and delivery in the Notifier, both injected.
type Orchestrator struct {
	cfg      *config.Configuration
	runner   CommandRunner
	notifier Notifier
	progress ProgressReporter
	logger   *slog.Logger

	trace []State
}

// NewOrchestrator creates an orchestrator for cfg. progress may be nil.
func NewOrchestrator(cfg *config.Configuration, r CommandRunner, n Notifier, progress ProgressReporter, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Orchestrator{
		cfg:      cfg,
		runner:   r,
		notifier: n,
		progress: progress,
		logger:   logger,
		trace:    []State{StateIdle},
	}
}

// State returns the current state.
func (o *Orchestrator) State() State {
	return o.trace[len(o.trace)-1]
}

// Trace returns every state visited so far, starting with StateIdle.
func (o *Orchestrator) Trace() []State {
	return append([]State(nil), o.trace...)
}

func (o *Orchestrator) transition(ctx context.Context, next State) {
	o.logger.DebugContext(ctx, "state transition", "from", o.State(), "to", next)
	o.trace = append(o.trace, next)
}

// Execute runs the configured command once and sends one notification.
//
// On a spawn or wait failure a best-effort failure alert is sent and the
// original runner error is returned. Otherwise the summary notification is
// sent and only its transport failure is returned; the child's own exit code
// never makes Execute fail.
func (o *Orchestrator) Execute(ctx context.Context) error {
	if o.State().Terminal() {
		return fmt.Errorf("orchestrator already used (state %s)", o.State())
	}

	exe := o.cfg.Executable()
	o.transition(ctx, StateSpawning)
	o.startProgress(exe)

	result, err := o.runner.Run(ctx, exe, o.cfg.Args()...)
	if err != nil {
		o.stopProgress(exe, -1, err)
		return o.abort(ctx, exe, err)
	}

	o.transition(ctx, StateRunning)
	o.transition(ctx, StateCompleted)
	o.stopProgress(exe, result.ExitCode, nil)

	o.logger.InfoContext(ctx, "command finished", "executable", exe, "exit_code", result.ExitCode)

	o.transition(ctx, StateNotifySummary)
	if err := o.notifier.OnCommandComplete(ctx, exe, result.Stdout, result.Stderr, result.ExitCode); err != nil {
		o.transition(ctx, StateAborted)
		return fmt.Errorf("failed to notify command result: %w", err)
	}

	o.transition(ctx, StateDone)
	return nil
}

// abort records the failed step, sends the alert and returns err unchanged.
func (o *Orchestrator) abort(ctx context.Context, exe string, err error) error {
	var title string
	var waitErr *runner.WaitError
	if stderrors.As(err, &waitErr) {
		o.transition(ctx, StateRunning)
		o.transition(ctx, StateWaitFailed)
		title = fmt.Sprintf("Failed to wait on %s", exe)
	} else {
		o.transition(ctx, StateSpawnFailed)
		title = fmt.Sprintf("Failed to spawn process %s", exe)
	}

	o.logger.DebugContext(ctx, title, "error", err)

	o.transition(ctx, StateNotifyFailure)
	o.notifier.OnFailure(ctx, title, err)

	o.transition(ctx, StateAborted)
	return err
}

func (o *Orchestrator) startProgress(exe string) {
	if o.progress != nil {
		o.progress.Start(exe)
	}
}

func (o *Orchestrator) stopProgress(exe string, exitCode int, err error) {
	if o.progress != nil {
		o.progress.Stop(exe, exitCode, err)
	}
}
