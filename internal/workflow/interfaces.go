// Package workflow defines interfaces for the collaborators of a run, enabling
// dependency injection and testing.
// Related: internal/workflow/orchestrator.go, internal/runner/runner.go, internal/notify/handler.go
// Tags: workflow, interfaces, dependency-injection
package workflow

import (
	"context"

	"github.com/ariel-frischer/cmdntfy/internal/runner"
)

// CommandRunner abstracts child process execution for testability.
//
// Primary implementation: runner.Runner in internal/runner.
type CommandRunner interface {
	// Run starts name with args, waits for it, and returns the captured result.
	// Returns *runner.SpawnError if the process could not be started and
	// *runner.WaitError if waiting failed. A non-zero exit is not an error.
	Run(ctx context.Context, name string, args ...string) (*runner.Result, error)
}

// Notifier abstracts the two notification points of a run.
//
// Primary implementation: notify.Handler in internal/notify.
type Notifier interface {
	// OnFailure sends a best-effort alert. It never reports an error.
	OnFailure(ctx context.Context, title string, cause error)

	// OnCommandComplete sends the result summary and returns transport errors.
	OnCommandComplete(ctx context.Context, executable, stdout, stderr string, exitCode int) error
}

// ProgressReporter is notified when the child starts and stops.
// A nil reporter is allowed and does nothing.
type ProgressReporter interface {
	Start(executable string)
	Stop(executable string, exitCode int, err error)
}
