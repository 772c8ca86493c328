// Package runner spawns the wrapped command and captures its output.
package runner

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
)

// Result is the captured outcome of a completed child process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int // -1 when the OS reports no code (e.g. killed by a signal)
	Duration time.Duration
}

// Success reports whether the child exited with code 0.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// SpawnError is returned when the child process could not be started.
type SpawnError struct {
	Executable string
	Err        error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn process %s: %v", e.Executable, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// WaitError is returned when waiting on a started child fails for a reason
// other than the child's own non-zero exit.
type WaitError struct {
	Executable string
	Err        error
}

func (e *WaitError) Error() string {
	return fmt.Sprintf("failed to wait on %s: %v", e.Executable, e.Err)
}

func (e *WaitError) Unwrap() error { return e.Err }

// Runner executes a command line with no stdin and fully buffered output.
type Runner struct {
	starter Starter
	logger  *slog.Logger
}

// New creates a Runner that starts real OS processes.
func New(logger *slog.Logger) *Runner {
	return NewWithStarter(ExecStarter, logger)
}

// NewWithStarter creates a Runner with a custom process starter (for testing).
func NewWithStarter(starter Starter, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{starter: starter, logger: logger}
}

// Run starts name with args, waits for it to exit, and returns its output.
// A non-zero exit is reported through Result.ExitCode, not as an error.
// The child is never cancelled; ctx is only used for logging.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	var stdout, stderr bytes.Buffer

	r.logger.DebugContext(ctx, "spawning process", "executable", name, "args", args)
	start := time.Now()

	proc, err := r.starter(name, args, &stdout, &stderr)
	if err != nil {
		return nil, &SpawnError{Executable: name, Err: err}
	}

	exitCode, err := waitExitCode(proc)
	if err != nil {
		return nil, &WaitError{Executable: name, Err: err}
	}

	result := &Result{
		Stdout:   DecodeLossy(stdout.Bytes()),
		Stderr:   DecodeLossy(stderr.Bytes()),
		ExitCode: exitCode,
		Duration: time.Since(start),
	}

	r.logger.DebugContext(ctx, "process exited",
		"executable", name,
		"exit_code", result.ExitCode,
		"duration", result.Duration,
		"stdout_bytes", stdout.Len(),
		"stderr_bytes", stderr.Len(),
	)

	return result, nil
}

// waitExitCode waits on proc. An *exec.ExitError is the child's own exit
// status and is folded into the returned code.
func waitExitCode(proc Process) (int, error) {
	err := proc.Wait()
	if err == nil {
		return proc.ExitCode(), nil
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return 0, err
}

// DecodeLossy converts raw bytes to a string, replacing every ill-formed
// UTF-8 sequence with U+FFFD.
func DecodeLossy(b []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(decoded)
}
