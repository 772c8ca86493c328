package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/ariel-frischer/cmdntfy/internal/errors"
)

// Exit codes for the cmdntfy CLI.
// The wrapped command's own exit code is never propagated; it is reported in
// the notification instead.
const (
	// ExitSuccess indicates the command ran and the summary was delivered
	ExitSuccess = 0

	// ExitFailure indicates a spawn, wait or notification transport failure
	ExitFailure = 1

	// ExitInvalidArguments indicates missing URL, missing command or bad config file
	ExitInvalidArguments = 2
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit code %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// NewExitError creates a new exit error with the given code.
func NewExitError(code int, err error) error {
	return &exitError{code: code, err: err}
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var e *exitError
	if stderrors.As(err, &e) {
		return e.code
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case errors.Argument, errors.Configuration:
			return ExitInvalidArguments
		}
	}
	return ExitFailure
}
