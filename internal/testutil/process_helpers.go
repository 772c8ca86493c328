package testutil

import (
	"os/exec"
	"runtime"
	"testing"
)

// MissingExecutable is a program name that is never on PATH.
const MissingExecutable = "cmdntfy-definitely-not-installed"

// RequireShell skips the test when no POSIX sh is available.
func RequireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}
