package runner

import (
	"io"
	"os/exec"
)

// Process is a started child process.
type Process interface {
	// Wait blocks until the process exits and its output has been copied.
	Wait() error

	// ExitCode returns the exit code after a successful Wait, or -1 if the
	// process was terminated by a signal.
	ExitCode() int
}

// Starter starts name with args, wiring its stdout and stderr to the given
// writers and its stdin to the null device.
type Starter func(name string, args []string, stdout, stderr io.Writer) (Process, error)

// ExecStarter starts a real OS process via os/exec.
func ExecStarter(name string, args []string, stdout, stderr io.Writer) (Process, error) {
	cmd := exec.Command(name, args...)

	// A nil Stdin makes os/exec connect the null device.
	cmd.Stdin = nil
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd}, nil
}

// execProcess adapts *exec.Cmd to Process
type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Wait() error {
	return p.cmd.Wait()
}

func (p *execProcess) ExitCode() int {
	if p.cmd.ProcessState == nil {
		return -1
	}
	return p.cmd.ProcessState.ExitCode()
}
