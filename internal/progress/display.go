// Package progress shows a spinner on stderr while the wrapped command runs.
// Nothing is written unless the stream is a terminal, so captured output and
// the parent's stdout are never affected.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Display renders a spinner and a one-line completion status.
type Display struct {
	capabilities TerminalCapabilities
	symbols      ProgressSymbols
	out          io.Writer
	spinner      *spinner.Spinner
	started      time.Time
}

// NewDisplay creates a display writing to out with the given capabilities.
func NewDisplay(caps TerminalCapabilities, out io.Writer) *Display {
	return &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		out:          out,
	}
}

// Enabled reports whether the display writes anything.
func (d *Display) Enabled() bool {
	return d != nil && d.capabilities.IsTTY
}

// Start begins the spinner with "Running <executable>".
func (d *Display) Start(executable string) {
	if !d.Enabled() {
		return
	}
	d.started = time.Now()

	opts := []spinner.Option{spinner.WithWriter(d.out)}
	if f, ok := d.out.(*os.File); ok {
		opts = append(opts, spinner.WithWriterFile(f))
	}
	d.spinner = spinner.New(spinner.CharSets[d.symbols.SpinnerSet], 100*time.Millisecond, opts...)
	d.spinner.Suffix = " Running " + executable
	d.spinner.Start()
}

// Stop halts the spinner and prints the outcome. exitCode is ignored when err
// is non-nil.
func (d *Display) Stop(executable string, exitCode int, err error) {
	if !d.Enabled() {
		return
	}
	d.stopSpinner()

	elapsed := time.Since(d.started).Round(10 * time.Millisecond)
	switch {
	case err != nil:
		fmt.Fprintf(d.out, "%s %s: %v\n", d.symbols.Failure, executable, err)
	case exitCode == 0:
		fmt.Fprintf(d.out, "%s %s finished in %s\n", d.symbols.Checkmark, executable, elapsed)
	default:
		fmt.Fprintf(d.out, "%s %s exited with code %d after %s\n", d.symbols.Failure, executable, exitCode, elapsed)
	}
}

func (d *Display) stopSpinner() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
