package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders err for terminal output. Colors are applied only when
// the color package detects a terminal.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	heading := color.New(color.FgRed, color.Bold).SprintFunc()
	return format(err, heading)
}

// PrintError writes the formatted error to w.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}

func format(err error, heading func(...interface{}) string) string {
	cliErr := AsCLIError(err)
	if cliErr == nil {
		return fmt.Sprintf("%s: %s\n", heading("Error"), err.Error())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", heading(cliErr.Category.String()), cliErr.Message)

	if cliErr.Usage != "" {
		fmt.Fprintf(&b, "\nUsage: %s\n", cliErr.Usage)
	}

	if len(cliErr.Remediation) > 0 {
		b.WriteString("\nTo fix this:\n")
		for _, step := range cliErr.Remediation {
			fmt.Fprintf(&b, "  - %s\n", step)
		}
	}

	return b.String()
}
