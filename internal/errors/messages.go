package errors

import "fmt"

// MissingURL is returned when neither --url nor NTFY_URL provides an endpoint.
func MissingURL(usage string) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  "no url provided (either via environment variable or argument)",
		Usage:    usage,
		Remediation: []string{
			"Pass the ntfy URL including the topic: --url https://ntfy.sh/mytopic",
			"Or export NTFY_URL=https://ntfy.sh/mytopic",
		},
	}
}

// MissingCommand is returned when no executable was given.
func MissingCommand(usage string) *CLIError {
	return NewArgumentErrorWithUsage("no command provided", usage,
		"Append the command to run after the flags: cmdntfy -u URL -- make test")
}

// InvalidConfigFile is returned when the file passed via --config cannot be loaded.
func InvalidConfigFile(path string, err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("failed to load config file %s: %v", path, err),
		Remediation: []string{
			"Check that the file exists and contains valid JSON",
			`Supported keys: "url", "token"`,
		},
		Err: err,
	}
}
