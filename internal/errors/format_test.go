package errors

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	t.Run("nil error returns empty string", func(t *testing.T) {
		t.Parallel()
		if result := FormatError(nil); result != "" {
			t.Errorf("Expected empty string, got %q", result)
		}
	})

	t.Run("non-CLI error", func(t *testing.T) {
		t.Parallel()
		result := format(fmt.Errorf("boom"), fmt.Sprint)
		if result != "Error: boom\n" {
			t.Errorf("Expected 'Error: boom', got %q", result)
		}
	})

	t.Run("missing url", func(t *testing.T) {
		t.Parallel()
		result := format(MissingURL("cmdntfy [OPTIONS] <CMD_ARGS>..."), fmt.Sprint)

		for _, want := range []string{
			"Configuration Error: no url provided",
			"Usage: cmdntfy [OPTIONS] <CMD_ARGS>...",
			"To fix this:",
			"NTFY_URL",
		} {
			if !strings.Contains(result, want) {
				t.Errorf("Expected output to contain %q, got:\n%s", want, result)
			}
		}
	})
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, Wrap(fmt.Errorf("spawn failed"), Runtime))

	if !strings.Contains(buf.String(), "Runtime Error") {
		t.Errorf("Expected output to contain 'Runtime Error', got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "spawn failed") {
		t.Errorf("Expected output to contain message, got %q", buf.String())
	}
}
