package notify

import (
	"context"
	"log/slog"
)

// Handler wraps a Sender with the two points at which cmdntfy notifies:
// a best-effort alert when the run cannot complete, and the end-of-run summary.
type Handler struct {
	sender Sender
	logger *slog.Logger
}

// NewHandler creates a new notification handler around sender.
func NewHandler(sender Sender, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{sender: sender, logger: logger}
}

// OnFailure sends a failure alert describing cause. Delivery is best-effort:
// a send error is logged and dropped so it cannot mask cause.
func (h *Handler) OnFailure(ctx context.Context, title string, cause error) {
	n := NewNotification(title, FailureMessage(cause), TypeFailure)
	if err := h.sender.Send(ctx, n); err != nil {
		h.logger.WarnContext(ctx, "failed to send failure alert", "title", title, "error", err)
	}
}

// OnCommandComplete sends the result summary for executable. The notification
// is a success only when exitCode is 0. Send errors are returned.
func (h *Handler) OnCommandComplete(ctx context.Context, executable, stdout, stderr string, exitCode int) error {
	n := NewNotification(
		SummaryTitle(executable),
		SummaryMessage(stdout, stderr),
		TypeFor(exitCode == 0),
	)
	return h.sender.Send(ctx, n)
}
