package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// ntfy request headers
const (
	HeaderMarkdown      = "X-Markdown"
	HeaderTitle         = "X-Title"
	HeaderPriority      = "X-Priority"
	HeaderTags          = "X-Tags"
	HeaderAuthorization = "Authorization"
)

// Sender delivers a single notification.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// TransportError reports that a notification could not be sent or that no
// response was received. HTTP error statuses are not transport errors.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to send message to %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPSender posts notifications to an ntfy topic URL.
type HTTPSender struct {
	url    string
	token  string
	client *http.Client
	logger *slog.Logger
}

// NewHTTPSender creates a sender for url. An empty token sends
// unauthenticated requests. The client has no timeout.
func NewHTTPSender(url, token string, logger *slog.Logger) *HTTPSender {
	return NewHTTPSenderWithClient(url, token, &http.Client{}, logger)
}

// NewHTTPSenderWithClient creates a sender with a custom HTTP client (for testing).
func NewHTTPSenderWithClient(url, token string, client *http.Client, logger *slog.Logger) *HTTPSender {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &HTTPSender{url: url, token: token, client: client, logger: logger}
}

// Send issues one POST with the message as body. Any response counts as
// delivered; the status code is logged but not checked.
func (s *HTTPSender) Send(ctx context.Context, n Notification) error {
	header, err := s.buildHeader(n)
	if err != nil {
		return &TransportError{URL: s.url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, strings.NewReader(n.Message))
	if err != nil {
		return &TransportError{URL: s.url, Err: err}
	}
	req.Header = header

	resp, err := s.client.Do(req)
	if err != nil {
		return &TransportError{URL: s.url, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	s.logger.DebugContext(ctx, "notification sent",
		"title", n.Title,
		"type", n.NotificationType,
		"status", resp.StatusCode,
	)
	if resp.StatusCode >= http.StatusBadRequest {
		s.logger.WarnContext(ctx, "notification endpoint returned an error status", "status", resp.Status)
	}

	return nil
}

func (s *HTTPSender) buildHeader(n Notification) (http.Header, error) {
	header := http.Header{}
	header.Set(HeaderMarkdown, "yes")
	header.Set(HeaderTitle, n.Title)
	header.Set(HeaderPriority, string(n.Priority()))
	header.Set(HeaderTags, n.Tag())

	if s.token != "" {
		header.Set(HeaderAuthorization, "Bearer "+s.token)
	}

	for name, values := range header {
		for _, v := range values {
			if !httpguts.ValidHeaderFieldValue(v) {
				return nil, fmt.Errorf("invalid value for header %s: %q", name, v)
			}
		}
	}

	return header, nil
}
