// Package notify delivers cmdntfy notifications to an ntfy-style HTTP endpoint.
//
// A notification is a title, a markdown message and a success/failure type.
// The type selects the ntfy priority and tag headers:
//
//   - success: X-Priority: low, X-Tags: heavy_check_mark
//   - failure: X-Priority: high, X-Tags: rotating_light
//
// Delivery is a single synchronous POST with no retries and no timeout. Any
// HTTP response counts as delivered; only transport-level failures (bad URL,
// DNS, connection, TLS, invalid header values) are reported as errors.
//
// # Usage
//
//	sender := notify.NewHTTPSender(cfg.URL, cfg.Token, logger)
//	handler := notify.NewHandler(sender, logger)
//	err := handler.OnCommandComplete(ctx, "make", stdout, stderr, exitCode)
package notify
