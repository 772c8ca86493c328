package notify

import "fmt"

// NotificationType represents the type of notification event
type NotificationType string

const (
	// TypeSuccess indicates a successful operation
	TypeSuccess NotificationType = "success"
	// TypeFailure indicates a failed operation
	TypeFailure NotificationType = "failure"
)

// TypeFor maps a success flag onto a NotificationType.
func TypeFor(success bool) NotificationType {
	if success {
		return TypeSuccess
	}
	return TypeFailure
}

// Priority is the value of the ntfy X-Priority header.
type Priority string

const (
	PriorityLow  Priority = "low"
	PriorityHigh Priority = "high"
)

// Tags sent in the ntfy X-Tags header; ntfy renders them as emoji.
const (
	TagSuccess = "heavy_check_mark"
	TagFailure = "rotating_light"
)

// Notification represents a single notification event to dispatch
type Notification struct {
	// Title is sent verbatim in the X-Title header
	Title string

	// Message is the markdown request body
	Message string

	// NotificationType indicates the event type: success or failure
	NotificationType NotificationType
}

// NewNotification creates a new Notification with the given parameters
func NewNotification(title, message string, notificationType NotificationType) Notification {
	return Notification{
		Title:            title,
		Message:          message,
		NotificationType: notificationType,
	}
}

// Success reports whether n is a success notification.
func (n Notification) Success() bool {
	return n.NotificationType == TypeSuccess
}

// Priority returns low for success and high for anything else.
func (n Notification) Priority() Priority {
	if n.Success() {
		return PriorityLow
	}
	return PriorityHigh
}

// Tag returns the emoji tag for the notification type.
func (n Notification) Tag() string {
	if n.Success() {
		return TagSuccess
	}
	return TagFailure
}

// SummaryTitle is the title of the end-of-run notification.
func SummaryTitle(executable string) string {
	return fmt.Sprintf("Executing command %s", executable)
}

// SummaryMessage fences stdout and stderr in separate labelled code blocks.
func SummaryMessage(stdout, stderr string) string {
	return fmt.Sprintf("stdout:\n\n```\n%s\n```\n\nstderr:\n\n```\n%s\n```", stdout, stderr)
}

// FailureMessage is the body of an alert sent when the run itself failed.
func FailureMessage(err error) string {
	return fmt.Sprintf("Error:\n %v", err)
}
