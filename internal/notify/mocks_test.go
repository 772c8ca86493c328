// Package notify provides a recording Sender for handler tests.
// Related: internal/notify/sender.go
// Tags: notify, mocks, testing

package notify

import (
	"context"
	"sync"
)

// MockSender records every notification and returns a configurable error.
type MockSender struct {
	mu sync.Mutex

	SendError error
	Calls     []Notification
}

// NewMockSender creates a new mock sender that always succeeds
func NewMockSender() *MockSender {
	return &MockSender{Calls: make([]Notification, 0)}
}

// WithSendError configures the mock to return err from Send
func (m *MockSender) WithSendError(err error) *MockSender {
	m.SendError = err
	return m
}

// Send records n and returns the configured error
func (m *MockSender) Send(_ context.Context, n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, n)
	return m.SendError
}

// CallCount returns the number of Send calls
func (m *MockSender) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Last returns the most recent notification
func (m *MockSender) Last() Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[len(m.Calls)-1]
}

var _ Sender = (*MockSender)(nil)
