package mocks

import (
	"sync"

	"github.com/you/runmate/domain"
)

// MockSMSGateway implements domain.SMSGateway interface for testing.
// Sent messages are recorded for assertions.
type MockSMSGateway struct {
	SendSMSFunc func(to, message string) error

	mu   sync.Mutex
	sent []SentSMS
}

// SentSMS is one recorded outbound message
type SentSMS struct {
	To      string
	Message string
}

var _ domain.SMSGateway = (*MockSMSGateway)(nil)

// NewMockSMSGateway creates a new MockSMSGateway with default behaviors
func NewMockSMSGateway() *MockSMSGateway {
	return &MockSMSGateway{}
}

func (m *MockSMSGateway) SendSMS(to, message string) error {
	m.mu.Lock()
	m.sent = append(m.sent, SentSMS{To: to, Message: message})
	m.mu.Unlock()
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	// Default behavior: success
	return nil
}

// Sent returns a copy of all recorded messages
func (m *MockSMSGateway) Sent() []SentSMS {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentSMS, len(m.sent))
	copy(out, m.sent)
	return out
}
