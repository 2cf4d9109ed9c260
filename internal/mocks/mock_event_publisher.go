package mocks

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/you/runmate/domain"
)

// MockEventPublisher implements domain.EventPublisher interface for testing.
// Published events are recorded for assertions.
type MockEventPublisher struct {
	PublishJSONFunc func(ctx context.Context, key string, v any) error

	mu        sync.Mutex
	published []PublishedEvent
}

// PublishedEvent is one recorded event
type PublishedEvent struct {
	Key  string
	Body []byte
}

var _ domain.EventPublisher = (*MockEventPublisher)(nil)

// NewMockEventPublisher creates a new MockEventPublisher with default behaviors
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

func (m *MockEventPublisher) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.published = append(m.published, PublishedEvent{Key: key, Body: b})
	m.mu.Unlock()
	if m.PublishJSONFunc != nil {
		return m.PublishJSONFunc(ctx, key, v)
	}
	// Default behavior: success
	return nil
}

// Published returns a copy of all recorded events
func (m *MockEventPublisher) Published() []PublishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PublishedEvent, len(m.published))
	copy(out, m.published)
	return out
}
