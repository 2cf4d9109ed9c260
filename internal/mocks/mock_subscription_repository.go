package mocks

import (
	"context"

	"github.com/you/runmate/domain"
)

// MockSubscriptionRepository implements domain.SubscriptionRepository interface for testing
type MockSubscriptionRepository struct {
	FindByUserFunc func(ctx context.Context, userID uint) (*domain.Subscription, error)
	UpsertFunc     func(ctx context.Context, sub *domain.Subscription) error
}

var _ domain.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

// NewMockSubscriptionRepository creates a new MockSubscriptionRepository with default behaviors
func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{}
}

func (m *MockSubscriptionRepository) FindByUser(ctx context.Context, userID uint) (*domain.Subscription, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrSubscriptionNotFound
}

func (m *MockSubscriptionRepository) Upsert(ctx context.Context, sub *domain.Subscription) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, sub)
	}
	// Default behavior: success
	return nil
}
