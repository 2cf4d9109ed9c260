package mocks

import (
	"context"

	"github.com/you/runmate/domain"
)

// MockNotificationRepository implements domain.NotificationRepository interface for testing
type MockNotificationRepository struct {
	CreateFunc     func(ctx context.Context, n *domain.Notification) error
	FindByIDFunc   func(ctx context.Context, id uint) (*domain.Notification, error)
	ListByUserFunc func(ctx context.Context, userID uint, page, size int) ([]domain.Notification, int64, error)
	MarkReadFunc   func(ctx context.Context, id uint) error
}

var _ domain.NotificationRepository = (*MockNotificationRepository)(nil)

// NewMockNotificationRepository creates a new MockNotificationRepository with default behaviors
func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{}
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	// Default behavior: success
	return nil
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uint) (*domain.Notification, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrNotificationNotFound
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID uint, page, size int) ([]domain.Notification, int64, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, page, size)
	}
	// Default behavior: empty
	return nil, 0, nil
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id uint) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}
