package mocks

import (
	"context"

	"github.com/you/runmate/domain"
)

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	NotifyInterestFunc func(ctx context.Context, card *domain.RunnerCard, from *domain.User) (*domain.Notification, error)
	NotifyJoinFunc     func(ctx context.Context, run *domain.JointRun, joiner *domain.User) (*domain.Notification, error)
	ListForUserFunc    func(ctx context.Context, userID uint, page, size int) ([]domain.Notification, int64, error)
	MarkReadFunc       func(ctx context.Context, userID, notificationID uint) (*domain.Notification, error)
}

var _ domain.NotificationService = (*MockNotificationService)(nil)

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

func (m *MockNotificationService) NotifyInterest(ctx context.Context, card *domain.RunnerCard, from *domain.User) (*domain.Notification, error) {
	if m.NotifyInterestFunc != nil {
		return m.NotifyInterestFunc(ctx, card, from)
	}
	// Default behavior: recorded
	return &domain.Notification{UserID: card.UserID, RefType: domain.RefRunnerCard, RefID: card.ID}, nil
}

func (m *MockNotificationService) NotifyJoin(ctx context.Context, run *domain.JointRun, joiner *domain.User) (*domain.Notification, error) {
	if m.NotifyJoinFunc != nil {
		return m.NotifyJoinFunc(ctx, run, joiner)
	}
	// Default behavior: recorded
	return &domain.Notification{UserID: run.CreatorID, RefType: domain.RefJointRun, RefID: run.ID}, nil
}

func (m *MockNotificationService) ListForUser(ctx context.Context, userID uint, page, size int) ([]domain.Notification, int64, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID, page, size)
	}
	// Default behavior: empty
	return nil, 0, nil
}

func (m *MockNotificationService) MarkRead(ctx context.Context, userID, notificationID uint) (*domain.Notification, error) {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, userID, notificationID)
	}
	// Default behavior: not found
	return nil, domain.ErrNotificationNotFound
}
