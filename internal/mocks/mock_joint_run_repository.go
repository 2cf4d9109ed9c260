package mocks

import (
	"context"

	"github.com/you/runmate/domain"
)

// MockJointRunRepository implements domain.JointRunRepository interface for testing
type MockJointRunRepository struct {
	CreateFunc   func(ctx context.Context, run *domain.JointRun) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.JointRun, error)
	ListFunc     func(ctx context.Context, page, size int) ([]domain.JointRun, int64, error)
	UpdateFunc   func(ctx context.Context, run *domain.JointRun) error
	DeleteFunc   func(ctx context.Context, id uint) error

	AddParticipantFunc          func(ctx context.Context, p *domain.JointRunParticipant) error
	RemoveParticipantFunc       func(ctx context.Context, runID, userID uint) error
	FindParticipantFunc         func(ctx context.Context, runID, userID uint) (*domain.JointRunParticipant, error)
	ListParticipantsFunc        func(ctx context.Context, runID uint) ([]domain.JointRunParticipant, error)
	UpdateParticipantStatusFunc func(ctx context.Context, runID, userID uint, status string) error
	CountParticipantsFunc       func(ctx context.Context, runID uint) (int64, error)
}

var _ domain.JointRunRepository = (*MockJointRunRepository)(nil)

// NewMockJointRunRepository creates a new MockJointRunRepository with default behaviors
func NewMockJointRunRepository() *MockJointRunRepository {
	return &MockJointRunRepository{}
}

func (m *MockJointRunRepository) Create(ctx context.Context, run *domain.JointRun) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, run)
	}
	// Default behavior: success
	return nil
}

func (m *MockJointRunRepository) FindByID(ctx context.Context, id uint) (*domain.JointRun, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrRunNotFound
}

func (m *MockJointRunRepository) List(ctx context.Context, page, size int) ([]domain.JointRun, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, size)
	}
	// Default behavior: empty
	return nil, 0, nil
}

func (m *MockJointRunRepository) Update(ctx context.Context, run *domain.JointRun) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, run)
	}
	// Default behavior: success
	return nil
}

func (m *MockJointRunRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

func (m *MockJointRunRepository) AddParticipant(ctx context.Context, p *domain.JointRunParticipant) error {
	if m.AddParticipantFunc != nil {
		return m.AddParticipantFunc(ctx, p)
	}
	// Default behavior: success
	return nil
}

func (m *MockJointRunRepository) RemoveParticipant(ctx context.Context, runID, userID uint) error {
	if m.RemoveParticipantFunc != nil {
		return m.RemoveParticipantFunc(ctx, runID, userID)
	}
	// Default behavior: success
	return nil
}

func (m *MockJointRunRepository) FindParticipant(ctx context.Context, runID, userID uint) (*domain.JointRunParticipant, error) {
	if m.FindParticipantFunc != nil {
		return m.FindParticipantFunc(ctx, runID, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrParticipantNotFound
}

func (m *MockJointRunRepository) ListParticipants(ctx context.Context, runID uint) ([]domain.JointRunParticipant, error) {
	if m.ListParticipantsFunc != nil {
		return m.ListParticipantsFunc(ctx, runID)
	}
	// Default behavior: empty
	return nil, nil
}

func (m *MockJointRunRepository) UpdateParticipantStatus(ctx context.Context, runID, userID uint, status string) error {
	if m.UpdateParticipantStatusFunc != nil {
		return m.UpdateParticipantStatusFunc(ctx, runID, userID, status)
	}
	// Default behavior: success
	return nil
}

func (m *MockJointRunRepository) CountParticipants(ctx context.Context, runID uint) (int64, error) {
	if m.CountParticipantsFunc != nil {
		return m.CountParticipantsFunc(ctx, runID)
	}
	// Default behavior: empty run
	return 0, nil
}
