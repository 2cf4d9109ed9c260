package mocks

import (
	"context"

	"github.com/you/runmate/domain"
)

// MockRunnerCardRepository implements domain.RunnerCardRepository interface for testing
type MockRunnerCardRepository struct {
	CreateFunc   func(ctx context.Context, card *domain.RunnerCard) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.RunnerCard, error)
	ListFunc     func(ctx context.Context, location string, page, size int) ([]domain.RunnerCard, int64, error)
	UpdateFunc   func(ctx context.Context, card *domain.RunnerCard) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

var _ domain.RunnerCardRepository = (*MockRunnerCardRepository)(nil)

// NewMockRunnerCardRepository creates a new MockRunnerCardRepository with default behaviors
func NewMockRunnerCardRepository() *MockRunnerCardRepository {
	return &MockRunnerCardRepository{}
}

func (m *MockRunnerCardRepository) Create(ctx context.Context, card *domain.RunnerCard) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, card)
	}
	// Default behavior: success
	return nil
}

func (m *MockRunnerCardRepository) FindByID(ctx context.Context, id uint) (*domain.RunnerCard, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrCardNotFound
}

func (m *MockRunnerCardRepository) List(ctx context.Context, location string, page, size int) ([]domain.RunnerCard, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, location, page, size)
	}
	// Default behavior: empty
	return nil, 0, nil
}

func (m *MockRunnerCardRepository) Update(ctx context.Context, card *domain.RunnerCard) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, card)
	}
	// Default behavior: success
	return nil
}

func (m *MockRunnerCardRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}
