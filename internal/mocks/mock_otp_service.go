package mocks

import (
	"context"
	"time"

	"github.com/you/runmate/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	RequestFunc func(ctx context.Context, phone string) (*domain.OTPRequest, error)
	VerifyFunc  func(ctx context.Context, phone, code string) error
}

var _ domain.OTPService = (*MockOTPService)(nil)

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

func (m *MockOTPService) Request(ctx context.Context, phone string) (*domain.OTPRequest, error) {
	if m.RequestFunc != nil {
		return m.RequestFunc(ctx, phone)
	}
	// Default behavior: issued
	return &domain.OTPRequest{Phone: phone, ExpiresAt: time.Now().Add(5 * time.Minute)}, nil
}

func (m *MockOTPService) Verify(ctx context.Context, phone, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, phone, code)
	}
	// Default behavior: accepted
	return nil
}
