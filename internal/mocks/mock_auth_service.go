package mocks

import (
	"context"

	"github.com/you/runmate/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RequestOTPFunc     func(ctx context.Context, phone string) (*domain.User, error)
	VerifyOTPFunc      func(ctx context.Context, phone, code, name, password string) (*domain.User, error)
	LoginFunc          func(ctx context.Context, phone, password string) (*domain.AuthResult, error)
	RefreshTokenFunc   func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	LogoutFunc         func(ctx context.Context, sessionID string) error
	GetUserProfileFunc func(ctx context.Context, userID uint) (*domain.User, error)
}

var _ domain.AuthService = (*MockAuthService)(nil)

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) RequestOTP(ctx context.Context, phone string) (*domain.User, error) {
	if m.RequestOTPFunc != nil {
		return m.RequestOTPFunc(ctx, phone)
	}
	// Default behavior: bare user
	return &domain.User{ID: 1, Phone: phone, Role: "user", IsActive: true}, nil
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, phone, code, name, password string) (*domain.User, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, phone, code, name, password)
	}
	// Default behavior: activated user
	return &domain.User{ID: 1, Phone: phone, Name: name, Role: "user", IsActive: true, PhoneVerified: true}, nil
}

func (m *MockAuthService) Login(ctx context.Context, phone, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, phone, password)
	}
	// Default behavior: successful login
	return &domain.AuthResult{
		User:         &domain.User{ID: 1, Phone: phone, Role: "user", IsActive: true, PhoneVerified: true},
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		SessionID:    "session-1",
		ExpiresIn:    3600,
	}, nil
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken)
	}
	// Default behavior: rotated tokens
	return &domain.AuthResult{
		User:         &domain.User{ID: 1, Role: "user", IsActive: true},
		AccessToken:  "access-token-2",
		RefreshToken: "refresh-token-2",
		SessionID:    "session-1",
		ExpiresIn:    3600,
	}, nil
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}

func (m *MockAuthService) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}
