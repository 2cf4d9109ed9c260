package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	ActivatePhone(ctx context.Context, userID uint) error
}

// RunnerCardRepository defines runner card data access operations
type RunnerCardRepository interface {
	Create(ctx context.Context, card *RunnerCard) error
	FindByID(ctx context.Context, id uint) (*RunnerCard, error)
	List(ctx context.Context, location string, page, size int) ([]RunnerCard, int64, error)
	Update(ctx context.Context, card *RunnerCard) error
	Delete(ctx context.Context, id uint) error
}

// JointRunRepository defines joint run and participant data access operations
type JointRunRepository interface {
	Create(ctx context.Context, run *JointRun) error
	FindByID(ctx context.Context, id uint) (*JointRun, error)
	List(ctx context.Context, page, size int) ([]JointRun, int64, error)
	Update(ctx context.Context, run *JointRun) error
	Delete(ctx context.Context, id uint) error

	AddParticipant(ctx context.Context, p *JointRunParticipant) error
	RemoveParticipant(ctx context.Context, runID, userID uint) error
	FindParticipant(ctx context.Context, runID, userID uint) (*JointRunParticipant, error)
	ListParticipants(ctx context.Context, runID uint) ([]JointRunParticipant, error)
	UpdateParticipantStatus(ctx context.Context, runID, userID uint, status string) error
	CountParticipants(ctx context.Context, runID uint) (int64, error)
}

// NotificationRepository defines notification data access operations
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	FindByID(ctx context.Context, id uint) (*Notification, error)
	ListByUser(ctx context.Context, userID uint, page, size int) ([]Notification, int64, error)
	MarkRead(ctx context.Context, id uint) error
}

// SubscriptionRepository defines subscription data access operations
type SubscriptionRepository interface {
	FindByUser(ctx context.Context, userID uint) (*Subscription, error)
	Upsert(ctx context.Context, sub *Subscription) error
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// OTPStore holds pending one-time codes keyed by phone number with TTL
// semantics. Backed by an external cache so multiple instances share state.
type OTPStore interface {
	SaveCode(ctx context.Context, phone, code string, ttl time.Duration) error
	GetCode(ctx context.Context, phone string) (string, error)
	DeleteCode(ctx context.Context, phone string) error
	IncrAttempts(ctx context.Context, phone string, ttl time.Duration) (int64, error)
	SetResendWindow(ctx context.Context, phone string, ttl time.Duration) error
	ResendTTL(ctx context.Context, phone string) (time.Duration, error)
}

// OTPService defines the OTP issuance and verification flow
type OTPService interface {
	Request(ctx context.Context, phone string) (*OTPRequest, error)
	Verify(ctx context.Context, phone, code string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	RequestOTP(ctx context.Context, phone string) (*User, error)
	VerifyOTP(ctx context.Context, phone, code, name, password string) (*User, error)
	Login(ctx context.Context, phone, password string) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	GetUserProfile(ctx context.Context, userID uint) (*User, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(userID uint, phone, role, sessionID string) (string, error)
	GenerateRefreshToken(userID uint, phone, role, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// SMSGateway dispatches text messages to phone numbers
type SMSGateway interface {
	SendSMS(to, message string) error
}

// EventPublisher publishes domain events for async delivery
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// NotificationService records notifications for users and fans out events
type NotificationService interface {
	NotifyInterest(ctx context.Context, card *RunnerCard, from *User) (*Notification, error)
	NotifyJoin(ctx context.Context, run *JointRun, joiner *User) (*Notification, error)
	ListForUser(ctx context.Context, userID uint, page, size int) ([]Notification, int64, error)
	MarkRead(ctx context.Context, userID, notificationID uint) (*Notification, error)
}
