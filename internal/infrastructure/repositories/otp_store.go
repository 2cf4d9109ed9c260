package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/runmate/domain"
)

// OTPStoreImpl implements domain.OTPStore on Redis. Keys are scoped per
// phone number so a fresh issuance always overwrites the pending code.
type OTPStoreImpl struct {
	client *redis.Client
}

// NewOTPStore creates a Redis-backed OTP store
func NewOTPStore(client *redis.Client) domain.OTPStore {
	return &OTPStoreImpl{client: client}
}

func otpKey(phone string) string      { return fmt.Sprintf("otp:%s", phone) }
func attemptsKey(phone string) string { return fmt.Sprintf("otp:att:%s", phone) }
func resendKey(phone string) string   { return fmt.Sprintf("otp:res:%s", phone) }

// SaveCode stores the code with TTL and resets the attempts counter.
func (s *OTPStoreImpl) SaveCode(ctx context.Context, phone, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, otpKey(phone), code, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	if err := s.client.Set(ctx, attemptsKey(phone), 0, ttl).Err(); err != nil {
		return fmt.Errorf("failed to reset attempts counter: %w", err)
	}
	return nil
}

func (s *OTPStoreImpl) GetCode(ctx context.Context, phone string) (string, error) {
	code, err := s.client.Get(ctx, otpKey(phone)).Result()
	if err == redis.Nil {
		return "", domain.ErrOTPNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get OTP: %w", err)
	}
	return code, nil
}

func (s *OTPStoreImpl) DeleteCode(ctx context.Context, phone string) error {
	return s.client.Del(ctx, otpKey(phone), attemptsKey(phone)).Err()
}

func (s *OTPStoreImpl) IncrAttempts(ctx context.Context, phone string, ttl time.Duration) (int64, error) {
	attempts, err := s.client.Incr(ctx, attemptsKey(phone)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment attempts: %w", err)
	}
	// The counter may have been created by this Incr; give it the code's TTL
	// so it cannot outlive the code indefinitely.
	if attempts == 1 {
		s.client.Expire(ctx, attemptsKey(phone), ttl)
	}
	return attempts, nil
}

func (s *OTPStoreImpl) SetResendWindow(ctx context.Context, phone string, ttl time.Duration) error {
	return s.client.Set(ctx, resendKey(phone), 1, ttl).Err()
}

// ResendTTL returns the remaining throttle window, zero when expired.
func (s *OTPStoreImpl) ResendTTL(ctx context.Context, phone string) (time.Duration, error) {
	ttl, err := s.client.TTL(ctx, resendKey(phone)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}
	if ttl <= 0 {
		return 0, nil
	}
	return ttl, nil
}
