package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/you/runmate/domain"
)

// OTPServiceImpl implements domain.OTPService on an external OTPStore
type OTPServiceImpl struct {
	store  domain.OTPStore
	sms    domain.SMSGateway
	config OTPConfig
}

type OTPConfig struct {
	TTL          time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(store domain.OTPStore, sms domain.SMSGateway, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		store:  store,
		sms:    sms,
		config: config,
	}
}

// Request issues a fresh code for the phone number. Any previously pending
// code is overwritten and thereby invalidated. SMS dispatch is best effort:
// a gateway failure is logged and does not fail the request.
func (s *OTPServiceImpl) Request(ctx context.Context, phone string) (*domain.OTPRequest, error) {
	if wait, err := s.store.ResendTTL(ctx, phone); err != nil {
		return nil, err
	} else if wait > 0 {
		return nil, fmt.Errorf("%w: retry in %d seconds", domain.ErrOTPResendWait, int(wait.Seconds()))
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	if err := s.store.SaveCode(ctx, phone, code, s.config.TTL); err != nil {
		return nil, err
	}
	if err := s.store.SetResendWindow(ctx, phone, s.config.ResendWindow); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Your verification code is: %s. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))
	if err := s.sms.SendSMS(phone, message); err != nil {
		log.Printf("OTP_SMS_FAILED: phone=%s error=%v", phone, err)
	}

	return &domain.OTPRequest{
		Phone:     phone,
		Code:      code,
		ExpiresAt: time.Now().Add(s.config.TTL),
		Attempts:  0,
	}, nil
}

// Verify checks the submitted code against the pending one and consumes it
// on success. An absent or expired code and a mismatch are reported the same
// way so callers cannot tell which it was.
func (s *OTPServiceImpl) Verify(ctx context.Context, phone, code string) error {
	attempts, err := s.store.IncrAttempts(ctx, phone, s.config.TTL)
	if err != nil {
		return err
	}
	if attempts > int64(s.config.MaxAttempts) {
		s.store.DeleteCode(ctx, phone)
		return domain.ErrOTPMaxAttempts
	}

	stored, err := s.store.GetCode(ctx, phone)
	if err == domain.ErrOTPNotFound {
		return domain.ErrOTPInvalid
	}
	if err != nil {
		return err
	}

	if stored != code {
		return domain.ErrOTPInvalid
	}

	// One-time use: consume before reporting success.
	if err := s.store.DeleteCode(ctx, phone); err != nil {
		return err
	}
	return nil
}

// generateCode draws a 6-digit code uniform over 100000-999999.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
