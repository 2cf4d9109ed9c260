package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/you/runmate/domain"
	"github.com/you/runmate/internal/mocks"
)

func newTestOTPService(store domain.OTPStore, sms domain.SMSGateway) domain.OTPService {
	return NewOTPService(store, sms, OTPConfig{
		TTL:          5 * time.Minute,
		MaxAttempts:  3,
		ResendWindow: time.Minute,
	})
}

func TestOTPService_RequestAndVerify(t *testing.T) {
	store := mocks.NewMemoryOTPStore()
	sms := mocks.NewMockSMSGateway()
	svc := newTestOTPService(store, sms)
	ctx := context.Background()

	req, err := svc.Request(ctx, "+15551230001")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if len(req.Code) != 6 {
		t.Errorf("expected 6-digit code, got %q", req.Code)
	}
	if got := sms.Sent(); len(got) != 1 || got[0].To != "+15551230001" {
		t.Errorf("expected one SMS to the requester, got %+v", got)
	}

	if err := svc.Verify(ctx, "+15551230001", req.Code); err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	// One-time use: the same code must not verify twice.
	if err := svc.Verify(ctx, "+15551230001", req.Code); !errors.Is(err, domain.ErrOTPInvalid) {
		t.Errorf("expected ErrOTPInvalid on reuse, got %v", err)
	}
}

func TestOTPService_WrongCode(t *testing.T) {
	store := mocks.NewMemoryOTPStore()
	svc := newTestOTPService(store, mocks.NewMockSMSGateway())
	ctx := context.Background()

	req, err := svc.Request(ctx, "+15551230002")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if err := svc.Verify(ctx, "+15551230002", "000000"); !errors.Is(err, domain.ErrOTPInvalid) {
		t.Errorf("expected ErrOTPInvalid, got %v", err)
	}

	// A single wrong guess must not burn the code.
	if err := svc.Verify(ctx, "+15551230002", req.Code); err != nil {
		t.Errorf("correct code rejected after one wrong guess: %v", err)
	}
}

func TestOTPService_MaxAttempts(t *testing.T) {
	store := mocks.NewMemoryOTPStore()
	svc := newTestOTPService(store, mocks.NewMockSMSGateway())
	ctx := context.Background()

	req, err := svc.Request(ctx, "+15551230003")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := svc.Verify(ctx, "+15551230003", "000000"); !errors.Is(err, domain.ErrOTPInvalid) {
			t.Fatalf("attempt %d: expected ErrOTPInvalid, got %v", i+1, err)
		}
	}

	// Over the cap the code is consumed even if the guess is right.
	if err := svc.Verify(ctx, "+15551230003", req.Code); !errors.Is(err, domain.ErrOTPMaxAttempts) {
		t.Errorf("expected ErrOTPMaxAttempts, got %v", err)
	}
}

func TestOTPService_ResendThrottle(t *testing.T) {
	store := mocks.NewMemoryOTPStore()
	svc := newTestOTPService(store, mocks.NewMockSMSGateway())
	ctx := context.Background()

	if _, err := svc.Request(ctx, "+15551230004"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if _, err := svc.Request(ctx, "+15551230004"); !errors.Is(err, domain.ErrOTPResendWait) {
		t.Fatalf("expected ErrOTPResendWait inside the window, got %v", err)
	}

	store.Advance(2 * time.Minute)
	if _, err := svc.Request(ctx, "+15551230004"); err != nil {
		t.Errorf("request after window failed: %v", err)
	}
}

func TestOTPService_ReissueInvalidatesPrevious(t *testing.T) {
	store := mocks.NewMemoryOTPStore()
	svc := newTestOTPService(store, mocks.NewMockSMSGateway())
	ctx := context.Background()

	first, err := svc.Request(ctx, "+15551230005")
	if err != nil {
		t.Fatalf("first request failed: %v", err)
	}

	store.Advance(2 * time.Minute)
	second, err := svc.Request(ctx, "+15551230005")
	if err != nil {
		t.Fatalf("second request failed: %v", err)
	}

	if first.Code != second.Code {
		if err := svc.Verify(ctx, "+15551230005", first.Code); !errors.Is(err, domain.ErrOTPInvalid) {
			t.Errorf("stale code should be invalid, got %v", err)
		}
	}
	if err := svc.Verify(ctx, "+15551230005", second.Code); err != nil {
		t.Errorf("fresh code rejected: %v", err)
	}
}

func TestOTPService_Expiry(t *testing.T) {
	store := mocks.NewMemoryOTPStore()
	svc := newTestOTPService(store, mocks.NewMockSMSGateway())
	ctx := context.Background()

	req, err := svc.Request(ctx, "+15551230006")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	store.Advance(6 * time.Minute)
	if err := svc.Verify(ctx, "+15551230006", req.Code); !errors.Is(err, domain.ErrOTPInvalid) {
		t.Errorf("expected ErrOTPInvalid after expiry, got %v", err)
	}
}

func TestOTPService_SMSFailureIsNonFatal(t *testing.T) {
	store := mocks.NewMemoryOTPStore()
	sms := mocks.NewMockSMSGateway()
	sms.SendSMSFunc = func(to, message string) error {
		return errors.New("gateway down")
	}
	svc := newTestOTPService(store, sms)

	req, err := svc.Request(context.Background(), "+15551230007")
	if err != nil {
		t.Fatalf("request should survive SMS failure, got %v", err)
	}
	if err := svc.Verify(context.Background(), "+15551230007", req.Code); err != nil {
		t.Errorf("verify failed: %v", err)
	}
}
