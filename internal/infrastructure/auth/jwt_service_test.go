package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/you/runmate/domain"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "runmate", time.Hour, 7*24*time.Hour)

	token, err := svc.GenerateAccessToken(42, "+15551230001", "user", "session-abc")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user 42, got %d", claims.UserID)
	}
	if claims.Phone != "+15551230001" {
		t.Errorf("expected phone claim, got %q", claims.Phone)
	}
	if claims.Role != "user" {
		t.Errorf("expected role user, got %q", claims.Role)
	}
	if claims.SessionID != "session-abc" {
		t.Errorf("expected session claim, got %q", claims.SessionID)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Error("expiry must be after issuance")
	}
}

func TestJWTService_TypeConfusion(t *testing.T) {
	svc := NewJWTService("test-secret", "runmate", time.Hour, 7*24*time.Hour)

	refresh, err := svc.GenerateRefreshToken(42, "+15551230001", "user", "session-abc")
	if err != nil {
		t.Fatalf("generate refresh failed: %v", err)
	}
	if _, err := svc.ValidateAccessToken(refresh); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("refresh token must not validate as access, got %v", err)
	}
	if _, err := svc.ValidateRefreshToken(refresh); err != nil {
		t.Errorf("refresh token must validate as refresh, got %v", err)
	}

	access, err := svc.GenerateAccessToken(42, "+15551230001", "user", "session-abc")
	if err != nil {
		t.Fatalf("generate access failed: %v", err)
	}
	if _, err := svc.ValidateRefreshToken(access); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("access token must not validate as refresh, got %v", err)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	signer := NewJWTService("secret-a", "runmate", time.Hour, time.Hour)
	verifier := NewJWTService("secret-b", "runmate", time.Hour, time.Hour)

	token, err := signer.GenerateAccessToken(1, "+15551230001", "user", "s1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := verifier.ValidateAccessToken(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for foreign signature, got %v", err)
	}
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", "runmate", -time.Minute, time.Hour)

	token, err := svc.GenerateAccessToken(1, "+15551230001", "user", "s1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := svc.ValidateAccessToken(token); err == nil {
		t.Error("expected an error for an expired token")
	}
}

func TestJWTService_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", "runmate", time.Hour, time.Hour)
	if _, err := svc.ValidateAccessToken("not.a.jwt"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
