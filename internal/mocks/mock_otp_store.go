package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/you/runmate/domain"
)

// MemoryOTPStore is an in-memory domain.OTPStore with real TTL semantics.
// Now is swappable so tests can move time forward without sleeping.
type MemoryOTPStore struct {
	mu       sync.Mutex
	codes    map[string]entry
	attempts map[string]counter
	resends  map[string]time.Time

	Now func() time.Time
}

type entry struct {
	code      string
	expiresAt time.Time
}

type counter struct {
	n         int64
	expiresAt time.Time
}

var _ domain.OTPStore = (*MemoryOTPStore)(nil)

// NewMemoryOTPStore creates an empty in-memory OTP store
func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{
		codes:    make(map[string]entry),
		attempts: make(map[string]counter),
		resends:  make(map[string]time.Time),
		Now:      time.Now,
	}
}

// Advance shifts the store's clock forward by d
func (s *MemoryOTPStore) Advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	base := s.Now
	s.Now = func() time.Time { return base().Add(d) }
}

func (s *MemoryOTPStore) SaveCode(ctx context.Context, phone, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[phone] = entry{code: code, expiresAt: s.Now().Add(ttl)}
	delete(s.attempts, phone)
	return nil
}

func (s *MemoryOTPStore) GetCode(ctx context.Context, phone string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.codes[phone]
	if !ok || s.Now().After(e.expiresAt) {
		delete(s.codes, phone)
		return "", domain.ErrOTPNotFound
	}
	return e.code, nil
}

func (s *MemoryOTPStore) DeleteCode(ctx context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, phone)
	delete(s.attempts, phone)
	return nil
}

func (s *MemoryOTPStore) IncrAttempts(ctx context.Context, phone string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.attempts[phone]
	if !ok || s.Now().After(c.expiresAt) {
		c = counter{n: 0, expiresAt: s.Now().Add(ttl)}
	}
	c.n++
	s.attempts[phone] = c
	return c.n, nil
}

func (s *MemoryOTPStore) SetResendWindow(ctx context.Context, phone string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resends[phone] = s.Now().Add(ttl)
	return nil
}

func (s *MemoryOTPStore) ResendTTL(ctx context.Context, phone string) (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.resends[phone]
	if !ok {
		return 0, nil
	}
	left := until.Sub(s.Now())
	if left <= 0 {
		delete(s.resends, phone)
		return 0, nil
	}
	return left, nil
}
