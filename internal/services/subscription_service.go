package services

import (
	"context"
	"fmt"
	"time"

	"github.com/you/runmate/domain"
)

// Subscription plans and statuses.
const (
	PlanFree    = "free"
	PlanPremium = "premium"

	SubscriptionActive = "active"
)

// SubscriptionService handles the per-user subscription record.
type SubscriptionService struct {
	subRepo domain.SubscriptionRepository
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(subRepo domain.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subRepo: subRepo}
}

func (s *SubscriptionService) Get(ctx context.Context, userID uint) (*domain.Subscription, error) {
	return s.subRepo.FindByUser(ctx, userID)
}

// Set upserts the caller's subscription; the unique index on user_id keeps
// the one-to-one invariant.
func (s *SubscriptionService) Set(ctx context.Context, userID uint, plan string) (*domain.Subscription, error) {
	if plan != PlanFree && plan != PlanPremium {
		return nil, fmt.Errorf("unknown plan %q", plan)
	}

	sub := &domain.Subscription{
		UserID:    userID,
		Plan:      plan,
		Status:    SubscriptionActive,
		ExpiresAt: time.Now().AddDate(0, 1, 0),
	}
	if err := s.subRepo.Upsert(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return sub, nil
}
