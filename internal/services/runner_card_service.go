package services

import (
	"context"
	"fmt"

	"github.com/you/runmate/domain"
)

// RunnerCardService handles runner card CRUD and the interest fan-out.
type RunnerCardService struct {
	cardRepo        domain.RunnerCardRepository
	userRepo        domain.UserRepository
	notificationSvc domain.NotificationService
}

// NewRunnerCardService creates a new runner card service
func NewRunnerCardService(cardRepo domain.RunnerCardRepository, userRepo domain.UserRepository, notificationSvc domain.NotificationService) *RunnerCardService {
	return &RunnerCardService{
		cardRepo:        cardRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
	}
}

func (s *RunnerCardService) Create(ctx context.Context, card *domain.RunnerCard) error {
	if err := s.cardRepo.Create(ctx, card); err != nil {
		return fmt.Errorf("failed to create runner card: %w", err)
	}
	return nil
}

func (s *RunnerCardService) Get(ctx context.Context, id uint) (*domain.RunnerCard, error) {
	return s.cardRepo.FindByID(ctx, id)
}

func (s *RunnerCardService) List(ctx context.Context, location string, page, size int) ([]domain.RunnerCard, int64, error) {
	return s.cardRepo.List(ctx, location, page, size)
}

// Update applies the changes to the caller's own card only.
func (s *RunnerCardService) Update(ctx context.Context, callerID uint, card *domain.RunnerCard) (*domain.RunnerCard, error) {
	existing, err := s.cardRepo.FindByID(ctx, card.ID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != callerID {
		return nil, domain.ErrNotOwner
	}

	existing.Location = card.Location
	existing.Days = card.Days
	existing.TimeOfDay = card.TimeOfDay
	existing.Pace = card.Pace
	existing.Note = card.Note
	existing.ContactVisible = card.ContactVisible
	if err := s.cardRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update runner card: %w", err)
	}
	return existing, nil
}

func (s *RunnerCardService) Delete(ctx context.Context, callerID, cardID uint) error {
	existing, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return err
	}
	if existing.UserID != callerID {
		return domain.ErrNotOwner
	}
	return s.cardRepo.Delete(ctx, cardID)
}

// ExpressInterest creates a notification for the card owner. Interest in
// one's own card is rejected.
func (s *RunnerCardService) ExpressInterest(ctx context.Context, callerID, cardID uint) (*domain.Notification, error) {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.UserID == callerID {
		return nil, domain.ErrSelfInterest
	}

	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	return s.notificationSvc.NotifyInterest(ctx, card, caller)
}
