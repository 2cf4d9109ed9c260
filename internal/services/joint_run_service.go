package services

import (
	"context"
	"fmt"
	"log"

	"github.com/you/runmate/domain"
)

// JointRunService handles joint run CRUD, participation and its fan-out.
type JointRunService struct {
	runRepo         domain.JointRunRepository
	userRepo        domain.UserRepository
	notificationSvc domain.NotificationService
}

// NewJointRunService creates a new joint run service
func NewJointRunService(runRepo domain.JointRunRepository, userRepo domain.UserRepository, notificationSvc domain.NotificationService) *JointRunService {
	return &JointRunService{
		runRepo:         runRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
	}
}

func (s *JointRunService) Create(ctx context.Context, run *domain.JointRun) error {
	if err := s.runRepo.Create(ctx, run); err != nil {
		return fmt.Errorf("failed to create joint run: %w", err)
	}
	return nil
}

func (s *JointRunService) Get(ctx context.Context, id uint) (*domain.JointRun, error) {
	return s.runRepo.FindByID(ctx, id)
}

func (s *JointRunService) List(ctx context.Context, page, size int) ([]domain.JointRun, int64, error) {
	return s.runRepo.List(ctx, page, size)
}

func (s *JointRunService) Update(ctx context.Context, callerID uint, run *domain.JointRun) (*domain.JointRun, error) {
	existing, err := s.runRepo.FindByID(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	if existing.CreatorID != callerID {
		return nil, domain.ErrNotOwner
	}

	existing.Title = run.Title
	existing.Location = run.Location
	existing.Description = run.Description
	existing.ScheduledAt = run.ScheduledAt
	existing.MaxParticipants = run.MaxParticipants
	if err := s.runRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update joint run: %w", err)
	}
	return existing, nil
}

func (s *JointRunService) Delete(ctx context.Context, callerID, runID uint) error {
	existing, err := s.runRepo.FindByID(ctx, runID)
	if err != nil {
		return err
	}
	if existing.CreatorID != callerID {
		return domain.ErrNotOwner
	}
	return s.runRepo.Delete(ctx, runID)
}

// Join adds the caller as a participant. The repository's unique index turns
// a duplicate join into ErrAlreadyJoined; a capacity limit of zero means
// unlimited. The creator receives a notification unless joining themselves.
func (s *JointRunService) Join(ctx context.Context, callerID, runID uint, status string) (*domain.JointRunParticipant, error) {
	if status == "" {
		status = domain.ParticipantInterested
	}
	if !domain.ValidParticipantStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	run, err := s.runRepo.FindByID(ctx, runID)
	if err != nil {
		return nil, err
	}

	if run.MaxParticipants > 0 {
		count, err := s.runRepo.CountParticipants(ctx, runID)
		if err != nil {
			return nil, err
		}
		if count >= int64(run.MaxParticipants) {
			return nil, domain.ErrRunFull
		}
	}

	p := &domain.JointRunParticipant{
		JointRunID: runID,
		UserID:     callerID,
		Status:     status,
	}
	if err := s.runRepo.AddParticipant(ctx, p); err != nil {
		return nil, err
	}

	if run.CreatorID != callerID {
		joiner, err := s.userRepo.FindByID(ctx, callerID)
		if err == nil {
			// Fan-out is fire and forget; a failed notification row does not
			// undo the join.
			if _, nerr := s.notificationSvc.NotifyJoin(ctx, run, joiner); nerr != nil {
				log.Printf("JOIN_NOTIFY_FAILED: run=%d joiner=%d error=%v", runID, callerID, nerr)
			}
		}
	}

	return p, nil
}

func (s *JointRunService) Leave(ctx context.Context, callerID, runID uint) error {
	return s.runRepo.RemoveParticipant(ctx, runID, callerID)
}

func (s *JointRunService) Participants(ctx context.Context, runID uint) ([]domain.JointRunParticipant, error) {
	if _, err := s.runRepo.FindByID(ctx, runID); err != nil {
		return nil, err
	}
	return s.runRepo.ListParticipants(ctx, runID)
}

// UpdateStatus changes the caller's own participation status.
func (s *JointRunService) UpdateStatus(ctx context.Context, callerID, runID uint, status string) (*domain.JointRunParticipant, error) {
	if !domain.ValidParticipantStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	if err := s.runRepo.UpdateParticipantStatus(ctx, runID, callerID, status); err != nil {
		return nil, err
	}
	return s.runRepo.FindParticipant(ctx, runID, callerID)
}
