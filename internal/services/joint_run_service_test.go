package services

import (
	"context"
	"errors"
	"testing"

	"github.com/you/runmate/domain"
	"github.com/you/runmate/internal/mocks"
)

func testRun() *domain.JointRun {
	return &domain.JointRun{ID: 5, CreatorID: 1, Title: "Morning 10k", Location: "Riverside", MaxParticipants: 3}
}

func TestJointRunService_Join(t *testing.T) {
	tests := []struct {
		name          string
		callerID      uint
		status        string
		setupMocks    func(*mocks.MockJointRunRepository, *mocks.MockUserRepository, *mocks.MockNotificationService)
		expectedError error
		wantNotify    bool
	}{
		{
			name:     "join with default status",
			callerID: 2,
			setupMocks: func(runRepo *mocks.MockJointRunRepository, userRepo *mocks.MockUserRepository, _ *mocks.MockNotificationService) {
				runRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.JointRun, error) { return testRun(), nil }
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return &domain.User{ID: id, Name: "Kim"}, nil
				}
			},
			wantNotify: true,
		},
		{
			name:     "duplicate join",
			callerID: 2,
			setupMocks: func(runRepo *mocks.MockJointRunRepository, _ *mocks.MockUserRepository, _ *mocks.MockNotificationService) {
				runRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.JointRun, error) { return testRun(), nil }
				runRepo.AddParticipantFunc = func(ctx context.Context, p *domain.JointRunParticipant) error {
					return domain.ErrAlreadyJoined
				}
			},
			expectedError: domain.ErrAlreadyJoined,
		},
		{
			name:     "run at capacity",
			callerID: 2,
			setupMocks: func(runRepo *mocks.MockJointRunRepository, _ *mocks.MockUserRepository, _ *mocks.MockNotificationService) {
				runRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.JointRun, error) { return testRun(), nil }
				runRepo.CountParticipantsFunc = func(ctx context.Context, runID uint) (int64, error) { return 3, nil }
			},
			expectedError: domain.ErrRunFull,
		},
		{
			name:          "unknown status",
			callerID:      2,
			status:        "maybe",
			setupMocks:    func(*mocks.MockJointRunRepository, *mocks.MockUserRepository, *mocks.MockNotificationService) {},
			expectedError: domain.ErrInvalidStatus,
		},
		{
			name:          "run not found",
			callerID:      2,
			setupMocks:    func(*mocks.MockJointRunRepository, *mocks.MockUserRepository, *mocks.MockNotificationService) {},
			expectedError: domain.ErrRunNotFound,
		},
		{
			name:     "creator joining own run skips notification",
			callerID: 1,
			setupMocks: func(runRepo *mocks.MockJointRunRepository, _ *mocks.MockUserRepository, _ *mocks.MockNotificationService) {
				runRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.JointRun, error) { return testRun(), nil }
			},
			wantNotify: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runRepo := mocks.NewMockJointRunRepository()
			userRepo := mocks.NewMockUserRepository()
			notificationSvc := mocks.NewMockNotificationService()
			notified := false
			notificationSvc.NotifyJoinFunc = func(ctx context.Context, run *domain.JointRun, joiner *domain.User) (*domain.Notification, error) {
				notified = true
				return &domain.Notification{UserID: run.CreatorID}, nil
			}
			tt.setupMocks(runRepo, userRepo, notificationSvc)

			svc := NewJointRunService(runRepo, userRepo, notificationSvc)
			p, err := svc.Join(context.Background(), tt.callerID, 5, tt.status)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("join failed: %v", err)
			}
			if p.Status != domain.ParticipantInterested {
				t.Errorf("expected default status interested, got %q", p.Status)
			}
			if notified != tt.wantNotify {
				t.Errorf("notify = %t, want %t", notified, tt.wantNotify)
			}
		})
	}
}

func TestJointRunService_Join_NotificationFailureDoesNotUndoJoin(t *testing.T) {
	runRepo := mocks.NewMockJointRunRepository()
	runRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.JointRun, error) { return testRun(), nil }
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return &domain.User{ID: id}, nil
	}
	notificationSvc := mocks.NewMockNotificationService()
	notificationSvc.NotifyJoinFunc = func(ctx context.Context, run *domain.JointRun, joiner *domain.User) (*domain.Notification, error) {
		return nil, errors.New("store down")
	}

	svc := NewJointRunService(runRepo, userRepo, notificationSvc)
	if _, err := svc.Join(context.Background(), 2, 5, ""); err != nil {
		t.Fatalf("join must succeed despite notification failure, got %v", err)
	}
}

func TestJointRunService_UpdateOwnership(t *testing.T) {
	runRepo := mocks.NewMockJointRunRepository()
	runRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.JointRun, error) { return testRun(), nil }
	svc := NewJointRunService(runRepo, mocks.NewMockUserRepository(), mocks.NewMockNotificationService())

	if _, err := svc.Update(context.Background(), 2, &domain.JointRun{ID: 5, Title: "Hijacked"}); !errors.Is(err, domain.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner for non-creator update, got %v", err)
	}
	if err := svc.Delete(context.Background(), 2, 5); !errors.Is(err, domain.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner for non-creator delete, got %v", err)
	}
}

func TestJointRunService_UpdateStatus(t *testing.T) {
	runRepo := mocks.NewMockJointRunRepository()
	var gotStatus string
	runRepo.UpdateParticipantStatusFunc = func(ctx context.Context, runID, userID uint, status string) error {
		gotStatus = status
		return nil
	}
	runRepo.FindParticipantFunc = func(ctx context.Context, runID, userID uint) (*domain.JointRunParticipant, error) {
		return &domain.JointRunParticipant{JointRunID: runID, UserID: userID, Status: gotStatus}, nil
	}
	svc := NewJointRunService(runRepo, mocks.NewMockUserRepository(), mocks.NewMockNotificationService())

	p, err := svc.UpdateStatus(context.Background(), 2, 5, domain.ParticipantGoing)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if p.Status != domain.ParticipantGoing {
		t.Errorf("expected going, got %q", p.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), 2, 5, "walking"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestJointRunService_Participants_RunMustExist(t *testing.T) {
	svc := NewJointRunService(mocks.NewMockJointRunRepository(), mocks.NewMockUserRepository(), mocks.NewMockNotificationService())
	if _, err := svc.Participants(context.Background(), 99); !errors.Is(err, domain.ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}
