package services

import (
	"context"
	"fmt"
	"log"

	"github.com/you/runmate/domain"
	"github.com/you/runmate/internal/pkg/id"
)

// NotificationServiceImpl implements domain.NotificationService. Persistence
// is the contract; the published event is best effort and a broker failure
// never fails the triggering API call.
type NotificationServiceImpl struct {
	repo      domain.NotificationRepository
	publisher domain.EventPublisher
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo domain.NotificationRepository, publisher domain.EventPublisher) domain.NotificationService {
	return &NotificationServiceImpl{repo: repo, publisher: publisher}
}

// NotifyInterest records a notification for the card owner.
func (s *NotificationServiceImpl) NotifyInterest(ctx context.Context, card *domain.RunnerCard, from *domain.User) (*domain.Notification, error) {
	n := &domain.Notification{
		UserID:  card.UserID,
		Message: fmt.Sprintf("%s is interested in your running schedule in %s", displayName(from), card.Location),
		RefType: domain.RefRunnerCard,
		RefID:   card.ID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	s.publish(ctx, domain.RKInterestCreated, domain.InterestCreated{
		EventID:      id.New(),
		CardID:       card.ID,
		OwnerID:      card.UserID,
		InterestedID: from.ID,
		Message:      n.Message,
	})
	return n, nil
}

// NotifyJoin records a notification for the run creator.
func (s *NotificationServiceImpl) NotifyJoin(ctx context.Context, run *domain.JointRun, joiner *domain.User) (*domain.Notification, error) {
	n := &domain.Notification{
		UserID:  run.CreatorID,
		Message: fmt.Sprintf("%s joined your run %q", displayName(joiner), run.Title),
		RefType: domain.RefJointRun,
		RefID:   run.ID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	s.publish(ctx, domain.RKRunJoined, domain.RunJoined{
		EventID:   id.New(),
		RunID:     run.ID,
		CreatorID: run.CreatorID,
		JoinerID:  joiner.ID,
		Message:   n.Message,
	})
	return n, nil
}

func (s *NotificationServiceImpl) ListForUser(ctx context.Context, userID uint, page, size int) ([]domain.Notification, int64, error) {
	return s.repo.ListByUser(ctx, userID, page, size)
}

// MarkRead flips the is-read flag. Only the addressee may do so.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, userID, notificationID uint) (*domain.Notification, error) {
	n, err := s.repo.FindByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, domain.ErrNotOwner
	}
	if err := s.repo.MarkRead(ctx, notificationID); err != nil {
		return nil, err
	}
	n.IsRead = true
	return n, nil
}

func (s *NotificationServiceImpl) publish(ctx context.Context, key string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishJSON(ctx, key, payload); err != nil {
		log.Printf("EVENT_PUBLISH_FAILED: key=%s error=%v", key, err)
	}
}

func displayName(u *domain.User) string {
	if u.Name != "" {
		return u.Name
	}
	return "A runner"
}
