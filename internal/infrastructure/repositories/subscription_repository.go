package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/you/runmate/domain"
)

// SubscriptionRepositoryImpl implements domain.SubscriptionRepository using GORM
type SubscriptionRepositoryImpl struct {
	db *gorm.DB
}

// DBSubscription represents the database model for Subscription
type DBSubscription struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex"`
	Plan      string `gorm:"size:64"`
	Status    string `gorm:"size:64"`
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DBSubscription) TableName() string { return "subscriptions" }

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) domain.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{db: db}
}

func (r *SubscriptionRepositoryImpl) FindByUser(ctx context.Context, userID uint) (*domain.Subscription, error) {
	var dbS DBSubscription
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&dbS).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrSubscriptionNotFound
		}
		return nil, err
	}
	return subscriptionToDomain(&dbS), nil
}

// Upsert keeps the one-row-per-user invariant through the unique index on
// user_id rather than application-level locking.
func (r *SubscriptionRepositoryImpl) Upsert(ctx context.Context, sub *domain.Subscription) error {
	dbS := &DBSubscription{
		UserID:    sub.UserID,
		Plan:      sub.Plan,
		Status:    sub.Status,
		ExpiresAt: sub.ExpiresAt,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"plan", "status", "expires_at", "updated_at"}),
	}).Create(dbS).Error
	if err != nil {
		return err
	}
	sub.ID = dbS.ID
	return nil
}

func subscriptionToDomain(dbS *DBSubscription) *domain.Subscription {
	return &domain.Subscription{
		ID:        dbS.ID,
		UserID:    dbS.UserID,
		Plan:      dbS.Plan,
		Status:    dbS.Status,
		ExpiresAt: dbS.ExpiresAt,
		CreatedAt: dbS.CreatedAt,
		UpdatedAt: dbS.UpdatedAt,
	}
}
