package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/you/runmate/domain"
)

// NotificationRepositoryImpl implements domain.NotificationRepository using GORM
type NotificationRepositoryImpl struct {
	db *gorm.DB
}

// DBNotification represents the database model for Notification
type DBNotification struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Message   string `gorm:"size:1024"`
	RefType   string `gorm:"size:64"`
	RefID     uint
	IsRead    bool      `gorm:"index"`
	CreatedAt time.Time `gorm:"index"`
}

func (DBNotification) TableName() string { return "notifications" }

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) domain.NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *domain.Notification) error {
	dbN := &DBNotification{
		UserID:  n.UserID,
		Message: n.Message,
		RefType: n.RefType,
		RefID:   n.RefID,
		IsRead:  n.IsRead,
	}
	if err := r.db.WithContext(ctx).Create(dbN).Error; err != nil {
		return err
	}
	n.ID = dbN.ID
	n.CreatedAt = dbN.CreatedAt
	return nil
}

func (r *NotificationRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Notification, error) {
	var dbN DBNotification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbN).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return notificationToDomain(&dbN), nil
}

func (r *NotificationRepositoryImpl) ListByUser(ctx context.Context, userID uint, page, size int) ([]domain.Notification, int64, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	qb := r.db.WithContext(ctx).Model(&DBNotification{}).Where("user_id = ?", userID)
	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []DBNotification
	if err := qb.Order("created_at DESC").Limit(size).Offset(page * size).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]domain.Notification, 0, len(rows))
	for i := range rows {
		out = append(out, *notificationToDomain(&rows[i]))
	}
	return out, total, nil
}

func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&DBNotification{}).Where("id = ?", id).Update("is_read", true).Error
}

func notificationToDomain(dbN *DBNotification) *domain.Notification {
	return &domain.Notification{
		ID:        dbN.ID,
		UserID:    dbN.UserID,
		Message:   dbN.Message,
		RefType:   dbN.RefType,
		RefID:     dbN.RefID,
		IsRead:    dbN.IsRead,
		CreatedAt: dbN.CreatedAt,
	}
}
