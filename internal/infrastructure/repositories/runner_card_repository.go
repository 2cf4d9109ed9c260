package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/you/runmate/domain"
)

// RunnerCardRepositoryImpl implements domain.RunnerCardRepository using GORM
type RunnerCardRepositoryImpl struct {
	db *gorm.DB
}

// DBRunnerCard represents the database model for RunnerCard
type DBRunnerCard struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"index"`
	Location       string `gorm:"index;size:255"`
	Days           string `gorm:"size:255"`
	TimeOfDay      string `gorm:"size:64"`
	Pace           string `gorm:"size:64"`
	Note           string `gorm:"size:1024"`
	ContactVisible bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (DBRunnerCard) TableName() string { return "runner_cards" }

// NewRunnerCardRepository creates a new runner card repository
func NewRunnerCardRepository(db *gorm.DB) domain.RunnerCardRepository {
	return &RunnerCardRepositoryImpl{db: db}
}

func (r *RunnerCardRepositoryImpl) Create(ctx context.Context, card *domain.RunnerCard) error {
	dbCard := cardToDB(card)
	if err := r.db.WithContext(ctx).Create(dbCard).Error; err != nil {
		return err
	}
	card.ID = dbCard.ID
	return nil
}

func (r *RunnerCardRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.RunnerCard, error) {
	var dbCard DBRunnerCard
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbCard).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCardNotFound
		}
		return nil, err
	}
	return cardToDomain(&dbCard), nil
}

// List returns cards newest first, optionally filtered by location.
func (r *RunnerCardRepositoryImpl) List(ctx context.Context, location string, page, size int) ([]domain.RunnerCard, int64, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	qb := r.db.WithContext(ctx).Model(&DBRunnerCard{})
	if location != "" {
		qb = qb.Where("location = ?", location)
	}
	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []DBRunnerCard
	if err := qb.Order("created_at DESC").Limit(size).Offset(page * size).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]domain.RunnerCard, 0, len(rows))
	for i := range rows {
		out = append(out, *cardToDomain(&rows[i]))
	}
	return out, total, nil
}

func (r *RunnerCardRepositoryImpl) Update(ctx context.Context, card *domain.RunnerCard) error {
	return r.db.WithContext(ctx).Omit("created_at").Save(cardToDB(card)).Error
}

func (r *RunnerCardRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBRunnerCard{}, id).Error
}

func cardToDB(card *domain.RunnerCard) *DBRunnerCard {
	return &DBRunnerCard{
		ID:             card.ID,
		UserID:         card.UserID,
		Location:       card.Location,
		Days:           card.Days,
		TimeOfDay:      card.TimeOfDay,
		Pace:           card.Pace,
		Note:           card.Note,
		ContactVisible: card.ContactVisible,
		CreatedAt:      card.CreatedAt,
	}
}

func cardToDomain(dbCard *DBRunnerCard) *domain.RunnerCard {
	return &domain.RunnerCard{
		ID:             dbCard.ID,
		UserID:         dbCard.UserID,
		Location:       dbCard.Location,
		Days:           dbCard.Days,
		TimeOfDay:      dbCard.TimeOfDay,
		Pace:           dbCard.Pace,
		Note:           dbCard.Note,
		ContactVisible: dbCard.ContactVisible,
		CreatedAt:      dbCard.CreatedAt,
		UpdatedAt:      dbCard.UpdatedAt,
	}
}
