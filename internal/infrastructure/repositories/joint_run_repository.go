package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/you/runmate/domain"
)

// JointRunRepositoryImpl implements domain.JointRunRepository using GORM
type JointRunRepositoryImpl struct {
	db *gorm.DB
}

// DBJointRun represents the database model for JointRun
type DBJointRun struct {
	ID              uint      `gorm:"primaryKey"`
	CreatorID       uint      `gorm:"index"`
	Title           string    `gorm:"size:255"`
	Location        string    `gorm:"index;size:255"`
	Description     string    `gorm:"size:2048"`
	ScheduledAt     time.Time `gorm:"index"`
	MaxParticipants int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (DBJointRun) TableName() string { return "joint_runs" }

// DBJointRunParticipant holds the (run, user) unique index that arbitrates
// duplicate joins under concurrency.
type DBJointRunParticipant struct {
	ID         uint   `gorm:"primaryKey"`
	JointRunID uint   `gorm:"uniqueIndex:idx_run_user"`
	UserID     uint   `gorm:"uniqueIndex:idx_run_user"`
	Status     string `gorm:"index;size:32"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DBJointRunParticipant) TableName() string { return "joint_run_participants" }

// NewJointRunRepository creates a new joint run repository
func NewJointRunRepository(db *gorm.DB) domain.JointRunRepository {
	return &JointRunRepositoryImpl{db: db}
}

func (r *JointRunRepositoryImpl) Create(ctx context.Context, run *domain.JointRun) error {
	dbRun := runToDB(run)
	if err := r.db.WithContext(ctx).Create(dbRun).Error; err != nil {
		return err
	}
	run.ID = dbRun.ID
	return nil
}

func (r *JointRunRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.JointRun, error) {
	var dbRun DBJointRun
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbRun).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrRunNotFound
		}
		return nil, err
	}
	return runToDomain(&dbRun), nil
}

func (r *JointRunRepositoryImpl) List(ctx context.Context, page, size int) ([]domain.JointRun, int64, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	qb := r.db.WithContext(ctx).Model(&DBJointRun{})
	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []DBJointRun
	if err := qb.Order("scheduled_at ASC").Limit(size).Offset(page * size).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]domain.JointRun, 0, len(rows))
	for i := range rows {
		out = append(out, *runToDomain(&rows[i]))
	}
	return out, total, nil
}

func (r *JointRunRepositoryImpl) Update(ctx context.Context, run *domain.JointRun) error {
	return r.db.WithContext(ctx).Omit("created_at").Save(runToDB(run)).Error
}

func (r *JointRunRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("joint_run_id = ?", id).Delete(&DBJointRunParticipant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&DBJointRun{}, id).Error
	})
}

// AddParticipant inserts the participant row. The unique index on
// (joint_run_id, user_id) turns a concurrent duplicate into ErrAlreadyJoined.
func (r *JointRunRepositoryImpl) AddParticipant(ctx context.Context, p *domain.JointRunParticipant) error {
	dbP := &DBJointRunParticipant{
		JointRunID: p.JointRunID,
		UserID:     p.UserID,
		Status:     p.Status,
	}
	if err := r.db.WithContext(ctx).Create(dbP).Error; err != nil {
		if isDuplicateError(err) {
			return domain.ErrAlreadyJoined
		}
		return err
	}
	p.ID = dbP.ID
	return nil
}

func (r *JointRunRepositoryImpl) RemoveParticipant(ctx context.Context, runID, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("joint_run_id = ? AND user_id = ?", runID, userID).
		Delete(&DBJointRunParticipant{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

func (r *JointRunRepositoryImpl) FindParticipant(ctx context.Context, runID, userID uint) (*domain.JointRunParticipant, error) {
	var dbP DBJointRunParticipant
	err := r.db.WithContext(ctx).
		Where("joint_run_id = ? AND user_id = ?", runID, userID).
		First(&dbP).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, err
	}
	return participantToDomain(&dbP), nil
}

func (r *JointRunRepositoryImpl) ListParticipants(ctx context.Context, runID uint) ([]domain.JointRunParticipant, error) {
	var rows []DBJointRunParticipant
	if err := r.db.WithContext(ctx).
		Where("joint_run_id = ?", runID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.JointRunParticipant, 0, len(rows))
	for i := range rows {
		out = append(out, *participantToDomain(&rows[i]))
	}
	return out, nil
}

func (r *JointRunRepositoryImpl) UpdateParticipantStatus(ctx context.Context, runID, userID uint, status string) error {
	res := r.db.WithContext(ctx).Model(&DBJointRunParticipant{}).
		Where("joint_run_id = ? AND user_id = ?", runID, userID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

func (r *JointRunRepositoryImpl) CountParticipants(ctx context.Context, runID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&DBJointRunParticipant{}).
		Where("joint_run_id = ?", runID).Count(&n).Error
	return n, err
}

// isDuplicateError matches unique-constraint violations across the postgres
// driver and the sqlite driver used in tests.
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

func runToDB(run *domain.JointRun) *DBJointRun {
	return &DBJointRun{
		ID:              run.ID,
		CreatorID:       run.CreatorID,
		Title:           run.Title,
		Location:        run.Location,
		Description:     run.Description,
		ScheduledAt:     run.ScheduledAt,
		MaxParticipants: run.MaxParticipants,
		CreatedAt:       run.CreatedAt,
	}
}

func runToDomain(dbRun *DBJointRun) *domain.JointRun {
	return &domain.JointRun{
		ID:              dbRun.ID,
		CreatorID:       dbRun.CreatorID,
		Title:           dbRun.Title,
		Location:        dbRun.Location,
		Description:     dbRun.Description,
		ScheduledAt:     dbRun.ScheduledAt,
		MaxParticipants: dbRun.MaxParticipants,
		CreatedAt:       dbRun.CreatedAt,
		UpdatedAt:       dbRun.UpdatedAt,
	}
}

func participantToDomain(dbP *DBJointRunParticipant) *domain.JointRunParticipant {
	return &domain.JointRunParticipant{
		ID:         dbP.ID,
		JointRunID: dbP.JointRunID,
		UserID:     dbP.UserID,
		Status:     dbP.Status,
		CreatedAt:  dbP.CreatedAt,
		UpdatedAt:  dbP.UpdatedAt,
	}
}
