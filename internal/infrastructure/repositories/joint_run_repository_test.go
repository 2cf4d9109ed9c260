package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/you/runmate/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBJointRun{}, &DBJointRunParticipant{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func seedRun(t *testing.T, repo domain.JointRunRepository) *domain.JointRun {
	t.Helper()
	run := &domain.JointRun{
		CreatorID:       1,
		Title:           "Morning 10k",
		Location:        "Riverside",
		ScheduledAt:     time.Now().Add(48 * time.Hour),
		MaxParticipants: 5,
	}
	if err := repo.Create(context.Background(), run); err != nil {
		t.Fatalf("failed to seed run: %v", err)
	}
	return run
}

func TestJointRunRepository_AddParticipant_Duplicate(t *testing.T) {
	repo := NewJointRunRepository(setupTestDB(t))
	run := seedRun(t, repo)
	ctx := context.Background()

	first := &domain.JointRunParticipant{JointRunID: run.ID, UserID: 2, Status: domain.ParticipantInterested}
	if err := repo.AddParticipant(ctx, first); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	if first.ID == 0 {
		t.Error("expected participant ID assigned")
	}

	// Second row for the same (run, user) must hit the unique index.
	dup := &domain.JointRunParticipant{JointRunID: run.ID, UserID: 2, Status: domain.ParticipantGoing}
	if err := repo.AddParticipant(ctx, dup); !errors.Is(err, domain.ErrAlreadyJoined) {
		t.Errorf("expected ErrAlreadyJoined, got %v", err)
	}

	// The same user may join a different run.
	other := seedRun(t, repo)
	if err := repo.AddParticipant(ctx, &domain.JointRunParticipant{JointRunID: other.ID, UserID: 2, Status: domain.ParticipantInterested}); err != nil {
		t.Errorf("join on a different run failed: %v", err)
	}
}

func TestJointRunRepository_RemoveParticipant(t *testing.T) {
	repo := NewJointRunRepository(setupTestDB(t))
	run := seedRun(t, repo)
	ctx := context.Background()

	if err := repo.RemoveParticipant(ctx, run.ID, 2); !errors.Is(err, domain.ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}

	p := &domain.JointRunParticipant{JointRunID: run.ID, UserID: 2, Status: domain.ParticipantInterested}
	if err := repo.AddParticipant(ctx, p); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if err := repo.RemoveParticipant(ctx, run.ID, 2); err != nil {
		t.Fatalf("leave failed: %v", err)
	}

	// After leaving, joining again is allowed.
	if err := repo.AddParticipant(ctx, &domain.JointRunParticipant{JointRunID: run.ID, UserID: 2, Status: domain.ParticipantGoing}); err != nil {
		t.Errorf("rejoin after leave failed: %v", err)
	}
}

func TestJointRunRepository_UpdateParticipantStatus(t *testing.T) {
	repo := NewJointRunRepository(setupTestDB(t))
	run := seedRun(t, repo)
	ctx := context.Background()

	if err := repo.AddParticipant(ctx, &domain.JointRunParticipant{JointRunID: run.ID, UserID: 2, Status: domain.ParticipantInterested}); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if err := repo.UpdateParticipantStatus(ctx, run.ID, 2, domain.ParticipantCompleted); err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	p, err := repo.FindParticipant(ctx, run.ID, 2)
	if err != nil {
		t.Fatalf("find participant failed: %v", err)
	}
	if p.Status != domain.ParticipantCompleted {
		t.Errorf("expected completed, got %q", p.Status)
	}

	if err := repo.UpdateParticipantStatus(ctx, run.ID, 99, domain.ParticipantGoing); !errors.Is(err, domain.ErrParticipantNotFound) {
		t.Errorf("expected ErrParticipantNotFound for non-participant, got %v", err)
	}
}

func TestJointRunRepository_DeleteCascadesParticipants(t *testing.T) {
	repo := NewJointRunRepository(setupTestDB(t))
	run := seedRun(t, repo)
	ctx := context.Background()

	for userID := uint(2); userID <= 4; userID++ {
		if err := repo.AddParticipant(ctx, &domain.JointRunParticipant{JointRunID: run.ID, UserID: userID, Status: domain.ParticipantInterested}); err != nil {
			t.Fatalf("join failed: %v", err)
		}
	}

	if err := repo.Delete(ctx, run.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, run.ID); !errors.Is(err, domain.ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound after delete, got %v", err)
	}
	n, err := repo.CountParticipants(ctx, run.ID)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected participants removed with the run, got %d", n)
	}
}

func TestJointRunRepository_ListOrdersBySchedule(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJointRunRepository(db)
	ctx := context.Background()

	late := &domain.JointRun{CreatorID: 1, Title: "Later", ScheduledAt: time.Now().Add(72 * time.Hour)}
	early := &domain.JointRun{CreatorID: 1, Title: "Sooner", ScheduledAt: time.Now().Add(24 * time.Hour)}
	for _, run := range []*domain.JointRun{late, early} {
		if err := repo.Create(ctx, run); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	runs, total, err := repo.List(ctx, 0, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(runs) != 2 {
		t.Fatalf("expected 2 runs, got total=%d len=%d", total, len(runs))
	}
	if runs[0].Title != "Sooner" {
		t.Errorf("expected soonest run first, got %q", runs[0].Title)
	}
}

func TestJointRunRepository_UpdateKeepsCreatedAt(t *testing.T) {
	repo := NewJointRunRepository(setupTestDB(t))
	run := seedRun(t, repo)
	ctx := context.Background()

	before, err := repo.FindByID(ctx, run.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if before.CreatedAt.IsZero() {
		t.Fatal("expected created_at set on create")
	}

	before.Title = "Evening 10k"
	if err := repo.Update(ctx, before); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	after, err := repo.FindByID(ctx, run.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if after.Title != "Evening 10k" {
		t.Errorf("title not persisted: %+v", after)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("created_at changed on update: before %v, after %v", before.CreatedAt, after.CreatedAt)
	}
}
