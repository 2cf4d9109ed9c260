package repositories

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/you/runmate/domain"
)

func setupUserDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&DBUser{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(setupUserDB(t))
	ctx := context.Background()

	user := &domain.User{Phone: "+15551230001", Role: "user", IsActive: true}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected ID assigned on create")
	}

	found, err := repo.FindByPhone(ctx, "+15551230001")
	if err != nil {
		t.Fatalf("find by phone failed: %v", err)
	}
	if found.ID != user.ID {
		t.Errorf("expected user %d, got %d", user.ID, found.ID)
	}
	if found.PhoneVerified {
		t.Error("new user must not be phone verified")
	}

	if _, err := repo.FindByPhone(ctx, "+15559999999"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_PhoneIsUnique(t *testing.T) {
	repo := NewUserRepository(setupUserDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{Phone: "+15551230002", Role: "user", IsActive: true}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if err := repo.Create(ctx, &domain.User{Phone: "+15551230002", Role: "user", IsActive: true}); err == nil {
		t.Error("expected unique constraint violation on duplicate phone")
	}
}

func TestUserRepository_ActivatePhone(t *testing.T) {
	repo := NewUserRepository(setupUserDB(t))
	ctx := context.Background()

	user := &domain.User{Phone: "+15551230003", Role: "user", IsActive: true}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.ActivatePhone(ctx, user.ID); err != nil {
		t.Fatalf("activate failed: %v", err)
	}

	found, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !found.PhoneVerified {
		t.Error("expected phone verified after activation")
	}
}

func TestUserRepository_UpdatePersistsRegistration(t *testing.T) {
	repo := NewUserRepository(setupUserDB(t))
	ctx := context.Background()

	user := &domain.User{Phone: "+15551230004", Role: "user", IsActive: true}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	user.Name = "Dana"
	user.PasswordHash = "bcrypt-hash"
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	found, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Name != "Dana" || found.PasswordHash != "bcrypt-hash" {
		t.Errorf("registration fields not persisted: %+v", found)
	}
	if !found.HasPassword() {
		t.Error("expected HasPassword true after registration")
	}
}

func TestUserRepository_UpdateKeepsCreatedAt(t *testing.T) {
	repo := NewUserRepository(setupUserDB(t))
	ctx := context.Background()

	user := &domain.User{Phone: "+15551230005", Role: "user", IsActive: true}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	before, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if before.CreatedAt.IsZero() {
		t.Fatal("expected created_at set on create")
	}

	user.Name = "Dana"
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	after, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("created_at changed on update: before %v, after %v", before.CreatedAt, after.CreatedAt)
	}
}
