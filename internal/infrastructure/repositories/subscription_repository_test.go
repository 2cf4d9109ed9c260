package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/you/runmate/domain"
)

func setupSubscriptionDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&DBSubscription{}))
	return db
}

func TestSubscriptionRepository_Upsert(t *testing.T) {
	repo := NewSubscriptionRepository(setupSubscriptionDB(t))
	ctx := context.Background()

	_, err := repo.FindByUser(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrSubscriptionNotFound)

	first := &domain.Subscription{UserID: 1, Plan: "free", Status: "active", ExpiresAt: time.Now().AddDate(0, 1, 0)}
	require.NoError(t, repo.Upsert(ctx, first))

	// Upserting again for the same user replaces, never duplicates.
	second := &domain.Subscription{UserID: 1, Plan: "premium", Status: "active", ExpiresAt: time.Now().AddDate(0, 1, 0)}
	require.NoError(t, repo.Upsert(ctx, second))

	found, err := repo.FindByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "premium", found.Plan)

	var count int64
	require.NoError(t, repo.(*SubscriptionRepositoryImpl).db.Model(&DBSubscription{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubscriptionRepository_PerUserRows(t *testing.T) {
	repo := NewSubscriptionRepository(setupSubscriptionDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.Subscription{UserID: 1, Plan: "free", Status: "active"}))
	require.NoError(t, repo.Upsert(ctx, &domain.Subscription{UserID: 2, Plan: "premium", Status: "active"}))

	one, err := repo.FindByUser(ctx, 1)
	require.NoError(t, err)
	two, err := repo.FindByUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "free", one.Plan)
	assert.Equal(t, "premium", two.Plan)
}
