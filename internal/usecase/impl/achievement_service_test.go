package impl

import (
	"context"
	"testing"
	"time"

	"talenttrack/internal/domain/entity"
	"talenttrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAchievementService(store *fakeStore) usecase.AchievementUsecase {
	return NewAchievementService(AchievementServiceParams{
		AchievementRepo: &fakeAchievementRepo{store: store},
		Logger:          newDiscardLogger(),
	})
}

func TestAchievementService_SeedDefaults_IsIdempotent(t *testing.T) {
	store := newFakeStore()
	service := newTestAchievementService(store)

	require.NoError(t, service.SeedDefaults(context.Background()))
	require.NoError(t, service.SeedDefaults(context.Background()))

	catalog, err := service.ListCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 5)

	thresholds := make([]int, 0, len(catalog))
	for _, achievement := range catalog {
		thresholds = append(thresholds, achievement.PointsRequired)
		assert.Equal(t, entity.AchievementTypeMilestone, achievement.Type)
	}
	assert.Equal(t, []int{10, 50, 100, 200, 500}, thresholds)
}

func TestAchievementService_ListUserAchievements(t *testing.T) {
	store := newFakeStore()
	seedTestCatalog(store)
	user := store.addUser(&entity.User{Role: entity.RoleAthlete})

	older := &entity.UserAchievement{
		ID: uuid.New(), UserID: user.ID,
		AchievementID: store.catalog[0].ID,
		UnlockedAt:    time.Now().Add(-time.Hour),
	}
	newer := &entity.UserAchievement{
		ID: uuid.New(), UserID: user.ID,
		AchievementID: store.catalog[1].ID,
		UnlockedAt:    time.Now(),
	}
	stranger := &entity.UserAchievement{
		ID: uuid.New(), UserID: uuid.New(),
		AchievementID: store.catalog[0].ID,
		UnlockedAt:    time.Now(),
	}
	store.unlocks = append(store.unlocks, older, newer, stranger)

	service := newTestAchievementService(store)

	unlocked, err := service.ListUserAchievements(context.Background(), user.ID)

	require.NoError(t, err)
	require.Len(t, unlocked, 2)
	assert.Equal(t, newer.ID, unlocked[0].ID)
	assert.Equal(t, older.ID, unlocked[1].ID)
}
