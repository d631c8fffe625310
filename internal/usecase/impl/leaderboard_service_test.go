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

func newTestLeaderboardService(store *fakeStore, limit int) usecase.LeaderboardUsecase {
	return NewLeaderboardService(LeaderboardServiceParams{
		UserRepo: &fakeUserRepo{store: store},
		Config:   newTestConfig(limit),
		Logger:   newDiscardLogger(),
	})
}

func seedLeaderboardUsers(store *fakeStore) (first, second, third *entity.User) {
	base := time.Now().Add(-time.Hour)
	first = store.addUser(&entity.User{
		Role: entity.RoleAthlete, DisplayName: "First", Sport: "soccer",
		Points: 200, Badge: entity.BadgePlatinum, CreatedAt: base,
	})
	second = store.addUser(&entity.User{
		Role: entity.RoleAthlete, DisplayName: "Second", Sport: "basketball",
		Points: 100, Badge: entity.BadgeGold, CreatedAt: base.Add(time.Minute),
	})
	third = store.addUser(&entity.User{
		Role: entity.RoleAthlete, DisplayName: "Third", Sport: "soccer",
		Points: 100, Badge: entity.BadgeGold, CreatedAt: base.Add(2 * time.Minute),
	})
	// Coaches never appear on the board.
	store.addUser(&entity.User{Role: entity.RoleCoach, DisplayName: "Coach", Points: 999})

	return first, second, third
}

func TestLeaderboardService_GetLeaderboard_OrderAndTieBreak(t *testing.T) {
	store := newFakeStore()
	first, second, third := seedLeaderboardUsers(store)
	service := newTestLeaderboardService(store, 50)

	output, err := service.GetLeaderboard(context.Background(), "global", "all", uuid.Nil)

	require.NoError(t, err)
	assert.Equal(t, "global", output.Scope)
	require.Len(t, output.Entries, 3)
	assert.Equal(t, first.ID, output.Entries[0].UserID)
	assert.Equal(t, 1, output.Entries[0].Rank)
	// Equal points rank by earlier signup.
	assert.Equal(t, second.ID, output.Entries[1].UserID)
	assert.Equal(t, third.ID, output.Entries[2].UserID)
	assert.Equal(t, 3, output.Entries[2].Rank)
	assert.Nil(t, output.CurrentUserRank)
}

func TestLeaderboardService_GetLeaderboard_SportFilter(t *testing.T) {
	store := newFakeStore()
	first, _, third := seedLeaderboardUsers(store)
	service := newTestLeaderboardService(store, 50)

	output, err := service.GetLeaderboard(context.Background(), "global", "Soccer", third.ID)

	require.NoError(t, err)
	require.Len(t, output.Entries, 2)
	assert.Equal(t, first.ID, output.Entries[0].UserID)
	assert.Equal(t, third.ID, output.Entries[1].UserID)
	require.NotNil(t, output.CurrentUserRank)
	assert.Equal(t, 2, *output.CurrentUserRank)
}

func TestLeaderboardService_GetLeaderboard_ScopeDoesNotFilterSport(t *testing.T) {
	store := newFakeStore()
	first, _, third := seedLeaderboardUsers(store)
	service := newTestLeaderboardService(store, 50)

	// The scope names the board; only the sport argument narrows the pool.
	output, err := service.GetLeaderboard(context.Background(), "regional", "soccer", uuid.Nil)

	require.NoError(t, err)
	assert.Equal(t, "regional", output.Scope)
	require.Len(t, output.Entries, 2)
	assert.Equal(t, first.ID, output.Entries[0].UserID)
	assert.Equal(t, third.ID, output.Entries[1].UserID)

	unfiltered, err := service.GetLeaderboard(context.Background(), "regional", "", uuid.Nil)
	require.NoError(t, err)
	assert.Len(t, unfiltered.Entries, 3)
}

func TestLeaderboardService_GetLeaderboard_RankBeyondLimit(t *testing.T) {
	store := newFakeStore()
	_, _, third := seedLeaderboardUsers(store)
	service := newTestLeaderboardService(store, 2)

	output, err := service.GetLeaderboard(context.Background(), "", "", third.ID)

	require.NoError(t, err)
	assert.Len(t, output.Entries, 2)
	require.NotNil(t, output.CurrentUserRank)
	assert.Equal(t, 3, *output.CurrentUserRank)
}

func TestLeaderboardService_GetLeaderboard_Empty(t *testing.T) {
	service := newTestLeaderboardService(newFakeStore(), 50)

	output, err := service.GetLeaderboard(context.Background(), "global", "all", uuid.Nil)

	require.NoError(t, err)
	assert.NotNil(t, output.Entries)
	assert.Empty(t, output.Entries)
	assert.Nil(t, output.CurrentUserRank)
}
