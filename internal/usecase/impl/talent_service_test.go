package impl

import (
	"context"
	"testing"
	"time"

	"talenttrack/internal/domain/entity"
	domainerrors "talenttrack/internal/domain/errors"
	"talenttrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTalentService(store *fakeStore) usecase.TalentUsecase {
	return NewTalentService(TalentServiceParams{
		TxManager:  &fakeTxManager{store: store},
		TalentRepo: &fakeTalentRepo{store: store},
		Metrics:    newTestMetrics(),
		Logger:     newDiscardLogger(),
	})
}

func TestTalentService_SubmitTalent_FirstSubmissionBonus(t *testing.T) {
	store := newFakeStore()
	seedTestCatalog(store)
	user := store.addUser(&entity.User{Role: entity.RoleAthlete, Badge: entity.BadgeBronze})
	service := newTestTalentService(store)

	output, err := service.SubmitTalent(context.Background(), user.ID, &usecase.SubmitTalentInput{
		Name:  "Free Kick",
		Sport: "soccer",
	})

	require.NoError(t, err)
	assert.Equal(t, 30, output.PointsAwarded)
	assert.Equal(t, 30, output.NewTotal)
	assert.Equal(t, entity.BadgeBronze, output.Badge)
	// The stored record always carries the base value; bonuses only move the
	// user's running total.
	assert.Equal(t, 10, output.Talent.PointsAwarded)

	require.Len(t, output.Unlocked, 1)
	assert.Equal(t, "First Steps", output.Unlocked[0].Achievement.Name)
	assert.Equal(t, 30, output.Unlocked[0].PointsEarned)
}

func TestTalentService_SubmitTalent_RegularSubmission(t *testing.T) {
	store := newFakeStore()
	seedTestCatalog(store)
	user := store.addUser(&entity.User{Role: entity.RoleAthlete, Points: 30, Badge: entity.BadgeBronze})
	store.talents = append(store.talents, &entity.Talent{ID: uuid.New(), UserID: user.ID, CreatedAt: time.Now()})
	service := newTestTalentService(store)

	output, err := service.SubmitTalent(context.Background(), user.ID, &usecase.SubmitTalentInput{
		Name:  "Header",
		Sport: "soccer",
	})

	require.NoError(t, err)
	assert.Equal(t, 10, output.PointsAwarded)
	assert.Equal(t, 40, output.NewTotal)
	assert.Empty(t, output.Unlocked)
}

func TestTalentService_SubmitTalent_MilestoneBonus(t *testing.T) {
	store := newFakeStore()
	seedTestCatalog(store)
	user := store.addUser(&entity.User{Role: entity.RoleAthlete, Points: 40, Badge: entity.BadgeBronze})
	for range 4 {
		store.talents = append(store.talents, &entity.Talent{ID: uuid.New(), UserID: user.ID, CreatedAt: time.Now()})
	}
	service := newTestTalentService(store)

	output, err := service.SubmitTalent(context.Background(), user.ID, &usecase.SubmitTalentInput{
		Name:  "Penalty",
		Sport: "soccer",
	})

	require.NoError(t, err)
	assert.Equal(t, 60, output.PointsAwarded)
	assert.Equal(t, 100, output.NewTotal)
	assert.Equal(t, entity.BadgeGold, output.Badge)

	names := make([]string, 0, len(output.Unlocked))
	for _, ua := range output.Unlocked {
		names = append(names, ua.Achievement.Name)
	}
	assert.ElementsMatch(t, []string{"Bronze Athlete", "Silver Athlete"}, names)
}

func TestTalentService_SubmitTalent_RequiresNameAndSport(t *testing.T) {
	store := newFakeStore()
	user := store.addUser(&entity.User{Role: entity.RoleAthlete})
	service := newTestTalentService(store)

	_, err := service.SubmitTalent(context.Background(), user.ID, &usecase.SubmitTalentInput{Name: "No Sport"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, store.talents)
}

func TestTalentService_SubmitTalent_UnknownUser(t *testing.T) {
	service := newTestTalentService(newFakeStore())

	_, err := service.SubmitTalent(context.Background(), uuid.New(), &usecase.SubmitTalentInput{
		Name:  "Sprint",
		Sport: "track",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestTalentService_ApproveTalent_SetsReviewerOnce(t *testing.T) {
	store := newFakeStore()
	user := store.addUser(&entity.User{Role: entity.RoleAthlete})
	reviewer := store.addUser(&entity.User{Role: entity.RoleCoach})
	talent := &entity.Talent{ID: uuid.New(), UserID: user.ID, PointsAwarded: 10, CreatedAt: time.Now()}
	store.talents = append(store.talents, talent)
	service := newTestTalentService(store)

	approved, err := service.ApproveTalent(context.Background(), reviewer.ID, talent.ID)
	require.NoError(t, err)
	assert.True(t, approved.Approved)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, reviewer.ID, *approved.ApprovedBy)

	// A second approval keeps the original reviewer.
	other := store.addUser(&entity.User{Role: entity.RoleCoach})
	again, err := service.ApproveTalent(context.Background(), other.ID, talent.ID)
	require.NoError(t, err)
	assert.Equal(t, reviewer.ID, *again.ApprovedBy)
}

func TestTalentService_ApproveTalent_NotFound(t *testing.T) {
	service := newTestTalentService(newFakeStore())

	_, err := service.ApproveTalent(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrTalentNotFound)
}

func TestTalentService_ListUserTalents_FiltersByOwner(t *testing.T) {
	store := newFakeStore()
	alice := store.addUser(&entity.User{Role: entity.RoleAthlete})
	bob := store.addUser(&entity.User{Role: entity.RoleAthlete})
	store.talents = append(store.talents,
		&entity.Talent{ID: uuid.New(), UserID: alice.ID, Name: "One", CreatedAt: time.Now().Add(-time.Hour)},
		&entity.Talent{ID: uuid.New(), UserID: bob.ID, Name: "Two", CreatedAt: time.Now().Add(-30 * time.Minute)},
		&entity.Talent{ID: uuid.New(), UserID: alice.ID, Name: "Three", CreatedAt: time.Now()},
	)
	service := newTestTalentService(store)

	talents, err := service.ListUserTalents(context.Background(), alice.ID)

	require.NoError(t, err)
	require.Len(t, talents, 2)
	assert.Equal(t, "Three", talents[0].Name)
	assert.Equal(t, "One", talents[1].Name)
}
