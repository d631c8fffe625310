package impl

import (
	"context"
	"testing"

	"talenttrack/internal/domain/entity"
	domainerrors "talenttrack/internal/domain/errors"
	"talenttrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(store *fakeStore) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		TxManager: &fakeTxManager{store: store},
		UserRepo:  &fakeUserRepo{store: store},
		Logger:    newDiscardLogger(),
	})
}

func TestUserService_CreateUser_Defaults(t *testing.T) {
	store := newFakeStore()
	service := newTestUserService(store)

	user, err := service.CreateUser(context.Background(), &usecase.CreateUserInput{
		ExternalID:  "ext-123",
		Email:       "athlete@example.com",
		DisplayName: "Test Athlete",
		Sport:       "soccer",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAthlete, user.Role)
	assert.Equal(t, 0, user.Points)
	assert.Equal(t, entity.BadgeBronze, user.Badge)
	assert.NotZero(t, user.ID)
}

func TestUserService_CreateUser_IdempotentOnExternalID(t *testing.T) {
	store := newFakeStore()
	service := newTestUserService(store)

	first, err := service.CreateUser(context.Background(), &usecase.CreateUserInput{
		ExternalID: "ext-123",
		Email:      "athlete@example.com",
	})
	require.NoError(t, err)

	second, err := service.CreateUser(context.Background(), &usecase.CreateUserInput{
		ExternalID:  "ext-123",
		Email:       "other@example.com",
		DisplayName: "Someone Else",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "athlete@example.com", second.Email)
	assert.Len(t, store.users, 1)
}

func TestUserService_CreateUser_RequiresExternalID(t *testing.T) {
	service := newTestUserService(newFakeStore())

	_, err := service.CreateUser(context.Background(), &usecase.CreateUserInput{Email: "x@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_CreateUser_RejectsUnknownRole(t *testing.T) {
	service := newTestUserService(newFakeStore())

	_, err := service.CreateUser(context.Background(), &usecase.CreateUserInput{
		ExternalID: "ext-123",
		Role:       entity.Role("referee"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_GetProfile_IncludesBadgeProgress(t *testing.T) {
	store := newFakeStore()
	store.addUser(&entity.User{
		ExternalID: "ext-123",
		Role:       entity.RoleAthlete,
		Points:     75,
		Badge:      entity.BadgeSilver,
	})
	service := newTestUserService(store)

	profile, err := service.GetProfile(context.Background(), "ext-123")

	require.NoError(t, err)
	assert.Equal(t, 75, profile.User.Points)
	assert.Equal(t, 50, profile.Progress.ProgressPercent)
	assert.Equal(t, 25, profile.Progress.PointsNeeded)
	require.NotNil(t, profile.Progress.NextTier)
	assert.Equal(t, entity.BadgeGold, *profile.Progress.NextTier)
}

func TestUserService_GetProfile_UnknownExternalID(t *testing.T) {
	service := newTestUserService(newFakeStore())

	_, err := service.GetProfile(context.Background(), "ext-missing")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile_PartialPatch(t *testing.T) {
	store := newFakeStore()
	store.addUser(&entity.User{
		ExternalID:  "ext-123",
		DisplayName: "Old Name",
		Sport:       "soccer",
		Points:      120,
		Badge:       entity.BadgeGold,
	})
	service := newTestUserService(store)

	newSport := "basketball"
	updated, err := service.UpdateProfile(context.Background(), "ext-123", &usecase.UpdateProfileInput{
		Sport: &newSport,
	})

	require.NoError(t, err)
	assert.Equal(t, "basketball", updated.Sport)
	assert.Equal(t, "Old Name", updated.DisplayName)
	assert.Equal(t, 120, updated.Points)
	assert.Equal(t, entity.BadgeGold, updated.Badge)
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	service := newTestUserService(newFakeStore())

	name := "New Name"
	_, err := service.UpdateProfile(context.Background(), "ext-missing", &usecase.UpdateProfileInput{
		DisplayName: &name,
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
