package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "talenttrack/internal/delivery/context"
	"talenttrack/internal/domain/badge"
	"talenttrack/internal/domain/entity"
	domainerrors "talenttrack/internal/domain/errors"
	"talenttrack/internal/domain/repository"
	"talenttrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser registers a new user. When the external ID is already known the
// existing user is returned unchanged, making retries from the auth proxy safe.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if input.ExternalID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("externalId is required")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleAthlete
	}
	if !role.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	var created *entity.User
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.NewUserRepository()

		existing, err := userRepo.FindByExternalID(ctx, input.ExternalID)
		if err == nil {
			created = existing

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up external ID")
		}

		now := time.Now()
		user := &entity.User{
			ID:          uuid.New(),
			ExternalID:  input.ExternalID,
			Email:       input.Email,
			DisplayName: input.DisplayName,
			PhotoURL:    input.PhotoURL,
			Role:        role,
			Sport:       input.Sport,
			SkillLevel:  input.SkillLevel,
			Location:    input.Location,
			Age:         input.Age,
			Points:      0,
			Badge:       badge.TierFor(0),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}
		created = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("externalID", input.ExternalID), slog.Any("error", err))

		return nil, err
	}

	return created, nil
}

// GetProfile retrieves the calling identity's profile and badge progress.
func (srv *userService) GetProfile(ctx context.Context, externalID string) (*usecase.ProfileOutput, error) {
	user, err := srv.findByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	return &usecase.ProfileOutput{
		User:     user,
		Progress: badge.ProgressToNext(user.Points),
	}, nil
}

// UpdateProfile applies a partial update to the calling identity's profile.
// Points, badge and metrics are owned by the scoring and performance paths
// and are not writable here.
func (srv *userService) UpdateProfile(ctx context.Context, externalID string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.NewUserRepository()

		user, err := userRepo.FindByExternalID(ctx, externalID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("profile update target not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load user for update")
		}

		applyProfilePatch(user, input)
		user.UpdatedAt = time.Now()

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to persist profile update")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", updated.ID))

	return updated, nil
}

func (srv *userService) findByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByExternalID(ctx, externalID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("unknown external identity")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user by external ID")
	}

	return user, nil
}

func applyProfilePatch(user *entity.User, input *usecase.UpdateProfileInput) {
	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.PhotoURL != nil {
		user.PhotoURL = *input.PhotoURL
	}
	if input.Sport != nil {
		user.Sport = *input.Sport
	}
	if input.SkillLevel != nil {
		user.SkillLevel = *input.SkillLevel
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.Age != nil {
		user.Age = *input.Age
	}
}
