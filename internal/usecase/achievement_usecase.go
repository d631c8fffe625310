package usecase

import (
	"context"

	"talenttrack/internal/domain/entity"

	"github.com/google/uuid"
)

// AchievementUsecase defines the interface for achievement catalog operations.
type AchievementUsecase interface {
	// SeedDefaults inserts the built-in milestone catalog entries that are
	// not present yet. Safe to call on every startup.
	SeedDefaults(ctx context.Context) error

	// ListCatalog retrieves the full achievement catalog.
	ListCatalog(ctx context.Context) ([]*entity.Achievement, error)

	// ListUserAchievements retrieves the achievements a user has unlocked.
	ListUserAchievements(ctx context.Context, userID uuid.UUID) ([]*entity.UserAchievement, error)
}
