package repository

import (
	"context"
	"errors"

	"talenttrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAchievementNotFound is a domain-specific error returned when an achievement is not found.
var ErrAchievementNotFound = errors.New("achievement not found")

// AchievementRepository defines the standard operations for achievement persistence.
type AchievementRepository interface {
	// FindAll retrieves the full achievement catalog ordered by points required ascending.
	FindAll(ctx context.Context) ([]*entity.Achievement, error)

	// FindUnlockedByUser retrieves a user's unlocked achievements with the
	// catalog entry preloaded, newest unlock first.
	FindUnlockedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserAchievement, error)

	// CreateUserAchievement records an achievement unlock for a user.
	CreateUserAchievement(ctx context.Context, ua *entity.UserAchievement) error

	// SeedCatalog inserts catalog entries that do not already exist, matched by name.
	SeedCatalog(ctx context.Context, achievements []*entity.Achievement) error
}
