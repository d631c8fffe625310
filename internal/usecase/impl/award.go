// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	"talenttrack/internal/domain/badge"
	"talenttrack/internal/domain/entity"
	"talenttrack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// awardOutcome describes the state after applying a point delta to a user.
type awardOutcome struct {
	NewTotal int
	Badge    entity.Badge
	Promoted bool
	Unlocked []*entity.UserAchievement
}

// applyAward adds delta points to the user, recalculates the badge and
// unlocks every achievement whose threshold the new total crossed. The user
// must have been read under a row lock in the same transaction; because
// totals only grow and each threshold is crossed exactly once, no duplicate
// unlock check is needed.
func applyAward(ctx context.Context, repos repository.RepositoryFactory, user *entity.User, delta int) (*awardOutcome, error) {
	oldTotal := user.Points
	oldBadge := user.Badge

	user.Points = oldTotal + delta
	user.Badge = badge.TierFor(user.Points)
	user.UpdatedAt = time.Now()

	if err := repos.NewUserRepository().Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist point award")
	}

	unlocked, err := unlockCrossedAchievements(ctx, repos, user, oldTotal)
	if err != nil {
		return nil, err
	}

	return &awardOutcome{
		NewTotal: user.Points,
		Badge:    user.Badge,
		Promoted: user.Badge != oldBadge,
		Unlocked: unlocked,
	}, nil
}

func unlockCrossedAchievements(ctx context.Context, repos repository.RepositoryFactory, user *entity.User, oldTotal int) ([]*entity.UserAchievement, error) {
	achievementRepo := repos.NewAchievementRepository()

	catalog, err := achievementRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load achievement catalog")
	}

	var unlocked []*entity.UserAchievement
	for _, achievement := range catalog {
		if achievement.PointsRequired <= oldTotal || achievement.PointsRequired > user.Points {
			continue
		}

		ua := &entity.UserAchievement{
			ID:            uuid.New(),
			UserID:        user.ID,
			AchievementID: achievement.ID,
			PointsEarned:  user.Points,
			UnlockedAt:    time.Now(),
			Achievement:   achievement,
		}
		if err := achievementRepo.CreateUserAchievement(ctx, ua); err != nil {
			return nil, errors.Wrap(err, "failed to record achievement unlock")
		}

		unlocked = append(unlocked, ua)
	}

	return unlocked, nil
}
