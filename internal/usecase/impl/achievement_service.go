package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "talenttrack/internal/delivery/context"
	"talenttrack/internal/domain/entity"
	"talenttrack/internal/domain/repository"
	"talenttrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// achievementService implements the AchievementUsecase interface.
type achievementService struct {
	achievementRepo repository.AchievementRepository
	logger          *slog.Logger
}

// AchievementServiceParams holds dependencies for achievementService, injected by Fx.
type AchievementServiceParams struct {
	fx.In

	AchievementRepo repository.AchievementRepository
	Logger          *slog.Logger
}

// NewAchievementService is the constructor for achievementService.
func NewAchievementService(params AchievementServiceParams) usecase.AchievementUsecase {
	return &achievementService{
		achievementRepo: params.AchievementRepo,
		logger:          params.Logger,
	}
}

// defaultCatalog returns the built-in milestone achievements.
func defaultCatalog() []*entity.Achievement {
	now := time.Now()
	milestones := []struct {
		name        string
		description string
		icon        string
		points      int
		badge       entity.Badge
	}{
		{"First Steps", "Earn your first 10 points", "footprints", 10, ""},
		{"Bronze Athlete", "Reach 50 points", "medal", 50, entity.BadgeBronze},
		{"Silver Athlete", "Reach 100 points", "medal", 100, entity.BadgeSilver},
		{"Gold Athlete", "Reach 200 points", "trophy", 200, entity.BadgeGold},
		{"Platinum Athlete", "Reach 500 points", "crown", 500, entity.BadgePlatinum},
	}

	catalog := make([]*entity.Achievement, 0, len(milestones))
	for _, m := range milestones {
		catalog = append(catalog, &entity.Achievement{
			ID:             uuid.New(),
			Name:           m.name,
			Description:    m.description,
			Icon:           m.icon,
			PointsRequired: m.points,
			Badge:          m.badge,
			Type:           entity.AchievementTypeMilestone,
			CreatedAt:      now,
		})
	}

	return catalog
}

// SeedDefaults inserts missing milestone entries, matched by name.
func (srv *achievementService) SeedDefaults(ctx context.Context) error {
	if err := srv.achievementRepo.SeedCatalog(ctx, defaultCatalog()); err != nil {
		return errors.Wrap(err, "failed to seed achievement catalog")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Achievement catalog seeded")

	return nil
}

// ListCatalog retrieves the full achievement catalog.
func (srv *achievementService) ListCatalog(ctx context.Context) ([]*entity.Achievement, error) {
	catalog, err := srv.achievementRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list achievements")
	}

	return catalog, nil
}

// ListUserAchievements retrieves the achievements a user has unlocked.
func (srv *achievementService) ListUserAchievements(ctx context.Context, userID uuid.UUID) ([]*entity.UserAchievement, error) {
	unlocked, err := srv.achievementRepo.FindUnlockedByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user achievements")
	}

	return unlocked, nil
}
