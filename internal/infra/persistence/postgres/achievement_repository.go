package postgres

import (
	"context"

	"talenttrack/internal/domain/entity"
	domainerrors "talenttrack/internal/domain/errors"
	"talenttrack/internal/domain/repository"
	"talenttrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// achievementRepository implements the repository.AchievementRepository interface.
type achievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository is the constructor for achievementRepository.
func NewAchievementRepository(db *gorm.DB) repository.AchievementRepository {
	return &achievementRepository{
		db: db,
	}
}

// FindAll retrieves the full achievement catalog ordered by points required ascending.
func (repo *achievementRepository) FindAll(ctx context.Context) ([]*entity.Achievement, error) {
	var achievementModels []*model.AchievementModel

	if err := repo.db.WithContext(ctx).
		Order("points_required ASC").
		Find(&achievementModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list achievements")
	}

	achievements := make([]*entity.Achievement, 0, len(achievementModels))
	for _, achievementM := range achievementModels {
		achievements = append(achievements, toAchievementDomain(achievementM))
	}

	return achievements, nil
}

// FindUnlockedByUser retrieves a user's unlocked achievements with the catalog
// entry preloaded, newest unlock first.
func (repo *achievementRepository) FindUnlockedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserAchievement, error) {
	var unlockedModels []*model.UserAchievementModel

	if err := repo.db.WithContext(ctx).
		Preload("Achievement").
		Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&unlockedModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user achievements")
	}

	unlocked := make([]*entity.UserAchievement, 0, len(unlockedModels))
	for _, unlockedM := range unlockedModels {
		unlocked = append(unlocked, toUserAchievementDomain(unlockedM))
	}

	return unlocked, nil
}

// CreateUserAchievement records an achievement unlock for a user.
func (repo *achievementRepository) CreateUserAchievement(ctx context.Context, ua *entity.UserAchievement) error {
	uaM := fromUserAchievementDomain(ua)

	if err := repo.db.WithContext(ctx).Create(uaM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("achievement already unlocked")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record achievement unlock")
	}

	ua.ID = uaM.ID
	ua.UnlockedAt = uaM.UnlockedAt

	return nil
}

// SeedCatalog inserts catalog entries that do not already exist, matched by name.
func (repo *achievementRepository) SeedCatalog(ctx context.Context, achievements []*entity.Achievement) error {
	if len(achievements) == 0 {
		return nil
	}

	achievementModels := make([]*model.AchievementModel, 0, len(achievements))
	for _, achievement := range achievements {
		achievementModels = append(achievementModels, fromAchievementDomain(achievement))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&achievementModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to seed achievement catalog")
	}

	return nil
}

func toAchievementDomain(data *model.AchievementModel) *entity.Achievement {
	return &entity.Achievement{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Icon:           data.Icon,
		PointsRequired: data.PointsRequired,
		Badge:          entity.Badge(data.Badge),
		Type:           entity.AchievementType(data.Type),
		CreatedAt:      data.CreatedAt,
	}
}

func fromAchievementDomain(data *entity.Achievement) *model.AchievementModel {
	return &model.AchievementModel{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Icon:           data.Icon,
		PointsRequired: data.PointsRequired,
		Badge:          string(data.Badge),
		Type:           string(data.Type),
		CreatedAt:      data.CreatedAt,
	}
}

func toUserAchievementDomain(data *model.UserAchievementModel) *entity.UserAchievement {
	ua := &entity.UserAchievement{
		ID:            data.ID,
		UserID:        data.UserID,
		AchievementID: data.AchievementID,
		PointsEarned:  data.PointsEarned,
		UnlockedAt:    data.UnlockedAt,
	}
	if data.Achievement != nil {
		ua.Achievement = toAchievementDomain(data.Achievement)
	}

	return ua
}

func fromUserAchievementDomain(data *entity.UserAchievement) *model.UserAchievementModel {
	return &model.UserAchievementModel{
		ID:            data.ID,
		UserID:        data.UserID,
		AchievementID: data.AchievementID,
		PointsEarned:  data.PointsEarned,
		UnlockedAt:    data.UnlockedAt,
	}
}
