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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByIDForUpdate retrieves a user by ID under a row-level write lock.
// Must run inside a transaction; the lock is held until commit or rollback.
func (repo *userRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to lock user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByExternalID retrieves a single user by the identity provider's stable ID.
func (repo *userRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by external ID")
	}

	return toUserDomain(&userM), nil
}

// ListAthletes retrieves athlete users ordered by points descending, with
// creation time as a stable tie-break. A limit of zero means no limit.
func (repo *userRepository) ListAthletes(ctx context.Context, sport string, limit int) ([]*entity.User, error) {
	var userModels []*model.UserModel

	query := repo.db.WithContext(ctx).
		Where("role = ?", string(entity.RoleAthlete)).
		Order("points DESC, created_at ASC")

	if sport != "" {
		query = query.Where("LOWER(sport) = ?", sport)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list athletes")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user entity to the storage.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("external ID already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the storage.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"email":        user.Email,
			"display_name": user.DisplayName,
			"photo_url":    user.PhotoURL,
			"sport":        user.Sport,
			"skill_level":  user.SkillLevel,
			"location":     user.Location,
			"age":          user.Age,
			"points":       user.Points,
			"badge":        string(user.Badge),
			"speed":        user.Metrics.Speed,
			"strength":     user.Metrics.Strength,
			"stamina":      user.Metrics.Stamina,
			"technique":    user.Metrics.Technique,
			"updated_at":   user.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	return &entity.User{
		ID:          data.ID,
		ExternalID:  data.ExternalID,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		PhotoURL:    data.PhotoURL,
		Role:        entity.Role(data.Role),
		Sport:       data.Sport,
		SkillLevel:  data.SkillLevel,
		Location:    data.Location,
		Age:         data.Age,
		Points:      data.Points,
		Badge:       entity.Badge(data.Badge),
		Metrics: entity.Metrics{
			Speed:     data.Speed,
			Strength:  data.Strength,
			Stamina:   data.Stamina,
			Technique: data.Technique,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:          data.ID,
		ExternalID:  data.ExternalID,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		PhotoURL:    data.PhotoURL,
		Role:        string(data.Role),
		Sport:       data.Sport,
		SkillLevel:  data.SkillLevel,
		Location:    data.Location,
		Age:         data.Age,
		Points:      data.Points,
		Badge:       string(data.Badge),
		Speed:       data.Metrics.Speed,
		Strength:    data.Metrics.Strength,
		Stamina:     data.Metrics.Stamina,
		Technique:   data.Metrics.Technique,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
