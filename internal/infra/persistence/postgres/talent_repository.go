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
)

// talentRepository implements the repository.TalentRepository interface.
type talentRepository struct {
	db *gorm.DB
}

// NewTalentRepository is the constructor for talentRepository.
func NewTalentRepository(db *gorm.DB) repository.TalentRepository {
	return &talentRepository{
		db: db,
	}
}

// FindByID retrieves a single talent by its unique ID.
func (repo *talentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Talent, error) {
	var talentM model.TalentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&talentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTalentNotFound
		}

		return nil, errors.Wrap(err, "failed to find talent by ID")
	}

	return toTalentDomain(&talentM), nil
}

// FindAll retrieves all talents ordered by creation time descending.
func (repo *talentRepository) FindAll(ctx context.Context) ([]*entity.Talent, error) {
	var talentModels []*model.TalentModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&talentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list talents")
	}

	return toTalentDomainSlice(talentModels), nil
}

// FindByUser retrieves all talents submitted by a specific user, newest first.
func (repo *talentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Talent, error) {
	var talentModels []*model.TalentModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&talentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list talents by user")
	}

	return toTalentDomainSlice(talentModels), nil
}

// CountByUser returns the number of talents a user has submitted.
func (repo *talentRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TalentModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count talents by user")
	}

	return count, nil
}

// Create persists a new talent entity to the storage.
func (repo *talentRepository) Create(ctx context.Context, talent *entity.Talent) error {
	talentM := fromTalentDomain(talent)

	if err := repo.db.WithContext(ctx).Create(talentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("talent references unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required talent information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create talent")
	}

	talent.ID = talentM.ID
	talent.CreatedAt = talentM.CreatedAt

	return nil
}

// Update modifies an existing talent entity in the storage.
func (repo *talentRepository) Update(ctx context.Context, talent *entity.Talent) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TalentModel{}).
		Where("id = ?", talent.ID).
		Updates(map[string]interface{}{
			"approved":    talent.Approved,
			"approved_by": talent.ApprovedBy,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update talent")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTalentNotFound
	}

	return nil
}

func toTalentDomainSlice(data []*model.TalentModel) []*entity.Talent {
	talents := make([]*entity.Talent, 0, len(data))
	for _, talentM := range data {
		talents = append(talents, toTalentDomain(talentM))
	}

	return talents
}

func toTalentDomain(data *model.TalentModel) *entity.Talent {
	return &entity.Talent{
		ID:            data.ID,
		Name:          data.Name,
		Sport:         data.Sport,
		Category:      data.Category,
		Description:   data.Description,
		UserID:        data.UserID,
		Approved:      data.Approved,
		ApprovedBy:    data.ApprovedBy,
		PointsAwarded: data.PointsAwarded,
		CreatedAt:     data.CreatedAt,
	}
}

func fromTalentDomain(data *entity.Talent) *model.TalentModel {
	return &model.TalentModel{
		ID:            data.ID,
		Name:          data.Name,
		Sport:         data.Sport,
		Category:      data.Category,
		Description:   data.Description,
		UserID:        data.UserID,
		Approved:      data.Approved,
		ApprovedBy:    data.ApprovedBy,
		PointsAwarded: data.PointsAwarded,
		CreatedAt:     data.CreatedAt,
	}
}
