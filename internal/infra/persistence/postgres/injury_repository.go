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

// injuryRepository implements the repository.InjuryRepository interface.
type injuryRepository struct {
	db *gorm.DB
}

// NewInjuryRepository is the constructor for injuryRepository.
func NewInjuryRepository(db *gorm.DB) repository.InjuryRepository {
	return &injuryRepository{
		db: db,
	}
}

// FindByID retrieves a single injury alert by its unique ID.
func (repo *injuryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InjuryAlert, error) {
	var alertM model.InjuryAlertModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by ID")
	}

	return toInjuryAlertDomain(&alertM), nil
}

// FindByCoach retrieves alerts raised for a coach, newest first.
func (repo *injuryRepository) FindByCoach(ctx context.Context, coachID uuid.UUID) ([]*entity.InjuryAlert, error) {
	var alertModels []*model.InjuryAlertModel

	if err := repo.db.WithContext(ctx).
		Where("coach_id = ?", coachID).
		Order("created_at DESC").
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list alerts by coach")
	}

	alerts := make([]*entity.InjuryAlert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toInjuryAlertDomain(alertM))
	}

	return alerts, nil
}

// CountUnresolvedByCoach counts a coach's open alerts.
func (repo *injuryRepository) CountUnresolvedByCoach(ctx context.Context, coachID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.InjuryAlertModel{}).
		Where("coach_id = ? AND resolved = false", coachID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count open alerts")
	}

	return count, nil
}

// Create persists a new injury alert to the storage.
func (repo *injuryRepository) Create(ctx context.Context, alert *entity.InjuryAlert) error {
	alertM := fromInjuryAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("alert references unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create injury alert")
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt

	return nil
}

// Update modifies an existing injury alert in the storage.
func (repo *injuryRepository) Update(ctx context.Context, alert *entity.InjuryAlert) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InjuryAlertModel{}).
		Where("id = ?", alert.ID).
		Updates(map[string]interface{}{
			"resolved":    alert.Resolved,
			"resolved_at": alert.ResolvedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update injury alert")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

func toInjuryAlertDomain(data *model.InjuryAlertModel) *entity.InjuryAlert {
	return &entity.InjuryAlert{
		ID:              data.ID,
		AthleteID:       data.AthleteID,
		CoachID:         data.CoachID,
		RiskLevel:       entity.RiskLevel(data.RiskLevel),
		BodyPart:        data.BodyPart,
		Description:     data.Description,
		Recommendations: data.Recommendations,
		Resolved:        data.Resolved,
		ResolvedAt:      data.ResolvedAt,
		CreatedAt:       data.CreatedAt,
	}
}

func fromInjuryAlertDomain(data *entity.InjuryAlert) *model.InjuryAlertModel {
	return &model.InjuryAlertModel{
		ID:              data.ID,
		AthleteID:       data.AthleteID,
		CoachID:         data.CoachID,
		RiskLevel:       string(data.RiskLevel),
		BodyPart:        data.BodyPart,
		Description:     data.Description,
		Recommendations: data.Recommendations,
		Resolved:        data.Resolved,
		ResolvedAt:      data.ResolvedAt,
		CreatedAt:       data.CreatedAt,
	}
}
