package postgres

import (
	"context"
	"time"

	"talenttrack/internal/domain/entity"
	domainerrors "talenttrack/internal/domain/errors"
	"talenttrack/internal/domain/repository"
	"talenttrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// performanceRepository implements the repository.PerformanceRepository interface.
type performanceRepository struct {
	db *gorm.DB
}

// NewPerformanceRepository is the constructor for performanceRepository.
func NewPerformanceRepository(db *gorm.DB) repository.PerformanceRepository {
	return &performanceRepository{
		db: db,
	}
}

// FindByUser retrieves a user's performance records ordered by recording time ascending.
func (repo *performanceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PerformanceRecord, error) {
	var recordModels []*model.PerformanceRecordModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list performance records")
	}

	records := make([]*entity.PerformanceRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toPerformanceRecordDomain(recordM))
	}

	return records, nil
}

// CountByUsersSince counts records across the given users recorded at or after the cutoff.
func (repo *performanceRepository) CountByUsersSince(ctx context.Context, userIDs []uuid.UUID, since time.Time) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PerformanceRecordModel{}).
		Where("user_id IN ? AND recorded_at >= ?", userIDs, since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recent performance records")
	}

	return count, nil
}

// Create persists a new performance record to the storage.
func (repo *performanceRepository) Create(ctx context.Context, record *entity.PerformanceRecord) error {
	recordM := fromPerformanceRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("performance record references unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create performance record")
	}

	record.ID = recordM.ID

	return nil
}

func toPerformanceRecordDomain(data *model.PerformanceRecordModel) *entity.PerformanceRecord {
	return &entity.PerformanceRecord{
		ID:     data.ID,
		UserID: data.UserID,
		Sport:  data.Sport,
		Metrics: entity.Metrics{
			Speed:     data.Speed,
			Strength:  data.Strength,
			Stamina:   data.Stamina,
			Technique: data.Technique,
		},
		Notes:      data.Notes,
		RecordedBy: data.RecordedBy,
		RecordedAt: data.RecordedAt,
	}
}

func fromPerformanceRecordDomain(data *entity.PerformanceRecord) *model.PerformanceRecordModel {
	return &model.PerformanceRecordModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Sport:      data.Sport,
		Speed:      data.Metrics.Speed,
		Strength:   data.Metrics.Strength,
		Stamina:    data.Metrics.Stamina,
		Technique:  data.Metrics.Technique,
		Notes:      data.Notes,
		RecordedBy: data.RecordedBy,
		RecordedAt: data.RecordedAt,
	}
}
