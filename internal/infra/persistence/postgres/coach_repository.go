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

// coachRepository implements the repository.CoachRepository interface.
type coachRepository struct {
	db *gorm.DB
}

// NewCoachRepository is the constructor for coachRepository.
func NewCoachRepository(db *gorm.DB) repository.CoachRepository {
	return &coachRepository{
		db: db,
	}
}

// FindLink retrieves the link between a coach and an athlete, if any.
func (repo *coachRepository) FindLink(ctx context.Context, coachID, athleteID uuid.UUID) (*entity.CoachAthlete, error) {
	var linkM model.CoachAthleteModel

	if err := repo.db.WithContext(ctx).
		Where("coach_id = ? AND athlete_id = ?", coachID, athleteID).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCoachLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find roster link")
	}

	return toCoachAthleteDomain(&linkM), nil
}

// FindAthletesByCoach retrieves all links on a coach's roster, oldest first.
func (repo *coachRepository) FindAthletesByCoach(ctx context.Context, coachID uuid.UUID) ([]*entity.CoachAthlete, error) {
	var linkModels []*model.CoachAthleteModel

	if err := repo.db.WithContext(ctx).
		Where("coach_id = ?", coachID).
		Order("created_at ASC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roster links")
	}

	links := make([]*entity.CoachAthlete, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, toCoachAthleteDomain(linkM))
	}

	return links, nil
}

// CreateLink adds an athlete to a coach's roster.
func (repo *coachRepository) CreateLink(ctx context.Context, link *entity.CoachAthlete) error {
	linkM := fromCoachAthleteDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("athlete already on roster")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("roster link references unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create roster link")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt

	return nil
}

func toCoachAthleteDomain(data *model.CoachAthleteModel) *entity.CoachAthlete {
	return &entity.CoachAthlete{
		ID:         data.ID,
		CoachID:    data.CoachID,
		AthleteID:  data.AthleteID,
		ApprovedAt: data.ApprovedAt,
		CreatedAt:  data.CreatedAt,
	}
}

func fromCoachAthleteDomain(data *entity.CoachAthlete) *model.CoachAthleteModel {
	return &model.CoachAthleteModel{
		ID:         data.ID,
		CoachID:    data.CoachID,
		AthleteID:  data.AthleteID,
		ApprovedAt: data.ApprovedAt,
		CreatedAt:  data.CreatedAt,
	}
}
