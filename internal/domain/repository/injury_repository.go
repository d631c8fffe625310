package repository

import (
	"context"
	"errors"

	"talenttrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAlertNotFound is a domain-specific error returned when an injury alert is not found.
var ErrAlertNotFound = errors.New("injury alert not found")

// InjuryRepository defines the standard operations for injury alert persistence.
type InjuryRepository interface {
	// FindByID retrieves a single injury alert by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InjuryAlert, error)

	// FindByCoach retrieves alerts raised for a coach, newest first.
	FindByCoach(ctx context.Context, coachID uuid.UUID) ([]*entity.InjuryAlert, error)

	// CountUnresolvedByCoach counts a coach's open alerts.
	CountUnresolvedByCoach(ctx context.Context, coachID uuid.UUID) (int64, error)

	// Create persists a new injury alert to the storage.
	Create(ctx context.Context, alert *entity.InjuryAlert) error

	// Update modifies an existing injury alert in the storage.
	Update(ctx context.Context, alert *entity.InjuryAlert) error
}
