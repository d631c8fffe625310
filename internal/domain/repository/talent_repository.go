package repository

import (
	"context"
	"errors"

	"talenttrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTalentNotFound is a domain-specific error returned when a talent is not found.
var ErrTalentNotFound = errors.New("talent not found")

// TalentRepository defines the standard operations for talent persistence.
type TalentRepository interface {
	// FindByID retrieves a single talent by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Talent, error)

	// FindAll retrieves all talents ordered by creation time descending.
	FindAll(ctx context.Context) ([]*entity.Talent, error)

	// FindByUser retrieves all talents submitted by a specific user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Talent, error)

	// CountByUser returns the number of talents a user has submitted.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// Create persists a new talent entity to the storage.
	Create(ctx context.Context, talent *entity.Talent) error

	// Update modifies an existing talent entity in the storage.
	Update(ctx context.Context, talent *entity.Talent) error
}
