package repository

import (
	"context"
	"time"

	"talenttrack/internal/domain/entity"

	"github.com/google/uuid"
)

// PerformanceRepository defines the standard operations for performance record persistence.
type PerformanceRepository interface {
	// FindByUser retrieves a user's performance records ordered by recording time ascending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PerformanceRecord, error)

	// CountByUsersSince counts records across the given users recorded at or after the cutoff.
	CountByUsersSince(ctx context.Context, userIDs []uuid.UUID, since time.Time) (int64, error)

	// Create persists a new performance record to the storage.
	Create(ctx context.Context, record *entity.PerformanceRecord) error
}
