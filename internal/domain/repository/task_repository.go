package repository

import (
	"context"
	"errors"
	"time"

	"talenttrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is a domain-specific error returned when a daily task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for daily task persistence.
type TaskRepository interface {
	// FindByID retrieves a single daily task by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DailyTask, error)

	// FindCurrentByUser retrieves a user's tasks whose due date falls on or
	// after the given day, ordered by due date ascending.
	FindCurrentByUser(ctx context.Context, userID uuid.UUID, day time.Time) ([]*entity.DailyTask, error)

	// Create persists a new daily task entity to the storage.
	Create(ctx context.Context, task *entity.DailyTask) error

	// CreateBatch persists multiple daily tasks in a single statement.
	CreateBatch(ctx context.Context, tasks []*entity.DailyTask) error

	// Update modifies an existing daily task entity in the storage.
	Update(ctx context.Context, task *entity.DailyTask) error
}
