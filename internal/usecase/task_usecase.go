package usecase

import (
	"context"

	"talenttrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CompleteTaskOutput returns the completed task together with the award it
// triggered. PointsAwarded is zero when the completion was a repeat.
type CompleteTaskOutput struct {
	Task          *entity.DailyTask
	PointsAwarded int
	NewTotal      int
	Badge         entity.Badge
	Unlocked      []*entity.UserAchievement
}

// TaskUsecase defines the interface for daily task operations.
type TaskUsecase interface {
	// GetDailyTasks returns the user's current task batch, generating a fresh
	// one first when none exists for today. Generation is atomic per user.
	GetDailyTasks(ctx context.Context, userID uuid.UUID) ([]*entity.DailyTask, error)

	// CompleteTask marks a task complete and awards its points exactly once.
	// Completing an already-completed task is a no-op returning the task as is.
	CompleteTask(ctx context.Context, userID, taskID uuid.UUID) (*CompleteTaskOutput, error)
}
