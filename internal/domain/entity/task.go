package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskCategory classifies a daily task.
type TaskCategory string

const (
	TaskCategoryTraining  TaskCategory = "training"
	TaskCategoryNutrition TaskCategory = "nutrition"
	TaskCategoryRecovery  TaskCategory = "recovery"
	TaskCategoryAnalysis  TaskCategory = "analysis"
)

// Valid reports whether the category is one of the known values.
func (c TaskCategory) Valid() bool {
	switch c {
	case TaskCategoryTraining, TaskCategoryNutrition, TaskCategoryRecovery, TaskCategoryAnalysis:
		return true
	}

	return false
}

// TaskDifficulty grades a daily task.
type TaskDifficulty string

const (
	TaskDifficultyEasy   TaskDifficulty = "easy"
	TaskDifficultyMedium TaskDifficulty = "medium"
	TaskDifficultyHard   TaskDifficulty = "hard"
)

// Valid reports whether the difficulty is one of the known values.
func (d TaskDifficulty) Valid() bool {
	switch d {
	case TaskDifficultyEasy, TaskDifficultyMedium, TaskDifficultyHard:
		return true
	}

	return false
}

// DailyTask is a single unit of daily work for a user. A nil UserID marks a
// global template task. The only lifecycle transition is pending -> completed,
// exactly once; completing an already-completed task is a no-op.
type DailyTask struct {
	ID            uuid.UUID
	Title         string
	Description   string
	Points        int
	Category      TaskCategory
	Difficulty    TaskDifficulty
	AIRecommended bool
	UserID        *uuid.UUID
	Completed     bool
	CompletedAt   *time.Time
	DueDate       time.Time
	CreatedAt     time.Time
}
