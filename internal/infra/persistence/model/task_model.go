package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyTaskModel is the GORM-specific struct for the 'daily_tasks' table.
// A NULL user_id marks a global template task.
type DailyTaskModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string     `gorm:"type:text;not null"`
	Description   string     `gorm:"type:text"`
	Points        int        `gorm:"not null;default:0"`
	Category      string     `gorm:"type:text;not null"`
	Difficulty    string     `gorm:"type:text;not null;default:'medium'"`
	AIRecommended bool       `gorm:"column:ai_recommended;not null;default:false"`
	UserID        *uuid.UUID `gorm:"type:uuid;index:idx_daily_tasks_user_due"`
	Completed     bool       `gorm:"not null;default:false"`
	CompletedAt   *time.Time
	DueDate       time.Time `gorm:"not null;index:idx_daily_tasks_user_due"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DailyTaskModel) TableName() string {
	return "daily_tasks"
}
