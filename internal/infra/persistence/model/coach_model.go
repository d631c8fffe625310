package model

import (
	"time"

	"github.com/google/uuid"
)

// CoachAthleteModel is the GORM-specific struct for the 'coach_athletes' table.
type CoachAthleteModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CoachID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_coach_athlete"`
	AthleteID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_coach_athlete"`
	ApprovedAt time.Time
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CoachAthleteModel) TableName() string {
	return "coach_athletes"
}

// PerformanceRecordModel is the GORM-specific struct for the
// 'performance_records' table.
type PerformanceRecordModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_performance_user_recorded"`
	Sport      string     `gorm:"type:text"`
	Speed      float64    `gorm:"type:decimal(4,2);not null;default:0"`
	Strength   float64    `gorm:"type:decimal(4,2);not null;default:0"`
	Stamina    float64    `gorm:"type:decimal(4,2);not null;default:0"`
	Technique  float64    `gorm:"type:decimal(4,2);not null;default:0"`
	Notes      string     `gorm:"type:text"`
	RecordedBy *uuid.UUID `gorm:"type:uuid"`
	RecordedAt time.Time  `gorm:"not null;index:idx_performance_user_recorded"`
}

// TableName explicitly sets the table name for GORM.
func (PerformanceRecordModel) TableName() string {
	return "performance_records"
}
