package model

import (
	"time"

	"github.com/google/uuid"
)

// AchievementModel is the GORM-specific struct for the 'achievements' table.
type AchievementModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:text;not null;uniqueIndex"`
	Description    string    `gorm:"type:text"`
	Icon           string    `gorm:"type:text"`
	PointsRequired int       `gorm:"not null;index"`
	Badge          string    `gorm:"type:text"`
	Type           string    `gorm:"type:text;not null;default:'milestone'"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AchievementModel) TableName() string {
	return "achievements"
}

// UserAchievementModel is the GORM-specific struct for the 'user_achievements'
// table. The composite unique index enforces the append-only, never-duplicated
// unlock invariant at the storage layer.
type UserAchievementModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_achievement"`
	AchievementID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_achievement"`
	PointsEarned  int       `gorm:"not null;default:0"`
	UnlockedAt    time.Time `gorm:"index"`

	Achievement *AchievementModel `gorm:"foreignKey:AchievementID"`
}

// TableName explicitly sets the table name for GORM.
func (UserAchievementModel) TableName() string {
	return "user_achievements"
}
