package model

import (
	"time"

	"github.com/google/uuid"
)

// TalentModel is the GORM-specific struct for the 'talents' table.
type TalentModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string     `gorm:"type:text;not null"`
	Sport         string     `gorm:"type:text;not null"`
	Category      string     `gorm:"type:text"`
	Description   string     `gorm:"type:text"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Approved      bool       `gorm:"not null;default:false"`
	ApprovedBy    *uuid.UUID `gorm:"type:uuid"`
	PointsAwarded int        `gorm:"not null;default:0"`
	CreatedAt     time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (TalentModel) TableName() string {
	return "talents"
}
