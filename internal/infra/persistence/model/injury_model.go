package model

import (
	"time"

	"github.com/google/uuid"
)

// InjuryAlertModel is the GORM-specific struct for the 'injury_alerts' table.
type InjuryAlertModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AthleteID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	CoachID         *uuid.UUID `gorm:"type:uuid;index"`
	RiskLevel       string     `gorm:"type:text;not null"`
	BodyPart        string     `gorm:"type:text"`
	Description     string     `gorm:"type:text"`
	Recommendations string     `gorm:"type:text"`
	Resolved        bool       `gorm:"not null;default:false"`
	ResolvedAt      *time.Time
	CreatedAt       time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (InjuryAlertModel) TableName() string {
	return "injury_alerts"
}
