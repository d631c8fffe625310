package entity

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel grades an injury alert.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// Valid reports whether the risk level is one of the known values.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical:
		return true
	}

	return false
}

// InjuryAlert flags an athlete at risk. Created by risk analysis, resolved by
// coach action.
type InjuryAlert struct {
	ID              uuid.UUID
	AthleteID       uuid.UUID
	CoachID         *uuid.UUID
	RiskLevel       RiskLevel
	BodyPart        string
	Description     string
	Recommendations string
	Resolved        bool
	ResolvedAt      *time.Time
	CreatedAt       time.Time
}
