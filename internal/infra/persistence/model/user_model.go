// Package model contains the GORM-specific structs mapping domain entities to
// database tables. Keeping them apart from the entities lets the schema evolve
// without leaking storage concerns into the domain.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ExternalID  string    `gorm:"type:text;not null;uniqueIndex"`
	Email       string    `gorm:"type:text"`
	DisplayName string    `gorm:"type:text;not null"`
	PhotoURL    string    `gorm:"type:text"`
	Role        string    `gorm:"type:text;not null;default:'athlete';index"`
	Sport       string    `gorm:"type:text;index"`
	SkillLevel  string    `gorm:"type:text"`
	Location    string    `gorm:"type:text"`
	Age         int       `gorm:"not null;default:0"`
	Points      int       `gorm:"not null;default:0"`
	Badge       string    `gorm:"type:text;not null;default:'Bronze'"`
	Speed       float64   `gorm:"type:decimal(4,2);not null;default:0"`
	Strength    float64   `gorm:"type:decimal(4,2);not null;default:0"`
	Stamina     float64   `gorm:"type:decimal(4,2);not null;default:0"`
	Technique   float64   `gorm:"type:decimal(4,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
