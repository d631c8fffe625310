// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role classifies what a user can do in the system.
type Role string

const (
	RoleAthlete Role = "athlete"
	RoleCoach   Role = "coach"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAthlete, RoleCoach, RoleAdmin:
		return true
	}

	return false
}

// Badge is the discrete rank label derived purely from cumulative points.
type Badge string

const (
	BadgeBronze   Badge = "Bronze"
	BadgeSilver   Badge = "Silver"
	BadgeGold     Badge = "Gold"
	BadgePlatinum Badge = "Platinum"
)

// Metrics holds the four bounded skill scores (0-10) tracked per athlete.
type Metrics struct {
	Speed     float64 `json:"speed"`
	Strength  float64 `json:"strength"`
	Stamina   float64 `json:"stamina"`
	Technique float64 `json:"technique"`
}

// Average returns the mean of the four skill scores.
func (m Metrics) Average() float64 {
	return (m.Speed + m.Strength + m.Stamina + m.Technique) / 4
}

// User is the core entity of the system. Points only ever grow through the
// scoring engine, and Badge must always equal the tier resolved from Points.
type User struct {
	ID          uuid.UUID // Globally unique identifier, assigned at creation.
	ExternalID  string    // Stable identifier issued by the external auth provider, unique.
	Email       string
	DisplayName string
	PhotoURL    string
	Role        Role
	Sport       string
	SkillLevel  string
	Location    string
	Age         int
	Points      int
	Badge       Badge
	Metrics     Metrics
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
