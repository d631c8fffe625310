package entity

import (
	"time"

	"github.com/google/uuid"
)

// AchievementType classifies catalog entries.
type AchievementType string

const (
	AchievementTypeMilestone   AchievementType = "milestone"
	AchievementTypeStreak      AchievementType = "streak"
	AchievementTypePerformance AchievementType = "performance"
	AchievementTypeSpecial     AchievementType = "special"
)

// Achievement is a catalog entry unlocked when a user's point total crosses
// PointsRequired.
type Achievement struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Icon           string
	PointsRequired int
	Badge          Badge // Optional badge tag; empty when the entry is not tier-bound.
	Type           AchievementType
	CreatedAt      time.Time
}

// UserAchievement records an unlocked achievement for a user. Append-only:
// a (user, achievement) pair is never recorded twice.
type UserAchievement struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	AchievementID uuid.UUID
	PointsEarned  int // The user's point total at unlock time.
	UnlockedAt    time.Time

	// Achievement carries the catalog entry when the repository joins it in.
	Achievement *Achievement
}
