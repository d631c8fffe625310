package repository

import (
	"context"
	"errors"

	"talenttrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCoachLinkNotFound is a domain-specific error returned when a coach-athlete link is not found.
var ErrCoachLinkNotFound = errors.New("coach athlete link not found")

// CoachRepository defines the standard operations for coach roster persistence.
type CoachRepository interface {
	// FindLink retrieves the link between a coach and an athlete, if any.
	FindLink(ctx context.Context, coachID, athleteID uuid.UUID) (*entity.CoachAthlete, error)

	// FindAthletesByCoach retrieves all links on a coach's roster, oldest first.
	FindAthletesByCoach(ctx context.Context, coachID uuid.UUID) ([]*entity.CoachAthlete, error)

	// CreateLink adds an athlete to a coach's roster.
	CreateLink(ctx context.Context, link *entity.CoachAthlete) error
}
