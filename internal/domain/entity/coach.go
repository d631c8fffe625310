package entity

import (
	"time"

	"github.com/google/uuid"
)

// CoachAthlete links a coach to an athlete on their roster. Append-only.
type CoachAthlete struct {
	ID         uuid.UUID
	CoachID    uuid.UUID
	AthleteID  uuid.UUID
	ApprovedAt time.Time
	CreatedAt  time.Time
}

// PerformanceRecord is a point-in-time snapshot of an athlete's metrics,
// optionally annotated by the recording coach. Append-only audit trail.
type PerformanceRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Sport      string
	Metrics    Metrics
	Notes      string
	RecordedBy *uuid.UUID // Coach who recorded the snapshot, nil for self-reports.
	RecordedAt time.Time
}
