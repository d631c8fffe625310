package entity

import (
	"time"

	"github.com/google/uuid"
)

// Talent is a skill submitted by an athlete for review. PointsAwarded is
// fixed at creation and never changes afterwards; submission bonuses go to
// the user's running total, not to this record.
type Talent struct {
	ID            uuid.UUID
	Name          string
	Sport         string
	Category      string
	Description   string
	UserID        uuid.UUID  // Owning athlete.
	Approved      bool       // Review flag set by a coach; does not alter points.
	ApprovedBy    *uuid.UUID // Coach who approved, nil until approval.
	PointsAwarded int
	CreatedAt     time.Time
}
