package usecase

import (
	"context"
	"time"

	"talenttrack/internal/domain/entity"

	"github.com/google/uuid"
)

// AddAthleteInput defines the data required to add an athlete to a roster.
type AddAthleteInput struct {
	CoachID   uuid.UUID
	AthleteID uuid.UUID
}

// RecordPerformanceInput defines the data required to record a performance snapshot.
type RecordPerformanceInput struct {
	UserID     uuid.UUID
	Sport      string
	Metrics    entity.Metrics
	Notes      string
	RecordedBy *uuid.UUID
}

// RosterEntry pairs a roster link with the athlete's current state.
type RosterEntry struct {
	Link    *entity.CoachAthlete `json:"link"`
	Athlete *entity.User         `json:"athlete"`
}

// CoachMetrics is the deterministic dashboard summary for a coach, recomputed
// from stored performance records on every call.
type CoachMetrics struct {
	TotalAthletes  int     `json:"totalAthletes"`
	AvgPerformance float64 `json:"avgPerformance"`
	ActiveSessions int     `json:"activeSessions"`
	OpenAlerts     int     `json:"openAlerts"`
	AvgImprovement float64 `json:"avgImprovement"`
}

// WeeklyProgress is one week's aggregate of a team's performance records.
type WeeklyProgress struct {
	WeekStart   time.Time `json:"weekStart"`
	AvgScore    float64   `json:"avgScore"`
	RecordCount int       `json:"recordCount"`
}

// CoachAnalytics is the trend view behind the coach analytics endpoint.
type CoachAnalytics struct {
	TeamProgress []*WeeklyProgress `json:"teamProgress"`
	TopPerformer *entity.User      `json:"topPerformer"`
}

// CoachUsecase defines the interface for coach roster and monitoring operations.
type CoachUsecase interface {
	// AddAthlete links an athlete to a coach's roster. Adding an athlete who
	// is already on the roster is a conflict.
	AddAthlete(ctx context.Context, input *AddAthleteInput) (*entity.CoachAthlete, error)

	// ListAthletes retrieves the coach's roster with current athlete state.
	ListAthletes(ctx context.Context, coachID uuid.UUID) ([]*RosterEntry, error)

	// GetMetrics computes the coach's dashboard summary.
	GetMetrics(ctx context.Context, coachID uuid.UUID) (*CoachMetrics, error)

	// GetAnalytics computes the last four weeks of team progress and the
	// current top performer.
	GetAnalytics(ctx context.Context, coachID uuid.UUID) (*CoachAnalytics, error)

	// RecordPerformance stores a performance snapshot and promotes it to the
	// athlete's current metrics.
	RecordPerformance(ctx context.Context, input *RecordPerformanceInput) (*entity.PerformanceRecord, error)

	// ListPerformance retrieves a user's performance records, oldest first.
	ListPerformance(ctx context.Context, userID uuid.UUID) ([]*entity.PerformanceRecord, error)
}
