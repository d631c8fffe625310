package usecase

import (
	"context"

	"talenttrack/internal/domain/entity"
	"talenttrack/internal/domain/service"

	"github.com/google/uuid"
)

// CreateAlertInput defines the data required to raise an injury alert.
type CreateAlertInput struct {
	AthleteID       uuid.UUID
	CoachID         *uuid.UUID
	RiskLevel       entity.RiskLevel
	BodyPart        string
	Description     string
	Recommendations string
}

// InjuryUsecase defines the interface for injury alert and risk analysis operations.
type InjuryUsecase interface {
	// CreateAlert raises a new injury alert.
	CreateAlert(ctx context.Context, input *CreateAlertInput) (*entity.InjuryAlert, error)

	// ListAlerts retrieves a coach's alerts, newest first.
	ListAlerts(ctx context.Context, coachID uuid.UUID) ([]*entity.InjuryAlert, error)

	// ResolveAlert marks an alert resolved. Resolving twice is a no-op.
	ResolveAlert(ctx context.Context, alertID uuid.UUID) (*entity.InjuryAlert, error)

	// AnalyzeRisk runs an AI risk assessment over the athlete's recent
	// performance data. Returns ErrAIUnavailable when AI features are off;
	// a reachable-but-failed analysis degrades to the conservative fallback.
	AnalyzeRisk(ctx context.Context, athleteID uuid.UUID) (*service.InjuryAnalysis, error)
}
