// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"
	"errors"

	"talenttrack/internal/domain/entity"
)

// ErrRecommenderDisabled is returned by recommender implementations when AI
// features are switched off in the configuration.
var ErrRecommenderDisabled = errors.New("recommender disabled")

// AthleteProfile is the slice of user state a recommender is allowed to see.
type AthleteProfile struct {
	Sport      string         `json:"sport"`
	SkillLevel string         `json:"skillLevel"`
	Age        int            `json:"age,omitempty"`
	Points     int            `json:"points"`
	Badge      entity.Badge   `json:"badge"`
	Metrics    entity.Metrics `json:"metrics"`
}

// TaskRecommendation is a single generated daily task before persistence.
type TaskRecommendation struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Points      int                   `json:"points"`
	Category    entity.TaskCategory   `json:"category"`
	Difficulty  entity.TaskDifficulty `json:"difficulty"`
}

// InjuryAnalysis is the structured result of an injury risk assessment.
type InjuryAnalysis struct {
	RiskLevel       entity.RiskLevel `json:"riskLevel"`
	RiskFactors     []string         `json:"riskFactors"`
	Recommendations []string         `json:"recommendations"`
	Confidence      float64          `json:"confidence"`
}

// FallbackInjuryAnalysis is returned when the provider is reachable in
// principle but a particular analysis fails.
func FallbackInjuryAnalysis() *InjuryAnalysis {
	return &InjuryAnalysis{
		RiskLevel:       entity.RiskLevelLow,
		RiskFactors:     []string{},
		Recommendations: []string{"Maintain regular training schedule", "Ensure proper warm-up and cool-down"},
		Confidence:      0.5,
	}
}

// Recommender defines the interface for AI-assisted task generation and
// injury risk analysis. Implementations must be safe for concurrent use.
type Recommender interface {
	// GenerateTaskRecommendations produces personalized daily tasks for the
	// given athlete profile. Returning an error means no usable set was
	// produced; callers fall back to the static task pair.
	GenerateTaskRecommendations(ctx context.Context, profile *AthleteProfile) ([]*TaskRecommendation, error)

	// AnalyzeInjuryRisk assesses injury risk from recent performance data.
	// Returns ErrRecommenderDisabled when AI features are off.
	AnalyzeInjuryRisk(ctx context.Context, profile *AthleteProfile, records []*entity.PerformanceRecord) (*InjuryAnalysis, error)
}
