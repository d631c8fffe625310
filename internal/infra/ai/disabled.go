package ai

import (
	"context"

	"talenttrack/internal/domain/entity"
	"talenttrack/internal/domain/service"
)

// disabledRecommender is the Recommender used when AI features are switched
// off. Every call reports ErrRecommenderDisabled so the task path takes its
// fallback and the analysis endpoint surfaces an unavailable error.
type disabledRecommender struct{}

func (*disabledRecommender) GenerateTaskRecommendations(context.Context, *service.AthleteProfile) ([]*service.TaskRecommendation, error) {
	return nil, service.ErrRecommenderDisabled
}

func (*disabledRecommender) AnalyzeInjuryRisk(context.Context, *service.AthleteProfile, []*entity.PerformanceRecord) (*service.InjuryAnalysis, error) {
	return nil, service.ErrRecommenderDisabled
}
