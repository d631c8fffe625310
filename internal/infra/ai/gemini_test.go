package ai

import (
	"io"
	"log/slog"
	"testing"

	"talenttrack/config"
	"talenttrack/internal/domain/entity"
	"talenttrack/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanModelOutput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain json", in: `[{"title":"x"}]`, want: `[{"title":"x"}]`},
		{name: "json fence", in: "```json\n[{\"title\":\"x\"}]\n```", want: `[{"title":"x"}]`},
		{name: "bare fence", in: "```\n{}\n```", want: "{}"},
		{name: "surrounding whitespace", in: "  \n{}\n  ", want: "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanModelOutput(tt.in))
		})
	}
}

func TestValidateRecommendation(t *testing.T) {
	valid := &service.TaskRecommendation{
		Title:      "Sprint drills",
		Points:     25,
		Category:   entity.TaskCategoryTraining,
		Difficulty: entity.TaskDifficultyMedium,
	}
	assert.NoError(t, validateRecommendation(valid))

	tests := []struct {
		name   string
		mutate func(rec *service.TaskRecommendation)
	}{
		{name: "missing title", mutate: func(rec *service.TaskRecommendation) { rec.Title = "" }},
		{name: "zero points", mutate: func(rec *service.TaskRecommendation) { rec.Points = 0 }},
		{name: "points above cap", mutate: func(rec *service.TaskRecommendation) { rec.Points = maxTaskPoints + 1 }},
		{name: "unknown category", mutate: func(rec *service.TaskRecommendation) { rec.Category = "homework" }},
		{name: "unknown difficulty", mutate: func(rec *service.TaskRecommendation) { rec.Difficulty = "impossible" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := *valid
			tt.mutate(&rec)
			assert.Error(t, validateRecommendation(&rec))
		})
	}
}

func TestNewRecommender_DisabledWithoutKey(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		ai   *config.AIConfig
	}{
		{name: "nil config", ai: nil},
		{name: "disabled", ai: &config.AIConfig{Enabled: false, APIKey: "key"}},
		{name: "missing key", ai: &config.AIConfig{Enabled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recommender, err := NewRecommender(Params{
				Config: &config.Config{AI: tt.ai},
				Logger: logger,
			})
			require.NoError(t, err)

			_, err = recommender.GenerateTaskRecommendations(t.Context(), &service.AthleteProfile{})
			assert.ErrorIs(t, err, service.ErrRecommenderDisabled)

			_, err = recommender.AnalyzeInjuryRisk(t.Context(), &service.AthleteProfile{}, nil)
			assert.ErrorIs(t, err, service.ErrRecommenderDisabled)
		})
	}
}
