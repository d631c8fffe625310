// Package ai implements the domain's Recommender interface against the
// Gemini API, with a disabled implementation for deployments that switch AI
// features off.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"talenttrack/config"
	"talenttrack/internal/domain/entity"
	"talenttrack/internal/domain/service"
	"talenttrack/internal/errors"

	"go.uber.org/fx"
	"google.golang.org/genai"
)

const (
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 10 * time.Second

	maxBatchSize   = 5
	maxTaskPoints  = 50
	taskPromptTmpl = `You are a sports training assistant. Generate 3 personalized daily tasks for this athlete:
%s

Respond with ONLY a JSON array, no markdown, of objects with exactly these fields:
"title" (string), "description" (string), "points" (integer 5-50),
"category" (one of "training", "nutrition", "recovery", "analysis"),
"difficulty" (one of "easy", "medium", "hard").`

	injuryPromptTmpl = `You are a sports medicine assistant. Assess injury risk for this athlete:
%s

Recent performance snapshots, oldest first:
%s

Respond with ONLY a JSON object, no markdown, with exactly these fields:
"riskLevel" (one of "low", "medium", "high", "critical"),
"riskFactors" (array of strings), "recommendations" (array of strings),
"confidence" (number 0-1).`
)

// geminiRecommender implements service.Recommender over the Gemini API.
type geminiRecommender struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// Params defines the dependencies for building a Recommender.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewRecommender builds the configured Recommender implementation. When AI
// features are disabled or no API key is set, the disabled implementation is
// returned and every call reports ErrRecommenderDisabled.
func NewRecommender(params Params) (service.Recommender, error) {
	aiCfg := params.Config.AI
	if aiCfg == nil || !aiCfg.Enabled || aiCfg.APIKey == "" {
		params.Logger.Info("AI features disabled, recommender will not be used")

		return &disabledRecommender{}, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: aiCfg.APIKey})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	model := aiCfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := aiCfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &geminiRecommender{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  params.Logger,
	}, nil
}

// GenerateTaskRecommendations asks the model for a personalized daily batch.
// The whole response must parse and validate before anything is returned, so
// a failed call never yields a partial batch.
func (r *geminiRecommender) GenerateTaskRecommendations(ctx context.Context, profile *service.AthleteProfile) ([]*service.TaskRecommendation, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode athlete profile")
	}

	raw, err := r.generate(ctx, fmt.Sprintf(taskPromptTmpl, profileJSON))
	if err != nil {
		return nil, err
	}

	var recommendations []*service.TaskRecommendation
	if err := json.Unmarshal([]byte(raw), &recommendations); err != nil {
		return nil, errors.Wrap(err, "failed to decode task recommendations")
	}
	if len(recommendations) == 0 {
		return nil, errors.New("model returned an empty task set")
	}
	if len(recommendations) > maxBatchSize {
		recommendations = recommendations[:maxBatchSize]
	}

	for i, rec := range recommendations {
		if err := validateRecommendation(rec); err != nil {
			return nil, errors.Wrapf(err, "invalid recommendation at index %d", i)
		}
	}

	return recommendations, nil
}

// AnalyzeInjuryRisk asks the model for a structured risk assessment.
func (r *geminiRecommender) AnalyzeInjuryRisk(ctx context.Context, profile *service.AthleteProfile, records []*entity.PerformanceRecord) (*service.InjuryAnalysis, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode athlete profile")
	}
	recordsJSON, err := json.Marshal(summarizeRecords(records))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode performance records")
	}

	raw, err := r.generate(ctx, fmt.Sprintf(injuryPromptTmpl, profileJSON, recordsJSON))
	if err != nil {
		return nil, err
	}

	var analysis service.InjuryAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, errors.Wrap(err, "failed to decode injury analysis")
	}
	if !analysis.RiskLevel.Valid() {
		return nil, errors.Errorf("model returned unknown risk level %q", analysis.RiskLevel)
	}
	if analysis.Confidence < 0 || analysis.Confidence > 1 {
		return nil, errors.Errorf("model returned out-of-range confidence %v", analysis.Confidence)
	}
	if analysis.RiskFactors == nil {
		analysis.RiskFactors = []string{}
	}
	if analysis.Recommendations == nil {
		analysis.Recommendations = []string{}
	}

	return &analysis, nil
}

func (r *geminiRecommender) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.Models.GenerateContent(ctx, r.model, genai.Text(prompt), nil)
	if err != nil {
		return "", errors.Wrap(err, "Gemini generation failed")
	}

	return cleanModelOutput(resp.Text()), nil
}

// cleanModelOutput strips the markdown fences models wrap JSON in despite
// instructions.
func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	return strings.TrimSpace(cleaned)
}

func validateRecommendation(rec *service.TaskRecommendation) error {
	if rec == nil || rec.Title == "" {
		return errors.New("missing title")
	}
	if rec.Points <= 0 || rec.Points > maxTaskPoints {
		return errors.Errorf("points %d out of range", rec.Points)
	}
	if !rec.Category.Valid() {
		return errors.Errorf("unknown category %q", rec.Category)
	}
	if !rec.Difficulty.Valid() {
		return errors.Errorf("unknown difficulty %q", rec.Difficulty)
	}

	return nil
}

type recordSummary struct {
	RecordedAt time.Time      `json:"recordedAt"`
	Metrics    entity.Metrics `json:"metrics"`
	Notes      string         `json:"notes,omitempty"`
}

func summarizeRecords(records []*entity.PerformanceRecord) []recordSummary {
	summaries := make([]recordSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, recordSummary{
			RecordedAt: record.RecordedAt,
			Metrics:    record.Metrics,
			Notes:      record.Notes,
		})
	}

	return summaries
}
