package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "talenttrack/internal/delivery/context"
	"talenttrack/internal/domain/entity"
	domainerrors "talenttrack/internal/domain/errors"
	"talenttrack/internal/domain/repository"
	"talenttrack/internal/domain/service"
	"talenttrack/internal/infra/metrics"
	"talenttrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// injuryService implements the InjuryUsecase interface.
type injuryService struct {
	txManager       repository.TransactionManager
	userRepo        repository.UserRepository
	injuryRepo      repository.InjuryRepository
	performanceRepo repository.PerformanceRepository
	recommender     service.Recommender
	metrics         *metrics.Metrics
	logger          *slog.Logger
}

// InjuryServiceParams holds dependencies for injuryService, injected by Fx.
type InjuryServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	UserRepo        repository.UserRepository
	InjuryRepo      repository.InjuryRepository
	PerformanceRepo repository.PerformanceRepository
	Recommender     service.Recommender
	Metrics         *metrics.Metrics
	Logger          *slog.Logger
}

// NewInjuryService is the constructor for injuryService.
func NewInjuryService(params InjuryServiceParams) usecase.InjuryUsecase {
	return &injuryService{
		txManager:       params.TxManager,
		userRepo:        params.UserRepo,
		injuryRepo:      params.InjuryRepo,
		performanceRepo: params.PerformanceRepo,
		recommender:     params.Recommender,
		metrics:         params.Metrics,
		logger:          params.Logger,
	}
}

func (srv *injuryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAlert raises a new injury alert.
func (srv *injuryService) CreateAlert(ctx context.Context, input *usecase.CreateAlertInput) (*entity.InjuryAlert, error) {
	if !input.RiskLevel.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown risk level")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.AthleteID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("alert subject not found")
		}

		return nil, errors.Wrap(err, "failed to load alert subject")
	}

	alert := &entity.InjuryAlert{
		ID:              uuid.New(),
		AthleteID:       input.AthleteID,
		CoachID:         input.CoachID,
		RiskLevel:       input.RiskLevel,
		BodyPart:        input.BodyPart,
		Description:     input.Description,
		Recommendations: input.Recommendations,
		CreatedAt:       time.Now(),
	}
	if err := srv.injuryRepo.Create(ctx, alert); err != nil {
		return nil, errors.Wrap(err, "failed to create injury alert")
	}

	srv.log(ctx).Info("Injury alert raised", slog.Any("athleteID", input.AthleteID), slog.String("riskLevel", string(input.RiskLevel)))

	return alert, nil
}

// ListAlerts retrieves a coach's alerts, newest first.
func (srv *injuryService) ListAlerts(ctx context.Context, coachID uuid.UUID) ([]*entity.InjuryAlert, error) {
	alerts, err := srv.injuryRepo.FindByCoach(ctx, coachID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list injury alerts")
	}

	return alerts, nil
}

// ResolveAlert marks an alert resolved. Resolving an already-resolved alert
// returns it unchanged.
func (srv *injuryService) ResolveAlert(ctx context.Context, alertID uuid.UUID) (*entity.InjuryAlert, error) {
	var resolved *entity.InjuryAlert
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		injuryRepo := repos.NewInjuryRepository()

		alert, err := injuryRepo.FindByID(ctx, alertID)
		if errors.Is(err, repository.ErrAlertNotFound) {
			return domainerrors.ErrAlertNotFound.WrapMessage("resolution target not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load alert for resolution")
		}

		if !alert.Resolved {
			now := time.Now()
			alert.Resolved = true
			alert.ResolvedAt = &now
			if err := injuryRepo.Update(ctx, alert); err != nil {
				return errors.Wrap(err, "failed to persist alert resolution")
			}
		}
		resolved = alert

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resolved, nil
}

// AnalyzeRisk runs an AI assessment over the athlete's performance history.
// A disabled recommender surfaces as a 503; a reachable-but-failed analysis
// degrades to the conservative fallback rather than erroring.
func (srv *injuryService) AnalyzeRisk(ctx context.Context, athleteID uuid.UUID) (*service.InjuryAnalysis, error) {
	user, err := srv.userRepo.FindByID(ctx, athleteID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("analysis subject not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load analysis subject")
	}

	records, err := srv.performanceRepo.FindByUser(ctx, athleteID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load performance history for analysis")
	}

	profile := &service.AthleteProfile{
		Sport:      user.Sport,
		SkillLevel: user.SkillLevel,
		Age:        user.Age,
		Points:     user.Points,
		Badge:      user.Badge,
		Metrics:    user.Metrics,
	}

	analysis, err := srv.recommender.AnalyzeInjuryRisk(ctx, profile, records)
	if errors.Is(err, service.ErrRecommenderDisabled) {
		return nil, domainerrors.ErrAIUnavailable.WrapMessage("injury analysis requires AI features")
	}
	if err != nil {
		srv.log(ctx).Warn("Injury analysis failed, using fallback", slog.Any("athleteID", athleteID), slog.Any("error", err))
		srv.metrics.AIFallbacks.Inc()

		return service.FallbackInjuryAnalysis(), nil
	}

	return analysis, nil
}
