package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "talenttrack/internal/delivery/context"
	"talenttrack/internal/domain/entity"
	domainerrors "talenttrack/internal/domain/errors"
	"talenttrack/internal/domain/repository"
	"talenttrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	activeSessionWindow = 7 * 24 * time.Hour
	analyticsWeeks      = 4
)

// coachService implements the CoachUsecase interface. All dashboard numbers
// are recomputed from stored performance records on every call; nothing is
// cached or synthesized.
type coachService struct {
	txManager       repository.TransactionManager
	userRepo        repository.UserRepository
	coachRepo       repository.CoachRepository
	performanceRepo repository.PerformanceRepository
	injuryRepo      repository.InjuryRepository
	logger          *slog.Logger
	now             func() time.Time
}

// CoachServiceParams holds dependencies for coachService, injected by Fx.
type CoachServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	UserRepo        repository.UserRepository
	CoachRepo       repository.CoachRepository
	PerformanceRepo repository.PerformanceRepository
	InjuryRepo      repository.InjuryRepository
	Logger          *slog.Logger
}

// NewCoachService is the constructor for coachService.
func NewCoachService(params CoachServiceParams) usecase.CoachUsecase {
	return &coachService{
		txManager:       params.TxManager,
		userRepo:        params.UserRepo,
		coachRepo:       params.CoachRepo,
		performanceRepo: params.PerformanceRepo,
		injuryRepo:      params.InjuryRepo,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *coachService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddAthlete links an athlete to the coach's roster.
func (srv *coachService) AddAthlete(ctx context.Context, input *usecase.AddAthleteInput) (*entity.CoachAthlete, error) {
	var link *entity.CoachAthlete
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.NewUserRepository()
		coachRepo := repos.NewCoachRepository()

		coach, err := userRepo.FindByID(ctx, input.CoachID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("coach not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load coach")
		}
		if coach.Role != entity.RoleCoach && coach.Role != entity.RoleAdmin {
			return domainerrors.ErrValidationFailed.WrapMessage("roster owner must be a coach")
		}

		if _, err := userRepo.FindByID(ctx, input.AthleteID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("athlete not found")
			}

			return errors.Wrap(err, "failed to load athlete")
		}

		_, err = coachRepo.FindLink(ctx, input.CoachID, input.AthleteID)
		if err == nil {
			return domainerrors.ErrConflict.WrapMessage("athlete already on roster")
		}
		if !errors.Is(err, repository.ErrCoachLinkNotFound) {
			return errors.Wrap(err, "failed to check roster link")
		}

		now := srv.now()
		link = &entity.CoachAthlete{
			ID:         uuid.New(),
			CoachID:    input.CoachID,
			AthleteID:  input.AthleteID,
			ApprovedAt: now,
			CreatedAt:  now,
		}

		return errors.Wrap(coachRepo.CreateLink(ctx, link), "failed to create roster link")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Athlete added to roster", slog.Any("coachID", input.CoachID), slog.Any("athleteID", input.AthleteID))

	return link, nil
}

// ListAthletes retrieves the coach's roster with current athlete state.
func (srv *coachService) ListAthletes(ctx context.Context, coachID uuid.UUID) ([]*usecase.RosterEntry, error) {
	links, err := srv.coachRepo.FindAthletesByCoach(ctx, coachID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roster links")
	}

	roster := make([]*usecase.RosterEntry, 0, len(links))
	for _, link := range links {
		athlete, err := srv.userRepo.FindByID(ctx, link.AthleteID)
		if errors.Is(err, repository.ErrUserNotFound) {
			// Roster links are append-only, but users may be removed by
			// operators; skip the orphan rather than fail the listing.
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to load roster athlete")
		}
		roster = append(roster, &usecase.RosterEntry{Link: link, Athlete: athlete})
	}

	return roster, nil
}

// GetMetrics computes the coach's dashboard summary from live data.
func (srv *coachService) GetMetrics(ctx context.Context, coachID uuid.UUID) (*usecase.CoachMetrics, error) {
	roster, err := srv.ListAthletes(ctx, coachID)
	if err != nil {
		return nil, err
	}

	out := &usecase.CoachMetrics{TotalAthletes: len(roster)}
	if len(roster) == 0 {
		openAlerts, err := srv.injuryRepo.CountUnresolvedByCoach(ctx, coachID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count open alerts")
		}
		out.OpenAlerts = int(openAlerts)

		return out, nil
	}

	athleteIDs := make([]uuid.UUID, 0, len(roster))
	var performanceSum float64
	for _, entry := range roster {
		athleteIDs = append(athleteIDs, entry.Athlete.ID)
		performanceSum += entry.Athlete.Metrics.Average()
	}
	out.AvgPerformance = performanceSum / float64(len(roster))

	sessions, err := srv.performanceRepo.CountByUsersSince(ctx, athleteIDs, srv.now().Add(-activeSessionWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to count recent sessions")
	}
	out.ActiveSessions = int(sessions)

	openAlerts, err := srv.injuryRepo.CountUnresolvedByCoach(ctx, coachID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count open alerts")
	}
	out.OpenAlerts = int(openAlerts)

	improvement, err := srv.averageImprovement(ctx, athleteIDs)
	if err != nil {
		return nil, err
	}
	out.AvgImprovement = improvement

	return out, nil
}

// averageImprovement averages the first-to-latest percentage change of each
// athlete's performance records. Athletes with fewer than two records do not
// contribute.
func (srv *coachService) averageImprovement(ctx context.Context, athleteIDs []uuid.UUID) (float64, error) {
	var sum float64
	var counted int
	for _, id := range athleteIDs {
		records, err := srv.performanceRepo.FindByUser(ctx, id)
		if err != nil {
			return 0, errors.Wrap(err, "failed to load performance history")
		}
		if len(records) < 2 {
			continue
		}

		first := records[0].Metrics.Average()
		latest := records[len(records)-1].Metrics.Average()
		if first == 0 {
			continue
		}

		sum += (latest - first) / first * 100
		counted++
	}

	if counted == 0 {
		return 0, nil
	}

	return sum / float64(counted), nil
}

// GetAnalytics computes the last four weeks of team progress and the current
// top performer.
func (srv *coachService) GetAnalytics(ctx context.Context, coachID uuid.UUID) (*usecase.CoachAnalytics, error) {
	roster, err := srv.ListAthletes(ctx, coachID)
	if err != nil {
		return nil, err
	}

	weeks := weekBuckets(srv.now(), analyticsWeeks)
	sums := make([]float64, analyticsWeeks)
	counts := make([]int, analyticsWeeks)

	var top *entity.User
	for _, entry := range roster {
		if top == nil || entry.Athlete.Metrics.Average() > top.Metrics.Average() {
			top = entry.Athlete
		}

		records, err := srv.performanceRepo.FindByUser(ctx, entry.Athlete.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load performance history")
		}
		for _, record := range records {
			for i, weekStart := range weeks {
				if !record.RecordedAt.Before(weekStart) && record.RecordedAt.Before(weekStart.AddDate(0, 0, 7)) {
					sums[i] += record.Metrics.Average()
					counts[i]++

					break
				}
			}
		}
	}

	progress := make([]*usecase.WeeklyProgress, 0, analyticsWeeks)
	for i, weekStart := range weeks {
		week := &usecase.WeeklyProgress{WeekStart: weekStart, RecordCount: counts[i]}
		if counts[i] > 0 {
			week.AvgScore = sums[i] / float64(counts[i])
		}
		progress = append(progress, week)
	}

	return &usecase.CoachAnalytics{TeamProgress: progress, TopPerformer: top}, nil
}

// weekBuckets returns the Monday start of the n most recent weeks, oldest first.
func weekBuckets(now time.Time, n int) []time.Time {
	day := startOfDay(now)
	offset := (int(day.Weekday()) + 6) % 7
	currentWeek := day.AddDate(0, 0, -offset)

	buckets := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		buckets = append(buckets, currentWeek.AddDate(0, 0, -7*i))
	}

	return buckets
}

// RecordPerformance stores a snapshot and promotes it to the athlete's
// current metrics.
func (srv *coachService) RecordPerformance(ctx context.Context, input *usecase.RecordPerformanceInput) (*entity.PerformanceRecord, error) {
	var record *entity.PerformanceRecord
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.NewUserRepository()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("performance subject not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load athlete for performance record")
		}

		record = &entity.PerformanceRecord{
			ID:         uuid.New(),
			UserID:     input.UserID,
			Sport:      input.Sport,
			Metrics:    input.Metrics,
			Notes:      input.Notes,
			RecordedBy: input.RecordedBy,
			RecordedAt: srv.now(),
		}
		if err := repos.NewPerformanceRepository().Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to create performance record")
		}

		user.Metrics = input.Metrics
		user.UpdatedAt = srv.now()

		return errors.Wrap(userRepo.Update(ctx, user), "failed to update athlete metrics snapshot")
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ListPerformance retrieves a user's performance records, oldest first.
func (srv *coachService) ListPerformance(ctx context.Context, userID uuid.UUID) ([]*entity.PerformanceRecord, error) {
	records, err := srv.performanceRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list performance records")
	}

	return records, nil
}
