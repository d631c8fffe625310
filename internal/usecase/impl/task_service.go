package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "talenttrack/internal/delivery/context"
	"talenttrack/internal/domain/entity"
	domainerrors "talenttrack/internal/domain/errors"
	"talenttrack/internal/domain/repository"
	"talenttrack/internal/domain/scoring"
	"talenttrack/internal/domain/service"
	"talenttrack/internal/infra/metrics"
	"talenttrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager   repository.TransactionManager
	recommender service.Recommender
	metrics     *metrics.Metrics
	logger      *slog.Logger
	now         func() time.Time
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	Recommender service.Recommender
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager:   params.TxManager,
		recommender: params.Recommender,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDailyTasks returns the user's current batch, generating one first when
// the user has no tasks for today. The whole check-then-create runs under the
// user's row lock, so two concurrent calls produce exactly one batch.
func (srv *taskService) GetDailyTasks(ctx context.Context, userID uuid.UUID) ([]*entity.DailyTask, error) {
	var tasks []*entity.DailyTask
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.NewUserRepository()
		taskRepo := repos.NewTaskRepository()

		user, err := userRepo.FindByIDForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("daily task owner not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock user for daily batch")
		}

		today := startOfDay(srv.now())
		current, err := taskRepo.FindCurrentByUser(ctx, userID, today)
		if err != nil {
			return errors.Wrap(err, "failed to load current tasks")
		}

		if !needsFreshBatch(current, today) {
			tasks = current

			return nil
		}

		if err := srv.generateBatch(ctx, taskRepo, user, len(current) == 0); err != nil {
			return err
		}

		tasks, err = taskRepo.FindCurrentByUser(ctx, userID, today)

		return errors.Wrap(err, "failed to reload tasks after generation")
	})
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// needsFreshBatch reports whether the user's batch is missing or stale. A
// batch is current when its newest task was created today.
func needsFreshBatch(current []*entity.DailyTask, today time.Time) bool {
	if len(current) == 0 {
		return true
	}

	newest := current[0].CreatedAt
	for _, task := range current[1:] {
		if task.CreatedAt.After(newest) {
			newest = task.CreatedAt
		}
	}

	return !startOfDay(newest).Equal(today)
}

// generateBatch asks the recommender for a personalized set and inserts it
// only once the full set has parsed. On any recommender failure the static
// fallback pair applies, and only when the user has no tasks at all.
func (srv *taskService) generateBatch(ctx context.Context, taskRepo repository.TaskRepository, user *entity.User, empty bool) error {
	profile := &service.AthleteProfile{
		Sport:      user.Sport,
		SkillLevel: user.SkillLevel,
		Age:        user.Age,
		Points:     user.Points,
		Badge:      user.Badge,
		Metrics:    user.Metrics,
	}

	recommendations, err := srv.recommender.GenerateTaskRecommendations(ctx, profile)
	if err == nil && len(recommendations) > 0 {
		batch := srv.buildAITasks(user.ID, recommendations)
		if err := taskRepo.CreateBatch(ctx, batch); err != nil {
			return errors.Wrap(err, "failed to insert recommended tasks")
		}
		srv.metrics.TaskBatches.WithLabelValues(metrics.OriginAI).Inc()

		return nil
	}

	if err != nil && !errors.Is(err, service.ErrRecommenderDisabled) {
		srv.log(ctx).Warn("Task recommendation failed, using fallback", slog.Any("userID", user.ID), slog.Any("error", err))
		srv.metrics.AIFallbacks.Inc()
	}

	if !empty {
		return nil
	}

	if err := taskRepo.CreateBatch(ctx, srv.buildFallbackTasks(user.ID)); err != nil {
		return errors.Wrap(err, "failed to insert fallback tasks")
	}
	srv.metrics.TaskBatches.WithLabelValues(metrics.OriginFallback).Inc()

	return nil
}

func (srv *taskService) buildAITasks(userID uuid.UUID, recommendations []*service.TaskRecommendation) []*entity.DailyTask {
	now := srv.now()
	due := startOfDay(now).AddDate(0, 0, 1)

	tasks := make([]*entity.DailyTask, 0, len(recommendations))
	for _, rec := range recommendations {
		owner := userID
		tasks = append(tasks, &entity.DailyTask{
			ID:            uuid.New(),
			Title:         rec.Title,
			Description:   rec.Description,
			Points:        rec.Points,
			Category:      rec.Category,
			Difficulty:    rec.Difficulty,
			AIRecommended: true,
			UserID:        &owner,
			DueDate:       due,
			CreatedAt:     now,
		})
	}

	return tasks
}

func (srv *taskService) buildFallbackTasks(userID uuid.UUID) []*entity.DailyTask {
	now := srv.now()
	due := startOfDay(now).AddDate(0, 0, 1)
	owner := userID

	return []*entity.DailyTask{
		{
			ID:          uuid.New(),
			Title:       "Complete 30-minute practice session",
			Description: "Focus on fundamental skills and techniques",
			Points:      20,
			Category:    entity.TaskCategoryTraining,
			Difficulty:  entity.TaskDifficultyMedium,
			UserID:      &owner,
			DueDate:     due,
			CreatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Title:       "Log your nutrition intake",
			Description: "Track meals and hydration for better performance",
			Points:      10,
			Category:    entity.TaskCategoryNutrition,
			Difficulty:  entity.TaskDifficultyEasy,
			UserID:      &owner,
			DueDate:     due,
			CreatedAt:   now,
		},
	}
}

// CompleteTask marks a task complete and awards its points exactly once. The
// caller's row lock is taken before the completed check, so concurrent
// completions of the same task serialize and the loser sees the committed
// state. Repeat completions return the task unchanged with a zero award.
func (srv *taskService) CompleteTask(ctx context.Context, userID, taskID uuid.UUID) (*usecase.CompleteTaskOutput, error) {
	var output *usecase.CompleteTaskOutput
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		taskRepo := repos.NewTaskRepository()
		userRepo := repos.NewUserRepository()

		user, err := userRepo.FindByIDForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("completing user not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock user for task completion")
		}

		task, err := taskRepo.FindByID(ctx, taskID)
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domainerrors.ErrTaskNotFound.WrapMessage("completion target not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load task for completion")
		}
		if task.UserID != nil && *task.UserID != userID {
			return domainerrors.ErrTaskNotFound.WrapMessage("task belongs to another user")
		}

		if task.Completed {
			output = &usecase.CompleteTaskOutput{Task: task, NewTotal: user.Points, Badge: user.Badge}

			return nil
		}

		now := srv.now()
		task.Completed = true
		task.CompletedAt = &now
		if err := taskRepo.Update(ctx, task); err != nil {
			return errors.Wrap(err, "failed to persist task completion")
		}

		// Global template tasks carry no owner and award no points.
		if task.UserID == nil {
			output = &usecase.CompleteTaskOutput{Task: task, NewTotal: user.Points, Badge: user.Badge}

			return nil
		}

		award := scoring.TaskAward(task)
		outcome, err := applyAward(ctx, repos, user, award.Total())
		if err != nil {
			return err
		}

		output = &usecase.CompleteTaskOutput{
			Task:          task,
			PointsAwarded: award.Total(),
			NewTotal:      outcome.NewTotal,
			Badge:         outcome.Badge,
			Unlocked:      outcome.Unlocked,
		}
		srv.metrics.PointsAwarded.WithLabelValues(metrics.SourceTask).Add(float64(award.Total()))
		if outcome.Promoted {
			srv.metrics.BadgePromotions.Inc()
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to complete task", slog.Any("taskID", taskID), slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// startOfDay truncates a time to local midnight.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
