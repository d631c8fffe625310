package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"talenttrack/internal/domain/entity"
	domainerrors "talenttrack/internal/domain/errors"
	"talenttrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTaskService(store *fakeStore, recommender service.Recommender) *taskService {
	svc := NewTaskService(TaskServiceParams{
		TxManager:   &fakeTxManager{store: store},
		Recommender: recommender,
		Metrics:     newTestMetrics(),
		Logger:      newDiscardLogger(),
	})

	return svc.(*taskService)
}

func TestTaskService_GetDailyTasks_GeneratesFromRecommendations(t *testing.T) {
	store := newFakeStore()
	user := store.addUser(&entity.User{Role: entity.RoleAthlete, Sport: "soccer"})

	recommender := &fakeRecommender{
		tasks: func(context.Context, *service.AthleteProfile) ([]*service.TaskRecommendation, error) {
			return []*service.TaskRecommendation{
				{Title: "Sprint drills", Description: "10x40m", Points: 25, Category: entity.TaskCategoryTraining, Difficulty: entity.TaskDifficultyHard},
				{Title: "Stretch routine", Description: "Full body", Points: 10, Category: entity.TaskCategoryRecovery, Difficulty: entity.TaskDifficultyEasy},
			}, nil
		},
	}
	svc := newTestTaskService(store, recommender)

	tasks, err := svc.GetDailyTasks(context.Background(), user.ID)

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	tomorrow := startOfDay(time.Now()).AddDate(0, 0, 1)
	for _, task := range tasks {
		assert.True(t, task.AIRecommended)
		require.NotNil(t, task.UserID)
		assert.Equal(t, user.ID, *task.UserID)
		assert.True(t, task.DueDate.Equal(tomorrow))
		assert.False(t, task.Completed)
	}
}

func TestTaskService_GetDailyTasks_FallbackWhenRecommenderDisabled(t *testing.T) {
	store := newFakeStore()
	user := store.addUser(&entity.User{Role: entity.RoleAthlete})
	svc := newTestTaskService(store, &fakeRecommender{})

	tasks, err := svc.GetDailyTasks(context.Background(), user.ID)

	require.NoError(t, err)
	require.Len(t, tasks, 2)

	byTitle := make(map[string]*entity.DailyTask, len(tasks))
	for _, task := range tasks {
		byTitle[task.Title] = task
	}

	training := byTitle["Complete 30-minute practice session"]
	require.NotNil(t, training)
	assert.Equal(t, 20, training.Points)
	assert.Equal(t, entity.TaskCategoryTraining, training.Category)
	assert.False(t, training.AIRecommended)

	nutrition := byTitle["Log your nutrition intake"]
	require.NotNil(t, nutrition)
	assert.Equal(t, 10, nutrition.Points)
	assert.Equal(t, entity.TaskCategoryNutrition, nutrition.Category)
}

func TestTaskService_GetDailyTasks_NoFallbackWhenTasksExist(t *testing.T) {
	store := newFakeStore()
	user := store.addUser(&entity.User{Role: entity.RoleAthlete})

	// Stale batch: created yesterday but still due.
	yesterday := time.Now().AddDate(0, 0, -1)
	existing := store.addTask(&entity.DailyTask{
		Title:     "Yesterday's drill",
		UserID:    &user.ID,
		DueDate:   startOfDay(time.Now()).AddDate(0, 0, 1),
		CreatedAt: yesterday,
	})

	recommender := &fakeRecommender{
		tasks: func(context.Context, *service.AthleteProfile) ([]*service.TaskRecommendation, error) {
			return nil, errors.New("model unreachable")
		},
	}
	svc := newTestTaskService(store, recommender)

	tasks, err := svc.GetDailyTasks(context.Background(), user.ID)

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, existing.ID, tasks[0].ID)
}

func TestTaskService_GetDailyTasks_KeepsTodaysBatch(t *testing.T) {
	store := newFakeStore()
	user := store.addUser(&entity.User{Role: entity.RoleAthlete})
	store.addTask(&entity.DailyTask{
		Title:     "Today's drill",
		UserID:    &user.ID,
		DueDate:   startOfDay(time.Now()).AddDate(0, 0, 1),
		CreatedAt: time.Now(),
	})

	var calls int
	recommender := &fakeRecommender{
		tasks: func(context.Context, *service.AthleteProfile) ([]*service.TaskRecommendation, error) {
			calls++

			return nil, service.ErrRecommenderDisabled
		},
	}
	svc := newTestTaskService(store, recommender)

	tasks, err := svc.GetDailyTasks(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Zero(t, calls)
}

func TestTaskService_GetDailyTasks_UnknownUser(t *testing.T) {
	svc := newTestTaskService(newFakeStore(), &fakeRecommender{})

	_, err := svc.GetDailyTasks(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestTaskService_CompleteTask_AwardsOnce(t *testing.T) {
	store := newFakeStore()
	seedTestCatalog(store)
	user := store.addUser(&entity.User{Role: entity.RoleAthlete, Badge: entity.BadgeBronze})
	task := store.addTask(&entity.DailyTask{
		Title:   "Practice session",
		Points:  20,
		UserID:  &user.ID,
		DueDate: startOfDay(time.Now()).AddDate(0, 0, 1),
	})
	svc := newTestTaskService(store, &fakeRecommender{})

	output, err := svc.CompleteTask(context.Background(), user.ID, task.ID)

	require.NoError(t, err)
	assert.Equal(t, 20, output.PointsAwarded)
	assert.Equal(t, 20, output.NewTotal)
	assert.True(t, output.Task.Completed)
	require.NotNil(t, output.Task.CompletedAt)
	require.Len(t, output.Unlocked, 1)
	assert.Equal(t, "First Steps", output.Unlocked[0].Achievement.Name)

	repeat, err := svc.CompleteTask(context.Background(), user.ID, task.ID)
	require.NoError(t, err)
	assert.Zero(t, repeat.PointsAwarded)
	assert.Equal(t, 20, repeat.NewTotal)
	assert.Empty(t, repeat.Unlocked)
	assert.Equal(t, 20, store.users[user.ID].Points)
}

func TestTaskService_CompleteTask_ConcurrentCompletionsAwardOnce(t *testing.T) {
	store := newFakeStore()
	seedTestCatalog(store)
	user := store.addUser(&entity.User{Role: entity.RoleAthlete, Badge: entity.BadgeBronze})
	task := store.addTask(&entity.DailyTask{
		Title:   "Practice session",
		Points:  20,
		UserID:  &user.ID,
		DueDate: startOfDay(time.Now()).AddDate(0, 0, 1),
	})

	svc := NewTaskService(TaskServiceParams{
		TxManager:   &rowLockTxManager{store: store},
		Recommender: &fakeRecommender{},
		Metrics:     newTestMetrics(),
		Logger:      newDiscardLogger(),
	}).(*taskService)

	awards := make(chan int, 2)
	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			output, err := svc.CompleteTask(context.Background(), user.ID, task.ID)
			if assert.NoError(t, err) {
				awards <- output.PointsAwarded
			} else {
				awards <- 0
			}
		}()
	}
	wg.Wait()
	close(awards)

	total := 0
	for award := range awards {
		total += award
	}
	assert.Equal(t, 20, total)
	assert.Equal(t, 20, store.users[user.ID].Points)
	assert.True(t, store.tasks[task.ID].Completed)
}

func TestTaskService_CompleteTask_RejectsForeignTask(t *testing.T) {
	store := newFakeStore()
	owner := store.addUser(&entity.User{Role: entity.RoleAthlete})
	intruder := store.addUser(&entity.User{Role: entity.RoleAthlete})
	task := store.addTask(&entity.DailyTask{Points: 20, UserID: &owner.ID})
	svc := newTestTaskService(store, &fakeRecommender{})

	_, err := svc.CompleteTask(context.Background(), intruder.ID, task.ID)

	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
	assert.False(t, store.tasks[task.ID].Completed)
}

func TestTaskService_CompleteTask_TemplateTaskAwardsNothing(t *testing.T) {
	store := newFakeStore()
	user := store.addUser(&entity.User{Role: entity.RoleAthlete, Points: 15, Badge: entity.BadgeBronze})
	template := store.addTask(&entity.DailyTask{Title: "Community challenge", Points: 30})
	svc := newTestTaskService(store, &fakeRecommender{})

	output, err := svc.CompleteTask(context.Background(), user.ID, template.ID)

	require.NoError(t, err)
	assert.True(t, output.Task.Completed)
	assert.Zero(t, output.PointsAwarded)
	assert.Equal(t, 15, output.NewTotal)
	assert.Equal(t, 15, store.users[user.ID].Points)
}

func TestTaskService_CompleteTask_NotFound(t *testing.T) {
	store := newFakeStore()
	user := store.addUser(&entity.User{Role: entity.RoleAthlete})
	svc := newTestTaskService(store, &fakeRecommender{})

	_, err := svc.CompleteTask(context.Background(), user.ID, uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}
