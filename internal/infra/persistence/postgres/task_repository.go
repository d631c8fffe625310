package postgres

import (
	"context"
	"time"

	"talenttrack/internal/domain/entity"
	domainerrors "talenttrack/internal/domain/errors"
	"talenttrack/internal/domain/repository"
	"talenttrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the repository.TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// FindByID retrieves a single daily task by its unique ID.
func (repo *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DailyTask, error) {
	var taskM model.DailyTaskModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by ID")
	}

	return toTaskDomain(&taskM), nil
}

// FindCurrentByUser retrieves a user's tasks due on or after the given day,
// ordered by due date ascending.
func (repo *taskRepository) FindCurrentByUser(ctx context.Context, userID uuid.UUID, day time.Time) ([]*entity.DailyTask, error) {
	var taskModels []*model.DailyTaskModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND due_date >= ?", userID, day).
		Order("due_date ASC, created_at ASC").
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list current tasks")
	}

	tasks := make([]*entity.DailyTask, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// Create persists a new daily task entity to the storage.
func (repo *taskRepository) Create(ctx context.Context, task *entity.DailyTask) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("task references unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt

	return nil
}

// CreateBatch persists multiple daily tasks in a single statement.
func (repo *taskRepository) CreateBatch(ctx context.Context, tasks []*entity.DailyTask) error {
	if len(tasks) == 0 {
		return nil
	}

	taskModels := make([]*model.DailyTaskModel, 0, len(tasks))
	for _, task := range tasks {
		taskModels = append(taskModels, fromTaskDomain(task))
	}

	if err := repo.db.WithContext(ctx).Create(&taskModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("task batch references unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task batch")
	}

	for i, taskM := range taskModels {
		tasks[i].ID = taskM.ID
		tasks[i].CreatedAt = taskM.CreatedAt
	}

	return nil
}

// Update modifies an existing daily task entity in the storage.
func (repo *taskRepository) Update(ctx context.Context, task *entity.DailyTask) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DailyTaskModel{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"completed":    task.Completed,
			"completed_at": task.CompletedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func toTaskDomain(data *model.DailyTaskModel) *entity.DailyTask {
	return &entity.DailyTask{
		ID:            data.ID,
		Title:         data.Title,
		Description:   data.Description,
		Points:        data.Points,
		Category:      entity.TaskCategory(data.Category),
		Difficulty:    entity.TaskDifficulty(data.Difficulty),
		AIRecommended: data.AIRecommended,
		UserID:        data.UserID,
		Completed:     data.Completed,
		CompletedAt:   data.CompletedAt,
		DueDate:       data.DueDate,
		CreatedAt:     data.CreatedAt,
	}
}

func fromTaskDomain(data *entity.DailyTask) *model.DailyTaskModel {
	return &model.DailyTaskModel{
		ID:            data.ID,
		Title:         data.Title,
		Description:   data.Description,
		Points:        data.Points,
		Category:      string(data.Category),
		Difficulty:    string(data.Difficulty),
		AIRecommended: data.AIRecommended,
		UserID:        data.UserID,
		Completed:     data.Completed,
		CompletedAt:   data.CompletedAt,
		DueDate:       data.DueDate,
		CreatedAt:     data.CreatedAt,
	}
}
