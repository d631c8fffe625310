package handler

import (
	"log/slog"
	"net/http"

	"talenttrack/internal/delivery/http/response"
	"talenttrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// TaskHandler holds dependencies for daily task handlers
type TaskHandler struct {
	taskUC usecase.TaskUsecase
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		taskUC: params.TaskUC,
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// GetDailyTasks handles retrieving (and lazily generating) the caller's daily batch
func (h *TaskHandler) GetDailyTasks(c echo.Context) error {
	user, err := currentUser(c, h.userUC)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tasks, err := h.taskUC.GetDailyTasks(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tasks, "Daily tasks retrieved successfully")
}

// CompleteTask handles marking a task complete with its exactly-once award
func (h *TaskHandler) CompleteTask(c echo.Context) error {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid task ID")
	}

	user, err := currentUser(c, h.userUC)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.taskUC.CompleteTask(c.Request().Context(), user.ID, taskID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"task":          output.Task,
		"pointsAwarded": output.PointsAwarded,
		"newTotal":      output.NewTotal,
		"badge":         output.Badge,
		"unlocked":      output.Unlocked,
	}, "Task completed successfully")
}
