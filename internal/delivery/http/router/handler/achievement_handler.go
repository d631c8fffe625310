package handler

import (
	"log/slog"
	"net/http"

	"talenttrack/internal/delivery/http/response"
	"talenttrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AchievementHandlerParams holds dependencies for AchievementHandler, injected by Fx.
type AchievementHandlerParams struct {
	fx.In

	AchievementUC usecase.AchievementUsecase
	UserUC        usecase.UserUsecase
	Logger        *slog.Logger
}

// AchievementHandler holds dependencies for achievement handlers
type AchievementHandler struct {
	achievementUC usecase.AchievementUsecase
	userUC        usecase.UserUsecase
	logger        *slog.Logger
}

// NewAchievementHandler is the constructor for AchievementHandler
func NewAchievementHandler(params AchievementHandlerParams) *AchievementHandler {
	return &AchievementHandler{
		achievementUC: params.AchievementUC,
		userUC:        params.UserUC,
		logger:        params.Logger,
	}
}

// ListCatalog handles retrieving the full achievement catalog
func (h *AchievementHandler) ListCatalog(c echo.Context) error {
	catalog, err := h.achievementUC.ListCatalog(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, catalog, "Achievements retrieved successfully")
}

// ListMine handles retrieving the caller's unlocked achievements
func (h *AchievementHandler) ListMine(c echo.Context) error {
	user, err := currentUser(c, h.userUC)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	unlocked, err := h.achievementUC.ListUserAchievements(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, unlocked, "User achievements retrieved successfully")
}
