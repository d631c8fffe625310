package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "talenttrack/internal/delivery/context"
	"talenttrack/internal/delivery/http/response"
	"talenttrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LeaderboardHandlerParams holds dependencies for LeaderboardHandler, injected by Fx.
type LeaderboardHandlerParams struct {
	fx.In

	LeaderboardUC usecase.LeaderboardUsecase
	UserUC        usecase.UserUsecase
	Logger        *slog.Logger
}

// LeaderboardHandler holds dependencies for leaderboard handlers
type LeaderboardHandler struct {
	leaderboardUC usecase.LeaderboardUsecase
	userUC        usecase.UserUsecase
	logger        *slog.Logger
}

// NewLeaderboardHandler is the constructor for LeaderboardHandler
func NewLeaderboardHandler(params LeaderboardHandlerParams) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUC: params.LeaderboardUC,
		userUC:        params.UserUC,
		logger:        params.Logger,
	}
}

// GetLeaderboard handles ranked athlete listings. The path selects the board
// scope; the sport filter comes from the "sport" query parameter ("all" for
// none). A "timeframe" query parameter is accepted, but every board ranks
// all-time points for now. Anonymous callers simply get no rank.
func (h *LeaderboardHandler) GetLeaderboard(c echo.Context) error {
	scope := c.Param("scope")
	sport := c.QueryParam("sport")

	callerID := uuid.Nil
	if deliverycontext.GetExternalID(c.Request().Context()) != "" {
		user, err := currentUser(c, h.userUC)
		if err == nil {
			callerID = user.ID
		}
	}

	output, err := h.leaderboardUC.GetLeaderboard(c.Request().Context(), scope, sport, callerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Leaderboard retrieved successfully")
}
