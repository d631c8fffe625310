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

// TalentHandlerParams holds dependencies for TalentHandler, injected by Fx.
type TalentHandlerParams struct {
	fx.In

	TalentUC usecase.TalentUsecase
	UserUC   usecase.UserUsecase
	Logger   *slog.Logger
}

// TalentHandler holds dependencies for talent-related handlers
type TalentHandler struct {
	talentUC usecase.TalentUsecase
	userUC   usecase.UserUsecase
	logger   *slog.Logger
}

// NewTalentHandler is the constructor for TalentHandler
func NewTalentHandler(params TalentHandlerParams) *TalentHandler {
	return &TalentHandler{
		talentUC: params.TalentUC,
		userUC:   params.UserUC,
		logger:   params.Logger,
	}
}

// SubmitTalentRequest represents the request body for submitting a talent
type SubmitTalentRequest struct {
	Name        string    `json:"name" validate:"required"`
	Sport       string    `json:"sport" validate:"required"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	UserID      uuid.UUID `json:"userId" validate:"required"`
}

// SubmitTalent handles talent submission and the resulting point award
func (h *TalentHandler) SubmitTalent(c echo.Context) error {
	var req SubmitTalentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid talent input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	output, err := h.talentUC.SubmitTalent(c.Request().Context(), req.UserID, &usecase.SubmitTalentInput{
		Name:        req.Name,
		Sport:       req.Sport,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"talent":        output.Talent,
		"pointsAwarded": output.PointsAwarded,
		"newTotal":      output.NewTotal,
		"badge":         output.Badge,
		"unlocked":      output.Unlocked,
	}, "Talent submitted successfully")
}

// ListTalents handles retrieving all talents
func (h *TalentHandler) ListTalents(c echo.Context) error {
	talents, err := h.talentUC.ListTalents(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, talents, "Talents retrieved successfully")
}

// ListUserTalents handles retrieving a single user's talents
func (h *TalentHandler) ListUserTalents(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	talents, err := h.talentUC.ListUserTalents(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, talents, "User talents retrieved successfully")
}

// ApproveTalent handles a reviewer approving a talent
func (h *TalentHandler) ApproveTalent(c echo.Context) error {
	talentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid talent ID")
	}

	reviewer, err := currentUser(c, h.userUC)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	talent, err := h.talentUC.ApproveTalent(c.Request().Context(), reviewer.ID, talentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, talent, "Talent approved successfully")
}
