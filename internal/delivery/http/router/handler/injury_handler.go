package handler

import (
	"log/slog"
	"net/http"

	"talenttrack/internal/delivery/http/response"
	"talenttrack/internal/domain/entity"
	"talenttrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InjuryHandlerParams holds dependencies for InjuryHandler, injected by Fx.
type InjuryHandlerParams struct {
	fx.In

	InjuryUC usecase.InjuryUsecase
	Logger   *slog.Logger
}

// InjuryHandler holds dependencies for injury-related handlers
type InjuryHandler struct {
	injuryUC usecase.InjuryUsecase
	logger   *slog.Logger
}

// NewInjuryHandler is the constructor for InjuryHandler
func NewInjuryHandler(params InjuryHandlerParams) *InjuryHandler {
	return &InjuryHandler{
		injuryUC: params.InjuryUC,
		logger:   params.Logger,
	}
}

// CreateAlertRequest represents the request body for raising an injury alert
type CreateAlertRequest struct {
	AthleteID       uuid.UUID  `json:"athleteId" validate:"required"`
	CoachID         *uuid.UUID `json:"coachId"`
	RiskLevel       string     `json:"riskLevel" validate:"required"`
	BodyPart        string     `json:"bodyPart"`
	Description     string     `json:"description"`
	Recommendations string     `json:"recommendations"`
}

// AnalyzeRiskRequest represents the request body for an AI risk analysis
type AnalyzeRiskRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// CreateAlert handles raising an injury alert
func (h *InjuryHandler) CreateAlert(c echo.Context) error {
	var req CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	alert, err := h.injuryUC.CreateAlert(c.Request().Context(), &usecase.CreateAlertInput{
		AthleteID:       req.AthleteID,
		CoachID:         req.CoachID,
		RiskLevel:       entity.RiskLevel(req.RiskLevel),
		BodyPart:        req.BodyPart,
		Description:     req.Description,
		Recommendations: req.Recommendations,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, alert, "Injury alert created successfully")
}

// ListAlerts handles retrieving a coach's injury alerts
func (h *InjuryHandler) ListAlerts(c echo.Context) error {
	coachID, err := uuid.Parse(c.Param("coachId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coach ID")
	}

	alerts, err := h.injuryUC.ListAlerts(c.Request().Context(), coachID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts, "Injury alerts retrieved successfully")
}

// ResolveAlert handles marking an alert resolved
func (h *InjuryHandler) ResolveAlert(c echo.Context) error {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alert ID")
	}

	alert, err := h.injuryUC.ResolveAlert(c.Request().Context(), alertID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert, "Injury alert resolved successfully")
}

// AnalyzeRisk handles the AI injury risk assessment
func (h *InjuryHandler) AnalyzeRisk(c echo.Context) error {
	var req AnalyzeRiskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analysis input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	analysis, err := h.injuryUC.AnalyzeRisk(c.Request().Context(), req.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analysis, "Injury risk analyzed successfully")
}
