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

// CoachHandlerParams holds dependencies for CoachHandler, injected by Fx.
type CoachHandlerParams struct {
	fx.In

	CoachUC usecase.CoachUsecase
	Logger  *slog.Logger
}

// CoachHandler holds dependencies for coach-related handlers
type CoachHandler struct {
	coachUC usecase.CoachUsecase
	logger  *slog.Logger
}

// NewCoachHandler is the constructor for CoachHandler
func NewCoachHandler(params CoachHandlerParams) *CoachHandler {
	return &CoachHandler{
		coachUC: params.CoachUC,
		logger:  params.Logger,
	}
}

// AddAthleteRequest represents the request body for adding an athlete to a roster
type AddAthleteRequest struct {
	CoachID   uuid.UUID `json:"coachId" validate:"required"`
	AthleteID uuid.UUID `json:"athleteId" validate:"required"`
}

// MetricsPayload carries the four skill scores of a performance snapshot
type MetricsPayload struct {
	Speed     float64 `json:"speed" validate:"gte=0,lte=10"`
	Strength  float64 `json:"strength" validate:"gte=0,lte=10"`
	Stamina   float64 `json:"stamina" validate:"gte=0,lte=10"`
	Technique float64 `json:"technique" validate:"gte=0,lte=10"`
}

// CreatePerformanceRequest represents the request body for recording a performance snapshot
type CreatePerformanceRequest struct {
	UserID     uuid.UUID      `json:"userId" validate:"required"`
	Sport      string         `json:"sport"`
	Metrics    MetricsPayload `json:"metrics" validate:"required"`
	Notes      string         `json:"notes"`
	RecordedBy *uuid.UUID     `json:"recordedBy"`
}

// AddAthlete handles adding an athlete to a coach's roster
func (h *CoachHandler) AddAthlete(c echo.Context) error {
	var req AddAthleteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid roster input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	link, err := h.coachUC.AddAthlete(c.Request().Context(), &usecase.AddAthleteInput{
		CoachID:   req.CoachID,
		AthleteID: req.AthleteID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, link, "Athlete added to roster successfully")
}

// ListAthletes handles retrieving a coach's roster
func (h *CoachHandler) ListAthletes(c echo.Context) error {
	coachID, err := uuid.Parse(c.Param("coachId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coach ID")
	}

	roster, err := h.coachUC.ListAthletes(c.Request().Context(), coachID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, roster, "Roster retrieved successfully")
}

// GetMetrics handles the coach dashboard summary
func (h *CoachHandler) GetMetrics(c echo.Context) error {
	coachID, err := uuid.Parse(c.Param("coachId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coach ID")
	}

	metrics, err := h.coachUC.GetMetrics(c.Request().Context(), coachID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, metrics, "Coach metrics retrieved successfully")
}

// GetAnalytics handles the coach team trend view
func (h *CoachHandler) GetAnalytics(c echo.Context) error {
	coachID, err := uuid.Parse(c.Param("coachId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coach ID")
	}

	analytics, err := h.coachUC.GetAnalytics(c.Request().Context(), coachID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analytics, "Coach analytics retrieved successfully")
}

// CreatePerformanceRecord handles recording a performance snapshot
func (h *CoachHandler) CreatePerformanceRecord(c echo.Context) error {
	var req CreatePerformanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid performance input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	record, err := h.coachUC.RecordPerformance(c.Request().Context(), &usecase.RecordPerformanceInput{
		UserID: req.UserID,
		Sport:  req.Sport,
		Metrics: entity.Metrics{
			Speed:     req.Metrics.Speed,
			Strength:  req.Metrics.Strength,
			Stamina:   req.Metrics.Stamina,
			Technique: req.Metrics.Technique,
		},
		Notes:      req.Notes,
		RecordedBy: req.RecordedBy,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record, "Performance record created successfully")
}

// ListPerformanceRecords handles retrieving a user's performance history
func (h *CoachHandler) ListPerformanceRecords(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	records, err := h.coachUC.ListPerformance(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Performance records retrieved successfully")
}
