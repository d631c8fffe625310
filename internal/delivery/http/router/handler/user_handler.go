package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "talenttrack/internal/delivery/context"
	"talenttrack/internal/delivery/http/response"
	"talenttrack/internal/domain/entity"
	"talenttrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateUserRequest represents the request body for registering a user
type CreateUserRequest struct {
	ExternalID  string `json:"externalId" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	DisplayName string `json:"displayName" validate:"required"`
	PhotoURL    string `json:"photoUrl"`
	Role        string `json:"role"`
	Sport       string `json:"sport"`
	SkillLevel  string `json:"skillLevel"`
	Location    string `json:"location"`
	Age         int    `json:"age" validate:"omitempty,gte=0,lte=120"`
}

// UpdateProfileRequest represents the partial profile update body. Pointer
// fields distinguish "absent" from "set to zero value".
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoUrl"`
	Sport       *string `json:"sport"`
	SkillLevel  *string `json:"skillLevel"`
	Location    *string `json:"location"`
	Age         *int    `json:"age" validate:"omitempty,gte=0,lte=120"`
}

// CreateUser handles user registration, idempotent on the external ID
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		ExternalID:  req.ExternalID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Role:        entity.Role(req.Role),
		Sport:       req.Sport,
		SkillLevel:  req.SkillLevel,
		Location:    req.Location,
		Age:         req.Age,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user, "User registered successfully")
}

// GetMe handles retrieving the calling identity's profile with badge progress
func (h *UserHandler) GetMe(c echo.Context) error {
	externalID := deliverycontext.GetExternalID(c.Request().Context())

	profile, err := h.userUC.GetProfile(c.Request().Context(), externalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":     profile.User,
		"progress": profile.Progress,
	}, "Profile retrieved successfully")
}

// UpdateMe handles partial updates to the calling identity's profile
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	externalID := deliverycontext.GetExternalID(c.Request().Context())
	user, err := h.userUC.UpdateProfile(c.Request().Context(), externalID, &usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Sport:       req.Sport,
		SkillLevel:  req.SkillLevel,
		Location:    req.Location,
		Age:         req.Age,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}
