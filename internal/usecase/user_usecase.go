// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"talenttrack/internal/domain/badge"
	"talenttrack/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to register a new user.
// ExternalID is the identity provider's stable subject; creation is
// idempotent on it.
type CreateUserInput struct {
	ExternalID  string
	Email       string
	DisplayName string
	PhotoURL    string
	Role        entity.Role
	Sport       string
	SkillLevel  string
	Location    string
	Age         int
}

// UpdateProfileInput defines the fields a user may change on their own
// profile. Nil pointers mean "leave unchanged". Points and badge are never
// writable here.
type UpdateProfileInput struct {
	DisplayName *string
	PhotoURL    *string
	Sport       *string
	SkillLevel  *string
	Location    *string
	Age         *int
}

// --- Output DTOs ---

// ProfileOutput returns a user together with their badge progress.
type ProfileOutput struct {
	User     *entity.User
	Progress badge.Progress
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// CreateUser registers a new user, or returns the existing one when the
	// external ID is already known.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// GetProfile retrieves the calling identity's profile and badge progress.
	GetProfile(ctx context.Context, externalID string) (*ProfileOutput, error)

	// UpdateProfile applies a partial update to the calling identity's profile.
	UpdateProfile(ctx context.Context, externalID string, input *UpdateProfileInput) (*entity.User, error)
}
