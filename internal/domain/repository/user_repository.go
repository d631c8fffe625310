// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"talenttrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDForUpdate retrieves a user by ID while holding a row-level write
	// lock for the duration of the surrounding transaction. Point mutations
	// must read through this method to serialize concurrent awards.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByExternalID retrieves a single user by the identity provider's stable ID.
	FindByExternalID(ctx context.Context, externalID string) (*entity.User, error)

	// ListAthletes retrieves athlete users, optionally filtered by sport,
	// ordered by points descending with creation time as the tie-break.
	ListAthletes(ctx context.Context, sport string, limit int) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}
