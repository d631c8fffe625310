package usecase

import (
	"context"

	"talenttrack/internal/domain/entity"

	"github.com/google/uuid"
)

// LeaderboardEntry is a single ranked row.
type LeaderboardEntry struct {
	Rank        int          `json:"rank"`
	UserID      uuid.UUID    `json:"userId"`
	DisplayName string       `json:"displayName"`
	PhotoURL    string       `json:"photoUrl,omitempty"`
	Sport       string       `json:"sport"`
	Points      int          `json:"points"`
	Badge       entity.Badge `json:"badge"`
}

// LeaderboardOutput returns the scope that was ranked, the ranked entries
// and, when the caller appears in the same filtered set, their 1-based rank.
type LeaderboardOutput struct {
	Scope           string              `json:"scope"`
	Entries         []*LeaderboardEntry `json:"entries"`
	CurrentUserRank *int                `json:"currentUserRank"`
}

// LeaderboardUsecase defines the interface for leaderboard queries.
type LeaderboardUsecase interface {
	// GetLeaderboard ranks athletes by points descending. Scope names the
	// requested board ("global" when empty); every scope currently ranks the
	// same athlete pool. Sport "all" (or empty) means no sport filter.
	// currentUserID may be uuid.Nil for anonymous callers.
	GetLeaderboard(ctx context.Context, scope, sport string, currentUserID uuid.UUID) (*LeaderboardOutput, error)
}
