package usecase

import (
	"context"

	"talenttrack/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitTalentInput defines the data required to submit a talent.
type SubmitTalentInput struct {
	Name        string
	Sport       string
	Category    string
	Description string
}

// SubmitTalentOutput returns the created talent together with the award it
// triggered. PointsAwarded is the combined delta (base plus bonuses) applied
// to the user's total.
type SubmitTalentOutput struct {
	Talent        *entity.Talent
	PointsAwarded int
	NewTotal      int
	Badge         entity.Badge
	Unlocked      []*entity.UserAchievement
}

// TalentUsecase defines the interface for talent submission and review operations.
type TalentUsecase interface {
	// SubmitTalent records a new talent for the user and applies the point
	// award, badge recalculation and achievement unlocks atomically.
	SubmitTalent(ctx context.Context, userID uuid.UUID, input *SubmitTalentInput) (*SubmitTalentOutput, error)

	// ListTalents retrieves all talents, newest first.
	ListTalents(ctx context.Context) ([]*entity.Talent, error)

	// ListUserTalents retrieves one user's talents, newest first.
	ListUserTalents(ctx context.Context, userID uuid.UUID) ([]*entity.Talent, error)

	// ApproveTalent marks a talent as approved by the given reviewer. It
	// flips the flag only and never touches points.
	ApproveTalent(ctx context.Context, reviewerID, talentID uuid.UUID) (*entity.Talent, error)
}
