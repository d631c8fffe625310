package impl

import (
	"context"
	"log/slog"
	"strings"

	"talenttrack/config"
	"talenttrack/internal/domain/repository"
	"talenttrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultLeaderboardLimit = 50

// leaderboardService implements the LeaderboardUsecase interface.
type leaderboardService struct {
	userRepo repository.UserRepository
	limit    int
	logger   *slog.Logger
}

// LeaderboardServiceParams holds dependencies for leaderboardService, injected by Fx.
type LeaderboardServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewLeaderboardService is the constructor for leaderboardService.
func NewLeaderboardService(params LeaderboardServiceParams) usecase.LeaderboardUsecase {
	limit := defaultLeaderboardLimit
	if params.Config != nil && params.Config.Leaderboard != nil && params.Config.Leaderboard.Limit > 0 {
		limit = params.Config.Leaderboard.Limit
	}

	return &leaderboardService{
		userRepo: params.UserRepo,
		limit:    limit,
		logger:   params.Logger,
	}
}

// GetLeaderboard ranks athletes by points descending with creation time as a
// stable tie-break. The caller's rank is their position in the full filtered
// ordering, even when they fall outside the returned top slice. The scope is
// echoed back; all scopes rank the same pool until regional boards land.
func (srv *leaderboardService) GetLeaderboard(ctx context.Context, scope, sport string, currentUserID uuid.UUID) (*usecase.LeaderboardOutput, error) {
	boardScope := strings.ToLower(strings.TrimSpace(scope))
	if boardScope == "" {
		boardScope = "global"
	}

	filter := strings.ToLower(strings.TrimSpace(sport))
	if filter == "all" {
		filter = ""
	}

	athletes, err := srv.userRepo.ListAthletes(ctx, filter, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list athletes for leaderboard")
	}

	output := &usecase.LeaderboardOutput{Scope: boardScope, Entries: []*usecase.LeaderboardEntry{}}
	for i, athlete := range athletes {
		rank := i + 1
		if athlete.ID == currentUserID {
			output.CurrentUserRank = &rank
		}
		if rank <= srv.limit {
			output.Entries = append(output.Entries, &usecase.LeaderboardEntry{
				Rank:        rank,
				UserID:      athlete.ID,
				DisplayName: athlete.DisplayName,
				PhotoURL:    athlete.PhotoURL,
				Sport:       athlete.Sport,
				Points:      athlete.Points,
				Badge:       athlete.Badge,
			})
		}
	}

	return output, nil
}
