package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "talenttrack/internal/delivery/context"
	"talenttrack/internal/domain/entity"
	domainerrors "talenttrack/internal/domain/errors"
	"talenttrack/internal/domain/repository"
	"talenttrack/internal/domain/scoring"
	"talenttrack/internal/infra/metrics"
	"talenttrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// talentService implements the TalentUsecase interface.
type talentService struct {
	txManager  repository.TransactionManager
	talentRepo repository.TalentRepository
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// TalentServiceParams holds dependencies for talentService, injected by Fx.
type TalentServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	TalentRepo repository.TalentRepository
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
}

// NewTalentService is the constructor for talentService.
func NewTalentService(params TalentServiceParams) usecase.TalentUsecase {
	return &talentService{
		txManager:  params.TxManager,
		talentRepo: params.TalentRepo,
		metrics:    params.Metrics,
		logger:     params.Logger,
	}
}

func (srv *talentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitTalent records a new talent and applies the submission award in one
// transaction. The user row is locked first so concurrent submissions for the
// same user serialize and each observes an accurate post-submission count.
func (srv *talentService) SubmitTalent(ctx context.Context, userID uuid.UUID, input *usecase.SubmitTalentInput) (*usecase.SubmitTalentOutput, error) {
	if input.Name == "" || input.Sport == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("talent name and sport are required")
	}

	var output *usecase.SubmitTalentOutput
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.NewUserRepository()
		talentRepo := repos.NewTalentRepository()

		user, err := userRepo.FindByIDForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("talent submitter not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock user for talent submission")
		}

		talent := &entity.Talent{
			ID:            uuid.New(),
			Name:          input.Name,
			Sport:         input.Sport,
			Category:      input.Category,
			Description:   input.Description,
			UserID:        user.ID,
			PointsAwarded: scoring.TalentBasePoints,
			CreatedAt:     time.Now(),
		}
		if err := talentRepo.Create(ctx, talent); err != nil {
			return errors.Wrap(err, "failed to create talent")
		}

		count, err := talentRepo.CountByUser(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count user talents")
		}

		award := scoring.TalentAward(int(count))
		outcome, err := applyAward(ctx, repos, user, award.Total())
		if err != nil {
			return err
		}

		output = &usecase.SubmitTalentOutput{
			Talent:        talent,
			PointsAwarded: award.Total(),
			NewTotal:      outcome.NewTotal,
			Badge:         outcome.Badge,
			Unlocked:      outcome.Unlocked,
		}
		srv.observeAward(metrics.SourceTalent, award.Total(), outcome.Promoted)

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to submit talent", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Talent submitted",
		slog.Any("userID", userID),
		slog.Any("talentID", output.Talent.ID),
		slog.Int("pointsAwarded", output.PointsAwarded),
	)

	return output, nil
}

// ListTalents retrieves all talents, newest first.
func (srv *talentService) ListTalents(ctx context.Context) ([]*entity.Talent, error) {
	talents, err := srv.talentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list talents")
	}

	return talents, nil
}

// ListUserTalents retrieves one user's talents, newest first.
func (srv *talentService) ListUserTalents(ctx context.Context, userID uuid.UUID) ([]*entity.Talent, error) {
	talents, err := srv.talentRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user talents")
	}

	return talents, nil
}

// ApproveTalent flips the review flag. It never touches points; the award
// happened at submission time.
func (srv *talentService) ApproveTalent(ctx context.Context, reviewerID, talentID uuid.UUID) (*entity.Talent, error) {
	var approved *entity.Talent
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		talentRepo := repos.NewTalentRepository()

		talent, err := talentRepo.FindByID(ctx, talentID)
		if errors.Is(err, repository.ErrTalentNotFound) {
			return domainerrors.ErrTalentNotFound.WrapMessage("approval target not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load talent for approval")
		}

		if !talent.Approved {
			talent.Approved = true
			talent.ApprovedBy = &reviewerID
			if err := talentRepo.Update(ctx, talent); err != nil {
				return errors.Wrap(err, "failed to persist talent approval")
			}
		}
		approved = talent

		return nil
	})
	if err != nil {
		return nil, err
	}

	return approved, nil
}

func (srv *talentService) observeAward(source string, points int, promoted bool) {
	srv.metrics.PointsAwarded.WithLabelValues(source).Add(float64(points))
	if promoted {
		srv.metrics.BadgePromotions.Inc()
	}
}
