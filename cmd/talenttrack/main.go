package main

import (
	"context"
	"log/slog"
	"os"

	"talenttrack/config"
	"talenttrack/internal/delivery"
	"talenttrack/internal/delivery/http"
	"talenttrack/internal/delivery/http/middleware"
	"talenttrack/internal/delivery/http/router/handler"
	"talenttrack/internal/infra/ai"
	logs "talenttrack/internal/infra/log"
	"talenttrack/internal/infra/metrics"
	"talenttrack/internal/infra/persistence/postgres"
	"talenttrack/internal/usecase"
	"talenttrack/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedAchievements,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTalentRepository,
			postgres.NewTaskRepository,
			postgres.NewAchievementRepository,
			postgres.NewCoachRepository,
			postgres.NewPerformanceRepository,
			postgres.NewInjuryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			ai.NewRecommender,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewTalentService,
			impl.NewTaskService,
			impl.NewAchievementService,
			impl.NewLeaderboardService,
			impl.NewCoachService,
			impl.NewInjuryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewIdentityMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewTalentHandler,
			handler.NewTaskHandler,
			handler.NewAchievementHandler,
			handler.NewLeaderboardHandler,
			handler.NewCoachHandler,
			handler.NewInjuryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedAchievements ensures the default achievement catalog exists before the
// server starts accepting traffic.
func seedAchievements(ctx context.Context, achievementUC usecase.AchievementUsecase) error {
	return achievementUC.SeedDefaults(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
