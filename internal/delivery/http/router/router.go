// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"talenttrack/internal/delivery/http/middleware"
	"talenttrack/internal/delivery/http/router/handler"
	"talenttrack/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// RouterParams holds every handler and middleware the router wires up.
type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	TalentHandler      *handler.TalentHandler
	TaskHandler        *handler.TaskHandler
	AchievementHandler *handler.AchievementHandler
	LeaderboardHandler *handler.LeaderboardHandler
	CoachHandler       *handler.CoachHandler
	InjuryHandler      *handler.InjuryHandler

	RequestIDMiddleware *middleware.RequestIDMiddleware
	IdentityMiddleware  *middleware.IdentityMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware

	Metrics *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)
	e.Use(r.params.LoggerMiddleware.Handle)
	e.Use(r.params.IdentityMiddleware.Extract)

	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.params.Metrics.Registry(), promhttp.HandlerOpts{})))

	api := e.Group("/api")

	api.POST("/users", r.params.UserHandler.CreateUser)
	me := api.Group("/users/me", r.params.IdentityMiddleware.Require)
	{
		me.GET("", r.params.UserHandler.GetMe)
		me.PATCH("", r.params.UserHandler.UpdateMe)
	}

	api.POST("/talents", r.params.TalentHandler.SubmitTalent)
	api.GET("/talents", r.params.TalentHandler.ListTalents)
	api.GET("/talents/user/:userId", r.params.TalentHandler.ListUserTalents)
	api.PATCH("/talents/:id/approve", r.params.TalentHandler.ApproveTalent, r.params.IdentityMiddleware.Require)

	api.GET("/tasks/daily", r.params.TaskHandler.GetDailyTasks, r.params.IdentityMiddleware.Require)
	api.PATCH("/tasks/:id/complete", r.params.TaskHandler.CompleteTask, r.params.IdentityMiddleware.Require)

	api.GET("/achievements", r.params.AchievementHandler.ListCatalog)
	api.GET("/achievements/user", r.params.AchievementHandler.ListMine, r.params.IdentityMiddleware.Require)

	api.GET("/leaderboard/:scope", r.params.LeaderboardHandler.GetLeaderboard)

	coach := api.Group("/coach")
	{
		coach.POST("/athletes", r.params.CoachHandler.AddAthlete)
		coach.GET("/athletes/:coachId", r.params.CoachHandler.ListAthletes)
		coach.GET("/metrics/:coachId", r.params.CoachHandler.GetMetrics)
		coach.GET("/analytics/:coachId", r.params.CoachHandler.GetAnalytics)
	}

	api.POST("/performance-records", r.params.CoachHandler.CreatePerformanceRecord)
	api.GET("/performance-records/:userId", r.params.CoachHandler.ListPerformanceRecords)

	api.POST("/injury-alerts", r.params.InjuryHandler.CreateAlert)
	api.GET("/injury-alerts/:coachId", r.params.InjuryHandler.ListAlerts)
	api.PATCH("/injury-alerts/:id/resolve", r.params.InjuryHandler.ResolveAlert)

	api.POST("/ai/injury-analysis", r.params.InjuryHandler.AnalyzeRisk)
}
