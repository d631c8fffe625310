// Package metrics exposes Prometheus instrumentation for the scoring and
// task-generation paths.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Label values for the points_awarded_total source label.
const (
	SourceTalent = "talent"
	SourceTask   = "task"
)

// Label values for the task_batches_generated_total origin label.
const (
	OriginAI       = "ai"
	OriginFallback = "fallback"
)

// Metrics bundles the service's Prometheus collectors behind a dedicated
// registry so tests can instantiate it repeatedly without global state.
type Metrics struct {
	registry *prometheus.Registry

	PointsAwarded   *prometheus.CounterVec
	TaskBatches     *prometheus.CounterVec
	AIFallbacks     prometheus.Counter
	BadgePromotions prometheus.Counter
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PointsAwarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "talenttrack",
			Name:      "points_awarded_total",
			Help:      "Points credited to users, by award source.",
		}, []string{"source"}),
		TaskBatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "talenttrack",
			Name:      "task_batches_generated_total",
			Help:      "Daily task batches generated, by origin.",
		}, []string{"origin"}),
		AIFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "talenttrack",
			Name:      "ai_fallbacks_total",
			Help:      "AI calls that degraded to the deterministic fallback.",
		}),
		BadgePromotions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "talenttrack",
			Name:      "badge_promotions_total",
			Help:      "Badge tier promotions applied to users.",
		}),
	}

	m.registry.MustRegister(m.PointsAwarded, m.TaskBatches, m.AIFallbacks, m.BadgePromotions)

	return m
}

// Registry returns the registry backing the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
