package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"FundLens/internal/model"
)

// Metrics holds the counters and gauges exported to node_exporter's textfile
// collector. Each Metrics owns its registry.
type Metrics struct {
	Registry *prometheus.Registry

	Evaluations      prometheus.Counter
	PracticeAttempts *prometheus.CounterVec
	ProgressXP       prometheus.Gauge
	ProgressStreak   prometheus.Gauge
}

// New creates and registers all metrics on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Evaluations: factory.NewCounter(prometheus.CounterOpts{
			Name: "fundlens_evaluations_total",
			Help: "Total number of fund metric evaluations",
		}),
		PracticeAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fundlens_practice_attempts_total",
			Help: "Total number of graded practice submissions",
		}, []string{"result"}),
		ProgressXP: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fundlens_progress_xp",
			Help: "Experience points of the stored progress record",
		}),
		ProgressStreak: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fundlens_progress_streak",
			Help: "Current daily practice streak",
		}),
	}
}

// ObserveAttempt counts a submission as correct or incorrect.
func (m *Metrics) ObserveAttempt(correct bool) {
	result := "incorrect"
	if correct {
		result = "correct"
	}
	m.PracticeAttempts.WithLabelValues(result).Inc()
}

// ObserveProgress sets the progress gauges.
func (m *Metrics) ObserveProgress(p model.UserProgress) {
	m.ProgressXP.Set(float64(p.XP))
	m.ProgressStreak.Set(float64(p.Streak))
}

// Flush writes the registry to path in the text exposition format. An empty
// path is a no-op.
func (m *Metrics) Flush(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("write textfile: %w", err)
	}
	return nil
}
