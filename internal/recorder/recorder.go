package recorder

import (
	"FundLens/internal/metrics"
	"FundLens/internal/model"
)

// Evaluation records one metrics run.
type Evaluation struct {
	Source         string // preset id, file path or "default"
	TVPI           float64
	DPI            float64
	IRR            float64
	HealthPct      float64
	HealthStatus   model.Tier
	ExcellentCount int
	PoorCount      int
}

// NewEvaluation summarizes results for the history table.
func NewEvaluation(source string, results metrics.Results) *Evaluation {
	h := metrics.Health(results)
	return &Evaluation{
		Source:         source,
		TVPI:           results[model.KeyTVPI].Value,
		DPI:            results[model.KeyDPI].Value,
		IRR:            results[model.KeyIRR].Value,
		HealthPct:      h.Percentage,
		HealthStatus:   h.Status,
		ExcellentCount: h.Excellent,
		PoorCount:      h.Poor,
	}
}

// Attempt records one graded practice submission and the progress after it.
type Attempt struct {
	ScenarioID string
	Estimates  map[model.MetricKey]float64
	Actuals    map[model.MetricKey]float64
	Correct    bool
	XP         int
	Level      int
	Streak     int
}

// Recorder persists history for later analysis.
type Recorder interface {
	RecordEvaluation(evt *Evaluation) error
	RecordAttempt(evt *Attempt) error
	RecordProgressSnapshot(p *model.UserProgress) error
	Close() error
}
