package practice

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"FundLens/internal/metrics"
	"FundLens/internal/model"
)

// Accuracy labels how far an estimate landed from the actual value.
type Accuracy string

const (
	AccuracyClose Accuracy = "close" // within tolerance
	AccuracyNear  Accuracy = "near"  // within twice the tolerance
	AccuracyOff   Accuracy = "off"
)

// Generator draws random scenarios from the templates.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator uses rng for template selection and now for the scenario year.
func NewGenerator(rng *rand.Rand, now func() time.Time) *Generator {
	return &Generator{rng: rng, now: now}
}

// Session is a generated scenario plus the template it came from.
type Session struct {
	Scenario model.PracticeScenario
	Template string
}

// Random picks a template and gives the scenario a fresh session ID.
func (g *Generator) Random() Session {
	tpl := templates[g.rng.IntN(len(templates))]
	return Session{
		Scenario: fromTemplate(tpl, "scenario-"+uuid.NewString(), g.now().Year()),
		Template: tpl.Slug,
	}
}

// EstimateResult compares one estimate to the computed value.
type EstimateResult struct {
	Metric     model.MetricKey
	Estimate   float64
	Actual     float64
	Difference float64
	Tolerance  float64
	Correct    bool
	Accuracy   Accuracy
	Display    string
}

// Grade is the outcome of one practice submission.
type Grade struct {
	ScenarioID string
	Estimates  []EstimateResult
	Results    metrics.Results
	AllCorrect bool
}

// GradeEstimates evaluates the scenario and scores each target. A missing
// estimate counts as 0.
func GradeEstimates(s model.PracticeScenario, estimates map[model.MetricKey]float64) Grade {
	results := metrics.Evaluate(s.FundData)
	g := Grade{ScenarioID: s.ID, Results: results, AllCorrect: len(s.TargetMetrics) > 0}

	for _, target := range s.TargetMetrics {
		actual := results[target.Metric]
		est := estimates[target.Metric]
		diff, acc := score(actual.Value, est, target.Tolerance)

		res := EstimateResult{
			Metric:     target.Metric,
			Estimate:   est,
			Actual:     actual.Value,
			Difference: diff,
			Tolerance:  target.Tolerance,
			Correct:    acc == AccuracyClose,
			Accuracy:   acc,
			Display:    actual.DisplayValue,
		}
		if !res.Correct {
			g.AllCorrect = false
		}
		g.Estimates = append(g.Estimates, res)
	}
	return g
}

// score compares in decimal so estimates typed at the tolerance edge are not
// lost to binary rounding. The actual value is rounded to 8 places first.
func score(actual, estimate, tolerance float64) (float64, Accuracy) {
	if math.IsNaN(actual) || math.IsInf(actual, 0) || math.IsNaN(estimate) || math.IsInf(estimate, 0) {
		return math.NaN(), AccuracyOff
	}
	a := decimal.NewFromFloat(actual).Round(8)
	diff := a.Sub(decimal.NewFromFloat(estimate)).Abs()
	tol := decimal.NewFromFloat(tolerance)

	d, _ := diff.Float64()
	switch {
	case diff.LessThanOrEqual(tol):
		return d, AccuracyClose
	case diff.LessThanOrEqual(tol.Mul(decimal.NewFromInt(2))):
		return d, AccuracyNear
	default:
		return d, AccuracyOff
	}
}
