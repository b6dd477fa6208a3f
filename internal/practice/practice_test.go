package practice

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundLens/internal/model"
)

func fixedNow() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

func TestGradeEstimates_AllCorrect(t *testing.T) {
	s, ok := Find("early-stage-seed", 2024)
	require.True(t, ok)

	g := GradeEstimates(s, map[model.MetricKey]float64{
		model.KeyTVPI: 2.0,
		model.KeyDPI:  0.3,
		model.KeyIRR:  16,
	})
	require.Len(t, g.Estimates, 3)
	assert.True(t, g.AllCorrect)
	for _, e := range g.Estimates {
		assert.Equal(t, AccuracyClose, e.Accuracy, e.Metric)
	}
	assert.Equal(t, "2.11x", g.Estimates[0].Display)
	assert.Len(t, g.Results, 20)
}

func TestGradeEstimates_MixedAccuracy(t *testing.T) {
	s, _ := Find("early-stage-seed", 2024)

	g := GradeEstimates(s, map[model.MetricKey]float64{
		model.KeyTVPI: 2.5, // off by ~0.39, within 2x tolerance
		model.KeyDPI:  0.3,
		model.KeyIRR:  30, // off by ~13.9
	})
	assert.False(t, g.AllCorrect)
	assert.Equal(t, AccuracyNear, g.Estimates[0].Accuracy)
	assert.Equal(t, AccuracyClose, g.Estimates[1].Accuracy)
	assert.Equal(t, AccuracyOff, g.Estimates[2].Accuracy)
	assert.InDelta(t, 2.5-95.0/45.0, g.Estimates[0].Difference, 1e-6)
}

func TestGradeEstimates_MissingEstimateCountsAsZero(t *testing.T) {
	s, _ := Find("growth-stage", 2024)
	g := GradeEstimates(s, map[model.MetricKey]float64{})
	assert.False(t, g.AllCorrect)
	for _, e := range g.Estimates {
		assert.Equal(t, 0.0, e.Estimate)
	}
}

func TestGradeEstimates_ToleranceEdgeIsInclusive(t *testing.T) {
	s := model.PracticeScenario{
		ID: "edge",
		FundData: model.FundData{
			PaidInCapital: 100, DistributedCapital: 40, UnrealizedValue: 200,
		},
		TargetMetrics: []model.TargetMetric{{Metric: model.KeyTVPI, Tolerance: 0.3}},
	}
	// 2.7 - 2.4 is slightly above 0.3 in binary floating point
	g := GradeEstimates(s, map[model.MetricKey]float64{model.KeyTVPI: 2.7})
	assert.True(t, g.AllCorrect)
}

func TestGradeEstimates_NoTargets(t *testing.T) {
	g := GradeEstimates(model.PracticeScenario{ID: "empty"}, nil)
	assert.False(t, g.AllCorrect)
	assert.Empty(t, g.Estimates)
}

func TestScore_NonFinite(t *testing.T) {
	_, acc := score(0, math.Inf(1), 1)
	assert.Equal(t, AccuracyOff, acc)

	_, acc = score(math.NaN(), 0, 1)
	assert.Equal(t, AccuracyOff, acc)
}

func TestGenerator_Random(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(1, 2)), fixedNow)

	slugs := map[string]bool{}
	for _, tpl := range Templates() {
		slugs[tpl.Slug] = true
	}

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		sess := g.Random()
		assert.True(t, slugs[sess.Template], sess.Template)
		assert.True(t, strings.HasPrefix(sess.Scenario.ID, "scenario-"))
		assert.False(t, seen[sess.Scenario.ID], "session ids must be unique")
		seen[sess.Scenario.ID] = true
		assert.Equal(t, 2024, sess.Scenario.FundData.CurrentYear)
		assert.Equal(t, DefaultTargets(), sess.Scenario.TargetMetrics)
	}
}

func TestGenerator_SameSeedSameTemplates(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewPCG(7, 7)), fixedNow)
	b := NewGenerator(rand.New(rand.NewPCG(7, 7)), fixedNow)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Random().Template, b.Random().Template)
	}
}

func TestFind(t *testing.T) {
	s, ok := Find("seed-fund-1", 2025)
	require.True(t, ok)
	assert.Equal(t, "Seed Fund Challenge", s.Name)
	assert.Equal(t, 2025, s.FundData.CurrentYear)
	assert.Len(t, s.TargetMetrics, 2)

	_, ok = Find("unknown", 2025)
	assert.False(t, ok)
}

func TestTemplatesRespectPortfolioCounts(t *testing.T) {
	for _, tpl := range Templates() {
		d := tpl.FundData
		d.CurrentYear = 2024
		assert.NoError(t, d.Validate(), tpl.Slug)
	}
}
