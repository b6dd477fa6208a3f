package metrics

import (
	"fmt"

	"FundLens/internal/calculator"
	"FundLens/internal/model"
)

// Results maps every metric key to its evaluated result.
type Results map[model.MetricKey]model.MetricResult

// Ordered returns the results in catalog order.
func (r Results) Ordered() []model.MetricResult {
	out := make([]model.MetricResult, 0, len(r))
	for _, d := range catalog {
		if res, ok := r[d.Key]; ok {
			out = append(out, res)
		}
	}
	return out
}

// ByCategory returns the results of one category in catalog order.
func (r Results) ByCategory(c model.Category) []model.MetricResult {
	var out []model.MetricResult
	for _, res := range r.Ordered() {
		if res.Category == c {
			out = append(out, res)
		}
	}
	return out
}

// Engine evaluates the catalog. IRR, when set, replaces the approximate IRR formula.
type Engine struct {
	IRR calculator.IRRFunc
}

// Evaluate computes all twenty metrics with the default engine.
func Evaluate(d model.FundData) Results {
	return Engine{}.Evaluate(d)
}

// Evaluate computes, formats and classifies every metric in the catalog.
func (e Engine) Evaluate(d model.FundData) Results {
	out := make(Results, len(catalog))
	for _, def := range catalog {
		calc := def.Calculate
		if def.Key == model.KeyIRR && e.IRR != nil {
			calc = e.IRR
		}
		out[def.Key] = newResult(def, calc(d))
	}
	return out
}

func newResult(def Definition, value float64) model.MetricResult {
	return model.MetricResult{
		Key:          def.Key,
		Name:         def.Name,
		Value:        value,
		DisplayValue: calculator.FormatValue(value, def.Unit),
		Performance:  ResolveTier(value, def.Benchmark.Excellent, def.Benchmark.Good),
		Category:     def.Category,
		Tooltip:      Tooltip(def),
		Benchmark: model.BenchmarkText{
			Excellent: def.Benchmark.Excellent.Description,
			Good:      def.Benchmark.Good.Description,
			Poor:      def.Benchmark.Poor.Description,
		},
	}
}

// ResolveTier classifies value. Excellent is tested before good, so a value
// inside both bands is excellent; anything matching neither is poor.
func ResolveTier(value float64, excellent, good model.Bound) model.Tier {
	if within(value, excellent) {
		return model.TierExcellent
	}
	if within(value, good) {
		return model.TierGood
	}
	return model.TierPoor
}

// within applies an inclusive range check. A bound with neither side set never matches.
func within(value float64, b model.Bound) bool {
	switch {
	case b.Min != nil && b.Max != nil:
		return value >= *b.Min && value <= *b.Max
	case b.Min != nil:
		return value >= *b.Min
	case b.Max != nil:
		return value <= *b.Max
	default:
		return false
	}
}

// Tooltip renders the hover text for a metric.
func Tooltip(def Definition) string {
	return fmt.Sprintf("%s\n\nFormula: %s\n\nBenchmarks:\n🟢 Excellent: %s\n🟡 Good: %s\n🔴 Poor: %s",
		def.Description, def.Formula,
		def.Benchmark.Excellent.Description,
		def.Benchmark.Good.Description,
		def.Benchmark.Poor.Description)
}
