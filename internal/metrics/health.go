package metrics

import "FundLens/internal/model"

// HealthSummary aggregates tiers across all metrics of a fund.
type HealthSummary struct {
	Excellent  int        `json:"excellent"`
	Good       int        `json:"good"`
	Poor       int        `json:"poor"`
	Total      int        `json:"total"`
	Percentage float64    `json:"percentage"` // share of good-or-better metrics
	Status     model.Tier `json:"status"`
}

// Health computes the overall fund health: excellent at 70% good-or-better,
// good at 50%, poor otherwise.
func Health(r Results) HealthSummary {
	var h HealthSummary
	for _, res := range r {
		switch res.Performance {
		case model.TierExcellent:
			h.Excellent++
		case model.TierGood:
			h.Good++
		default:
			h.Poor++
		}
	}
	h.Total = len(r)
	if h.Total > 0 {
		h.Percentage = float64(h.Excellent+h.Good) / float64(h.Total) * 100
	}
	switch {
	case h.Percentage >= 70:
		h.Status = model.TierExcellent
	case h.Percentage >= 50:
		h.Status = model.TierGood
	default:
		h.Status = model.TierPoor
	}
	return h
}
