package model

// TargetMetric is one estimate the user is asked for in practice mode.
type TargetMetric struct {
	Metric         MetricKey `json:"metric"`
	EstimatedValue float64   `json:"estimatedValue"`
	Tolerance      float64   `json:"tolerance"`
}

// PracticeScenario is a fund snapshot with the metrics to estimate.
type PracticeScenario struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	FundData      FundData       `json:"fundData"`
	TargetMetrics []TargetMetric `json:"targetMetrics"`
}

// FundPreset is a named historical fund snapshot.
type FundPreset struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	FundData    FundData `json:"fundData" yaml:"fund_data"`
	Highlights  []string `json:"highlights" yaml:"highlights"`
}
