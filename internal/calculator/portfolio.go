package calculator

import "FundLens/internal/model"

// LossRatio is write-offs over companies, in percent.
func LossRatio(d model.FundData) float64 {
	return percent(float64(d.NumberOfWriteOffs), float64(d.NumberOfCompanies))
}

// ExitRate is exits over companies, in percent.
func ExitRate(d model.FundData) float64 {
	return percent(float64(d.NumberOfExits), float64(d.NumberOfCompanies))
}

// Concentration is the top five holdings' share of total value, in percent.
func Concentration(d model.FundData) float64 {
	return percent(d.TopFiveHoldingsValue, d.TotalValue())
}

// SuccessRate is the share of companies not written off, in percent.
func SuccessRate(d model.FundData) float64 {
	return percent(float64(d.NumberOfCompanies-d.NumberOfWriteOffs), float64(d.NumberOfCompanies))
}

// PortfolioSize is the number of companies.
func PortfolioSize(d model.FundData) float64 {
	return float64(d.NumberOfCompanies)
}

// CapitalFlowBreakdown splits a fund's capital into where it currently sits.
type CapitalFlowBreakdown struct {
	FundSize         float64
	PaidIn           float64
	Uncalled         float64
	TotalInvested    float64
	UninvestedCash   float64
	Distributed      float64
	Unrealized       float64
	TotalValue       float64
	RealizedGain     float64
	UnrealizedGain   float64
	CapitalCalledPct float64
	DeploymentPct    float64
}

// CapitalFlow allocates the invested cost across realized and unrealized value
// in proportion to each side's share of total value.
func CapitalFlow(d model.FundData) CapitalFlowBreakdown {
	total := d.TotalValue()
	cf := CapitalFlowBreakdown{
		FundSize:         d.FundSize,
		PaidIn:           d.PaidInCapital,
		Uncalled:         d.FundSize - d.PaidInCapital,
		TotalInvested:    d.TotalInvestments,
		UninvestedCash:   d.PaidInCapital - d.TotalInvestments,
		Distributed:      d.DistributedCapital,
		Unrealized:       d.UnrealizedValue,
		TotalValue:       total,
		CapitalCalledPct: CapitalCalled(d),
		DeploymentPct:    DeploymentRate(d),
	}
	if total != 0 {
		cf.RealizedGain = d.DistributedCapital - d.TotalInvestments*(d.DistributedCapital/total)
		cf.UnrealizedGain = d.UnrealizedValue - d.TotalInvestments*(d.UnrealizedValue/total)
	}
	return cf
}
