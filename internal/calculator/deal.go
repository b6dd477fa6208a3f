package calculator

import "FundLens/internal/model"

// AverageCheckSize is total invested per portfolio company.
func AverageCheckSize(d model.FundData) float64 {
	return ratio(d.TotalInvestments, float64(d.NumberOfCompanies))
}

// OwnershipPercentage converts the average ownership fraction to percent.
func OwnershipPercentage(d model.FundData) float64 {
	return d.AverageOwnership * 100
}

// MarkupRatio is unrealized value over the cost basis still held
// (total invested minus distributed).
func MarkupRatio(d model.FundData) float64 {
	return ratio(d.UnrealizedValue, d.TotalInvestments-d.DistributedCapital)
}

// FollowOnRate is the share of companies that received follow-on money, in percent.
func FollowOnRate(d model.FundData) float64 {
	return percent(float64(d.FollowOnInvestments), float64(d.NumberOfCompanies))
}

// EntryValuation is the implied post-money at entry: check size / ownership.
func EntryValuation(d model.FundData) float64 {
	return ratio(d.AverageInvestmentSize, d.AverageOwnership)
}
