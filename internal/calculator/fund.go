package calculator

import (
	"math"

	"FundLens/internal/model"
)

// Every formula in this package is total: a zero denominator yields 0.

// IRRFunc computes an internal rate of return, in percent, for a fund snapshot.
type IRRFunc func(d model.FundData) float64

// TVPI is (distributed + unrealized) / paid-in.
func TVPI(d model.FundData) float64 {
	return ratio(d.TotalValue(), d.PaidInCapital)
}

// DPI is distributed / paid-in.
func DPI(d model.FundData) float64 {
	return ratio(d.DistributedCapital, d.PaidInCapital)
}

// RVPI is unrealized / paid-in.
func RVPI(d model.FundData) float64 {
	return ratio(d.UnrealizedValue, d.PaidInCapital)
}

// ApproxIRR annualizes the TVPI multiple over the fund age:
// (TVPI ^ (1 / age) - 1) * 100. Timing of individual calls and distributions is ignored.
func ApproxIRR(d model.FundData) float64 {
	age := FundAge(d)
	if age == 0 || d.PaidInCapital == 0 {
		return 0
	}
	multiple := d.TotalValue() / d.PaidInCapital
	return (math.Pow(multiple, 1/age) - 1) * 100
}

// MOIC is total value / total invested.
func MOIC(d model.FundData) float64 {
	return ratio(d.TotalValue(), d.TotalInvestments)
}

// CapitalCalled is the share of commitments called from LPs, in percent.
func CapitalCalled(d model.FundData) float64 {
	return percent(d.PaidInCapital, d.FundSize)
}

// DeploymentRate is the share of called capital invested, in percent.
func DeploymentRate(d model.FundData) float64 {
	return percent(d.TotalInvestments, d.PaidInCapital)
}

// CashYield is the same ratio as DPI.
func CashYield(d model.FundData) float64 {
	return DPI(d)
}

// FundAge is current year minus vintage year.
func FundAge(d model.FundData) float64 {
	return float64(d.CurrentYear - d.VintageYear)
}

// NetAssetValue is the unrealized value.
func NetAssetValue(d model.FundData) float64 {
	return d.UnrealizedValue
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func percent(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den * 100
}
