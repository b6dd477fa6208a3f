package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrPortfolioCounts is reported when exits plus write-offs exceed the portfolio size.
var ErrPortfolioCounts = errors.New("exits + write-offs exceed number of companies")

// FundData is the raw fund snapshot every metric is computed from.
type FundData struct {
	FundSize           float64 `json:"fundSize" yaml:"fund_size"`
	PaidInCapital      float64 `json:"paidInCapital" yaml:"paid_in_capital"`
	DistributedCapital float64 `json:"distributedCapital" yaml:"distributed_capital"`
	UnrealizedValue    float64 `json:"unrealizedValue" yaml:"unrealized_value"`
	VintageYear        int     `json:"vintageYear" yaml:"vintage_year"`
	CurrentYear        int     `json:"currentYear" yaml:"current_year"`

	TotalInvestments  float64 `json:"totalInvestments" yaml:"total_investments"`
	NumberOfCompanies int     `json:"numberOfCompanies" yaml:"number_of_companies"`
	NumberOfExits     int     `json:"numberOfExits" yaml:"number_of_exits"`
	NumberOfWriteOffs int     `json:"numberOfWriteOffs" yaml:"number_of_write_offs"`

	AverageOwnership      float64 `json:"averageOwnership" yaml:"average_ownership"` // 0.0 ~ 1.0
	AverageInvestmentSize float64 `json:"averageInvestmentSize" yaml:"average_investment_size"`
	FollowOnInvestments   int     `json:"followOnInvestments" yaml:"follow_on_investments"`
	TopFiveHoldingsValue  float64 `json:"topFiveHoldingsValue" yaml:"top_five_holdings_value"`

	// Reserved for a cash-flow based IRR; no formula reads them yet.
	ExitValues      []float64   `json:"exitValues,omitempty" yaml:"exit_values,omitempty"`
	InvestmentDates []time.Time `json:"investmentDates,omitempty" yaml:"investment_dates,omitempty"`
}

// TotalValue is distributed plus unrealized value.
func (d FundData) TotalValue() float64 {
	return d.DistributedCapital + d.UnrealizedValue
}

// Validate checks the record at the input boundary. Non-finite and negative fields are listed in
// the returned error; the portfolio count check wraps ErrPortfolioCounts so callers
// can treat it as a warning.
func (d FundData) Validate() error {
	var negative, nonFinite []string
	check := func(name string, v float64) {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			nonFinite = append(nonFinite, name)
		case v < 0:
			negative = append(negative, name)
		}
	}
	check("fund_size", d.FundSize)
	check("paid_in_capital", d.PaidInCapital)
	check("distributed_capital", d.DistributedCapital)
	check("unrealized_value", d.UnrealizedValue)
	check("total_investments", d.TotalInvestments)
	check("number_of_companies", float64(d.NumberOfCompanies))
	check("number_of_exits", float64(d.NumberOfExits))
	check("number_of_write_offs", float64(d.NumberOfWriteOffs))
	check("average_ownership", d.AverageOwnership)
	check("average_investment_size", d.AverageInvestmentSize)
	check("follow_on_investments", float64(d.FollowOnInvestments))
	check("top_five_holdings_value", d.TopFiveHoldingsValue)
	if len(nonFinite) > 0 {
		return fmt.Errorf("non-finite values not allowed: %s", strings.Join(nonFinite, ", "))
	}
	if len(negative) > 0 {
		return fmt.Errorf("negative values not allowed: %s", strings.Join(negative, ", "))
	}
	if d.NumberOfExits+d.NumberOfWriteOffs > d.NumberOfCompanies {
		return fmt.Errorf("%d exits + %d write-offs vs %d companies: %w",
			d.NumberOfExits, d.NumberOfWriteOffs, d.NumberOfCompanies, ErrPortfolioCounts)
	}
	return nil
}

// DefaultFundData returns the sample fund shown before the user edits anything.
func DefaultFundData(currentYear int) FundData {
	return FundData{
		FundSize:              100_000_000,
		PaidInCapital:         80_000_000,
		DistributedCapital:    40_000_000,
		UnrealizedValue:       120_000_000,
		VintageYear:           2019,
		CurrentYear:           currentYear,
		TotalInvestments:      75_000_000,
		NumberOfCompanies:     25,
		NumberOfExits:         8,
		NumberOfWriteOffs:     5,
		AverageOwnership:      0.12,
		AverageInvestmentSize: 3_000_000,
		FollowOnInvestments:   18,
		TopFiveHoldingsValue:  70_000_000,
	}
}
