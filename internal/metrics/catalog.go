package metrics

import (
	"FundLens/internal/calculator"
	"FundLens/internal/model"
)

// Definition describes one metric: how to compute it, how to display it and
// where its benchmark bands lie.
type Definition struct {
	Name        string
	Key         model.MetricKey
	Category    model.Category
	Description string
	Formula     string
	Benchmark   model.Benchmark
	Unit        model.Unit
	Calculate   func(model.FundData) float64
}

func f(v float64) *float64 { return &v }

func above(min float64, desc string) model.Bound {
	return model.Bound{Min: f(min), Description: desc}
}

func below(max float64, desc string) model.Bound {
	return model.Bound{Max: f(max), Description: desc}
}

func between(min, max float64, desc string) model.Bound {
	return model.Bound{Min: f(min), Max: f(max), Description: desc}
}

func note(desc string) model.Bound {
	return model.Bound{Description: desc}
}

// catalog is ordered: fund (1-10), deal (11-15), portfolio (16-20).
var catalog = []Definition{
	{
		Name:        "TVPI",
		Key:         model.KeyTVPI,
		Category:    model.CategoryFund,
		Description: "Total Value to Paid-In: measures overall fund performance (realized + unrealized returns)",
		Formula:     "(Distributed + Unrealized) / Paid-In Capital",
		Benchmark:   model.Benchmark{Excellent: above(3.0, "3.0x+"), Good: between(2.0, 3.0, "2.0-3.0x"), Poor: note("<2.0x")},
		Unit:        model.UnitMultiplier,
		Calculate:   calculator.TVPI,
	},
	{
		Name:        "DPI",
		Key:         model.KeyDPI,
		Category:    model.CategoryFund,
		Description: "Distributed to Paid-In: measures cash actually returned to investors",
		Formula:     "Distributed Capital / Paid-In Capital",
		Benchmark:   model.Benchmark{Excellent: above(2.5, "2.5x+"), Good: between(1.5, 2.5, "1.5-2.5x"), Poor: note("<1.5x")},
		Unit:        model.UnitMultiplier,
		Calculate:   calculator.DPI,
	},
	{
		Name:        "RVPI",
		Key:         model.KeyRVPI,
		Category:    model.CategoryFund,
		Description: "Residual Value to Paid-In: measures remaining unrealized value in portfolio",
		Formula:     "Unrealized Value / Paid-In Capital",
		Benchmark:   model.Benchmark{Excellent: above(2.0, "2.0x+"), Good: between(1.0, 2.0, "1.0-2.0x"), Poor: note("<1.0x")},
		Unit:        model.UnitMultiplier,
		Calculate:   calculator.RVPI,
	},
	{
		Name:        "IRR",
		Key:         model.KeyIRR,
		Category:    model.CategoryFund,
		Description: "Internal Rate of Return: annualized return rate accounting for timing of cash flows",
		Formula:     "((Total Value / Paid-In) ^ (1 / Fund Age)) - 1",
		Benchmark:   model.Benchmark{Excellent: above(30, "30%+"), Good: between(20, 30, "20-30%"), Poor: note("<20%")},
		Unit:        model.UnitPercentage,
		Calculate:   calculator.ApproxIRR,
	},
	{
		Name:        "MOIC",
		Key:         model.KeyMOIC,
		Category:    model.CategoryFund,
		Description: "Multiple on Invested Capital: total return multiple on capital deployed",
		Formula:     "Total Value / Total Invested",
		Benchmark:   model.Benchmark{Excellent: above(3.5, "3.5x+"), Good: between(2.5, 3.5, "2.5-3.5x"), Poor: note("<2.5x")},
		Unit:        model.UnitMultiplier,
		Calculate:   calculator.MOIC,
	},
	{
		Name:        "Capital Called",
		Key:         model.KeyCapitalCalled,
		Category:    model.CategoryFund,
		Description: "Percentage of committed capital that has been called from LPs",
		Formula:     "Paid-In Capital / Fund Size",
		Benchmark:   model.Benchmark{Excellent: above(80, "80%+"), Good: between(60, 80, "60-80%"), Poor: note("<60%")},
		Unit:        model.UnitPercentage,
		Calculate:   calculator.CapitalCalled,
	},
	{
		Name:        "Deployment Rate",
		Key:         model.KeyDeploymentRate,
		Category:    model.CategoryFund,
		Description: "Percentage of called capital that has been invested",
		Formula:     "Total Invested / Paid-In Capital",
		Benchmark:   model.Benchmark{Excellent: above(90, "90%+"), Good: between(75, 90, "75-90%"), Poor: note("<75%")},
		Unit:        model.UnitPercentage,
		Calculate:   calculator.DeploymentRate,
	},
	{
		Name:        "Cash Yield",
		Key:         model.KeyCashYield,
		Category:    model.CategoryFund,
		Description: "Cash distributions as a multiple of capital called (same as DPI)",
		Formula:     "Distributed Capital / Paid-In Capital",
		Benchmark:   model.Benchmark{Excellent: above(2.0, "2.0x+"), Good: between(1.0, 2.0, "1.0-2.0x"), Poor: note("<1.0x")},
		Unit:        model.UnitMultiplier,
		Calculate:   calculator.CashYield,
	},
	{
		Name:        "Fund Age",
		Key:         model.KeyFundAge,
		Category:    model.CategoryFund,
		Description: "Number of years since fund vintage",
		Formula:     "Current Year - Vintage Year",
		Benchmark:   model.Benchmark{Excellent: between(5, 10, "5-10 years"), Good: between(3, 12, "3-12 years"), Poor: note("<3 or >12 years")},
		Unit:        model.UnitYears,
		Calculate:   calculator.FundAge,
	},
	{
		Name:        "Net Asset Value",
		Key:         model.KeyNetAssetValue,
		Category:    model.CategoryFund,
		Description: "Current fair market value of remaining portfolio holdings",
		Formula:     "Unrealized Value",
		Benchmark:   model.Benchmark{Excellent: above(50_000_000, "$50M+"), Good: between(20_000_000, 50_000_000, "$20-50M"), Poor: note("<$20M")},
		Unit:        model.UnitCurrency,
		Calculate:   calculator.NetAssetValue,
	},

	{
		Name:        "Average Check Size",
		Key:         model.KeyAverageCheckSize,
		Category:    model.CategoryDeal,
		Description: "Average investment amount per portfolio company",
		Formula:     "Total Investments / Number of Companies",
		Benchmark:   model.Benchmark{Excellent: above(5_000_000, "$5M+"), Good: between(2_000_000, 5_000_000, "$2-5M"), Poor: note("<$2M")},
		Unit:        model.UnitCurrency,
		Calculate:   calculator.AverageCheckSize,
	},
	{
		Name:        "Ownership %",
		Key:         model.KeyOwnershipPercentage,
		Category:    model.CategoryDeal,
		Description: "Average equity ownership across portfolio companies",
		Formula:     "Average Ownership",
		Benchmark:   model.Benchmark{Excellent: above(15, "15%+"), Good: between(10, 15, "10-15%"), Poor: note("<10%")},
		Unit:        model.UnitPercentage,
		Calculate:   calculator.OwnershipPercentage,
	},
	{
		Name:        "Markup Ratio",
		Key:         model.KeyMarkupRatio,
		Category:    model.CategoryDeal,
		Description: "Ratio of current valuation to cost basis for unrealized investments",
		Formula:     "Unrealized Value / Cost Basis",
		Benchmark:   model.Benchmark{Excellent: above(3.0, "3.0x+"), Good: between(2.0, 3.0, "2.0-3.0x"), Poor: note("<2.0x")},
		Unit:        model.UnitMultiplier,
		Calculate:   calculator.MarkupRatio,
	},
	{
		Name:        "Follow-On Rate",
		Key:         model.KeyFollowOnRate,
		Category:    model.CategoryDeal,
		Description: "Percentage of portfolio companies that received follow-on funding",
		Formula:     "Follow-On Investments / Total Companies",
		Benchmark:   model.Benchmark{Excellent: above(70, "70%+"), Good: between(50, 70, "50-70%"), Poor: note("<50%")},
		Unit:        model.UnitPercentage,
		Calculate:   calculator.FollowOnRate,
	},
	{
		Name:        "Entry Valuation",
		Key:         model.KeyEntryValuation,
		Category:    model.CategoryDeal,
		Description: "Average post-money valuation at initial investment",
		Formula:     "Investment Size / Ownership %",
		Benchmark:   model.Benchmark{Excellent: between(10_000_000, 50_000_000, "$10-50M"), Good: between(5_000_000, 100_000_000, "$5-100M"), Poor: note("<$5M or >$100M")},
		Unit:        model.UnitCurrency,
		Calculate:   calculator.EntryValuation,
	},

	{
		Name:        "Loss Ratio",
		Key:         model.KeyLossRatio,
		Category:    model.CategoryPortfolio,
		Description: "Percentage of portfolio companies that became total losses",
		Formula:     "Write-offs / Total Companies",
		Benchmark:   model.Benchmark{Excellent: below(30, "<30%"), Good: between(30, 50, "30-50%"), Poor: note(">50%")},
		Unit:        model.UnitPercentage,
		Calculate:   calculator.LossRatio,
	},
	{
		Name:        "Exit Rate",
		Key:         model.KeyExitRate,
		Category:    model.CategoryPortfolio,
		Description: "Percentage of portfolio companies that have exited",
		Formula:     "Number of Exits / Total Companies",
		Benchmark:   model.Benchmark{Excellent: above(40, "40%+"), Good: between(25, 40, "25-40%"), Poor: note("<25%")},
		Unit:        model.UnitPercentage,
		Calculate:   calculator.ExitRate,
	},
	{
		Name:        "Concentration",
		Key:         model.KeyConcentration,
		Category:    model.CategoryPortfolio,
		Description: "Percentage of total value in top 5 holdings",
		Formula:     "Top 5 Holdings Value / Total Value",
		Benchmark:   model.Benchmark{Excellent: between(50, 70, "50-70%"), Good: between(40, 80, "40-80%"), Poor: note("<40% or >80%")},
		Unit:        model.UnitPercentage,
		Calculate:   calculator.Concentration,
	},
	{
		Name:        "Success Rate",
		Key:         model.KeySuccessRate,
		Category:    model.CategoryPortfolio,
		Description: "Percentage of companies with positive returns",
		Formula:     "(Total Companies - Write-offs) / Total Companies",
		Benchmark:   model.Benchmark{Excellent: above(70, "70%+"), Good: between(50, 70, "50-70%"), Poor: note("<50%")},
		Unit:        model.UnitPercentage,
		Calculate:   calculator.SuccessRate,
	},
	{
		Name:        "Portfolio Size",
		Key:         model.KeyPortfolioSize,
		Category:    model.CategoryPortfolio,
		Description: "Total number of portfolio companies",
		Formula:     "Number of Companies",
		Benchmark:   model.Benchmark{Excellent: between(20, 40, "20-40 companies"), Good: between(15, 50, "15-50 companies"), Poor: note("<15 or >50 companies")},
		Unit:        model.UnitNumber,
		Calculate:   calculator.PortfolioSize,
	},
}

// Definitions returns a deep copy of the ordered catalog.
func Definitions() []Definition {
	out := make([]Definition, len(catalog))
	for i, d := range catalog {
		out[i] = d.clone()
	}
	return out
}

// Lookup returns a copy of the definition for key.
func Lookup(key model.MetricKey) (Definition, bool) {
	for _, d := range catalog {
		if d.Key == key {
			return d.clone(), true
		}
	}
	return Definition{}, false
}

// clone detaches the bound pointers from the package catalog.
func (d Definition) clone() Definition {
	d.Benchmark = model.Benchmark{
		Excellent: cloneBound(d.Benchmark.Excellent),
		Good:      cloneBound(d.Benchmark.Good),
		Poor:      cloneBound(d.Benchmark.Poor),
	}
	return d
}

func cloneBound(b model.Bound) model.Bound {
	if b.Min != nil {
		b.Min = f(*b.Min)
	}
	if b.Max != nil {
		b.Max = f(*b.Max)
	}
	return b
}
