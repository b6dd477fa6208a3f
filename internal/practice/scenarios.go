package practice

import (
	"FundLens/internal/model"
)

// Template is a fund archetype random scenarios are drawn from.
type Template struct {
	Slug        string
	Name        string
	Description string
	FundData    model.FundData // CurrentYear is filled in when the scenario is generated
}

// DefaultTargets are the estimates asked for in every generated scenario.
func DefaultTargets() []model.TargetMetric {
	return []model.TargetMetric{
		{Metric: model.KeyTVPI, Tolerance: 0.3},
		{Metric: model.KeyDPI, Tolerance: 0.2},
		{Metric: model.KeyIRR, Tolerance: 5},
	}
}

var templates = []Template{
	{
		Slug:        "early-stage-seed",
		Name:        "Early-Stage Seed Fund",
		Description: "A 2019 vintage seed fund with $50M AUM",
		FundData: model.FundData{
			FundSize: 50_000_000, PaidInCapital: 45_000_000,
			DistributedCapital: 15_000_000, UnrealizedValue: 80_000_000,
			VintageYear: 2019, TotalInvestments: 42_000_000,
			NumberOfCompanies: 35, NumberOfExits: 6, NumberOfWriteOffs: 8,
			AverageOwnership: 0.08, AverageInvestmentSize: 1_200_000,
			FollowOnInvestments: 25, TopFiveHoldingsValue: 50_000_000,
		},
	},
	{
		Slug:        "growth-stage",
		Name:        "Growth-Stage VC Fund",
		Description: "A 2018 vintage growth fund with $200M AUM",
		FundData: model.FundData{
			FundSize: 200_000_000, PaidInCapital: 180_000_000,
			DistributedCapital: 120_000_000, UnrealizedValue: 280_000_000,
			VintageYear: 2018, TotalInvestments: 165_000_000,
			NumberOfCompanies: 20, NumberOfExits: 10, NumberOfWriteOffs: 3,
			AverageOwnership: 0.15, AverageInvestmentSize: 8_250_000,
			FollowOnInvestments: 16, TopFiveHoldingsValue: 180_000_000,
		},
	},
	{
		Slug:        "series-a",
		Name:        "Series A Fund",
		Description: "A 2020 vintage Series A fund with $100M AUM",
		FundData: model.FundData{
			FundSize: 100_000_000, PaidInCapital: 85_000_000,
			DistributedCapital: 25_000_000, UnrealizedValue: 150_000_000,
			VintageYear: 2020, TotalInvestments: 78_000_000,
			NumberOfCompanies: 18, NumberOfExits: 4, NumberOfWriteOffs: 2,
			AverageOwnership: 0.18, AverageInvestmentSize: 4_333_333,
			FollowOnInvestments: 14, TopFiveHoldingsValue: 95_000_000,
		},
	},
	{
		Slug:        "mature-multi-stage",
		Name:        "Mature Multi-Stage Fund",
		Description: "A 2016 vintage multi-stage fund with $300M AUM",
		FundData: model.FundData{
			FundSize: 300_000_000, PaidInCapital: 280_000_000,
			DistributedCapital: 350_000_000, UnrealizedValue: 180_000_000,
			VintageYear: 2016, TotalInvestments: 270_000_000,
			NumberOfCompanies: 30, NumberOfExits: 18, NumberOfWriteOffs: 7,
			AverageOwnership: 0.13, AverageInvestmentSize: 9_000_000,
			FollowOnInvestments: 22, TopFiveHoldingsValue: 110_000_000,
		},
	},
	{
		Slug:        "struggling",
		Name:        "Struggling Fund",
		Description: "A 2017 vintage fund facing challenges",
		FundData: model.FundData{
			FundSize: 75_000_000, PaidInCapital: 70_000_000,
			DistributedCapital: 20_000_000, UnrealizedValue: 40_000_000,
			VintageYear: 2017, TotalInvestments: 65_000_000,
			NumberOfCompanies: 22, NumberOfExits: 3, NumberOfWriteOffs: 12,
			AverageOwnership: 0.11, AverageInvestmentSize: 2_954_545,
			FollowOnInvestments: 8, TopFiveHoldingsValue: 28_000_000,
		},
	},
}

// Templates returns the random-scenario archetypes.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// Scenarios returns the canned practice scenarios dated currentYear.
func Scenarios(currentYear int) []model.PracticeScenario {
	seed := templates[0].FundData
	seed.CurrentYear = currentYear
	return []model.PracticeScenario{
		{
			ID:          "seed-fund-1",
			Name:        "Seed Fund Challenge",
			Description: "Early-stage seed fund, high growth potential",
			FundData:    seed,
			TargetMetrics: []model.TargetMetric{
				{Metric: model.KeyTVPI, EstimatedValue: 2.11, Tolerance: 0.3},
				{Metric: model.KeyDPI, EstimatedValue: 0.33, Tolerance: 0.2},
			},
		},
	}
}

// Find looks up a canned scenario by ID or a template by slug. Template hits are
// returned as a scenario whose ID is the slug.
func Find(id string, currentYear int) (model.PracticeScenario, bool) {
	for _, s := range Scenarios(currentYear) {
		if s.ID == id {
			return s, true
		}
	}
	for _, tpl := range templates {
		if tpl.Slug == id {
			return fromTemplate(tpl, tpl.Slug, currentYear), true
		}
	}
	return model.PracticeScenario{}, false
}

func fromTemplate(tpl Template, id string, currentYear int) model.PracticeScenario {
	d := tpl.FundData
	d.CurrentYear = currentYear
	return model.PracticeScenario{
		ID:            id,
		Name:          tpl.Name,
		Description:   tpl.Description,
		FundData:      d,
		TargetMetrics: DefaultTargets(),
	}
}
