package presets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"FundLens/internal/model"
)

// Catalog holds the fund presets available to the dashboard.
type Catalog struct {
	presets []model.FundPreset
}

// NewCatalog returns the built-in presets dated currentYear.
func NewCatalog(currentYear int) *Catalog {
	c := &Catalog{}
	for _, p := range builtin {
		p.FundData.CurrentYear = currentYear
		p.Highlights = append([]string(nil), p.Highlights...)
		c.presets = append(c.presets, p)
	}
	return c
}

// All returns every preset in display order.
func (c *Catalog) All() []model.FundPreset {
	out := make([]model.FundPreset, len(c.presets))
	copy(out, c.presets)
	return out
}

// Find returns the preset with id.
func (c *Catalog) Find(id string) (model.FundPreset, bool) {
	for _, p := range c.presets {
		if p.ID == id {
			return p, true
		}
	}
	return model.FundPreset{}, false
}

type extraFile struct {
	Presets []model.FundPreset `yaml:"presets"`
}

// LoadExtra appends presets from a YAML file. A preset with an existing ID
// replaces the earlier one. Presets without a current_year get currentYear.
func (c *Catalog) LoadExtra(path string, currentYear int) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read presets: %w", err)
	}
	var f extraFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return 0, fmt.Errorf("parse presets: %w", err)
	}
	for i, p := range f.Presets {
		if p.ID == "" {
			return 0, fmt.Errorf("preset #%d: id is required", i+1)
		}
		if p.FundData.CurrentYear == 0 {
			p.FundData.CurrentYear = currentYear
		}
		c.put(p)
	}
	return len(f.Presets), nil
}

func (c *Catalog) put(p model.FundPreset) {
	for i := range c.presets {
		if c.presets[i].ID == p.ID {
			c.presets[i] = p
			return
		}
	}
	c.presets = append(c.presets, p)
}

var builtin = []model.FundPreset{
	{
		ID:          "sequoia-2018",
		Name:        "Sequoia Capital Fund XVI (2018)",
		Description: "One of the most successful venture funds, known for exceptional DPI through early liquidity strategies",
		FundData: model.FundData{
			FundSize: 800_000_000, PaidInCapital: 780_000_000,
			DistributedCapital: 2_500_000_000, UnrealizedValue: 1_200_000_000,
			VintageYear: 2018, TotalInvestments: 750_000_000,
			NumberOfCompanies: 25, NumberOfExits: 12, NumberOfWriteOffs: 4,
			AverageOwnership: 0.15, AverageInvestmentSize: 30_000_000,
			FollowOnInvestments: 20, TopFiveHoldingsValue: 700_000_000,
		},
		Highlights: []string{
			"3.2x DPI - Industry leading cash returns",
			"4.74x TVPI - Exceptional total value",
			"Early secondary program enabled high DPI",
			"Portfolio includes Stripe, Airbnb, DoorDash",
		},
	},
	{
		ID:          "a16z-2019",
		Name:        "Andreessen Horowitz Fund VI (2019)",
		Description: "$3.5B mega-fund from one of the most active and influential VC firms",
		FundData: model.FundData{
			FundSize: 3_500_000_000, PaidInCapital: 3_400_000_000,
			DistributedCapital: 2_800_000_000, UnrealizedValue: 6_500_000_000,
			VintageYear: 2019, TotalInvestments: 3_200_000_000,
			NumberOfCompanies: 45, NumberOfExits: 14, NumberOfWriteOffs: 8,
			AverageOwnership: 0.12, AverageInvestmentSize: 71_111_111,
			FollowOnInvestments: 35, TopFiveHoldingsValue: 3_800_000_000,
		},
		Highlights: []string{
			"2.74x TVPI - Strong multi-stage returns",
			"Largest crypto/web3 portfolio",
			"100+ deals per year",
			"Portfolio includes Coinbase, Instacart, GitHub",
		},
	},
	{
		ID:          "accel-2020",
		Name:        "Accel Partners Fund XIV (2020)",
		Description: "Leading Series A investor with strong track record, 40% DPI increase 2022-2024",
		FundData: model.FundData{
			FundSize: 650_000_000, PaidInCapital: 620_000_000,
			DistributedCapital: 850_000_000, UnrealizedValue: 1_400_000_000,
			VintageYear: 2020, TotalInvestments: 590_000_000,
			NumberOfCompanies: 32, NumberOfExits: 10, NumberOfWriteOffs: 5,
			AverageOwnership: 0.18, AverageInvestmentSize: 18_437_500,
			FollowOnInvestments: 26, TopFiveHoldingsValue: 850_000_000,
		},
		Highlights: []string{
			"3.63x TVPI - Top quartile performance",
			"1.37x DPI - Strong cash distributions",
			"Focus on Series A enterprise & consumer",
			"Portfolio includes Spotify, Slack, Atlassian",
		},
	},
	{
		ID:          "benchmark-2017",
		Name:        "Benchmark Capital Fund XI (2017)",
		Description: "Elite boutique firm with exceptional returns through concentrated portfolio strategy",
		FundData: model.FundData{
			FundSize: 425_000_000, PaidInCapital: 410_000_000,
			DistributedCapital: 1_450_000_000, UnrealizedValue: 800_000_000,
			VintageYear: 2017, TotalInvestments: 400_000_000,
			NumberOfCompanies: 18, NumberOfExits: 9, NumberOfWriteOffs: 2,
			AverageOwnership: 0.20, AverageInvestmentSize: 22_222_222,
			FollowOnInvestments: 14, TopFiveHoldingsValue: 550_000_000,
		},
		Highlights: []string{
			"5.49x TVPI - Elite performance",
			"3.54x DPI - Exceptional cash returns",
			"Highly selective: ~18 companies per fund",
			"Portfolio includes Uber, Twitter, Snapchat",
		},
	},
	{
		ID:          "founders-fund-2019",
		Name:        "Founders Fund VII (2019)",
		Description: "Peter Thiel's contrarian fund, known for bold bets on breakthrough technology",
		FundData: model.FundData{
			FundSize: 1_300_000_000, PaidInCapital: 1_250_000_000,
			DistributedCapital: 1_100_000_000, UnrealizedValue: 2_800_000_000,
			VintageYear: 2019, TotalInvestments: 1_200_000_000,
			NumberOfCompanies: 28, NumberOfExits: 8, NumberOfWriteOffs: 6,
			AverageOwnership: 0.14, AverageInvestmentSize: 42_857_143,
			FollowOnInvestments: 22, TopFiveHoldingsValue: 1_700_000_000,
		},
		Highlights: []string{
			"3.12x TVPI - Strong total returns",
			"Focus on deep tech & frontier technologies",
			"Early investor in SpaceX, Palantir, Stripe",
			"Contrarian thesis-driven investing",
		},
	},
}
