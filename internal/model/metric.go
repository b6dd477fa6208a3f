package model

// Tier is the performance band a metric value falls into.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierPoor      Tier = "poor"
)

// Category groups metrics on the dashboard.
type Category string

const (
	CategoryFund      Category = "fund"
	CategoryDeal      Category = "deal"
	CategoryPortfolio Category = "portfolio"
)

// Unit controls how a metric value is displayed.
type Unit string

const (
	UnitMultiplier Unit = "multiplier"
	UnitPercentage Unit = "percentage"
	UnitCurrency   Unit = "currency"
	UnitNumber     Unit = "number"
	UnitYears      Unit = "years"
)

// MetricKey identifies one of the twenty metrics.
type MetricKey string

const (
	KeyTVPI                MetricKey = "tvpi"
	KeyDPI                 MetricKey = "dpi"
	KeyRVPI                MetricKey = "rvpi"
	KeyIRR                 MetricKey = "irr"
	KeyMOIC                MetricKey = "moic"
	KeyCapitalCalled       MetricKey = "capitalCalled"
	KeyDeploymentRate      MetricKey = "deploymentRate"
	KeyCashYield           MetricKey = "cashYield"
	KeyFundAge             MetricKey = "fundAge"
	KeyNetAssetValue       MetricKey = "netAssetValue"
	KeyAverageCheckSize    MetricKey = "averageCheckSize"
	KeyOwnershipPercentage MetricKey = "ownershipPercentage"
	KeyMarkupRatio         MetricKey = "markupRatio"
	KeyFollowOnRate        MetricKey = "followOnRate"
	KeyEntryValuation      MetricKey = "entryValuation"
	KeyLossRatio           MetricKey = "lossRatio"
	KeyExitRate            MetricKey = "exitRate"
	KeyConcentration       MetricKey = "concentration"
	KeySuccessRate         MetricKey = "successRate"
	KeyPortfolioSize       MetricKey = "portfolioSize"
)

// Bound is one benchmark tier. A nil Min or Max means unbounded on that side.
type Bound struct {
	Min         *float64
	Max         *float64
	Description string
}

// Benchmark holds the three tiers of a metric. Poor is descriptive only.
type Benchmark struct {
	Excellent Bound
	Good      Bound
	Poor      Bound
}

// BenchmarkText is the display copy of a Benchmark.
type BenchmarkText struct {
	Excellent string `json:"excellent"`
	Good      string `json:"good"`
	Poor      string `json:"poor"`
}

// MetricResult is one evaluated metric ready for rendering.
type MetricResult struct {
	Key          MetricKey     `json:"key"`
	Name         string        `json:"name"`
	Value        float64       `json:"value"`
	DisplayValue string        `json:"displayValue"`
	Performance  Tier          `json:"performance"`
	Category     Category      `json:"category"`
	Tooltip      string        `json:"tooltip"`
	Benchmark    BenchmarkText `json:"benchmark"`
}
