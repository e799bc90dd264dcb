package domain

// ReturnPeriod is the sampling interval of a return series.
type ReturnPeriod string

const (
	PeriodDaily   ReturnPeriod = "daily"
	PeriodMonthly ReturnPeriod = "monthly"
	PeriodAnnual  ReturnPeriod = "annual"
)

type BetaInput struct {
	StockReturns  []float64 `json:"stockReturns"`
	MarketReturns []float64 `json:"marketReturns"`
	RiskFreeRate  float64   `json:"riskFreeRate"`
}

type BetaResult struct {
	Beta              float64 `json:"beta"`
	Correlation       float64 `json:"correlation"`
	RSquared          float64 `json:"rSquared"`
	StandardDeviation float64 `json:"standardDeviation"`
}

type CorrelationInput struct {
	Asset1Returns []float64    `json:"asset1Returns"`
	Asset2Returns []float64    `json:"asset2Returns"`
	Period        ReturnPeriod `json:"period"`
}

type CorrelationResult struct {
	Correlation  float64 `json:"correlation"`
	RSquared     float64 `json:"rSquared"`
	Covariance   float64 `json:"covariance"`
	Significance float64 `json:"significance"`
}

type SharpeRatioInput struct {
	Returns      []float64    `json:"returns"`
	RiskFreeRate float64      `json:"riskFreeRate"`
	Period       ReturnPeriod `json:"period"`
}

type SharpeRatioResult struct {
	SharpeRatio       float64 `json:"sharpeRatio"`
	ExcessReturn      float64 `json:"excessReturn"`
	StandardDeviation float64 `json:"standardDeviation"`
	AnnualizedSharpe  float64 `json:"annualizedSharpe"`
}

// PortfolioAsset is one holding of a risk analysis. Weights are relative and
// are normalized to sum to one.
type PortfolioAsset struct {
	Name    string    `json:"name"`
	Weight  float64   `json:"weight"`
	Returns []float64 `json:"returns"`
}

type PortfolioRiskInput struct {
	Assets       []PortfolioAsset `json:"assets"`
	RiskFreeRate float64          `json:"riskFreeRate"`
}

type PortfolioRiskResult struct {
	PortfolioReturn float64 `json:"portfolioReturn"`
	PortfolioRisk   float64 `json:"portfolioRisk"`
	SharpeRatio     float64 `json:"sharpeRatio"`
	VaRFivePercent  float64 `json:"varFivePercent"`
	MaxDrawdown     float64 `json:"maxDrawdown"`
}

type Holding struct {
	Value float64 `json:"value"`
	Price float64 `json:"price"`
}

type PortfolioRebalancingInput struct {
	TargetAllocations map[string]float64 `json:"targetAllocations"`
	CurrentHoldings   map[string]Holding `json:"currentHoldings"`
}

type TradeAction string

const (
	Buy  TradeAction = "buy"
	Sell TradeAction = "sell"
)

type Trade struct {
	Asset  string      `json:"asset"`
	Action TradeAction `json:"action"`
	Shares float64     `json:"shares"`
	Amount float64     `json:"amount"`
}

type PortfolioRebalancingResult struct {
	Trades             []Trade            `json:"trades"`
	CurrentAllocations map[string]float64 `json:"currentAllocations"`
	NewAllocations     map[string]float64 `json:"newAllocations"`
	TotalValue         float64            `json:"totalValue"`
}

type AssetAllocationInput struct {
	RiskTolerance     float64 `json:"riskTolerance"`
	InvestmentHorizon float64 `json:"investmentHorizon"`
	CurrentAge        int     `json:"currentAge"`
	RetirementAge     int     `json:"retirementAge"`
	PortfolioValue    float64 `json:"portfolioValue"`
}

type AssetAllocationResult struct {
	Stocks          float64  `json:"stocks"`
	Bonds           float64  `json:"bonds"`
	Cash            float64  `json:"cash"`
	Other           float64  `json:"other"`
	Recommendations []string `json:"recommendations"`
}
