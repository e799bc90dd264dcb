package domain

type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// BlackScholesInput takes volatility and the risk-free rate as annual
// percentages and TimeToExpiry in years.
type BlackScholesInput struct {
	StockPrice   float64    `json:"stockPrice"`
	StrikePrice  float64    `json:"strikePrice"`
	TimeToExpiry float64    `json:"timeToExpiry"`
	RiskFreeRate float64    `json:"riskFreeRate"`
	Volatility   float64    `json:"volatility"`
	OptionType   OptionType `json:"optionType"`
}

// BlackScholesResult quotes vega per volatility point and rho per rate
// point. Theta is per year.
type BlackScholesResult struct {
	OptionPrice float64 `json:"optionPrice"`
	Delta       float64 `json:"delta"`
	Gamma       float64 `json:"gamma"`
	Theta       float64 `json:"theta"`
	Vega        float64 `json:"vega"`
	Rho         float64 `json:"rho"`
}

type CoveredCallInput struct {
	StockPrice   float64 `json:"stockPrice"`
	StrikePrice  float64 `json:"strikePrice"`
	Premium      float64 `json:"premium"`
	Contracts    int     `json:"contracts"`
	DaysToExpiry int     `json:"daysToExpiry"`
}

type CoveredCallResult struct {
	MaxProfit         float64 `json:"maxProfit"`
	MaxLoss           float64 `json:"maxLoss"`
	Breakeven         float64 `json:"breakeven"`
	ReturnIfUnchanged float64 `json:"returnIfUnchanged"`
	AnnualizedReturn  float64 `json:"annualizedReturn"`
}

type PutCallParityInput struct {
	CallPrice    float64 `json:"callPrice"`
	PutPrice     float64 `json:"putPrice"`
	StockPrice   float64 `json:"stockPrice"`
	StrikePrice  float64 `json:"strikePrice"`
	RiskFreeRate float64 `json:"riskFreeRate"`
	TimeToExpiry float64 `json:"timeToExpiry"`
}

type PutCallParityResult struct {
	ParityValue          float64 `json:"parityValue"`
	Deviation            float64 `json:"deviation"`
	ArbitrageOpportunity bool    `json:"arbitrageOpportunity"`
	RecommendedAction    string  `json:"recommendedAction"`
}

type ImpliedVolatilityInput struct {
	OptionPrice  float64    `json:"optionPrice"`
	StockPrice   float64    `json:"stockPrice"`
	StrikePrice  float64    `json:"strikePrice"`
	TimeToExpiry float64    `json:"timeToExpiry"`
	RiskFreeRate float64    `json:"riskFreeRate"`
	OptionType   OptionType `json:"optionType"`
}

type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

type ImpliedVolatilityResult struct {
	ImpliedVolatility    float64  `json:"impliedVolatility"`
	AnnualizedVolatility float64  `json:"annualizedVolatility"`
	ConfidenceInterval   Interval `json:"confidenceInterval"`
	HistoricalComparison float64  `json:"historicalComparison"`
	Iterations           int      `json:"iterations"`
}
