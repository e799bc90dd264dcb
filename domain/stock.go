package domain

type StockReturnInput struct {
	InitialPrice  float64   `json:"initialPrice"`
	FinalPrice    float64   `json:"finalPrice"`
	Dividends     []float64 `json:"dividends"`
	HoldingPeriod float64   `json:"holdingPeriod"`
}

type StockReturnResult struct {
	TotalReturn      float64 `json:"totalReturn"`
	AnnualizedReturn float64 `json:"annualizedReturn"`
	CapitalGains     float64 `json:"capitalGains"`
	DividendIncome   float64 `json:"dividendIncome"`
}

type PayoutFrequency string

const (
	PayoutAnnual     PayoutFrequency = "annual"
	PayoutSemiAnnual PayoutFrequency = "semi-annual"
	PayoutQuarterly  PayoutFrequency = "quarterly"
	PayoutMonthly    PayoutFrequency = "monthly"
)

type DividendYieldInput struct {
	StockPrice      float64         `json:"stockPrice"`
	AnnualDividend  float64         `json:"annualDividend"`
	PayoutFrequency PayoutFrequency `json:"payoutFrequency"`
	AsOf            Date            `json:"asOf"`
}

type DividendYieldResult struct {
	DividendYield  float64 `json:"dividendYield"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
	AnnualIncome   float64 `json:"annualIncome"`
	PayoutSchedule []Date  `json:"payoutSchedule"`
}

type DividendReinvestmentInput struct {
	InitialInvestment float64 `json:"initialInvestment"`
	SharePrice        float64 `json:"sharePrice"`
	AnnualDividend    float64 `json:"annualDividend"`
	GrowthRate        float64 `json:"growthRate"`
	Years             int     `json:"years"`
}

type DividendReinvestmentYear struct {
	Year      int     `json:"year"`
	Shares    float64 `json:"shares"`
	Dividends float64 `json:"dividends"`
	Value     float64 `json:"value"`
}

type DividendReinvestmentResult struct {
	FinalValue      float64                    `json:"finalValue"`
	TotalDividends  float64                    `json:"totalDividends"`
	TotalShares     float64                    `json:"totalShares"`
	YearlyBreakdown []DividendReinvestmentYear `json:"yearlyBreakdown"`
}

// DCAInput buys MonthlyInvestment worth of shares at each price in
// PriceHistory, for at most Years*12 months. Without a history the price is
// held flat at InitialPrice.
type DCAInput struct {
	MonthlyInvestment float64   `json:"monthlyInvestment"`
	InitialPrice      float64   `json:"initialPrice"`
	PriceHistory      []float64 `json:"priceHistory"`
	Years             int       `json:"years"`
}

type DCAResult struct {
	TotalInvested      float64 `json:"totalInvested"`
	CurrentValue       float64 `json:"currentValue"`
	TotalShares        float64 `json:"totalShares"`
	AverageCost        float64 `json:"averageCost"`
	ReturnOnInvestment float64 `json:"returnOnInvestment"`
}
