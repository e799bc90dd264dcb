package domain

type RentVsBuyInput struct {
	HomePrice        float64 `json:"homePrice"`
	DownPayment      float64 `json:"downPayment"`
	InterestRate     float64 `json:"interestRate"`
	PropertyTax      float64 `json:"propertyTax"`
	Insurance        float64 `json:"insurance"`
	Maintenance      float64 `json:"maintenance"`
	MonthlyRent      float64 `json:"monthlyRent"`
	RentIncrease     float64 `json:"rentIncrease"`
	HomeAppreciation float64 `json:"homeAppreciation"`
	Timeframe        int     `json:"timeframe"`
}

type RentVsBuyYear struct {
	Year         int     `json:"year"`
	BuyingCosts  float64 `json:"buyingCosts"`
	RentingCosts float64 `json:"rentingCosts"`
	HomeValue    float64 `json:"homeValue"`
	LoanBalance  float64 `json:"loanBalance"`
}

type RentVsBuyResult struct {
	BuyingCosts      float64         `json:"buyingCosts"`
	RentingCosts     float64         `json:"rentingCosts"`
	NetDifference    float64         `json:"netDifference"`
	BreakEvenYear    int             `json:"breakEvenYear"`
	BreakEvenReached bool            `json:"breakEvenReached"`
	BuyingEquity     float64         `json:"buyingEquity"`
	YearByYear       []RentVsBuyYear `json:"yearByYear"`
}

type RentalExpenses struct {
	Mortgage    float64 `json:"mortgage"`
	Tax         float64 `json:"tax"`
	Insurance   float64 `json:"insurance"`
	Utilities   float64 `json:"utilities"`
	Maintenance float64 `json:"maintenance"`
	Management  float64 `json:"management"`
	Other       float64 `json:"other"`
}

type RentalROIInput struct {
	PurchasePrice   float64        `json:"purchasePrice"`
	DownPayment     float64        `json:"downPayment"`
	ClosingCosts    float64        `json:"closingCosts"`
	RepairCosts     float64        `json:"repairCosts"`
	MonthlyRent     float64        `json:"monthlyRent"`
	MonthlyExpenses RentalExpenses `json:"monthlyExpenses"`
	Vacancy         float64        `json:"vacancy"`
}

type RentalROIResult struct {
	CashFlow           float64 `json:"cashFlow"`
	NetOperatingIncome float64 `json:"netOperatingIncome"`
	CapRate            float64 `json:"capRate"`
	CashOnCashReturn   float64 `json:"cashOnCashReturn"`
	TotalROI           float64 `json:"totalROI"`
}

// CapRateInput takes annual operating expenses keyed by category, for
// example propertyTax, insurance or hoa.
type CapRateInput struct {
	PropertyValue     float64            `json:"propertyValue"`
	MonthlyRent       float64            `json:"monthlyRent"`
	OperatingExpenses map[string]float64 `json:"operatingExpenses"`
	Vacancy           float64            `json:"vacancy"`
}

type ExpenseLine struct {
	Category   string  `json:"category"`
	Monthly    float64 `json:"monthly"`
	Annual     float64 `json:"annual"`
	Percentage float64 `json:"percentage"`
}

type CapRateResult struct {
	CapRate               float64       `json:"capRate"`
	NOI                   float64       `json:"noi"`
	EffectiveGrossIncome  float64       `json:"effectiveGrossIncome"`
	OperatingExpenseRatio float64       `json:"operatingExpenseRatio"`
	CashOnCashReturn      float64       `json:"cashOnCashReturn"`
	ExpenseBreakdown      []ExpenseLine `json:"expenseBreakdown"`
}

type LandlordMortgage struct {
	Payment float64 `json:"payment"`
	Enabled bool    `json:"enabled"`
}

// LandlordExpenseInput takes annual expenses keyed by category.
type LandlordExpenseInput struct {
	MonthlyRent   float64            `json:"monthlyRent"`
	PropertyValue float64            `json:"propertyValue"`
	Mortgage      LandlordMortgage   `json:"mortgage"`
	Expenses      map[string]float64 `json:"expenses"`
	Vacancy       float64            `json:"vacancy"`
}

type LandlordExpenseResult struct {
	MonthlyExpenses    float64       `json:"monthlyExpenses"`
	AnnualExpenses     float64       `json:"annualExpenses"`
	NetOperatingIncome float64       `json:"netOperatingIncome"`
	CashFlow           float64       `json:"cashFlow"`
	ExpenseRatio       float64       `json:"expenseRatio"`
	ExpenseBreakdown   []ExpenseLine `json:"expenseBreakdown"`
}

type Improvement struct {
	Year     int     `json:"year"`
	Cost     float64 `json:"cost"`
	ValueAdd float64 `json:"valueAdd"`
}

type PropertyAppreciationInput struct {
	PurchasePrice      float64       `json:"purchasePrice"`
	AnnualAppreciation float64       `json:"annualAppreciation"`
	YearsToHold        int           `json:"yearsToHold"`
	Improvements       []Improvement `json:"improvements"`
}

type PropertyAppreciationYear struct {
	Year         int     `json:"year"`
	Value        float64 `json:"value"`
	Appreciation float64 `json:"appreciation"`
	Improvements float64 `json:"improvements"`
}

type PropertyAppreciationResult struct {
	FutureValue       float64                    `json:"futureValue"`
	TotalAppreciation float64                    `json:"totalAppreciation"`
	TotalImprovements float64                    `json:"totalImprovements"`
	AnnualizedReturn  float64                    `json:"annualizedReturn"`
	YearByYear        []PropertyAppreciationYear `json:"yearByYear"`
}
