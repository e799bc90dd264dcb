package domain

type LoanInput struct {
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interestRate"`
	TermMonths   int     `json:"termMonths"`
}

type LoanResult struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

// AmortizationRow is one month of a fixed-payment schedule.
type AmortizationRow struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// MortgageInput takes the purchase price in LoanAmount; the financed
// principal is LoanAmount - DownPayment.
type MortgageInput struct {
	LoanAmount   float64 `json:"loanAmount"`
	DownPayment  float64 `json:"downPayment"`
	InterestRate float64 `json:"interestRate"`
	LoanTerm     int     `json:"loanTerm"`
}

type MortgageResult struct {
	MonthlyPayment  float64           `json:"monthlyPayment"`
	TotalPayment    float64           `json:"totalPayment"`
	TotalInterest   float64           `json:"totalInterest"`
	PrincipalAmount float64           `json:"principalAmount"`
	Schedule        []AmortizationRow `json:"schedule"`
}

type MortgagePaymentInput struct {
	LoanAmount   float64 `json:"loanAmount"`
	InterestRate float64 `json:"interestRate"`
	LoanTerm     int     `json:"loanTerm"`
	PropertyTax  float64 `json:"propertyTax"`
	Insurance    float64 `json:"insurance"`
}

type MortgagePaymentResult struct {
	MonthlyPayment           float64 `json:"monthlyPayment"`
	MonthlyPrincipalInterest float64 `json:"monthlyPrincipalInterest"`
	MonthlyTaxes             float64 `json:"monthlyTaxes"`
	MonthlyInsurance         float64 `json:"monthlyInsurance"`
	TotalPayment             float64 `json:"totalPayment"`
	TotalInterest            float64 `json:"totalInterest"`
}

type RefinanceInput struct {
	CurrentLoanBalance  float64 `json:"currentLoanBalance"`
	CurrentInterestRate float64 `json:"currentInterestRate"`
	CurrentLoanTerm     int     `json:"currentLoanTerm"`
	NewInterestRate     float64 `json:"newInterestRate"`
	NewLoanTerm         int     `json:"newLoanTerm"`
	ClosingCosts        float64 `json:"closingCosts"`
}

type RefinanceResult struct {
	NewMonthlyPayment float64 `json:"newMonthlyPayment"`
	OldMonthlyPayment float64 `json:"oldMonthlyPayment"`
	MonthlySavings    float64 `json:"monthlySavings"`
	BreakEvenMonths   int     `json:"breakEvenMonths"`
	BreakEvenReached  bool    `json:"breakEvenReached"`
	LifetimeSavings   float64 `json:"lifetimeSavings"`
}

type InterestOnlyInput struct {
	LoanAmount           float64 `json:"loanAmount"`
	InterestRate         float64 `json:"interestRate"`
	InterestOnlyPeriod   int     `json:"interestOnlyPeriod"`
	LoanTerm             int     `json:"loanTerm"`
	PropertyValue        float64 `json:"propertyValue"`
	PropertyAppreciation float64 `json:"propertyAppreciation"`
}

type InterestOnlyResult struct {
	InterestOnlyPayment         float64 `json:"interestOnlyPayment"`
	PrincipalAndInterestPayment float64 `json:"principalAndInterestPayment"`
	TotalInterest               float64 `json:"totalInterest"`
	PaymentIncrease             float64 `json:"paymentIncrease"`
	EquityAfterIO               float64 `json:"equityAfterIO"`
}

type ARMvsFixedInput struct {
	LoanAmount           float64 `json:"loanAmount"`
	FixedRate            float64 `json:"fixedRate"`
	InitialARMRate       float64 `json:"initialARMRate"`
	AdjustmentPeriod     int     `json:"adjustmentPeriod"`
	RateAdjustmentCap    float64 `json:"rateAdjustmentCap"`
	LifetimeCap          float64 `json:"lifetimeCap"`
	LoanTerm             int     `json:"loanTerm"`
	ExpectedRateIncrease float64 `json:"expectedRateIncrease"`
}

type ARMvsFixedYear struct {
	Year           int     `json:"year"`
	ARMRate        float64 `json:"armRate"`
	ARMPayment     float64 `json:"armPayment"`
	FixedPayment   float64 `json:"fixedPayment"`
	FixedRemaining float64 `json:"fixedRemaining"`
	ARMRemaining   float64 `json:"armRemaining"`
}

type ARMvsFixedResult struct {
	FixedMonthlyPayment float64          `json:"fixedMonthlyPayment"`
	InitialARMPayment   float64          `json:"initialARMPayment"`
	MaxARMPayment       float64          `json:"maxARMPayment"`
	FixedTotalCost      float64          `json:"fixedTotalCost"`
	ARMTotalCost        float64          `json:"armTotalCost"`
	BreakEvenYear       int              `json:"breakEvenYear"`
	YearByYear          []ARMvsFixedYear `json:"yearByYear"`
}

type HomeAffordabilityInput struct {
	AnnualIncome float64 `json:"annualIncome"`
	MonthlyDebts float64 `json:"monthlyDebts"`
	DownPayment  float64 `json:"downPayment"`
	InterestRate float64 `json:"interestRate"`
	PropertyTax  float64 `json:"propertyTax"`
	Insurance    float64 `json:"insurance"`
	MonthlyHOA   float64 `json:"monthlyHOA"`
}

type HomeAffordabilityResult struct {
	MaxPurchasePrice  float64 `json:"maxPurchasePrice"`
	MaxLoanAmount     float64 `json:"maxLoanAmount"`
	MonthlyPayment    float64 `json:"monthlyPayment"`
	RequiredIncome    float64 `json:"requiredIncome"`
	DebtToIncomeRatio float64 `json:"debtToIncomeRatio"`
}

type LoanType string

const (
	LoanConventional LoanType = "conventional"
	LoanFHA          LoanType = "fha"
	LoanVA           LoanType = "va"
)

type ClosingCostInput struct {
	PurchasePrice float64  `json:"purchasePrice"`
	DownPayment   float64  `json:"downPayment"`
	LoanType      LoanType `json:"loanType"`
	State         string   `json:"state"`
}

type CostItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type ClosingCostResult struct {
	TotalClosingCosts float64    `json:"totalClosingCosts"`
	LenderFees        float64    `json:"lenderFees"`
	ThirdPartyFees    float64    `json:"thirdPartyFees"`
	GovernmentFees    float64    `json:"governmentFees"`
	PrepaidItems      float64    `json:"prepaidItems"`
	ItemizedCosts     []CostItem `json:"itemizedCosts"`
}
