package domain

type DebtStrategy string

const (
	StrategySnowball  DebtStrategy = "snowball"
	StrategyAvalanche DebtStrategy = "avalanche"
	StrategyCompare   DebtStrategy = "compare"
)

type Debt struct {
	Name           string  `json:"name"`
	Amount         float64 `json:"amount"`
	InterestRate   float64 `json:"interestRate"`
	MinimumPayment float64 `json:"minimumPayment"`
}

type DebtExitInput struct {
	Debts                   []Debt       `json:"debts"`
	AvailableMonthlyPayment float64      `json:"availableMonthlyPayment"`
	Strategy                DebtStrategy `json:"strategy"`
}

type MonthlyPayment struct {
	DebtName         string  `json:"debtName"`
	Payment          float64 `json:"payment"`
	RemainingBalance float64 `json:"remainingBalance"`
}

type MonthlyPlan struct {
	Month     int              `json:"month"`
	Payments  []MonthlyPayment `json:"payments"`
	TotalPaid float64          `json:"totalPaid"`
}

// DebtPayoff records when a single debt was cleared. PayoffMonth is 0 for
// a debt still open when the simulation stopped.
type DebtPayoff struct {
	DebtName     string  `json:"debtName"`
	PayoffMonth  int     `json:"payoffMonth"`
	InterestPaid float64 `json:"interestPaid"`
}

type StrategyResult struct {
	TotalInterestPaid float64 `json:"totalInterestPaid"`
	MonthsToPayoff    int     `json:"monthsToPayoff"`
}

type StrategySavings struct {
	InterestSaved float64 `json:"interestSaved"`
	MonthsSaved   int     `json:"monthsSaved"`
}

type Comparison struct {
	Snowball  StrategyResult  `json:"snowball"`
	Avalanche StrategyResult  `json:"avalanche"`
	Savings   StrategySavings `json:"savings"`
}

type DebtExitResult struct {
	Strategy          DebtStrategy  `json:"strategy"`
	TotalDebt         float64       `json:"totalDebt"`
	TotalInterestPaid float64       `json:"totalInterestPaid"`
	MonthsToPayoff    int           `json:"monthsToPayoff"`
	PayoffReached     bool          `json:"payoffReached"`
	Payoffs           []DebtPayoff  `json:"payoffs"`
	MonthlyPlan       []MonthlyPlan `json:"monthlyPlan"`
	Comparison        *Comparison   `json:"comparison,omitempty"`
	Explanation       string        `json:"explanation,omitempty"`
}

// PayoffDebt is a debt as entered in the snowball and avalanche
// calculators.
type PayoffDebt struct {
	Name           string  `json:"name"`
	Balance        float64 `json:"balance"`
	InterestRate   float64 `json:"interestRate"`
	MinimumPayment float64 `json:"minimumPayment"`
}

// DebtPayoffInput is shared by the snowball and avalanche calculators. The
// monthly budget is the sum of the minimums plus AdditionalPayment.
type DebtPayoffInput struct {
	Debts             []PayoffDebt `json:"debts"`
	AdditionalPayment float64      `json:"additionalPayment"`
}

type DebtPayoffResult struct {
	TotalMonths    int          `json:"totalMonths"`
	TotalInterest  float64      `json:"totalInterest"`
	TotalPayment   float64      `json:"totalPayment"`
	PayoffReached  bool         `json:"payoffReached"`
	PayoffSchedule []DebtPayoff `json:"payoffSchedule"`
}

type CreditCardInput struct {
	Balance           float64 `json:"balance"`
	InterestRate      float64 `json:"interestRate"`
	MonthlyPayment    float64 `json:"monthlyPayment"`
	AdditionalPayment float64 `json:"additionalPayment"`
	AsOf              Date    `json:"asOf"`
}

type LoanPayoffInput struct {
	LoanAmount        float64 `json:"loanAmount"`
	InterestRate      float64 `json:"interestRate"`
	MonthlyPayment    float64 `json:"monthlyPayment"`
	AdditionalPayment float64 `json:"additionalPayment"`
	AsOf              Date    `json:"asOf"`
}

// PayoffResult is returned by both the credit card and the loan payoff
// calculators.
type PayoffResult struct {
	MonthsToPayoff int     `json:"monthsToPayoff"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalPayment   float64 `json:"totalPayment"`
	PayoffDate     Date    `json:"payoffDate"`
	PayoffReached  bool    `json:"payoffReached"`
}

type MonthlyDebt struct {
	Name           string  `json:"name"`
	MonthlyPayment float64 `json:"monthlyPayment"`
}

type DebtToIncomeInput struct {
	MonthlyIncome float64       `json:"monthlyIncome"`
	Debts         []MonthlyDebt `json:"debts"`
}

type DebtToIncomeStatus string

const (
	DTIExcellent DebtToIncomeStatus = "Excellent"
	DTIGood      DebtToIncomeStatus = "Good"
	DTIFair      DebtToIncomeStatus = "Fair"
	DTIPoor      DebtToIncomeStatus = "Poor"
)

type DebtToIncomeResult struct {
	Ratio            float64            `json:"ratio"`
	TotalMonthlyDebt float64            `json:"totalMonthlyDebt"`
	Status           DebtToIncomeStatus `json:"status"`
	Recommendations  []string           `json:"recommendations"`
}
