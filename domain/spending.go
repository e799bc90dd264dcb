package domain

type BudgetExpenses struct {
	Housing        float64 `json:"housing"`
	Utilities      float64 `json:"utilities"`
	Food           float64 `json:"food"`
	Transportation float64 `json:"transportation"`
	Healthcare     float64 `json:"healthcare"`
	Entertainment  float64 `json:"entertainment"`
	Other          float64 `json:"other"`
}

type BudgetPlannerInput struct {
	MonthlyIncome float64        `json:"monthlyIncome"`
	Expenses      BudgetExpenses `json:"expenses"`
}

// CategoryShare is an amount and its share of a total, in percent.
type CategoryShare struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type BudgetPlannerResult struct {
	TotalExpenses    float64         `json:"totalExpenses"`
	RemainingIncome  float64         `json:"remainingIncome"`
	ExpenseBreakdown []CategoryShare `json:"expenseBreakdown"`
}

type CostOfLivingInput struct {
	CurrentCity           string  `json:"currentCity"`
	NewCity               string  `json:"newCity"`
	CurrentIncome         float64 `json:"currentIncome"`
	CurrentRent           float64 `json:"currentRent"`
	CurrentUtilities      float64 `json:"currentUtilities"`
	CurrentGroceries      float64 `json:"currentGroceries"`
	CurrentTransportation float64 `json:"currentTransportation"`
}

type CostOfLivingResult struct {
	RequiredIncome           float64 `json:"requiredIncome"`
	RentDifference           float64 `json:"rentDifference"`
	UtilitiesDifference      float64 `json:"utilitiesDifference"`
	GroceriesDifference      float64 `json:"groceriesDifference"`
	TransportationDifference float64 `json:"transportationDifference"`
	TotalDifference          float64 `json:"totalDifference"`
	PercentageDifference     float64 `json:"percentageDifference"`
}

type BillingCycle string

const (
	BilledMonthly BillingCycle = "monthly"
	BilledYearly  BillingCycle = "yearly"
)

type Subscription struct {
	Name         string       `json:"name"`
	Cost         float64      `json:"cost"`
	BillingCycle BillingCycle `json:"billingCycle"`
	Category     string       `json:"category"`
}

type SubscriptionInput struct {
	Subscriptions []Subscription `json:"subscriptions"`
}

type SubscriptionCategory struct {
	Category      string  `json:"category"`
	MonthlyAmount float64 `json:"monthlyAmount"`
	YearlyAmount  float64 `json:"yearlyAmount"`
	Percentage    float64 `json:"percentage"`
}

type SubscriptionResult struct {
	MonthlyTotal      float64                `json:"monthlyTotal"`
	YearlyTotal       float64                `json:"yearlyTotal"`
	CategoryBreakdown []SubscriptionCategory `json:"categoryBreakdown"`
}

type VacationSavingsInput struct {
	Destination       string  `json:"destination"`
	TravelCost        float64 `json:"travelCost"`
	AccommodationCost float64 `json:"accommodationCost"`
	Activities        float64 `json:"activities"`
	Food              float64 `json:"food"`
	MiscExpenses      float64 `json:"miscExpenses"`
	StartDate         Date    `json:"startDate"`
	CurrentSavings    float64 `json:"currentSavings"`
	AsOf              Date    `json:"asOf"`
}

type VacationBreakdown struct {
	Travel        float64 `json:"travel"`
	Accommodation float64 `json:"accommodation"`
	Activities    float64 `json:"activities"`
	Food          float64 `json:"food"`
	Misc          float64 `json:"misc"`
}

type VacationSavingsResult struct {
	TotalCost       float64           `json:"totalCost"`
	MonthlyRequired float64           `json:"monthlyRequired"`
	WeeksUntilTrip  int               `json:"weeksUntilTrip"`
	SavingsProgress float64           `json:"savingsProgress"`
	Breakdown       VacationBreakdown `json:"breakdown"`
}

type EntertainmentCategories struct {
	Dining    float64 `json:"dining"`
	Movies    float64 `json:"movies"`
	Concerts  float64 `json:"concerts"`
	Sports    float64 `json:"sports"`
	Hobbies   float64 `json:"hobbies"`
	Streaming float64 `json:"streaming"`
	Other     float64 `json:"other"`
}

type EntertainmentBudgetInput struct {
	MonthlyIncome float64                 `json:"monthlyIncome"`
	Categories    EntertainmentCategories `json:"categories"`
}

type EntertainmentBudgetResult struct {
	TotalBudget        float64         `json:"totalBudget"`
	PercentageOfIncome float64         `json:"percentageOfIncome"`
	CategoryBreakdown  []CategoryShare `json:"categoryBreakdown"`
	Recommendations    []string        `json:"recommendations"`
}

// Expense is a monthly bill. DueDate is a day of the month.
type Expense struct {
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	DueDate     *int    `json:"dueDate,omitempty"`
	IsRecurring bool    `json:"isRecurring"`
}

type MonthlyExpenseInput struct {
	Income   float64   `json:"income"`
	Expenses []Expense `json:"expenses"`
}

type UpcomingExpense struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	DueDate int     `json:"dueDate"`
}

type MonthlyExpenseResult struct {
	TotalExpenses      float64           `json:"totalExpenses"`
	RemainingIncome    float64           `json:"remainingIncome"`
	ExpensesByCategory []CategoryShare   `json:"expensesByCategory"`
	UpcomingExpenses   []UpcomingExpense `json:"upcomingExpenses"`
}
