package domain

// Frequency names a compounding or payment frequency.
type Frequency string

const (
	Annually     Frequency = "annually"
	SemiAnnually Frequency = "semi-annually"
	Quarterly    Frequency = "quarterly"
	Monthly      Frequency = "monthly"
	Daily        Frequency = "daily"
)

type CompoundInterestInput struct {
	Principal            float64   `json:"principal"`
	AnnualRate           float64   `json:"annualRate"`
	Years                int       `json:"years"`
	CompoundingFrequency Frequency `json:"compoundingFrequency"`
	MonthlyContribution  float64   `json:"monthlyContribution"`
}

type CompoundInterestYear struct {
	Year          int     `json:"year"`
	Balance       float64 `json:"balance"`
	Interest      float64 `json:"interest"`
	Contributions float64 `json:"contributions"`
}

type CompoundInterestResult struct {
	FinalAmount        float64                `json:"finalAmount"`
	TotalInterest      float64                `json:"totalInterest"`
	TotalContributions float64                `json:"totalContributions"`
	YearlyBreakdown    []CompoundInterestYear `json:"yearlyBreakdown"`
}

type SimpleInterestInput struct {
	Principal float64 `json:"principal"`
	Rate      float64 `json:"rate"`
	Time      float64 `json:"time"`
}

type SimpleInterestResult struct {
	Interest      float64 `json:"interest"`
	FinalAmount   float64 `json:"finalAmount"`
	DailyInterest float64 `json:"dailyInterest"`
}

type Rule72Input struct {
	InterestRate  float64 `json:"interestRate"`
	InitialAmount float64 `json:"initialAmount"`
}

type Rule72Result struct {
	YearsToDouble float64 `json:"yearsToDouble"`
	DoubledAmount float64 `json:"doubledAmount"`
	EffectiveRate float64 `json:"effectiveRate"`
}

// FutureValueInput makes Payments at PaymentFrequency (annually or
// monthly) into a balance compounded at CompoundingFrequency.
type FutureValueInput struct {
	PresentValue         float64   `json:"presentValue"`
	Rate                 float64   `json:"rate"`
	Years                int       `json:"years"`
	Payments             float64   `json:"payments"`
	PaymentFrequency     Frequency `json:"paymentFrequency"`
	CompoundingFrequency Frequency `json:"compoundingFrequency"`
}

type FutureValueYear struct {
	Year          int     `json:"year"`
	Value         float64 `json:"value"`
	Contributions float64 `json:"contributions"`
	Interest      float64 `json:"interest"`
}

type FutureValueResult struct {
	FutureValue        float64           `json:"futureValue"`
	TotalContributions float64           `json:"totalContributions"`
	TotalInterest      float64           `json:"totalInterest"`
	Timeline           []FutureValueYear `json:"timeline"`
}

type InvestmentGrowthInput struct {
	InitialAmount       float64 `json:"initialAmount"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	Years               int     `json:"years"`
	ExpectedReturn      float64 `json:"expectedReturn"`
	InflationRate       float64 `json:"inflationRate"`
	TaxRate             float64 `json:"taxRate"`
}

type InvestmentGrowthYear struct {
	Year          int     `json:"year"`
	Nominal       float64 `json:"nominal"`
	Real          float64 `json:"real"`
	Contributions float64 `json:"contributions"`
	Taxes         float64 `json:"taxes"`
}

type InvestmentGrowthResult struct {
	NominalValue       float64                `json:"nominalValue"`
	RealValue          float64                `json:"realValue"`
	TotalContributions float64                `json:"totalContributions"`
	TotalTaxes         float64                `json:"totalTaxes"`
	YearlyBreakdown    []InvestmentGrowthYear `json:"yearlyBreakdown"`
}

type InvestmentInput struct {
	InitialInvestment   float64 `json:"initialInvestment"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	AnnualReturn        float64 `json:"annualReturn"`
	TimeHorizon         int     `json:"timeHorizon"`
}

type MonthlyBalance struct {
	Month   int     `json:"month"`
	Balance float64 `json:"balance"`
}

type InvestmentResult struct {
	FinalBalance       float64          `json:"finalBalance"`
	TotalContributions float64          `json:"totalContributions"`
	TotalEarnings      float64          `json:"totalEarnings"`
	MonthlyProjections []MonthlyBalance `json:"monthlyProjections"`
}

type RetirementInput struct {
	Salary         float64 `json:"salary"`
	Contribution   float64 `json:"contribution"`
	EmployerMatch  float64 `json:"employerMatch"`
	MatchLimit     float64 `json:"matchLimit"`
	CurrentAge     int     `json:"currentAge"`
	RetirementAge  int     `json:"retirementAge"`
	CurrentBalance float64 `json:"currentBalance"`
	AnnualReturn   float64 `json:"annualReturn"`
}

type RetirementResult struct {
	ProjectedBalance      float64 `json:"projectedBalance"`
	TotalContributions    float64 `json:"totalContributions"`
	EmployerContributions float64 `json:"employerContributions"`
	MonthlyContribution   float64 `json:"monthlyContribution"`
}

type SavingsGoalInput struct {
	TargetAmount   float64 `json:"targetAmount"`
	Timeframe      int     `json:"timeframe"`
	InitialSavings float64 `json:"initialSavings"`
	InterestRate   float64 `json:"interestRate"`
}

type SavingsGoalResult struct {
	MonthlyRequired    float64 `json:"monthlyRequired"`
	TotalContributions float64 `json:"totalContributions"`
	TotalInterest      float64 `json:"totalInterest"`
	FinalBalance       float64 `json:"finalBalance"`
}

type CollegeSavingsInput struct {
	ChildAge        int     `json:"childAge"`
	CollegeStartAge int     `json:"collegeStartAge"`
	YearsInCollege  int     `json:"yearsInCollege"`
	AnnualCost      float64 `json:"annualCost"`
	CurrentSavings  float64 `json:"currentSavings"`
	ExpectedReturn  float64 `json:"expectedReturn"`
}

type CollegeSavingsResult struct {
	TotalCost           float64 `json:"totalCost"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	ProjectedSavings    float64 `json:"projectedSavings"`
	Shortfall           float64 `json:"shortfall"`
}

type EmergencyFundInput struct {
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	DesiredMonths   int     `json:"desiredMonths"`
	CurrentSavings  float64 `json:"currentSavings"`
}

type EmergencyFundResult struct {
	TargetAmount        float64 `json:"targetAmount"`
	AdditionalNeeded    float64 `json:"additionalNeeded"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	TimeToReach         int     `json:"timeToReach"`
}

type RainyDayInput struct {
	MonthlyIncome    float64 `json:"monthlyIncome"`
	TargetPercentage float64 `json:"targetPercentage"`
	CurrentSavings   float64 `json:"currentSavings"`
	Timeframe        int     `json:"timeframe"`
}

type RainyDayResult struct {
	TargetAmount        float64 `json:"targetAmount"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	TimeToReach         int     `json:"timeToReach"`
	ProgressPercentage  float64 `json:"progressPercentage"`
}
