package service

const (
	MaxLoanAmount        = 1_000_000_000.0 // 1 billion
	MaxInterestRate      = 1000.0          // 1000% per year
	MaxTermMonths        = 600             // 50 years
	MinTermMonths        = 1
	MaxYears             = 100
	MaxDebtAmount        = 100_000_000.0
	MaxDebtsPerRequest   = 50
	MaxPayoffMonths      = 1200 // 100 years, guard for non-amortizing payments
	DebtBalanceTolerance = 0.01 // balance considered paid off

	// Term recommendation range limit.
	MaxTermRangeMonths = 120

	MonthsPerYear = 12
	DaysPerYear   = 365
	WeeksPerMonth = 4.33
)

// Tax and payroll figures used by the income calculators.
const (
	MileageRate            = 0.655 // IRS standard mileage rate, 2023
	SocialSecurityWageBase = 160200.0
	PayrollWageBase        = 147000.0
	SelfEmploymentSSRate   = 0.124
	SelfEmploymentMedicare = 0.029
	EstimatedIncomeTaxRate = 0.15
	FederalTaxRate         = 0.22
	StateTaxRate           = 0.06
	SocialSecurityRate     = 0.062
	MedicareRate           = 0.0145
	AllowanceValue         = 4300.0
)

// Options and statistics.
const (
	ImpliedVolSeed          = 30.0
	ImpliedVolMaxIterations = 100
	ImpliedVolTolerance     = 0.0001
	ImpliedVolMin           = 1.0
	ImpliedVolMax           = 200.0
	HistoricalVolatility    = 20.0
	ParityArbitrageBand     = 0.5
	VaRZScore95             = 1.645
	ContractSize            = 100
)

// Real estate assumptions.
const (
	FrontEndRatio          = 0.28
	BackEndRatio           = 0.36
	AffordabilityTermYears = 30
	ARMRateCeiling         = 20.0
	CapRateFinancingRate   = 4.5
	CapRateDownPayment     = 0.2
	RentalAppreciation     = 0.03
)
