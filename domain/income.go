package domain

type SalaryInput struct {
	HourlyRate   float64 `json:"hourlyRate"`
	HoursPerWeek float64 `json:"hoursPerWeek"`
	WeeksPerYear float64 `json:"weeksPerYear"`
}

type SalaryResult struct {
	AnnualSalary   float64 `json:"annualSalary"`
	MonthlySalary  float64 `json:"monthlySalary"`
	BiweeklySalary float64 `json:"biweeklySalary"`
	WeeklyPay      float64 `json:"weeklyPay"`
	DailyPay       float64 `json:"dailyPay"`
}

type SelfEmploymentInput struct {
	NetEarnings       float64 `json:"netEarnings"`
	Expenses          float64 `json:"expenses"`
	OtherIncome       float64 `json:"otherIncome"`
	BusinessMiles     float64 `json:"businessMiles"`
	HomeOfficePercent float64 `json:"homeOfficePercent"`
}

type SelfEmploymentResult struct {
	SelfEmploymentTax     float64 `json:"selfEmploymentTax"`
	SocialSecurityTax     float64 `json:"socialSecurityTax"`
	MedicareTax           float64 `json:"medicareTax"`
	TaxableIncome         float64 `json:"taxableIncome"`
	EstimatedQuarterlyTax float64 `json:"estimatedQuarterlyTax"`
	Deductions            float64 `json:"deductions"`
}

// NetIncomeInput takes an annual gross income and monthly health insurance
// and other deductions. FilingStatus, State and PayFrequency are carried for
// display; the flat-rate estimate does not depend on them.
type NetIncomeInput struct {
	GrossIncome     float64 `json:"grossIncome"`
	PayFrequency    string  `json:"payFrequency,omitempty"`
	FilingStatus    string  `json:"filingStatus,omitempty"`
	Allowances      int     `json:"allowances,omitempty"`
	State           string  `json:"state,omitempty"`
	Retirement401k  float64 `json:"retirement401k"`
	HealthInsurance float64 `json:"healthInsurance"`
	OtherDeductions float64 `json:"otherDeductions"`
}

// NetIncomeResult is per month.
type NetIncomeResult struct {
	GrossPay        float64 `json:"grossPay"`
	FederalTax      float64 `json:"federalTax"`
	StateTax        float64 `json:"stateTax"`
	SocialSecurity  float64 `json:"socialSecurity"`
	Medicare        float64 `json:"medicare"`
	Retirement401k  float64 `json:"retirement401k"`
	HealthInsurance float64 `json:"healthInsurance"`
	OtherDeductions float64 `json:"otherDeductions"`
	NetPay          float64 `json:"netPay"`
}

type TaxWithholdingInput struct {
	AnnualSalary          float64 `json:"annualSalary"`
	FilingStatus          string  `json:"filingStatus,omitempty"`
	Allowances            int     `json:"allowances"`
	State                 string  `json:"state,omitempty"`
	AdditionalWithholding float64 `json:"additionalWithholding"`
}

// TaxWithholdingResult is per month.
type TaxWithholdingResult struct {
	FederalWithholding float64 `json:"federalWithholding"`
	StateWithholding   float64 `json:"stateWithholding"`
	SocialSecurity     float64 `json:"socialSecurity"`
	Medicare           float64 `json:"medicare"`
	TotalWithholding   float64 `json:"totalWithholding"`
	NetPay             float64 `json:"netPay"`
}
