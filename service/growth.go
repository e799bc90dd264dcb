package service

import (
	"math"

	"github.com/joeyg6393/fincalcs/domain"
)

func periodsPerYear(f domain.Frequency) (int, bool) {
	switch f {
	case domain.Annually:
		return 1, true
	case domain.SemiAnnually:
		return 2, true
	case domain.Quarterly:
		return 4, true
	case domain.Monthly:
		return MonthsPerYear, true
	case domain.Daily:
		return DaysPerYear, true
	}
	return 0, false
}

func requireWholeYears(field string, years int) error {
	if years <= 0 {
		return invalid(field, "must be at least one year, got %d", years)
	}
	if years > MaxYears {
		return invalid(field, "exceeds the maximum of %d years", MaxYears)
	}
	return nil
}

// CalculateCompoundInterest compounds the principal at the chosen
// frequency. The monthly contribution is spread evenly over the
// compounding periods of each year.
func CalculateCompoundInterest(input domain.CompoundInterestInput) (domain.CompoundInterestResult, error) {
	err := firstErr(
		requireNonNegative("principal", input.Principal),
		requireRate("annualRate", input.AnnualRate),
		requireWholeYears("years", input.Years),
		requireNonNegative("monthlyContribution", input.MonthlyContribution),
	)
	if err != nil {
		return domain.CompoundInterestResult{}, err
	}
	ppy, ok := periodsPerYear(input.CompoundingFrequency)
	if !ok {
		return domain.CompoundInterestResult{}, invalid("compoundingFrequency", "unsupported frequency %q", input.CompoundingFrequency)
	}

	rate := input.AnnualRate / 100 / float64(ppy)
	contribution := input.MonthlyContribution * MonthsPerYear / float64(ppy)

	balance := input.Principal
	contributions := input.Principal
	breakdown := make([]domain.CompoundInterestYear, 0, input.Years)

	for year := 1; year <= input.Years; year++ {
		var yearInterest, yearContributions float64
		for p := 0; p < ppy; p++ {
			interest := balance * rate
			balance += interest + contribution
			yearInterest += interest
			yearContributions += contribution
		}
		contributions += yearContributions
		breakdown = append(breakdown, domain.CompoundInterestYear{
			Year:          year,
			Balance:       roundWhole(balance),
			Interest:      roundWhole(yearInterest),
			Contributions: roundWhole(yearContributions),
		})
	}

	if err := checkFinite(balance); err != nil {
		return domain.CompoundInterestResult{}, err
	}

	return domain.CompoundInterestResult{
		FinalAmount:        roundWhole(balance),
		TotalInterest:      roundWhole(balance - contributions),
		TotalContributions: roundWhole(contributions),
		YearlyBreakdown:    breakdown,
	}, nil
}

// CalculateSimpleInterest computes P*r*t with Time in years.
func CalculateSimpleInterest(input domain.SimpleInterestInput) (domain.SimpleInterestResult, error) {
	err := firstErr(
		requireNonNegative("principal", input.Principal),
		requireRate("rate", input.Rate),
		requireYears("time", input.Time),
	)
	if err != nil {
		return domain.SimpleInterestResult{}, err
	}

	interest := input.Principal * input.Rate * input.Time / 100
	return domain.SimpleInterestResult{
		Interest:      roundTo2Decimals(interest),
		FinalAmount:   roundTo2Decimals(input.Principal + interest),
		DailyInterest: roundTo2Decimals(interest / (input.Time * DaysPerYear)),
	}, nil
}

// CalculateRule72 estimates the years needed to double an amount as
// 72 / rate.
func CalculateRule72(input domain.Rule72Input) (domain.Rule72Result, error) {
	err := firstErr(
		requirePositive("interestRate", input.InterestRate),
		requireRate("interestRate", input.InterestRate),
		requireNonNegative("initialAmount", input.InitialAmount),
	)
	if err != nil {
		return domain.Rule72Result{}, err
	}

	years := 72 / input.InterestRate
	return domain.Rule72Result{
		YearsToDouble: roundTo2Decimals(years),
		DoubledAmount: roundTo2Decimals(input.InitialAmount * 2),
		EffectiveRate: roundTo2Decimals(72 / years),
	}, nil
}

// CalculateFutureValue compounds the present value and adds each payment
// at the start of its payment interval. When payments are more frequent
// than compounding, every payment due in a period lands at its start.
func CalculateFutureValue(input domain.FutureValueInput) (domain.FutureValueResult, error) {
	err := firstErr(
		requireNonNegative("presentValue", input.PresentValue),
		requireRate("rate", input.Rate),
		requireWholeYears("years", input.Years),
		requireNonNegative("payments", input.Payments),
	)
	if err != nil {
		return domain.FutureValueResult{}, err
	}
	ppy, ok := periodsPerYear(input.CompoundingFrequency)
	if !ok {
		return domain.FutureValueResult{}, invalid("compoundingFrequency", "unsupported frequency %q", input.CompoundingFrequency)
	}
	var paymentsPerYear int
	switch input.PaymentFrequency {
	case domain.Annually:
		paymentsPerYear = 1
	case domain.Monthly:
		paymentsPerYear = MonthsPerYear
	default:
		return domain.FutureValueResult{}, invalid("paymentFrequency", "must be annually or monthly, got %q", input.PaymentFrequency)
	}

	rate := input.Rate / 100 / float64(ppy)
	balance := input.PresentValue
	contributions := input.PresentValue
	totalInterest := 0.0
	timeline := make([]domain.FutureValueYear, 0, input.Years)

	for year := 1; year <= input.Years; year++ {
		var yearContributions, yearInterest float64
		for p := 0; p < ppy; p++ {
			// Number of payment intervals that begin in this period.
			due := ceilDiv((p+1)*paymentsPerYear, ppy) - ceilDiv(p*paymentsPerYear, ppy)
			interest := balance * rate
			paid := float64(due) * input.Payments
			balance += interest + paid
			yearInterest += interest
			yearContributions += paid
		}
		contributions += yearContributions
		totalInterest += yearInterest
		timeline = append(timeline, domain.FutureValueYear{
			Year:          year,
			Value:         roundWhole(balance),
			Contributions: roundWhole(yearContributions),
			Interest:      roundWhole(yearInterest),
		})
	}

	if err := checkFinite(balance); err != nil {
		return domain.FutureValueResult{}, err
	}

	return domain.FutureValueResult{
		FutureValue:        roundWhole(balance),
		TotalContributions: roundWhole(contributions),
		TotalInterest:      roundWhole(totalInterest),
		Timeline:           timeline,
	}, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// CalculateInvestmentGrowth tracks a nominal balance and an inflation
// adjusted one side by side, and the tax owed on nominal growth.
func CalculateInvestmentGrowth(input domain.InvestmentGrowthInput) (domain.InvestmentGrowthResult, error) {
	err := firstErr(
		requireNonNegative("initialAmount", input.InitialAmount),
		requireNonNegative("monthlyContribution", input.MonthlyContribution),
		requireWholeYears("years", input.Years),
		requireFinite("expectedReturn", input.ExpectedReturn),
		requireFinite("inflationRate", input.InflationRate),
		requireNonNegative("taxRate", input.TaxRate),
	)
	if err != nil {
		return domain.InvestmentGrowthResult{}, err
	}
	if input.TaxRate > 100 {
		return domain.InvestmentGrowthResult{}, invalid("taxRate", "must not exceed 100%%")
	}

	monthlyRate := input.ExpectedReturn / 100 / MonthsPerYear
	monthlyInflation := input.InflationRate / 100 / MonthsPerYear

	nominal := input.InitialAmount
	realBalance := input.InitialAmount
	contributions := input.InitialAmount
	taxes := 0.0
	breakdown := make([]domain.InvestmentGrowthYear, 0, input.Years)

	for year := 1; year <= input.Years; year++ {
		var yearContributions, yearTaxes float64
		for month := 0; month < MonthsPerYear; month++ {
			growth := nominal * monthlyRate
			nominal += growth + input.MonthlyContribution
			realBalance += realBalance*(monthlyRate-monthlyInflation) + input.MonthlyContribution

			yearContributions += input.MonthlyContribution
			yearTaxes += growth * input.TaxRate / 100
		}
		contributions += yearContributions
		taxes += yearTaxes
		breakdown = append(breakdown, domain.InvestmentGrowthYear{
			Year:          year,
			Nominal:       roundWhole(nominal),
			Real:          roundWhole(realBalance),
			Contributions: roundWhole(yearContributions),
			Taxes:         roundWhole(yearTaxes),
		})
	}

	if err := checkFinite(nominal, realBalance, taxes); err != nil {
		return domain.InvestmentGrowthResult{}, err
	}

	return domain.InvestmentGrowthResult{
		NominalValue:       roundWhole(nominal),
		RealValue:          roundWhole(realBalance),
		TotalContributions: roundWhole(contributions),
		TotalTaxes:         roundWhole(taxes),
		YearlyBreakdown:    breakdown,
	}, nil
}

// CalculateInvestment adds the contribution at the start of each month
// and compounds monthly.
func CalculateInvestment(input domain.InvestmentInput) (domain.InvestmentResult, error) {
	err := firstErr(
		requireNonNegative("initialInvestment", input.InitialInvestment),
		requireNonNegative("monthlyContribution", input.MonthlyContribution),
		requireFinite("annualReturn", input.AnnualReturn),
		requireWholeYears("timeHorizon", input.TimeHorizon),
	)
	if err != nil {
		return domain.InvestmentResult{}, err
	}

	r := input.AnnualReturn / 100 / MonthsPerYear
	months := input.TimeHorizon * MonthsPerYear
	contributions := input.InitialInvestment + input.MonthlyContribution*float64(months)

	balance := input.InitialInvestment
	projections := make([]domain.MonthlyBalance, 0, months)
	for month := 1; month <= months; month++ {
		balance = (balance + input.MonthlyContribution) * (1 + r)
		projections = append(projections, domain.MonthlyBalance{Month: month, Balance: roundWhole(balance)})
	}

	if err := checkFinite(balance); err != nil {
		return domain.InvestmentResult{}, err
	}

	return domain.InvestmentResult{
		FinalBalance:       roundWhole(balance),
		TotalContributions: roundWhole(contributions),
		TotalEarnings:      roundWhole(balance - contributions),
		MonthlyProjections: projections,
	}, nil
}

// CalculateRetirement projects a workplace retirement account with an
// employer match capped at MatchLimit percent of salary.
func CalculateRetirement(input domain.RetirementInput) (domain.RetirementResult, error) {
	err := firstErr(
		requireNonNegative("salary", input.Salary),
		requireNonNegative("contribution", input.Contribution),
		requireNonNegative("employerMatch", input.EmployerMatch),
		requireNonNegative("matchLimit", input.MatchLimit),
		requireNonNegative("currentBalance", input.CurrentBalance),
		requireFinite("annualReturn", input.AnnualReturn),
	)
	if err != nil {
		return domain.RetirementResult{}, err
	}
	if input.CurrentAge < 0 {
		return domain.RetirementResult{}, invalid("currentAge", "must not be negative")
	}
	if input.RetirementAge <= input.CurrentAge {
		return domain.RetirementResult{}, invalid("retirementAge", "must be after the current age")
	}
	if input.RetirementAge-input.CurrentAge > MaxYears {
		return domain.RetirementResult{}, invalid("retirementAge", "more than %d years away", MaxYears)
	}

	r := input.AnnualReturn / 100 / MonthsPerYear
	months := (input.RetirementAge - input.CurrentAge) * MonthsPerYear

	monthly := input.Salary * input.Contribution / 100 / MonthsPerYear
	match := math.Min(monthly*input.EmployerMatch/100, input.Salary*input.MatchLimit/100/MonthsPerYear)

	balance := input.CurrentBalance
	for month := 0; month < months; month++ {
		balance = (balance + monthly + match) * (1 + r)
	}

	if err := checkFinite(balance); err != nil {
		return domain.RetirementResult{}, err
	}

	return domain.RetirementResult{
		ProjectedBalance:      roundWhole(balance),
		TotalContributions:    roundWhole(monthly * float64(months)),
		EmployerContributions: roundWhole(match * float64(months)),
		MonthlyContribution:   roundWhole(monthly),
	}, nil
}

// requiredDeposit is the end-of-month deposit that grows initial into
// target over months at annualRate percent. Zero rate saves linearly.
func requiredDeposit(target, initial, annualRate float64, months int) float64 {
	n := float64(months)
	if annualRate == 0 {
		return (target - initial) / n
	}
	r := annualRate / 100 / MonthsPerYear
	growth := math.Pow(1+r, n)
	return (target - initial*growth) * r / (growth - 1)
}

// CalculateSavingsGoal finds the monthly deposit that reaches TargetAmount.
// When the initial savings alone reach the target the deposit is zero.
func CalculateSavingsGoal(input domain.SavingsGoalInput) (domain.SavingsGoalResult, error) {
	err := firstErr(
		requirePositive("targetAmount", input.TargetAmount),
		requireWholeYears("timeframe", input.Timeframe),
		requireNonNegative("initialSavings", input.InitialSavings),
		requireRate("interestRate", input.InterestRate),
	)
	if err != nil {
		return domain.SavingsGoalResult{}, err
	}

	months := input.Timeframe * MonthsPerYear
	monthly := requiredDeposit(input.TargetAmount, input.InitialSavings, input.InterestRate, months)
	final := input.TargetAmount
	if monthly < 0 {
		monthly = 0
		final = input.InitialSavings * math.Pow(1+input.InterestRate/100/MonthsPerYear, float64(months))
	}
	contributions := monthly * float64(months)

	if err := checkFinite(monthly, final); err != nil {
		return domain.SavingsGoalResult{}, err
	}

	return domain.SavingsGoalResult{
		MonthlyRequired:    roundWhole(monthly),
		TotalContributions: roundWhole(contributions),
		TotalInterest:      roundWhole(final - contributions - input.InitialSavings),
		FinalBalance:       roundWhole(final),
	}, nil
}

// CalculateCollegeSavings sizes the monthly deposit for the full cost of
// college. The projection compounds annually, so it can fall slightly
// short of the monthly-compounded target.
func CalculateCollegeSavings(input domain.CollegeSavingsInput) (domain.CollegeSavingsResult, error) {
	err := firstErr(
		requireNonNegative("annualCost", input.AnnualCost),
		requireNonNegative("currentSavings", input.CurrentSavings),
		requireRate("expectedReturn", input.ExpectedReturn),
	)
	if err != nil {
		return domain.CollegeSavingsResult{}, err
	}
	if input.ChildAge < 0 {
		return domain.CollegeSavingsResult{}, invalid("childAge", "must not be negative")
	}
	if input.CollegeStartAge <= input.ChildAge {
		return domain.CollegeSavingsResult{}, invalid("collegeStartAge", "must be after the child's current age")
	}
	if input.YearsInCollege <= 0 {
		return domain.CollegeSavingsResult{}, invalid("yearsInCollege", "must be at least one year")
	}

	years := input.CollegeStartAge - input.ChildAge
	total := input.AnnualCost * float64(input.YearsInCollege)
	monthly := requiredDeposit(total, input.CurrentSavings, input.ExpectedReturn, years*MonthsPerYear)

	var projected float64
	if input.ExpectedReturn == 0 {
		projected = input.CurrentSavings + monthly*MonthsPerYear*float64(years)
	} else {
		annual := input.ExpectedReturn / 100
		growth := math.Pow(1+annual, float64(years))
		projected = input.CurrentSavings*growth + monthly*MonthsPerYear*(growth-1)/annual
	}

	if err := checkFinite(monthly, projected); err != nil {
		return domain.CollegeSavingsResult{}, err
	}

	return domain.CollegeSavingsResult{
		TotalCost:           roundWhole(total),
		MonthlyContribution: roundWhole(monthly),
		ProjectedSavings:    roundWhole(projected),
		Shortfall:           roundWhole(math.Max(0, total-projected)),
	}, nil
}

// CalculateEmergencyFund spreads the missing amount over one year.
func CalculateEmergencyFund(input domain.EmergencyFundInput) (domain.EmergencyFundResult, error) {
	err := firstErr(
		requirePositive("monthlyExpenses", input.MonthlyExpenses),
		requireNonNegative("currentSavings", input.CurrentSavings),
	)
	if err != nil {
		return domain.EmergencyFundResult{}, err
	}
	if input.DesiredMonths <= 0 {
		return domain.EmergencyFundResult{}, invalid("desiredMonths", "must be at least one month")
	}

	target := input.MonthlyExpenses * float64(input.DesiredMonths)
	additional := math.Max(0, target-input.CurrentSavings)
	result := domain.EmergencyFundResult{
		TargetAmount:        roundWhole(target),
		AdditionalNeeded:    roundWhole(additional),
		MonthlyContribution: roundWhole(additional / MonthsPerYear),
	}
	if additional > 0 {
		result.TimeToReach = MonthsPerYear
	}
	return result, nil
}

// CalculateRainyDay targets six months of TargetPercentage of income.
func CalculateRainyDay(input domain.RainyDayInput) (domain.RainyDayResult, error) {
	err := firstErr(
		requirePositive("monthlyIncome", input.MonthlyIncome),
		requirePositive("targetPercentage", input.TargetPercentage),
		requireNonNegative("currentSavings", input.CurrentSavings),
		requireWholeYears("timeframe", input.Timeframe),
	)
	if err != nil {
		return domain.RainyDayResult{}, err
	}

	target := input.MonthlyIncome * input.TargetPercentage / 100 * 6
	remaining := math.Max(0, target-input.CurrentSavings)

	return domain.RainyDayResult{
		TargetAmount:        roundWhole(target),
		MonthlyContribution: roundWhole(remaining / float64(input.Timeframe*MonthsPerYear)),
		TimeToReach:         input.Timeframe,
		ProgressPercentage:  roundTo1Decimal(input.CurrentSavings / target * 100),
	}, nil
}
