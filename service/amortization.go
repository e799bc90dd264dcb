package service

import (
	"fmt"
	"math"

	"github.com/joeyg6393/fincalcs/domain"
)

// MonthlyPayment returns the fixed payment that amortizes principal over
// months at annualRate percent. A zero rate amortizes linearly.
func MonthlyPayment(principal, annualRate float64, months int) float64 {
	if months <= 0 {
		return math.NaN()
	}
	n := float64(months)
	if annualRate == 0 {
		return principal / n
	}
	r := annualRate / 100 / MonthsPerYear
	return principal * (r / (1 - math.Pow(1+r, -n)))
}

// loanPrincipal is the inverse of MonthlyPayment: the principal a payment
// can carry over months at annualRate percent.
func loanPrincipal(payment, annualRate float64, months int) float64 {
	n := float64(months)
	if annualRate == 0 {
		return payment * n
	}
	r := annualRate / 100 / MonthsPerYear
	return payment * (1 - math.Pow(1+r, -n)) / r
}

func requireTermYears(field string, years int) error {
	if years <= 0 {
		return invalid(field, "must be at least one year, got %d", years)
	}
	if years*MonthsPerYear > MaxTermMonths {
		return invalid(field, "exceeds the maximum of %d years", MaxTermMonths/MonthsPerYear)
	}
	return nil
}

func validateLoanInput(input domain.LoanInput) error {
	if err := requirePositive("amount", input.Amount); err != nil {
		return err
	}
	if input.Amount > MaxLoanAmount {
		return invalid("amount", "exceeds the maximum of $%.2f", MaxLoanAmount)
	}
	if err := requireRate("interestRate", input.InterestRate); err != nil {
		return err
	}
	if input.TermMonths < MinTermMonths {
		return invalid("termMonths", "must be at least %d", MinTermMonths)
	}
	if input.TermMonths > MaxTermMonths {
		return invalid("termMonths", "exceeds the maximum of %d months", MaxTermMonths)
	}
	return nil
}

// CalculateLoan calculates the payment, total paid and total interest of a
// fixed-rate loan.
func CalculateLoan(input domain.LoanInput) (domain.LoanResult, error) {
	if err := validateLoanInput(input); err != nil {
		return domain.LoanResult{}, err
	}

	payment := MonthlyPayment(input.Amount, input.InterestRate, input.TermMonths)
	total := payment * float64(input.TermMonths)
	interest := total - input.Amount

	if err := checkFinite(payment, total); err != nil {
		return domain.LoanResult{}, err
	}

	return domain.LoanResult{
		MonthlyPayment: roundTo2Decimals(payment),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(interest),
	}, nil
}

// amortize builds the month-by-month schedule of a fixed payment. The last
// payment is trimmed to the remaining balance.
func amortize(principal, annualRate float64, months int, payment float64) []domain.AmortizationRow {
	r := annualRate / 100 / MonthsPerYear
	balance := principal
	rows := make([]domain.AmortizationRow, 0, months)

	for month := 1; month <= months && balance > 0; month++ {
		interest := balance * r
		principalPaid := payment - interest
		paid := payment
		if principalPaid > balance || month == months {
			principalPaid = balance
			paid = balance + interest
		}
		balance -= principalPaid

		rows = append(rows, domain.AmortizationRow{
			Month:     month,
			Payment:   roundTo2Decimals(paid),
			Principal: roundTo2Decimals(principalPaid),
			Interest:  roundTo2Decimals(interest),
			Balance:   roundTo2Decimals(math.Max(balance, 0)),
		})
	}
	return rows
}

// CalculateMortgage prices a fixed-rate mortgage on LoanAmount less the down
// payment. An all-cash purchase yields a zero payment and an empty schedule.
func CalculateMortgage(input domain.MortgageInput) (domain.MortgageResult, error) {
	err := firstErr(
		requirePositive("loanAmount", input.LoanAmount),
		requireNonNegative("downPayment", input.DownPayment),
		requireRate("interestRate", input.InterestRate),
		requireTermYears("loanTerm", input.LoanTerm),
	)
	if err != nil {
		return domain.MortgageResult{}, err
	}
	if input.DownPayment > input.LoanAmount {
		return domain.MortgageResult{}, invalid("downPayment", "must not exceed the loan amount")
	}

	principal := input.LoanAmount - input.DownPayment
	n := input.LoanTerm * MonthsPerYear
	payment := MonthlyPayment(principal, input.InterestRate, n)
	total := payment * float64(n)

	if err := checkFinite(payment, total); err != nil {
		return domain.MortgageResult{}, err
	}

	return domain.MortgageResult{
		MonthlyPayment:  roundTo2Decimals(payment),
		TotalPayment:    roundTo2Decimals(total),
		TotalInterest:   roundTo2Decimals(total - principal),
		PrincipalAmount: roundTo2Decimals(principal),
		Schedule:        amortize(principal, input.InterestRate, n, payment),
	}, nil
}

// CalculateMortgagePayment adds monthly property tax and insurance to the
// principal and interest payment.
func CalculateMortgagePayment(input domain.MortgagePaymentInput) (domain.MortgagePaymentResult, error) {
	err := firstErr(
		requirePositive("loanAmount", input.LoanAmount),
		requireRate("interestRate", input.InterestRate),
		requireTermYears("loanTerm", input.LoanTerm),
		requireNonNegative("propertyTax", input.PropertyTax),
		requireNonNegative("insurance", input.Insurance),
	)
	if err != nil {
		return domain.MortgagePaymentResult{}, err
	}

	n := input.LoanTerm * MonthsPerYear
	pi := MonthlyPayment(input.LoanAmount, input.InterestRate, n)
	taxes := input.PropertyTax / MonthsPerYear
	insurance := input.Insurance / MonthsPerYear
	monthly := pi + taxes + insurance
	total := monthly * float64(n)

	if err := checkFinite(monthly, total); err != nil {
		return domain.MortgagePaymentResult{}, err
	}

	return domain.MortgagePaymentResult{
		MonthlyPayment:           roundWhole(monthly),
		MonthlyPrincipalInterest: roundWhole(pi),
		MonthlyTaxes:             roundWhole(taxes),
		MonthlyInsurance:         roundWhole(insurance),
		TotalPayment:             roundWhole(total),
		TotalInterest:            roundWhole(total - input.LoanAmount),
	}, nil
}

// CalculateRefinance compares the current loan with a new loan that rolls
// the closing costs into its principal.
func CalculateRefinance(input domain.RefinanceInput) (domain.RefinanceResult, error) {
	err := firstErr(
		requirePositive("currentLoanBalance", input.CurrentLoanBalance),
		requireRate("currentInterestRate", input.CurrentInterestRate),
		requireTermYears("currentLoanTerm", input.CurrentLoanTerm),
		requireRate("newInterestRate", input.NewInterestRate),
		requireTermYears("newLoanTerm", input.NewLoanTerm),
		requireNonNegative("closingCosts", input.ClosingCosts),
	)
	if err != nil {
		return domain.RefinanceResult{}, err
	}

	oldPayment := MonthlyPayment(input.CurrentLoanBalance, input.CurrentInterestRate, input.CurrentLoanTerm*MonthsPerYear)
	newPayment := MonthlyPayment(input.CurrentLoanBalance+input.ClosingCosts, input.NewInterestRate, input.NewLoanTerm*MonthsPerYear)
	savings := oldPayment - newPayment
	lifetime := savings*float64(input.NewLoanTerm*MonthsPerYear) - input.ClosingCosts

	result := domain.RefinanceResult{
		NewMonthlyPayment: roundWhole(newPayment),
		OldMonthlyPayment: roundWhole(oldPayment),
		MonthlySavings:    roundWhole(savings),
		LifetimeSavings:   roundWhole(lifetime),
	}
	// No monthly savings means the closing costs are never recovered.
	if savings > 0 {
		result.BreakEvenMonths = int(math.Ceil(input.ClosingCosts / savings))
		result.BreakEvenReached = true
	}

	return result, checkFinite(oldPayment, newPayment, lifetime)
}

// CalculateInterestOnly compares the interest-only period with the
// amortizing payment that follows it.
func CalculateInterestOnly(input domain.InterestOnlyInput) (domain.InterestOnlyResult, error) {
	err := firstErr(
		requirePositive("loanAmount", input.LoanAmount),
		requireRate("interestRate", input.InterestRate),
		requireTermYears("loanTerm", input.LoanTerm),
		requireNonNegative("propertyValue", input.PropertyValue),
		requireFinite("propertyAppreciation", input.PropertyAppreciation),
	)
	if err != nil {
		return domain.InterestOnlyResult{}, err
	}
	if input.InterestOnlyPeriod < 0 || input.InterestOnlyPeriod >= input.LoanTerm {
		return domain.InterestOnlyResult{}, invalid("interestOnlyPeriod",
			"must be between 0 and %d years", input.LoanTerm-1)
	}

	r := input.InterestRate / 100 / MonthsPerYear
	ioPayment := input.LoanAmount * r

	remainingPayments := (input.LoanTerm - input.InterestOnlyPeriod) * MonthsPerYear
	piPayment := MonthlyPayment(input.LoanAmount, input.InterestRate, remainingPayments)

	ioInterest := ioPayment * float64(input.InterestOnlyPeriod*MonthsPerYear)
	amortInterest := piPayment*float64(remainingPayments) - input.LoanAmount
	equity := input.PropertyValue*math.Pow(1+input.PropertyAppreciation/100, float64(input.InterestOnlyPeriod)) - input.PropertyValue

	if err := checkFinite(piPayment, amortInterest, equity); err != nil {
		return domain.InterestOnlyResult{}, err
	}

	return domain.InterestOnlyResult{
		InterestOnlyPayment:         roundWhole(ioPayment),
		PrincipalAndInterestPayment: roundWhole(piPayment),
		TotalInterest:               roundWhole(ioInterest + amortInterest),
		PaymentIncrease:             roundWhole(piPayment - ioPayment),
		EquityAfterIO:               roundWhole(equity),
	}, nil
}

// CalculateARMvsFixed projects an adjustable-rate loan whose rate rises by
// the expected increase at every adjustment, bounded by the per-adjustment
// cap, the lifetime cap and ARMRateCeiling.
func CalculateARMvsFixed(input domain.ARMvsFixedInput) (domain.ARMvsFixedResult, error) {
	err := firstErr(
		requirePositive("loanAmount", input.LoanAmount),
		requireRate("fixedRate", input.FixedRate),
		requireRate("initialARMRate", input.InitialARMRate),
		requireNonNegative("rateAdjustmentCap", input.RateAdjustmentCap),
		requireNonNegative("lifetimeCap", input.LifetimeCap),
		requireTermYears("loanTerm", input.LoanTerm),
		requireFinite("expectedRateIncrease", input.ExpectedRateIncrease),
	)
	if err != nil {
		return domain.ARMvsFixedResult{}, err
	}
	if input.AdjustmentPeriod <= 0 {
		return domain.ARMvsFixedResult{}, invalid("adjustmentPeriod", "must be at least one year")
	}

	months := input.LoanTerm * MonthsPerYear
	fixedPayment := MonthlyPayment(input.LoanAmount, input.FixedRate, months)
	fixedTotal := fixedPayment * float64(months)
	initialARM := MonthlyPayment(input.LoanAmount, input.InitialARMRate, months)

	lifetimeRate := input.InitialARMRate + input.LifetimeCap
	maxARMPayment := MonthlyPayment(input.LoanAmount, math.Min(lifetimeRate, ARMRateCeiling), months)

	rate := input.InitialARMRate
	armTotal := 0.0
	breakEven := 0
	years := make([]domain.ARMvsFixedYear, 0, input.LoanTerm)

	for year := 1; year <= input.LoanTerm; year++ {
		if year > input.AdjustmentPeriod && (year-input.AdjustmentPeriod)%input.AdjustmentPeriod == 0 {
			step := math.Min(input.RateAdjustmentCap, input.ExpectedRateIncrease)
			rate = math.Min(rate+step, lifetimeRate)
		}

		armPayment := MonthlyPayment(input.LoanAmount, rate, (input.LoanTerm-year+1)*MonthsPerYear)
		yearARMCost := armPayment * MonthsPerYear
		yearFixedCost := fixedPayment * MonthsPerYear
		armTotal += yearARMCost

		if breakEven == 0 && armTotal > float64(year)*yearFixedCost {
			breakEven = year
		}

		years = append(years, domain.ARMvsFixedYear{
			Year:           year,
			ARMRate:        roundTo2Decimals(rate),
			ARMPayment:     roundWhole(armPayment),
			FixedPayment:   roundWhole(fixedPayment),
			FixedRemaining: roundWhole(fixedTotal - yearFixedCost*float64(year)),
			ARMRemaining:   roundWhole(input.LoanAmount - (armTotal - yearARMCost)),
		})
	}
	if breakEven == 0 {
		breakEven = input.LoanTerm
	}

	if err := checkFinite(fixedPayment, initialARM, maxARMPayment, armTotal); err != nil {
		return domain.ARMvsFixedResult{}, err
	}

	return domain.ARMvsFixedResult{
		FixedMonthlyPayment: roundWhole(fixedPayment),
		InitialARMPayment:   roundWhole(initialARM),
		MaxARMPayment:       roundWhole(maxARMPayment),
		FixedTotalCost:      roundWhole(fixedTotal),
		ARMTotalCost:        roundWhole(armTotal),
		BreakEvenYear:       breakEven,
		YearByYear:          years,
	}, nil
}

// CalculateHomeAffordability applies the 28% front-end and 36% back-end
// ratios and inverts a 30-year annuity to find the largest loan.
func CalculateHomeAffordability(input domain.HomeAffordabilityInput) (domain.HomeAffordabilityResult, error) {
	err := firstErr(
		requirePositive("annualIncome", input.AnnualIncome),
		requireNonNegative("monthlyDebts", input.MonthlyDebts),
		requireNonNegative("downPayment", input.DownPayment),
		requireRate("interestRate", input.InterestRate),
		requireNonNegative("propertyTax", input.PropertyTax),
		requireNonNegative("insurance", input.Insurance),
		requireNonNegative("monthlyHOA", input.MonthlyHOA),
	)
	if err != nil {
		return domain.HomeAffordabilityResult{}, err
	}

	monthlyIncome := input.AnnualIncome / MonthsPerYear
	frontEnd := monthlyIncome * FrontEndRatio
	backEnd := monthlyIncome*BackEndRatio - input.MonthlyDebts
	allowed := math.Max(math.Min(frontEnd, backEnd), 0)

	carrying := (input.PropertyTax+input.Insurance)/MonthsPerYear + input.MonthlyHOA
	// Carrying costs above the allowed payment leave nothing for the loan.
	maxPI := math.Max(allowed-carrying, 0)
	maxLoan := loanPrincipal(maxPI, input.InterestRate, AffordabilityTermYears*MonthsPerYear)
	dti := (allowed + input.MonthlyDebts) / monthlyIncome * 100

	if err := checkFinite(maxLoan, dti); err != nil {
		return domain.HomeAffordabilityResult{}, err
	}

	return domain.HomeAffordabilityResult{
		MaxPurchasePrice:  roundWhole(maxLoan + input.DownPayment),
		MaxLoanAmount:     roundWhole(maxLoan),
		MonthlyPayment:    roundWhole(allowed),
		RequiredIncome:    roundWhole(input.AnnualIncome),
		DebtToIncomeRatio: roundTo1Decimal(dti),
	}, nil
}

// CalculateClosingCosts estimates closing costs from flat rates on the
// purchase price and the financed amount.
func CalculateClosingCosts(input domain.ClosingCostInput) (domain.ClosingCostResult, error) {
	err := firstErr(
		requirePositive("purchasePrice", input.PurchasePrice),
		requireNonNegative("downPayment", input.DownPayment),
	)
	if err != nil {
		return domain.ClosingCostResult{}, err
	}
	if input.DownPayment > input.PurchasePrice {
		return domain.ClosingCostResult{}, invalid("downPayment", "must not exceed the purchase price")
	}
	switch input.LoanType {
	case "", domain.LoanConventional, domain.LoanFHA, domain.LoanVA:
	default:
		return domain.ClosingCostResult{}, invalid("loanType", "unsupported loan type %q", input.LoanType)
	}

	loan := input.PurchasePrice - input.DownPayment
	lender := math.Min(loan*0.01, 3000)
	thirdParty := 2500.0
	government := input.PurchasePrice * 0.002
	prepaid := input.PurchasePrice * 0.015

	items := []domain.CostItem{
		{Name: "Loan Origination Fee", Amount: loan * 0.01},
		{Name: "Appraisal", Amount: 500},
		{Name: "Credit Report", Amount: 50},
		{Name: "Title Insurance", Amount: loan * 0.004},
		{Name: "Recording Fees", Amount: 125},
		{Name: "Survey", Amount: 400},
		{Name: "Inspection", Amount: 400},
	}
	for i := range items {
		items[i].Amount = roundWhole(items[i].Amount)
	}

	return domain.ClosingCostResult{
		TotalClosingCosts: roundWhole(lender + thirdParty + government + prepaid),
		LenderFees:        roundWhole(lender),
		ThirdPartyFees:    roundWhole(thirdParty),
		GovernmentFees:    roundWhole(government),
		PrepaidItems:      roundWhole(prepaid),
		ItemizedCosts:     items,
	}, nil
}

func describeTerm(months int) string {
	if months%MonthsPerYear == 0 {
		return fmt.Sprintf("%d years", months/MonthsPerYear)
	}
	return fmt.Sprintf("%d months", months)
}
