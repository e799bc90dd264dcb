package service

import (
	"math"
	"sort"
	"strings"

	"github.com/joeyg6393/fincalcs/domain"
)

// remainingBalance is the balance of a fixed-payment loan after paid
// months.
func remainingBalance(principal, annualRate float64, months, paid int) float64 {
	if paid >= months {
		return 0
	}
	payment := MonthlyPayment(principal, annualRate, months)
	if annualRate == 0 {
		return principal - payment*float64(paid)
	}
	r := annualRate / 100 / MonthsPerYear
	growth := math.Pow(1+r, float64(paid))
	return principal*growth - payment*(growth-1)/r
}

// CalculateRentVsBuy compares the cumulative cost of owning with a 30-year
// mortgage against renting with yearly rent increases. Equity is the
// appreciated home value less the remaining loan balance.
func CalculateRentVsBuy(input domain.RentVsBuyInput) (domain.RentVsBuyResult, error) {
	err := firstErr(
		requirePositive("homePrice", input.HomePrice),
		requireNonNegative("downPayment", input.DownPayment),
		requireRate("interestRate", input.InterestRate),
		requireNonNegative("propertyTax", input.PropertyTax),
		requireNonNegative("insurance", input.Insurance),
		requireNonNegative("maintenance", input.Maintenance),
		requireNonNegative("monthlyRent", input.MonthlyRent),
		requireFinite("rentIncrease", input.RentIncrease),
		requireFinite("homeAppreciation", input.HomeAppreciation),
		requireWholeYears("timeframe", input.Timeframe),
	)
	if err != nil {
		return domain.RentVsBuyResult{}, err
	}
	if input.DownPayment > input.HomePrice {
		return domain.RentVsBuyResult{}, invalid("downPayment", "must not exceed the home price")
	}
	if input.RentIncrease <= -100 || input.HomeAppreciation <= -100 {
		return domain.RentVsBuyResult{}, invalid("homeAppreciation", "yearly changes must be above -100%%")
	}

	loan := input.HomePrice - input.DownPayment
	months := AffordabilityTermYears * MonthsPerYear
	payment := 0.0
	if loan > 0 {
		payment = MonthlyPayment(loan, input.InterestRate, months)
	}
	carrying := input.PropertyTax + input.Insurance + input.Maintenance

	buying := input.DownPayment
	renting := 0.0
	rent := input.MonthlyRent
	value := input.HomePrice
	balance := loan
	breakEven := 0
	years := make([]domain.RentVsBuyYear, 0, input.Timeframe)

	for year := 1; year <= input.Timeframe; year++ {
		if year <= AffordabilityTermYears {
			buying += payment * MonthsPerYear
		}
		buying += carrying
		renting += rent * MonthsPerYear
		rent *= 1 + input.RentIncrease/100
		value *= 1 + input.HomeAppreciation/100
		if loan > 0 {
			balance = remainingBalance(loan, input.InterestRate, months, year*MonthsPerYear)
		}

		if breakEven == 0 && renting > buying {
			breakEven = year
		}
		years = append(years, domain.RentVsBuyYear{
			Year:         year,
			BuyingCosts:  roundWhole(buying),
			RentingCosts: roundWhole(renting),
			HomeValue:    roundWhole(value),
			LoanBalance:  roundWhole(math.Max(0, balance)),
		})
	}

	if err := checkFinite(buying, renting, value); err != nil {
		return domain.RentVsBuyResult{}, err
	}

	result := domain.RentVsBuyResult{
		BuyingCosts:      roundWhole(buying),
		RentingCosts:     roundWhole(renting),
		NetDifference:    roundWhole(renting - buying),
		BreakEvenYear:    breakEven,
		BreakEvenReached: breakEven > 0,
		BuyingEquity:     roundWhole(value - math.Max(0, balance)),
		YearByYear:       years,
	}
	if !result.BreakEvenReached {
		result.BreakEvenYear = input.Timeframe
	}
	return result, nil
}

// CalculateRentalROI measures a rental on the cash invested. The mortgage
// is a financing cost: it reduces cash flow but not net operating income.
// Total ROI adds RentalAppreciation of the purchase price.
func CalculateRentalROI(input domain.RentalROIInput) (domain.RentalROIResult, error) {
	e := input.MonthlyExpenses
	err := firstErr(
		requirePositive("purchasePrice", input.PurchasePrice),
		requireNonNegative("downPayment", input.DownPayment),
		requireNonNegative("closingCosts", input.ClosingCosts),
		requireNonNegative("repairCosts", input.RepairCosts),
		requireNonNegative("monthlyRent", input.MonthlyRent),
		requireVacancy(input.Vacancy),
		requireAmounts([]namedAmount{
			{"mortgage", e.Mortgage},
			{"tax", e.Tax},
			{"insurance", e.Insurance},
			{"utilities", e.Utilities},
			{"maintenance", e.Maintenance},
			{"management", e.Management},
			{"other", e.Other},
		}),
	)
	if err != nil {
		return domain.RentalROIResult{}, err
	}

	invested := input.DownPayment + input.ClosingCosts + input.RepairCosts
	if invested == 0 {
		return domain.RentalROIResult{}, invalid("downPayment", "cash invested must be greater than zero")
	}

	gross := input.MonthlyRent * MonthsPerYear * (1 - input.Vacancy/100)
	operating := (e.Tax + e.Insurance + e.Utilities + e.Maintenance + e.Management + e.Other) * MonthsPerYear
	noi := gross - operating
	cashFlow := noi - e.Mortgage*MonthsPerYear

	return domain.RentalROIResult{
		CashFlow:           roundWhole(cashFlow),
		NetOperatingIncome: roundWhole(noi),
		CapRate:            roundTo1Decimal(noi / input.PurchasePrice * 100),
		CashOnCashReturn:   roundTo1Decimal(cashFlow / invested * 100),
		TotalROI:           roundTo1Decimal((cashFlow + input.PurchasePrice*RentalAppreciation) / invested * 100),
	}, nil
}

func requireVacancy(v float64) error {
	if err := requireNonNegative("vacancy", v); err != nil {
		return err
	}
	if v > 100 {
		return invalid("vacancy", "must not exceed 100%%")
	}
	return nil
}

// expenseLines sums annual expenses keyed by category and breaks them down
// in category order.
func expenseLines(field string, expenses map[string]float64) ([]domain.ExpenseLine, float64, error) {
	categories := make([]string, 0, len(expenses))
	total := 0.0
	for category, annual := range expenses {
		if err := requireNonNegative(field+"."+category, annual); err != nil {
			return nil, 0, err
		}
		categories = append(categories, category)
		total += annual
	}
	sort.Strings(categories)

	lines := make([]domain.ExpenseLine, 0, len(categories))
	for _, category := range categories {
		annual := expenses[category]
		lines = append(lines, domain.ExpenseLine{
			Category:   titleCase(category),
			Monthly:    roundWhole(annual / MonthsPerYear),
			Annual:     roundWhole(annual),
			Percentage: roundWhole(share(annual, total)),
		})
	}
	return lines, total, nil
}

// titleCase upper-cases the first letter of a camelCase key.
func titleCase(key string) string {
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

// CalculateCapRate also reports the cash-on-cash return of buying the
// property with CapRateDownPayment down and a 30-year loan at
// CapRateFinancingRate.
func CalculateCapRate(input domain.CapRateInput) (domain.CapRateResult, error) {
	err := firstErr(
		requirePositive("propertyValue", input.PropertyValue),
		requireNonNegative("monthlyRent", input.MonthlyRent),
		requireVacancy(input.Vacancy),
	)
	if err != nil {
		return domain.CapRateResult{}, err
	}
	lines, expenses, err := expenseLines("operatingExpenses", input.OperatingExpenses)
	if err != nil {
		return domain.CapRateResult{}, err
	}

	gross := input.MonthlyRent * MonthsPerYear * (1 - input.Vacancy/100)
	noi := gross - expenses

	down := input.PropertyValue * CapRateDownPayment
	debtService := MonthlyPayment(input.PropertyValue-down, CapRateFinancingRate,
		AffordabilityTermYears*MonthsPerYear) * MonthsPerYear

	return domain.CapRateResult{
		CapRate:               roundTo1Decimal(noi / input.PropertyValue * 100),
		NOI:                   roundWhole(noi),
		EffectiveGrossIncome:  roundWhole(gross),
		OperatingExpenseRatio: roundTo1Decimal(share(expenses, gross)),
		CashOnCashReturn:      roundTo1Decimal((noi - debtService) / down * 100),
		ExpenseBreakdown:      lines,
	}, nil
}

// CalculateLandlordExpenses totals annual operating expenses, with the
// mortgage counted in the expense ratio and cash flow when enabled.
func CalculateLandlordExpenses(input domain.LandlordExpenseInput) (domain.LandlordExpenseResult, error) {
	err := firstErr(
		requireNonNegative("monthlyRent", input.MonthlyRent),
		requireNonNegative("propertyValue", input.PropertyValue),
		requireNonNegative("mortgage.payment", input.Mortgage.Payment),
		requireVacancy(input.Vacancy),
	)
	if err != nil {
		return domain.LandlordExpenseResult{}, err
	}
	lines, operating, err := expenseLines("expenses", input.Expenses)
	if err != nil {
		return domain.LandlordExpenseResult{}, err
	}

	gross := input.MonthlyRent * MonthsPerYear * (1 - input.Vacancy/100)
	debtService := 0.0
	if input.Mortgage.Enabled {
		debtService = input.Mortgage.Payment * MonthsPerYear
	}
	total := operating + debtService
	noi := gross - operating

	return domain.LandlordExpenseResult{
		MonthlyExpenses:    roundWhole(total / MonthsPerYear),
		AnnualExpenses:     roundWhole(operating),
		NetOperatingIncome: roundWhole(noi),
		CashFlow:           roundWhole(noi - debtService),
		ExpenseRatio:       roundTo1Decimal(share(total, gross)),
		ExpenseBreakdown:   lines,
	}, nil
}

// CalculatePropertyAppreciation compounds the value yearly and adds the
// value of improvements made that year after appreciation.
func CalculatePropertyAppreciation(input domain.PropertyAppreciationInput) (domain.PropertyAppreciationResult, error) {
	err := firstErr(
		requirePositive("purchasePrice", input.PurchasePrice),
		requireFinite("annualAppreciation", input.AnnualAppreciation),
		requireWholeYears("yearsToHold", input.YearsToHold),
	)
	if err != nil {
		return domain.PropertyAppreciationResult{}, err
	}
	if input.AnnualAppreciation <= -100 {
		return domain.PropertyAppreciationResult{}, invalid("annualAppreciation", "must be above -100%%")
	}

	costs := make(map[int]float64)
	adds := make(map[int]float64)
	for _, imp := range input.Improvements {
		err := firstErr(
			requireNonNegative("improvements.cost", imp.Cost),
			requireFinite("improvements.valueAdd", imp.ValueAdd),
		)
		if err != nil {
			return domain.PropertyAppreciationResult{}, err
		}
		if imp.Year < 1 || imp.Year > input.YearsToHold {
			return domain.PropertyAppreciationResult{}, invalid("improvements.year",
				"year %d is outside the holding period", imp.Year)
		}
		costs[imp.Year] += imp.Cost
		adds[imp.Year] += imp.ValueAdd
	}

	value := input.PurchasePrice
	improvements := 0.0
	years := make([]domain.PropertyAppreciationYear, 0, input.YearsToHold)
	for year := 1; year <= input.YearsToHold; year++ {
		value = value*(1+input.AnnualAppreciation/100) + adds[year]
		improvements += costs[year]
		years = append(years, domain.PropertyAppreciationYear{
			Year:         year,
			Value:        roundWhole(value),
			Appreciation: roundWhole(value - input.PurchasePrice),
			Improvements: roundWhole(costs[year]),
		})
	}
	if value <= 0 {
		return domain.PropertyAppreciationResult{}, degenerate("property value fell to %.2f", value)
	}

	annualized := (math.Pow(value/input.PurchasePrice, 1/float64(input.YearsToHold)) - 1) * 100
	if err := checkFinite(value, annualized); err != nil {
		return domain.PropertyAppreciationResult{}, err
	}

	return domain.PropertyAppreciationResult{
		FutureValue:       roundWhole(value),
		TotalAppreciation: roundWhole(value - input.PurchasePrice),
		TotalImprovements: roundWhole(improvements),
		AnnualizedReturn:  roundTo1Decimal(annualized),
		YearByYear:        years,
	}, nil
}
