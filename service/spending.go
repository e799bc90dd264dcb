package service

import (
	"math"
	"sort"
	"time"

	"github.com/joeyg6393/fincalcs/domain"
)

// share returns part as a percentage of whole, or zero when whole is zero.
func share(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

type namedAmount struct {
	name   string
	amount float64
}

func requireAmounts(amounts []namedAmount) error {
	for _, a := range amounts {
		if err := requireNonNegative(a.name, a.amount); err != nil {
			return err
		}
	}
	return nil
}

// CalculateBudgetPlanner breaks monthly expenses down as a share of income.
func CalculateBudgetPlanner(input domain.BudgetPlannerInput) (domain.BudgetPlannerResult, error) {
	e := input.Expenses
	categories := []namedAmount{
		{"housing", e.Housing},
		{"utilities", e.Utilities},
		{"food", e.Food},
		{"transportation", e.Transportation},
		{"healthcare", e.Healthcare},
		{"entertainment", e.Entertainment},
		{"other", e.Other},
	}
	err := firstErr(
		requirePositive("monthlyIncome", input.MonthlyIncome),
		requireAmounts(categories),
	)
	if err != nil {
		return domain.BudgetPlannerResult{}, err
	}

	total := 0.0
	breakdown := make([]domain.CategoryShare, 0, len(categories))
	for _, c := range categories {
		total += c.amount
		breakdown = append(breakdown, domain.CategoryShare{
			Category:   c.name,
			Amount:     roundTo2Decimals(c.amount),
			Percentage: roundTo2Decimals(share(c.amount, input.MonthlyIncome)),
		})
	}

	return domain.BudgetPlannerResult{
		TotalExpenses:    roundTo2Decimals(total),
		RemainingIncome:  roundTo2Decimals(input.MonthlyIncome - total),
		ExpenseBreakdown: breakdown,
	}, nil
}

// cityMultipliers index living costs relative to Houston. Other cities
// count as 1.
var cityMultipliers = map[string]float64{
	"New York":      1.8,
	"San Francisco": 1.9,
	"Los Angeles":   1.5,
	"Chicago":       1.2,
	"Houston":       1.0,
	"Phoenix":       1.1,
	"Philadelphia":  1.3,
	"Dallas":        1.1,
	"Austin":        1.2,
	"Denver":        1.3,
}

func cityMultiplier(city string) float64 {
	if m, ok := cityMultipliers[city]; ok {
		return m
	}
	return 1
}

// Cities lists the cities with a known cost-of-living multiplier.
func Cities() []string {
	cities := make([]string, 0, len(cityMultipliers))
	for city := range cityMultipliers {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

// CalculateCostOfLiving scales income and the main expenses by the ratio
// of the two city multipliers.
func CalculateCostOfLiving(input domain.CostOfLivingInput) (domain.CostOfLivingResult, error) {
	err := firstErr(
		requireNonNegative("currentIncome", input.CurrentIncome),
		requireAmounts([]namedAmount{
			{"currentRent", input.CurrentRent},
			{"currentUtilities", input.CurrentUtilities},
			{"currentGroceries", input.CurrentGroceries},
			{"currentTransportation", input.CurrentTransportation},
		}),
	)
	if err != nil {
		return domain.CostOfLivingResult{}, err
	}

	ratio := cityMultiplier(input.NewCity) / cityMultiplier(input.CurrentCity)
	change := ratio - 1
	rent := input.CurrentRent * change
	utilities := input.CurrentUtilities * change
	groceries := input.CurrentGroceries * change
	transportation := input.CurrentTransportation * change

	return domain.CostOfLivingResult{
		RequiredIncome:           roundWhole(input.CurrentIncome * ratio),
		RentDifference:           roundWhole(rent),
		UtilitiesDifference:      roundWhole(utilities),
		GroceriesDifference:      roundWhole(groceries),
		TransportationDifference: roundWhole(transportation),
		TotalDifference:          roundWhole(rent + utilities + groceries + transportation),
		PercentageDifference:     roundWhole(change * 100),
	}, nil
}

// CalculateSubscriptions totals subscriptions per category, in the order
// categories first appear.
func CalculateSubscriptions(input domain.SubscriptionInput) (domain.SubscriptionResult, error) {
	type totals struct{ monthly, yearly float64 }
	byCategory := make(map[string]*totals)
	var order []string

	var monthlyTotal, yearlyTotal float64
	for _, sub := range input.Subscriptions {
		if err := requireNonNegative("cost", sub.Cost); err != nil {
			return domain.SubscriptionResult{}, err
		}
		var monthly, yearly float64
		switch sub.BillingCycle {
		case domain.BilledMonthly:
			monthly, yearly = sub.Cost, sub.Cost*MonthsPerYear
		case domain.BilledYearly:
			monthly, yearly = sub.Cost/MonthsPerYear, sub.Cost
		default:
			return domain.SubscriptionResult{}, invalid("billingCycle", "unsupported billing cycle %q for %q", sub.BillingCycle, sub.Name)
		}

		t, ok := byCategory[sub.Category]
		if !ok {
			t = &totals{}
			byCategory[sub.Category] = t
			order = append(order, sub.Category)
		}
		t.monthly += monthly
		t.yearly += yearly
		monthlyTotal += monthly
		yearlyTotal += yearly
	}

	breakdown := make([]domain.SubscriptionCategory, 0, len(order))
	for _, category := range order {
		t := byCategory[category]
		breakdown = append(breakdown, domain.SubscriptionCategory{
			Category:      category,
			MonthlyAmount: roundWhole(t.monthly),
			YearlyAmount:  roundWhole(t.yearly),
			Percentage:    roundWhole(share(t.yearly, yearlyTotal)),
		})
	}

	return domain.SubscriptionResult{
		MonthlyTotal:      roundWhole(monthlyTotal),
		YearlyTotal:       roundWhole(yearlyTotal),
		CategoryBreakdown: breakdown,
	}, nil
}

const week = 7 * 24 * time.Hour

// CalculateVacationSavings spreads the unsaved trip cost over the weeks
// left before StartDate, counted from AsOf.
func CalculateVacationSavings(input domain.VacationSavingsInput) (domain.VacationSavingsResult, error) {
	err := firstErr(
		requireAmounts([]namedAmount{
			{"travelCost", input.TravelCost},
			{"accommodationCost", input.AccommodationCost},
			{"activities", input.Activities},
			{"food", input.Food},
			{"miscExpenses", input.MiscExpenses},
		}),
		requireNonNegative("currentSavings", input.CurrentSavings),
	)
	if err != nil {
		return domain.VacationSavingsResult{}, err
	}
	if input.AsOf.IsZero() {
		return domain.VacationSavingsResult{}, invalid("asOf", "current date is required")
	}
	if input.StartDate.IsZero() {
		return domain.VacationSavingsResult{}, invalid("startDate", "trip start date is required")
	}
	if !input.StartDate.After(input.AsOf.Time) {
		return domain.VacationSavingsResult{}, invalid("startDate", "must be after %s", input.AsOf)
	}

	total := input.TravelCost + input.AccommodationCost + input.Activities + input.Food + input.MiscExpenses
	if total == 0 {
		return domain.VacationSavingsResult{}, invalid("travelCost", "trip cost must be greater than zero")
	}

	weeks := int(math.Ceil(float64(input.StartDate.Sub(input.AsOf.Time)) / float64(week)))
	remaining := math.Max(0, total-input.CurrentSavings)

	return domain.VacationSavingsResult{
		TotalCost:       roundWhole(total),
		MonthlyRequired: roundWhole(remaining / float64(weeks) * WeeksPerMonth),
		WeeksUntilTrip:  weeks,
		SavingsProgress: roundWhole(math.Min(100, share(input.CurrentSavings, total))),
		Breakdown: domain.VacationBreakdown{
			Travel:        roundWhole(input.TravelCost),
			Accommodation: roundWhole(input.AccommodationCost),
			Activities:    roundWhole(input.Activities),
			Food:          roundWhole(input.Food),
			Misc:          roundWhole(input.MiscExpenses),
		},
	}, nil
}

// CalculateEntertainmentBudget flags spending above 30% of income, and
// streaming or dining that dominates the budget.
func CalculateEntertainmentBudget(input domain.EntertainmentBudgetInput) (domain.EntertainmentBudgetResult, error) {
	c := input.Categories
	categories := []namedAmount{
		{"dining", c.Dining},
		{"movies", c.Movies},
		{"concerts", c.Concerts},
		{"sports", c.Sports},
		{"hobbies", c.Hobbies},
		{"streaming", c.Streaming},
		{"other", c.Other},
	}
	err := firstErr(
		requirePositive("monthlyIncome", input.MonthlyIncome),
		requireAmounts(categories),
	)
	if err != nil {
		return domain.EntertainmentBudgetResult{}, err
	}

	total := 0.0
	for _, cat := range categories {
		total += cat.amount
	}
	breakdown := make([]domain.CategoryShare, 0, len(categories))
	for _, cat := range categories {
		breakdown = append(breakdown, domain.CategoryShare{
			Category:   cat.name,
			Amount:     roundTo2Decimals(cat.amount),
			Percentage: roundWhole(share(cat.amount, total)),
		})
	}

	ofIncome := share(total, input.MonthlyIncome)
	recommendations := []string{}
	if ofIncome > 30 {
		recommendations = append(recommendations, "Consider reducing entertainment spending")
	}
	if c.Streaming > total*0.3 {
		recommendations = append(recommendations, "Review streaming subscriptions for potential savings")
	}
	if c.Dining > total*0.4 {
		recommendations = append(recommendations, "Look for ways to reduce dining out expenses")
	}

	return domain.EntertainmentBudgetResult{
		TotalBudget:        roundWhole(total),
		PercentageOfIncome: roundWhole(ofIncome),
		CategoryBreakdown:  breakdown,
		Recommendations:    recommendations,
	}, nil
}

// CalculateMonthlyExpenses groups expenses by category and lists the bills
// with a due day, earliest first.
func CalculateMonthlyExpenses(input domain.MonthlyExpenseInput) (domain.MonthlyExpenseResult, error) {
	if err := requireNonNegative("income", input.Income); err != nil {
		return domain.MonthlyExpenseResult{}, err
	}

	byCategory := make(map[string]float64)
	var order []string
	total := 0.0
	upcoming := []domain.UpcomingExpense{}

	for _, e := range input.Expenses {
		if err := requireNonNegative("amount", e.Amount); err != nil {
			return domain.MonthlyExpenseResult{}, err
		}
		if _, ok := byCategory[e.Category]; !ok {
			order = append(order, e.Category)
		}
		byCategory[e.Category] += e.Amount
		total += e.Amount

		if e.DueDate == nil {
			continue
		}
		if *e.DueDate < 1 || *e.DueDate > 31 {
			return domain.MonthlyExpenseResult{}, invalid("dueDate", "day %d of %q is not a day of the month", *e.DueDate, e.Name)
		}
		upcoming = append(upcoming, domain.UpcomingExpense{Name: e.Name, Amount: e.Amount, DueDate: *e.DueDate})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate < upcoming[j].DueDate
	})

	categories := make([]domain.CategoryShare, 0, len(order))
	for _, category := range order {
		categories = append(categories, domain.CategoryShare{
			Category:   category,
			Amount:     roundTo2Decimals(byCategory[category]),
			Percentage: roundWhole(share(byCategory[category], total)),
		})
	}

	return domain.MonthlyExpenseResult{
		TotalExpenses:      roundWhole(total),
		RemainingIncome:    roundWhole(input.Income - total),
		ExpensesByCategory: categories,
		UpcomingExpenses:   upcoming,
	}, nil
}
