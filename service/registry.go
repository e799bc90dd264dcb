package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/joeyg6393/fincalcs/domain"
)

// Calculator categories.
const (
	CategorySavings     = "Savings and Budgeting"
	CategoryDebt        = "Debt Management"
	CategoryIncome      = "Income and Taxes"
	CategorySpending    = "Spending and Lifestyle"
	CategoryInvesting   = "Investing and Retirement"
	CategoryStockMarket = "Stock Market"
	CategoryPortfolio   = "Portfolio Management"
	CategoryGrowth      = "Growth Projections"
	CategoryOptions     = "Options and Derivatives"
	CategoryRealEstate  = "Real Estate"
	CategoryLoans       = "Loans"
)

// Calculator is a registered formula that decodes its own JSON input.
type Calculator struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`

	compute func(raw json.RawMessage, today domain.Date) (any, error)
}

// Compute decodes raw into the calculator's input record and runs the
// formula. Dated inputs without an asOf get today. When the formula
// returns ErrNotConverged the partial result is returned with it.
func (c Calculator) Compute(raw json.RawMessage, today domain.Date) (any, error) {
	return c.compute(raw, today)
}

func newCalculator[In, Out any](id, title, category, description string, fn func(In) (Out, error)) Calculator {
	return Calculator{
		ID:          id,
		Title:       title,
		Category:    category,
		Description: description,
		compute: func(raw json.RawMessage, today domain.Date) (any, error) {
			var input In
			if err := DecodeInput(raw, &input); err != nil {
				return nil, err
			}
			if dated, ok := any(&input).(domain.Dated); ok {
				dated.SetDefaultAsOf(today)
			}
			result, err := fn(input)
			if err != nil && !errors.Is(err, ErrNotConverged) {
				return nil, err
			}
			return result, err
		},
	}
}

// DecodeInput strictly decodes a JSON object into input. Unknown fields and
// trailing data are rejected as invalid input.
func DecodeInput(raw json.RawMessage, input any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = json.RawMessage("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(input); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return invalid(typeErr.Field, "%s, got %s", expectedKind(typeErr.Type), typeErr.Value)
		}
		return invalid("input", "%v", err)
	}
	if dec.More() {
		return invalid("input", "unexpected data after the JSON object")
	}
	return nil
}

// expectedKind describes the JSON value a field of type t accepts. Counts of
// years, months and ages are whole numbers.
func expectedKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be a whole number"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.String:
		return "must be a string"
	case reflect.Bool:
		return "must be true or false"
	case reflect.Slice, reflect.Array:
		return "must be a list"
	case reflect.Map, reflect.Struct:
		return "must be an object"
	default:
		return "has the wrong type"
	}
}

// Registry maps calculator ids to calculators.
type Registry struct {
	byID map[string]Calculator
}

// NewRegistry returns a registry holding every calculator in the library.
func NewRegistry() *Registry {
	r := &Registry{byID: make(map[string]Calculator)}
	for _, c := range defaultCalculators() {
		r.Register(c)
	}
	return r
}

// Register adds c, replacing any calculator with the same id.
func (r *Registry) Register(c Calculator) {
	r.byID[c.ID] = c
}

// Get returns the calculator registered under id.
func (r *Registry) Get(id string) (Calculator, error) {
	c, ok := r.byID[id]
	if !ok {
		return Calculator{}, fmt.Errorf("%w: %q", ErrUnknownCalculator, id)
	}
	return c, nil
}

// List returns the calculators sorted by category, then id.
func (r *Registry) List() []Calculator {
	list := make([]Calculator, 0, len(r.byID))
	for _, c := range r.byID {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Category != list[j].Category {
			return list[i].Category < list[j].Category
		}
		return list[i].ID < list[j].ID
	})
	return list
}

func defaultCalculators() []Calculator {
	return []Calculator{
		// Loans
		newCalculator("loan", "Loan Calculator", CategoryLoans, "Calculate the payment of a fixed-rate loan", CalculateLoan),
		newCalculator("term-recommendation", "Loan Term Recommendation", CategoryLoans, "Find the loan term that fits your payment and preference", RecommendTerm),
		newCalculator("debt-exit-plan", "Debt Exit Plan", CategoryLoans, "Plan a payoff with the snowball or avalanche strategy", CalculateDebtExitPlan),

		// Savings and budgeting
		newCalculator("savings-goal", "Savings Goal Calculator", CategorySavings, "Plan and track your savings goals", CalculateSavingsGoal),
		newCalculator("savings", "Savings Calculator", CategorySavings, "Calculate the monthly savings needed to reach a target", CalculateSavingsGoal),
		newCalculator("budget-planner", "Budget Planner", CategorySavings, "Create and manage your monthly budget", CalculateBudgetPlanner),
		newCalculator("emergency-fund", "Emergency Fund Calculator", CategorySavings, "Calculate your emergency fund needs", CalculateEmergencyFund),
		newCalculator("college-savings", "College Savings Calculator", CategorySavings, "Plan for education expenses", CalculateCollegeSavings),
		newCalculator("rainy-day-fund", "Rainy Day Fund Calculator", CategorySavings, "Plan for unexpected expenses", CalculateRainyDay),

		// Debt
		newCalculator("loan-payoff", "Loan Payoff Calculator", CategoryDebt, "Plan your loan repayment strategy", CalculateLoanPayoff),
		newCalculator("credit-card", "Credit Card Payoff", CategoryDebt, "Plan your credit card debt payoff strategy", CalculateCreditCard),
		newCalculator("debt-snowball", "Debt Snowball Calculator", CategoryDebt, "Optimize debt payoff with the snowball method", CalculateDebtSnowball),
		newCalculator("debt-avalanche", "Debt Avalanche Calculator", CategoryDebt, "Optimize debt payoff with the avalanche method", CalculateDebtAvalanche),
		newCalculator("debt-to-income", "Debt-to-Income Calculator", CategoryDebt, "Calculate your debt-to-income ratio", CalculateDebtToIncome),

		// Income
		newCalculator("salary", "Salary Calculator", CategoryIncome, "Calculate your annual, monthly, and hourly pay", CalculateSalary),
		newCalculator("tax-withholding", "Tax Withholding Calculator", CategoryIncome, "Estimate your tax withholdings", CalculateTaxWithholding),
		newCalculator("net-income", "Net Income Calculator", CategoryIncome, "Calculate your take-home pay", CalculateNetIncome),
		newCalculator("self-employment-tax", "Self-Employment Tax Calculator", CategoryIncome, "Calculate self-employment taxes", CalculateSelfEmploymentTax),

		// Spending
		newCalculator("cost-of-living", "Cost of Living Calculator", CategorySpending, "Compare living costs between cities", CalculateCostOfLiving),
		newCalculator("subscription-management", "Subscription Management", CategorySpending, "Track and optimize subscription costs", CalculateSubscriptions),
		newCalculator("vacation-savings", "Vacation Savings Calculator", CategorySpending, "Plan and save for your vacation", CalculateVacationSavings),
		newCalculator("entertainment-budget", "Entertainment Budget", CategorySpending, "Plan your entertainment spending", CalculateEntertainmentBudget),
		newCalculator("monthly-expense", "Monthly Expense Calculator", CategorySpending, "Track and categorize monthly expenses", CalculateMonthlyExpenses),

		// Investing
		newCalculator("investment", "Investment Calculator", CategoryInvesting, "Project investment growth with compound interest", CalculateInvestment),
		newCalculator("retirement", "401(k) Calculator", CategoryInvesting, "Plan your retirement savings and employer matching", CalculateRetirement),
		newCalculator("mortgage", "Mortgage Calculator", CategoryInvesting, "Calculate monthly mortgage payments and more", CalculateMortgage),

		// Stock market
		newCalculator("stock-return", "Stock Return Calculator", CategoryStockMarket, "Calculate total returns including dividends and capital gains", CalculateStockReturn),
		newCalculator("dividend-yield", "Dividend Yield Calculator", CategoryStockMarket, "Calculate dividend yield and income potential", CalculateDividendYield),
		newCalculator("dividend-reinvestment", "Dividend Reinvestment Calculator", CategoryStockMarket, "Project growth with reinvested dividends", CalculateDividendReinvestment),
		newCalculator("dca", "Dollar-Cost Averaging Calculator", CategoryStockMarket, "Calculate the benefits of regular investing", CalculateDCA),
		newCalculator("beta", "Beta Calculator", CategoryStockMarket, "Calculate stock beta and volatility metrics", CalculateBeta),

		// Portfolio
		newCalculator("asset-allocation", "Asset Allocation Calculator", CategoryPortfolio, "Optimize your portfolio allocation", CalculateAssetAllocation),
		newCalculator("portfolio-rebalancing", "Portfolio Rebalancing Calculator", CategoryPortfolio, "Calculate rebalancing adjustments", CalculatePortfolioRebalancing),
		newCalculator("sharpe-ratio", "Sharpe Ratio Calculator", CategoryPortfolio, "Calculate risk-adjusted returns", CalculateSharpeRatio),
		newCalculator("correlation", "Correlation Calculator", CategoryPortfolio, "Calculate correlation between assets", CalculateCorrelation),
		newCalculator("portfolio-risk", "Portfolio Risk Calculator", CategoryPortfolio, "Analyze portfolio risk metrics", CalculatePortfolioRisk),

		// Growth
		newCalculator("compound-interest", "Compound Interest Calculator", CategoryGrowth, "Calculate compound interest growth", CalculateCompoundInterest),
		newCalculator("simple-interest", "Simple Interest Calculator", CategoryGrowth, "Calculate simple interest returns", CalculateSimpleInterest),
		newCalculator("rule-72", "Rule of 72 Calculator", CategoryGrowth, "Calculate investment doubling time", CalculateRule72),
		newCalculator("future-value", "Future Value Calculator", CategoryGrowth, "Project future investment value", CalculateFutureValue),
		newCalculator("investment-growth", "Investment Growth Calculator", CategoryGrowth, "Model investment growth scenarios", CalculateInvestmentGrowth),

		// Options
		newCalculator("black-scholes", "Black-Scholes Calculator", CategoryOptions, "Calculate option prices", CalculateBlackScholes),
		newCalculator("covered-call", "Covered Call Calculator", CategoryOptions, "Analyze covered call strategies", CalculateCoveredCall),
		newCalculator("put-call-parity", "Put-Call Parity Calculator", CategoryOptions, "Verify put-call parity relationships", CalculatePutCallParity),
		newCalculator("implied-volatility", "Implied Volatility Calculator", CategoryOptions, "Calculate implied volatility from option prices", CalculateImpliedVolatility),

		// Real estate
		newCalculator("mortgage-payment", "Mortgage Payment Calculator", CategoryRealEstate, "Calculate your monthly mortgage payments including taxes and insurance", CalculateMortgagePayment),
		newCalculator("refinance", "Refinance Calculator", CategoryRealEstate, "Compare your current mortgage with refinancing options", CalculateRefinance),
		newCalculator("home-affordability", "Home Affordability Calculator", CategoryRealEstate, "Determine how much house you can afford", CalculateHomeAffordability),
		newCalculator("rent-vs-buy", "Rent vs. Buy Calculator", CategoryRealEstate, "Compare the costs of renting versus buying a home", CalculateRentVsBuy),
		newCalculator("rental-roi", "Rental Property ROI", CategoryRealEstate, "Calculate return on investment for rental properties", CalculateRentalROI),
		newCalculator("closing-costs", "Closing Cost Calculator", CategoryRealEstate, "Estimate closing costs for buying a home", CalculateClosingCosts),
		newCalculator("property-appreciation", "Property Appreciation Calculator", CategoryRealEstate, "Project future property value with improvements", CalculatePropertyAppreciation),
		newCalculator("arm-vs-fixed", "ARM vs Fixed Rate Calculator", CategoryRealEstate, "Compare adjustable and fixed-rate mortgages", CalculateARMvsFixed),
		newCalculator("cap-rate", "Cap Rate Calculator", CategoryRealEstate, "Calculate the capitalization rate of an income property", CalculateCapRate),
		newCalculator("interest-only", "Interest-Only Mortgage Calculator", CategoryRealEstate, "Compare interest-only and amortizing payments", CalculateInterestOnly),
		newCalculator("landlord-expenses", "Landlord Expense Calculator", CategoryRealEstate, "Track rental property expenses and cash flow", CalculateLandlordExpenses),
	}
}
