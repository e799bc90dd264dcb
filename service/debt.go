package service

import (
	"math"
	"sort"

	"github.com/joeyg6393/fincalcs/domain"
)

type debtState struct {
	name     string
	balance  float64
	rate     float64 // monthly, fraction
	minimum  float64
	interest float64
	paidOff  int
}

type debtSimulation struct {
	months   int
	interest float64
	reached  bool
	plan     []domain.MonthlyPlan
	debts    []*debtState
}

// orderDebts sorts by the strategy's target: smallest balance first for
// snowball, highest rate first for avalanche. Ties keep input order.
func orderDebts(debts []*debtState, strategy domain.DebtStrategy) {
	if strategy == domain.StrategySnowball {
		sort.SliceStable(debts, func(i, j int) bool { return debts[i].balance < debts[j].balance })
		return
	}
	sort.SliceStable(debts, func(i, j int) bool { return debts[i].rate > debts[j].rate })
}

// simulateDebts pays every open debt month by month out of a fixed budget.
// Each debt gets at least its minimum (and never less than its interest)
// and whatever is left goes to the open debts in strategy order, so a
// cleared debt's minimum rolls over to the next target. The simulation
// stops after MaxPayoffMonths.
func simulateDebts(debts []*debtState, strategy domain.DebtStrategy, budget float64) debtSimulation {
	orderDebts(debts, strategy)
	sim := debtSimulation{debts: debts}

	for month := 1; month <= MaxPayoffMonths; month++ {
		available := budget
		paid := make(map[*debtState]float64, len(debts))

		for _, d := range debts {
			if d.paidOff > 0 {
				continue
			}
			interest := d.balance * d.rate
			d.interest += interest
			sim.interest += interest
			d.balance += interest

			payment := math.Min(math.Max(d.minimum, interest), d.balance)
			payment = math.Min(payment, available)
			d.balance -= payment
			available -= payment
			paid[d] += payment
		}

		for _, d := range debts {
			if available <= 0 {
				break
			}
			if d.paidOff > 0 || d.balance <= 0 {
				continue
			}
			extra := math.Min(available, d.balance)
			d.balance -= extra
			available -= extra
			paid[d] += extra
		}

		entry := domain.MonthlyPlan{Month: month}
		total := 0.0
		allPaid := true
		for _, d := range debts {
			p, ok := paid[d]
			if !ok {
				continue
			}
			if d.balance <= DebtBalanceTolerance {
				d.balance = 0
				d.paidOff = month
			} else {
				allPaid = false
			}
			total += p
			entry.Payments = append(entry.Payments, domain.MonthlyPayment{
				DebtName:         d.name,
				Payment:          roundTo2Decimals(p),
				RemainingBalance: roundTo2Decimals(d.balance),
			})
		}
		entry.TotalPaid = roundTo2Decimals(total)
		sim.plan = append(sim.plan, entry)
		sim.months = month

		if allPaid {
			sim.reached = true
			break
		}
	}
	return sim
}

func validateDebtExit(input domain.DebtExitInput) error {
	if len(input.Debts) == 0 {
		return invalid("debts", "at least one debt is required")
	}
	if len(input.Debts) > MaxDebtsPerRequest {
		return invalid("debts", "exceeds the maximum of %d debts", MaxDebtsPerRequest)
	}
	if err := requirePositive("availableMonthlyPayment", input.AvailableMonthlyPayment); err != nil {
		return err
	}
	switch input.Strategy {
	case domain.StrategySnowball, domain.StrategyAvalanche, domain.StrategyCompare:
	default:
		return invalid("strategy", "unsupported strategy %q", input.Strategy)
	}

	names := make(map[string]bool, len(input.Debts))
	minimums := 0.0
	for _, debt := range input.Debts {
		if debt.Name == "" {
			return invalid("debts.name", "must not be empty")
		}
		if names[debt.Name] {
			return invalid("debts.name", "duplicate debt name %q", debt.Name)
		}
		names[debt.Name] = true

		err := firstErr(
			requirePositive("debts.amount", debt.Amount),
			requireRate("debts.interestRate", debt.InterestRate),
			requirePositive("debts.minimumPayment", debt.MinimumPayment),
		)
		if err != nil {
			return err
		}
		if debt.Amount > MaxDebtAmount {
			return invalid("debts.amount", "exceeds the maximum of $%.2f", MaxDebtAmount)
		}
		minimums += debt.MinimumPayment
	}
	if minimums > input.AvailableMonthlyPayment {
		return invalid("availableMonthlyPayment", "$%.2f does not cover the minimum payments of $%.2f",
			input.AvailableMonthlyPayment, minimums)
	}
	return nil
}

func debtExitStrategy(input domain.DebtExitInput, strategy domain.DebtStrategy) domain.DebtExitResult {
	debts := make([]*debtState, len(input.Debts))
	totalDebt := 0.0
	for i, debt := range input.Debts {
		debts[i] = &debtState{
			name:    debt.Name,
			balance: debt.Amount,
			rate:    debt.InterestRate / 100 / MonthsPerYear,
			minimum: debt.MinimumPayment,
		}
		totalDebt += debt.Amount
	}

	sim := simulateDebts(debts, strategy, input.AvailableMonthlyPayment)
	return domain.DebtExitResult{
		Strategy:          strategy,
		TotalDebt:         roundTo2Decimals(totalDebt),
		TotalInterestPaid: roundTo2Decimals(sim.interest),
		MonthsToPayoff:    sim.months,
		PayoffReached:     sim.reached,
		Payoffs:           payoffSchedule(sim.debts, roundTo2Decimals),
		MonthlyPlan:       sim.plan,
	}
}

func payoffSchedule(debts []*debtState, round func(float64) float64) []domain.DebtPayoff {
	schedule := make([]domain.DebtPayoff, len(debts))
	for i, d := range debts {
		schedule[i] = domain.DebtPayoff{
			DebtName:     d.name,
			PayoffMonth:  d.paidOff,
			InterestPaid: round(d.interest),
		}
	}
	return schedule
}

// CalculateDebtExitPlan builds a month-by-month payoff plan for a set of
// debts. The compare strategy runs both orderings and returns the cheaper
// one with a side-by-side comparison. A plan that does not clear every
// debt within MaxPayoffMonths is returned together with ErrNotConverged.
func CalculateDebtExitPlan(input domain.DebtExitInput) (domain.DebtExitResult, error) {
	if err := validateDebtExit(input); err != nil {
		return domain.DebtExitResult{}, err
	}

	var result domain.DebtExitResult
	if input.Strategy == domain.StrategyCompare {
		snowball := debtExitStrategy(input, domain.StrategySnowball)
		avalanche := debtExitStrategy(input, domain.StrategyAvalanche)

		result = snowball
		if avalanche.TotalInterestPaid < snowball.TotalInterestPaid {
			result = avalanche
		}
		result.Comparison = &domain.Comparison{
			Snowball: domain.StrategyResult{
				TotalInterestPaid: snowball.TotalInterestPaid,
				MonthsToPayoff:    snowball.MonthsToPayoff,
			},
			Avalanche: domain.StrategyResult{
				TotalInterestPaid: avalanche.TotalInterestPaid,
				MonthsToPayoff:    avalanche.MonthsToPayoff,
			},
			Savings: domain.StrategySavings{
				InterestSaved: roundTo2Decimals(math.Abs(snowball.TotalInterestPaid - avalanche.TotalInterestPaid)),
				MonthsSaved:   absInt(snowball.MonthsToPayoff - avalanche.MonthsToPayoff),
			},
		}
		result.PayoffReached = snowball.PayoffReached && avalanche.PayoffReached
	} else {
		result = debtExitStrategy(input, input.Strategy)
	}

	result.Explanation = explainDebtPlan(result)
	if !result.PayoffReached {
		return result, notConverged("debts not paid off within %d months", MaxPayoffMonths)
	}
	return result, nil
}

func validatePayoffDebts(input domain.DebtPayoffInput) error {
	if len(input.Debts) == 0 {
		return invalid("debts", "at least one debt is required")
	}
	if len(input.Debts) > MaxDebtsPerRequest {
		return invalid("debts", "exceeds the maximum of %d debts", MaxDebtsPerRequest)
	}
	for _, debt := range input.Debts {
		err := firstErr(
			requirePositive("debts.balance", debt.Balance),
			requireRate("debts.interestRate", debt.InterestRate),
			requireNonNegative("debts.minimumPayment", debt.MinimumPayment),
		)
		if err != nil {
			return err
		}
	}
	return requireNonNegative("additionalPayment", input.AdditionalPayment)
}

func calculateDebtPayoff(input domain.DebtPayoffInput, strategy domain.DebtStrategy) (domain.DebtPayoffResult, error) {
	if err := validatePayoffDebts(input); err != nil {
		return domain.DebtPayoffResult{}, err
	}

	debts := make([]*debtState, len(input.Debts))
	budget := input.AdditionalPayment
	principal := 0.0
	for i, debt := range input.Debts {
		debts[i] = &debtState{
			name:    debt.Name,
			balance: debt.Balance,
			rate:    debt.InterestRate / 100 / MonthsPerYear,
			minimum: debt.MinimumPayment,
		}
		budget += debt.MinimumPayment
		principal += debt.Balance
	}
	if budget <= 0 {
		return domain.DebtPayoffResult{}, invalid("additionalPayment", "minimum and additional payments must not all be zero")
	}

	sim := simulateDebts(debts, strategy, budget)
	result := domain.DebtPayoffResult{
		TotalMonths:    sim.months,
		TotalInterest:  roundWhole(sim.interest),
		TotalPayment:   roundWhole(principal + sim.interest),
		PayoffReached:  sim.reached,
		PayoffSchedule: payoffSchedule(sim.debts, roundWhole),
	}
	if !sim.reached {
		return result, notConverged("debts not paid off within %d months", MaxPayoffMonths)
	}
	return result, nil
}

// CalculateDebtSnowball clears the smallest balance first.
func CalculateDebtSnowball(input domain.DebtPayoffInput) (domain.DebtPayoffResult, error) {
	return calculateDebtPayoff(input, domain.StrategySnowball)
}

// CalculateDebtAvalanche clears the highest rate first.
func CalculateDebtAvalanche(input domain.DebtPayoffInput) (domain.DebtPayoffResult, error) {
	return calculateDebtPayoff(input, domain.StrategyAvalanche)
}

// payOff amortizes a single balance with a fixed payment. The final
// payment is capped at what is owed.
func payOff(balance, annualRate, payment float64, asOf domain.Date) (domain.PayoffResult, error) {
	r := annualRate / 100 / MonthsPerYear
	remaining := balance
	interest := 0.0
	months := 0

	for remaining > 0 && months < MaxPayoffMonths {
		accrued := remaining * r
		interest += accrued
		remaining += accrued
		remaining -= math.Min(payment, remaining)
		months++
	}

	result := domain.PayoffResult{
		MonthsToPayoff: months,
		TotalInterest:  roundWhole(interest),
		TotalPayment:   roundWhole(balance + interest),
		PayoffDate:     asOf.AddMonths(months),
		PayoffReached:  remaining <= 0,
	}
	if err := checkFinite(interest); err != nil {
		return domain.PayoffResult{}, err
	}
	if !result.PayoffReached {
		return result, notConverged("balance not paid off within %d months, payment does not cover the interest", MaxPayoffMonths)
	}
	return result, nil
}

func validatePayoff(amountField string, amount, rate, payment, additional float64, asOf domain.Date) error {
	err := firstErr(
		requirePositive(amountField, amount),
		requireRate("interestRate", rate),
		requireNonNegative("monthlyPayment", payment),
		requireNonNegative("additionalPayment", additional),
	)
	if err != nil {
		return err
	}
	if payment+additional <= 0 {
		return invalid("monthlyPayment", "monthly and additional payment must not both be zero")
	}
	if asOf.IsZero() {
		return invalid("asOf", "start date is required")
	}
	return nil
}

func CalculateCreditCard(input domain.CreditCardInput) (domain.PayoffResult, error) {
	if err := validatePayoff("balance", input.Balance, input.InterestRate,
		input.MonthlyPayment, input.AdditionalPayment, input.AsOf); err != nil {
		return domain.PayoffResult{}, err
	}
	return payOff(input.Balance, input.InterestRate, input.MonthlyPayment+input.AdditionalPayment, input.AsOf)
}

func CalculateLoanPayoff(input domain.LoanPayoffInput) (domain.PayoffResult, error) {
	if err := validatePayoff("loanAmount", input.LoanAmount, input.InterestRate,
		input.MonthlyPayment, input.AdditionalPayment, input.AsOf); err != nil {
		return domain.PayoffResult{}, err
	}
	return payOff(input.LoanAmount, input.InterestRate, input.MonthlyPayment+input.AdditionalPayment, input.AsOf)
}

// CalculateDebtToIncome grades monthly debt payments against monthly
// income using the 28/36/43 thresholds.
func CalculateDebtToIncome(input domain.DebtToIncomeInput) (domain.DebtToIncomeResult, error) {
	if err := requirePositive("monthlyIncome", input.MonthlyIncome); err != nil {
		return domain.DebtToIncomeResult{}, err
	}
	total := 0.0
	for _, debt := range input.Debts {
		if err := requireNonNegative("debts.monthlyPayment", debt.MonthlyPayment); err != nil {
			return domain.DebtToIncomeResult{}, err
		}
		total += debt.MonthlyPayment
	}
	ratio := total / input.MonthlyIncome * 100

	var status domain.DebtToIncomeStatus
	var recommendations []string
	switch {
	case ratio <= 28:
		status = domain.DTIExcellent
		recommendations = []string{"Your debt-to-income ratio is excellent. Consider investing or saving more."}
	case ratio <= 36:
		status = domain.DTIGood
		recommendations = []string{"Your debt-to-income ratio is good. Monitor your debts and avoid taking on more."}
	case ratio <= 43:
		status = domain.DTIFair
		recommendations = []string{
			"Consider reducing some debts to improve your financial health.",
			"Look for ways to increase your income or reduce expenses.",
		}
	default:
		status = domain.DTIPoor
		recommendations = []string{
			"Focus on paying off high-interest debt first.",
			"Consider debt consolidation or speaking with a financial advisor.",
			"Avoid taking on any new debt.",
		}
	}

	return domain.DebtToIncomeResult{
		Ratio:            roundTo1Decimal(ratio),
		TotalMonthlyDebt: roundWhole(total),
		Status:           status,
		Recommendations:  recommendations,
	}, nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
