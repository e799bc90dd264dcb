package service

import (
	"fmt"
	"strings"

	"github.com/joeyg6393/fincalcs/domain"
)

// Plain-language explanations attached to term recommendations and debt
// plans. They only read the computed numbers, so the outputs stay
// deterministic.

func explainTerm(amount, interestRate float64, top domain.TermRecommendation, preference domain.TermPreference, alternatives []domain.TermRecommendation) string {
	var b strings.Builder

	switch preference {
	case domain.PreferMinimizeInterest:
		fmt.Fprintf(&b, "A term of %s keeps total interest on $%.2f at %.2f%% down to $%.2f, with a monthly payment of $%.2f.",
			describeTerm(top.TermMonths), amount, interestRate, top.TotalInterest, top.MonthlyPayment)
	case domain.PreferMinimizePayment:
		fmt.Fprintf(&b, "A term of %s brings the monthly payment down to $%.2f, at a total interest cost of $%.2f.",
			describeTerm(top.TermMonths), top.MonthlyPayment, top.TotalInterest)
	default:
		fmt.Fprintf(&b, "A term of %s balances a monthly payment of $%.2f against $%.2f of total interest.",
			describeTerm(top.TermMonths), top.MonthlyPayment, top.TotalInterest)
	}

	if len(alternatives) > 0 {
		b.WriteString(" Alternatives:")
		for i, alt := range alternatives {
			if i > 0 {
				b.WriteString(";")
			}
			fmt.Fprintf(&b, " %s at $%.2f/month ($%.2f interest)",
				describeTerm(alt.TermMonths), alt.MonthlyPayment, alt.TotalInterest)
		}
		b.WriteString(".")
	}
	return b.String()
}

func termReason(preference domain.TermPreference) string {
	switch preference {
	case domain.PreferMinimizeInterest:
		return "Term chosen to minimize total interest"
	case domain.PreferMinimizePayment:
		return "Term chosen to minimize the monthly payment"
	default:
		return "Balance between monthly payment and total cost"
	}
}

func strategyName(strategy domain.DebtStrategy) string {
	if strategy == domain.StrategyAvalanche {
		return "avalanche"
	}
	return "snowball"
}

func strategyTip(strategy domain.DebtStrategy) string {
	if strategy == domain.StrategyAvalanche {
		return "Paying the highest-rate debt first minimizes the interest that accumulates."
	}
	return "Paying the smallest balances first clears whole debts quickly and frees their minimums for the next one."
}

func explainDebtPlan(result domain.DebtExitResult) string {
	var b strings.Builder

	if !result.PayoffReached {
		fmt.Fprintf(&b, "With the %s strategy the debts are not paid off within %d months; $%.2f of interest accrues over that period. Raise the monthly payment above the interest charged.",
			strategyName(result.Strategy), result.MonthsToPayoff, result.TotalInterestPaid)
		return b.String()
	}

	fmt.Fprintf(&b, "With the %s strategy you pay $%.2f of interest on $%.2f of debt and are debt free in %d months (%.1f years). %s",
		strategyName(result.Strategy), result.TotalInterestPaid, result.TotalDebt,
		result.MonthsToPayoff, float64(result.MonthsToPayoff)/MonthsPerYear, strategyTip(result.Strategy))

	if c := result.Comparison; c != nil {
		fmt.Fprintf(&b, " Snowball costs $%.2f over %d months, avalanche $%.2f over %d months.",
			c.Snowball.TotalInterestPaid, c.Snowball.MonthsToPayoff,
			c.Avalanche.TotalInterestPaid, c.Avalanche.MonthsToPayoff)
		if c.Savings.InterestSaved > 0 {
			fmt.Fprintf(&b, " The chosen strategy saves $%.2f.", c.Savings.InterestSaved)
		}
	}
	return b.String()
}
