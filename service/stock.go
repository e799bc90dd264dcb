package service

import (
	"math"

	"github.com/joeyg6393/fincalcs/domain"
)

// CalculateStockReturn reports capital gains, dividends and the CAGR over
// HoldingPeriod years.
func CalculateStockReturn(input domain.StockReturnInput) (domain.StockReturnResult, error) {
	err := firstErr(
		requirePositive("initialPrice", input.InitialPrice),
		requireNonNegative("finalPrice", input.FinalPrice),
		requireYears("holdingPeriod", input.HoldingPeriod),
	)
	if err != nil {
		return domain.StockReturnResult{}, err
	}

	dividends := 0.0
	for _, d := range input.Dividends {
		if err := requireNonNegative("dividends", d); err != nil {
			return domain.StockReturnResult{}, err
		}
		dividends += d
	}

	gains := input.FinalPrice - input.InitialPrice
	growth := (input.FinalPrice + dividends - input.InitialPrice) / input.InitialPrice
	annualized := (math.Pow(1+growth, 1/input.HoldingPeriod) - 1) * 100

	if err := checkFinite(annualized); err != nil {
		return domain.StockReturnResult{}, err
	}

	return domain.StockReturnResult{
		TotalReturn:      roundTo2Decimals(gains + dividends),
		AnnualizedReturn: roundTo2Decimals(annualized),
		CapitalGains:     roundTo2Decimals(gains),
		DividendIncome:   roundTo2Decimals(dividends),
	}, nil
}

func payoutsPerYear(f domain.PayoutFrequency) (int, bool) {
	switch f {
	case domain.PayoutAnnual:
		return 1, true
	case domain.PayoutSemiAnnual:
		return 2, true
	case domain.PayoutQuarterly:
		return 4, true
	case domain.PayoutMonthly:
		return MonthsPerYear, true
	}
	return 0, false
}

// CalculateDividendYield also lays out the next year of payout dates,
// starting on AsOf.
func CalculateDividendYield(input domain.DividendYieldInput) (domain.DividendYieldResult, error) {
	err := firstErr(
		requirePositive("stockPrice", input.StockPrice),
		requireNonNegative("annualDividend", input.AnnualDividend),
	)
	if err != nil {
		return domain.DividendYieldResult{}, err
	}
	n, ok := payoutsPerYear(input.PayoutFrequency)
	if !ok {
		return domain.DividendYieldResult{}, invalid("payoutFrequency", "unsupported frequency %q", input.PayoutFrequency)
	}
	if input.AsOf.IsZero() {
		return domain.DividendYieldResult{}, invalid("asOf", "start date is required")
	}

	schedule := make([]domain.Date, n)
	for i := range schedule {
		schedule[i] = input.AsOf.AddMonths(MonthsPerYear / n * i)
	}

	return domain.DividendYieldResult{
		DividendYield:  roundTo2Decimals(input.AnnualDividend / input.StockPrice * 100),
		MonthlyIncome:  roundTo2Decimals(input.AnnualDividend / MonthsPerYear),
		AnnualIncome:   roundTo2Decimals(input.AnnualDividend),
		PayoutSchedule: schedule,
	}, nil
}

// CalculateDividendReinvestment reinvests each year's dividends at that
// year's grown share price.
func CalculateDividendReinvestment(input domain.DividendReinvestmentInput) (domain.DividendReinvestmentResult, error) {
	err := firstErr(
		requirePositive("initialInvestment", input.InitialInvestment),
		requirePositive("sharePrice", input.SharePrice),
		requireNonNegative("annualDividend", input.AnnualDividend),
		requireFinite("growthRate", input.GrowthRate),
		requireWholeYears("years", input.Years),
	)
	if err != nil {
		return domain.DividendReinvestmentResult{}, err
	}
	if input.GrowthRate <= -100 {
		return domain.DividendReinvestmentResult{}, invalid("growthRate", "must be above -100%%")
	}

	shares := input.InitialInvestment / input.SharePrice
	total := 0.0
	value := input.InitialInvestment
	breakdown := make([]domain.DividendReinvestmentYear, 0, input.Years)

	for year := 1; year <= input.Years; year++ {
		price := input.SharePrice * math.Pow(1+input.GrowthRate/100, float64(year))
		dividends := shares * input.AnnualDividend
		total += dividends
		shares += dividends / price
		value = shares * price

		breakdown = append(breakdown, domain.DividendReinvestmentYear{
			Year:      year,
			Shares:    roundTo(shares, 3),
			Dividends: roundTo2Decimals(dividends),
			Value:     roundTo2Decimals(value),
		})
	}

	if err := checkFinite(value, total); err != nil {
		return domain.DividendReinvestmentResult{}, err
	}

	return domain.DividendReinvestmentResult{
		FinalValue:      roundTo2Decimals(value),
		TotalDividends:  roundTo2Decimals(total),
		TotalShares:     roundTo(shares, 3),
		YearlyBreakdown: breakdown,
	}, nil
}

// CalculateDCA values the shares bought month by month at the last price
// in the history.
func CalculateDCA(input domain.DCAInput) (domain.DCAResult, error) {
	err := firstErr(
		requirePositive("monthlyInvestment", input.MonthlyInvestment),
		requireWholeYears("years", input.Years),
	)
	if err != nil {
		return domain.DCAResult{}, err
	}
	if err := requireNonNegative("initialPrice", input.InitialPrice); err != nil {
		return domain.DCAResult{}, err
	}

	prices := input.PriceHistory
	if len(prices) == 0 {
		if input.InitialPrice == 0 {
			return domain.DCAResult{}, invalid("priceHistory", "at least one price or an initialPrice is required")
		}
		prices = make([]float64, input.Years*MonthsPerYear)
		for i := range prices {
			prices[i] = input.InitialPrice
		}
	}
	for _, price := range prices {
		if err := requirePositive("priceHistory", price); err != nil {
			return domain.DCAResult{}, err
		}
	}

	var shares, invested float64
	months := min(input.Years*MonthsPerYear, len(prices))
	for _, price := range prices[:months] {
		shares += input.MonthlyInvestment / price
		invested += input.MonthlyInvestment
	}

	value := shares * prices[len(prices)-1]
	return domain.DCAResult{
		TotalInvested:      roundTo2Decimals(invested),
		CurrentValue:       roundTo2Decimals(value),
		TotalShares:        roundTo(shares, 3),
		AverageCost:        roundTo2Decimals(invested / shares),
		ReturnOnInvestment: roundTo2Decimals((value - invested) / invested * 100),
	}, nil
}
