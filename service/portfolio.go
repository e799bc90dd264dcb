package service

import (
	"math"
	"sort"

	"github.com/joeyg6393/fincalcs/domain"
)

// Population statistics: every moment divides by n.

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func covariance(xs, ys []float64) float64 {
	mx, my := mean(xs), mean(ys)
	sum := 0.0
	for i := range xs {
		sum += (xs[i] - mx) * (ys[i] - my)
	}
	return sum / float64(len(xs))
}

func variance(xs []float64) float64 {
	return covariance(xs, xs)
}

func requireSeries(field string, xs []float64, minLen int) error {
	if len(xs) < minLen {
		return invalid(field, "at least %d observations are required, got %d", minLen, len(xs))
	}
	for _, x := range xs {
		if err := requireFinite(field, x); err != nil {
			return err
		}
	}
	return nil
}

func requirePairedSeries(field1 string, xs []float64, field2 string, ys []float64) error {
	err := firstErr(
		requireSeries(field1, xs, 2),
		requireSeries(field2, ys, 2),
	)
	if err != nil {
		return err
	}
	if len(xs) != len(ys) {
		return invalid(field2, "has %d observations, %s has %d", len(ys), field1, len(xs))
	}
	return nil
}

func samplesPerYear(p domain.ReturnPeriod) (float64, bool) {
	switch p {
	case domain.PeriodDaily:
		return 252, true
	case domain.PeriodMonthly:
		return MonthsPerYear, true
	case domain.PeriodAnnual:
		return 1, true
	}
	return 0, false
}

// CalculateBeta regresses the stock on the market. RSquared is the squared
// correlation as a fraction.
func CalculateBeta(input domain.BetaInput) (domain.BetaResult, error) {
	err := firstErr(
		requirePairedSeries("stockReturns", input.StockReturns, "marketReturns", input.MarketReturns),
		requireFinite("riskFreeRate", input.RiskFreeRate),
	)
	if err != nil {
		return domain.BetaResult{}, err
	}

	cov := covariance(input.StockReturns, input.MarketReturns)
	marketVar := variance(input.MarketReturns)
	stockVar := variance(input.StockReturns)
	if marketVar == 0 {
		return domain.BetaResult{}, degenerate("market returns have zero variance")
	}
	if stockVar == 0 {
		return domain.BetaResult{}, degenerate("stock returns have zero variance")
	}

	stockStdDev := math.Sqrt(stockVar)
	correlation := cov / (stockStdDev * math.Sqrt(marketVar))

	return domain.BetaResult{
		Beta:              roundTo2Decimals(cov / marketVar),
		Correlation:       roundTo2Decimals(correlation),
		RSquared:          roundTo2Decimals(correlation * correlation),
		StandardDeviation: roundTo2Decimals(stockStdDev),
	}, nil
}

// CalculateCorrelation reports the Pearson correlation, R² as a percentage
// and the confidence of a two-sided t-test against zero correlation.
func CalculateCorrelation(input domain.CorrelationInput) (domain.CorrelationResult, error) {
	if err := requirePairedSeries("asset1Returns", input.Asset1Returns, "asset2Returns", input.Asset2Returns); err != nil {
		return domain.CorrelationResult{}, err
	}
	if input.Period != "" {
		if _, ok := samplesPerYear(input.Period); !ok {
			return domain.CorrelationResult{}, invalid("period", "unsupported period %q", input.Period)
		}
	}

	v1 := variance(input.Asset1Returns)
	v2 := variance(input.Asset2Returns)
	if v1 == 0 || v2 == 0 {
		return domain.CorrelationResult{}, degenerate("a return series has zero variance")
	}

	cov := covariance(input.Asset1Returns, input.Asset2Returns)
	correlation := math.Max(-1, math.Min(1, cov/math.Sqrt(v1*v2)))

	n := float64(len(input.Asset1Returns))
	var significance float64
	switch {
	case n <= 2:
		// no degrees of freedom left for the test
	case 1-correlation*correlation <= 0:
		significance = 100
	default:
		t := math.Abs(correlation * math.Sqrt((n-2)/(1-correlation*correlation)))
		significance = (1 - 2*(1-NormalCDF(t))) * 100
	}

	return domain.CorrelationResult{
		Correlation:  roundTo2Decimals(correlation),
		RSquared:     roundTo2Decimals(correlation * correlation * 100),
		Covariance:   roundTo2Decimals(cov),
		Significance: roundTo2Decimals(significance),
	}, nil
}

// CalculateSharpeRatio annualizes the per-period ratio by the square root
// of the periods per year.
func CalculateSharpeRatio(input domain.SharpeRatioInput) (domain.SharpeRatioResult, error) {
	err := firstErr(
		requireSeries("returns", input.Returns, 2),
		requireFinite("riskFreeRate", input.RiskFreeRate),
	)
	if err != nil {
		return domain.SharpeRatioResult{}, err
	}
	periods, ok := samplesPerYear(input.Period)
	if !ok {
		return domain.SharpeRatioResult{}, invalid("period", "unsupported period %q", input.Period)
	}

	stdDev := math.Sqrt(variance(input.Returns))
	if stdDev == 0 {
		return domain.SharpeRatioResult{}, degenerate("returns have zero variance")
	}
	excess := mean(input.Returns) - input.RiskFreeRate
	sharpe := excess / stdDev

	return domain.SharpeRatioResult{
		SharpeRatio:       roundTo2Decimals(sharpe),
		ExcessReturn:      roundTo2Decimals(excess),
		StandardDeviation: roundTo2Decimals(stdDev),
		AnnualizedSharpe:  roundTo2Decimals(sharpe * math.Sqrt(periods)),
	}, nil
}

// CalculatePortfolioRisk aggregates the weighted covariance matrix of the
// assets. Max drawdown is measured on the compounded value of the weighted
// portfolio, period by period.
func CalculatePortfolioRisk(input domain.PortfolioRiskInput) (domain.PortfolioRiskResult, error) {
	if len(input.Assets) == 0 {
		return domain.PortfolioRiskResult{}, invalid("assets", "at least one asset is required")
	}
	if err := requireFinite("riskFreeRate", input.RiskFreeRate); err != nil {
		return domain.PortfolioRiskResult{}, err
	}

	periods := len(input.Assets[0].Returns)
	totalWeight := 0.0
	for _, asset := range input.Assets {
		err := firstErr(
			requireNonNegative("weight", asset.Weight),
			requireSeries("returns", asset.Returns, 2),
		)
		if err != nil {
			return domain.PortfolioRiskResult{}, err
		}
		if len(asset.Returns) != periods {
			return domain.PortfolioRiskResult{}, invalid("returns",
				"asset %q has %d observations, expected %d", asset.Name, len(asset.Returns), periods)
		}
		totalWeight += asset.Weight
	}
	if totalWeight == 0 {
		return domain.PortfolioRiskResult{}, invalid("weight", "weights must not all be zero")
	}

	weights := make([]float64, len(input.Assets))
	expected := 0.0
	for i, asset := range input.Assets {
		weights[i] = asset.Weight / totalWeight
		expected += weights[i] * mean(asset.Returns)
	}

	portfolioVar := 0.0
	for i, a := range input.Assets {
		for j, b := range input.Assets {
			portfolioVar += weights[i] * weights[j] * covariance(a.Returns, b.Returns)
		}
	}
	risk := math.Sqrt(math.Max(0, portfolioVar))
	if risk == 0 {
		return domain.PortfolioRiskResult{}, degenerate("portfolio has zero variance")
	}

	value, peak, maxDrawdown := 1.0, 1.0, 0.0
	for p := 0; p < periods; p++ {
		r := 0.0
		for i, asset := range input.Assets {
			r += weights[i] * asset.Returns[p]
		}
		value *= 1 + r/100
		if value > peak {
			peak = value
		} else if peak > 0 {
			maxDrawdown = math.Max(maxDrawdown, (peak-value)/peak*100)
		}
	}

	return domain.PortfolioRiskResult{
		PortfolioReturn: roundTo2Decimals(expected),
		PortfolioRisk:   roundTo2Decimals(risk),
		SharpeRatio:     roundTo2Decimals((expected - input.RiskFreeRate) / risk),
		VaRFivePercent:  roundTo2Decimals(VaRZScore95 * risk),
		MaxDrawdown:     roundTo2Decimals(maxDrawdown),
	}, nil
}

// CalculatePortfolioRebalancing lists the trades that move the current
// holdings to the target percentages. Trades are ordered by asset name and
// those under half a share are dropped.
func CalculatePortfolioRebalancing(input domain.PortfolioRebalancingInput) (domain.PortfolioRebalancingResult, error) {
	if len(input.CurrentHoldings) == 0 {
		return domain.PortfolioRebalancingResult{}, invalid("currentHoldings", "at least one holding is required")
	}

	total := 0.0
	for _, h := range input.CurrentHoldings {
		err := firstErr(
			requireNonNegative("currentHoldings.value", h.Value),
			requirePositive("currentHoldings.price", h.Price),
		)
		if err != nil {
			return domain.PortfolioRebalancingResult{}, err
		}
		total += h.Value
	}
	if total == 0 {
		return domain.PortfolioRebalancingResult{}, invalid("currentHoldings", "portfolio value must be greater than zero")
	}

	targetSum := 0.0
	for asset, pct := range input.TargetAllocations {
		if err := requireNonNegative("targetAllocations", pct); err != nil {
			return domain.PortfolioRebalancingResult{}, err
		}
		if _, ok := input.CurrentHoldings[asset]; !ok {
			return domain.PortfolioRebalancingResult{}, invalid("targetAllocations", "no holding for asset %q", asset)
		}
		targetSum += pct
	}
	if targetSum > 100+1e-9 {
		return domain.PortfolioRebalancingResult{}, invalid("targetAllocations", "targets add up to %.2f%%", targetSum)
	}

	current := make(map[string]float64, len(input.CurrentHoldings))
	for asset, h := range input.CurrentHoldings {
		current[asset] = roundWhole(h.Value / total * 100)
	}

	assets := make([]string, 0, len(input.TargetAllocations))
	for asset := range input.TargetAllocations {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	trades := []domain.Trade{}
	for _, asset := range assets {
		h := input.CurrentHoldings[asset]
		diff := total*input.TargetAllocations[asset]/100 - h.Value
		shares := roundWhole(math.Abs(diff) / h.Price)
		if shares == 0 {
			continue
		}
		action := domain.Sell
		if diff > 0 {
			action = domain.Buy
		}
		trades = append(trades, domain.Trade{
			Asset:  asset,
			Action: action,
			Shares: shares,
			Amount: roundTo2Decimals(math.Abs(diff)),
		})
	}

	return domain.PortfolioRebalancingResult{
		Trades:             trades,
		CurrentAllocations: current,
		NewAllocations:     input.TargetAllocations,
		TotalValue:         roundTo2Decimals(total),
	}, nil
}

// CalculateAssetAllocation starts from the risk tolerance and shifts weight
// between stocks, bonds, cash and alternatives for horizon, age and size.
func CalculateAssetAllocation(input domain.AssetAllocationInput) (domain.AssetAllocationResult, error) {
	err := firstErr(
		requireNonNegative("riskTolerance", input.RiskTolerance),
		requireNonNegative("investmentHorizon", input.InvestmentHorizon),
		requireNonNegative("portfolioValue", input.PortfolioValue),
	)
	if err != nil {
		return domain.AssetAllocationResult{}, err
	}
	if input.RiskTolerance > 100 {
		return domain.AssetAllocationResult{}, invalid("riskTolerance", "must be between 0 and 100")
	}
	if input.CurrentAge <= 0 {
		return domain.AssetAllocationResult{}, invalid("currentAge", "must be greater than zero")
	}
	if input.RetirementAge < input.CurrentAge {
		return domain.AssetAllocationResult{}, invalid("retirementAge", "must not be before the current age")
	}

	stocks := input.RiskTolerance
	bonds := 90 - input.RiskTolerance
	cash := 10.0
	other := 0.0

	switch {
	case input.InvestmentHorizon > 15:
		stocks += 5
		bonds -= 5
	case input.InvestmentHorizon < 5:
		stocks -= 10
		bonds += 5
		cash += 5
	}
	if input.RetirementAge-input.CurrentAge < 10 {
		stocks -= 10
		bonds += 5
		cash += 5
	}
	if input.PortfolioValue > 1_000_000 {
		other = 10
		stocks -= 5
		bonds -= 5
	}

	clamp := func(v float64) float64 { return math.Max(0, math.Min(100, v)) }
	stocks, bonds, cash, other = clamp(stocks), clamp(bonds), clamp(cash), clamp(other)
	total := stocks + bonds + cash + other

	result := domain.AssetAllocationResult{
		Stocks:          roundWhole(stocks / total * 100),
		Bonds:           roundWhole(bonds / total * 100),
		Cash:            roundWhole(cash / total * 100),
		Other:           roundWhole(other / total * 100),
		Recommendations: []string{},
	}

	if result.Stocks > 70 {
		result.Recommendations = append(result.Recommendations,
			"Consider diversifying into more defensive stocks given the high equity allocation.")
	}
	if result.Bonds < 20 && input.CurrentAge > 50 {
		result.Recommendations = append(result.Recommendations,
			"Consider increasing bond allocation for more stability as you near retirement.")
	}
	if result.Cash > 15 {
		result.Recommendations = append(result.Recommendations,
			"Consider investing some cash holdings to protect against inflation.")
	}
	if result.Other > 0 {
		result.Recommendations = append(result.Recommendations,
			"Consider alternative investments like REITs or commodities for diversification.")
	}
	return result, nil
}
