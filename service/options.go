package service

import (
	"math"

	"github.com/joeyg6393/fincalcs/domain"
)

// NormalCDF is the Abramowitz and Stegun polynomial approximation of the
// standard normal distribution function (absolute error below 7.5e-8).
func NormalCDF(x float64) float64 {
	t := 1 / (1 + 0.2316419*math.Abs(x))
	d := 0.3989423 * math.Exp(-x*x/2)
	p := d * t * (0.3193815 + t*(-0.3565638+t*(1.781478+t*(-1.821256+t*1.330274))))
	if x > 0 {
		return 1 - p
	}
	return p
}

func normalPDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

type blackScholes struct {
	price, delta, gamma, theta, vega, rho float64
}

// priceOption evaluates the model with rate and vol as fractions. Vega and
// rho are scaled to one percentage point.
func priceOption(s, k, t, rate, vol float64, typ domain.OptionType) blackScholes {
	sqrtT := math.Sqrt(t)
	d1 := (math.Log(s/k) + (rate+vol*vol/2)*t) / (vol * sqrtT)
	d2 := d1 - vol*sqrtT
	discount := k * math.Exp(-rate*t)
	pdf := normalPDF(d1)

	bs := blackScholes{
		gamma: pdf / (s * vol * sqrtT),
		vega:  s * sqrtT * pdf / 100,
	}
	if typ == domain.Call {
		bs.price = s*NormalCDF(d1) - discount*NormalCDF(d2)
		bs.delta = NormalCDF(d1)
		bs.theta = -s*pdf*vol/(2*sqrtT) - rate*discount*NormalCDF(d2)
		bs.rho = t * discount * NormalCDF(d2) / 100
	} else {
		bs.price = discount*NormalCDF(-d2) - s*NormalCDF(-d1)
		bs.delta = NormalCDF(d1) - 1
		bs.theta = -s*pdf*vol/(2*sqrtT) + rate*discount*NormalCDF(-d2)
		bs.rho = -t * discount * NormalCDF(-d2) / 100
	}
	return bs
}

func requireOptionType(typ domain.OptionType) error {
	if typ != domain.Call && typ != domain.Put {
		return invalid("optionType", "must be call or put, got %q", typ)
	}
	return nil
}

// CalculateBlackScholes prices a European option and its Greeks.
func CalculateBlackScholes(input domain.BlackScholesInput) (domain.BlackScholesResult, error) {
	err := firstErr(
		requirePositive("stockPrice", input.StockPrice),
		requirePositive("strikePrice", input.StrikePrice),
		requireYears("timeToExpiry", input.TimeToExpiry),
		requireRate("riskFreeRate", input.RiskFreeRate),
		requirePositive("volatility", input.Volatility),
		requireOptionType(input.OptionType),
	)
	if err != nil {
		return domain.BlackScholesResult{}, err
	}

	bs := priceOption(input.StockPrice, input.StrikePrice, input.TimeToExpiry,
		input.RiskFreeRate/100, input.Volatility/100, input.OptionType)
	if err := checkFinite(bs.price, bs.delta, bs.gamma, bs.theta, bs.vega, bs.rho); err != nil {
		return domain.BlackScholesResult{}, err
	}

	return domain.BlackScholesResult{
		OptionPrice: roundTo2Decimals(bs.price),
		Delta:       roundTo2Decimals(bs.delta),
		Gamma:       roundTo(bs.gamma, 4),
		Theta:       roundTo2Decimals(bs.theta),
		Vega:        roundTo2Decimals(bs.vega),
		Rho:         roundTo2Decimals(bs.rho),
	}, nil
}

// CalculateCoveredCall evaluates writing Contracts calls against 100
// shares each.
func CalculateCoveredCall(input domain.CoveredCallInput) (domain.CoveredCallResult, error) {
	err := firstErr(
		requirePositive("stockPrice", input.StockPrice),
		requirePositive("strikePrice", input.StrikePrice),
		requireNonNegative("premium", input.Premium),
	)
	if err != nil {
		return domain.CoveredCallResult{}, err
	}
	if input.Contracts <= 0 {
		return domain.CoveredCallResult{}, invalid("contracts", "must be at least one")
	}
	if input.DaysToExpiry <= 0 {
		return domain.CoveredCallResult{}, invalid("daysToExpiry", "must be at least one day")
	}

	shares := float64(input.Contracts * ContractSize)
	unchanged := input.Premium / input.StockPrice * 100

	return domain.CoveredCallResult{
		MaxProfit:         roundTo2Decimals((input.StrikePrice - input.StockPrice + input.Premium) * shares),
		MaxLoss:           roundTo2Decimals(input.StockPrice * shares),
		Breakeven:         roundTo2Decimals(input.StockPrice - input.Premium),
		ReturnIfUnchanged: roundTo2Decimals(unchanged),
		AnnualizedReturn:  roundTo2Decimals(unchanged * DaysPerYear / float64(input.DaysToExpiry)),
	}, nil
}

const (
	actionLongStock  = "Buy stock and put, sell call and bonds"
	actionShortStock = "Sell stock and put, buy call and bonds"
	actionNone       = "No significant arbitrage opportunity"
)

// CalculatePutCallParity measures C - P - S + K*e^(-rt) and flags
// deviations above ParityArbitrageBand.
func CalculatePutCallParity(input domain.PutCallParityInput) (domain.PutCallParityResult, error) {
	err := firstErr(
		requireNonNegative("callPrice", input.CallPrice),
		requireNonNegative("putPrice", input.PutPrice),
		requirePositive("stockPrice", input.StockPrice),
		requirePositive("strikePrice", input.StrikePrice),
		requireRate("riskFreeRate", input.RiskFreeRate),
		requireNonNegative("timeToExpiry", input.TimeToExpiry),
	)
	if err != nil {
		return domain.PutCallParityResult{}, err
	}

	pvStrike := input.StrikePrice * math.Exp(-input.RiskFreeRate/100*input.TimeToExpiry)
	parity := input.CallPrice - input.PutPrice - input.StockPrice + pvStrike
	deviation := math.Abs(parity)

	result := domain.PutCallParityResult{
		ParityValue:          roundTo2Decimals(parity),
		Deviation:            roundTo2Decimals(deviation),
		ArbitrageOpportunity: deviation > ParityArbitrageBand,
		RecommendedAction:    actionNone,
	}
	if result.ArbitrageOpportunity {
		if parity > 0 {
			result.RecommendedAction = actionLongStock
		} else {
			result.RecommendedAction = actionShortStock
		}
	}
	return result, nil
}

// CalculateImpliedVolatility inverts the Black-Scholes price with
// Newton-Raphson from a 30% seed. The search gives up with
// ErrNotConverged when the volatility leaves [1%, 200%], vega vanishes or
// the iterations run out.
func CalculateImpliedVolatility(input domain.ImpliedVolatilityInput) (domain.ImpliedVolatilityResult, error) {
	err := firstErr(
		requirePositive("optionPrice", input.OptionPrice),
		requirePositive("stockPrice", input.StockPrice),
		requirePositive("strikePrice", input.StrikePrice),
		requireYears("timeToExpiry", input.TimeToExpiry),
		requireRate("riskFreeRate", input.RiskFreeRate),
		requireOptionType(input.OptionType),
	)
	if err != nil {
		return domain.ImpliedVolatilityResult{}, err
	}

	vol := ImpliedVolSeed
	for i := 1; i <= ImpliedVolMaxIterations; i++ {
		bs := priceOption(input.StockPrice, input.StrikePrice, input.TimeToExpiry,
			input.RiskFreeRate/100, vol/100, input.OptionType)
		diff := bs.price - input.OptionPrice
		if math.Abs(diff) < ImpliedVolTolerance {
			return impliedVolResult(vol, i), nil
		}
		if bs.vega < 1e-10 {
			return domain.ImpliedVolatilityResult{}, notConverged("vega vanished at %.2f%% volatility", vol)
		}

		vol -= diff / bs.vega
		if math.IsNaN(vol) || vol < ImpliedVolMin || vol > ImpliedVolMax {
			return domain.ImpliedVolatilityResult{}, notConverged("volatility left the [%.0f%%, %.0f%%] range", ImpliedVolMin, ImpliedVolMax)
		}
	}
	return domain.ImpliedVolatilityResult{}, notConverged("no solution within %d iterations", ImpliedVolMaxIterations)
}

func impliedVolResult(vol float64, iterations int) domain.ImpliedVolatilityResult {
	return domain.ImpliedVolatilityResult{
		ImpliedVolatility:    roundTo2Decimals(vol),
		AnnualizedVolatility: roundTo2Decimals(vol),
		ConfidenceInterval: domain.Interval{
			Lower: roundTo2Decimals(math.Max(0, vol*0.8)),
			Upper: roundTo2Decimals(vol * 1.2),
		},
		HistoricalComparison: HistoricalVolatility,
		Iterations:           iterations,
	}
}
