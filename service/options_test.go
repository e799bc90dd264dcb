package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeyg6393/fincalcs/domain"
)

func TestNormalCDF(t *testing.T) {
	assert.InDelta(t, 0.5, NormalCDF(0), 1e-7)
	assert.InDelta(t, 0.8413447, NormalCDF(1), 1e-6)
	assert.InDelta(t, 0.0227501, NormalCDF(-2), 1e-6)
	assert.InDelta(t, 1, NormalCDF(1)+NormalCDF(-1), 1e-7)
}

func TestCalculateBlackScholes(t *testing.T) {
	input := domain.BlackScholesInput{
		StockPrice: 100, StrikePrice: 100, TimeToExpiry: 1, RiskFreeRate: 5, Volatility: 20,
		OptionType: domain.Call,
	}
	call, err := CalculateBlackScholes(input)
	require.NoError(t, err)

	assert.Equal(t, 10.45, call.OptionPrice)
	assert.Equal(t, 0.64, call.Delta)
	assert.Equal(t, 0.0188, call.Gamma)
	assert.Equal(t, -6.41, call.Theta)
	assert.Equal(t, 0.38, call.Vega)
	assert.Equal(t, 0.53, call.Rho)

	input.OptionType = domain.Put
	put, err := CalculateBlackScholes(input)
	require.NoError(t, err)

	assert.Equal(t, 5.57, put.OptionPrice)
	assert.Equal(t, -0.36, put.Delta)
	assert.Equal(t, call.Gamma, put.Gamma)
	assert.Equal(t, -0.42, put.Rho)
}

func TestCalculateBlackScholes_PutCallParity(t *testing.T) {
	cases := []domain.BlackScholesInput{
		{StockPrice: 100, StrikePrice: 100, TimeToExpiry: 1, RiskFreeRate: 5, Volatility: 20},
		{StockPrice: 50, StrikePrice: 55, TimeToExpiry: 0.5, RiskFreeRate: 3, Volatility: 35},
		{StockPrice: 120, StrikePrice: 100, TimeToExpiry: 2, RiskFreeRate: 4, Volatility: 25},
		{StockPrice: 80, StrikePrice: 100, TimeToExpiry: 0.25, RiskFreeRate: 1, Volatility: 50},
	}

	for _, in := range cases {
		in.OptionType = domain.Call
		call, err := CalculateBlackScholes(in)
		require.NoError(t, err)
		in.OptionType = domain.Put
		put, err := CalculateBlackScholes(in)
		require.NoError(t, err)

		forward := in.StockPrice - in.StrikePrice*math.Exp(-in.RiskFreeRate/100*in.TimeToExpiry)
		assert.InDelta(t, forward, call.OptionPrice-put.OptionPrice, 0.01, "%+v", in)

		parity, err := CalculatePutCallParity(domain.PutCallParityInput{
			CallPrice: call.OptionPrice, PutPrice: put.OptionPrice,
			StockPrice: in.StockPrice, StrikePrice: in.StrikePrice,
			RiskFreeRate: in.RiskFreeRate, TimeToExpiry: in.TimeToExpiry,
		})
		require.NoError(t, err)
		assert.False(t, parity.ArbitrageOpportunity)
		assert.LessOrEqual(t, parity.Deviation, 0.01)
	}
}

func TestCalculateBlackScholes_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input domain.BlackScholesInput
	}{
		{"zero volatility", domain.BlackScholesInput{StockPrice: 100, StrikePrice: 100, TimeToExpiry: 1, OptionType: domain.Call}},
		{"zero expiry", domain.BlackScholesInput{StockPrice: 100, StrikePrice: 100, Volatility: 20, OptionType: domain.Call}},
		{"unknown type", domain.BlackScholesInput{StockPrice: 100, StrikePrice: 100, TimeToExpiry: 1, Volatility: 20, OptionType: "straddle"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateBlackScholes(tt.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCalculateCoveredCall(t *testing.T) {
	result, err := CalculateCoveredCall(domain.CoveredCallInput{
		StockPrice: 50, StrikePrice: 55, Premium: 2, Contracts: 1, DaysToExpiry: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, 700.0, result.MaxProfit)
	assert.Equal(t, 5000.0, result.MaxLoss)
	assert.Equal(t, 48.0, result.Breakeven)
	assert.Equal(t, 4.0, result.ReturnIfUnchanged)
	assert.Equal(t, 48.67, result.AnnualizedReturn)
}

func TestCalculatePutCallParity_Arbitrage(t *testing.T) {
	base := domain.PutCallParityInput{
		CallPrice: 12, PutPrice: 5.57, StockPrice: 100, StrikePrice: 100, RiskFreeRate: 5, TimeToExpiry: 1,
	}
	result, err := CalculatePutCallParity(base)
	require.NoError(t, err)
	assert.True(t, result.ArbitrageOpportunity)
	assert.Equal(t, 1.55, result.ParityValue)
	assert.Equal(t, "Buy stock and put, sell call and bonds", result.RecommendedAction)

	base.CallPrice = 9
	result, err = CalculatePutCallParity(base)
	require.NoError(t, err)
	assert.True(t, result.ArbitrageOpportunity)
	assert.Equal(t, "Sell stock and put, buy call and bonds", result.RecommendedAction)
}

func TestCalculateImpliedVolatility_RecoversPricingVolatility(t *testing.T) {
	for _, vol := range []float64{10, 25, 45, 80} {
		for _, typ := range []domain.OptionType{domain.Call, domain.Put} {
			price := priceOption(100, 105, 0.75, 0.03, vol/100, typ).price

			result, err := CalculateImpliedVolatility(domain.ImpliedVolatilityInput{
				OptionPrice: price, StockPrice: 100, StrikePrice: 105, TimeToExpiry: 0.75,
				RiskFreeRate: 3, OptionType: typ,
			})
			require.NoError(t, err, "vol %v %s", vol, typ)
			assert.InDelta(t, vol, result.ImpliedVolatility, 0.01)
			assert.LessOrEqual(t, result.Iterations, ImpliedVolMaxIterations)
			assert.InDelta(t, vol*0.8, result.ConfidenceInterval.Lower, 0.02)
			assert.InDelta(t, vol*1.2, result.ConfidenceInterval.Upper, 0.02)
			assert.Equal(t, HistoricalVolatility, result.HistoricalComparison)
		}
	}
}

func TestCalculateImpliedVolatility_NoSolution(t *testing.T) {
	// A call can never be worth more than the stock.
	_, err := CalculateImpliedVolatility(domain.ImpliedVolatilityInput{
		OptionPrice: 150, StockPrice: 100, StrikePrice: 100, TimeToExpiry: 1,
		RiskFreeRate: 5, OptionType: domain.Call,
	})
	require.ErrorIs(t, err, ErrNotConverged)
	assert.Equal(t, StatusNotConverged, StatusOf(err))
}
