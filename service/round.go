package service

import (
	"math"

	"github.com/shopspring/decimal"
)

// roundTo rounds half away from zero to the given number of decimal places.
// Going through decimal avoids the binary representation error of
// math.Round(v*100)/100 on values such as 1.005.
func roundTo(value float64, places int32) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	f, _ := decimal.NewFromFloat(value).Round(places).Float64()
	if f == 0 {
		// drop negative zero
		return 0
	}
	return f
}

// roundTo2Decimals rounds currency amounts to cents.
func roundTo2Decimals(value float64) float64 {
	return roundTo(value, 2)
}

func roundTo1Decimal(value float64) float64 {
	return roundTo(value, 1)
}

func roundWhole(value float64) float64 {
	return roundTo(value, 0)
}
