package pricing

import "github.com/shopspring/decimal"

// RoundToStep rounds value half away from zero to the nearest multiple of step.
// A non-positive step leaves value untouched.
func RoundToStep(value, step float64) float64 {
	return roundDecimal(decimal.NewFromFloat(value), step).InexactFloat64()
}

func roundDecimal(value decimal.Decimal, step float64) decimal.Decimal {
	if step <= 0 {
		return value
	}
	s := decimal.NewFromFloat(step)
	return value.Div(s).Round(0).Mul(s)
}
