package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundWithSixDecimalPlace arredonda com a precisão usada na assinatura de
// vendas duplicadas
func RoundWithSixDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*1e6) / 1e6
}
