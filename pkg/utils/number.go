package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// Percent retorna 100 * part / total, ou 0 quando total é zero
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}

	return part / total * 100
}
