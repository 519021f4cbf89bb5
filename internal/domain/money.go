package domain

import "github.com/shopspring/decimal"

// sumAmounts soma os valores dos deals em decimal para não acumular erro de ponto flutuante
func sumAmounts(deals []*Deal) float64 {
	total := decimal.Zero
	for _, deal := range deals {
		total = total.Add(decimal.NewFromFloat(deal.Amount))
	}
	return total.InexactFloat64()
}
