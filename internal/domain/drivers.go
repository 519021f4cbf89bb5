package domain

import "github.com/vfg2006/revenue-intelligence-api/pkg/utils"

// Drivers são os quatro indicadores que movem a receita
type Drivers struct {
	PipelineSize    float64 `json:"pipelineSize"`
	WinRate         float64 `json:"winRate"`
	AverageDealSize float64 `json:"averageDealSize"`
	SalesCycleTime  float64 `json:"salesCycleTime"` // Em dias
}

// CalculateDrivers calcula os indicadores a partir de todos os deals.
// Nunca falha: sem dados elegíveis cada indicador vale zero.
func CalculateDrivers(deals []*Deal) *Drivers {
	openDeals := filterDealsByStatus(deals, DealStatusOpen)
	wonDeals := filterDealsByStatus(deals, DealStatusWon)
	lostDeals := filterDealsByStatus(deals, DealStatusLost)

	closedCount := len(wonDeals) + len(lostDeals)
	winRate := utils.Percent(float64(len(wonDeals)), float64(closedCount))

	averageDealSize := 0.0
	if len(wonDeals) > 0 {
		averageDealSize = sumAmounts(wonDeals) / float64(len(wonDeals))
	}

	return &Drivers{
		PipelineSize:    utils.RoundWithTwoDecimalPlace(sumAmounts(openDeals)),
		WinRate:         utils.RoundWithTwoDecimalPlace(winRate),
		AverageDealSize: utils.RoundWithTwoDecimalPlace(averageDealSize),
		SalesCycleTime:  utils.RoundWithOneDecimalPlace(averageSalesCycle(wonDeals)),
	}
}

// averageSalesCycle é a média de dias entre criação e fechamento.
// Deals com alguma data ausente ou inválida ficam fora da média.
func averageSalesCycle(wonDeals []*Deal) float64 {
	totalDays := 0
	eligible := 0

	for _, deal := range wonDeals {
		created := utils.ParseDate(deal.CreatedDate)
		closed := utils.ParseDatePtr(deal.CloseDate)
		if created == nil || closed == nil {
			continue
		}

		totalDays += utils.DaysBetween(*created, *closed)
		eligible++
	}

	if eligible == 0 {
		return 0
	}

	return float64(totalDays) / float64(eligible)
}
