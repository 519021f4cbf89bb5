package domain

import (
	"time"

	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

// Summary compara a receita do trimestre atual com a meta e com o trimestre anterior
type Summary struct {
	CurrentQuarterRevenue   float64 `json:"currentQuarterRevenue"`
	TargetRevenue           float64 `json:"targetRevenue"`
	GapPercent              float64 `json:"gapPercent"`
	ChangeVsPreviousQuarter float64 `json:"changeVsPreviousQuarter"`
}

// CalculateSummary calcula o resumo trimestral tendo now como referência
func CalculateSummary(deals []*Deal, targets []*Target, now time.Time) *Summary {
	currentQuarter := utils.QuarterOf(now)
	previousQuarter := currentQuarter.Previous()

	wonDeals := filterDealsByStatus(deals, DealStatusWon)
	currentRevenue := sumAmounts(dealsClosedInQuarter(wonDeals, currentQuarter))
	previousRevenue := sumAmounts(dealsClosedInQuarter(wonDeals, previousQuarter))

	targetRevenue := 0.0
	if target := ResolveTarget(targets, currentQuarter); target != nil {
		targetRevenue = target.Value
	}

	gapPercent := 0.0
	if targetRevenue > 0 {
		gapPercent = utils.Percent(targetRevenue-currentRevenue, targetRevenue)
	}

	return &Summary{
		CurrentQuarterRevenue:   utils.RoundWithTwoDecimalPlace(currentRevenue),
		TargetRevenue:           utils.RoundWithTwoDecimalPlace(targetRevenue),
		GapPercent:              utils.RoundWithTwoDecimalPlace(gapPercent),
		ChangeVsPreviousQuarter: utils.RoundWithTwoDecimalPlace(utils.Percent(currentRevenue-previousRevenue, previousRevenue)),
	}
}

// dealsClosedInQuarter filtra os deals cuja data de fechamento cai no trimestre.
// Datas ausentes ou inválidas ficam de fora.
func dealsClosedInQuarter(deals []*Deal, quarter utils.Quarter) []*Deal {
	filtered := make([]*Deal, 0)
	for _, deal := range deals {
		closed := utils.ParseDatePtr(deal.CloseDate)
		if closed != nil && quarter.Contains(*closed) {
			filtered = append(filtered, deal)
		}
	}
	return filtered
}
