package domain

import (
	"time"

	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

const TrendMonthCount = 6

// RevenueTrend contém séries paralelas (do mês mais antigo ao atual) de receita e meta mensal
type RevenueTrend struct {
	Months  []string  `json:"months"`
	Revenue []float64 `json:"revenue"`
	Target  []float64 `json:"target"`
}

// CalculateRevenueTrend calcula a receita ganha por mês nos últimos TrendMonthCount meses
// e a meta mensal (meta do trimestre dividida por 3).
func CalculateRevenueTrend(deals []*Deal, targets []*Target, now time.Time) *RevenueTrend {
	months := utils.LastMonths(now, TrendMonthCount)

	revenueByMonth := make(map[string][]*Deal)
	for _, deal := range filterDealsByStatus(deals, DealStatusWon) {
		closed := utils.ParseDatePtr(deal.CloseDate)
		if closed == nil {
			continue
		}

		key := utils.MonthKey(*closed)
		revenueByMonth[key] = append(revenueByMonth[key], deal)
	}

	targetByQuarter := make(map[utils.Quarter]float64)
	for _, target := range targets {
		if target == nil {
			continue
		}

		quarter, ok := utils.ParseQuarter(target.Quarter)
		if !ok {
			continue
		}
		targetByQuarter[quarter] = target.Value
	}
	fallbackTarget := latestMonthlyTarget(targetByQuarter)

	trend := &RevenueTrend{
		Months:  make([]string, 0, len(months)),
		Revenue: make([]float64, 0, len(months)),
		Target:  make([]float64, 0, len(months)),
	}

	for _, month := range months {
		monthlyTarget := fallbackTarget
		if quarterTarget, ok := targetByQuarter[utils.QuarterOf(month)]; ok && quarterTarget > 0 {
			monthlyTarget = quarterTarget / 3
		}

		trend.Months = append(trend.Months, utils.MonthLabel(month))
		trend.Revenue = append(trend.Revenue, utils.RoundWithTwoDecimalPlace(sumAmounts(revenueByMonth[utils.MonthKey(month)])))
		trend.Target = append(trend.Target, utils.RoundWithTwoDecimalPlace(monthlyTarget))
	}

	return trend
}

// latestMonthlyTarget retorna a meta mensal do trimestre mais recente que possui meta
func latestMonthlyTarget(targetByQuarter map[utils.Quarter]float64) float64 {
	var latest utils.Quarter
	found := false

	for quarter, value := range targetByQuarter {
		if value <= 0 {
			continue
		}

		if !found || latest.Before(quarter) {
			latest = quarter
			found = true
		}
	}

	if !found {
		return 0
	}

	return targetByQuarter[latest] / 3
}
