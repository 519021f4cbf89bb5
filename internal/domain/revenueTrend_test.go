package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateRevenueTrend(t *testing.T) {
	// referenceNow em março/2026: janela de outubro/2025 a março/2026
	deals := []*Deal{
		deal("D1", DealStatusWon, 1000, "2025-12-01", stringPtr("2026-01-05")),
		deal("D2", DealStatusWon, 500, "2025-12-01", stringPtr("2026-01-20T18:00:00Z")),
		deal("D3", DealStatusWon, 200, "2025-11-01", stringPtr("2025-12-31")),
		deal("D4", DealStatusLost, 800, "2026-01-01", stringPtr("2026-02-10")),
		deal("D5", DealStatusWon, 900, "2025-08-01", stringPtr("2025-09-30")),
		deal("D6", DealStatusWon, 900, "2026-01-01", stringPtr("2026-1-5")),
		deal("D7", DealStatusOpen, 900, "2026-01-01", nil),
	}
	expectedMonths := []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
	expectedRevenue := []float64{0, 0, 200, 1500, 0, 0}

	tests := []struct {
		name           string
		targets        []*Target
		expectedTarget []float64
	}{
		{
			name:           "Apenas meta do Q1 - meses sem meta usam a mais recente",
			targets:        []*Target{{ID: "T1", Quarter: "2026-Q1", Value: 300}},
			expectedTarget: []float64{100, 100, 100, 100, 100, 100},
		},
		{
			name: "Meta de cada trimestre dividida por três",
			targets: []*Target{
				{ID: "T1", Quarter: "2025-Q4", Value: 600},
				{ID: "T2", Quarter: "2026-Q1", Value: 900},
			},
			expectedTarget: []float64{200, 200, 200, 300, 300, 300},
		},
		{
			name: "Meta zerada no trimestre usa a mais recente com valor",
			targets: []*Target{
				{ID: "T1", Quarter: "2025-Q4", Value: 600},
				{ID: "T2", Quarter: "2026-Q1", Value: 0},
			},
			expectedTarget: []float64{200, 200, 200, 200, 200, 200},
		},
		{
			name:           "Meta mensal arredondada em duas casas",
			targets:        []*Target{{ID: "T1", Quarter: "2026-Q1", Value: 100}},
			expectedTarget: []float64{33.33, 33.33, 33.33, 33.33, 33.33, 33.33},
		},
		{
			name:           "Sem metas - série zerada",
			targets:        nil,
			expectedTarget: []float64{0, 0, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateRevenueTrend(deals, tt.targets, referenceNow)

			assert.Equal(t, expectedMonths, result.Months)
			assert.Equal(t, expectedRevenue, result.Revenue)
			assert.Equal(t, tt.expectedTarget, result.Target)
		})
	}
}

func TestCalculateRevenueTrend_SemDeals(t *testing.T) {
	result := CalculateRevenueTrend(nil, nil, referenceNow)

	assert.Len(t, result.Months, TrendMonthCount)
	assert.Len(t, result.Revenue, TrendMonthCount)
	assert.Len(t, result.Target, TrendMonthCount)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, result.Revenue)
}
