package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectStaleDeals(t *testing.T) {
	tests := []struct {
		name     string
		deals    []*Deal
		validate func(t *testing.T, result []StaleDeal)
	}{
		{
			name: "Deal aberto há mais de 30 dias - deve ser sinalizado",
			deals: []*Deal{
				{ID: "D1", Name: stringPtr("Renovação ACME"), Amount: 5000, AccountID: "ACC001", RepID: "REP001", Status: DealStatusOpen, CreatedDate: "2026-02-01"},
			},
			validate: func(t *testing.T, result []StaleDeal) {
				require.Len(t, result, 1)
				assert.Equal(t, "D1", result[0].ID)
				assert.Equal(t, "Renovação ACME", *result[0].Name)
				assert.Equal(t, 5000.0, result[0].Amount)
				assert.Equal(t, "ACC001", result[0].AccountID)
				assert.Equal(t, "REP001", result[0].RepID)
				assert.Equal(t, 42, result[0].DaysOpen)
			},
		},
		{
			name: "Exatamente 30 dias - não é parado (limite estrito)",
			deals: []*Deal{
				deal("D1", DealStatusOpen, 100, "2026-02-13", nil),
			},
			validate: func(t *testing.T, result []StaleDeal) {
				assert.Empty(t, result)
			},
		},
		{
			name: "31 dias - é parado",
			deals: []*Deal{
				deal("D1", DealStatusOpen, 100, "2026-02-12", nil),
			},
			validate: func(t *testing.T, result []StaleDeal) {
				require.Len(t, result, 1)
				assert.Equal(t, 31, result[0].DaysOpen)
			},
		},
		{
			name: "Data de criação com hora separada por espaço é avaliada",
			deals: []*Deal{
				deal("D1", DealStatusOpen, 100, "2026-02-12 08:00:00", nil),
			},
			validate: func(t *testing.T, result []StaleDeal) {
				require.Len(t, result, 1)
				assert.Equal(t, 31, result[0].DaysOpen)
			},
		},
		{
			name: "Deals fechados e datas inválidas são ignorados",
			deals: []*Deal{
				deal("D1", DealStatusWon, 100, "2025-01-01", stringPtr("2025-02-01")),
				deal("D2", DealStatusLost, 100, "2025-01-01", stringPtr("2025-02-01")),
				deal("D3", DealStatusOpen, 100, "", nil),
				deal("D4", DealStatusOpen, 100, "ontem", nil),
			},
			validate: func(t *testing.T, result []StaleDeal) {
				assert.NotNil(t, result)
				assert.Empty(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, DetectStaleDeals(tt.deals, referenceNow, DefaultStaleDealDays))
		})
	}
}

func TestDetectUnderperformingReps(t *testing.T) {
	reps := []*Rep{
		{ID: "REP_A", Name: "Ana"},
		{ID: "REP_B", Name: "Bruno"},
		{ID: "REP_C", Name: "Carla"},
	}

	tests := []struct {
		name     string
		counts   []*RepDealCount
		validate func(t *testing.T, result []UnderperformingRep)
	}{
		{
			name: "A com 2 ganhos e B com 2 perdas - média 50%, apenas B sinalizado",
			counts: []*RepDealCount{
				{RepID: "REP_A", Status: DealStatusWon, Count: 2},
				{RepID: "REP_B", Status: DealStatusLost, Count: 2},
			},
			validate: func(t *testing.T, result []UnderperformingRep) {
				require.Len(t, result, 1)
				assert.Equal(t, "REP_B", result[0].ID)
				assert.Equal(t, "Bruno", result[0].Name)
				assert.Equal(t, 0.0, result[0].WinRate)
			},
		},
		{
			name: "Média ponderada pelo volume e não média simples das taxas",
			counts: []*RepDealCount{
				// A: 9/10 = 90%, B: 1/2 = 50%, C: 0/1 = 0%
				// Ponderada: 10/13 = 76.9% | Simples: 46.7%
				{RepID: "REP_A", Status: DealStatusWon, Count: 9},
				{RepID: "REP_A", Status: DealStatusLost, Count: 1},
				{RepID: "REP_B", Status: DealStatusWon, Count: 1},
				{RepID: "REP_B", Status: DealStatusLost, Count: 1},
				{RepID: "REP_C", Status: DealStatusLost, Count: 1},
			},
			validate: func(t *testing.T, result []UnderperformingRep) {
				require.Len(t, result, 2)
				assert.Equal(t, "REP_B", result[0].ID)
				assert.Equal(t, 50.0, result[0].WinRate)
				assert.Equal(t, "REP_C", result[1].ID)
			},
		},
		{
			name: "Vendedor sem deals fechados não é sinalizado",
			counts: []*RepDealCount{
				{RepID: "REP_A", Status: DealStatusWon, Count: 1},
				{RepID: "REP_A", Status: DealStatusLost, Count: 1},
			},
			validate: func(t *testing.T, result []UnderperformingRep) {
				assert.Empty(t, result)
			},
		},
		{
			name: "Taxa igual à média não é sinalizada",
			counts: []*RepDealCount{
				{RepID: "REP_A", Status: DealStatusWon, Count: 1},
				{RepID: "REP_A", Status: DealStatusLost, Count: 1},
				{RepID: "REP_B", Status: DealStatusWon, Count: 2},
				{RepID: "REP_B", Status: DealStatusLost, Count: 2},
			},
			validate: func(t *testing.T, result []UnderperformingRep) {
				assert.Empty(t, result)
			},
		},
		{
			name: "Linhas de deals abertos são ignoradas no agrupamento",
			counts: []*RepDealCount{
				{RepID: "REP_A", Status: DealStatusWon, Count: 1},
				{RepID: "REP_B", Status: DealStatusOpen, Count: 10},
			},
			validate: func(t *testing.T, result []UnderperformingRep) {
				assert.Empty(t, result)
			},
		},
		{
			name: "Vendedor fora do cadastro entra na média mas não é listado",
			counts: []*RepDealCount{
				{RepID: "REP_A", Status: DealStatusWon, Count: 1},
				{RepID: "REP_A", Status: DealStatusLost, Count: 1},
				{RepID: "REP_X", Status: DealStatusWon, Count: 8},
			},
			validate: func(t *testing.T, result []UnderperformingRep) {
				require.Len(t, result, 1)
				assert.Equal(t, "REP_A", result[0].ID)
			},
		},
		{
			name:   "Sem agrupamento - lista vazia",
			counts: nil,
			validate: func(t *testing.T, result []UnderperformingRep) {
				assert.NotNil(t, result)
				assert.Empty(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, DetectUnderperformingReps(reps, tt.counts))
		})
	}
}

func TestDetectLowActivityAccounts(t *testing.T) {
	accounts := []*Account{
		{ID: "X", Name: "Conta X", Segment: stringPtr("Enterprise")},
		{ID: "Y", Name: "Conta Y", Segment: stringPtr("SMB")},
		{ID: "Z", Name: "Conta Z"},
	}

	daysAgo := func(days int) string {
		return referenceNow.AddDate(0, 0, -days).Format(time.DateOnly)
	}

	tests := []struct {
		name       string
		activities []*Activity
		expected   []string
	}{
		{
			name: "Atividade há 20 dias fica fora da janela; há 5 dias fica dentro",
			activities: []*Activity{
				{ID: "A1", AccountID: "X", Date: daysAgo(20)},
				{ID: "A2", AccountID: "Y", Date: daysAgo(5)},
			},
			expected: []string{"X", "Z"},
		},
		{
			name: "Atividade exatamente no dia de corte conta como recente",
			activities: []*Activity{
				{ID: "A1", AccountID: "X", Date: daysAgo(14)},
				{ID: "A2", AccountID: "Y", Date: daysAgo(15)},
			},
			expected: []string{"Y", "Z"},
		},
		{
			name: "Histórico antigo não compensa falta de atividade recente",
			activities: []*Activity{
				{ID: "A1", AccountID: "Z", Date: daysAgo(100)},
				{ID: "A2", AccountID: "Z", Date: daysAgo(30)},
				{ID: "A3", AccountID: "X", Date: daysAgo(1)},
				{ID: "A4", AccountID: "Y", Date: daysAgo(0)},
			},
			expected: []string{"Z"},
		},
		{
			name: "Atividade com data inválida não conta",
			activities: []*Activity{
				{ID: "A1", AccountID: "X", Date: "sem-data"},
				{ID: "A2", AccountID: "Y", Date: daysAgo(2)},
				{ID: "A3", AccountID: "Z", Date: daysAgo(2)},
			},
			expected: []string{"X"},
		},
		{
			name:       "Sem atividades - todas as contas aparecem",
			activities: nil,
			expected:   []string{"X", "Y", "Z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectLowActivityAccounts(accounts, tt.activities, referenceNow, DefaultLowActivityDays)

			ids := make([]string, 0, len(result))
			for _, account := range result {
				ids = append(ids, account.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestDetectLowActivityAccounts_SemContas(t *testing.T) {
	result := DetectLowActivityAccounts(nil, nil, referenceNow, DefaultLowActivityDays)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestLowActivityCutoff(t *testing.T) {
	cutoff := LowActivityCutoff(referenceNow, 14)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), cutoff)
}

func TestDetectRiskFactors_PoliticaCustomizada(t *testing.T) {
	deals := []*Deal{deal("D1", DealStatusOpen, 100, "2026-03-01", nil)}

	defaults := DetectRiskFactors(deals, nil, nil, nil, nil, referenceNow, RiskPolicy{})
	assert.Empty(t, defaults.StaleDeals)

	custom := DetectRiskFactors(deals, nil, nil, nil, nil, referenceNow, RiskPolicy{StaleDealDays: 7})
	require.Len(t, custom.StaleDeals, 1)
	assert.Equal(t, 14, custom.StaleDeals[0].DaysOpen)
}

func TestRiskPolicy_WithDefaults(t *testing.T) {
	assert.Equal(t, DefaultRiskPolicy(), RiskPolicy{}.WithDefaults())
	assert.Equal(t, RiskPolicy{StaleDealDays: 45, LowActivityDays: 14}, RiskPolicy{StaleDealDays: 45}.WithDefaults())
}
