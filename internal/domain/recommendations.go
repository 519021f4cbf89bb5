package domain

import "fmt"

const (
	MaxRecommendations = 5

	lowWinRateThreshold   = 50.0
	unknownSegment        = "Unknown"
	staleDealNameFallback = "open deals"

	teamWinRateRecommendation = "Consider team-wide win rate improvement initiatives"
	noRiskRecommendation      = "No specific risk factors identified; maintain current execution."
)

// BuildRecommendations monta a lista de ações recomendadas, em ordem de prioridade fixa:
// deals parados, vendedores abaixo da média, segmento com menos atividade e taxa de conversão do time.
// A lista é truncada em MaxRecommendations somente no final; a mensagem de fallback
// só entra quando nenhuma regra gerou recomendação.
func BuildRecommendations(risk *RiskFactors, drivers *Drivers, policy RiskPolicy) []string {
	policy = policy.WithDefaults()
	if risk == nil {
		risk = &RiskFactors{}
	}

	recommendations := make([]string, 0, MaxRecommendations)

	if len(risk.StaleDeals) > 0 {
		dealLabel := "deals"
		if len(risk.StaleDeals) == 1 {
			dealLabel = "deal"
		}

		example := staleDealNameFallback
		if name := risk.StaleDeals[0].Name; name != nil && *name != "" {
			example = *name
		}

		recommendations = append(recommendations, fmt.Sprintf(
			"Focus on %d stale %s older than %d days (e.g. %s)",
			len(risk.StaleDeals), dealLabel, policy.StaleDealDays, example,
		))
	}

	for _, rep := range risk.UnderperformingReps {
		recommendations = append(recommendations, fmt.Sprintf("Coach %s on win rate (current: %.1f%%)", rep.Name, rep.WinRate))
	}

	if segment, count, ok := topLowActivitySegment(risk.LowActivityAccounts); ok {
		recommendations = append(recommendations, fmt.Sprintf(
			"Increase activity for %s segment (%d accounts with no activity in last %d days)",
			segment, count, policy.LowActivityDays,
		))
	}

	if drivers != nil && drivers.WinRate < lowWinRateThreshold && len(recommendations) < MaxRecommendations {
		recommendations = append(recommendations, teamWinRateRecommendation)
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, noRiskRecommendation)
	}

	if len(recommendations) > MaxRecommendations {
		recommendations = recommendations[:MaxRecommendations]
	}

	return recommendations
}

// topLowActivitySegment agrupa as contas por segmento e retorna o de maior contagem.
// Em caso de empate vence o segmento encontrado primeiro.
func topLowActivitySegment(accounts []LowActivityAccount) (string, int, bool) {
	if len(accounts) == 0 {
		return "", 0, false
	}

	order := make([]string, 0)
	counts := make(map[string]int)
	for _, account := range accounts {
		segment := unknownSegment
		if account.Segment != nil {
			segment = *account.Segment
		}

		if _, seen := counts[segment]; !seen {
			order = append(order, segment)
		}
		counts[segment]++
	}

	topSegment := order[0]
	for _, segment := range order[1:] {
		if counts[segment] > counts[topSegment] {
			topSegment = segment
		}
	}

	return topSegment, counts[topSegment], true
}
