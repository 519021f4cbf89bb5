package domain

import (
	"time"

	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

const (
	DefaultStaleDealDays   = 30
	DefaultLowActivityDays = 14
)

// RiskPolicy reúne os limites usados na detecção de riscos
type RiskPolicy struct {
	StaleDealDays   int
	LowActivityDays int
}

func DefaultRiskPolicy() RiskPolicy {
	return RiskPolicy{
		StaleDealDays:   DefaultStaleDealDays,
		LowActivityDays: DefaultLowActivityDays,
	}
}

// WithDefaults substitui valores não positivos pelos padrões
func (p RiskPolicy) WithDefaults() RiskPolicy {
	if p.StaleDealDays <= 0 {
		p.StaleDealDays = DefaultStaleDealDays
	}
	if p.LowActivityDays <= 0 {
		p.LowActivityDays = DefaultLowActivityDays
	}
	return p
}

type StaleDeal struct {
	ID        string  `json:"id"`
	Name      *string `json:"name"`
	Amount    float64 `json:"amount"`
	AccountID string  `json:"accountId"`
	RepID     string  `json:"repId"`
	DaysOpen  int     `json:"daysOpen"`
}

type UnderperformingRep struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	WinRate float64 `json:"winRate"`
}

type LowActivityAccount struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Segment *string `json:"segment"`
}

// RiskFactors agrupa os três tipos de risco detectados
type RiskFactors struct {
	StaleDeals          []StaleDeal          `json:"staleDeals"`
	UnderperformingReps []UnderperformingRep `json:"underperformingReps"`
	LowActivityAccounts []LowActivityAccount `json:"lowActivityAccounts"`
}

// DetectStaleDeals retorna os deals abertos há mais de staleDays dias.
// Deals sem data de criação válida não podem ser avaliados e são ignorados.
func DetectStaleDeals(deals []*Deal, now time.Time, staleDays int) []StaleDeal {
	staleDeals := make([]StaleDeal, 0)

	for _, deal := range filterDealsByStatus(deals, DealStatusOpen) {
		created := utils.ParseDate(deal.CreatedDate)
		if created == nil {
			continue
		}

		daysOpen := utils.DaysBetween(*created, now)
		if daysOpen <= staleDays {
			continue
		}

		staleDeals = append(staleDeals, StaleDeal{
			ID:        deal.ID,
			Name:      deal.Name,
			Amount:    deal.Amount,
			AccountID: deal.AccountID,
			RepID:     deal.RepID,
			DaysOpen:  daysOpen,
		})
	}

	return staleDeals
}

// DetectUnderperformingReps compara a taxa de conversão de cada vendedor com a média do time.
// A média do time é ponderada pelo volume: total ganho / total fechado, e não a média das taxas.
// Vendedores sem deals fechados nunca são sinalizados.
func DetectUnderperformingReps(reps []*Rep, counts []*RepDealCount) []UnderperformingRep {
	wonByRep := make(map[string]int)
	closedByRep := make(map[string]int)
	totalWon, totalClosed := 0, 0

	for _, count := range counts {
		if count == nil {
			continue
		}

		switch count.Status {
		case DealStatusWon:
			wonByRep[count.RepID] += count.Count
			totalWon += count.Count
		case DealStatusLost:
		default:
			continue
		}

		closedByRep[count.RepID] += count.Count
		totalClosed += count.Count
	}

	teamWinRate := utils.Percent(float64(totalWon), float64(totalClosed))

	underperforming := make([]UnderperformingRep, 0)
	for _, rep := range reps {
		if rep == nil {
			continue
		}

		closed := closedByRep[rep.ID]
		if closed == 0 {
			continue
		}

		winRate := utils.Percent(float64(wonByRep[rep.ID]), float64(closed))
		if winRate < teamWinRate {
			underperforming = append(underperforming, UnderperformingRep{
				ID:      rep.ID,
				Name:    rep.Name,
				WinRate: utils.RoundWithTwoDecimalPlace(winRate),
			})
		}
	}

	return underperforming
}

// LowActivityCutoff retorna o primeiro dia civil (UTC) da janela de atividade recente
func LowActivityCutoff(now time.Time, windowDays int) time.Time {
	return utils.StartOfDay(now.UTC().AddDate(0, 0, -windowDays))
}

// DetectLowActivityAccounts retorna as contas sem nenhuma atividade a partir do corte
// (now - windowDays, inclusivo). Atividades anteriores à janela não contam.
func DetectLowActivityAccounts(accounts []*Account, activities []*Activity, now time.Time, windowDays int) []LowActivityAccount {
	cutoff := LowActivityCutoff(now, windowDays)

	activeAccounts := make(map[string]struct{})
	for _, activity := range activities {
		if activity == nil {
			continue
		}

		date := utils.ParseDate(activity.Date)
		if date == nil {
			continue
		}

		if !utils.StartOfDay(date.UTC()).Before(cutoff) {
			activeAccounts[activity.AccountID] = struct{}{}
		}
	}

	lowActivity := make([]LowActivityAccount, 0)
	for _, account := range accounts {
		if account == nil {
			continue
		}

		if _, active := activeAccounts[account.ID]; active {
			continue
		}

		lowActivity = append(lowActivity, LowActivityAccount{
			ID:      account.ID,
			Name:    account.Name,
			Segment: account.Segment,
		})
	}

	return lowActivity
}

// DetectRiskFactors executa as três detecções com a mesma referência de tempo
func DetectRiskFactors(
	deals []*Deal,
	reps []*Rep,
	counts []*RepDealCount,
	accounts []*Account,
	activities []*Activity,
	now time.Time,
	policy RiskPolicy,
) *RiskFactors {
	policy = policy.WithDefaults()

	return &RiskFactors{
		StaleDeals:          DetectStaleDeals(deals, now, policy.StaleDealDays),
		UnderperformingReps: DetectUnderperformingReps(reps, counts),
		LowActivityAccounts: DetectLowActivityAccounts(accounts, activities, now, policy.LowActivityDays),
	}
}
