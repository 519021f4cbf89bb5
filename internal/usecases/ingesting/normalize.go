package ingesting

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

const unknownName = "Unknown"

// Prefixos dos identificadores gerados para linhas sem id
const (
	accountIDPrefix  = "acc"
	repIDPrefix      = "rep"
	dealIDPrefix     = "deal"
	activityIDPrefix = "act"
)

// IDGenerator gera um identificador de fallback a partir de um prefixo
type IDGenerator func(prefix string) (string, error)

// Normalizer converte as linhas cruas no dataset canônico
type Normalizer struct {
	generateID IDGenerator
}

func NewNormalizer(generateID IDGenerator) *Normalizer {
	if generateID == nil {
		generateID = utils.GeneratePrefixedID
	}
	return &Normalizer{generateID: generateID}
}

// Normalize aplica as regras de carga. today é usado como data das linhas sem data.
// Linhas sem referência válida (conta, vendedor) são descartadas e contabilizadas no relatório.
func (n *Normalizer) Normalize(raw *RawDataset, today time.Time) (*domain.Dataset, *domain.IngestionReport, error) {
	if raw == nil {
		raw = &RawDataset{}
	}

	report := &domain.IngestionReport{}
	todayStr := today.Format(time.DateOnly)

	accounts, err := n.normalizeAccounts(raw.Accounts, &report.Accounts)
	if err != nil {
		return nil, nil, err
	}

	reps, err := n.normalizeReps(raw.Reps, &report.Reps)
	if err != nil {
		return nil, nil, err
	}

	accountIDs := make(map[string]struct{}, len(accounts))
	for _, account := range accounts {
		accountIDs[account.ID] = struct{}{}
	}

	repIDs := make(map[string]struct{}, len(reps))
	for _, rep := range reps {
		repIDs[rep.ID] = struct{}{}
	}

	deals, err := n.normalizeDeals(raw.Deals, accountIDs, repIDs, todayStr, &report.Deals)
	if err != nil {
		return nil, nil, err
	}

	dealAccounts := make(map[string]string, len(deals))
	for _, deal := range deals {
		dealAccounts[deal.ID] = deal.AccountID
	}

	activities, err := n.normalizeActivities(raw.Activities, accountIDs, dealAccounts, todayStr, &report.Activities)
	if err != nil {
		return nil, nil, err
	}

	targets := normalizeTargets(raw.Targets, &report.Targets)

	return &domain.Dataset{
		Accounts:   accounts,
		Reps:       reps,
		Deals:      deals,
		Activities: activities,
		Targets:    targets,
	}, report, nil
}

func (n *Normalizer) resolveID(prefix string, stats *domain.IngestionEntityReport, candidates ...*string) (string, error) {
	if id := firstNonEmpty(candidates...); id != "" {
		return id, nil
	}

	id, err := n.generateID(prefix)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar id com prefixo %s: %w", prefix, err)
	}
	stats.GeneratedID++

	return id, nil
}

func (n *Normalizer) normalizeAccounts(rows []RawAccount, stats *domain.IngestionEntityReport) ([]*domain.Account, error) {
	accounts := make([]*domain.Account, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		stats.Received++

		id, err := n.resolveID(accountIDPrefix, stats, row.ID, row.AccountID)
		if err != nil {
			return nil, err
		}

		if _, duplicated := seen[id]; duplicated {
			stats.Dropped++
			continue
		}
		seen[id] = struct{}{}

		accounts = append(accounts, &domain.Account{
			ID:      id,
			Name:    nameOrUnknown(row.Name),
			Segment: nonEmptyPtr(row.Segment),
		})
		stats.Loaded++
	}

	return accounts, nil
}

func (n *Normalizer) normalizeReps(rows []RawRep, stats *domain.IngestionEntityReport) ([]*domain.Rep, error) {
	reps := make([]*domain.Rep, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		stats.Received++

		id, err := n.resolveID(repIDPrefix, stats, row.ID, row.RepID)
		if err != nil {
			return nil, err
		}

		if _, duplicated := seen[id]; duplicated {
			stats.Dropped++
			continue
		}
		seen[id] = struct{}{}

		reps = append(reps, &domain.Rep{
			ID:   id,
			Name: nameOrUnknown(row.Name),
		})
		stats.Loaded++
	}

	return reps, nil
}

func (n *Normalizer) normalizeDeals(
	rows []RawDeal,
	accountIDs map[string]struct{},
	repIDs map[string]struct{},
	today string,
	stats *domain.IngestionEntityReport,
) ([]*domain.Deal, error) {
	deals := make([]*domain.Deal, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		stats.Received++

		accountID := firstNonEmpty(row.AccountID, row.AccountIDAlt)
		repID := firstNonEmpty(row.RepID, row.RepIDAlt)
		if !contains(accountIDs, accountID) || !contains(repIDs, repID) {
			stats.Dropped++
			continue
		}

		id, err := n.resolveID(dealIDPrefix, stats, row.ID, row.DealID)
		if err != nil {
			return nil, err
		}

		if _, duplicated := seen[id]; duplicated {
			stats.Dropped++
			continue
		}
		seen[id] = struct{}{}

		createdDate := firstNonEmpty(row.CreatedDate, row.CreatedAt)
		if createdDate == "" {
			createdDate = today
		}

		var closeDate *string
		if value := firstNonEmpty(row.CloseDate, row.ClosedAt); value != "" {
			closeDate = &value
		}

		deals = append(deals, &domain.Deal{
			ID:          id,
			AccountID:   accountID,
			RepID:       repID,
			Name:        nonEmptyPtr(row.Name),
			Amount:      numberOrZero(row.Amount),
			Status:      StageToStatus(row.Stage),
			CreatedDate: createdDate,
			CloseDate:   closeDate,
		})
		stats.Loaded++
	}

	return deals, nil
}

func (n *Normalizer) normalizeActivities(
	rows []RawActivity,
	accountIDs map[string]struct{},
	dealAccounts map[string]string,
	today string,
	stats *domain.IngestionEntityReport,
) ([]*domain.Activity, error) {
	activities := make([]*domain.Activity, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		stats.Received++

		// Atividades sem conta herdam a conta do deal
		accountID := firstNonEmpty(row.AccountID)
		if accountID == "" {
			accountID = dealAccounts[firstNonEmpty(row.DealID)]
		}

		if !contains(accountIDs, accountID) {
			stats.Dropped++
			continue
		}

		id, err := n.resolveID(activityIDPrefix, stats, row.ID, row.ActivityID)
		if err != nil {
			return nil, err
		}

		if _, duplicated := seen[id]; duplicated {
			stats.Dropped++
			continue
		}
		seen[id] = struct{}{}

		date := firstNonEmpty(row.Date, row.Timestamp)
		if date == "" {
			date = today
		}

		activities = append(activities, &domain.Activity{
			ID:        id,
			AccountID: accountID,
			Date:      date,
			Type:      nonEmptyPtr(row.Type),
		})
		stats.Loaded++
	}

	return activities, nil
}

// normalizeTargets soma as metas por trimestre. Metas mensais (YYYY-MM) entram no trimestre do mês.
// O id da meta é o próprio rótulo do trimestre.
func normalizeTargets(rows []RawTarget, stats *domain.IngestionEntityReport) []*domain.Target {
	order := make([]string, 0)
	sums := make(map[string]float64)

	for _, row := range rows {
		stats.Received++

		quarter := firstNonEmpty(row.Quarter)
		if quarter == "" {
			month := firstNonEmpty(row.Month)
			q, ok := utils.QuarterFromMonthKey(month)
			if !ok {
				stats.Dropped++
				continue
			}
			quarter = q.String()
		}

		value := numberOrZero(row.Value)
		if _, isNumber := toFloat(row.Value); !isNumber {
			value = numberOrZero(row.Target)
		}

		if _, exists := sums[quarter]; !exists {
			order = append(order, quarter)
		}
		sums[quarter] += value
	}

	targets := make([]*domain.Target, 0, len(order))
	for _, quarter := range order {
		targets = append(targets, &domain.Target{
			ID:      quarter,
			Quarter: quarter,
			Value:   utils.RoundWithTwoDecimalPlace(sums[quarter]),
		})
	}
	stats.Loaded = len(targets)

	return targets
}

// StageToStatus mapeia o estágio do CRM: "Closed Won" vira won, "Closed Lost" vira lost, o resto fica open
func StageToStatus(stage *string) domain.DealStatus {
	if stage == nil {
		return domain.DealStatusOpen
	}

	s := strings.ToLower(*stage)
	switch {
	case strings.Contains(s, "closed") && strings.Contains(s, "won"):
		return domain.DealStatusWon
	case strings.Contains(s, "closed") && strings.Contains(s, "lost"):
		return domain.DealStatusLost
	default:
		return domain.DealStatusOpen
	}
}

func firstNonEmpty(values ...*string) string {
	for _, value := range values {
		if value == nil {
			continue
		}
		if trimmed := strings.TrimSpace(*value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func nonEmptyPtr(value *string) *string {
	if trimmed := firstNonEmpty(value); trimmed != "" {
		return &trimmed
	}
	return nil
}

func nameOrUnknown(name *string) string {
	if value := firstNonEmpty(name); value != "" {
		return value
	}
	return unknownName
}

func contains(ids map[string]struct{}, id string) bool {
	if id == "" {
		return false
	}
	_, ok := ids[id]
	return ok
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// numberOrZero aceita somente números JSON; textos, nulos e objetos viram zero
func numberOrZero(value any) float64 {
	f, _ := toFloat(value)
	return f
}
