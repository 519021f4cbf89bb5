package domain

type DealStatus string

const (
	DealStatusOpen DealStatus = "open"
	DealStatusWon  DealStatus = "won"
	DealStatusLost DealStatus = "lost"
)

// ClosedDealStatuses são os status considerados no cálculo de taxa de conversão
var ClosedDealStatuses = []DealStatus{DealStatusWon, DealStatusLost}

// Deal representa uma oportunidade de venda. O núcleo lê apenas o status atual.
type Deal struct {
	ID          string     `json:"id"`
	AccountID   string     `json:"accountId"`
	RepID       string     `json:"repId"`
	Name        *string    `json:"name"`
	Amount      float64    `json:"amount"`
	Status      DealStatus `json:"status"`
	CreatedDate string     `json:"createdDate"` // Formato YYYY-MM-DD
	CloseDate   *string    `json:"closeDate"`   // Formato YYYY-MM-DD, ausente em deals abertos
}

// DealFilter define os filtros aceitos na listagem de deals
type DealFilter struct {
	Statuses []DealStatus
}

// RepDealCount é uma linha do agrupamento de deals por vendedor e status
type RepDealCount struct {
	RepID  string     `json:"repId"`
	Status DealStatus `json:"status"`
	Count  int        `json:"count"`
}

func filterDealsByStatus(deals []*Deal, status DealStatus) []*Deal {
	filtered := make([]*Deal, 0, len(deals))
	for _, deal := range deals {
		if deal != nil && deal.Status == status {
			filtered = append(filtered, deal)
		}
	}
	return filtered
}
