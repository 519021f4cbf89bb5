package ingesting

// Linhas cruas dos arquivos de carga. Cada campo aceita as duas grafias
// encontradas nas exportações do CRM (camelCase e snake_case).

type RawAccount struct {
	ID        *string `json:"id"`
	AccountID *string `json:"account_id"`
	Name      *string `json:"name"`
	Segment   *string `json:"segment"`
}

type RawRep struct {
	ID    *string `json:"id"`
	RepID *string `json:"rep_id"`
	Name  *string `json:"name"`
}

type RawDeal struct {
	ID           *string `json:"id"`
	DealID       *string `json:"deal_id"`
	Name         *string `json:"name"`
	AccountID    *string `json:"accountId"`
	AccountIDAlt *string `json:"account_id"`
	RepID        *string `json:"repId"`
	RepIDAlt     *string `json:"rep_id"`
	Stage        *string `json:"stage"`
	Amount       any     `json:"amount"`
	CreatedDate  *string `json:"createdDate"`
	CreatedAt    *string `json:"created_at"`
	CloseDate    *string `json:"closeDate"`
	ClosedAt     *string `json:"closed_at"`
}

type RawActivity struct {
	ID         *string `json:"id"`
	ActivityID *string `json:"activity_id"`
	AccountID  *string `json:"accountId"`
	DealID     *string `json:"deal_id"`
	Date       *string `json:"date"`
	Timestamp  *string `json:"timestamp"`
	Type       *string `json:"type"`
}

type RawTarget struct {
	ID      *string `json:"id"`
	Quarter *string `json:"quarter"`
	Month   *string `json:"month"`
	Value   any     `json:"value"`
	Target  any     `json:"target"`
}

// RawDataset é o conteúdo dos cinco arquivos de carga
type RawDataset struct {
	Accounts   []RawAccount
	Reps       []RawRep
	Deals      []RawDeal
	Activities []RawActivity
	Targets    []RawTarget
}
