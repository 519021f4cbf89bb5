package domain

// Dataset é o conjunto canônico de registros produzido por uma carga (ingestão)
type Dataset struct {
	Accounts   []*Account
	Reps       []*Rep
	Deals      []*Deal
	Activities []*Activity
	Targets    []*Target
}

// IngestionEntityReport contabiliza o resultado da normalização de um tipo de registro
type IngestionEntityReport struct {
	Received    int `json:"received"`
	Loaded      int `json:"loaded"`
	Dropped     int `json:"dropped"`
	GeneratedID int `json:"generated_id"`
}

// IngestionReport resume uma carga completa
type IngestionReport struct {
	Accounts   IngestionEntityReport `json:"accounts"`
	Reps       IngestionEntityReport `json:"reps"`
	Deals      IngestionEntityReport `json:"deals"`
	Activities IngestionEntityReport `json:"activities"`
	Targets    IngestionEntityReport `json:"targets"`
}
