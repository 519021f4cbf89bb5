package domain

import "time"

func stringPtr(s string) *string {
	return &s
}

func deal(id string, status DealStatus, amount float64, createdDate string, closeDate *string) *Deal {
	return &Deal{
		ID:          id,
		AccountID:   "ACC001",
		RepID:       "REP001",
		Amount:      amount,
		Status:      status,
		CreatedDate: createdDate,
		CloseDate:   closeDate,
	}
}

// referenceNow é a data de referência usada pelos testes: 15 de março de 2026 ao meio-dia (UTC)
var referenceNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
