package domain

import "time"

// Activity representa um ponto de contato com uma conta
type Activity struct {
	ID        string  `json:"id"`
	AccountID string  `json:"accountId"`
	Date      string  `json:"date"` // Formato YYYY-MM-DD
	Type      *string `json:"type"`
}

// ActivityFilter define os filtros aceitos na listagem de atividades
type ActivityFilter struct {
	DateFrom *time.Time // Inclusivo, comparado por dia civil
}
