package model

import "time"

// Movement is a persisted money event. Bulk recategorization may rewrite
// CategoryID; every other field is immutable once stored.
type Movement struct {
	Date           time.Time `json:"fecha"`
	CreatedAt      time.Time `json:"created_at"`
	ID             string    `json:"id"`
	Description    string    `json:"descripcion"`
	Merchant       string    `json:"comercio"`
	Currency       string    `json:"moneda"`
	CategoryID     string    `json:"categoria_id"`
	Intent         Intent    `json:"intent"`
	Amount         float64   `json:"monto"`
	IsSubscription bool      `json:"es_suscripcion"`
}
