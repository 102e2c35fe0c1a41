package model

import "time"

// Category represents a spending category. Built-in categories are seeded
// once at first run and cannot be deleted; they participate in keyword
// matching identically to user categories.
type Category struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Color     string    `json:"color"`
	Keywords  []string  `json:"keywords"`
	Priority  int       `json:"prioridad"`
	BuiltIn   bool      `json:"es_predefinida"`
}
