package domain

import "time"

// Store representa uma loja física (porta de varejo) onde os produtos são vendidos.
// O campo Retailer é inferido a partir do nome da loja no momento da criação
// e não é reavaliado depois.
type Store struct {
	ID        string    `json:"id"`
	UserID    int       `json:"-"`
	Name      string    `json:"name"`
	Retailer  string    `json:"retailer"`
	Location  *string   `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
