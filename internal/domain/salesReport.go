package domain

import "time"

// SalesReport é o fato de vendas semanal: unidades vendidas de um SKU em uma
// loja na semana iniciada em WeekStart (sempre uma segunda-feira).
// A chave natural é (user_id, sku_id, store_id, week_start); reimportações
// substituem o valor de unidades (upsert, último valor vence).
type SalesReport struct {
	ID        int       `json:"id"`
	UserID    int       `json:"-"`
	SKUID     string    `json:"sku_id"`
	StoreID   string    `json:"store_id"`
	WeekStart string    `json:"week_start"` // Formato yyyy-mm-dd
	UnitsSold float64   `json:"units_sold"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
