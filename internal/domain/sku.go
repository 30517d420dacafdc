// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// SKU representa um produto rastreado pelo usuário
type SKU struct {
	ID        string    `json:"id"`
	UserID    int       `json:"-"`
	Name      string    `json:"name"`
	SKUCode   *string   `json:"sku_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
