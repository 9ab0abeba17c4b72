package models

import "github.com/shopspring/decimal"

// Product mirrors the backend's product resource. The backend speaks
// Portuguese field names on the wire (nome/preco/estoque).
type Product struct {
	ID    int             `json:"id"`
	Name  string          `json:"nome"`
	Price decimal.Decimal `json:"preco"`
	Stock int             `json:"estoque"`
}

// Available reports whether the product can be added to a cart.
// Out-of-stock products stay visible in the catalog.
func (p Product) Available() bool {
	return p.Stock > 0
}

// Sale is a completed sale as recorded by the backend. Items is an
// opaque string; the backend owns its format.
type Sale struct {
	ID    int             `json:"id"`
	Total decimal.Decimal `json:"total"`
	Items string          `json:"items"`
}
