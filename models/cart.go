package models

import "github.com/shopspring/decimal"

// CartItem is one cart line. Name, UnitPrice and StockSnapshot are
// copied from the product at the moment it is added and are not
// re-synced until the catalog is refetched, so a line can go stale if
// the backend changes underneath it. The json tags double as the wire
// format of the cart snapshot file.
type CartItem struct {
	ProductID     int             `json:"product_id"`
	Quantity      int             `json:"quantity"`
	Name          string          `json:"nome"`
	UnitPrice     decimal.Decimal `json:"preco"`
	StockSnapshot int             `json:"estoque"`
}

// Subtotal returns UnitPrice * Quantity for this line.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
