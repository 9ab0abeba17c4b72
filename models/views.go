package models

// View models rebuilt from application state after every mutation.
// Rendering technology is out of scope; these are the full view state.

const (
	StockLow    = "low"    // under 5 units
	StockMedium = "medium" // under 10 units
	StockHigh   = "high"
)

// StockLevel buckets a stock count for display emphasis.
func StockLevel(stock int) string {
	switch {
	case stock < 5:
		return StockLow
	case stock < 10:
		return StockMedium
	default:
		return StockHigh
	}
}

type CatalogCard struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	PriceLabel string `json:"price_label"`
	Stock      int    `json:"stock"`
	StockLevel string `json:"stock_level"`
	Available  bool   `json:"available"`
}

type CatalogView struct {
	Products []CatalogCard `json:"products"`
	Empty    bool          `json:"empty"`
	Error    string        `json:"error,omitempty"`
}

type CartLine struct {
	Index         int    `json:"index"`
	Name          string `json:"name"`
	UnitPrice     string `json:"unit_price"`
	Quantity      int    `json:"quantity"`
	SubtotalLabel string `json:"subtotal_label"`
}

type CartView struct {
	Items           []CartLine `json:"items"`
	TotalLabel      string     `json:"total_label"`
	Badge           int        `json:"badge"`
	Empty           bool       `json:"empty"`
	CheckoutEnabled bool       `json:"checkout_enabled"`
}

// PaymentView mirrors the payment section: which detail block is
// visible and, for PIX, the live preview of the cart total.
type PaymentView struct {
	Method         string `json:"method"`
	ShowPixDetails bool   `json:"show_pix_details"`
	ShowCardInputs bool   `json:"show_card_inputs"`
	PixAmountLabel string `json:"pix_amount_label,omitempty"`
}

type ReceiptLine struct {
	Quantity      int    `json:"quantity"`
	Name          string `json:"name"`
	SubtotalLabel string `json:"subtotal_label"`
}

type ReceiptView struct {
	Lines         []ReceiptLine `json:"lines"`
	SubtotalLabel string        `json:"subtotal_label"`
	DiscountLabel string        `json:"discount_label,omitempty"`
	TotalLabel    string        `json:"total_label"`
	PaymentMethod string        `json:"payment_method"`
	PaymentLabel  string        `json:"payment_label"`
}

type AdminRow struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	PriceLabel string `json:"price_label"`
	Stock      int    `json:"stock"`
	StockLevel string `json:"stock_level"`
}

type ProductForm struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

type AdminView struct {
	Products []AdminRow  `json:"products"`
	Form     ProductForm `json:"form"`
	Editing  bool        `json:"editing"`
	Empty    bool        `json:"empty"`
	Error    string      `json:"error,omitempty"`
}

type SaleRow struct {
	ID         int    `json:"id"`
	TotalLabel string `json:"total_label"`
	Items      string `json:"items"`
}

type SalesView struct {
	Sales []SaleRow `json:"sales"`
	Empty bool      `json:"empty"`
}
