package models

import "sync"

// AppState is the single application state object: the catalog caches,
// the cart, the admin editing context and the last receipt. Event
// handlers run on concurrent gin goroutines, so every access goes
// through the embedded mutex.
type AppState struct {
	sync.Mutex

	// Two independent caches of the same backend data: the shopper
	// grid and the admin table refetch separately.
	Catalog      []Product
	CatalogErr   string
	AdminCatalog []Product
	AdminErr     string

	Cart []CartItem

	// EditingProductID is the at-most-one product targeted by the
	// admin form; nil means create mode.
	EditingProductID *int
	EditingForm      ProductForm

	PaymentMethod    string
	Receipt          *ReceiptView
	CheckoutInFlight bool
}

func NewAppState() *AppState {
	return &AppState{
		Catalog:      []Product{},
		AdminCatalog: []Product{},
		Cart:         []CartItem{},
	}
}

// FindProduct looks a product up in the shopper catalog cache.
// Callers must hold the lock.
func (s *AppState) FindProduct(id int) (Product, bool) {
	for _, p := range s.Catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ClearEditing resets the admin form to create mode.
// Callers must hold the lock.
func (s *AppState) ClearEditing() {
	s.EditingProductID = nil
	s.EditingForm = ProductForm{}
}
