package models

// Backend request/response payloads. One typed struct per endpoint; no
// ad-hoc maps cross the wire.

// ProductPayload is the body for POST /products and PUT /products/{id}.
// It carries exactly the fields the backend supports; anything else the
// admin form collects is dropped before transmission.
type ProductPayload struct {
	Nome    string  `json:"nome"`
	Preco   float64 `json:"preco"`
	Estoque int     `json:"estoque"`
}

type CheckoutItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type CheckoutRequest struct {
	Items []CheckoutItem `json:"items"`
}

// BackendError is the failure body the backend returns, FastAPI-style.
type BackendError struct {
	Detail string `json:"detail"`
}

// UI event payloads, one per event name in the dispatch map.

type AddToCartEvent struct {
	ProductID int `json:"product_id" binding:"required"`
}

type CartQuantityEvent struct {
	Index int `json:"index"`
	Delta int `json:"delta" binding:"required"`
}

type CartRemoveEvent struct {
	Index int `json:"index"`
}

type PaymentMethodEvent struct {
	Method string `json:"method" binding:"required"`
}

type MaskInputEvent struct {
	Value string `json:"value"`
}

type CheckoutEvent struct {
	Method     string `json:"method" binding:"required"`
	CardNumber string `json:"card_number"`
}

// ProductFormEvent is what the admin form submits. Description and
// Category exist in the form but are not supported by the backend and
// never leave this process.
type ProductFormEvent struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

type EditProductEvent struct {
	ProductID int `json:"product_id" binding:"required"`
}

type DeleteProductEvent struct {
	ProductID int  `json:"product_id" binding:"required"`
	Confirmed bool `json:"confirmed"`
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
