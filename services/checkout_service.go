package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"mini-pdv/models"
	"mini-pdv/repositories"
	"mini-pdv/utils"
)

const (
	PaymentPix    = "pix"
	PaymentCredit = "cartao"
	PaymentDebit  = "debito"
)

// pixDiscountRate is applied to the backend total for display only.
// The backend never sees or charges this discount.
var pixDiscountRate = decimal.New(1, -1)

var paymentLabels = map[string]string{
	PaymentPix:    "PIX",
	PaymentCredit: "Cartão de Crédito",
	PaymentDebit:  "Cartão de Débito",
}

var (
	ErrInvalidMethod      = errors.New("Selecione uma forma de pagamento válida")
	ErrInvalidCardNumber  = errors.New("Por favor, informe um número de cartão válido")
	ErrEmptyCart          = errors.New("Seu carrinho está vazio")
	ErrCheckoutInProgress = errors.New("Aguarde, o checkout anterior ainda está em andamento")
)

// CheckoutService validates payment input, submits the cart to the
// backend and builds the receipt. The backend's total is authoritative;
// stock and pricing are decided there.
type CheckoutService struct {
	state   *models.AppState
	backend *repositories.BackendClient
	cart    *CartService
}

func NewCheckoutService(state *models.AppState, backend *repositories.BackendClient, cart *CartService) *CheckoutService {
	return &CheckoutService{state: state, backend: backend, cart: cart}
}

// SelectMethod records the chosen payment method and returns the
// payment section state, including the live PIX total preview.
func (s *CheckoutService) SelectMethod(method string) (models.PaymentView, error) {
	if _, ok := paymentLabels[method]; !ok {
		return models.PaymentView{}, ErrInvalidMethod
	}

	s.state.Lock()
	defer s.state.Unlock()

	s.state.PaymentMethod = method
	return s.paymentViewLocked(), nil
}

// PaymentView rebuilds the payment section from the current state.
func (s *CheckoutService) PaymentView() models.PaymentView {
	s.state.Lock()
	defer s.state.Unlock()
	return s.paymentViewLocked()
}

// Receipt returns the receipt of the last successful checkout, or nil.
func (s *CheckoutService) Receipt() *models.ReceiptView {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.Receipt
}

// Submit runs the whole checkout: local validation, backend call,
// display-only discount, receipt, cart clear. Validation failures
// abort before any network traffic.
func (s *CheckoutService) Submit(ctx context.Context, order models.CheckoutEvent) (*models.ReceiptView, error) {
	label, ok := paymentLabels[order.Method]
	if !ok {
		return nil, ErrInvalidMethod
	}

	if order.Method == PaymentCredit || order.Method == PaymentDebit {
		digits := strings.ReplaceAll(order.CardNumber, " ", "")
		if len(digits) < 16 {
			return nil, ErrInvalidCardNumber
		}
	}

	s.state.Lock()
	if s.state.CheckoutInFlight {
		s.state.Unlock()
		return nil, ErrCheckoutInProgress
	}
	if len(s.state.Cart) == 0 {
		s.state.Unlock()
		return nil, ErrEmptyCart
	}

	items := make([]models.CartItem, len(s.state.Cart))
	copy(items, s.state.Cart)
	s.state.CheckoutInFlight = true
	s.state.Unlock()

	request := models.CheckoutRequest{Items: make([]models.CheckoutItem, 0, len(items))}
	for _, item := range items {
		request.Items = append(request.Items, models.CheckoutItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	sale, err := s.backend.Checkout(ctx, request)

	s.state.Lock()
	defer s.state.Unlock()
	s.state.CheckoutInFlight = false

	if err != nil {
		return nil, err
	}

	total := sale.Total
	discount := decimal.Zero
	if order.Method == PaymentPix {
		discount = total.Mul(pixDiscountRate).Round(2)
	}
	final := total.Sub(discount)

	receipt := &models.ReceiptView{
		Lines:         make([]models.ReceiptLine, 0, len(items)),
		SubtotalLabel: utils.FormatCurrency(total),
		TotalLabel:    utils.FormatCurrency(final),
		PaymentMethod: order.Method,
		PaymentLabel:  label,
	}
	if discount.IsPositive() {
		receipt.DiscountLabel = utils.FormatCurrency(discount)
	}
	for _, item := range items {
		receipt.Lines = append(receipt.Lines, models.ReceiptLine{
			Quantity:      item.Quantity,
			Name:          item.Name,
			SubtotalLabel: utils.FormatCurrency(item.Subtotal()),
		})
	}

	s.state.Receipt = receipt
	s.cart.clearLocked()

	return receipt, nil
}

func (s *CheckoutService) paymentViewLocked() models.PaymentView {
	view := models.PaymentView{
		Method:         s.state.PaymentMethod,
		ShowPixDetails: s.state.PaymentMethod == PaymentPix,
		ShowCardInputs: s.state.PaymentMethod == PaymentCredit || s.state.PaymentMethod == PaymentDebit,
	}
	if view.ShowPixDetails {
		view.PixAmountLabel = utils.FormatCurrency(s.cart.totalLocked())
	}
	return view
}
