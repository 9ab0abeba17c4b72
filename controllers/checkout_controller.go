package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mini-pdv/models"
	"mini-pdv/services"
	"mini-pdv/utils"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// @Summary Payment section view
// @Description Which payment detail block is visible and the PIX total preview
// @Tags Views
// @Produce json
// @Success 200 {object} models.PaymentView
// @Router /views/payment [get]
func (ctrl *CheckoutController) GetPaymentView(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.checkout.PaymentView())
}

// @Summary Receipt view
// @Description Receipt of the last successful checkout
// @Tags Views
// @Produce json
// @Success 200 {object} models.ReceiptView
// @Failure 404 {object} models.ErrorResponse
// @Router /views/receipt [get]
func (ctrl *CheckoutController) GetReceipt(c *gin.Context) {
	receipt := ctrl.checkout.Receipt()
	if receipt == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Nenhuma compra finalizada"})
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// @Summary Select payment method
// @Description Switches the payment section and refreshes the PIX preview from the live cart total
// @Tags Events
// @Accept json
// @Produce json
// @Param event body models.PaymentMethodEvent true "Payment method"
// @Success 200 {object} models.PaymentView
// @Failure 400 {object} models.ErrorResponse
// @Router /events/payment:method [post]
func (ctrl *CheckoutController) SelectMethod(c *gin.Context) {
	var event models.PaymentMethodEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Evento inválido", Error: err.Error()})
		return
	}

	view, err := ctrl.checkout.SelectMethod(event.Method)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Mask card number input
// @Description Strips non-digits and groups the card number in blocks of four
// @Tags Events
// @Accept json
// @Produce json
// @Param event body models.MaskInputEvent true "Raw input"
// @Success 200 {object} models.MaskInputEvent
// @Router /events/payment:card-input [post]
func (ctrl *CheckoutController) MaskCardInput(c *gin.Context) {
	var event models.MaskInputEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Evento inválido", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.MaskInputEvent{Value: utils.MaskCardNumber(event.Value)})
}

// @Summary Mask expiry date input
// @Description Formats card expiry input as MM/YY
// @Tags Events
// @Accept json
// @Produce json
// @Param event body models.MaskInputEvent true "Raw input"
// @Success 200 {object} models.MaskInputEvent
// @Router /events/payment:expiry-input [post]
func (ctrl *CheckoutController) MaskExpiryInput(c *gin.Context) {
	var event models.MaskInputEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Evento inválido", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.MaskInputEvent{Value: utils.MaskExpiryDate(event.Value)})
}

// @Summary Finalize purchase
// @Description Validates payment input locally, submits the cart to the backend and returns the receipt
// @Tags Events
// @Accept json
// @Produce json
// @Param event body models.CheckoutEvent true "Payment method and card number"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /events/checkout:submit [post]
func (ctrl *CheckoutController) Submit(c *gin.Context) {
	var event models.CheckoutEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Evento inválido", Error: err.Error()})
		return
	}

	receipt, err := ctrl.checkout.Submit(c.Request.Context(), event)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, services.ErrInvalidMethod) ||
			errors.Is(err, services.ErrInvalidCardNumber) ||
			errors.Is(err, services.ErrEmptyCart) ||
			errors.Is(err, services.ErrCheckoutInProgress) {
			status = http.StatusBadRequest
		}
		c.JSON(status, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Compra finalizada com sucesso!", Data: receipt})
}
