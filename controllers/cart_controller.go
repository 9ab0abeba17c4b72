package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"mini-pdv/models"
	"mini-pdv/services"
	"mini-pdv/utils"
)

type CartController struct {
	state *models.AppState
	cart  *services.CartService
}

func NewCartController(state *models.AppState, cart *services.CartService) *CartController {
	return &CartController{state: state, cart: cart}
}

// @Summary Cart view
// @Description Current cart panel: lines, total, badge count
// @Tags Views
// @Produce json
// @Success 200 {object} models.CartView
// @Router /views/cart [get]
func (ctrl *CartController) GetCartView(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.buildCartView())
}

// @Summary Add product to cart
// @Description One unit of the product enters the cart, merged into an existing line when present
// @Tags Events
// @Accept json
// @Produce json
// @Param event body models.AddToCartEvent true "Product to add"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /events/catalog:add-to-cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var event models.AddToCartEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Evento inválido", Error: err.Error()})
		return
	}

	if err := ctrl.cart.AddItem(event.ProductID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Produto adicionado ao carrinho", Data: ctrl.buildCartView()})
}

// @Summary Change line quantity
// @Description Adjusts a cart line by delta; dropping below one unit removes the line
// @Tags Events
// @Accept json
// @Produce json
// @Param event body models.CartQuantityEvent true "Line index and delta"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /events/cart:quantity [post]
func (ctrl *CartController) ChangeQuantity(c *gin.Context) {
	var event models.CartQuantityEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Evento inválido", Error: err.Error()})
		return
	}

	if err := ctrl.cart.ChangeQuantity(event.Index, event.Delta); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Carrinho atualizado", Data: ctrl.buildCartView()})
}

// @Summary Remove cart line
// @Description Deletes the line at the given display position
// @Tags Events
// @Accept json
// @Produce json
// @Param event body models.CartRemoveEvent true "Line index"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /events/cart:remove [post]
func (ctrl *CartController) Remove(c *gin.Context) {
	var event models.CartRemoveEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Evento inválido", Error: err.Error()})
		return
	}

	if err := ctrl.cart.RemoveItem(event.Index); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Item removido", Data: ctrl.buildCartView()})
}

func (ctrl *CartController) buildCartView() models.CartView {
	ctrl.state.Lock()
	defer ctrl.state.Unlock()

	view := models.CartView{
		Items: make([]models.CartLine, 0, len(ctrl.state.Cart)),
		Empty: len(ctrl.state.Cart) == 0,
	}

	total := utils.FormatCurrency(decimalSum(ctrl.state.Cart))
	for i, item := range ctrl.state.Cart {
		view.Badge += item.Quantity
		view.Items = append(view.Items, models.CartLine{
			Index:         i,
			Name:          item.Name,
			UnitPrice:     utils.FormatCurrency(item.UnitPrice),
			Quantity:      item.Quantity,
			SubtotalLabel: utils.FormatCurrency(item.Subtotal()),
		})
	}

	view.TotalLabel = total
	view.CheckoutEnabled = !view.Empty
	return view
}

func decimalSum(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
