package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mini-pdv/models"
	"mini-pdv/services"
	"mini-pdv/utils"
)

type AdminController struct {
	state   *models.AppState
	catalog *services.CatalogService
}

func NewAdminController(state *models.AppState, catalog *services.CatalogService) *AdminController {
	return &AdminController{state: state, catalog: catalog}
}

// @Summary Admin table view
// @Description Product table plus the current form state (create or edit mode)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.AdminView
// @Router /admin/views/products [get]
func (ctrl *AdminController) GetAdminView(c *gin.Context) {
	ctrl.catalog.RefreshAdmin(c.Request.Context())
	c.JSON(http.StatusOK, ctrl.buildAdminView())
}

// @Summary Save product
// @Description Creates a product, or updates the one targeted for edit; the payload sent to the backend carries only name, price and stock
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param event body models.ProductFormEvent true "Product form"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /admin/events/admin:save [post]
func (ctrl *AdminController) SaveProduct(c *gin.Context) {
	var event models.ProductFormEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: services.ErrMissingFields.Error(), Error: err.Error()})
		return
	}

	message, err := ctrl.catalog.SaveProduct(c.Request.Context(), event)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, services.ErrMissingFields) {
			status = http.StatusBadRequest
		}
		c.JSON(status, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: message, Data: ctrl.buildAdminView()})
}

// @Summary Edit product
// @Description Fetches the product and prefills the admin form; sets the edit target
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param event body models.EditProductEvent true "Product to edit"
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /admin/events/admin:edit [post]
func (ctrl *AdminController) EditProduct(c *gin.Context) {
	var event models.EditProductEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Evento inválido", Error: err.Error()})
		return
	}

	if err := ctrl.catalog.BeginEdit(c.Request.Context(), event.ProductID); err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Success: false, Message: "Erro ao carregar produto"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Produto carregado para edição", Data: ctrl.buildAdminView()})
}

// @Summary Delete product
// @Description Removes the product; requires the confirmation flag from the UI dialog
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param event body models.DeleteProductEvent true "Product to delete"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /admin/events/admin:delete [post]
func (ctrl *AdminController) DeleteProduct(c *gin.Context) {
	var event models.DeleteProductEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Evento inválido", Error: err.Error()})
		return
	}

	if err := ctrl.catalog.DeleteProduct(c.Request.Context(), event.ProductID, event.Confirmed); err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, services.ErrDeleteUnconfirmed) {
			status = http.StatusBadRequest
		}
		c.JSON(status, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Produto excluído com sucesso!", Data: ctrl.buildAdminView()})
}

// @Summary Clear product form
// @Description Resets the admin form back to create mode
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/events/admin:clear-form [post]
func (ctrl *AdminController) ClearForm(c *gin.Context) {
	ctrl.catalog.ClearForm()
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Formulário limpo", Data: ctrl.buildAdminView()})
}

// @Summary Sales history
// @Description All sales recorded by the backend
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.SalesView
// @Failure 502 {object} models.ErrorResponse
// @Router /admin/views/sales [get]
func (ctrl *AdminController) GetSales(c *gin.Context) {
	sales, err := ctrl.catalog.ListSales(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	view := models.SalesView{Sales: make([]models.SaleRow, 0, len(sales)), Empty: len(sales) == 0}
	for _, sale := range sales {
		view.Sales = append(view.Sales, models.SaleRow{
			ID:         sale.ID,
			TotalLabel: utils.FormatCurrency(sale.Total),
			Items:      sale.Items,
		})
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Sale detail
// @Description One sale by id
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sale id"
// @Success 200 {object} models.SaleRow
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/views/sales/{id} [get]
func (ctrl *AdminController) GetSale(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Identificador inválido"})
		return
	}

	sale, err := ctrl.catalog.GetSale(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SaleRow{
		ID:         sale.ID,
		TotalLabel: utils.FormatCurrency(sale.Total),
		Items:      sale.Items,
	})
}

func (ctrl *AdminController) buildAdminView() models.AdminView {
	ctrl.state.Lock()
	defer ctrl.state.Unlock()

	view := models.AdminView{
		Products: make([]models.AdminRow, 0, len(ctrl.state.AdminCatalog)),
		Form:     ctrl.state.EditingForm,
		Editing:  ctrl.state.EditingProductID != nil,
		Empty:    len(ctrl.state.AdminCatalog) == 0,
		Error:    ctrl.state.AdminErr,
	}
	for _, p := range ctrl.state.AdminCatalog {
		view.Products = append(view.Products, models.AdminRow{
			ID:         p.ID,
			Name:       p.Name,
			PriceLabel: utils.FormatCurrency(p.Price),
			Stock:      p.Stock,
			StockLevel: models.StockLevel(p.Stock),
		})
	}
	return view
}
