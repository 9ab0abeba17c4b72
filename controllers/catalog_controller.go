package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mini-pdv/models"
	"mini-pdv/services"
	"mini-pdv/utils"
)

type CatalogController struct {
	state   *models.AppState
	catalog *services.CatalogService
}

func NewCatalogController(state *models.AppState, catalog *services.CatalogService) *CatalogController {
	return &CatalogController{state: state, catalog: catalog}
}

// @Summary Catalog view
// @Description Current shopper-facing catalog grid, rebuilt from the cached product list
// @Tags Views
// @Produce json
// @Success 200 {object} models.CatalogView
// @Router /views/catalog [get]
func (ctrl *CatalogController) GetCatalogView(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.buildCatalogView())
}

// @Summary Reload catalog
// @Description Refetches the product list from the backend
// @Tags Events
// @Produce json
// @Success 200 {object} models.CatalogView
// @Router /events/catalog:reload [post]
func (ctrl *CatalogController) Reload(c *gin.Context) {
	ctrl.catalog.RefreshCatalog(c.Request.Context())
	c.JSON(http.StatusOK, ctrl.buildCatalogView())
}

func (ctrl *CatalogController) buildCatalogView() models.CatalogView {
	ctrl.state.Lock()
	defer ctrl.state.Unlock()

	view := models.CatalogView{
		Products: make([]models.CatalogCard, 0, len(ctrl.state.Catalog)),
		Empty:    len(ctrl.state.Catalog) == 0,
		Error:    ctrl.state.CatalogErr,
	}
	for _, p := range ctrl.state.Catalog {
		view.Products = append(view.Products, models.CatalogCard{
			ID:         p.ID,
			Name:       p.Name,
			PriceLabel: utils.FormatCurrency(p.Price),
			Stock:      p.Stock,
			StockLevel: models.StockLevel(p.Stock),
			Available:  p.Available(),
		})
	}
	return view
}
