package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mini-pdv/config"
	"mini-pdv/controllers"
	"mini-pdv/middleware"
	"mini-pdv/models"
	"mini-pdv/repositories"
	"mini-pdv/services"
)

// SetupRoutes wires the view reads and the event dispatch maps. Each
// UI event has a name and a handler; unknown names are rejected, which
// keeps the binder decoupled from whatever renders the views.
func SetupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	state *models.AppState,
	backend *repositories.BackendClient,
	cartSvc *services.CartService,
	catalogSvc *services.CatalogService,
	checkoutSvc *services.CheckoutService,
	authSvc *services.AuthService,
) {
	catalogCtrl := controllers.NewCatalogController(state, catalogSvc)
	cartCtrl := controllers.NewCartController(state, cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	adminCtrl := controllers.NewAdminController(state, catalogSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		backendOK := backend.Ping(c.Request.Context()) == nil
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": backendOK})
	})

	router.POST("/auth/login", authCtrl.Login)

	router.GET("/views/catalog", catalogCtrl.GetCatalogView)
	router.GET("/views/cart", cartCtrl.GetCartView)
	router.GET("/views/payment", checkoutCtrl.GetPaymentView)
	router.GET("/views/receipt", checkoutCtrl.GetReceipt)

	events := map[string]gin.HandlerFunc{
		"catalog:reload":       catalogCtrl.Reload,
		"catalog:add-to-cart":  cartCtrl.AddToCart,
		"cart:quantity":        cartCtrl.ChangeQuantity,
		"cart:remove":          cartCtrl.Remove,
		"payment:method":       checkoutCtrl.SelectMethod,
		"payment:card-input":   checkoutCtrl.MaskCardInput,
		"payment:expiry-input": checkoutCtrl.MaskExpiryInput,
		"checkout:submit":      checkoutCtrl.Submit,
	}
	router.POST("/events/:name", dispatch(events))

	admin := router.Group("/admin")
	admin.Use(middleware.AdminMiddleware(cfg.JWTSecret))
	{
		admin.GET("/views/products", adminCtrl.GetAdminView)
		admin.GET("/views/sales", adminCtrl.GetSales)
		admin.GET("/views/sales/:id", adminCtrl.GetSale)

		adminEvents := map[string]gin.HandlerFunc{
			"admin:save":       adminCtrl.SaveProduct,
			"admin:edit":       adminCtrl.EditProduct,
			"admin:delete":     adminCtrl.DeleteProduct,
			"admin:clear-form": adminCtrl.ClearForm,
		}
		admin.POST("/events/:name", dispatch(adminEvents))
	}
}

func dispatch(table map[string]gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		handler, ok := table[c.Param("name")]
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Unknown event: " + c.Param("name"),
			})
			return
		}
		handler(c)
	}
}
