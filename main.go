package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"mini-pdv/config"
	_ "mini-pdv/docs"
	"mini-pdv/middleware"
	"mini-pdv/models"
	"mini-pdv/repositories"
	"mini-pdv/routes"
	"mini-pdv/services"
)

// @title Mini PDV Storefront
// @description Storefront UI gateway for the Mini PDV backend: catalog, persisted cart, checkout and admin product management.
// @version 1.0
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	state := models.NewAppState()
	backend := repositories.NewBackendClient(cfg.BackendURL, cfg.HTTPTimeout)
	storage := repositories.NewCartStorage(cfg.CartFile)

	cartSvc := services.NewCartService(state, storage)
	catalogSvc := services.NewCatalogService(state, backend)
	checkoutSvc := services.NewCheckoutService(state, backend, cartSvc)

	authSvc, err := services.NewAuthService(cfg.AdminPassword, cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatalf("Failed to initialize admin auth: %v", err)
	}

	// The page-ready sequence: catalog first, cart snapshot already
	// loaded by the cart service. A failed fetch stays visible as an
	// inline catalog error and is not retried.
	if err := catalogSvc.RefreshCatalog(context.Background()); err != nil {
		log.Printf("Initial catalog fetch failed: %v", err)
	}
	log.Printf("Cart restored with %d item(s)", cartSvc.ItemCount())

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, cfg, state, backend, cartSvc, catalogSvc, checkoutSvc, authSvc)

	port := ":" + cfg.Port
	log.Printf("Storefront starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
