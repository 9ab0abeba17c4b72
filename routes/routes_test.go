package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-pdv/config"
	"mini-pdv/models"
	"mini-pdv/repositories"
	"mini-pdv/services"
)

func newTestRouter(t *testing.T) (*gin.Engine, *models.AppState) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/ping":
			w.Write([]byte(`{"message":"pong"}`))
		case r.URL.Path == "/products":
			w.Write([]byte(`[{"id":1,"nome":"Café","preco":12.5,"estoque":8}]`))
		case r.URL.Path == "/sales":
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(backendSrv.Close)

	cfg := &config.Config{
		Port:          "0",
		BackendURL:    backendSrv.URL,
		HTTPTimeout:   time.Second,
		CartFile:      filepath.Join(t.TempDir(), "carrinho.json"),
		AdminPassword: "admin",
		JWTSecret:     "secret",
		JWTExpiry:     time.Hour,
	}

	state := models.NewAppState()
	backend := repositories.NewBackendClient(cfg.BackendURL, cfg.HTTPTimeout)
	storage := repositories.NewCartStorage(cfg.CartFile)

	cartSvc := services.NewCartService(state, storage)
	catalogSvc := services.NewCatalogService(state, backend)
	checkoutSvc := services.NewCheckoutService(state, backend, cartSvc)
	authSvc, err := services.NewAuthService(cfg.AdminPassword, cfg.JWTSecret, cfg.JWTExpiry)
	require.NoError(t, err)

	router := gin.New()
	SetupRoutes(router, cfg, state, backend, cartSvc, catalogSvc, checkoutSvc, authSvc)
	return router, state
}

func doJSON(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUnknownEventRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/events/cart:explode", `{}`, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMaskingEvent(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/events/payment:card-input", `{"value":"4111111111111111"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MaskInputEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "4111 1111 1111 1111", resp.Value)
}

func TestAddToCartEventFlow(t *testing.T) {
	router, state := newTestRouter(t)

	// Page-ready analog: pull the catalog before shopping.
	w := doJSON(router, http.MethodPost, "/events/catalog:reload", `{}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/events/catalog:add-to-cart", `{"product_id":1}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, state.Cart, 1)

	w = doJSON(router, http.MethodGet, "/views/cart", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var view models.CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, 1, view.Badge)
	assert.Equal(t, "R$ 12,50", view.TotalLabel)
	assert.True(t, view.CheckoutEnabled)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/admin/views/products", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/admin/events/admin:clear-form", `{}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginThenAdminAccess(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/auth/login", `{"password":"admin"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)

	w = doJSON(router, http.MethodGet, "/admin/views/products", "", resp.Data.Token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/login", `{"password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthReportsBackend(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, true, resp["backend"])
}
