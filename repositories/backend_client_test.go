package repositories

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-pdv/models"
)

func TestListProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"nome":"Café","preco":12.5,"estoque":8}]`))
	}))
	defer server.Close()

	client := NewBackendClient(server.URL, time.Second)
	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Café", products[0].Name)
	assert.Equal(t, "12.5", products[0].Price.String())
	assert.Equal(t, 8, products[0].Stock)
}

func TestListProductsTransportFailure(t *testing.T) {
	client := NewBackendClient("http://127.0.0.1:0", time.Second)
	_, err := client.ListProducts(context.Background())
	assert.ErrorIs(t, err, ErrProductLoad)
}

func TestCreateProductPayloadIsTrimmed(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"nome":"Café","preco":12.5,"estoque":8}`))
	}))
	defer server.Close()

	client := NewBackendClient(server.URL, time.Second)
	product, err := client.CreateProduct(context.Background(), models.ProductPayload{
		Nome:    "Café",
		Preco:   12.5,
		Estoque: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, product.ID)

	// Exactly the fields the backend supports, nothing else.
	assert.Len(t, received, 3)
	assert.Contains(t, received, "nome")
	assert.Contains(t, received, "preco")
	assert.Contains(t, received, "estoque")
}

func TestUpdateProductFailureIsGeneric(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Produto não encontrado"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewBackendClient(server.URL, time.Second)
	_, err := client.UpdateProduct(context.Background(), 9, models.ProductPayload{Nome: "X"})

	// The body is deliberately not parsed for product saves.
	assert.ErrorIs(t, err, ErrProductSave)
}

func TestDeleteProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/products/4", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewBackendClient(server.URL, time.Second)
	assert.NoError(t, client.DeleteProduct(context.Background(), 4))
}

func TestCheckoutSurfacesBackendDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Estoque insuficiente para Café"}`))
	}))
	defer server.Close()

	client := NewBackendClient(server.URL, time.Second)
	_, err := client.Checkout(context.Background(), models.CheckoutRequest{
		Items: []models.CheckoutItem{{ProductID: 1, Quantity: 99}},
	})
	require.Error(t, err)
	assert.Equal(t, "Estoque insuficiente para Café", err.Error())
}

func TestCheckoutGenericFailureWithoutDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewBackendClient(server.URL, time.Second)
	_, err := client.Checkout(context.Background(), models.CheckoutRequest{})
	require.Error(t, err)
	assert.Equal(t, "erro no checkout", err.Error())
}

func TestCheckoutSuccess(t *testing.T) {
	var received models.CheckoutRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/checkout", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"total":100.0,"items":"[]"}`))
	}))
	defer server.Close()

	client := NewBackendClient(server.URL, time.Second)
	sale, err := client.Checkout(context.Background(), models.CheckoutRequest{
		Items: []models.CheckoutItem{{ProductID: 3, Quantity: 2}, {ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "100", sale.Total.String())

	// Items go over the wire in cart order, quantities only.
	require.Len(t, received.Items, 2)
	assert.Equal(t, 3, received.Items[0].ProductID)
	assert.Equal(t, 2, received.Items[0].Quantity)
	assert.Equal(t, 1, received.Items[1].ProductID)
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"pong"}`))
	}))
	defer server.Close()

	client := NewBackendClient(server.URL, time.Second)
	assert.NoError(t, client.Ping(context.Background()))
}
