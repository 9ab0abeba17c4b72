package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"mini-pdv/models"
)

var (
	ErrProductSave   = errors.New("erro ao salvar produto")
	ErrProductLoad   = errors.New("erro ao carregar produtos")
	ErrProductDelete = errors.New("erro ao excluir produto")
)

// BackendClient talks to the remote PDV REST API. The backend is the
// source of truth for pricing and stock; this process never decrements
// stock on its own.
type BackendClient struct {
	baseURL string
	client  *http.Client
}

func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	return &BackendClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *BackendClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, ErrProductLoad
	}
	return products, nil
}

func (c *BackendClient) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		return nil, ErrProductLoad
	}
	return &product, nil
}

func (c *BackendClient) CreateProduct(ctx context.Context, payload models.ProductPayload) (*models.Product, error) {
	var product models.Product
	if err := c.sendJSON(ctx, http.MethodPost, "/products", payload, &product); err != nil {
		return nil, ErrProductSave
	}
	return &product, nil
}

func (c *BackendClient) UpdateProduct(ctx context.Context, id int, payload models.ProductPayload) (*models.Product, error) {
	var product models.Product
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), payload, &product); err != nil {
		return nil, ErrProductSave
	}
	return &product, nil
}

func (c *BackendClient) DeleteProduct(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+fmt.Sprintf("/products/%d", id), nil)
	if err != nil {
		return ErrProductDelete
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return ErrProductDelete
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ErrProductDelete
	}
	return nil
}

// Checkout submits the cart. Unlike the product endpoints, a failure
// body is parsed here so the backend's own reason (insufficient stock,
// unknown product) can be shown to the user.
func (c *BackendClient) Checkout(ctx context.Context, order models.CheckoutRequest) (*models.Sale, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, errors.New("erro no checkout")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout", bytes.NewReader(body))
	if err != nil {
		return nil, errors.New("erro no checkout")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.New("erro no checkout")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var backendErr models.BackendError
		if err := json.NewDecoder(resp.Body).Decode(&backendErr); err == nil && backendErr.Detail != "" {
			return nil, errors.New(backendErr.Detail)
		}
		return nil, errors.New("erro no checkout")
	}

	var sale models.Sale
	if err := json.NewDecoder(resp.Body).Decode(&sale); err != nil {
		return nil, errors.New("erro no checkout")
	}
	return &sale, nil
}

func (c *BackendClient) ListSales(ctx context.Context) ([]models.Sale, error) {
	sales := []models.Sale{}
	if err := c.getJSON(ctx, "/sales", &sales); err != nil {
		return nil, errors.New("erro ao carregar vendas")
	}
	return sales, nil
}

func (c *BackendClient) GetSale(ctx context.Context, id int) (*models.Sale, error) {
	var sale models.Sale
	if err := c.getJSON(ctx, fmt.Sprintf("/sales/%d", id), &sale); err != nil {
		return nil, errors.New("venda não encontrada")
	}
	return &sale, nil
}

// Ping checks whether the backend is reachable.
func (c *BackendClient) Ping(ctx context.Context) error {
	return c.getJSON(ctx, "/ping", &struct{}{})
}

func (c *BackendClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d for GET %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *BackendClient) sendJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d for %s %s", resp.StatusCode, method, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
