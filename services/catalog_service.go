package services

import (
	"context"
	"errors"

	"mini-pdv/models"
	"mini-pdv/repositories"
)

var (
	ErrMissingFields     = errors.New("Por favor, preencha os campos obrigatórios (Nome, Preço e Estoque)")
	ErrDeleteUnconfirmed = errors.New("Exclusão não confirmada")
)

// CatalogService keeps the two catalog caches (shopper grid and admin
// table) fresh and drives product CRUD against the backend.
type CatalogService struct {
	state   *models.AppState
	backend *repositories.BackendClient
}

func NewCatalogService(state *models.AppState, backend *repositories.BackendClient) *CatalogService {
	return &CatalogService{state: state, backend: backend}
}

// RefreshCatalog refetches the shopper-facing product list. A failure
// is recorded for inline display and is not retried.
func (s *CatalogService) RefreshCatalog(ctx context.Context) error {
	products, err := s.backend.ListProducts(ctx)

	s.state.Lock()
	defer s.state.Unlock()

	if err != nil {
		s.state.CatalogErr = err.Error()
		return err
	}
	s.state.Catalog = products
	s.state.CatalogErr = ""
	return nil
}

// RefreshAdmin refetches the admin table, independently of the
// shopper grid even though both hold the same backend data.
func (s *CatalogService) RefreshAdmin(ctx context.Context) error {
	products, err := s.backend.ListProducts(ctx)

	s.state.Lock()
	defer s.state.Unlock()

	if err != nil {
		s.state.AdminErr = err.Error()
		return err
	}
	s.state.AdminCatalog = products
	s.state.AdminErr = ""
	return nil
}

// BeginEdit fetches the product and prefills the admin form. Only one
// product can be targeted for edit at a time.
func (s *CatalogService) BeginEdit(ctx context.Context, productID int) error {
	product, err := s.backend.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	s.state.Lock()
	defer s.state.Unlock()

	id := product.ID
	s.state.EditingProductID = &id
	s.state.EditingForm = models.ProductForm{
		Name:  product.Name,
		Price: product.Price.InexactFloat64(),
		Stock: product.Stock,
	}
	return nil
}

// SaveProduct creates or updates depending on the editing context.
// The payload is trimmed to exactly what the backend supports; form
// fields like description never leave this process. On success both
// catalog caches refresh and the form resets to create mode.
func (s *CatalogService) SaveProduct(ctx context.Context, form models.ProductFormEvent) (string, error) {
	if form.Name == "" || form.Price < 0 || form.Stock < 0 {
		return "", ErrMissingFields
	}

	payload := models.ProductPayload{
		Nome:    form.Name,
		Preco:   form.Price,
		Estoque: form.Stock,
	}

	s.state.Lock()
	editingID := s.state.EditingProductID
	s.state.Unlock()

	var err error
	message := "Produto cadastrado com sucesso!"
	if editingID != nil {
		_, err = s.backend.UpdateProduct(ctx, *editingID, payload)
		message = "Produto atualizado com sucesso!"
	} else {
		_, err = s.backend.CreateProduct(ctx, payload)
	}
	if err != nil {
		return "", err
	}

	s.RefreshCatalog(ctx)
	s.RefreshAdmin(ctx)

	s.state.Lock()
	s.state.ClearEditing()
	s.state.Unlock()

	return message, nil
}

// DeleteProduct removes a product. The caller must have confirmed the
// action explicitly.
func (s *CatalogService) DeleteProduct(ctx context.Context, productID int, confirmed bool) error {
	if !confirmed {
		return ErrDeleteUnconfirmed
	}

	if err := s.backend.DeleteProduct(ctx, productID); err != nil {
		return err
	}

	s.RefreshCatalog(ctx)
	s.RefreshAdmin(ctx)

	s.state.Lock()
	if s.state.EditingProductID != nil && *s.state.EditingProductID == productID {
		s.state.ClearEditing()
	}
	s.state.Unlock()

	return nil
}

// ClearForm resets the admin form back to create mode.
func (s *CatalogService) ClearForm() {
	s.state.Lock()
	defer s.state.Unlock()
	s.state.ClearEditing()
}

func (s *CatalogService) ListSales(ctx context.Context) ([]models.Sale, error) {
	return s.backend.ListSales(ctx)
}

func (s *CatalogService) GetSale(ctx context.Context, id int) (*models.Sale, error) {
	return s.backend.GetSale(ctx, id)
}
