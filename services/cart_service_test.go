package services

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-pdv/models"
	"mini-pdv/repositories"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newCartFixture(t *testing.T) (*CartService, *models.AppState, *repositories.CartStorage) {
	t.Helper()

	state := models.NewAppState()
	state.Catalog = []models.Product{
		{ID: 1, Name: "Café", Price: price("12.50"), Stock: 3},
		{ID: 2, Name: "Filtro", Price: price("4.90"), Stock: 10},
		{ID: 3, Name: "Caneca", Price: price("25.00"), Stock: 0},
	}

	storage := repositories.NewCartStorage(filepath.Join(t.TempDir(), "carrinho.json"))
	return NewCartService(state, storage), state, storage
}

func TestAddItemUnknownProduct(t *testing.T) {
	cart, state, _ := newCartFixture(t)

	err := cart.AddItem(99)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Empty(t, state.Cart)
}

func TestAddItemOutOfStock(t *testing.T) {
	cart, state, _ := newCartFixture(t)

	err := cart.AddItem(3)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Empty(t, state.Cart)
}

func TestAddItemMergesLines(t *testing.T) {
	cart, state, _ := newCartFixture(t)

	require.NoError(t, cart.AddItem(1))
	require.NoError(t, cart.AddItem(1))

	require.Len(t, state.Cart, 1)
	assert.Equal(t, 2, state.Cart[0].Quantity)
	assert.Equal(t, "Café", state.Cart[0].Name)
	assert.Equal(t, 3, state.Cart[0].StockSnapshot)
}

func TestAddItemNeverExceedsStockSnapshot(t *testing.T) {
	cart, state, _ := newCartFixture(t)

	require.NoError(t, cart.AddItem(1))
	require.NoError(t, cart.AddItem(1))
	require.NoError(t, cart.AddItem(1))

	err := cart.AddItem(1)
	assert.EqualError(t, err, "Só temos 3 unidades em estoque!")
	assert.Equal(t, 3, state.Cart[0].Quantity)
}

func TestChangeQuantityBelowOneRemoves(t *testing.T) {
	cart, state, _ := newCartFixture(t)

	require.NoError(t, cart.AddItem(1))
	require.NoError(t, cart.AddItem(2))

	require.NoError(t, cart.ChangeQuantity(0, -1))

	require.Len(t, state.Cart, 1)
	assert.Equal(t, 2, state.Cart[0].ProductID)
}

func TestChangeQuantityRefusesOverSnapshot(t *testing.T) {
	cart, state, _ := newCartFixture(t)

	require.NoError(t, cart.AddItem(1))

	err := cart.ChangeQuantity(0, 5)
	assert.EqualError(t, err, "Só temos 3 unidades em estoque!")
	assert.Equal(t, 1, state.Cart[0].Quantity)
}

func TestChangeQuantityInvalidIndex(t *testing.T) {
	cart, _, _ := newCartFixture(t)

	assert.ErrorIs(t, cart.ChangeQuantity(0, 1), ErrInvalidCartItem)
	assert.ErrorIs(t, cart.RemoveItem(-1), ErrInvalidCartItem)
}

func TestTotalAndItemCount(t *testing.T) {
	cart, _, _ := newCartFixture(t)

	require.NoError(t, cart.AddItem(1))
	require.NoError(t, cart.AddItem(1))
	require.NoError(t, cart.AddItem(2))

	// 2 x 12.50 + 1 x 4.90
	assert.True(t, cart.Total().Equal(price("29.90")), "got %s", cart.Total())
	assert.Equal(t, 3, cart.ItemCount())

	// Totals are recomputed fresh after every mutation.
	require.NoError(t, cart.ChangeQuantity(1, 1))
	assert.True(t, cart.Total().Equal(price("34.80")), "got %s", cart.Total())
}

func TestMutationsPersistSnapshot(t *testing.T) {
	cart, _, storage := newCartFixture(t)

	require.NoError(t, cart.AddItem(2))
	require.NoError(t, cart.AddItem(1))

	loaded := storage.Load()
	require.Len(t, loaded, 2)
	assert.Equal(t, 2, loaded[0].ProductID)
	assert.Equal(t, 1, loaded[1].ProductID)

	require.NoError(t, cart.RemoveItem(0))
	loaded = storage.Load()
	require.Len(t, loaded, 1)
	assert.Equal(t, 1, loaded[0].ProductID)
}

func TestCartRestoredFromSnapshot(t *testing.T) {
	storage := repositories.NewCartStorage(filepath.Join(t.TempDir(), "carrinho.json"))
	require.NoError(t, storage.Save([]models.CartItem{
		{ProductID: 5, Quantity: 2, Name: "Coador", UnitPrice: price("9.90"), StockSnapshot: 4},
	}))

	state := models.NewAppState()
	cart := NewCartService(state, storage)

	require.Len(t, state.Cart, 1)
	assert.Equal(t, "Coador", state.Cart[0].Name)
	assert.Equal(t, 2, cart.ItemCount())
}
