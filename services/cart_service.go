package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"mini-pdv/models"
	"mini-pdv/repositories"
)

var (
	ErrProductNotFound = errors.New("Produto não encontrado!")
	ErrOutOfStock      = errors.New("Produto fora de estoque!")
	ErrInvalidCartItem = errors.New("Item do carrinho inválido")
)

// CartService owns the cart lines. Quantities are capped by the stock
// snapshot taken when the product entered the cart, and every mutation
// rewrites the durable snapshot file.
type CartService struct {
	state   *models.AppState
	storage *repositories.CartStorage
}

func NewCartService(state *models.AppState, storage *repositories.CartStorage) *CartService {
	s := &CartService{state: state, storage: storage}

	state.Lock()
	state.Cart = storage.Load()
	state.Unlock()

	return s
}

// AddItem puts one unit of the product in the cart, merging with an
// existing line for the same product. The product must exist in the
// current catalog cache and have stock.
func (s *CartService) AddItem(productID int) error {
	s.state.Lock()
	defer s.state.Unlock()

	product, ok := s.state.FindProduct(productID)
	if !ok {
		return ErrProductNotFound
	}
	if product.Stock < 1 {
		return ErrOutOfStock
	}

	for i := range s.state.Cart {
		if s.state.Cart[i].ProductID == productID {
			if s.state.Cart[i].Quantity >= product.Stock {
				return fmt.Errorf("Só temos %d unidades em estoque!", product.Stock)
			}
			s.state.Cart[i].Quantity++
			s.persist()
			return nil
		}
	}

	s.state.Cart = append(s.state.Cart, models.CartItem{
		ProductID:     productID,
		Quantity:      1,
		Name:          product.Name,
		UnitPrice:     product.Price,
		StockSnapshot: product.Stock,
	})
	s.persist()
	return nil
}

// RemoveItem deletes the line at the given display position.
func (s *CartService) RemoveItem(index int) error {
	s.state.Lock()
	defer s.state.Unlock()
	return s.removeLocked(index)
}

// ChangeQuantity adjusts a line by delta. Dropping below one unit
// removes the line; exceeding the stock snapshot is refused.
func (s *CartService) ChangeQuantity(index, delta int) error {
	s.state.Lock()
	defer s.state.Unlock()

	if index < 0 || index >= len(s.state.Cart) {
		return ErrInvalidCartItem
	}

	item := &s.state.Cart[index]
	newQty := item.Quantity + delta

	if newQty < 1 {
		return s.removeLocked(index)
	}
	if newQty > item.StockSnapshot {
		return fmt.Errorf("Só temos %d unidades em estoque!", item.StockSnapshot)
	}

	item.Quantity = newQty
	s.persist()
	return nil
}

// Total recomputes the cart total from scratch on every call.
func (s *CartService) Total() decimal.Decimal {
	s.state.Lock()
	defer s.state.Unlock()
	return s.totalLocked()
}

// ItemCount is the unit count across all lines, used for the badge.
func (s *CartService) ItemCount() int {
	s.state.Lock()
	defer s.state.Unlock()

	count := 0
	for _, item := range s.state.Cart {
		count += item.Quantity
	}
	return count
}

// Items returns a copy of the cart lines in display order.
func (s *CartService) Items() []models.CartItem {
	s.state.Lock()
	defer s.state.Unlock()

	items := make([]models.CartItem, len(s.state.Cart))
	copy(items, s.state.Cart)
	return items
}

func (s *CartService) removeLocked(index int) error {
	if index < 0 || index >= len(s.state.Cart) {
		return ErrInvalidCartItem
	}
	s.state.Cart = append(s.state.Cart[:index], s.state.Cart[index+1:]...)
	s.persist()
	return nil
}

func (s *CartService) totalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.state.Cart {
		total = total.Add(item.Subtotal())
	}
	return total
}

// clearLocked empties the cart and removes the durable snapshot.
// Callers must hold the state lock.
func (s *CartService) clearLocked() {
	s.state.Cart = []models.CartItem{}
	if err := s.storage.Clear(); err != nil {
		log.Printf("Failed to clear cart snapshot: %v", err)
	}
}

func (s *CartService) persist() {
	if err := s.storage.Save(s.state.Cart); err != nil {
		log.Printf("Failed to save cart snapshot: %v", err)
	}
}
