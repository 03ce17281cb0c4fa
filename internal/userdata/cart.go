package userdata

import (
	"context"
	"errors"
	"sync"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/repository"
)

var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// CartItem is one line of a user's cart.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartRepository is the per-user cart abstraction. The reference demo
// kept these in a bare global map; any concurrent request pair would
// race, so access goes through a mutex here.
type CartRepository interface {
	Get(userID string) []CartItem
	Set(userID string, items []CartItem)
}

// InMemoryCartRepository implements CartRepository with a guarded map.
type InMemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string][]CartItem
}

// NewInMemoryCartRepository creates an empty cart repository.
func NewInMemoryCartRepository() *InMemoryCartRepository {
	return &InMemoryCartRepository{
		carts: make(map[string][]CartItem),
	}
}

// Get returns a copy of the user's cart.
func (r *InMemoryCartRepository) Get(userID string) []CartItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.carts[userID]
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}

// Set replaces the user's cart.
func (r *InMemoryCartRepository) Set(userID string, items []CartItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[userID] = items
}

// CartService validates and applies cart mutations.
type CartService struct {
	carts       CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a cart service.
func NewCartService(carts CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		carts:       carts,
		productRepo: productRepo,
	}
}

// AddItem validates the product id and quantity, then merges the item
// into the user's cart. Adding an existing product increases its quantity.
func (s *CartService) AddItem(ctx context.Context, userID string, item CartItem) ([]CartItem, error) {
	if item.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.productRepo.GetByID(ctx, item.ProductID); err != nil {
		return nil, ErrInvalidProduct
	}

	items := s.carts.Get(userID)
	merged := false
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	s.carts.Set(userID, items)
	return items, nil
}

// GetCart returns the user's cart.
func (s *CartService) GetCart(ctx context.Context, userID string) []CartItem {
	return s.carts.Get(userID)
}

// ClearCart empties the user's cart.
func (s *CartService) ClearCart(ctx context.Context, userID string) {
	s.carts.Set(userID, nil)
}
