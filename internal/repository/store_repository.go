package repository

import (
	"context"
	"errors"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/models"
)

var (
	ErrStoreNotFound = errors.New("store not found")
)

// StoreRepository defines the interface for store reference data
type StoreRepository interface {
	GetAll(ctx context.Context) ([]models.Store, error)
	GetByID(ctx context.Context, id string) (*models.Store, error)
}

// InMemoryStoreRepository implements StoreRepository with seeded data.
// Slice-backed for the same stable-order reason as products.
type InMemoryStoreRepository struct {
	stores []models.Store
	byID   map[string]int
}

// NewInMemoryStoreRepository creates a store repository seeded with the
// Polish retail chains used by the demo.
func NewInMemoryStoreRepository() *InMemoryStoreRepository {
	stores := []models.Store{
		{ID: "s01", Name: "Biedronka", StoreType: models.StoreTypeDiscount, LocationCount: 3200},
		{ID: "s02", Name: "LIDL", StoreType: models.StoreTypeDiscount, LocationCount: 850},
		{ID: "s03", Name: "Dino", StoreType: models.StoreTypeDiscount, LocationCount: 2300},
		{ID: "s04", Name: "Żabka", StoreType: models.StoreTypeConvenience, LocationCount: 9500},
		{ID: "s05", Name: "Auchan", StoreType: models.StoreTypeHypermarket, LocationCount: 70},
		{ID: "s06", Name: "Carrefour", StoreType: models.StoreTypeHypermarket, LocationCount: 90},
		{ID: "s07", Name: "Rossmann", StoreType: models.StoreTypeDrugstore, LocationCount: 1600},
		{ID: "s08", Name: "Apteka Gemini", StoreType: models.StoreTypePharmacy, LocationCount: 250},
		{ID: "s09", Name: "Media Expert", StoreType: models.StoreTypeElectronics, LocationCount: 550},
		{ID: "s10", Name: "IKEA", StoreType: models.StoreTypeFurniture, LocationCount: 12},
	}

	byID := make(map[string]int, len(stores))
	for i, s := range stores {
		byID[s.ID] = i
	}

	return &InMemoryStoreRepository{
		stores: stores,
		byID:   byID,
	}
}

// GetAll returns all stores in seed order
func (r *InMemoryStoreRepository) GetAll(ctx context.Context) ([]models.Store, error) {
	out := make([]models.Store, len(r.stores))
	copy(out, r.stores)
	return out, nil
}

// GetByID returns a store by its ID
func (r *InMemoryStoreRepository) GetByID(ctx context.Context, id string) (*models.Store, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrStoreNotFound
	}
	s := r.stores[i]
	return &s, nil
}
