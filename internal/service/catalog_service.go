package service

import (
	"context"
	"sort"
	"strings"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/catalog"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/models"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/repository"
)

// ProductFilters narrows the product listing. Zero values mean "no
// filter" for every field.
type ProductFilters struct {
	CategoryID int
	Search     string
	Store      string
	MinPrice   float64
	MaxPrice   float64
}

// CatalogService exposes the synthesized catalog to the HTTP layer.
type CatalogService struct {
	cat       *catalog.Catalog
	registry  *catalog.Registry
	storeRepo repository.StoreRepository
}

// NewCatalogService creates a catalog service over a built snapshot.
func NewCatalogService(cat *catalog.Catalog, registry *catalog.Registry, storeRepo repository.StoreRepository) *CatalogService {
	return &CatalogService{
		cat:       cat,
		registry:  registry,
		storeRepo: storeRepo,
	}
}

// ListProducts returns catalog entries matching the filters, sorted by
// product name. The price filter keeps an entry when any of its quotes
// falls inside the range; the store filter narrows each entry's quotes
// to that store.
func (s *CatalogService) ListProducts(ctx context.Context, f ProductFilters) []catalog.Entry {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []catalog.Entry
	for _, e := range s.cat.Entries() {
		if f.CategoryID != 0 && e.Product.CategoryID != f.CategoryID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Product.Name), search) {
			continue
		}

		quotes := e.Quotes
		if f.Store != "" {
			quotes = filterQuotesByStore(quotes, f.Store)
			if len(quotes) == 0 {
				continue
			}
		}
		if f.MinPrice > 0 || f.MaxPrice > 0 {
			if !anyQuoteInRange(quotes, f.MinPrice, f.MaxPrice) {
				continue
			}
		}

		out = append(out, catalog.Entry{Product: e.Product, Quotes: quotes})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Product.Name < out[j].Product.Name
	})
	return out
}

// GetProduct returns the catalog entry for a product id.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (catalog.Entry, error) {
	e, ok := s.cat.Entry(id)
	if !ok {
		return catalog.Entry{}, repository.ErrProductNotFound
	}
	return e, nil
}

// ListStores returns all stores.
func (s *CatalogService) ListStores(ctx context.Context) ([]models.Store, error) {
	return s.storeRepo.GetAll(ctx)
}

// ListCategories returns the category table.
func (s *CatalogService) ListCategories(ctx context.Context) []catalog.Category {
	return s.registry.Categories()
}

func filterQuotesByStore(quotes []models.PriceQuote, store string) []models.PriceQuote {
	var out []models.PriceQuote
	for _, q := range quotes {
		if strings.EqualFold(q.StoreName, store) {
			out = append(out, q)
		}
	}
	return out
}

func anyQuoteInRange(quotes []models.PriceQuote, min, max float64) bool {
	for _, q := range quotes {
		if min > 0 && q.Price < min {
			continue
		}
		if max > 0 && q.Price > max {
			continue
		}
		return true
	}
	return false
}
