package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/catalog"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/models"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/repository"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/service"
	"github.com/nesquaeke/smartshopaipoland-sub000/pkg/logger"
)

func newTestProductHandler(t *testing.T) *ProductHandler {
	t.Helper()

	registry := catalog.NewRegistry()
	productRepo := repository.NewInMemoryProductRepository(registry)
	storeRepo := repository.NewInMemoryStoreRepository()

	ctx := context.Background()
	products, _ := productRepo.GetAll(ctx)
	stores, _ := storeRepo.GetAll(ctx)
	cat := catalog.NewSynthesizer(registry, catalog.NewSeededSource(42)).BuildCatalog(products, stores)

	svc := service.NewCatalogService(cat, registry, storeRepo)
	return NewProductHandler(svc, logger.New("error"))
}

func newProductRouter(h *ProductHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/product", h.ListProducts)
	r.Get("/api/product/{productId}", h.GetProduct)
	r.Get("/api/store", h.ListStores)
	r.Get("/api/category", h.ListCategories)
	return r
}

func TestListProducts(t *testing.T) {
	r := newProductRouter(newTestProductHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/product", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var entries []catalog.Entry
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(entries) == 0 {
		t.Error("expected products to be returned")
	}
	for _, e := range entries {
		if len(e.Quotes) == 0 {
			t.Errorf("product %s listed without quotes", e.Product.ID)
		}
	}
}

func TestListProducts_CategoryFilter(t *testing.T) {
	r := newProductRouter(newTestProductHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/product?category=3", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var entries []catalog.Entry
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, e := range entries {
		if e.Product.CategoryID != 3 {
			t.Errorf("product %s has category %d, want 3", e.Product.ID, e.Product.CategoryID)
		}
	}
}

func TestListProducts_InvalidCategory(t *testing.T) {
	r := newProductRouter(newTestProductHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/product?category=abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestGetProduct_Success(t *testing.T) {
	r := newProductRouter(newTestProductHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/product/p01", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var entry catalog.Entry
	if err := json.NewDecoder(w.Body).Decode(&entry); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if entry.Product.ID != "p01" {
		t.Errorf("product id = %s, want p01", entry.Product.ID)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	r := newProductRouter(newTestProductHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/product/p999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestListStores(t *testing.T) {
	r := newProductRouter(newTestProductHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/store", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var stores []models.Store
	if err := json.NewDecoder(w.Body).Decode(&stores); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(stores) != 10 {
		t.Errorf("expected 10 stores, got %d", len(stores))
	}
}

func TestListCategories(t *testing.T) {
	r := newProductRouter(newTestProductHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/category", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var categories []catalog.Category
	if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(categories) != 12 {
		t.Errorf("expected 12 categories, got %d", len(categories))
	}
}
