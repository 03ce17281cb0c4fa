package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/catalog"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/models"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/recipe"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/repository"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/service"
	"github.com/nesquaeke/smartshopaipoland-sub000/pkg/logger"
)

func newTestDishHandler(t *testing.T) *DishHandler {
	t.Helper()

	registry := catalog.NewRegistry()
	productRepo := repository.NewInMemoryProductRepository(registry)
	storeRepo := repository.NewInMemoryStoreRepository()
	dishRepo, err := repository.NewInMemoryDishRepository()
	if err != nil {
		t.Fatalf("failed to build dish repository: %v", err)
	}

	ctx := context.Background()
	products, _ := productRepo.GetAll(ctx)
	stores, _ := storeRepo.GetAll(ctx)
	cat := catalog.NewSynthesizer(registry, catalog.NewSeededSource(42)).BuildCatalog(products, stores)

	analyzer := recipe.NewAnalyzer(recipe.NewSubstringMatcher(), registry)
	svc := service.NewRecipeService(dishRepo, analyzer, cat)
	return NewDishHandler(svc, logger.New("error"))
}

func newDishRouter(h *DishHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/dish", h.ListDishes)
	r.Get("/api/dish/popular", h.RankPopular)
	r.Post("/api/dish/compare", h.CompareDishes)
	r.Get("/api/dish/{dishId}", h.GetDish)
	r.Get("/api/dish/{dishId}/analysis", h.AnalyzeCost)
	r.Get("/api/dish/{dishId}/shopping-list", h.BuildShoppingList)
	return r
}

func TestListDishes(t *testing.T) {
	r := newDishRouter(newTestDishHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/dish", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var dishes []models.Dish
	if err := json.NewDecoder(w.Body).Decode(&dishes); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(dishes) != 7 {
		t.Errorf("expected 7 dishes, got %d", len(dishes))
	}
}

func TestAnalyzeCost_Success(t *testing.T) {
	r := newDishRouter(newTestDishHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/dish/d01/analysis", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var analysis models.CostAnalysis
	if err := json.NewDecoder(w.Body).Decode(&analysis); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if analysis.DishID != "d01" {
		t.Errorf("dishId = %s, want d01", analysis.DishID)
	}
	if analysis.TotalCost <= 0 {
		t.Errorf("totalCost = %v, want > 0", analysis.TotalCost)
	}
}

func TestAnalyzeCost_NotFound(t *testing.T) {
	r := newDishRouter(newTestDishHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/dish/d999/analysis", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestBuildShoppingList_Success(t *testing.T) {
	r := newDishRouter(newTestDishHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/dish/d02/shopping-list", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var list models.ShoppingList
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(list.Items) == 0 {
		t.Error("expected shopping list items")
	}
	if len(list.StoreRecommendations) == 0 || len(list.StoreRecommendations) > 3 {
		t.Errorf("expected 1-3 store recommendations, got %d", len(list.StoreRecommendations))
	}
}

func TestRankPopularEndpoint(t *testing.T) {
	r := newDishRouter(newTestDishHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/dish/popular", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var ranked []models.RankedDish
	if err := json.NewDecoder(w.Body).Decode(&ranked); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(ranked) != 5 {
		t.Errorf("expected 5 ranked dishes, got %d", len(ranked))
	}
}

func TestCompareDishes_Handler(t *testing.T) {
	r := newDishRouter(newTestDishHandler(t))

	body, _ := json.Marshal(CompareRequest{DishIDs: []string{"d01", "d999"}})
	req := httptest.NewRequest(http.MethodPost, "/api/dish/compare", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var analyses []models.CostAnalysis
	if err := json.NewDecoder(w.Body).Decode(&analyses); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(analyses) != 1 {
		t.Errorf("expected unknown dish filtered out, got %d analyses", len(analyses))
	}
}

func TestCompareDishes_EmptyBody(t *testing.T) {
	r := newDishRouter(newTestDishHandler(t))

	req := httptest.NewRequest(http.MethodPost, "/api/dish/compare", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
