package service

import (
	"context"
	"testing"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/catalog"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/recipe"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/repository"
)

func newTestServices(t *testing.T) (*CatalogService, *RecipeService) {
	t.Helper()

	registry := catalog.NewRegistry()
	productRepo := repository.NewInMemoryProductRepository(registry)
	storeRepo := repository.NewInMemoryStoreRepository()
	dishRepo, err := repository.NewInMemoryDishRepository()
	if err != nil {
		t.Fatalf("failed to build dish repository: %v", err)
	}

	ctx := context.Background()
	products, err := productRepo.GetAll(ctx)
	if err != nil {
		t.Fatalf("failed to load products: %v", err)
	}
	stores, err := storeRepo.GetAll(ctx)
	if err != nil {
		t.Fatalf("failed to load stores: %v", err)
	}

	cat := catalog.NewSynthesizer(registry, catalog.NewSeededSource(42)).BuildCatalog(products, stores)
	analyzer := recipe.NewAnalyzer(recipe.NewSubstringMatcher(), registry)

	return NewCatalogService(cat, registry, storeRepo),
		NewRecipeService(dishRepo, analyzer, cat)
}

func TestRecipeService_AnalyzeCost(t *testing.T) {
	_, svc := newTestServices(t)
	ctx := context.Background()

	analysis, err := svc.AnalyzeCost(ctx, "d01")
	if err != nil {
		t.Fatalf("AnalyzeCost() error = %v", err)
	}

	if analysis.DishID != "d01" {
		t.Errorf("dishId = %s, want d01", analysis.DishID)
	}
	if len(analysis.Ingredients) == 0 {
		t.Fatal("expected ingredient results")
	}
	if analysis.TotalCost <= 0 {
		t.Errorf("totalCost = %v, want > 0", analysis.TotalCost)
	}
}

func TestRecipeService_AnalyzeCost_NotFound(t *testing.T) {
	_, svc := newTestServices(t)

	if _, err := svc.AnalyzeCost(context.Background(), "d999"); err != repository.ErrDishNotFound {
		t.Errorf("AnalyzeCost(unknown) error = %v, want ErrDishNotFound", err)
	}
}

func TestRecipeService_BuildShoppingList_NotFound(t *testing.T) {
	_, svc := newTestServices(t)

	if _, err := svc.BuildShoppingList(context.Background(), "d999"); err != repository.ErrDishNotFound {
		t.Errorf("BuildShoppingList(unknown) error = %v, want ErrDishNotFound", err)
	}
}

func TestRecipeService_CompareDishes_SkipsUnknown(t *testing.T) {
	_, svc := newTestServices(t)

	analyses, err := svc.CompareDishes(context.Background(), []string{"d01", "d999", "d02"})
	if err != nil {
		t.Fatalf("CompareDishes() error = %v", err)
	}

	if len(analyses) != 2 {
		t.Fatalf("expected 2 analyses (unknown skipped), got %d", len(analyses))
	}
	if analyses[0].DishID != "d01" || analyses[1].DishID != "d02" {
		t.Errorf("unexpected order: %s, %s", analyses[0].DishID, analyses[1].DishID)
	}
}

func TestRecipeService_RankPopularDishes(t *testing.T) {
	_, svc := newTestServices(t)

	ranked, err := svc.RankPopularDishes(context.Background())
	if err != nil {
		t.Fatalf("RankPopularDishes() error = %v", err)
	}

	if len(ranked) != 5 {
		t.Fatalf("expected top 5 dishes, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].SavingsPercentage > ranked[i-1].SavingsPercentage {
			t.Errorf("ranking not descending at index %d", i)
		}
	}
}

func TestCatalogService_ListProducts_Filters(t *testing.T) {
	catalogSvc, _ := newTestServices(t)
	ctx := context.Background()

	all := catalogSvc.ListProducts(ctx, ProductFilters{})
	if len(all) == 0 {
		t.Fatal("expected products in unfiltered listing")
	}

	dairy := catalogSvc.ListProducts(ctx, ProductFilters{CategoryID: catalog.CategoryDairy})
	if len(dairy) == 0 {
		t.Fatal("expected dairy products")
	}
	for _, e := range dairy {
		if e.Product.CategoryID != catalog.CategoryDairy {
			t.Errorf("product %s has category %d, want dairy", e.Product.ID, e.Product.CategoryID)
		}
	}

	searched := catalogSvc.ListProducts(ctx, ProductFilters{Search: "kapusta"})
	if len(searched) != 2 {
		t.Errorf("search 'kapusta' returned %d products, want 2", len(searched))
	}

	lidlOnly := catalogSvc.ListProducts(ctx, ProductFilters{Store: "LIDL"})
	for _, e := range lidlOnly {
		for _, q := range e.Quotes {
			if q.StoreName != "LIDL" {
				t.Errorf("store filter leaked quote from %s", q.StoreName)
			}
		}
	}
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	catalogSvc, _ := newTestServices(t)

	if _, err := catalogSvc.GetProduct(context.Background(), "p999"); err != repository.ErrProductNotFound {
		t.Errorf("GetProduct(unknown) error = %v, want ErrProductNotFound", err)
	}
}
