package service

import (
	"context"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/catalog"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/models"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/recipe"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/repository"
)

// RecipeService exposes the cost-analysis engine to the HTTP layer.
type RecipeService struct {
	dishRepo repository.DishRepository
	analyzer *recipe.Analyzer
	cat      *catalog.Catalog
}

// NewRecipeService creates a recipe service over a built catalog snapshot.
func NewRecipeService(dishRepo repository.DishRepository, analyzer *recipe.Analyzer, cat *catalog.Catalog) *RecipeService {
	return &RecipeService{
		dishRepo: dishRepo,
		analyzer: analyzer,
		cat:      cat,
	}
}

// ListDishes returns all known dishes.
func (s *RecipeService) ListDishes(ctx context.Context) ([]models.Dish, error) {
	return s.dishRepo.GetAll(ctx)
}

// GetDish returns a dish by id. Unknown ids yield ErrDishNotFound.
func (s *RecipeService) GetDish(ctx context.Context, id string) (*models.Dish, error) {
	return s.dishRepo.GetByID(ctx, id)
}

// AnalyzeCost runs the cost analysis for one dish.
func (s *RecipeService) AnalyzeCost(ctx context.Context, dishID string) (*models.CostAnalysis, error) {
	dish, err := s.dishRepo.GetByID(ctx, dishID)
	if err != nil {
		return nil, err
	}
	analysis := s.analyzer.Analyze(*dish, s.cat)
	return &analysis, nil
}

// BuildShoppingList builds the purchasable list for one dish.
func (s *RecipeService) BuildShoppingList(ctx context.Context, dishID string) (*models.ShoppingList, error) {
	dish, err := s.dishRepo.GetByID(ctx, dishID)
	if err != nil {
		return nil, err
	}
	list := s.analyzer.BuildShoppingList(*dish, s.cat)
	return &list, nil
}

// RankPopularDishes returns the top dishes by savings percentage.
func (s *RecipeService) RankPopularDishes(ctx context.Context) ([]models.RankedDish, error) {
	dishes, err := s.dishRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.analyzer.RankPopular(dishes, s.cat), nil
}

// CompareDishes analyzes a batch of dishes. Unknown ids are silently
// skipped rather than failing the whole batch.
func (s *RecipeService) CompareDishes(ctx context.Context, dishIDs []string) ([]models.CostAnalysis, error) {
	out := make([]models.CostAnalysis, 0, len(dishIDs))
	for _, id := range dishIDs {
		dish, err := s.dishRepo.GetByID(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, s.analyzer.Analyze(*dish, s.cat))
	}
	return out, nil
}
