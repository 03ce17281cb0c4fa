package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/catalog"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/models"
)

var (
	ErrDishNotFound = errors.New("dish not found")
)

// DishRepository defines the interface for recipe reference data
type DishRepository interface {
	GetAll(ctx context.Context) ([]models.Dish, error)
	GetByID(ctx context.Context, id string) (*models.Dish, error)
}

// InMemoryDishRepository implements DishRepository with seeded recipes.
type InMemoryDishRepository struct {
	dishes []models.Dish
	byID   map[string]int
}

// NewInMemoryDishRepository creates a dish repository seeded with the
// demo recipes. Seed fixtures are checked against their validate tags so
// a bad edit fails at startup rather than as a wrong analysis.
func NewInMemoryDishRepository() (*InMemoryDishRepository, error) {
	dishes := []models.Dish{
		{
			ID: "d01", Name: "Bigos", Servings: 4, RestaurantPrice: 89.90,
			Ingredients: []models.IngredientRequirement{
				{Name: "Kapusta kiszona", Amount: "500g", CategoryID: catalog.CategoryVegetables, Essential: true},
				{Name: "Kiełbasa śląska", Amount: "400g", CategoryID: catalog.CategoryMeat, Essential: true},
				{Name: "Boczek wędzony", Amount: "200g", CategoryID: catalog.CategoryMeat, Essential: true},
				{Name: "Cebula żółta", Amount: "2 szt", CategoryID: catalog.CategoryVegetables, Essential: true},
				{Name: "Suszone grzyby", Amount: "30g", CategoryID: catalog.CategoryDryGoods, Essential: false},
				{Name: "Koncentrat pomidorowy", Amount: "100g", CategoryID: catalog.CategoryDryGoods, Essential: false},
			},
		},
		{
			ID: "d02", Name: "Pierogi ruskie", Servings: 4, RestaurantPrice: 64.00,
			Ingredients: []models.IngredientRequirement{
				{Name: "Mąka pszenna", Amount: "500g", CategoryID: catalog.CategoryDryGoods, Essential: true},
				{Name: "Twaróg półtłusty", Amount: "300g", CategoryID: catalog.CategoryDairy, Essential: true},
				{Name: "Ziemniaki", Amount: "500g", CategoryID: catalog.CategoryVegetables, Essential: true},
				{Name: "Cebula", Amount: "1 szt", CategoryID: catalog.CategoryVegetables, Essential: true},
				{Name: "Masło", Amount: "50g", CategoryID: catalog.CategoryDairy, Essential: false},
			},
		},
		{
			ID: "d03", Name: "Żurek", Servings: 4, RestaurantPrice: 69.90,
			Ingredients: []models.IngredientRequirement{
				{Name: "Zakwas żytni", Amount: "500ml", CategoryID: catalog.CategoryDryGoods, Essential: true},
				{Name: "Biała kiełbasa", Amount: "400g", CategoryID: catalog.CategoryMeat, Essential: true},
				{Name: "Jajka", Amount: "4 szt", CategoryID: catalog.CategoryDairy, Essential: true},
				{Name: "Ziemniaki", Amount: "400g", CategoryID: catalog.CategoryVegetables, Essential: true},
				{Name: "Majeranek", Amount: "10g", CategoryID: catalog.CategoryDryGoods, Essential: false},
			},
		},
		{
			ID: "d04", Name: "Kotlet schabowy z ziemniakami", Servings: 2, RestaurantPrice: 75.00,
			Ingredients: []models.IngredientRequirement{
				{Name: "Schab wieprzowy", Amount: "500g", CategoryID: catalog.CategoryMeat, Essential: true},
				{Name: "Bułka tarta", Amount: "100g", CategoryID: catalog.CategoryBakery, Essential: true},
				{Name: "Jajka", Amount: "2 szt", CategoryID: catalog.CategoryDairy, Essential: true},
				{Name: "Ziemniaki", Amount: "600g", CategoryID: catalog.CategoryVegetables, Essential: true},
				{Name: "Kapusta biała", Amount: "300g", CategoryID: catalog.CategoryVegetables, Essential: false},
			},
		},
		{
			ID: "d05", Name: "Gołąbki w sosie pomidorowym", Servings: 4, RestaurantPrice: 79.90,
			Ingredients: []models.IngredientRequirement{
				{Name: "Kapusta biała", Amount: "1000g", CategoryID: catalog.CategoryVegetables, Essential: true},
				{Name: "Filet z kurczaka", Amount: "500g", CategoryID: catalog.CategoryMeat, Essential: true},
				{Name: "Ryż biały", Amount: "200g", CategoryID: catalog.CategoryDryGoods, Essential: true},
				{Name: "Cebula", Amount: "1 szt", CategoryID: catalog.CategoryVegetables, Essential: true},
				{Name: "Koncentrat pomidorowy", Amount: "150g", CategoryID: catalog.CategoryDryGoods, Essential: true},
			},
		},
		{
			ID: "d06", Name: "Rosół z makaronem", Servings: 6, RestaurantPrice: 59.90,
			Ingredients: []models.IngredientRequirement{
				{Name: "Filet z kurczaka", Amount: "600g", CategoryID: catalog.CategoryMeat, Essential: true},
				{Name: "Marchew", Amount: "300g", CategoryID: catalog.CategoryVegetables, Essential: true},
				{Name: "Cebula", Amount: "1 szt", CategoryID: catalog.CategoryVegetables, Essential: true},
				{Name: "Makaron nitki", Amount: "250g", CategoryID: catalog.CategoryDryGoods, Essential: true},
				{Name: "Natka pietruszki", Amount: "1 szt", CategoryID: catalog.CategoryVegetables, Essential: false},
			},
		},
		{
			ID: "d07", Name: "Placki ziemniaczane", Servings: 3, RestaurantPrice: 45.00,
			Ingredients: []models.IngredientRequirement{
				{Name: "Ziemniaki", Amount: "1000g", CategoryID: catalog.CategoryVegetables, Essential: true},
				{Name: "Cebula", Amount: "1 szt", CategoryID: catalog.CategoryVegetables, Essential: true},
				{Name: "Jajka", Amount: "2 szt", CategoryID: catalog.CategoryDairy, Essential: true},
				{Name: "Mąka pszenna", Amount: "100g", CategoryID: catalog.CategoryDryGoods, Essential: true},
				{Name: "Śmietana", Amount: "200g", CategoryID: catalog.CategoryDairy, Essential: false},
			},
		},
	}

	validate := validator.New()
	byID := make(map[string]int, len(dishes))
	for i, d := range dishes {
		if err := validate.Struct(d); err != nil {
			return nil, fmt.Errorf("invalid dish seed %q: %w", d.ID, err)
		}
		byID[d.ID] = i
	}

	return &InMemoryDishRepository{
		dishes: dishes,
		byID:   byID,
	}, nil
}

// GetAll returns all dishes in seed order
func (r *InMemoryDishRepository) GetAll(ctx context.Context) ([]models.Dish, error) {
	out := make([]models.Dish, len(r.dishes))
	copy(out, r.dishes)
	return out, nil
}

// GetByID returns a dish by its ID
func (r *InMemoryDishRepository) GetByID(ctx context.Context, id string) (*models.Dish, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrDishNotFound
	}
	d := r.dishes[i]
	return &d, nil
}
