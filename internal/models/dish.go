package models

// IngredientRequirement is one line of a dish's ingredient list.
// Name and Amount are free text from the recipe data; CategoryID is the
// fallback bucket used for pricing when no catalog product matches.
type IngredientRequirement struct {
	Name       string `json:"name" validate:"required"`
	Amount     string `json:"amount" validate:"required"`
	CategoryID int    `json:"categoryId"`
	Essential  bool   `json:"essential"`
}

// Dish represents a recipe with a restaurant reference price used to
// compute savings when cooking at home.
type Dish struct {
	ID              string                  `json:"id" validate:"required"`
	Name            string                  `json:"name" validate:"required"`
	Servings        int                     `json:"servings" validate:"gt=0"`
	RestaurantPrice float64                 `json:"restaurantPrice" validate:"gt=0"`
	Ingredients     []IngredientRequirement `json:"ingredients" validate:"min=1,dive"`
}
