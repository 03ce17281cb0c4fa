package models

// IngredientCost is the per-ingredient outcome of a cost analysis.
// Either Matched is true and the cheapest store fields are set, or the
// ingredient was missing from the catalog and FallbackPrice applies.
type IngredientCost struct {
	Name          string  `json:"name"`
	Amount        string  `json:"amount"`
	Essential     bool    `json:"essential"`
	Matched       bool    `json:"matched"`
	ProductID     string  `json:"productId,omitempty"`
	ProductName   string  `json:"productName,omitempty"`
	CheapestStore string  `json:"cheapestStore,omitempty"`
	CheapestPrice float64 `json:"cheapestPrice,omitempty"`
	EstimatedCost float64 `json:"estimatedCost"`
	FallbackPrice float64 `json:"fallbackPrice,omitempty"`
}

// StoreGroup aggregates matched ingredients by the store offering each
// one's lowest price.
type StoreGroup struct {
	StoreName string   `json:"storeName"`
	Items     []string `json:"items"`
	ItemCount int      `json:"itemCount"`
	TotalCost float64  `json:"totalCost"`
}

// CostAnalysis is the full cost breakdown for one dish.
type CostAnalysis struct {
	DishID            string           `json:"dishId"`
	DishName          string           `json:"dishName"`
	Servings          int              `json:"servings"`
	Ingredients       []IngredientCost `json:"ingredients"`
	TotalCost         float64          `json:"totalCost"`
	CostPerServing    float64          `json:"costPerServing"`
	RestaurantPrice   float64          `json:"restaurantPrice"`
	Savings           float64          `json:"savings"`
	SavingsPercentage int              `json:"savingsPercentage"`
	StoreGroups       []StoreGroup     `json:"storeGroups"`
}

// ShoppingListItem is one purchasable line of a shopping list.
type ShoppingListItem struct {
	Name          string  `json:"name"`
	Amount        string  `json:"amount"`
	ProductName   string  `json:"productName"`
	Store         string  `json:"store"`
	Price         float64 `json:"price"`
	EstimatedCost float64 `json:"estimatedCost"`
}

// StoreRecommendation ranks a store by how many list items it covers.
type StoreRecommendation struct {
	StoreName string  `json:"storeName"`
	ItemCount int     `json:"itemCount"`
	TotalCost float64 `json:"totalCost"`
}

// ShoppingList projects a cost analysis into a purchasable list.
type ShoppingList struct {
	DishName             string                `json:"dishName"`
	TotalEstimatedCost   float64               `json:"totalEstimatedCost"`
	Items                []ShoppingListItem    `json:"items"`
	StoreRecommendations []StoreRecommendation `json:"storeRecommendations"`
}

// RankedDish pairs a dish with its savings metrics for popularity ranking.
type RankedDish struct {
	Dish              Dish    `json:"dish"`
	TotalCost         float64 `json:"totalCost"`
	Savings           float64 `json:"savings"`
	SavingsPercentage int     `json:"savingsPercentage"`
}
