package recipe

import (
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/catalog"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/models"
)

const maxStoreRecommendations = 3

// BuildShoppingList projects a dish's cost analysis into a purchasable
// list. Missing ingredients are skipped; store recommendations are the
// top 3 store groups by covered item count (ties broken alphabetically
// by store name).
func (a *Analyzer) BuildShoppingList(dish models.Dish, cat *catalog.Catalog) models.ShoppingList {
	analysis := a.Analyze(dish, cat)

	list := models.ShoppingList{
		DishName:           dish.Name,
		TotalEstimatedCost: analysis.TotalCost,
		Items:              make([]models.ShoppingListItem, 0, len(analysis.Ingredients)),
	}

	for _, ing := range analysis.Ingredients {
		if !ing.Matched {
			continue
		}
		list.Items = append(list.Items, models.ShoppingListItem{
			Name:          ing.Name,
			Amount:        ing.Amount,
			ProductName:   ing.ProductName,
			Store:         ing.CheapestStore,
			Price:         ing.CheapestPrice,
			EstimatedCost: ing.EstimatedCost,
		})
	}

	// Store groups come pre-sorted from the analyzer.
	for i, g := range analysis.StoreGroups {
		if i == maxStoreRecommendations {
			break
		}
		list.StoreRecommendations = append(list.StoreRecommendations, models.StoreRecommendation{
			StoreName: g.StoreName,
			ItemCount: g.ItemCount,
			TotalCost: g.TotalCost,
		})
	}

	return list
}
