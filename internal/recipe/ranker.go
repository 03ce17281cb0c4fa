package recipe

import (
	"sort"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/catalog"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/models"
)

const maxPopularDishes = 5

// RankPopular analyzes every dish and returns the top 5 ordered by
// savings percentage descending. Equal percentages keep input order.
func (a *Analyzer) RankPopular(dishes []models.Dish, cat *catalog.Catalog) []models.RankedDish {
	ranked := make([]models.RankedDish, 0, len(dishes))
	for _, d := range dishes {
		analysis := a.Analyze(d, cat)
		ranked = append(ranked, models.RankedDish{
			Dish:              d,
			TotalCost:         analysis.TotalCost,
			Savings:           analysis.Savings,
			SavingsPercentage: analysis.SavingsPercentage,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SavingsPercentage > ranked[j].SavingsPercentage
	})

	if len(ranked) > maxPopularDishes {
		ranked = ranked[:maxPopularDishes]
	}
	return ranked
}
