package recipe

import (
	"math"
	"sort"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/catalog"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/models"
)

// Analyzer computes full cost breakdowns for dishes against a catalog
// snapshot. Pure computation; safe for concurrent use.
type Analyzer struct {
	matcher  Matcher
	registry *catalog.Registry
}

// NewAnalyzer creates an analyzer with the given matcher and registry.
func NewAnalyzer(matcher Matcher, registry *catalog.Registry) *Analyzer {
	return &Analyzer{
		matcher:  matcher,
		registry: registry,
	}
}

// Analyze produces the cost analysis for one dish. For each ingredient it
// picks the cheapest (store, price) pair across all matched products; an
// unmatched ingredient gets the registry fallback price for its category
// and contributes to the total only when essential. Savings against the
// restaurant reference price are signed and never clamped.
func (a *Analyzer) Analyze(dish models.Dish, cat *catalog.Catalog) models.CostAnalysis {
	analysis := models.CostAnalysis{
		DishID:          dish.ID,
		DishName:        dish.Name,
		Servings:        dish.Servings,
		RestaurantPrice: dish.RestaurantPrice,
		Ingredients:     make([]models.IngredientCost, 0, len(dish.Ingredients)),
	}

	groups := make(map[string]*models.StoreGroup)
	var total float64

	for _, req := range dish.Ingredients {
		products := a.matcher.Match(req, cat)
		product, quote, ok := cheapestQuote(products, cat)
		if !ok {
			fallback := a.registry.FallbackPrice(req.CategoryID)
			if req.Essential {
				total += fallback
			}
			analysis.Ingredients = append(analysis.Ingredients, models.IngredientCost{
				Name:          req.Name,
				Amount:        req.Amount,
				Essential:     req.Essential,
				Matched:       false,
				EstimatedCost: fallback,
				FallbackPrice: fallback,
			})
			continue
		}

		estimated := catalog.Round2(EstimateUnitCost(quote.Price, req.Amount))
		total += estimated

		analysis.Ingredients = append(analysis.Ingredients, models.IngredientCost{
			Name:          req.Name,
			Amount:        req.Amount,
			Essential:     req.Essential,
			Matched:       true,
			ProductID:     product.ID,
			ProductName:   product.Name,
			CheapestStore: quote.StoreName,
			CheapestPrice: quote.Price,
			EstimatedCost: estimated,
		})

		g, ok := groups[quote.StoreName]
		if !ok {
			g = &models.StoreGroup{StoreName: quote.StoreName}
			groups[quote.StoreName] = g
		}
		g.Items = append(g.Items, req.Name)
		g.ItemCount++
		g.TotalCost = catalog.Round2(g.TotalCost + estimated)
	}

	analysis.TotalCost = catalog.Round2(total)
	analysis.CostPerServing = catalog.Round2(analysis.TotalCost / float64(dish.Servings))
	analysis.Savings = catalog.Round2(dish.RestaurantPrice - analysis.TotalCost)
	analysis.SavingsPercentage = int(math.Round(analysis.Savings / dish.RestaurantPrice * 100))
	analysis.StoreGroups = sortedGroups(groups)

	return analysis
}

// cheapestQuote flattens every (store, price) pair of the matched
// products, sorts ascending by price and returns the minimum with its
// product. Ties keep the earlier catalog entry. ok is false when no
// matched product has a quote in the catalog.
func cheapestQuote(products []models.Product, cat *catalog.Catalog) (models.Product, models.PriceQuote, bool) {
	type priced struct {
		product models.Product
		quote   models.PriceQuote
	}

	var flat []priced
	for _, p := range products {
		entry, ok := cat.Entry(p.ID)
		if !ok {
			continue
		}
		for _, q := range entry.Quotes {
			flat = append(flat, priced{product: p, quote: q})
		}
	}

	if len(flat) == 0 {
		return models.Product{}, models.PriceQuote{}, false
	}

	sort.SliceStable(flat, func(i, j int) bool {
		return flat[i].quote.Price < flat[j].quote.Price
	})

	return flat[0].product, flat[0].quote, true
}

// sortedGroups orders store groups by item count descending; equal counts
// fall back to store name ascending so output is deterministic.
func sortedGroups(groups map[string]*models.StoreGroup) []models.StoreGroup {
	out := make([]models.StoreGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ItemCount != out[j].ItemCount {
			return out[i].ItemCount > out[j].ItemCount
		}
		return out[i].StoreName < out[j].StoreName
	})
	return out
}
