package catalog

import (
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/models"
)

// Category is one entry of the static category table.
type Category struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Category ids used throughout the seed data.
const (
	CategoryVegetables  = 1
	CategoryFruits      = 2
	CategoryDairy       = 3
	CategoryMeat        = 4
	CategoryBakery      = 5
	CategoryBeverages   = 6
	CategoryDryGoods    = 7
	CategoryHousehold   = 8
	CategoryCosmetics   = 9
	CategoryElectronics = 10
	CategoryFurniture   = 11
	CategoryClothing    = 12
)

// storeTypeRule describes which categories a store format may carry.
// Priority categories are advisory and not used by pricing.
type storeTypeRule struct {
	allowed  map[int]bool
	priority map[int]bool
}

// Registry is the single source of category and store-type eligibility
// data. All other components look ids up here instead of hardcoding them.
type Registry struct {
	categories map[int]Category
	rules      map[models.StoreType]storeTypeRule
	fallback   map[int]float64
}

// NewRegistry builds the registry with the embedded rule tables.
func NewRegistry() *Registry {
	categories := map[int]Category{
		CategoryVegetables:  {ID: CategoryVegetables, Label: "Warzywa", Icon: "🥬"},
		CategoryFruits:      {ID: CategoryFruits, Label: "Owoce", Icon: "🍎"},
		CategoryDairy:       {ID: CategoryDairy, Label: "Nabiał", Icon: "🥛"},
		CategoryMeat:        {ID: CategoryMeat, Label: "Mięso", Icon: "🥩"},
		CategoryBakery:      {ID: CategoryBakery, Label: "Pieczywo", Icon: "🍞"},
		CategoryBeverages:   {ID: CategoryBeverages, Label: "Napoje", Icon: "🥤"},
		CategoryDryGoods:    {ID: CategoryDryGoods, Label: "Produkty sypkie", Icon: "🌾"},
		CategoryHousehold:   {ID: CategoryHousehold, Label: "Chemia domowa", Icon: "🧼"},
		CategoryCosmetics:   {ID: CategoryCosmetics, Label: "Kosmetyki", Icon: "💄"},
		CategoryElectronics: {ID: CategoryElectronics, Label: "Elektronika", Icon: "📺"},
		CategoryFurniture:   {ID: CategoryFurniture, Label: "Meble", Icon: "🛋️"},
		CategoryClothing:    {ID: CategoryClothing, Label: "Odzież", Icon: "👕"},
	}

	rules := map[models.StoreType]storeTypeRule{
		models.StoreTypeDiscount: {
			allowed:  categorySet(1, 2, 3, 4, 5, 6, 7, 8),
			priority: categorySet(1, 3, 5),
		},
		models.StoreTypeHypermarket: {
			allowed:  categorySet(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12),
			priority: categorySet(1, 4, 7),
		},
		models.StoreTypeConvenience: {
			allowed:  categorySet(2, 3, 5, 6),
			priority: categorySet(6),
		},
		models.StoreTypeDrugstore: {
			allowed:  categorySet(8, 9),
			priority: categorySet(9),
		},
		models.StoreTypePharmacy: {
			allowed:  categorySet(9),
			priority: categorySet(9),
		},
		models.StoreTypeElectronics: {
			allowed:  categorySet(10),
			priority: categorySet(10),
		},
		models.StoreTypeFurniture: {
			allowed:  categorySet(11),
			priority: categorySet(11),
		},
		models.StoreTypeClothing: {
			allowed:  categorySet(12),
			priority: categorySet(12),
		},
	}

	// Fixed reference prices used when a recipe ingredient has no catalog
	// match. Keyed by category id.
	fallback := map[int]float64{
		CategoryVegetables: 4.50,
		CategoryFruits:     5.50,
		CategoryDairy:      6.00,
		CategoryMeat:       15.00,
		CategoryBakery:     4.00,
		CategoryBeverages:  5.00,
		CategoryDryGoods:   6.50,
		CategoryHousehold:  12.00,
	}

	return &Registry{
		categories: categories,
		rules:      rules,
		fallback:   fallback,
	}
}

// defaultFallbackPrice applies to ingredient categories outside the table.
const defaultFallbackPrice = 8.00

// Allowed reports whether a store of the given type may carry the given
// category. Unknown store types get no eligibility rather than an error,
// so synthesis degrades gracefully on future store formats.
func (r *Registry) Allowed(storeType models.StoreType, categoryID int) bool {
	rule, ok := r.rules[storeType]
	if !ok {
		return false
	}
	return rule.allowed[categoryID]
}

// Priority reports whether the category is a priority one for the store type.
func (r *Registry) Priority(storeType models.StoreType, categoryID int) bool {
	rule, ok := r.rules[storeType]
	if !ok {
		return false
	}
	return rule.priority[categoryID]
}

// Category returns the category entry for an id.
func (r *Registry) Category(id int) (Category, bool) {
	c, ok := r.categories[id]
	return c, ok
}

// Categories returns all categories ordered by id.
func (r *Registry) Categories() []Category {
	out := make([]Category, 0, len(r.categories))
	for id := 1; id <= len(r.categories); id++ {
		if c, ok := r.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// FallbackPrice returns the fixed reference price for an ingredient
// category with no catalog match. Unknown categories get the default.
func (r *Registry) FallbackPrice(categoryID int) float64 {
	if p, ok := r.fallback[categoryID]; ok {
		return p
	}
	return defaultFallbackPrice
}

func categorySet(ids ...int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
