package repository

import (
	"context"
	"errors"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/catalog"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product reference data
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with seeded
// in-memory data. Products are kept in a slice so iteration order is
// stable; the price synthesizer relies on that for seed reproducibility.
type InMemoryProductRepository struct {
	products []models.Product
	byID     map[string]int
}

// NewInMemoryProductRepository creates a product repository seeded with
// the demo grocery catalog. Category labels and icons are filled in from
// the registry so nothing here hardcodes display strings.
func NewInMemoryProductRepository(registry *catalog.Registry) *InMemoryProductRepository {
	products := []models.Product{
		{ID: "p01", Name: "Kapusta kiszona", Brand: "Krakus", Description: "Kapusta kiszona beczkowa 900g", CategoryID: catalog.CategoryVegetables, SeedPrices: []float64{3.99, 3.49, 4.19, 4.49}},
		{ID: "p02", Name: "Kapusta biała", Description: "Kapusta biała świeża, cena za kg", CategoryID: catalog.CategoryVegetables, SeedPrices: []float64{2.99}},
		{ID: "p03", Name: "Ziemniaki jadalne", Description: "Ziemniaki krajowe, worek 2kg", CategoryID: catalog.CategoryVegetables, SeedPrices: []float64{5.49}},
		{ID: "p04", Name: "Cebula żółta", Description: "Cebula żółta luz, cena za kg", CategoryID: catalog.CategoryVegetables, SeedPrices: []float64{3.29}},
		{ID: "p05", Name: "Marchew", Description: "Marchew luz, cena za kg", CategoryID: catalog.CategoryVegetables, SeedPrices: []float64{2.79}},
		{ID: "p06", Name: "Pomidory malinowe", CategoryID: catalog.CategoryVegetables, SeedPrices: []float64{9.99}},
		{ID: "p07", Name: "Jabłka Ligol", Description: "Jabłka krajowe, cena za kg", CategoryID: catalog.CategoryFruits, SeedPrices: []float64{3.99}},
		{ID: "p08", Name: "Banany", CategoryID: catalog.CategoryFruits, SeedPrices: []float64{5.79}},
		{ID: "p09", Name: "Cytryny", CategoryID: catalog.CategoryFruits, SeedPrices: []float64{7.99}},
		{ID: "p10", Name: "Mleko 3,2%", Brand: "Łaciate", Description: "Mleko UHT 1l", CategoryID: catalog.CategoryDairy, SeedPrices: []float64{4.29}},
		{ID: "p11", Name: "Masło ekstra", Brand: "Mlekovita", Description: "Masło ekstra 200g", CategoryID: catalog.CategoryDairy, SeedPrices: []float64{7.49}},
		{ID: "p12", Name: "Twaróg półtłusty", Brand: "Piątnica", Description: "Twaróg półtłusty 250g", CategoryID: catalog.CategoryDairy, SeedPrices: []float64{5.99}},
		{ID: "p13", Name: "Jajka z wolnego wybiegu", Description: "Jajka L, opakowanie 10 szt", CategoryID: catalog.CategoryDairy, SeedPrices: []float64{12.99}},
		{ID: "p14", Name: "Śmietana 18%", Brand: "Piątnica", Description: "Śmietana 18% 330g", CategoryID: catalog.CategoryDairy, SeedPrices: []float64{4.79}},
		{ID: "p15", Name: "Schab wieprzowy bez kości", Description: "Schab środkowy, cena za kg", CategoryID: catalog.CategoryMeat, SeedPrices: []float64{21.99}},
		{ID: "p16", Name: "Kiełbasa śląska", Brand: "Sokołów", Description: "Kiełbasa śląska 550g", CategoryID: catalog.CategoryMeat, SeedPrices: []float64{14.99}},
		{ID: "p17", Name: "Biała kiełbasa surowa", Description: "Biała kiełbasa, cena za kg", CategoryID: catalog.CategoryMeat, SeedPrices: []float64{18.49}},
		{ID: "p18", Name: "Filet z kurczaka", Description: "Filet z piersi kurczaka, cena za kg", CategoryID: catalog.CategoryMeat, SeedPrices: []float64{19.99}},
		{ID: "p19", Name: "Boczek wędzony", CategoryID: catalog.CategoryMeat, SeedPrices: []float64{24.99}},
		{ID: "p20", Name: "Chleb wiejski", Description: "Chleb wiejski krojony 500g", CategoryID: catalog.CategoryBakery, SeedPrices: []float64{4.49}},
		{ID: "p21", Name: "Bułka tarta", Brand: "Melvit", Description: "Bułka tarta 400g", CategoryID: catalog.CategoryBakery, SeedPrices: []float64{3.19}},
		{ID: "p22", Name: "Woda mineralna gazowana", Brand: "Cisowianka", Description: "Woda 1,5l", CategoryID: catalog.CategoryBeverages, SeedPrices: []float64{2.19}},
		{ID: "p23", Name: "Sok pomarańczowy", Brand: "Tymbark", Description: "Sok 100% 1l", CategoryID: catalog.CategoryBeverages, SeedPrices: []float64{6.49}},
		{ID: "p24", Name: "Mąka pszenna typ 500", Brand: "Lubella", Description: "Mąka pszenna 1kg", CategoryID: catalog.CategoryDryGoods, SeedPrices: []float64{4.39}},
		{ID: "p25", Name: "Ryż biały", Brand: "Britta", Description: "Ryż długoziarnisty 4x100g", CategoryID: catalog.CategoryDryGoods, SeedPrices: []float64{5.29}},
		{ID: "p26", Name: "Koncentrat pomidorowy", Brand: "Pudliszki", Description: "Koncentrat 30% 190g", CategoryID: catalog.CategoryDryGoods, SeedPrices: []float64{4.99}},
		{ID: "p27", Name: "Suszone grzyby leśne", Description: "Podgrzybek suszony 50g", CategoryID: catalog.CategoryDryGoods, SeedPrices: []float64{15.99}},
		{ID: "p28", Name: "Majeranek suszony", Brand: "Kamis", Description: "Majeranek 8g", CategoryID: catalog.CategoryDryGoods, SeedPrices: []float64{2.49}},
		{ID: "p29", Name: "Płyn do naczyń", Brand: "Ludwik", Description: "Płyn do mycia naczyń 900ml", CategoryID: catalog.CategoryHousehold, SeedPrices: []float64{7.99}},
		{ID: "p30", Name: "Proszek do prania", Brand: "Vizir", CategoryID: catalog.CategoryHousehold},
		{ID: "p31", Name: "Szampon do włosów", Brand: "Nivea", CategoryID: catalog.CategoryCosmetics},
		{ID: "p32", Name: "Czajnik elektryczny", Brand: "Tefal", CategoryID: catalog.CategoryElectronics},
		{ID: "p33", Name: "Krzesło kuchenne", CategoryID: catalog.CategoryFurniture},
		{ID: "p34", Name: "Skarpety bawełniane", Description: "Skarpety 3-pak", CategoryID: catalog.CategoryClothing},
	}

	byID := make(map[string]int, len(products))
	for i := range products {
		if c, ok := registry.Category(products[i].CategoryID); ok {
			products[i].CategoryName = c.Label
			products[i].CategoryIcon = c.Icon
		}
		byID[products[i].ID] = i
	}

	return &InMemoryProductRepository{
		products: products,
		byID:     byID,
	}
}

// GetAll returns all products in seed order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}
