package models

// Product represents a grocery catalog item
// Reference data, created at load time and never mutated
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand,omitempty"`
	Description  string  `json:"description,omitempty"`
	CategoryID   int     `json:"categoryId"`
	CategoryName string  `json:"categoryName,omitempty"`
	CategoryIcon string  `json:"categoryIcon,omitempty"`
	// SeedPrices carries reference prices from the original mock data.
	// The synthesizer uses the first one as the base price when present.
	SeedPrices []float64 `json:"-"`
}

// PriceQuote is one synthesized price for a (product, store) pair.
// Regenerated per catalog build, never persisted.
type PriceQuote struct {
	ProductID          string  `json:"productId"`
	StoreName          string  `json:"storeName"`
	Price              float64 `json:"price"`
	IsPromotion        bool    `json:"isPromotion"`
	DiscountPercentage int     `json:"discountPercentage"`
}
