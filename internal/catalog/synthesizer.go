package catalog

import (
	"math"
	"math/rand"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/models"
)

// RandSource is the randomness strategy used by the synthesizer. Tests
// inject a fixed-seed source to make synthesized prices reproducible;
// production supplies an entropy-seeded one.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// NewSeededSource returns a RandSource producing a deterministic sequence
// for the given seed.
func NewSeededSource(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// multiplierRange is the price multiplier interval for a store format.
type multiplierRange struct {
	min, max float64
}

var multiplierRanges = map[models.StoreType]multiplierRange{
	models.StoreTypeDiscount:    {0.85, 1.05},
	models.StoreTypeHypermarket: {0.90, 1.15},
	models.StoreTypeConvenience: {1.10, 1.40},
	models.StoreTypeDrugstore:   {0.95, 1.15},
	models.StoreTypePharmacy:    {0.95, 1.15},
	models.StoreTypeElectronics: {0.90, 1.30},
	models.StoreTypeFurniture:   {0.90, 1.30},
	models.StoreTypeClothing:    {0.90, 1.30},
}

var defaultMultiplierRange = multiplierRange{0.95, 1.05}

const (
	basePriceMin = 5.0
	basePriceMax = 55.0

	promotionProbability = 0.10
	promotionDiscountMin = 5
	promotionDiscountMax = 30
)

// Synthesizer fabricates plausible per-store prices and promotions for
// every (product, store) pair the registry permits.
type Synthesizer struct {
	registry *Registry
	rng      RandSource
}

// NewSynthesizer creates a synthesizer with the given eligibility registry
// and randomness source.
func NewSynthesizer(registry *Registry, rng RandSource) *Synthesizer {
	return &Synthesizer{
		registry: registry,
		rng:      rng,
	}
}

// Synthesize produces one price quote per eligible (product, store) pair.
// Products with no eligible store produce no quotes at all.
func (s *Synthesizer) Synthesize(products []models.Product, stores []models.Store) []models.PriceQuote {
	quotes := make([]models.PriceQuote, 0, len(products)*len(stores))

	for _, p := range products {
		basePrice := s.basePrice(p)

		for _, st := range stores {
			if !s.registry.Allowed(st.StoreType, p.CategoryID) {
				continue
			}

			mr, ok := multiplierRanges[st.StoreType]
			if !ok {
				mr = defaultMultiplierRange
			}
			multiplier := mr.min + s.rng.Float64()*(mr.max-mr.min)

			quote := models.PriceQuote{
				ProductID: p.ID,
				StoreName: st.Name,
				Price:     round2(basePrice * multiplier),
			}

			if s.rng.Float64() < promotionProbability {
				quote.IsPromotion = true
				quote.DiscountPercentage = promotionDiscountMin +
					s.rng.Intn(promotionDiscountMax-promotionDiscountMin+1)
			}

			quotes = append(quotes, quote)
		}
	}

	return quotes
}

// basePrice is the first seed price when the product carries one, else a
// uniform draw from [5, 55).
func (s *Synthesizer) basePrice(p models.Product) float64 {
	if len(p.SeedPrices) > 0 {
		return p.SeedPrices[0]
	}
	return basePriceMin + s.rng.Float64()*(basePriceMax-basePriceMin)
}

// round2 rounds a money value to 2 decimals, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round2 exposes the repo-wide money rounding policy.
func Round2(v float64) float64 {
	return round2(v)
}
