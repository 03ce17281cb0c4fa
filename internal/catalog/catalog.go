package catalog

import (
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/models"
)

// Entry pairs one product with its synthesized per-store quotes.
type Entry struct {
	Product models.Product     `json:"product"`
	Quotes  []models.PriceQuote `json:"quotes"`
}

// Catalog is an immutable snapshot of the synthesized price data. It is
// built once per run and read concurrently without coordination.
type Catalog struct {
	entries   []Entry
	byProduct map[string]int
}

// BuildCatalog synthesizes quotes for the given reference data and
// assembles the snapshot. Products with zero eligible stores are dropped
// from the catalog entirely.
func (s *Synthesizer) BuildCatalog(products []models.Product, stores []models.Store) *Catalog {
	quotes := s.Synthesize(products, stores)

	byID := make(map[string][]models.PriceQuote)
	for _, q := range quotes {
		byID[q.ProductID] = append(byID[q.ProductID], q)
	}

	c := &Catalog{
		byProduct: make(map[string]int),
	}
	for _, p := range products {
		pq, ok := byID[p.ID]
		if !ok {
			continue
		}
		c.byProduct[p.ID] = len(c.entries)
		c.entries = append(c.entries, Entry{Product: p, Quotes: pq})
	}

	return c
}

// NewCatalog assembles a snapshot from pre-built entries. Used by tests
// and fixtures that need exact quotes.
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{
		entries:   entries,
		byProduct: make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		c.byProduct[e.Product.ID] = i
	}
	return c
}

// Entries returns all catalog entries in product seed order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Entry returns the entry for a product id.
func (c *Catalog) Entry(productID string) (Entry, bool) {
	i, ok := c.byProduct[productID]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Len returns the number of products that survived synthesis.
func (c *Catalog) Len() int {
	return len(c.entries)
}
