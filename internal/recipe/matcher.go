package recipe

import (
	"strings"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/catalog"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/models"
)

// Matcher resolves a free-text ingredient requirement to catalog products.
// The interface exists so a higher-precision matcher (token scoring, edit
// distance) can replace the default without touching callers.
type Matcher interface {
	Match(req models.IngredientRequirement, cat *catalog.Catalog) []models.Product
}

// SubstringMatcher is the default matcher: the requirement name is split
// on whitespace into lowercase tokens, and a product matches when any
// token appears as a substring of its lowercase name. Deliberately
// permissive; short tokens can over-match.
type SubstringMatcher struct{}

// NewSubstringMatcher creates the default ingredient matcher.
func NewSubstringMatcher() *SubstringMatcher {
	return &SubstringMatcher{}
}

// Match returns every catalog product whose name contains any token of
// the requirement name. Products are returned in catalog order.
func (m *SubstringMatcher) Match(req models.IngredientRequirement, cat *catalog.Catalog) []models.Product {
	tokens := strings.Fields(strings.ToLower(req.Name))
	if len(tokens) == 0 {
		return nil
	}

	var matched []models.Product
	for _, e := range cat.Entries() {
		name := strings.ToLower(e.Product.Name)
		for _, tok := range tokens {
			if strings.Contains(name, tok) {
				matched = append(matched, e.Product)
				break
			}
		}
	}
	return matched
}
