package recipe

import (
	"strconv"
	"strings"
)

// Fixed conversion heuristics inherited from the original demo data.
// They are not physically grounded but every savings figure depends on
// them, so they must not change.
const (
	gramsPerUnit     = 1000.0
	piecesPerPack    = 10.0
	fallbackFraction = 0.1
)

// EstimateUnitCost converts a catalog unit price and a free-text amount
// ("500g", "2 szt", "1kg") into an estimated cost:
//
//	kg           -> price × n
//	g or ml      -> price × n/1000
//	szt / adet   -> price × n/10 (unit price assumed per 10-count pack)
//	anything else -> price × 0.1, ignoring n
//
// A malformed amount falls into the last branch instead of failing.
func EstimateUnitCost(unitPrice float64, amount string) float64 {
	lower := strings.ToLower(amount)
	n := leadingMagnitude(lower)

	switch {
	case strings.Contains(lower, "kg"):
		return unitPrice * n
	case strings.Contains(lower, "g") || strings.Contains(lower, "ml"):
		return unitPrice * (n / gramsPerUnit)
	case strings.Contains(lower, "szt") || strings.Contains(lower, "adet"):
		return unitPrice * (n / piecesPerPack)
	default:
		return unitPrice * fallbackFraction
	}
}

// leadingMagnitude strips everything but digits and decimal separators
// and parses the remainder as a float. Returns 0 when nothing numeric
// survives.
func leadingMagnitude(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return n
}
