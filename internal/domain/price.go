package domain

import "strings"

// PriceCategory buckets a ticket price. Labels match the catalogue data set.
type PriceCategory string

const (
	PriceCheap     PriceCategory = "Murah"
	PriceModerate  PriceCategory = "Sedang"
	PriceExpensive PriceCategory = "Mahal"
)

const (
	cheapBelow     = 50000
	expensiveAbove = 200000
)

func PriceCategoryFor(price int) PriceCategory {
	switch {
	case price < cheapBelow:
		return PriceCheap
	case price > expensiveAbove:
		return PriceExpensive
	default:
		return PriceModerate
	}
}

// ParsePriceCategory accepts a label case-insensitively.
func ParsePriceCategory(s string) (PriceCategory, bool) {
	for _, c := range []PriceCategory{PriceCheap, PriceModerate, PriceExpensive} {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, true
		}
	}
	return "", false
}

// PriceBounds returns the inclusive price range of a category.
// hi is -1 when the category is unbounded above.
func (c PriceCategory) PriceBounds() (lo, hi int) {
	switch c {
	case PriceCheap:
		return 0, cheapBelow - 1
	case PriceExpensive:
		return expensiveAbove + 1, -1
	default:
		return cheapBelow, expensiveAbove
	}
}
