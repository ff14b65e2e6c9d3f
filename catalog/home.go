package catalog

import (
	"math/rand"
	"slices"

	"storefront/models"
)

// HomeFilter applies the home page category tags: "all" keeps everything.
func HomeFilter(products []models.Product, category string) []models.Product {
	s := DefaultState()
	s.Category = category
	s.Price = PriceRange{Min: minInt64, Max: maxInt64}
	return Filter(products, s)
}

const (
	minInt64 = -1 << 63
	maxInt64 = 1<<63 - 1
)

// HomeSort orders the featured list on the home page. Unlike the catalog page, "newest" there
// shuffles the cards using rng; price keys sort as in the catalog and anything else keeps order.
func HomeSort(products []models.Product, key SortKey, rng *rand.Rand) []models.Product {
	switch key {
	case SortPriceLow, SortPriceHigh:
		return Sort(products, key)
	case SortNewest:
		out := slices.Clone(products)
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	default:
		return slices.Clone(products)
	}
}
