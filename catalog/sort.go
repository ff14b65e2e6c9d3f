package catalog

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"storefront/models"
)

type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest"
	SortName      SortKey = "name"
)

// Sort returns a stably ordered copy of products. Unknown keys and SortPopular keep input order.
func Sort(products []models.Product, key SortKey) []models.Product {
	out := slices.Clone(products)

	switch key {
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b models.Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortNewest:
		slices.SortStableFunc(out, func(a, b models.Product) int { return cmp.Compare(rank(b.IsNew), rank(a.IsNew)) })
	case SortName:
		// collators are not safe for concurrent use
		c := collate.New(language.Russian)
		slices.SortStableFunc(out, func(a, b models.Product) int { return c.CompareString(a.Name, b.Name) })
	}
	return out
}

func rank(b bool) int {
	if b {
		return 1
	}
	return 0
}
