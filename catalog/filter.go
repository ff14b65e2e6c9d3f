package catalog

import (
	"strings"

	"storefront/models"
)

// CategoryAll disables the category constraint.
const CategoryAll = "all"

type Facet string

const (
	FacetInStock  Facet = "in-stock"
	FacetPreOrder Facet = "pre-order"
	FacetSale     Facet = "sale"
	FacetNew      Facet = "new"
)

type View string

const (
	ViewGrid View = "grid"
	ViewList View = "list"
)

type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Facets are the boolean filter toggles.
type Facets struct {
	InStock  bool `json:"in_stock"`
	PreOrder bool `json:"pre_order"`
	Sale     bool `json:"sale"`
	New      bool `json:"new"`
}

// Set switches a single facet, ignoring unknown names.
func (f *Facets) Set(facet Facet, on bool) {
	switch facet {
	case FacetInStock:
		f.InStock = on
	case FacetPreOrder:
		f.PreOrder = on
	case FacetSale:
		f.Sale = on
	case FacetNew:
		f.New = on
	}
}

type FilterState struct {
	Category string     `json:"category"`
	Sort     SortKey    `json:"sort"`
	View     View       `json:"view"`
	Search   string     `json:"search"`
	Price    PriceRange `json:"price"`
	Facets   Facets     `json:"facets"`
}

// DefaultPriceMax is the upper bound of the price slider.
const DefaultPriceMax = 500000

func DefaultState() FilterState {
	return FilterState{
		Category: CategoryAll,
		Sort:     SortPopular,
		View:     ViewGrid,
		Price:    PriceRange{Min: 0, Max: DefaultPriceMax},
	}
}

// Matches reports whether p passes every constraint of the state.
func (s FilterState) Matches(p models.Product) bool {
	if s.Category != CategoryAll && s.Category != "" && string(p.Category) != s.Category {
		return false
	}
	if s.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(s.Search)) {
		return false
	}
	if p.Price < s.Price.Min || p.Price > s.Price.Max {
		return false
	}

	// both or neither availability box checked means no constraint
	if s.Facets.InStock && !s.Facets.PreOrder && !p.InStock {
		return false
	}
	if s.Facets.PreOrder && !s.Facets.InStock && p.InStock {
		return false
	}

	if s.Facets.Sale && !p.IsSale {
		return false
	}
	if s.Facets.New && !p.IsNew {
		return false
	}
	return true
}

// Filter keeps the products matching s, preserving input order. The result never aliases products.
func Filter(products []models.Product, s FilterState) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if s.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
