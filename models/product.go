package models

// Category groups products in the catalog.
type Category string

const (
	CategoryIPhone      Category = "iphone"
	CategoryMac         Category = "mac"
	CategoryIPad        Category = "ipad"
	CategoryWatch       Category = "watch"
	CategoryAirPods     Category = "airpods"
	CategoryAccessories Category = "accessories"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryIPhone,
	CategoryMac,
	CategoryIPad,
	CategoryWatch,
	CategoryAirPods,
	CategoryAccessories,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Category    Category `json:"category" validate:"required"`
	Price       int64    `json:"price" validate:"gte=0"`
	OldPrice    *int64   `json:"old_price,omitempty"`
	Image       string   `json:"image"`
	InStock     bool     `json:"in_stock"`
	IsNew       bool     `json:"is_new"`
	IsSale      bool     `json:"is_sale"`
	Description string   `json:"description"`
}
