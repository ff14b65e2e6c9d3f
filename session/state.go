package session

import (
	"slices"

	"storefront/cart"
	"storefront/catalog"
	"storefront/models"
	"storefront/orders"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// State is everything persisted for one profile. Each component owns its part: the cart its
// lines, the history its orders.
type State struct {
	ProfileID string
	Cart      *cart.Cart
	Wishlist  []int64
	Theme     Theme
	User      *models.User
	Orders    *orders.History

	// admin panel lists
	Products []models.Product
	Users    []models.User
}

// Catalog is the seed catalog with this profile's admin products merged in.
func (s *State) Catalog() []models.Product {
	return catalog.Merge(catalog.Seed(), s.Products)
}

// ToggleWishlist adds or removes a product id and reports whether it is now wished for.
func (s *State) ToggleWishlist(id int64) bool {
	if i := slices.Index(s.Wishlist, id); i >= 0 {
		s.Wishlist = slices.Delete(s.Wishlist, i, i+1)
		return false
	}
	s.Wishlist = append(s.Wishlist, id)
	return true
}

func (s *State) ToggleTheme() Theme {
	if s.Theme == ThemeDark {
		s.Theme = ThemeLight
	} else {
		s.Theme = ThemeDark
	}
	return s.Theme
}
