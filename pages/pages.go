// Package pages resolves which storefront page a location names and what that page offers.
package pages

import (
	"fmt"
	"strings"
)

type Page int

const (
	Home Page = iota
	Catalog
	Cart
	Checkout
	TradeIn
	Installment
	Admin
	Delivery
	Other
)

// All lists every page variant.
var All = []Page{Home, Catalog, Cart, Checkout, TradeIn, Installment, Admin, Delivery, Other}

var names = [...]string{
	Home:        "home",
	Catalog:     "catalog",
	Cart:        "cart",
	Checkout:    "checkout",
	TradeIn:     "tradein",
	Installment: "installment",
	Admin:       "admin",
	Delivery:    "delivery",
	Other:       "other",
}

func (p Page) String() string {
	if p < 0 || int(p) >= len(names) {
		return fmt.Sprintf("page(%d)", int(p))
	}
	return names[p]
}

func (p Page) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// matchers are checked in order against the path; the first substring hit wins.
var matchers = []struct {
	fragment string
	page     Page
}{
	{"catalog", Catalog},
	{"cart", Cart},
	{"checkout", Checkout},
	{"profile", Other},
	{"admin", Admin},
	{"tradein", TradeIn},
	{"installment", Installment},
	{"delivery", Delivery},
}

// FromPath resolves a location path. "/" and "/index.html" are Home, anything unmatched is Other.
func FromPath(path string) Page {
	if path == "" || path == "/" || path == "/index.html" {
		return Home
	}
	for _, m := range matchers {
		if strings.Contains(path, m.fragment) {
			return m.page
		}
	}
	return Other
}

// Capabilities are the page sections present on a page. An intent aimed at a missing section
// is a no-op.
type Capabilities struct {
	CartDrawer   bool `json:"cart_drawer"`
	Breadcrumbs  bool `json:"breadcrumbs"`
	FeaturedGrid bool `json:"featured_grid"`
	Newsletter   bool `json:"newsletter"`
	CatalogGrid  bool `json:"catalog_grid"`
	CartPage     bool `json:"cart_page"`
	CheckoutForm bool `json:"checkout_form"`
	TradeInForm  bool `json:"tradein_form"`
	Calculator   bool `json:"calculator"`
	AdminPanel   bool `json:"admin_panel"`
}

func (p Page) Capabilities() Capabilities {
	c := Capabilities{CartDrawer: true, Breadcrumbs: p != Home}
	switch p {
	case Home:
		c.FeaturedGrid = true
		c.Newsletter = true
	case Catalog:
		c.CatalogGrid = true
	case Cart:
		c.CartPage = true
	case Checkout:
		c.CheckoutForm = true
	case TradeIn:
		c.TradeInForm = true
	case Installment:
		c.Calculator = true
	case Admin:
		c.AdminPanel = true
	}
	return c
}

type Breadcrumb struct {
	Name   string `json:"name"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

var services = Breadcrumb{Name: "Сервисы", Href: "/services.html"}

// Breadcrumbs builds the trail for a page; pages without a section trail show only Главная.
func (p Page) Breadcrumbs() []Breadcrumb {
	crumbs := []Breadcrumb{{Name: "Главная", Href: "/"}}
	switch p {
	case Catalog:
		crumbs = append(crumbs, Breadcrumb{Name: "Каталог", Href: "/catalog.html", Active: true})
	case TradeIn:
		crumbs = append(crumbs, services, Breadcrumb{Name: "Trade-in", Href: "/tradein.html", Active: true})
	case Installment:
		crumbs = append(crumbs, services, Breadcrumb{Name: "Рассрочка", Href: "/installment.html", Active: true})
	case Delivery:
		crumbs = append(crumbs, services, Breadcrumb{Name: "Доставка", Href: "/delivery.html", Active: true})
	}
	return crumbs
}

// Table maps every page to its initializer.
type Table[T any] map[Page]T

// Check reports the first page without an entry.
func (t Table[T]) Check() error {
	for _, p := range All {
		if _, ok := t[p]; !ok {
			return fmt.Errorf("no initializer for page %s", p)
		}
	}
	return nil
}

// MustCheck panics when t misses a page. Tables are built once at startup.
func (t Table[T]) MustCheck() Table[T] {
	if err := t.Check(); err != nil {
		panic(err)
	}
	return t
}
