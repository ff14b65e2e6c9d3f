package catalog

import "storefront/models"

// Intent is a discrete user action on the catalog page.
type Intent interface {
	apply(s *FilterState)
}

type SelectCategory struct{ Category string }

type SetSearch struct{ Text string }

type SetPriceMin struct{ Value int64 }

type SetPriceMax struct{ Value int64 }

type SetFacet struct {
	Facet Facet
	On    bool
}

type SetSort struct{ Key SortKey }

type SetView struct{ View View }

func (i SelectCategory) apply(s *FilterState) { s.Category = i.Category }
func (i SetSearch) apply(s *FilterState)      { s.Search = i.Text }
func (i SetPriceMin) apply(s *FilterState)    { s.Price.Min = i.Value }
func (i SetPriceMax) apply(s *FilterState)    { s.Price.Max = i.Value }
func (i SetFacet) apply(s *FilterState)       { s.Facets.Set(i.Facet, i.On) }
func (i SetSort) apply(s *FilterState)        { s.Sort = i.Key }

func (i SetView) apply(s *FilterState) {
	if i.View == ViewList || i.View == ViewGrid {
		s.View = i.View
	}
}

// Engine owns the catalog product list and the filter state; the filtered view is always
// Sort(Filter(products, state), state.Sort).
type Engine struct {
	products []models.Product
	state    FilterState
	filtered []models.Product
}

func NewEngine(products []models.Product) *Engine {
	return NewEngineWithState(products, DefaultState())
}

func NewEngineWithState(products []models.Product, state FilterState) *Engine {
	e := &Engine{products: products, state: state}
	e.recompute()
	return e
}

// Dispatch applies intents in order and recomputes the filtered view once.
func (e *Engine) Dispatch(intents ...Intent) {
	for _, i := range intents {
		i.apply(&e.state)
	}
	e.recompute()
}

func (e *Engine) recompute() {
	e.filtered = Sort(Filter(e.products, e.state), e.state.Sort)
}

func (e *Engine) State() FilterState { return e.state }

func (e *Engine) Products() []models.Product { return e.products }

func (e *Engine) Filtered() []models.Product { return e.filtered }

// Listing is what the presentation layer renders for the catalog grid.
type Listing struct {
	View     View             `json:"view"`
	Products []models.Product `json:"products"`
	Count    int              `json:"count"`
	Empty    bool             `json:"empty"`
	State    FilterState      `json:"state"`
}

// Render projects the current view; it does not touch engine state.
func (e *Engine) Render() Listing {
	view := e.state.View
	if view != ViewList {
		view = ViewGrid
	}
	products := make([]models.Product, len(e.filtered))
	copy(products, e.filtered)
	return Listing{
		View:     view,
		Products: products,
		Count:    len(products),
		Empty:    len(products) == 0,
		State:    e.state,
	}
}
